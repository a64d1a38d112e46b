package strkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	cases := []struct {
		Name                string
		Address             string
		ExpectedVersionByte VersionByte
	}{
		{
			Name:                "AccountID",
			Address:             "GA3D5KRYM6CB7OWQ6TWYRR3Z4T7GNZLKERYNZGGA5SOAOPIFY6YQHES5",
			ExpectedVersionByte: VersionByteAccountID,
		},
		{
			Name:                "Seed",
			Address:             "SBU2RRGLXH3E5CQHTD3ODLDF2BWDCYUSSBLLZ5GNW7JXHDIYKXZWHOKR",
			ExpectedVersionByte: VersionByteSeed,
		},
		{
			Name:                "HashTx (preAuthTx)",
			Address:             "TBU2RRGLXH3E5CQHTD3ODLDF2BWDCYUSSBLLZ5GNW7JXHDIYKXZWHXL7",
			ExpectedVersionByte: VersionByteHashTx,
		},
		{
			Name:                "HashX",
			Address:             "XBU2RRGLXH3E5CQHTD3ODLDF2BWDCYUSSBLLZ5GNW7JXHDIYKXZWGTOG",
			ExpectedVersionByte: VersionByteHashX,
		},
		{
			Name:                "Signed Payload",
			Address:             "PDPYP7E6NEYZSVOTV6M23OFM2XRIMPDUJABHGHHH2Y67X7JL25GW6AAAAAAAAAAAAAAJEVA",
			ExpectedVersionByte: VersionByteSignedPayload,
		},
		{
			Name:                "MuxedAccount",
			Address:             "MBU2RRGLXH3E5CQHTD3ODLDF2BWDCYUSSBLLZ5GNW7JXHDIYKXZWGAAAAAAAAAAAABTQE",
			ExpectedVersionByte: VersionByteMuxedAccount,
		},
	}

	for _, kase := range cases {
		actual, err := Version(kase.Address)
		if assert.NoError(t, err, "An error occured decoding case %s", kase.Name) {
			assert.Equal(t, kase.ExpectedVersionByte, actual, "Output mismatch in case %s", kase.Name)
		}
	}
}

func TestIsValidEd25519PublicKey(t *testing.T) {
	assert.True(t, IsValidEd25519PublicKey("GDWZCOEQRODFCH6ISYQPWY67L3ULLWS5ISXYYL5GH43W7YFMTLB65PYM"))
	assert.False(t, IsValidEd25519PublicKey("GDWZCOEQRODFCH6ISYQPWY67L3ULLWS5ISXYYL5GH43W7Y"))
	assert.False(t, IsValidEd25519PublicKey(""))
	assert.False(t, IsValidEd25519PublicKey("SBCVMMCBEDB64TVJZFYJOJAERZC4YVVUOE6SYR2Y76CBTENGUSGWRRVO"))
}

func TestIsValidEd25519SecretSeed(t *testing.T) {
	assert.True(t, IsValidEd25519SecretSeed("SBCVMMCBEDB64TVJZFYJOJAERZC4YVVUOE6SYR2Y76CBTENGUSGWRRVO"))
	assert.False(t, IsValidEd25519SecretSeed("SBCVMMCBEDB64TVJZFYJOJAERZC4YVVUOE6SYR2Y76CBTENGUSG"))
	assert.False(t, IsValidEd25519SecretSeed(""))
	assert.False(t, IsValidEd25519SecretSeed("GDWZCOEQRODFCH6ISYQPWY67L3ULLWS5ISXYYL5GH43W7YFMTLB65PYM"))
}

func TestAccountIDVector(t *testing.T) {
	// spec.md §8 scenario 1
	pub := []byte{
		0xB2, 0x7B, 0xAF, 0xA7, 0xBC, 0x2F, 0xD0, 0x04,
		0x6C, 0xD7, 0x96, 0x7C, 0x44, 0x50, 0xCF, 0x5C,
		0x92, 0x9D, 0x6E, 0x7A, 0xF3, 0x7E, 0x7E, 0xC4,
		0x0B, 0xF7, 0x5D, 0x3C, 0xBD, 0x05, 0x4A, 0xAD,
	}
	encoded, err := Encode(VersionByteAccountID, pub)
	require.NoError(t, err)
	assert.Equal(t, "GCZHXL5HXQX5ABDM26LHYRCQZ5OJFHLOPLZX47WEBP3V2PF5AVFK2A5D", encoded)

	decoded, err := Decode(VersionByteAccountID, encoded)
	require.NoError(t, err)
	assert.Equal(t, pub, decoded)
}

func TestRoundTripAllKinds(t *testing.T) {
	payload32 := make([]byte, 32)
	for i := range payload32 {
		payload32[i] = byte(i)
	}

	for _, kind := range []VersionByte{
		VersionByteAccountID, VersionByteSeed, VersionByteHashTx,
		VersionByteHashX, VersionByteContract,
	} {
		encoded, err := Encode(kind, payload32)
		require.NoError(t, err)
		decoded, err := Decode(kind, encoded)
		require.NoError(t, err)
		assert.Equal(t, payload32, decoded)
	}

	muxed := make([]byte, 40)
	copy(muxed, payload32)
	encoded, err := Encode(VersionByteMuxedAccount, muxed)
	require.NoError(t, err)
	decoded, err := Decode(VersionByteMuxedAccount, encoded)
	require.NoError(t, err)
	assert.Equal(t, muxed, decoded)

	signedPayload := make([]byte, 32+4+4)
	copy(signedPayload, payload32)
	encoded, err = Encode(VersionByteSignedPayload, signedPayload)
	require.NoError(t, err)
	decoded, err = Decode(VersionByteSignedPayload, encoded)
	require.NoError(t, err)
	assert.Equal(t, signedPayload, decoded)
}

func TestDecodeRejectsWrongVersion(t *testing.T) {
	payload := make([]byte, 32)
	encoded, err := Encode(VersionByteAccountID, payload)
	require.NoError(t, err)

	_, err = Decode(VersionByteSeed, encoded)
	require.Error(t, err)
	var invalidErr *InvalidError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, ReasonBadVersion, invalidErr.Reason)
}

func TestDecodeRejectsBadChecksum(t *testing.T) {
	payload := make([]byte, 32)
	encoded, err := Encode(VersionByteAccountID, payload)
	require.NoError(t, err)

	// Flip the last character, which only touches checksum+padding bits.
	mutated := []byte(encoded)
	if mutated[len(mutated)-1] == 'A' {
		mutated[len(mutated)-1] = 'B'
	} else {
		mutated[len(mutated)-1] = 'A'
	}

	_, err = Decode(VersionByteAccountID, string(mutated))
	require.Error(t, err)
}

func TestDecodeRejectsBadLength(t *testing.T) {
	_, err := Decode(VersionByteAccountID, "GA")
	require.Error(t, err)
	var invalidErr *InvalidError
	require.ErrorAs(t, err, &invalidErr)
}

func TestCRC16KnownVector(t *testing.T) {
	// "123456789" is the standard CRC16-XModem test vector, expected 0x31C3.
	assert.Equal(t, uint16(0x31C3), crc16XModem([]byte("123456789")))
}
