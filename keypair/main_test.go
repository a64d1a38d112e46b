package keypair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrkeyVector(t *testing.T) {
	// spec.md §8 scenario 1
	pub := [32]byte{
		0xB2, 0x7B, 0xAF, 0xA7, 0xBC, 0x2F, 0xD0, 0x04,
		0x6C, 0xD7, 0x96, 0x7C, 0x44, 0x50, 0xCF, 0x5C,
		0x92, 0x9D, 0x6E, 0x7A, 0xF3, 0x7E, 0x7E, 0xC4,
		0x0B, 0xF7, 0x5D, 0x3C, 0xBD, 0x05, 0x4A, 0xAD,
	}
	kp := &FromAddress{}
	kp.publicKey = pub
	assert.Equal(t, "GCZHXL5HXQX5ABDM26LHYRCQZ5OJFHLOPLZX47WEBP3V2PF5AVFK2A5D", kp.Address())

	parsed, err := ParseAddress(kp.Address())
	require.NoError(t, err)
	assert.Equal(t, pub, parsed.Raw())
}

func TestDeterministicSignature(t *testing.T) {
	// spec.md §8 scenario 2
	kp, err := ParseFull("SDJHRQF4GCMIIKAAAQ6IHY42X73FQFLHUULAPSKKD4DFDM7UXWWCRHBE")
	require.NoError(t, err)

	msg := []byte("Hello Stellar")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)

	assert.NoError(t, kp.Verify(msg, sig))

	other := MustRandom()
	assert.Error(t, other.Verify(msg, sig))
}

func TestRandomRoundTrip(t *testing.T) {
	kp := MustRandom()
	seed := kp.Seed()

	reparsed, err := ParseFull(seed)
	require.NoError(t, err)
	assert.Equal(t, kp.Address(), reparsed.Address())

	msg := []byte("round trip")
	sig, err := reparsed.Sign(msg)
	require.NoError(t, err)
	assert.NoError(t, kp.Verify(msg, sig))
}

func TestFromAddressCannotSign(t *testing.T) {
	kp := MustRandom()
	addrOnly, err := ParseAddress(kp.Address())
	require.NoError(t, err)

	assert.False(t, addrOnly.CanSign())
	_, err = addrOnly.Sign([]byte("x"))
	assert.Error(t, err)
}

func TestFromMnemonicIsDeterministic(t *testing.T) {
	mnemonic, err := GenerateMnemonic(256)
	require.NoError(t, err)

	a, err := FromMnemonic(mnemonic, "", 0)
	require.NoError(t, err)
	b, err := FromMnemonic(mnemonic, "", 0)
	require.NoError(t, err)
	assert.Equal(t, a.Address(), b.Address())

	c, err := FromMnemonic(mnemonic, "", 1)
	require.NoError(t, err)
	assert.NotEqual(t, a.Address(), c.Address())
}
