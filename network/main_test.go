package network

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	n := Network{Passphrase: PublicNetworkPassphrase}
	id := n.ID()
	assert.Equal(t, "7ac33997544e3175d266bd022439b22cdb16508c01163f26e5cb2a3e1045a979", hex.EncodeToString(id[:]))
}

func TestIDIsStableAcrossInstances(t *testing.T) {
	a := Network{Passphrase: TestNetworkPassphrase}
	b := Network{Passphrase: TestNetworkPassphrase}
	assert.Equal(t, a.ID(), b.ID())
}
