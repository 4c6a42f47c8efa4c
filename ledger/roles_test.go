package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessList(t *testing.T) {
	acl := NewAccessList()

	assert.False(t, acl.Has("vault", CapMintBurn))

	acl.Grant("vault", CapMintBurn)
	assert.True(t, acl.Has("vault", CapMintBurn))
	assert.False(t, acl.Has("vault", CapRateSetter))

	// principal matching is case insensitive
	assert.True(t, acl.Has("Vault", CapMintBurn))

	acl.Grant("vault", CapRateSetter)
	assert.True(t, acl.Has("vault", CapRateSetter))

	acl.Revoke("vault", CapMintBurn)
	assert.False(t, acl.Has("vault", CapMintBurn))
	assert.True(t, acl.Has("vault", CapRateSetter))

	acl.Revoke("vault", CapRateSetter)
	assert.False(t, acl.Has("vault", CapRateSetter))
}

func TestCapabilityString(t *testing.T) {
	assert.Equal(t, "RateSetter", CapRateSetter.String())
	assert.Equal(t, "MintBurn", CapMintBurn.String())
}
