package ledger

import (
	"fmt"
	"strings"
	"sync"
)

// Capability is a coarse grant on privileged ledger operations.
type Capability uint8

// capability values
const (
	// CapRateSetter may call SetGlobalRate
	CapRateSetter Capability = 1 << iota
	// CapMintBurn may call Mint, MintWithCurrentRate and BurnFrom
	CapMintBurn
)

// String implements the stringer interface
func (c Capability) String() string {
	switch c {
	case CapRateSetter:
		return "RateSetter"
	case CapMintBurn:
		return "MintBurn"
	default:
		return fmt.Sprintf("unknown capability %d", c)
	}
}

// AccessList maps principals to their granted capabilities.
// Principal matching is case insensitive.
type AccessList struct {
	mutex  sync.RWMutex
	grants map[string]Capability
}

// NewAccessList new access list
func NewAccessList() *AccessList {
	return &AccessList{
		grants: make(map[string]Capability),
	}
}

// Grant grants a capability to a principal.
func (a *AccessList) Grant(principal string, c Capability) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	key := strings.ToLower(principal)
	a.grants[key] |= c
}

// Revoke removes a capability from a principal.
func (a *AccessList) Revoke(principal string, c Capability) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	key := strings.ToLower(principal)
	remain := a.grants[key] &^ c
	if remain == 0 {
		delete(a.grants, key)
	} else {
		a.grants[key] = remain
	}
}

// Has returns true if the principal holds the capability.
func (a *AccessList) Has(principal string, c Capability) bool {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.grants[strings.ToLower(principal)]&c == c
}

func (a *AccessList) require(principal string, c Capability) error {
	if !a.Has(principal, c) {
		return ErrNotAuthorized
	}
	return nil
}
