package common

import (
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/sha3"
)

// HashLength is the byte length of a keccak hash
const HashLength = 32

// Hash represents the 32 byte keccak256 hash of arbitrary data.
type Hash [HashLength]byte

// Bytes get bytes
func (h Hash) Bytes() []byte { return h[:] }

// Hex get hex string with 0x prefix
func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// String implements the stringer interface
func (h Hash) String() string { return h.Hex() }

// Keccak256Hash calculates the keccak256 hash of the concatenation of data.
func Keccak256Hash(data ...[]byte) (h Hash) {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	d.Sum(h[:0])
	return h
}

// HexToHash decodes a hex string (with optional 0x prefix) into a Hash.
func HexToHash(s string) (h Hash, err error) {
	b, err := FromHex(s)
	if err != nil {
		return h, err
	}
	if len(b) != HashLength {
		return h, errors.New("wrong length of hash hex string")
	}
	copy(h[:], b)
	return h, nil
}

// ToHex encodes b as a 0x prefixed hex string.
func ToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// FromHex decodes a hex string which may have a 0x prefix.
func FromHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

// IsZeroAddress returns true for the empty string and for hex addresses
// with all zero digits.
func IsZeroAddress(address string) bool {
	s := strings.TrimPrefix(strings.ToLower(address), "0x")
	for _, c := range s {
		if c != '0' {
			return false
		}
	}
	return true
}
