package common

import (
	"errors"
	"math/big"
	"strings"
)

// Common big integers often used
var (
	Big0 = big.NewInt(0)
	Big1 = big.NewInt(1)

	// MaxUint256 is the sentinel 'use the full balance' amount.
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(Big1, 256), Big1)
)

// GetBigIntFromStr parses a decimal or 0x prefixed hex string into big.Int.
func GetBigIntFromStr(str string) (*big.Int, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil, errors.New("empty big integer string")
	}
	base := 10
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		str = str[2:]
		base = 16
	}
	bi, ok := new(big.Int).SetString(str, base)
	if !ok {
		return nil, errors.New("invalid big integer string: " + str)
	}
	return bi, nil
}

// GetUint64FromStr parses a decimal string into uint64.
func GetUint64FromStr(str string) (uint64, error) {
	bi, err := GetBigIntFromStr(str)
	if err != nil {
		return 0, err
	}
	if !bi.IsUint64() {
		return 0, errors.New("big integer overflows uint64: " + str)
	}
	return bi.Uint64(), nil
}

// BigFromUint64 converts uint64 to big.Int
func BigFromUint64(u uint64) *big.Int {
	return new(big.Int).SetUint64(u)
}

// BigIntToStr converts big.Int to decimal string, nil maps to "0".
func BigIntToStr(bi *big.Int) string {
	if bi == nil {
		return "0"
	}
	return bi.String()
}

// IsMaxAmount returns true if amount is the full balance sentinel.
func IsMaxAmount(amount *big.Int) bool {
	return amount != nil && amount.Cmp(MaxUint256) == 0
}
