package vault

import (
	"errors"
	"math/big"
	"sync"
)

// NativeReserve is an in memory base asset reserve, used when the base
// asset is the chain native coin and in test mode.
type NativeReserve struct {
	mutex   sync.Mutex
	balance *big.Int
}

// NewNativeReserve new native reserve
func NewNativeReserve() *NativeReserve {
	return &NativeReserve{
		balance: new(big.Int),
	}
}

// Custody implements BaseAsset
func (r *NativeReserve) Custody(from string, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return errors.New("negative custody amount")
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.balance.Add(r.balance, amount)
	return nil
}

// Release implements BaseAsset
func (r *NativeReserve) Release(to string, amount *big.Int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.balance.Cmp(amount) < 0 {
		return errors.New("reserve underfunded")
	}
	r.balance.Sub(r.balance, amount)
	return nil
}

// Reserve implements BaseAsset
func (r *NativeReserve) Reserve() *big.Int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return new(big.Int).Set(r.balance)
}
