// Package vault custodies a base asset one to one against ledger balance.
// The vault keeps no balance bookkeeping of its own, the ledger is the
// single source of truth for all quantities and rates.
package vault

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/rebasefi/CrossChain-RebaseToken/common"
	"github.com/rebasefi/CrossChain-RebaseToken/ledger"
	"github.com/rebasefi/CrossChain-RebaseToken/log"
)

// vault errors
var (
	ErrInvalidAmount  = errors.New("invalid redeem amount")
	ErrTransferFailed = errors.New("base asset transfer failed")
)

// BaseAsset is the host chain value transfer primitive the vault custodies.
type BaseAsset interface {
	// Custody takes amount from the depositor into the reserve.
	Custody(from string, amount *big.Int) error
	// Release pays amount out of the reserve to the receiver.
	Release(to string, amount *big.Int) error
	// Reserve reports the custodied amount.
	Reserve() *big.Int
}

// Vault mints ledger balance 1:1 against deposited base asset and burns
// it back on redemption.
type Vault struct {
	id     string // principal on the ledger access list
	ledger *ledger.Ledger
	asset  BaseAsset
}

// New creates a vault operating the given ledger and base asset.
// The id must be granted the mint/burn capability on the ledger.
func New(id string, l *ledger.Ledger, asset BaseAsset) *Vault {
	return &Vault{
		id:     id,
		ledger: l,
		asset:  asset,
	}
}

// Deposit custodies amount of the base asset from the depositor and mints
// the same ledger balance at the current global rate.
func (v *Vault) Deposit(from string, amount *big.Int) error {
	if amount == nil || amount.Sign() == 0 {
		return ledger.ErrAmountCannotBeZero
	}
	if err := v.asset.Custody(from, amount); err != nil {
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	if err := v.ledger.MintWithCurrentRate(v.id, from, amount); err != nil {
		// the deposit did not happen, hand the custodied asset back
		if releaseErr := v.asset.Release(from, amount); releaseErr != nil {
			log.Error("return custodied deposit failed", "account", from, "amount", amount, "err", releaseErr)
		}
		return err
	}
	log.Info("vault deposit", "account", from, "amount", amount)
	return nil
}

// Redeem burns amount of the holder's ledger balance and releases the same
// amount of the base asset. The sentinel common.MaxUint256 resolves to the
// holder's full effective balance. Burn happens before release, a failed
// release restores the burned balance at the holder's previous personal
// rate so the whole call is all or nothing.
func (v *Vault) Redeem(to string, amount *big.Int) (*big.Int, error) {
	value := amount
	if amount == nil || common.IsMaxAmount(amount) {
		value = v.ledger.BalanceOf(to)
	}
	if value.Sign() == 0 {
		return nil, ErrInvalidAmount
	}
	previousRate := v.ledger.GetPersonalRate(to)
	if err := v.ledger.BurnFrom(v.id, value, to); err != nil {
		return nil, err
	}
	if err := v.asset.Release(to, value); err != nil {
		if mintErr := v.ledger.Mint(v.id, to, value, previousRate); mintErr != nil {
			log.Error("restore burned balance failed", "account", to, "amount", value, "err", mintErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	log.Info("vault redeem", "account", to, "amount", value)
	return value, nil
}

// Reserve reports the custodied base asset amount.
func (v *Vault) Reserve() *big.Int {
	return v.asset.Reserve()
}
