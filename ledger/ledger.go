// Package ledger implements an interest accruing token ledger.
// Each holder's balance grows linearly at the personal rate locked in when
// the holder last received a funding event. Interest is settled lazily at
// the top of every mutating operation, there is no background accruer.
package ledger

import (
	"math/big"
	"sync"

	"github.com/rebasefi/CrossChain-RebaseToken/common"
	"github.com/rebasefi/CrossChain-RebaseToken/log"
)

// fixed point interest constants
// a per annum rate of 5% is stored as 5e16
var (
	RatePrecision  = new(big.Int).SetUint64(1e18)
	SecondsPerYear = big.NewInt(31536000)

	accrualDenominator = new(big.Int).Mul(SecondsPerYear, RatePrecision)
)

// Account is one holder's ledger entry.
// Principal is the last settled balance excluding unmaterialized interest.
// PersonalRate is the per annum rate locked at the last funding event, it
// survives a zero balance so refunding the same account resumes the terms.
// LastAccrual is the unix time of the last settlement.
type Account struct {
	Principal    *big.Int
	PersonalRate *big.Int
	LastAccrual  int64
}

// Ledger is the authoritative balance ledger of one chain.
// All operations are single atomic read-modify-write units, the mutex
// models the host chain's serialized transaction semantics.
type Ledger struct {
	mutex sync.RWMutex

	globalRate     *big.Int
	accounts       map[string]*Account
	totalPrincipal *big.Int

	acl *AccessList

	now func() int64
}

// New creates a ledger issuing new balances at initialGlobalRate.
func New(initialGlobalRate *big.Int) (*Ledger, error) {
	if initialGlobalRate == nil || initialGlobalRate.Sign() <= 0 {
		return nil, ErrRateCannotBeZero
	}
	return &Ledger{
		globalRate:     new(big.Int).Set(initialGlobalRate),
		accounts:       make(map[string]*Account),
		totalPrincipal: new(big.Int),
		acl:            NewAccessList(),
		now:            common.Now,
	}, nil
}

// ACL returns the capability table of this ledger.
func (l *Ledger) ACL() *AccessList {
	return l.acl
}

// SetTimeSource overrides the wall clock the ledger reads,
// used for deterministic replay and in tests.
func (l *Ledger) SetTimeSource(now func() int64) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.now = now
}

// SetGlobalRate lowers the rate assigned to newly funded accounts.
// The global rate is monotonically non-increasing, raising it fails.
func (l *Ledger) SetGlobalRate(caller string, newRate *big.Int) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if err := l.acl.require(caller, CapRateSetter); err != nil {
		return err
	}
	if newRate == nil || newRate.Sign() == 0 {
		return ErrRateCannotBeZero
	}
	if newRate.Cmp(l.globalRate) > 0 {
		return ErrRateCannotIncrease
	}
	oldRate := l.globalRate
	l.globalRate = new(big.Int).Set(newRate)
	log.Info("global interest rate changed", "oldRate", oldRate, "newRate", newRate, "caller", caller)
	return nil
}

// Mint credits amount to account and locks rate as the account's personal
// rate. The rate OVERWRITES any previous personal rate, cross chain re-mints
// depend on this to reconstitute the sender's original terms.
func (l *Ledger) Mint(caller, account string, amount, rate *big.Int) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.mint(caller, account, amount, rate)
}

// MintWithCurrentRate credits amount to account at the current global rate,
// the ordinary non-bridge funding path.
func (l *Ledger) MintWithCurrentRate(caller, account string, amount *big.Int) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.mint(caller, account, amount, l.globalRate)
}

func (l *Ledger) mint(caller, account string, amount, rate *big.Int) error {
	if err := l.acl.require(caller, CapMintBurn); err != nil {
		return err
	}
	if common.IsZeroAddress(account) {
		return ErrMintToZeroAddress
	}
	if amount == nil || amount.Sign() == 0 {
		return ErrAmountCannotBeZero
	}
	if rate == nil || rate.Sign() == 0 {
		return ErrRateCannotBeZero
	}
	acc := l.settle(account)
	acc.PersonalRate.Set(rate)
	acc.Principal.Add(acc.Principal, amount)
	l.totalPrincipal.Add(l.totalPrincipal, amount)
	log.Info("ledger mint", "account", account, "amount", amount, "rate", rate, "caller", caller)
	return nil
}

// BurnFrom debits amount from account. The sentinel common.MaxUint256
// resolves to the account's full effective balance.
func (l *Ledger) BurnFrom(caller string, amount *big.Int, account string) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if err := l.acl.require(caller, CapMintBurn); err != nil {
		return err
	}
	if amount == nil {
		return ErrAmountCannotBeZero
	}
	effective := l.effectiveBalance(account)
	value := amount
	if common.IsMaxAmount(amount) {
		value = effective
	}
	if value.Sign() == 0 {
		return ErrAmountCannotBeZero
	}
	if effective.Cmp(value) < 0 {
		return ErrInsufficientBalance
	}
	acc := l.settle(account)
	acc.Principal.Sub(acc.Principal, value)
	l.totalPrincipal.Sub(l.totalPrincipal, value)
	log.Info("ledger burn", "account", account, "amount", value, "caller", caller)
	return nil
}

// Transfer moves amount from sender to recipient.
// The sentinel common.MaxUint256 resolves to the sender's full effective
// balance. A recipient holding zero raw principal is (re)seeded with the
// sender's current personal rate.
func (l *Ledger) Transfer(sender, recipient string, amount *big.Int) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.transfer(sender, recipient, amount)
}

// TransferFrom moves amount from sender to recipient on behalf of spender.
// Allowance bookkeeping is an administrative concern outside this ledger.
func (l *Ledger) TransferFrom(spender, sender, recipient string, amount *big.Int) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	log.Debug("ledger transferFrom", "spender", spender, "sender", sender, "recipient", recipient)
	return l.transfer(sender, recipient, amount)
}

func (l *Ledger) transfer(sender, recipient string, amount *big.Int) error {
	if amount == nil {
		return ErrAmountCannotBeZero
	}
	effective := l.effectiveBalance(sender)
	value := amount
	if common.IsMaxAmount(amount) {
		value = effective
	}
	if effective.Cmp(value) < 0 {
		return ErrInsufficientBalance
	}
	senderAcc := l.settle(sender)
	recipientAcc := l.settle(recipient)
	if recipientAcc.Principal.Sign() == 0 {
		recipientAcc.PersonalRate.Set(senderAcc.PersonalRate)
	}
	senderAcc.Principal.Sub(senderAcc.Principal, value)
	recipientAcc.Principal.Add(recipientAcc.Principal, value)
	log.Info("ledger transfer", "sender", sender, "recipient", recipient, "amount", value)
	return nil
}

// BalanceOf returns principal plus interest accrued up to now.
// Pure read, mutates nothing.
func (l *Ledger) BalanceOf(account string) *big.Int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.effectiveBalance(account)
}

// PrincipalOf returns the last settled raw balance.
func (l *Ledger) PrincipalOf(account string) *big.Int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	acc := l.accounts[account]
	if acc == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(acc.Principal)
}

// GetPersonalRate returns the rate locked to the account,
// zero if the account was never funded.
func (l *Ledger) GetPersonalRate(account string) *big.Int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	acc := l.accounts[account]
	if acc == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(acc.PersonalRate)
}

// GetGlobalRate returns the rate assigned to newly funded accounts.
func (l *Ledger) GetGlobalRate() *big.Int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return new(big.Int).Set(l.globalRate)
}

// TotalPrincipal returns the aggregate settled principal.
func (l *Ledger) TotalPrincipal() *big.Int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return new(big.Int).Set(l.totalPrincipal)
}

// EffectiveSupply returns the sum of all effective balances as of now.
func (l *Ledger) EffectiveSupply() *big.Int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	nowTime := l.now()
	supply := new(big.Int)
	for _, acc := range l.accounts {
		supply.Add(supply, acc.Principal)
		supply.Add(supply, accruedInterest(acc, nowTime))
	}
	return supply
}

// settle materializes pending interest into principal and resets the
// accrual clock. Idempotent, a zero elapsed gap adds exactly zero.
// Creates the account entry on first touch. Caller must hold the lock.
func (l *Ledger) settle(account string) *Account {
	nowTime := l.now()
	acc := l.accounts[account]
	if acc == nil {
		acc = &Account{
			Principal:    new(big.Int),
			PersonalRate: new(big.Int),
			LastAccrual:  nowTime,
		}
		l.accounts[account] = acc
		return acc
	}
	interest := accruedInterest(acc, nowTime)
	if interest.Sign() > 0 {
		acc.Principal.Add(acc.Principal, interest)
		l.totalPrincipal.Add(l.totalPrincipal, interest)
	}
	acc.LastAccrual = nowTime
	return acc
}

// effectiveBalance computes principal + accrued without mutating.
// Caller must hold the lock.
func (l *Ledger) effectiveBalance(account string) *big.Int {
	acc := l.accounts[account]
	if acc == nil {
		return new(big.Int)
	}
	balance := new(big.Int).Set(acc.Principal)
	return balance.Add(balance, accruedInterest(acc, l.now()))
}

// accruedInterest is the simple linear interest of one account:
// principal * rate * elapsed / (SecondsPerYear * RatePrecision)
func accruedInterest(acc *Account, now int64) *big.Int {
	if acc.Principal.Sign() == 0 || acc.PersonalRate.Sign() == 0 {
		return new(big.Int)
	}
	elapsed := now - acc.LastAccrual
	if elapsed <= 0 {
		return new(big.Int)
	}
	interest := new(big.Int).Mul(acc.Principal, acc.PersonalRate)
	interest.Mul(interest, big.NewInt(elapsed))
	return interest.Div(interest, accrualDenominator)
}
