package vault

import (
	"errors"
	"math/big"
	"testing"

	"github.com/rebasefi/CrossChain-RebaseToken/common"
	"github.com/rebasefi/CrossChain-RebaseToken/ledger"
	"github.com/stretchr/testify/assert"
)

const (
	vaultID = "vault"
	alice   = "alice"

	oneYear = 31536000
)

type testClock struct {
	t int64
}

func (c *testClock) now() int64 {
	return c.t
}

func units(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), ledger.RatePrecision)
}

func ratePercent(percent int64) *big.Int {
	rate := new(big.Int).Mul(big.NewInt(percent), ledger.RatePrecision)
	return rate.Div(rate, big.NewInt(100))
}

func newTestVault(t *testing.T, asset BaseAsset) (*Vault, *ledger.Ledger, *testClock) {
	l, err := ledger.New(ratePercent(5))
	assert.Nil(t, err)
	clock := &testClock{t: 1700000000}
	l.SetTimeSource(clock.now)
	l.ACL().Grant(vaultID, ledger.CapMintBurn)
	return New(vaultID, l, asset), l, clock
}

func TestDepositMintsAtGlobalRate(t *testing.T) {
	v, l, _ := newTestVault(t, NewNativeReserve())

	err := v.Deposit(alice, units(100))
	assert.Nil(t, err)
	assert.Equal(t, units(100), l.BalanceOf(alice))
	assert.Equal(t, ratePercent(5), l.GetPersonalRate(alice))
	assert.Equal(t, units(100), v.Reserve())
}

func TestDepositRejectsZeroAmount(t *testing.T) {
	v, _, _ := newTestVault(t, NewNativeReserve())

	err := v.Deposit(alice, big.NewInt(0))
	assert.Equal(t, ledger.ErrAmountCannotBeZero, err)
	assert.Equal(t, big.NewInt(0), v.Reserve())
}

func TestRedeemRoundTrip(t *testing.T) {
	v, l, clock := newTestVault(t, NewNativeReserve())

	assert.Nil(t, v.Deposit(alice, units(100)))
	clock.t += oneYear

	// one year at 5%, full redemption releases 105 base units
	released, err := v.Redeem(alice, common.MaxUint256)
	assert.Nil(t, err)
	assert.Equal(t, units(105), released)
	assert.Equal(t, big.NewInt(0), l.BalanceOf(alice))
}

func TestRedeemZeroAmount(t *testing.T) {
	v, _, _ := newTestVault(t, NewNativeReserve())

	_, err := v.Redeem(alice, big.NewInt(0))
	assert.Equal(t, ErrInvalidAmount, err)

	// sentinel on an empty account resolves to zero
	_, err = v.Redeem(alice, common.MaxUint256)
	assert.Equal(t, ErrInvalidAmount, err)
}

func TestRedeemInsufficientBalance(t *testing.T) {
	v, l, _ := newTestVault(t, NewNativeReserve())

	assert.Nil(t, v.Deposit(alice, units(10)))
	_, err := v.Redeem(alice, units(20))
	assert.Equal(t, ledger.ErrInsufficientBalance, err)
	assert.Equal(t, units(10), l.BalanceOf(alice))
	assert.Equal(t, units(10), v.Reserve())
}

// failingAsset custodies fine but refuses to release
type failingAsset struct {
	*NativeReserve
}

func (a *failingAsset) Release(to string, amount *big.Int) error {
	return errors.New("release rejected")
}

func TestRedeemFailedRelease(t *testing.T) {
	asset := &failingAsset{NewNativeReserve()}
	v, l, clock := newTestVault(t, asset)

	assert.Nil(t, v.Deposit(alice, units(100)))
	clock.t += oneYear

	_, err := v.Redeem(alice, common.MaxUint256)
	assert.True(t, errors.Is(err, ErrTransferFailed))

	// the burn is compensated, balance and terms are unchanged
	assert.Equal(t, units(105), l.BalanceOf(alice))
	assert.Equal(t, ratePercent(5), l.GetPersonalRate(alice))
}

func TestReserveCoversMintedBalances(t *testing.T) {
	v, l, _ := newTestVault(t, NewNativeReserve())

	assert.Nil(t, v.Deposit(alice, units(100)))
	assert.Nil(t, v.Deposit("bob", units(50)))

	assert.True(t, v.Reserve().Cmp(l.TotalPrincipal()) >= 0)

	released, err := v.Redeem("bob", units(20))
	assert.Nil(t, err)
	assert.Equal(t, units(20), released)
	assert.Equal(t, units(130), v.Reserve())
}
