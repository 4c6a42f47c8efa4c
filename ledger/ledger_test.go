package ledger

import (
	"math/big"
	"testing"

	"github.com/rebasefi/CrossChain-RebaseToken/common"
	"github.com/stretchr/testify/assert"
)

const (
	rateAdmin = "admin"
	minter    = "operator"
	alice     = "alice"
	bob       = "bob"

	oneYear = 31536000
)

// testClock is a manual wall clock
type testClock struct {
	t int64
}

func (c *testClock) now() int64 {
	return c.t
}

func (c *testClock) advance(seconds int64) {
	c.t += seconds
}

// units scales whole tokens into the fixed point representation
func units(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), RatePrecision)
}

// ratePercent converts a per annum percentage into the fixed point rate
func ratePercent(percent int64) *big.Int {
	rate := new(big.Int).Mul(big.NewInt(percent), RatePrecision)
	return rate.Div(rate, big.NewInt(100))
}

func newTestLedger(t *testing.T, initialRate *big.Int) (*Ledger, *testClock) {
	l, err := New(initialRate)
	assert.Nil(t, err)
	clock := &testClock{t: 1700000000}
	l.SetTimeSource(clock.now)
	l.ACL().Grant(rateAdmin, CapRateSetter)
	l.ACL().Grant(minter, CapMintBurn)
	return l, clock
}

func TestNewLedgerRejectsZeroRate(t *testing.T) {
	_, err := New(nil)
	assert.Equal(t, ErrRateCannotBeZero, err)
	_, err = New(big.NewInt(0))
	assert.Equal(t, ErrRateCannotBeZero, err)
}

func TestGlobalRateIsMonotonic(t *testing.T) {
	l, _ := newTestLedger(t, ratePercent(5))

	err := l.SetGlobalRate(rateAdmin, ratePercent(4))
	assert.Nil(t, err)
	assert.Equal(t, ratePercent(4), l.GetGlobalRate())

	err = l.SetGlobalRate(rateAdmin, ratePercent(6))
	assert.Equal(t, ErrRateCannotIncrease, err)
	assert.Equal(t, ratePercent(4), l.GetGlobalRate())

	err = l.SetGlobalRate(rateAdmin, big.NewInt(0))
	assert.Equal(t, ErrRateCannotBeZero, err)

	// same value is allowed, non-increasing not strictly decreasing
	err = l.SetGlobalRate(rateAdmin, ratePercent(4))
	assert.Nil(t, err)

	err = l.SetGlobalRate(alice, ratePercent(3))
	assert.Equal(t, ErrNotAuthorized, err)
	assert.Equal(t, ratePercent(4), l.GetGlobalRate())
}

func TestAccrualCorrectness(t *testing.T) {
	l, clock := newTestLedger(t, ratePercent(5))

	err := l.MintWithCurrentRate(minter, alice, units(100))
	assert.Nil(t, err)
	assert.Equal(t, units(100), l.BalanceOf(alice))
	assert.Equal(t, ratePercent(5), l.GetPersonalRate(alice))

	// a zero duration gap adds exactly zero
	assert.Equal(t, units(100), l.BalanceOf(alice))

	clock.advance(oneYear)
	assert.Equal(t, units(105), l.BalanceOf(alice))
	// reading does not mutate, principal stays at the settled value
	assert.Equal(t, units(100), l.PrincipalOf(alice))

	clock.advance(oneYear)
	// simple interest, no compounding between settlements
	assert.Equal(t, units(110), l.BalanceOf(alice))
}

func TestSettlementIsIdempotent(t *testing.T) {
	l, clock := newTestLedger(t, ratePercent(5))

	assert.Nil(t, l.MintWithCurrentRate(minter, alice, units(100)))
	clock.advance(oneYear)

	// a self transfer of zero settles the pending interest
	assert.Nil(t, l.Transfer(alice, alice, big.NewInt(0)))
	assert.Equal(t, units(105), l.PrincipalOf(alice))

	// settling again with no elapsed time must add nothing
	assert.Nil(t, l.Transfer(alice, alice, big.NewInt(0)))
	assert.Equal(t, units(105), l.PrincipalOf(alice))
	assert.Equal(t, units(105), l.BalanceOf(alice))
}

func TestMintGuards(t *testing.T) {
	l, _ := newTestLedger(t, ratePercent(5))

	err := l.Mint(minter, "", units(1), ratePercent(5))
	assert.Equal(t, ErrMintToZeroAddress, err)

	err = l.Mint(minter, "0x0000000000000000000000000000000000000000", units(1), ratePercent(5))
	assert.Equal(t, ErrMintToZeroAddress, err)

	err = l.Mint(minter, alice, big.NewInt(0), ratePercent(5))
	assert.Equal(t, ErrAmountCannotBeZero, err)

	err = l.Mint(minter, alice, units(1), big.NewInt(0))
	assert.Equal(t, ErrRateCannotBeZero, err)

	err = l.Mint(alice, alice, units(1), ratePercent(5))
	assert.Equal(t, ErrNotAuthorized, err)

	assert.Equal(t, big.NewInt(0), l.BalanceOf(alice))
}

func TestMintOverwritesPersonalRate(t *testing.T) {
	l, clock := newTestLedger(t, ratePercent(5))

	assert.Nil(t, l.MintWithCurrentRate(minter, alice, units(100)))
	clock.advance(oneYear)

	// a second mint settles the year at 5% then switches the whole
	// balance to the new rate
	assert.Nil(t, l.Mint(minter, alice, units(95), ratePercent(2)))
	assert.Equal(t, units(200), l.BalanceOf(alice))
	assert.Equal(t, ratePercent(2), l.GetPersonalRate(alice))

	clock.advance(oneYear)
	assert.Equal(t, units(204), l.BalanceOf(alice))
}

func TestBurnFrom(t *testing.T) {
	l, clock := newTestLedger(t, ratePercent(5))

	assert.Nil(t, l.MintWithCurrentRate(minter, alice, units(100)))
	clock.advance(oneYear)

	err := l.BurnFrom(minter, units(5), alice)
	assert.Nil(t, err)
	assert.Equal(t, units(100), l.BalanceOf(alice))

	err = l.BurnFrom(minter, units(200), alice)
	assert.Equal(t, ErrInsufficientBalance, err)
	assert.Equal(t, units(100), l.BalanceOf(alice))

	err = l.BurnFrom(alice, units(1), alice)
	assert.Equal(t, ErrNotAuthorized, err)

	// sentinel burns the full effective balance
	err = l.BurnFrom(minter, common.MaxUint256, alice)
	assert.Nil(t, err)
	assert.Equal(t, big.NewInt(0), l.BalanceOf(alice))

	// a drained account cannot be burned again
	err = l.BurnFrom(minter, common.MaxUint256, alice)
	assert.Equal(t, ErrAmountCannotBeZero, err)
}

func TestRatePersistsAtZeroBalance(t *testing.T) {
	l, _ := newTestLedger(t, ratePercent(5))

	assert.Nil(t, l.MintWithCurrentRate(minter, alice, units(10)))
	assert.Nil(t, l.SetGlobalRate(rateAdmin, ratePercent(3)))
	assert.Nil(t, l.BurnFrom(minter, common.MaxUint256, alice))

	assert.Equal(t, big.NewInt(0), l.BalanceOf(alice))
	assert.Equal(t, ratePercent(5), l.GetPersonalRate(alice))
}

func TestTransferConservation(t *testing.T) {
	l, clock := newTestLedger(t, ratePercent(5))

	assert.Nil(t, l.MintWithCurrentRate(minter, alice, units(100)))
	assert.Nil(t, l.MintWithCurrentRate(minter, bob, units(100)))
	clock.advance(oneYear)

	sumBefore := new(big.Int).Add(l.BalanceOf(alice), l.BalanceOf(bob))
	assert.Nil(t, l.Transfer(alice, bob, units(30)))
	sumAfter := new(big.Int).Add(l.BalanceOf(alice), l.BalanceOf(bob))
	assert.Equal(t, sumBefore, sumAfter)

	assert.Equal(t, units(75), l.BalanceOf(alice))
	assert.Equal(t, units(135), l.BalanceOf(bob))
}

func TestTransferSeedsRecipientRate(t *testing.T) {
	l, _ := newTestLedger(t, ratePercent(5))

	assert.Nil(t, l.MintWithCurrentRate(minter, alice, units(100)))
	assert.Nil(t, l.SetGlobalRate(rateAdmin, ratePercent(2)))

	// first time recipient inherits the sender's rate, not the global one
	assert.Nil(t, l.Transfer(alice, bob, units(40)))
	assert.Equal(t, ratePercent(5), l.GetPersonalRate(bob))

	// a funded recipient keeps its own rate
	assert.Nil(t, l.Mint(minter, "carol", units(10), ratePercent(1)))
	assert.Nil(t, l.Transfer(alice, "carol", units(10)))
	assert.Equal(t, ratePercent(1), l.GetPersonalRate("carol"))
}

func TestTransferInsufficientBalance(t *testing.T) {
	l, _ := newTestLedger(t, ratePercent(5))

	assert.Nil(t, l.MintWithCurrentRate(minter, alice, units(10)))
	err := l.Transfer(alice, bob, units(11))
	assert.Equal(t, ErrInsufficientBalance, err)
	assert.Equal(t, units(10), l.BalanceOf(alice))
	assert.Equal(t, big.NewInt(0), l.BalanceOf(bob))
}

func TestTransferSentinelMovesFullBalance(t *testing.T) {
	l, clock := newTestLedger(t, ratePercent(5))

	assert.Nil(t, l.MintWithCurrentRate(minter, alice, units(100)))
	clock.advance(oneYear)

	assert.Nil(t, l.Transfer(alice, bob, common.MaxUint256))
	assert.Equal(t, big.NewInt(0), l.BalanceOf(alice))
	assert.Equal(t, units(105), l.BalanceOf(bob))
}

func TestTransferFrom(t *testing.T) {
	l, _ := newTestLedger(t, ratePercent(5))

	assert.Nil(t, l.MintWithCurrentRate(minter, alice, units(100)))
	assert.Nil(t, l.TransferFrom("spender", alice, bob, units(25)))
	assert.Equal(t, units(75), l.BalanceOf(alice))
	assert.Equal(t, units(25), l.BalanceOf(bob))
	assert.Equal(t, ratePercent(5), l.GetPersonalRate(bob))
}

func TestEffectiveSupply(t *testing.T) {
	l, clock := newTestLedger(t, ratePercent(5))

	assert.Nil(t, l.MintWithCurrentRate(minter, alice, units(100)))
	assert.Nil(t, l.MintWithCurrentRate(minter, bob, units(100)))
	assert.Equal(t, units(200), l.TotalPrincipal())
	assert.Equal(t, units(200), l.EffectiveSupply())

	clock.advance(oneYear)
	assert.Equal(t, units(200), l.TotalPrincipal())
	assert.Equal(t, units(210), l.EffectiveSupply())
}
