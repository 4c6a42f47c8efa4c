package bridge

import (
	"math/big"
	"testing"

	"github.com/rebasefi/CrossChain-RebaseToken/common"
	"github.com/rebasefi/CrossChain-RebaseToken/ledger"
	"github.com/stretchr/testify/assert"
)

const (
	bridgeID = "bridge"
	minter   = "operator"
	alice    = "alice"
	bob      = "bob"

	chainA = "chain-a"
	chainB = "chain-b"

	oneYear = 31536000
)

func units(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), ledger.RatePrecision)
}

func ratePercent(percent int64) *big.Int {
	rate := new(big.Int).Mul(big.NewInt(percent), ledger.RatePrecision)
	return rate.Div(rate, big.NewInt(100))
}

func newTestChain(t *testing.T, chainID string, globalRate *big.Int) (*Adapter, *ledger.Ledger) {
	l, err := ledger.New(globalRate)
	assert.Nil(t, err)
	l.ACL().Grant(bridgeID, ledger.CapMintBurn)
	l.ACL().Grant(minter, ledger.CapMintBurn)
	return NewAdapter(bridgeID, chainID, l, NewMemoryIndex()), l
}

func TestBridgePreservesPersonalRate(t *testing.T) {
	srcAdapter, srcLedger := newTestChain(t, chainA, ratePercent(5))
	dstAdapter, dstLedger := newTestChain(t, chainB, ratePercent(1))

	transport := NewLoopbackTransport()
	transport.Register(srcAdapter)
	transport.Register(dstAdapter)

	assert.Nil(t, srcLedger.MintWithCurrentRate(minter, alice, units(100)))

	_, encoded, err := srcAdapter.SendOut(alice, bob, chainB, units(40))
	assert.Nil(t, err)
	assert.Equal(t, units(60), srcLedger.BalanceOf(alice))

	assert.Nil(t, transport.Deliver(chainB, encoded))

	// the receiver inherits the sender's 5% terms, not chain B's 1%
	assert.Equal(t, units(40), dstLedger.BalanceOf(bob))
	assert.Equal(t, ratePercent(5), dstLedger.GetPersonalRate(bob))
	assert.Equal(t, ratePercent(1), dstLedger.GetGlobalRate())
}

func TestBridgeSentinelSendsFullBalance(t *testing.T) {
	srcAdapter, srcLedger := newTestChain(t, chainA, ratePercent(5))

	assert.Nil(t, srcLedger.MintWithCurrentRate(minter, alice, units(100)))

	payload, _, err := srcAdapter.SendOut(alice, bob, chainB, common.MaxUint256)
	assert.Nil(t, err)
	assert.Equal(t, units(100), payload.Amount)
	assert.Equal(t, big.NewInt(0), srcLedger.BalanceOf(alice))
}

func TestBridgeBurnFailureCommitsNothing(t *testing.T) {
	srcAdapter, srcLedger := newTestChain(t, chainA, ratePercent(5))

	assert.Nil(t, srcLedger.MintWithCurrentRate(minter, alice, units(10)))

	_, _, err := srcAdapter.SendOut(alice, bob, chainB, units(20))
	assert.Equal(t, ledger.ErrInsufficientBalance, err)
	assert.Equal(t, units(10), srcLedger.BalanceOf(alice))
}

func TestBridgeRejectsWrongDestinationChain(t *testing.T) {
	srcAdapter, srcLedger := newTestChain(t, chainA, ratePercent(5))
	dstAdapter, dstLedger := newTestChain(t, chainB, ratePercent(5))

	assert.Nil(t, srcLedger.MintWithCurrentRate(minter, alice, units(10)))
	_, encoded, err := srcAdapter.SendOut(alice, bob, "chain-c", units(10))
	assert.Nil(t, err)

	_, err = dstAdapter.ReceiveIn(encoded)
	assert.Equal(t, ErrWrongDestChain, err)
	assert.Equal(t, big.NewInt(0), dstLedger.BalanceOf(bob))
}

func TestBridgeRejectsDuplicateDelivery(t *testing.T) {
	srcAdapter, srcLedger := newTestChain(t, chainA, ratePercent(5))
	dstAdapter, dstLedger := newTestChain(t, chainB, ratePercent(5))

	assert.Nil(t, srcLedger.MintWithCurrentRate(minter, alice, units(10)))
	_, encoded, err := srcAdapter.SendOut(alice, bob, chainB, units(10))
	assert.Nil(t, err)

	_, err = dstAdapter.ReceiveIn(encoded)
	assert.Nil(t, err)
	assert.Equal(t, units(10), dstLedger.BalanceOf(bob))

	_, err = dstAdapter.ReceiveIn(encoded)
	assert.Equal(t, ErrAlreadyDelivered, err)
	assert.Equal(t, units(10), dstLedger.BalanceOf(bob))
}

func TestBridgeRoundTripKeepsAccruing(t *testing.T) {
	srcAdapter, srcLedger := newTestChain(t, chainA, ratePercent(5))
	dstAdapter, dstLedger := newTestChain(t, chainB, ratePercent(1))

	clock := int64(1700000000)
	now := func() int64 { return clock }
	srcLedger.SetTimeSource(now)
	dstLedger.SetTimeSource(now)

	transport := NewLoopbackTransport()
	transport.Register(srcAdapter)
	transport.Register(dstAdapter)

	assert.Nil(t, srcLedger.MintWithCurrentRate(minter, alice, units(100)))

	_, encoded, err := srcAdapter.SendOut(alice, alice, chainB, common.MaxUint256)
	assert.Nil(t, err)
	assert.Nil(t, transport.Deliver(chainB, encoded))

	// one year on the destination chain still accrues at the original 5%
	clock += oneYear
	assert.Equal(t, units(105), dstLedger.BalanceOf(alice))
}

func TestLoopbackUnknownPeer(t *testing.T) {
	transport := NewLoopbackTransport()
	err := transport.Deliver(chainB, []byte{1})
	assert.Equal(t, ErrUnknownPeerChain, err)
}
