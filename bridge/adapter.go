// Package bridge moves ledger balance between chains by burning on the
// source side and minting on the destination side, carrying each holder's
// personal interest rate across the hop. The cross chain transport itself
// is an external collaborator trusted to deliver each payload exactly once.
package bridge

import (
	"math/big"

	"github.com/rebasefi/CrossChain-RebaseToken/common"
	"github.com/rebasefi/CrossChain-RebaseToken/ledger"
	"github.com/rebasefi/CrossChain-RebaseToken/log"
)

// Transport is the trusted external channel delivering an encoded transfer
// payload to the destination chain.
type Transport interface {
	Deliver(destChainID string, payload []byte) error
}

// DeliveredIndex records transfer IDs already fulfilled locally.
type DeliveredIndex interface {
	IsDelivered(id common.Hash) bool
	MarkDelivered(id common.Hash) error
}

// Adapter is one chain's endpoint of the burn and mint pair.
type Adapter struct {
	id        string // principal on the ledger access list
	chainID   string
	ledger    *ledger.Ledger
	delivered DeliveredIndex
}

// NewAdapter creates the chain local bridge adapter.
// The id must be granted the mint/burn capability on the ledger.
func NewAdapter(id, chainID string, l *ledger.Ledger, delivered DeliveredIndex) *Adapter {
	return &Adapter{
		id:        id,
		chainID:   chainID,
		ledger:    l,
		delivered: delivered,
	}
}

// ChainID returns the local chain identifier.
func (a *Adapter) ChainID() string {
	return a.chainID
}

// SendOut burns the sender's balance and returns the payload to hand to
// the transport. The sender's personal rate at burn time rides in the
// payload. The sentinel common.MaxUint256 resolves to the sender's full
// effective balance. A failed burn aborts with nothing committed.
func (a *Adapter) SendOut(sender, receiver, destChainID string, amount *big.Int) (*TransferPayload, []byte, error) {
	value := amount
	if amount == nil || common.IsMaxAmount(amount) {
		value = a.ledger.BalanceOf(sender)
	}
	payload := &TransferPayload{
		Sender:       sender,
		Receiver:     receiver,
		SrcChainID:   a.chainID,
		DestChainID:  destChainID,
		Amount:       value,
		PersonalRate: a.ledger.GetPersonalRate(sender),
		Timestamp:    common.Now(),
	}
	encoded, err := payload.Encode()
	if err != nil {
		return nil, nil, err
	}
	if err := a.ledger.BurnFrom(a.id, value, sender); err != nil {
		return nil, nil, err
	}
	log.Info("bridge send out",
		"transferID", TransferID(encoded).Hex(),
		"sender", sender, "receiver", receiver,
		"destChainID", destChainID, "amount", value,
		"personalRate", payload.PersonalRate)
	return payload, encoded, nil
}

// ReceiveIn fulfills a delivered payload by minting to the receiver at the
// personal rate carried from the source chain, regardless of the local
// global rate. Mint failure aborts without marking the transfer delivered.
func (a *Adapter) ReceiveIn(encoded []byte) (*TransferPayload, error) {
	payload, err := DecodePayload(encoded)
	if err != nil {
		return nil, err
	}
	if payload.DestChainID != a.chainID {
		return nil, ErrWrongDestChain
	}
	transferID := TransferID(encoded)
	if a.delivered != nil && a.delivered.IsDelivered(transferID) {
		return nil, ErrAlreadyDelivered
	}
	if err := a.ledger.Mint(a.id, payload.Receiver, payload.Amount, payload.PersonalRate); err != nil {
		return payload, err
	}
	if a.delivered != nil {
		if err := a.delivered.MarkDelivered(transferID); err != nil {
			log.Error("mark transfer delivered failed", "transferID", transferID.Hex(), "err", err)
		}
	}
	log.Info("bridge receive in",
		"transferID", transferID.Hex(),
		"receiver", payload.Receiver,
		"srcChainID", payload.SrcChainID,
		"amount", payload.Amount,
		"personalRate", payload.PersonalRate)
	return payload, nil
}
