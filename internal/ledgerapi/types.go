package ledgerapi

import (
	"github.com/rebasefi/CrossChain-RebaseToken/params"
)

// SuccessPostResult success post result
const SuccessPostResult = "Success"

// ServerInfo server info
type ServerInfo struct {
	Identifier   string
	ChainID      string
	GlobalRate   string
	VaultEnabled bool
	Peers        []*params.PeerChainConfig
	Version      string
}

// BalanceInfo effective balance of one account
type BalanceInfo struct {
	Account      string
	Balance      string
	Principal    string
	PersonalRate string
}

// TransferArgs peer to peer transfer arguments
type TransferArgs struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

// VaultArgs deposit and redeem arguments
type VaultArgs struct {
	Account string `json:"account"`
	Amount  string `json:"amount"`
}

// RedeemResult redeem result
type RedeemResult struct {
	Account  string
	Released string
}

// CrossChainArgs cross chain send arguments
type CrossChainArgs struct {
	Sender      string `json:"sender"`
	Receiver    string `json:"receiver"`
	DestChainID string `json:"destchainid"`
	Amount      string `json:"amount"`
}

// CrossChainResult cross chain send result
type CrossChainResult struct {
	TransferID   string
	Sender       string
	Receiver     string
	SrcChainID   string
	DestChainID  string
	Value        string
	PersonalRate string
	Payload      string
}

// TransferInfo outbound transfer record
type TransferInfo struct {
	TransferID   string
	Sender       string
	Receiver     string
	SrcChainID   string
	DestChainID  string
	Value        string
	PersonalRate string
	Status       string
	InitTime     int64
	Timestamp    int64
	Memo         string `json:",omitempty"`
}

// TransferResultInfo inbound fulfillment record
type TransferResultInfo struct {
	TransferID   string
	Sender       string
	Receiver     string
	SrcChainID   string
	DestChainID  string
	Value        string
	PersonalRate string
	Status       string
	Timestamp    int64
	Memo         string `json:",omitempty"`
}

// VaultRecordInfo one deposit or redemption
type VaultRecordInfo struct {
	Account   string
	Action    string
	Value     string
	Timestamp int64
}

// RateChangeInfo one global rate update
type RateChangeInfo struct {
	OldRate   string
	NewRate   string
	Caller    string
	Timestamp int64
}

// AdminCapabilityArgs grant and revoke arguments
type AdminCapabilityArgs struct {
	Caller     string `json:"caller"`
	Principal  string `json:"principal"`
	Capability string `json:"capability"`
}

// AdminRateArgs set global rate arguments
type AdminRateArgs struct {
	Caller  string `json:"caller"`
	NewRate string `json:"newrate"`
}
