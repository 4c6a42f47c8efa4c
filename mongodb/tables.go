package mongodb

// MgoCrossTransfer is an outbound transfer registered on the source chain.
// Key is the transfer id (keccak hash of the encoded payload).
type MgoCrossTransfer struct {
	Key          string         `bson:"_id"`
	Sender       string         `bson:"sender"`
	Receiver     string         `bson:"receiver"`
	SrcChainID   string         `bson:"srcchainid"`
	DestChainID  string         `bson:"destchainid"`
	Value        string         `bson:"value"`
	PersonalRate string         `bson:"personalrate"`
	Payload      string         `bson:"payload"` // hex encoded
	Status       TransferStatus `bson:"status"`
	InitTime     int64          `bson:"inittime"`
	Timestamp    int64          `bson:"timestamp"`
	Memo         string         `bson:"memo"`
}

// MgoTransferResult is an inbound fulfillment on the destination chain.
type MgoTransferResult struct {
	Key          string         `bson:"_id"`
	Sender       string         `bson:"sender"`
	Receiver     string         `bson:"receiver"`
	SrcChainID   string         `bson:"srcchainid"`
	DestChainID  string         `bson:"destchainid"`
	Value        string         `bson:"value"`
	PersonalRate string         `bson:"personalrate"`
	Status       TransferStatus `bson:"status"`
	InitTime     int64          `bson:"inittime"`
	Timestamp    int64          `bson:"timestamp"`
	Memo         string         `bson:"memo"`
}

// vault record actions
const (
	VaultActionDeposit = "deposit"
	VaultActionRedeem  = "redeem"
)

// MgoVaultRecord is one deposit or redemption.
type MgoVaultRecord struct {
	Key       string `bson:"_id"`
	Account   string `bson:"account"`
	Action    string `bson:"action"`
	Value     string `bson:"value"`
	Timestamp int64  `bson:"timestamp"`
}

// MgoRateChange records one global rate update.
type MgoRateChange struct {
	Key       string `bson:"_id"`
	OldRate   string `bson:"oldrate"`
	NewRate   string `bson:"newrate"`
	Caller    string `bson:"caller"`
	Timestamp int64  `bson:"timestamp"`
}
