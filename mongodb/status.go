package mongodb

import (
	"fmt"
)

// -----------------------------------------------
// transfer status change graph
// symbol '--->' mean transfer only under checked condition
//
// 1. outbound cross transfer status change graph
//
// TxRegistered -> |- TxDispatchFailed ---> TxDispatched (redeliver)
//                 |- TxDispatched -> TxStable
//
// 2. inbound transfer result status change graph
//
// TxDelivered -> |- PayloadDecodeFailed -> manual
//                |- TxMintFailed        -> manual
//                |- TxFulfilled -> TxStable
// -----------------------------------------------

// TransferStatus cross transfer status
type TransferStatus uint16

// transfer status values
const (
	TxRegistered        TransferStatus = iota // 0
	TxDispatchFailed                          // 1
	TxDispatched                              // 2
	TxStable                                  // 3
	TxDelivered                               // 4
	PayloadDecodeFailed                       // 5
	TxMintFailed                              // 6
	TxFulfilled                               // 7
)

// CanRetry can retry
func (status TransferStatus) CanRetry() bool {
	return status == TxDispatchFailed
}

// String implements the stringer interface
func (status TransferStatus) String() string {
	switch status {
	case TxRegistered:
		return "TxRegistered"
	case TxDispatchFailed:
		return "TxDispatchFailed"
	case TxDispatched:
		return "TxDispatched"
	case TxStable:
		return "TxStable"
	case TxDelivered:
		return "TxDelivered"
	case PayloadDecodeFailed:
		return "PayloadDecodeFailed"
	case TxMintFailed:
		return "TxMintFailed"
	case TxFulfilled:
		return "TxFulfilled"
	default:
		return fmt.Sprintf("unknown transfer status %d", status)
	}
}
