package worker

import (
	"testing"

	"github.com/rebasefi/CrossChain-RebaseToken/mongodb"
	"github.com/stretchr/testify/assert"
)

func TestStableTargetStatus(t *testing.T) {
	fulfilled := &peerTransferResult{
		TransferID: "0x01",
		Status:     mongodb.TxFulfilled.String(),
	}
	status, concluded := stableTargetStatus(fulfilled.Status)
	assert.True(t, concluded)
	assert.Equal(t, mongodb.TxStable, status)

	mintFailed := &peerTransferResult{
		TransferID: "0x02",
		Status:     mongodb.TxMintFailed.String(),
		Memo:       "not authorized",
	}
	status, concluded = stableTargetStatus(mintFailed.Status)
	assert.True(t, concluded)
	assert.Equal(t, mongodb.TxDispatchFailed, status)

	decodeFailed := &peerTransferResult{
		TransferID: "0x03",
		Status:     mongodb.PayloadDecodeFailed.String(),
	}
	status, concluded = stableTargetStatus(decodeFailed.Status)
	assert.True(t, concluded)
	assert.Equal(t, mongodb.TxDispatchFailed, status)

	// peer has not concluded, keep polling
	pending := []string{
		"",
		mongodb.TxDelivered.String(),
		"SomeFutureStatus",
	}
	for _, peerStatus := range pending {
		_, concluded = stableTargetStatus(peerStatus)
		assert.False(t, concluded, peerStatus)
	}
}

func TestIsDispatchable(t *testing.T) {
	assert.True(t, isDispatchable(mongodb.TxRegistered))
	assert.True(t, isDispatchable(mongodb.TxDispatchFailed))

	assert.False(t, isDispatchable(mongodb.TxDispatched))
	assert.False(t, isDispatchable(mongodb.TxStable))
	assert.False(t, isDispatchable(mongodb.TxFulfilled))
}
