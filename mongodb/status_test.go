package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransferStatusString(t *testing.T) {
	cases := map[TransferStatus]string{
		TxRegistered:        "TxRegistered",
		TxDispatchFailed:    "TxDispatchFailed",
		TxDispatched:        "TxDispatched",
		TxStable:            "TxStable",
		TxDelivered:         "TxDelivered",
		PayloadDecodeFailed: "PayloadDecodeFailed",
		TxMintFailed:        "TxMintFailed",
		TxFulfilled:         "TxFulfilled",
	}
	for status, str := range cases {
		assert.Equal(t, str, status.String())
	}
	assert.Equal(t, "unknown transfer status 100", TransferStatus(100).String())
}

func TestTransferStatusCanRetry(t *testing.T) {
	assert.True(t, TxDispatchFailed.CanRetry())

	terminal := []TransferStatus{
		TxRegistered, TxDispatched, TxStable,
		TxDelivered, PayloadDecodeFailed, TxMintFailed, TxFulfilled,
	}
	for _, status := range terminal {
		assert.False(t, status.CanRetry(), status.String())
	}
}

func TestCheckTransferKey(t *testing.T) {
	assert.NoError(t, checkTransferKey("0x70a9b775059d030b1d9b7ef60cc7bfdb2b3d1b104b0c4236a3d71936b7b969ac"))

	wrong := []string{
		"",
		"0x1234",     // too short
		"notahash",   // not hex
		"0x70a9b775", // truncated
	}
	for _, key := range wrong {
		assert.Equal(t, ErrWrongKey, checkTransferKey(key), key)
	}
}
