package worker

import (
	"fmt"
	"sync"

	"github.com/rebasefi/CrossChain-RebaseToken/endpoint"
	"github.com/rebasefi/CrossChain-RebaseToken/mongodb"
	"github.com/rebasefi/CrossChain-RebaseToken/rpc/client"
)

var stableStarter sync.Once

// peerTransferResult is the subset of the peer's transfer result
// response the stable job cares about.
type peerTransferResult struct {
	TransferID string
	Status     string
	Memo       string
}

// StartStableJob stable job
func StartStableJob() {
	stableStarter.Do(func() {
		logWorker("stable", "start update cross transfer stable job")
		for {
			findAndStabilize()
			restInJob(restIntervalInStableJob)
		}
	})
}

func findAndStabilize() {
	septime := getSepTimeInFind(maxStableLifetime)
	transfers, err := mongodb.FindCrossTransfersWithStatus(mongodb.TxDispatched, septime)
	if err != nil {
		logWorkerError("stable", "find dispatched transfers error", err)
		return
	}
	if len(transfers) > 0 {
		logWorker("stable", "find dispatched transfers to stabilize", "count", len(transfers))
	}
	for _, transfer := range transfers {
		err = processStable(transfer)
		if err != nil {
			logWorkerError("stable", "process stable error", err, "transferID", transfer.Key)
		}
	}
}

func processStable(transfer *mongodb.MgoCrossTransfer) error {
	logWorkerTrace("stable", "start process stable", "transferID", transfer.Key, "destChainID", transfer.DestChainID)
	apiAddress, exist := endpoint.PeerAPIAddress(transfer.DestChainID)
	if !exist {
		// loopback transport delivers in process, fulfillment is immediate
		return markTransferStable(transfer.Key)
	}
	var result peerTransferResult
	url := fmt.Sprintf("%v/transfer/result/%v", apiAddress, transfer.Key)
	err := client.RPCGet(&result, url)
	if err != nil {
		logWorkerTrace("stable", "query peer transfer result failed", "transferID", transfer.Key, "err", err)
		return nil
	}
	status, concluded := stableTargetStatus(result.Status)
	if !concluded {
		return nil
	}
	if status == mongodb.TxStable {
		return markTransferStable(transfer.Key)
	}
	return mongodb.UpdateCrossTransferStatus(transfer.Key, status, now(), result.Memo)
}

// stableTargetStatus maps the peer reported fulfillment status to the
// next local status of a dispatched transfer. concluded is false while
// the peer has not fulfilled or rejected the transfer yet.
func stableTargetStatus(peerStatus string) (status mongodb.TransferStatus, concluded bool) {
	switch peerStatus {
	case mongodb.TxFulfilled.String():
		return mongodb.TxStable, true
	case mongodb.TxMintFailed.String(), mongodb.PayloadDecodeFailed.String():
		return mongodb.TxDispatchFailed, true
	default:
		return 0, false
	}
}

func markTransferStable(transferID string) error {
	logWorker("stable", "mark cross transfer stable", "transferID", transferID)
	return mongodb.UpdateCrossTransferStatus(transferID, mongodb.TxStable, now(), "")
}
