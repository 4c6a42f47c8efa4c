package worker

import (
	"sync"

	"github.com/rebasefi/CrossChain-RebaseToken/common"
	"github.com/rebasefi/CrossChain-RebaseToken/endpoint"
	"github.com/rebasefi/CrossChain-RebaseToken/mongodb"
)

var dispatchStarter sync.Once

// StartDispatchJob dispatch job
func StartDispatchJob() {
	dispatchStarter.Do(func() {
		logWorker("dispatch", "start dispatch cross transfer job")
		for {
			findAndDispatch(mongodb.TxRegistered)
			findAndDispatch(mongodb.TxDispatchFailed)
			restInJob(restIntervalInDispatchJob)
		}
	})
}

// isDispatchable reports whether transfers in status belong to the
// dispatch job, fresh registrations and retryable failures.
func isDispatchable(status mongodb.TransferStatus) bool {
	return status == mongodb.TxRegistered || status.CanRetry()
}

func findAndDispatch(status mongodb.TransferStatus) {
	if !isDispatchable(status) {
		return
	}
	septime := getSepTimeInFind(maxDispatchLifetime)
	transfers, err := mongodb.FindCrossTransfersWithStatus(status, septime)
	if err != nil {
		logWorkerError("dispatch", "find cross transfers error", err, "status", status)
		return
	}
	if len(transfers) > 0 {
		logWorker("dispatch", "find cross transfers to dispatch", "count", len(transfers), "status", status)
	}
	for _, transfer := range transfers {
		err = processDispatch(transfer)
		if err != nil {
			logWorkerError("dispatch", "process dispatch error", err, "transferID", transfer.Key)
		}
	}
}

func processDispatch(transfer *mongodb.MgoCrossTransfer) error {
	logWorkerTrace("dispatch", "start process dispatch", "transferID", transfer.Key, "destChainID", transfer.DestChainID)
	payload, err := common.FromHex(transfer.Payload)
	if err != nil {
		return mongodb.UpdateCrossTransferStatus(transfer.Key, mongodb.TxDispatchFailed, now(), err.Error())
	}
	err = endpoint.Transport().Deliver(transfer.DestChainID, payload)
	if err != nil {
		logWorkerError("dispatch", "deliver payload failed", err, "transferID", transfer.Key, "destChainID", transfer.DestChainID)
		return mongodb.UpdateCrossTransferStatus(transfer.Key, mongodb.TxDispatchFailed, now(), err.Error())
	}
	logWorker("dispatch", "deliver payload success", "transferID", transfer.Key, "destChainID", transfer.DestChainID)
	return mongodb.UpdateCrossTransferStatus(transfer.Key, mongodb.TxDispatched, now(), "")
}
