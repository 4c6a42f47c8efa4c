package worker

import (
	"time"

	"github.com/rebasefi/CrossChain-RebaseToken/mongodb"
	"github.com/rebasefi/CrossChain-RebaseToken/params"
	"github.com/rebasefi/CrossChain-RebaseToken/rpc/client"
)

const interval = 10 * time.Millisecond

// StartWork start server worker jobs
func StartWork() {
	logWorker("worker", "start server worker")

	client.InitHTTPClient()

	if !mongodb.HasClient() {
		logWorker("worker", "no mongodb client, skip dispatch and stable jobs")
	} else {
		go StartDispatchJob()
		time.Sleep(interval)

		go StartStableJob()
		time.Sleep(interval)
	}

	if !params.IsTestMode() {
		go WatchPeersDynamically()
	}
}
