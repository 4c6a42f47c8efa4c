package worker

import (
	"time"

	"github.com/rebasefi/CrossChain-RebaseToken/log"
)

var (
	maxDispatchLifetime       = int64(7 * 24 * 3600)
	restIntervalInDispatchJob = 3 * time.Second

	maxStableLifetime       = int64(7 * 24 * 3600)
	restIntervalInStableJob = 5 * time.Second
)

func now() int64 {
	return time.Now().Unix()
}

func logWorker(job, subject string, context ...interface{}) {
	log.Info("["+job+"] "+subject, context...)
}

func logWorkerError(job, subject string, err error, context ...interface{}) {
	fields := []interface{}{"err", err}
	fields = append(fields, context...)
	log.Error("["+job+"] "+subject, fields...)
}

func logWorkerTrace(job, subject string, context ...interface{}) {
	log.Trace("["+job+"] "+subject, context...)
}

func getSepTimeInFind(dist int64) int64 {
	return now() - dist
}

func restInJob(duration time.Duration) {
	time.Sleep(duration)
}
