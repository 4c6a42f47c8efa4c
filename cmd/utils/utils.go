package utils

import (
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/rebasefi/CrossChain-RebaseToken/log"
	"github.com/rebasefi/CrossChain-RebaseToken/params"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier string
	gitCommit        string
	gitDate          string

	// TopWaitGroup is waited before the process exits
	TopWaitGroup = new(sync.WaitGroup)
	// CleanupChan is closed when a terminate signal arrives
	CleanupChan = make(chan struct{})

	cleanupOnce sync.Once
)

// NewApp creates an app with sane defaults.
func NewApp(identifier, gitcommit, gitdate, usage string) *cli.App {
	clientIdentifier = identifier
	gitCommit = gitcommit
	gitDate = gitdate
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Version = params.VersionWithCommit(gitCommit, gitDate)
	app.Usage = usage
	return app
}

// WaitAndCleanup broadcast the cleanup signal on terminate,
// then run the given cleanup func after all top tasks finished.
func WaitAndCleanup(cleanup func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	sig := <-ch
	log.Info("receive terminate signal", "signal", sig)
	cleanupOnce.Do(func() {
		close(CleanupChan)
	})
	TopWaitGroup.Wait()
	cleanup()
}
