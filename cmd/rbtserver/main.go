// Command rbtserver runs one chain endpoint of the rebasing token,
// serving the ledger api and the cross chain dispatch jobs.
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rebasefi/CrossChain-RebaseToken/cmd/utils"
	"github.com/rebasefi/CrossChain-RebaseToken/endpoint"
	"github.com/rebasefi/CrossChain-RebaseToken/log"
	"github.com/rebasefi/CrossChain-RebaseToken/mongodb"
	"github.com/rebasefi/CrossChain-RebaseToken/params"
	"github.com/rebasefi/CrossChain-RebaseToken/riskctrl"
	rpcserver "github.com/rebasefi/CrossChain-RebaseToken/rpc/server"
	"github.com/rebasefi/CrossChain-RebaseToken/worker"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier = "rbtserver"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the rbtserver command line interface")
)

func initApp() {
	// Initialize the CLI app and start action
	app.Action = rbtserver
	app.HideVersion = true // we have a command to print the version
	app.Commands = []*cli.Command{
		utils.VersionCommand,
	}
	app.Flags = []cli.Flag{
		utils.ConfigFileFlag,
		utils.DataDirFlag,
		utils.PeersDirFlag,
		utils.LogFileFlag,
		utils.LogRotationFlag,
		utils.LogMaxAgeFlag,
		utils.VerbosityFlag,
		utils.JSONFormatFlag,
		utils.ColorFormatFlag,
	}
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func rbtserver(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	if ctx.NArg() > 0 {
		return fmt.Errorf("invalid command: %q", ctx.Args().Get(0))
	}
	params.IsServerMode = true
	configFile := utils.GetConfigFilePath(ctx)
	config := params.LoadConfig(configFile, true)

	params.SetDataDir(utils.GetDataDir(ctx))
	params.SetPeersDir(utils.GetPeersDir(ctx))

	if !params.IsTestMode() && config.MongoDB != nil {
		dbConfig := config.MongoDB
		mongodb.MongoServerInit(clientIdentifier, dbConfig.DBURL, dbConfig.DBName, dbConfig.UserName, dbConfig.Password)
	}

	endpoint.Init()

	worker.StartWork()
	time.Sleep(100 * time.Millisecond)

	riskctrl.StartWork()
	rpcserver.StartAPIServer()

	utils.WaitAndCleanup(func() {
		log.Info("rbtserver exit")
	})
	return nil
}
