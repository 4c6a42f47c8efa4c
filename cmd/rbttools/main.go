// Command rbttools bundles small client side helpers, payload
// encoding and decoding and simple queries against a running
// rbtserver endpoint.
package main

import (
	"os"
	"sort"

	"github.com/rebasefi/CrossChain-RebaseToken/cmd/utils"
	"github.com/rebasefi/CrossChain-RebaseToken/log"
	"github.com/rebasefi/CrossChain-RebaseToken/rpc/client"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier = "rbttools"
	gitCommit        = ""
	gitDate          = ""
	app              = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the rbttools command line interface")
)

var apiServerFlag = &cli.StringFlag{
	Name:  "server",
	Usage: "api address of the endpoint, eg. http://127.0.0.1:12556",
	Value: "http://127.0.0.1:12556",
}

func initApp() {
	app.HideVersion = true
	app.Commands = []*cli.Command{
		encodePayloadCommand,
		decodePayloadCommand,
		serverInfoCommand,
		balanceCommand,
		utils.VersionCommand,
	}
	app.Flags = []cli.Flag{
		utils.VerbosityFlag,
		utils.JSONFormatFlag,
		utils.ColorFormatFlag,
	}
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	initApp()
	client.InitHTTPClient()
	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
