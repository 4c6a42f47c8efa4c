package utils

import (
	"fmt"
	"runtime"

	"github.com/rebasefi/CrossChain-RebaseToken/params"
	"github.com/urfave/cli/v2"
)

// VersionCommand print version subcommand
var VersionCommand = &cli.Command{
	Action:    printVersion,
	Name:      "version",
	Usage:     "Print version numbers",
	ArgsUsage: " ",
	Description: `
Print the version of this software and the build environment.
`,
}

func printVersion(ctx *cli.Context) error {
	fmt.Println(clientIdentifier, "version", params.VersionWithMeta)
	if gitCommit != "" {
		fmt.Println("Git Commit:", gitCommit)
	}
	if gitDate != "" {
		fmt.Println("Git Commit Date:", gitDate)
	}
	fmt.Println("Go Version:", runtime.Version())
	fmt.Println("OS / Arch:", runtime.GOOS+"/"+runtime.GOARCH)
	return nil
}
