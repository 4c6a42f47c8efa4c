package main

import (
	"encoding/json"
	"fmt"

	"github.com/rebasefi/CrossChain-RebaseToken/rpc/client"
	"github.com/urfave/cli/v2"
)

var (
	serverInfoCommand = &cli.Command{
		Action:    serverInfo,
		Name:      "serverinfo",
		Usage:     "query endpoint server info",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			apiServerFlag,
		},
	}

	balanceCommand = &cli.Command{
		Action:    balance,
		Name:      "balance",
		Usage:     "query effective balance of an account",
		ArgsUsage: "<account>",
		Flags: []cli.Flag{
			apiServerFlag,
		},
	}
)

func printResult(result interface{}) {
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(jsonData))
}

func serverInfo(ctx *cli.Context) error {
	var result map[string]interface{}
	url := ctx.String(apiServerFlag.Name) + "/serverinfo"
	if err := client.RPCGet(&result, url); err != nil {
		return err
	}
	printResult(result)
	return nil
}

func balance(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("miss account argument")
	}
	var result map[string]interface{}
	url := fmt.Sprintf("%v/balance/%v", ctx.String(apiServerFlag.Name), ctx.Args().Get(0))
	if err := client.RPCGet(&result, url); err != nil {
		return err
	}
	printResult(result)
	return nil
}
