package main

import (
	"encoding/json"
	"fmt"

	"github.com/rebasefi/CrossChain-RebaseToken/bridge"
	"github.com/rebasefi/CrossChain-RebaseToken/common"
	"github.com/urfave/cli/v2"
)

var (
	encodePayloadCommand = &cli.Command{
		Action:    encodePayload,
		Name:      "encodepayload",
		Usage:     "encode a cross chain transfer payload",
		ArgsUsage: " ",
		Description: `
Encode a transfer payload from its fields and print the hex encoding
and the transfer id.
`,
		Flags: []cli.Flag{
			senderFlag,
			receiverFlag,
			srcChainIDFlag,
			destChainIDFlag,
			amountFlag,
			rateFlag,
			timestampFlag,
		},
	}

	decodePayloadCommand = &cli.Command{
		Action:    decodePayload,
		Name:      "decodepayload",
		Usage:     "decode a hex encoded cross chain transfer payload",
		ArgsUsage: "<payloadHex>",
	}

	senderFlag = &cli.StringFlag{
		Name:  "from",
		Usage: "sender account",
	}
	receiverFlag = &cli.StringFlag{
		Name:  "to",
		Usage: "receiver account",
	}
	srcChainIDFlag = &cli.StringFlag{
		Name:  "srcchain",
		Usage: "source chain id",
	}
	destChainIDFlag = &cli.StringFlag{
		Name:  "destchain",
		Usage: "destination chain id",
	}
	amountFlag = &cli.StringFlag{
		Name:  "amount",
		Usage: "transfer amount (decimal or 0x hex)",
	}
	rateFlag = &cli.StringFlag{
		Name:  "rate",
		Usage: "personal rate (fixed point, 1e18 means 100%)",
	}
	timestampFlag = &cli.Int64Flag{
		Name:  "timestamp",
		Usage: "burn timestamp (unix seconds)",
	}
)

func encodePayload(ctx *cli.Context) error {
	amount, err := common.GetBigIntFromStr(ctx.String(amountFlag.Name))
	if err != nil {
		return fmt.Errorf("wrong amount: %v", err)
	}
	rate, err := common.GetBigIntFromStr(ctx.String(rateFlag.Name))
	if err != nil {
		return fmt.Errorf("wrong rate: %v", err)
	}
	payload := &bridge.TransferPayload{
		Sender:       ctx.String(senderFlag.Name),
		Receiver:     ctx.String(receiverFlag.Name),
		SrcChainID:   ctx.String(srcChainIDFlag.Name),
		DestChainID:  ctx.String(destChainIDFlag.Name),
		Amount:       amount,
		PersonalRate: rate,
		Timestamp:    ctx.Int64(timestampFlag.Name),
	}
	if payload.Timestamp == 0 {
		payload.Timestamp = common.Now()
	}
	encoded, err := payload.Encode()
	if err != nil {
		return err
	}
	fmt.Println("payload:", common.ToHex(encoded))
	fmt.Println("transferID:", bridge.TransferID(encoded).Hex())
	return nil
}

func decodePayload(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("miss payload hex argument")
	}
	encoded, err := common.FromHex(ctx.Args().Get(0))
	if err != nil {
		return fmt.Errorf("wrong payload hex: %v", err)
	}
	payload, err := bridge.DecodePayload(encoded)
	if err != nil {
		return err
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	fmt.Println(string(jsonData))
	fmt.Println("transferID:", bridge.TransferID(encoded).Hex())
	return nil
}
