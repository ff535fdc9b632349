package main

import (
	"github.com/spf13/cobra"
)

var cmdTransfer = &cobra.Command{
	Use:   "transfer [asset] [owner] [target] [amount]",
	Short: "Transfer an amount of an asset from the owner to the target",
	Args:  cobra.ExactArgs(4),
	Run:   transfer,
}

var cmdTransferFrom = &cobra.Command{
	Use:   "transfer-from [asset] [owner] [spender] [target] [amount]",
	Short: "Transfer an amount of an asset on the owner's behalf, spending an allowance",
	Args:  cobra.ExactArgs(5),
	Run:   transferFrom,
}

func init() {
	cmdMain.AddCommand(cmdTransfer, cmdTransferFrom)
}

func transfer(_ *cobra.Command, args []string) {
	engine, cl := openEngine()
	if cl != nil {
		defer cl.Close()
	}

	err := engine.Transfer(parseAssetID(args[0]), parseAccount(args[1]), parseAccount(args[2]), parseAmount(args[3]))
	checkf(err, "transfer")
}

func transferFrom(_ *cobra.Command, args []string) {
	engine, cl := openEngine()
	if cl != nil {
		defer cl.Close()
	}

	err := engine.TransferFrom(parseAssetID(args[0]), parseAccount(args[1]), parseAccount(args[2]), parseAccount(args[3]), parseAmount(args[4]))
	checkf(err, "transfer")
}
