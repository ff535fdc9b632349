package main

import (
	"github.com/spf13/cobra"
)

var cmdApprove = &cobra.Command{
	Use:   "approve [asset] [owner] [spender] [amount]",
	Short: "Set the spender's allowance for the owner's balance of an asset",
	Args:  cobra.ExactArgs(4),
	Run:   approve,
}

func init() {
	cmdMain.AddCommand(cmdApprove)
}

func approve(_ *cobra.Command, args []string) {
	engine, cl := openEngine()
	if cl != nil {
		defer cl.Close()
	}

	err := engine.Approve(parseAssetID(args[0]), parseAccount(args[1]), parseAccount(args[2]), parseAmount(args[3]))
	checkf(err, "approve")
}
