package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cmdBalance = &cobra.Command{
	Use:   "balance [asset] [account]",
	Short: "Query an account's balance of an asset",
	Args:  cobra.ExactArgs(2),
	Run:   balance,
}

var cmdSupply = &cobra.Command{
	Use:   "supply [asset]",
	Short: "Query the total supply of an asset",
	Args:  cobra.ExactArgs(1),
	Run:   supply,
}

var cmdAllowance = &cobra.Command{
	Use:   "allowance [asset] [owner] [spender]",
	Short: "Query the spender's allowance for the owner's balance of an asset",
	Args:  cobra.ExactArgs(3),
	Run:   allowance,
}

var cmdInfo = &cobra.Command{
	Use:   "info [asset]",
	Short: "Query an asset's metadata",
	Args:  cobra.ExactArgs(1),
	Run:   info,
}

func init() {
	cmdMain.AddCommand(cmdBalance, cmdSupply, cmdAllowance, cmdInfo)
}

func balance(_ *cobra.Command, args []string) {
	engine, cl := openEngine()
	if cl != nil {
		defer cl.Close()
	}

	amount, err := engine.BalanceOf(parseAssetID(args[0]), parseAccount(args[1]))
	checkf(err, "query balance")
	fmt.Println(amount)
}

func supply(_ *cobra.Command, args []string) {
	engine, cl := openEngine()
	if cl != nil {
		defer cl.Close()
	}

	amount, err := engine.TotalSupply(parseAssetID(args[0]))
	checkf(err, "query supply")
	fmt.Println(amount)
}

func allowance(_ *cobra.Command, args []string) {
	engine, cl := openEngine()
	if cl != nil {
		defer cl.Close()
	}

	amount, err := engine.Allowance(parseAssetID(args[0]), parseAccount(args[1]), parseAccount(args[2]))
	checkf(err, "query allowance")
	fmt.Println(amount)
}

func info(_ *cobra.Command, args []string) {
	engine, cl := openEngine()
	if cl != nil {
		defer cl.Close()
	}

	ai, err := engine.AssetInfo(parseAssetID(args[0]))
	checkf(err, "query asset")
	fmt.Printf("name:     %s\n", ai.NameString())
	fmt.Printf("symbol:   %s\n", ai.SymbolString())
	fmt.Printf("decimals: %d\n", ai.Decimals)
}
