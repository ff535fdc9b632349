package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xbtasvs/polkaswap-pallet-erc20/protocol"
)

var cmdIssue = &cobra.Command{
	Use:   "issue [issuer] [initial supply]",
	Short: "Issue a new asset, crediting the initial supply to the issuer",
	Args:  cobra.ExactArgs(2),
	Run:   issue,
}

var flagIssue struct {
	Name     string
	Symbol   string
	Decimals uint8
}

func init() {
	cmdMain.AddCommand(cmdIssue)
	cmdIssue.Flags().StringVar(&flagIssue.Name, "name", "", "Asset name (at most 16 bytes)")
	cmdIssue.Flags().StringVar(&flagIssue.Symbol, "symbol", "", "Asset symbol (at most 8 bytes)")
	cmdIssue.Flags().Uint8Var(&flagIssue.Decimals, "decimals", 0, "Asset decimals")
}

func issue(_ *cobra.Command, args []string) {
	engine, cl := openEngine()
	if cl != nil {
		defer cl.Close()
	}

	issuer := parseAccount(args[0])
	supply := parseAmount(args[1])
	info := protocol.NewAssetInfo(flagIssue.Name, flagIssue.Symbol, flagIssue.Decimals)

	id, err := engine.Issue(issuer, supply, info)
	checkf(err, "issue")
	fmt.Println(id)
}
