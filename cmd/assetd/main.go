package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xbtasvs/polkaswap-pallet-erc20/internal/events"
	"github.com/xbtasvs/polkaswap-pallet-erc20/internal/ledger"
	"github.com/xbtasvs/polkaswap-pallet-erc20/internal/logging"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/database/keyvalue"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/database/keyvalue/badger"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/database/keyvalue/bolt"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/database/keyvalue/leveldb"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/database/keyvalue/memory"
	"github.com/xbtasvs/polkaswap-pallet-erc20/protocol"
)

var cmdMain = &cobra.Command{
	Use:   "assetd",
	Short: "Multi-asset fungible token ledger",
	Run:   printUsageAndExit1,
}

var flagMain struct {
	Config   string
	DBPath   string
	DBType   string
	LogLevel string
}

func init() {
	cmdMain.PersistentFlags().StringVarP(&flagMain.Config, "config", "c", "", "Configuration file (TOML)")
	cmdMain.PersistentFlags().StringVar(&flagMain.DBPath, "db-path", "assets.db", "Database directory or file")
	cmdMain.PersistentFlags().StringVar(&flagMain.DBType, "db-type", "badger", "Database backend (badger, leveldb, bolt, memory)")
	cmdMain.PersistentFlags().StringVar(&flagMain.LogLevel, "log-level", "info", "Log level (debug, info, error)")

	check(viper.BindPFlag("db-path", cmdMain.PersistentFlags().Lookup("db-path")))
	check(viper.BindPFlag("db-type", cmdMain.PersistentFlags().Lookup("db-type")))
	check(viper.BindPFlag("log-level", cmdMain.PersistentFlags().Lookup("log-level")))

	cmdMain.PersistentPreRun = func(*cobra.Command, []string) {
		if flagMain.Config == "" {
			return
		}
		viper.SetConfigFile(flagMain.Config)
		checkf(viper.ReadInConfig(), "read %s", flagMain.Config)
	}
}

func main() {
	_ = cmdMain.Execute()
}

type closer interface{ Close() error }

// openEngine opens the configured store and constructs a ledger engine on top
// of it. The caller must Close the returned closer, which is nil for the
// memory backend.
func openEngine() (*ledger.Engine, closer) {
	logger, err := logging.NewConsole(viper.GetString("log-level"))
	checkf(err, "configure logging")

	var store keyvalue.Beginner
	var cl closer
	switch typ := viper.GetString("db-type"); typ {
	case "badger":
		db, err := badger.New(viper.GetString("db-path"))
		checkf(err, "open badger database")
		store, cl = db, db
	case "leveldb":
		db, err := leveldb.OpenFile(viper.GetString("db-path"))
		checkf(err, "open leveldb database")
		store, cl = db, db
	case "bolt":
		db, err := bolt.Open(viper.GetString("db-path"))
		checkf(err, "open bolt database")
		store, cl = db, db
	case "memory":
		store = memory.New(nil)
	default:
		fatalf("unknown database backend %q", typ)
	}

	bus := events.NewBus(logger)
	return ledger.New(store, ledger.WithEvents(bus), ledger.WithLogger(logger)), cl
}

// parseAccount accepts a 64-character hex account ID or derives one from the
// argument as a seed.
func parseAccount(s string) protocol.AccountID {
	if len(s) == 64 {
		if _, err := hex.DecodeString(s); err == nil {
			account, err := protocol.ParseAccountID(s)
			check(err)
			return account
		}
	}
	return protocol.AccountIDFromSeed(s)
}

func parseAssetID(s string) protocol.AssetID {
	id, err := strconv.ParseUint(s, 10, 64)
	checkf(err, "invalid asset ID %q", s)
	return protocol.AssetID(id)
}

func parseAmount(s string) protocol.Amount {
	v, err := strconv.ParseUint(s, 10, 64)
	checkf(err, "invalid amount %q", s)
	return protocol.Amount(v)
}

func printUsageAndExit1(cmd *cobra.Command, args []string) {
	_ = cmd.Usage()
	os.Exit(1)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func check(err error) {
	if err != nil {
		fatalf("%v", err)
	}
}

func checkf(err error, format string, otherArgs ...interface{}) {
	if err != nil {
		fatalf(format+": %v", append(otherArgs, err)...)
	}
}
