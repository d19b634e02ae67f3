package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "replay",
		Short:        "Replay Solana transactions through the DEX event parser",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "optional config file (parser.include_events, rpc.endpoint)")
	root.PersistentFlags().StringSlice("include", nil, "event type names to keep (comma-separated), overrides config")
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	txCmd := &cobra.Command{
		Use:   "tx <signature>...",
		Short: "Fetch transactions by signature over JSON-RPC and print every emitted event as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runReplayTx,
	}
	txCmd.Flags().String("rpc", "", "Solana RPC URL")
	txCmd.Flags().Duration("timeout", 0, "per-request timeout, 0 means no timeout")
	root.AddCommand(txCmd)

	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Decode program log lines read from stdin (one per line)",
		RunE:  runReplayLogs,
	}
	logsCmd.Flags().String("signature", "", "transaction signature attached to decoded events")
	logsCmd.Flags().Uint64("slot", 0, "slot attached to decoded events")
	root.AddCommand(logsCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
