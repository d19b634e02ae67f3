package main

import (
	"bufio"
	"context"
	"dex-event-parser-sol/internal/config"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser"
	"dex-event-parser-sol/internal/logic/txadapter"
	"dex-event-parser-sol/internal/pkg/logger"
	"dex-event-parser-sol/internal/types"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/spf13/cobra"
)

// replayOptions 合并配置文件与命令行参数，命令行优先
type replayOptions struct {
	rpc    string
	filter *core.EventTypeFilter
}

func loadOptions(cmd *cobra.Command) (*replayOptions, error) {
	level, _ := cmd.Flags().GetString("log-level")
	if err := logger.Init(logger.LogOption{Format: "console", Level: level, Stderr: true}); err != nil {
		return nil, err
	}

	var c config.GrpcConfig
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		if err := config.Load(cfgFile, &c); err != nil {
			return nil, err
		}
	}
	if include, _ := cmd.Flags().GetStringSlice("include"); len(include) > 0 {
		c.ParserConf.IncludeEvents = include
	}
	filter, err := c.ParserConf.ToEventFilter()
	if err != nil {
		return nil, err
	}

	opts := &replayOptions{rpc: c.RpcConf.Endpoint, filter: filter}
	if cmd.Flags().Lookup("rpc") != nil {
		if rpcURL, _ := cmd.Flags().GetString("rpc"); rpcURL != "" {
			opts.rpc = rpcURL
		}
	}
	return opts, nil
}

func runReplayTx(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()
	if opts.rpc == "" {
		return fmt.Errorf("rpc url is required (--rpc or rpc.endpoint in config)")
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rpcClient := client.NewClient(opts.rpc)
	parser := eventparser.NewParser(opts.filter)
	out := newJSONWriter(cmd.OutOrStdout())

	var failed int
	for i, sig := range args {
		if _, err := types.SignatureFromBase58(sig); err != nil {
			logger.Errorf("skip %s: %v", sig, err)
			failed++
			continue
		}

		reqCtx, cancel := ctx, context.CancelFunc(func() {})
		if timeout > 0 {
			reqCtx, cancel = context.WithTimeout(ctx, timeout)
		}
		raw, err := rpcClient.GetTransaction(reqCtx, sig)
		cancel()
		if err != nil {
			logger.Errorf("getTransaction %s failed: %v", sig, err)
			failed++
			continue
		}
		if raw == nil {
			logger.Warnf("transaction %s not found", sig)
			failed++
			continue
		}

		tx, err := txadapter.AdaptRpcTx(raw, uint32(i), core.NowMicros())
		if err != nil {
			logger.Errorf("adapt %s failed: %v", sig, err)
			failed++
			continue
		}

		n := 0
		parser.ExtractEventsFromTx(tx, func(evt core.ProtocolEvent) {
			n++
			if err := out.write(newEventRecord(evt)); err != nil {
				logger.Errorf("write event failed: %v", err)
			}
		})
		logger.Infof("tx %s: %d events", sig, n)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d transactions failed", failed, len(args))
	}
	return nil
}

func runReplayLogs(cmd *cobra.Command, _ []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var sig types.Signature
	if s, _ := cmd.Flags().GetString("signature"); s != "" {
		if sig, err = types.SignatureFromBase58(s); err != nil {
			return err
		}
	}
	slot, _ := cmd.Flags().GetUint64("slot")

	parser := eventparser.NewParser(opts.filter)
	meta := core.NewEventMetadata(sig, slot, nil, core.NowMicros())
	out := newJSONWriter(cmd.OutOrStdout())

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	start := time.Now()
	lines := 0
	for scanner.Scan() {
		lines++
		if evt := parser.DecodeLogLine(scanner.Text(), meta); evt != nil {
			if err := out.write(newEventRecord(evt)); err != nil {
				return err
			}
		}
	}
	logger.Infof("decoded %d lines in %v", lines, time.Since(start))
	return scanner.Err()
}
