package main

import (
	"context"
	"dex-event-parser-sol/internal/config"
	"dex-event-parser-sol/internal/logic/grpc"
	"dex-event-parser-sol/internal/pkg/logger"
	"dex-event-parser-sol/internal/svc"
	"flag"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"github.com/zeromicro/go-zero/core/logx"
	zerosvc "github.com/zeromicro/go-zero/core/service"
)

var configFile = flag.String("f", "etc/grpc.yaml", "the config file")

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
			logger.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
			logger.Sync()
			os.Exit(1)
		}
	}()

	flag.Parse()

	var c config.GrpcConfig
	config.MustLoad(*configFile, &c)

	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		panic(err)
	}
	defer logger.Sync()

	serviceContext, err := svc.NewGrpcServiceContext(c)
	if err != nil {
		panic(err)
	}
	defer serviceContext.Close()

	// 进度批量落库与历史清理
	bgCtx, bgCancel := context.WithCancel(context.Background())
	defer bgCancel()
	flushInterval := time.Duration(max(c.ProgressConf.FlushIntervalSec, 1)) * time.Second
	go serviceContext.ProgressManager.StartFlushLoop(bgCtx, flushInterval)
	serviceContext.ProgressManager.StartGCLoop(bgCtx, 6*time.Hour)

	sg := zerosvc.NewServiceGroup()

	var slotChecker *grpc.SlotChecker
	if c.RpcConf.SlotCheck && c.RpcConf.Endpoint != "" {
		slotChecker = grpc.NewSlotChecker(c.RpcConf.Endpoint, grpc.NewProgressGapHandler(serviceContext.ProgressManager))
		sg.Add(slotChecker)
	}

	blockChan := make(chan *pb.SubscribeUpdateBlock, 200)
	sg.Add(grpc.NewBlockProcessor(serviceContext, blockChan, slotChecker))

	grpcService, err := grpc.NewGrpcStreamManager(serviceContext, blockChan)
	if err != nil {
		panic(err)
	}
	sg.Add(grpcService)

	logger.Infof("Starting grpc event parser, endpoint=%s", c.Grpc.Endpoint)
	go sg.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Infof("Shutting down services...")
	sg.Stop()
}
