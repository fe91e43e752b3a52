package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	logger "github.com/beka-birhanu/vinom-common/log"
	"github.com/beka-birhanu/vinom-turn-maze/api"
	"github.com/beka-birhanu/vinom-turn-maze/config"
	"github.com/beka-birhanu/vinom-turn-maze/service"
	"github.com/beka-birhanu/vinom-turn-maze/service/i"
	"github.com/beka-birhanu/vinom-turn-maze/store"
	"google.golang.org/grpc"
)

// Global variables for dependencies
var (
	grpcConnListener net.Listener
	grpcServer       *grpc.Server
	stateStore       i.StateStore
	executor         *service.Executor
	appLogger        general_i.Logger
)

func initStateStore() {
	if config.Envs.StateFile == "" {
		stateStore = store.NewMemory()
		appLogger.Warning("STATE_FILE not set, game state is kept in memory only")
		return
	}
	stateStore = store.NewFile(config.Envs.StateFile)
	appLogger.Info(fmt.Sprintf("Game state persisted to %s", config.Envs.StateFile))
}

func initExecutor() {
	executorLogger, err := logger.New("EXECUTOR", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating executor logger: %v", err))
		os.Exit(1)
	}

	e, err := service.NewExecutor(context.Background(), &service.Config{
		Store:  stateStore,
		Logger: executorLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating executor: %v", err))
		os.Exit(1)
	}
	executor = e
	appLogger.Info("Executor initialized")
}

func initMazeController() {
	grpcLogger, err := logger.New("GRPC", config.ColorBlue, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating gRPC logger: %v", err))
		os.Exit(1)
	}

	grpcServer = grpc.NewServer()
	if err := api.RegisterNewMazeServer(grpcServer, executor, grpcLogger); err != nil {
		appLogger.Error(fmt.Sprintf("Creating and Registering maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func waitForShutdown() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	appLogger.Info("Shutting down")

	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Duration(config.Envs.ShutdownGrace) * time.Millisecond):
		appLogger.Warning("Graceful stop timed out, forcing")
		grpcServer.Stop()
	}
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)
	initStateStore()
	initExecutor()
	initMazeController()

	var err error
	addr := fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.GrpcPort)
	grpcConnListener, err = net.Listen("tcp", addr)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Listening tcp: %v", err))
		os.Exit(1)
	}
	defer func() {
		_ = grpcConnListener.Close()
	}()

	go waitForShutdown()

	appLogger.Info(fmt.Sprintf("Serving gRPC at: %s", addr))
	if err := grpcServer.Serve(grpcConnListener); err != nil {
		appLogger.Error(fmt.Sprintf("Serving gRPC: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Stopped after %d accepted operations", len(executor.History())))
}
