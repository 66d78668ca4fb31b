package server

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-fundraiser/internal/config"
	myGRPC "github.com/MKhiriev/go-fundraiser/internal/handler/grpc"
	"github.com/MKhiriev/go-fundraiser/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string
	server  *grpc.Server

	// readinessInterval is the period of the health status refresh.
	readinessInterval time.Duration
	stopWatch         context.CancelFunc
	watchers          sync.WaitGroup

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer()
	handler.Register(srv)

	return &grpcServer{
		handler:           handler,
		address:           cfg.GRPCAddress,
		server:            srv,
		readinessInterval: myGRPC.DefaultReadinessInterval,
		stopWatch:         func() {},
		logger:            logger,
	}
}

// startWatcher begins refreshing the health status. It must be called
// before RunServer and Shutdown.
func (g *grpcServer) startWatcher() {
	ctx, cancel := context.WithCancel(context.Background())
	g.stopWatch = cancel

	g.watchers.Add(1)
	go func() {
		defer g.watchers.Done()
		g.handler.WatchReadiness(ctx, g.readinessInterval)
	}()
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	if err = g.server.Serve(listener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.stopWatch()
	g.watchers.Wait()
	g.server.GracefulStop()
}
