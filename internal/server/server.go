package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/umbracle/batchdeposit/internal/deposit"
	"github.com/umbracle/batchdeposit/internal/server/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	proto.UnimplementedDepositServiceServer
	config *Config
	logger hclog.Logger

	loader  *deposit.Loader
	metrics *metrics
	reg     *prometheus.Registry

	grpcServer *grpc.Server
	grpcAddr   net.Addr
	httpServer *http.Server
	httpAddr   net.Addr
}

func NewServer(logger hclog.Logger, config *Config) (*Server, error) {
	if config.Deposit == nil {
		config.Deposit = deposit.DefaultConfig()
	}
	if err := config.Deposit.Validate(); err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	srv := &Server{
		config:  config,
		logger:  logger,
		loader:  deposit.NewLoader(logger, config.Deposit),
		metrics: newMetrics(reg),
		reg:     reg,
	}

	grpcServer := grpc.NewServer()
	proto.RegisterDepositServiceServer(grpcServer, srv)

	grpcLis, err := net.Listen("tcp", config.GRPCAddr)
	if err != nil {
		return nil, err
	}
	srv.grpcServer = grpcServer
	srv.grpcAddr = grpcLis.Addr()

	go func() {
		if err := grpcServer.Serve(grpcLis); err != nil {
			logger.Error("failed to serve grpc server", "err", err)
		}
	}()
	logger.Info("GRPC Server started", "addr", srv.grpcAddr.String())

	httpLis, err := net.Listen("tcp", config.HTTPAddr)
	if err != nil {
		grpcServer.Stop()
		return nil, err
	}
	srv.httpServer = &http.Server{
		Handler:           srv.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv.httpAddr = httpLis.Addr()

	go func() {
		if err := srv.httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to serve http server", "err", err)
		}
	}()
	logger.Info("HTTP Server started", "addr", srv.httpAddr.String())

	return srv, nil
}

// GRPCAddr returns the address the grpc server listens on
func (s *Server) GRPCAddr() string {
	return s.grpcAddr.String()
}

// HTTPAddr returns the address the http server listens on
func (s *Server) HTTPAddr() string {
	return s.httpAddr.String()
}

func (s *Server) Stop() {
	s.grpcServer.GracefulStop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("failed to stop http server", "err", err)
	}
}

// load runs a deposit file through the loader and records the outcome
func (s *Server) load(ctx context.Context, name string, data []byte) (*deposit.Result, error) {
	now := time.Now()
	res, err := s.loader.Load(ctx, name, data)
	s.metrics.duration.Observe(time.Since(now).Seconds())

	switch {
	case err == nil:
		s.metrics.loads.WithLabelValues("ok").Inc()
		s.metrics.records.Add(float64(res.Calldata.Count))
	case errors.Is(err, deposit.ErrStaleLoad):
		s.metrics.loads.WithLabelValues("stale").Inc()
	default:
		s.metrics.loads.WithLabelValues("rejected").Inc()
	}
	return res, err
}

func (s *Server) Pack(ctx context.Context, req *proto.PackRequest) (*proto.PackResponse, error) {
	res, err := s.load(ctx, req.Name, req.Data)
	if err != nil {
		return nil, grpcError(err)
	}
	resp, err := NewPackResponse(res)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

func (s *Server) Current(ctx context.Context, req *proto.CurrentRequest) (*proto.PackResponse, error) {
	res, ok := s.loader.Current()
	if !ok {
		return nil, status.Error(codes.NotFound, "no deposit file loaded")
	}
	resp, err := NewPackResponse(res)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

func grpcError(err error) error {
	switch {
	case deposit.IsValidationError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, deposit.ErrStaleLoad):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// NewPackResponse converts a load result into its wire representation
func NewPackResponse(res *deposit.Result) (*proto.PackResponse, error) {
	calldata, err := res.Calldata.Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode calldata: %v", err)
	}
	resp := &proto.PackResponse{
		ID:                    res.ID,
		Name:                  res.Name,
		Count:                 uint64(res.Calldata.Count),
		Pubkeys:               res.Calldata.PubkeysHex(),
		WithdrawalCredentials: res.Calldata.WithdrawalCredentialsHex(),
		Signatures:            res.Calldata.SignaturesHex(),
		DepositDataRoots:      res.Calldata.DepositDataRootsHex(),
		Value:                 res.Calldata.Value.String(),
		ValueEther:            res.Calldata.TotalEther(),
		Calldata:              deposit.EncodeHex(calldata),
	}
	return resp, nil
}
