package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/userservice/internal/logging"
	pb "github.com/dmitrijs2005/userservice/internal/proto"
	"github.com/dmitrijs2005/userservice/internal/server/models"
	"google.golang.org/grpc"
)

// lookupSvc is the slice of the lookup service the gRPC surface needs.
type lookupSvc interface {
	UserByID(ctx context.Context, id string) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	CheckToken(ctx context.Context, tokenString string) (*models.User, error)
	ListActive(ctx context.Context, page, pageSize int) ([]*models.User, int64, error)
}

type GRPCServer struct {
	pb.UnimplementedUserServiceServer
	address string
	lookup  lookupSvc
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, ls lookupSvc) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		lookup:  ls,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer()

	// registers service
	pb.RegisterUserServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
