package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/userservice/internal/common"
	pb "github.com/dmitrijs2005/userservice/internal/proto"
	"github.com/dmitrijs2005/userservice/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toUserData(u *models.User) *pb.UserData {
	return &pb.UserData{
		Id:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		IsActive:    u.IsActive,
		IsVerified:  u.IsVerified,
		DateJoined:  u.CreatedAt.Format(time.RFC3339),
	}
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.UserRequest) (*pb.UserResponse, error) {

	user, err := s.lookup.UserByID(ctx, req.UserId)

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "User not found.")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pb.UserResponse{Success: true, Message: "User found.", User: toUserData(user)}, nil

}

func (s *GRPCServer) GetUserByEmail(ctx context.Context, req *pb.EmailRequest) (*pb.UserResponse, error) {

	user, err := s.lookup.UserByEmail(ctx, req.Email)

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "User not found.")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pb.UserResponse{Success: true, Message: "User found.", User: toUserData(user)}, nil

}

// ValidateToken reports expected verification failures in the response body
// rather than as an RPC error, so callers always get a TokenResponse unless
// something unexpected broke.
func (s *GRPCServer) ValidateToken(ctx context.Context, req *pb.TokenRequest) (*pb.TokenResponse, error) {

	user, err := s.lookup.CheckToken(ctx, req.Token)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
			return &pb.TokenResponse{Valid: false, Message: "Invalid token: " + tokenErrDetail(err)}, nil
		case errors.Is(err, common.ErrorNotFound):
			return &pb.TokenResponse{Valid: false, Message: "User not found."}, nil
		case errors.Is(err, common.ErrUserDisabled):
			return &pb.TokenResponse{Valid: false, Message: "User account is disabled."}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pb.TokenResponse{
		Valid:   true,
		Message: "Token is valid.",
		UserId:  user.ID,
		Email:   user.Email,
	}, nil

}

func (s *GRPCServer) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {

	users, total, err := s.lookup.ListActive(ctx, int(req.Page), int(req.PageSize))

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, err.Error())
	}

	resp := &pb.ListUsersResponse{Success: true, Total: int32(total)}
	for _, u := range users {
		resp.Users = append(resp.Users, toUserData(u))
	}

	return resp, nil

}

// tokenErrDetail trims the "invalid token: " sentinel prefix so the message
// carries only the verification detail.
func tokenErrDetail(err error) string {
	msg := err.Error()
	const prefix = "invalid token: "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
