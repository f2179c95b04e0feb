package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/userservice/internal/common"
	pb "github.com/dmitrijs2005/userservice/internal/proto"
	"github.com/dmitrijs2005/userservice/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type fakeLookup struct {
	byIDResp    *models.User
	byIDErr     error
	byEmailResp *models.User
	byEmailErr  error
	tokenResp   *models.User
	tokenErr    error
	listResp    []*models.User
	listTotal   int64
	listErr     error

	gotPage, gotPageSize int
}

func (f *fakeLookup) UserByID(ctx context.Context, id string) (*models.User, error) {
	return f.byIDResp, f.byIDErr
}
func (f *fakeLookup) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.byEmailResp, f.byEmailErr
}
func (f *fakeLookup) CheckToken(ctx context.Context, tokenString string) (*models.User, error) {
	return f.tokenResp, f.tokenErr
}
func (f *fakeLookup) ListActive(ctx context.Context, page, pageSize int) ([]*models.User, int64, error) {
	f.gotPage, f.gotPageSize = page, pageSize
	return f.listResp, f.listTotal, f.listErr
}

// ---- helpers ----

func newServer(ls lookupSvc) *GRPCServer {
	return &GRPCServer{
		address: "127.0.0.1:0",
		lookup:  ls,
		logger:  nopLogger{},
	}
}

func sampleUser() *models.User {
	return &models.User{
		ID:          "u-1",
		Email:       "jane@example.com",
		Username:    "jane",
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "+123",
		IsActive:    true,
		IsVerified:  true,
		CreatedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// ---- tests ----

func TestGetUser_OK(t *testing.T) {
	s := newServer(&fakeLookup{byIDResp: sampleUser()})

	resp, err := s.GetUser(context.Background(), &pb.UserRequest{UserId: "u-1"})
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if !resp.GetSuccess() || resp.GetMessage() != "User found." {
		t.Fatalf("unexpected response: %+v", resp)
	}
	u := resp.GetUser()
	if u.GetId() != "u-1" || u.GetEmail() != "jane@example.com" || u.GetUsername() != "jane" {
		t.Fatalf("unexpected user data: %+v", u)
	}
	if u.GetDateJoined() != "2025-03-01T12:00:00Z" {
		t.Fatalf("unexpected date_joined: %q", u.GetDateJoined())
	}
}

func TestGetUser_NotFoundAndInternal(t *testing.T) {
	s := newServer(&fakeLookup{byIDErr: common.ErrorNotFound})
	_, err := s.GetUser(context.Background(), &pb.UserRequest{UserId: "ghost"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "User not found." {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}

	s2 := newServer(&fakeLookup{byIDErr: errors.New("db down")})
	_, err = s2.GetUser(context.Background(), &pb.UserRequest{UserId: "u-1"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestGetUserByEmail_OK(t *testing.T) {
	s := newServer(&fakeLookup{byEmailResp: sampleUser()})

	resp, err := s.GetUserByEmail(context.Background(), &pb.EmailRequest{Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("GetUserByEmail error: %v", err)
	}
	if !resp.GetSuccess() || resp.GetUser().GetId() != "u-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	s := newServer(&fakeLookup{byEmailErr: common.ErrorNotFound})
	_, err := s.GetUserByEmail(context.Background(), &pb.EmailRequest{Email: "x@y.z"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
}

func TestValidateToken_Valid(t *testing.T) {
	s := newServer(&fakeLookup{tokenResp: sampleUser()})

	resp, err := s.ValidateToken(context.Background(), &pb.TokenRequest{Token: "tok"})
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if !resp.GetValid() || resp.GetMessage() != "Token is valid." {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.GetUserId() != "u-1" || resp.GetEmail() != "jane@example.com" {
		t.Fatalf("unexpected identity: %+v", resp)
	}
}

func TestValidateToken_ExpectedFailuresInBody(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"expired", common.ErrTokenExpired, "Invalid token: token expired"},
		{"bad signature", fmt.Errorf("%w: %v", common.ErrInvalidToken, "signature is invalid"), "Invalid token: signature is invalid"},
		{"user gone", common.ErrorNotFound, "User not found."},
		{"disabled", common.ErrUserDisabled, "User account is disabled."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newServer(&fakeLookup{tokenErr: tc.err})
			resp, err := s.ValidateToken(context.Background(), &pb.TokenRequest{Token: "tok"})
			if err != nil {
				t.Fatalf("expected body response, got rpc error: %v", err)
			}
			if resp.GetValid() {
				t.Fatal("token reported valid")
			}
			if resp.GetMessage() != tc.message {
				t.Fatalf("message = %q, want %q", resp.GetMessage(), tc.message)
			}
		})
	}
}

func TestValidateToken_InternalOnUnexpectedError(t *testing.T) {
	s := newServer(&fakeLookup{tokenErr: errors.New("db down")})
	_, err := s.ValidateToken(context.Background(), &pb.TokenRequest{Token: "tok"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestListUsers_OK(t *testing.T) {
	f := &fakeLookup{
		listResp:  []*models.User{sampleUser(), {ID: "u-2", CreatedAt: time.Now()}},
		listTotal: 42,
	}
	s := newServer(f)

	resp, err := s.ListUsers(context.Background(), &pb.ListUsersRequest{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	if f.gotPage != 2 || f.gotPageSize != 10 {
		t.Fatalf("paging not forwarded: page=%d size=%d", f.gotPage, f.gotPageSize)
	}
	if !resp.GetSuccess() || resp.GetTotal() != 42 || len(resp.GetUsers()) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.GetUsers()[0].GetId() != "u-1" {
		t.Fatalf("unexpected first user: %+v", resp.GetUsers()[0])
	}
}

func TestListUsers_InternalOnError(t *testing.T) {
	s := newServer(&fakeLookup{listErr: errors.New("db down")})
	_, err := s.ListUsers(context.Background(), &pb.ListUsersRequest{})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}
