package services

import (
	"context"
	"testing"

	"yatra/internal/models/request_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

func newAccountService(t *testing.T) AccountServiceInterface {
	t.Helper()
	db := newTestDB(t)
	return NewAccountService(repositories.NewAccountRepository(db), []byte("test-secret"))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	auth, err := svc.Register(ctx, request_models.SignUpRequest{Username: "asha", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if auth.Token == "" {
		t.Error("registration should log the account in and return a token")
	}

	login, err := svc.Login(ctx, request_models.LoginRequest{Username: "asha", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.Token == "" {
		t.Error("login should return a token")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, request_models.SignUpRequest{Username: "asha", Password: "hunter22"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(ctx, request_models.SignUpRequest{Username: "asha", Password: "other-pass"}); err != utils.ErrUsernameAlreadyExists {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestLoginBadCredentialsAreIndistinguishable(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, request_models.SignUpRequest{Username: "asha", Password: "hunter22"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, wrongPass := svc.Login(ctx, request_models.LoginRequest{Username: "asha", Password: "wrong"})
	_, unknownUser := svc.Login(ctx, request_models.LoginRequest{Username: "nobody", Password: "hunter22"})

	if wrongPass != utils.ErrInvalidCredentials {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if unknownUser != utils.ErrInvalidCredentials {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPass != unknownUser {
		t.Error("wrong password and unknown user must be indistinguishable")
	}
}
