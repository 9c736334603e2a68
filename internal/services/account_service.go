package services

import (
	"context"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.AuthResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwtSecret   []byte
}

func NewAccountService(accountRepo repositories.AccountRepository, jwtSecret []byte) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwtSecret:   jwtSecret,
	}
}

// Register creates the account and logs the user straight in, the same
// flow the web form drives. A taken username aborts before anything is
// persisted.
func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (response_models.AuthResponse, error) {
	existing, err := a.accountRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.AuthResponse{}, utils.ErrUsernameAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Username:     request.Username,
		PasswordHash: hashed,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(a.jwtSecret, account.ID)
	if err != nil {
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}

	return response_models.AuthResponse{Token: token, Username: account.Username}, nil
}

// Login deliberately returns the same error for an unknown username and a
// wrong password.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.AuthResponse, error) {
	account, err := a.accountRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AuthResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.AuthResponse{}, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(a.jwtSecret, account.ID)
	if err != nil {
		return response_models.AuthResponse{}, utils.ErrInvalidCredentials
	}

	return response_models.AuthResponse{Token: token, Username: account.Username}, nil
}
