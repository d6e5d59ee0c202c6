package services

import (
	"context"

	"travelbuddy/internal/models/db_models"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/models/response_models"
	"travelbuddy/internal/repositories"
	"travelbuddy/pkg/utils"
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.LoginResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, accountID string) (*response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, accountID string, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error)
}

var travelStyles = map[string]bool{
	"adventure":    true,
	"leisure":      true,
	"cultural":     true,
	"food-focused": true,
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.LoginResponse, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		FirstName:    request.FirstName,
		Email:        request.Email,
		PasswordHash: hashed,
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.LoginResponse{
		Token: token,
		User:  toAccountResponse(account),
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token: token,
		User:  toAccountResponse(account),
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID string, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if request.FirstName != nil {
		if *request.FirstName == "" {
			return nil, utils.ErrInvalidInput
		}
		account.FirstName = *request.FirstName
	}
	if request.ProfilePicture != nil {
		account.ProfilePicture = *request.ProfilePicture
	}
	if request.BudgetRange != nil {
		account.BudgetRange = *request.BudgetRange
	}
	if request.TravelStyle != nil {
		if *request.TravelStyle != "" && !travelStyles[*request.TravelStyle] {
			return nil, utils.ErrInvalidInput
		}
		account.TravelStyle = *request.TravelStyle
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:             account.ID.String(),
		Email:          account.Email,
		FirstName:      account.FirstName,
		ProfilePicture: account.ProfilePicture,
		BudgetRange:    account.BudgetRange,
		TravelStyle:    account.TravelStyle,
	}
}
