package services

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"qrfleet/internal/authz"
	"qrfleet/internal/models/db_models"
	"qrfleet/internal/models/request_models"
	"qrfleet/internal/models/response_models"
	"qrfleet/internal/repositories"
	"qrfleet/pkg/utils"
)

type AccountServiceInterface interface {
	// Verify returns the account for a matching credential pair and
	// (nil, nil) for any mismatch; a mismatch is never an error.
	Verify(ctx context.Context, email string, password string) (*db_models.Account, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	CreateAccount(ctx context.Context, caller *authz.Session, request request_models.CreateAccountRequest) (*response_models.AccountResponse, error)
	GetAllAccounts(ctx context.Context, caller *authz.Session) ([]response_models.AccountResponse, error)
	GetAccountById(ctx context.Context, caller *authz.Session, id string) (*response_models.AccountResponse, error)
	// UpdateAccount returns the updated account plus a reissued token when
	// the caller edited their own record.
	UpdateAccount(ctx context.Context, caller *authz.Session, id string, request request_models.UpdateAccountRequest) (*response_models.AccountResponse, string, error)
	DeleteAccount(ctx context.Context, caller *authz.Session, id string) error
	EnsureAdminAccount(ctx context.Context) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	sessions    SessionServiceInterface
}

func NewAccountService(accountRepo repositories.AccountRepository, sessions SessionServiceInterface) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		sessions:    sessions,
	}
}

func (a *AccountService) Verify(ctx context.Context, email string, password string) (*db_models.Account, error) {
	if email == "" || password == "" {
		return nil, nil
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, nil
	}

	if err := utils.ComparePasswords(account.PasswordHash, password); err != nil {
		return nil, nil
	}

	return account, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.Verify(ctx, request.Email, request.Password)
	if err != nil {
		return nil, err
	}
	if account == nil {
		// Same answer for unknown email and wrong password.
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.sessions.Issue(account)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.LoginResponse{
		Token:   token,
		Account: toAccountResponse(account),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, caller *authz.Session, request request_models.CreateAccountRequest) (*response_models.AccountResponse, error) {
	if err := authz.Authorize(caller, authz.ActionCreateAccount, ""); err != nil {
		return nil, err
	}

	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	role := request.Role
	if !db_models.IsValidRole(role) {
		role = db_models.RoleEditor
	}

	newAccount := &db_models.Account{
		DisplayName:  strings.TrimSpace(request.DisplayName),
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	resp := toAccountResponse(newAccount)
	return &resp, nil
}

func (a *AccountService) GetAllAccounts(ctx context.Context, caller *authz.Session) ([]response_models.AccountResponse, error) {
	if err := authz.Authorize(caller, authz.ActionListAccounts, ""); err != nil {
		return nil, err
	}

	accounts, err := a.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, toAccountResponse(&accounts[i]))
	}
	return responses, nil
}

func (a *AccountService) GetAccountById(ctx context.Context, caller *authz.Session, id string) (*response_models.AccountResponse, error) {
	if err := authz.Authorize(caller, authz.ActionReadAccount, id); err != nil {
		return nil, err
	}

	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) UpdateAccount(ctx context.Context, caller *authz.Session, id string, request request_models.UpdateAccountRequest) (*response_models.AccountResponse, string, error) {
	if err := authz.Authorize(caller, authz.ActionUpdateAccount, id); err != nil {
		return nil, "", err
	}

	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if account == nil {
		return nil, "", utils.ErrAccountNotFound
	}

	if name := strings.TrimSpace(request.DisplayName); name != "" {
		account.DisplayName = name
	}
	if email := strings.TrimSpace(request.Email); email != "" {
		account.Email = email
	}
	if request.Password != "" {
		hashedPassword, err := utils.HashPassword(request.Password)
		if err != nil {
			return nil, "", utils.ErrDatabaseError
		}
		account.PasswordHash = hashedPassword
	}
	// Role changes from non-admin callers are dropped without error.
	if request.Role != "" && authz.CanAssignRole(caller) && db_models.IsValidRole(request.Role) {
		account.Role = request.Role
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", utils.ErrEmailAlreadyExists
		}
		return nil, "", utils.ErrDatabaseError
	}

	// Reissue the token on self-edit so the client's claims are fresh
	// without waiting for the next resolve cycle.
	token := ""
	if caller.AccountID == account.ID.String() {
		if token, err = a.sessions.Issue(account); err != nil {
			return nil, "", utils.ErrDatabaseError
		}
	}

	resp := toAccountResponse(account)
	return &resp, token, nil
}

func (a *AccountService) DeleteAccount(ctx context.Context, caller *authz.Session, id string) error {
	if err := authz.Authorize(caller, authz.ActionDeleteAccount, id); err != nil {
		return err
	}

	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	if err := a.accountRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// EnsureAdminAccount seeds the bootstrap admin on startup when missing.
func (a *AccountService) EnsureAdminAccount(ctx context.Context) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@qrfleet.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	admin := &db_models.Account{
		DisplayName:  "Administrator",
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleAdmin,
	}

	if err := a.accountRepo.Insert(ctx, admin); err != nil {
		return utils.ErrDatabaseError
	}

	logrus.WithField("email", email).Info("seeded admin account")
	return nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:          account.ID.String(),
		DisplayName: account.DisplayName,
		Email:       account.Email,
		Role:        account.Role,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}
}
