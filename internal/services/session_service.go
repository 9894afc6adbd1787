package services

import (
	"context"
	"strings"

	"qrfleet/internal/authz"
	"qrfleet/internal/models/db_models"
	"qrfleet/internal/repositories"
	"qrfleet/pkg/utils"
)

type SessionServiceInterface interface {
	// Issue signs a token carrying the account's current identity claims.
	// Also used as the update trigger after a profile edit, so the client
	// holds fresh name/email claims without re-login.
	Issue(account *db_models.Account) (string, error)
	// Resolve materializes the session for a raw token. The account is
	// re-fetched on every call: a deleted account yields an anonymous
	// session (the signed token stays valid until expiry, accepted risk),
	// and a renamed or re-roled account yields its current claims.
	Resolve(ctx context.Context, rawToken string) (*authz.Session, error)
}

type SessionService struct {
	accountRepo repositories.AccountRepository
}

func NewSessionService(accountRepo repositories.AccountRepository) SessionServiceInterface {
	return &SessionService{
		accountRepo: accountRepo,
	}
}

func (s *SessionService) Issue(account *db_models.Account) (string, error) {
	return utils.CreateToken(account.ID, account.Role, displayNameFor(account), account.Email)
}

func (s *SessionService) Resolve(ctx context.Context, rawToken string) (*authz.Session, error) {
	if rawToken == "" {
		return &authz.Session{}, nil
	}

	claims, err := utils.ValidateToken(rawToken)
	if err != nil || claims.UserID == "" {
		return &authz.Session{}, nil
	}

	account, err := s.accountRepo.FindById(ctx, claims.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		// Account deleted mid-session: strip identity, don't error.
		return &authz.Session{}, nil
	}

	return &authz.Session{
		AccountID:   account.ID.String(),
		DisplayName: displayNameFor(account),
		Email:       account.Email,
		Role:        account.Role,
	}, nil
}

// displayNameFor falls back to the local part of the email.
func displayNameFor(account *db_models.Account) string {
	if account.DisplayName != "" {
		return account.DisplayName
	}
	if at := strings.Index(account.Email, "@"); at > 0 {
		return account.Email[:at]
	}
	return account.Email
}
