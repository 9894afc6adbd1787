package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"qrfleet/internal/authz"
	"qrfleet/internal/models/db_models"
	"qrfleet/internal/models/request_models"
	"qrfleet/pkg/utils"
)

func newAccountServiceForTest() (AccountServiceInterface, *fakeAccountRepo) {
	repo := newFakeAccountRepo()
	sessions := NewSessionService(repo)
	return NewAccountService(repo, sessions), repo
}

func seedAccount(t *testing.T, repo *fakeAccountRepo, email, password, role string) *db_models.Account {
	t.Helper()
	hash, err := utils.HashPassword(password)
	assert.NoError(t, err)

	account := &db_models.Account{
		DisplayName:  "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	assert.NoError(t, repo.Insert(context.Background(), account))
	return account
}

func sessionFor(account *db_models.Account) *authz.Session {
	return &authz.Session{
		AccountID:   account.ID.String(),
		DisplayName: account.DisplayName,
		Email:       account.Email,
		Role:        account.Role,
	}
}

func TestAccountService_Verify(t *testing.T) {
	service, repo := newAccountServiceForTest()
	seeded := seedAccount(t, repo, "alice@x.com", "secret1", db_models.RoleAdmin)
	ctx := context.Background()

	t.Run("matching credentials", func(t *testing.T) {
		account, err := service.Verify(ctx, "alice@x.com", "secret1")
		assert.NoError(t, err)
		assert.NotNil(t, account)
		assert.Equal(t, seeded.ID, account.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		account, err := service.Verify(ctx, "alice@x.com", "wrong")
		assert.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("unknown email", func(t *testing.T) {
		account, err := service.Verify(ctx, "nobody@x.com", "secret1")
		assert.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("empty input", func(t *testing.T) {
		account, err := service.Verify(ctx, "", "")
		assert.NoError(t, err)
		assert.Nil(t, account)
	})
}

func TestAccountService_Login(t *testing.T) {
	service, repo := newAccountServiceForTest()
	seedAccount(t, repo, "alice@x.com", "secret1", db_models.RoleAdmin)
	ctx := context.Background()

	t.Run("success issues token", func(t *testing.T) {
		login, err := service.Login(ctx, request_models.LoginRequest{Email: "alice@x.com", Password: "secret1"})
		assert.NoError(t, err)
		assert.NotEmpty(t, login.Token)
		assert.Equal(t, "alice@x.com", login.Account.Email)

		claims, err := utils.ValidateToken(login.Token)
		assert.NoError(t, err)
		assert.Equal(t, db_models.RoleAdmin, claims.Role)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		_, errWrongPassword := service.Login(ctx, request_models.LoginRequest{Email: "alice@x.com", Password: "nope"})
		_, errUnknownEmail := service.Login(ctx, request_models.LoginRequest{Email: "ghost@x.com", Password: "secret1"})

		assert.ErrorIs(t, errWrongPassword, utils.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownEmail, utils.ErrInvalidCredentials)
		assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	})
}

func TestAccountService_CreateAccount(t *testing.T) {
	service, repo := newAccountServiceForTest()
	admin := seedAccount(t, repo, "admin@x.com", "adminpw", db_models.RoleAdmin)
	editor := seedAccount(t, repo, "editor@x.com", "editorpw", db_models.RoleEditor)
	ctx := context.Background()

	t.Run("admin creates account", func(t *testing.T) {
		created, err := service.CreateAccount(ctx, sessionFor(admin), request_models.CreateAccountRequest{
			DisplayName: "Bob",
			Email:       "bob@x.com",
			Password:    "secret1",
			Role:        db_models.RoleEditor,
		})
		assert.NoError(t, err)
		assert.Equal(t, db_models.RoleEditor, created.Role)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := service.CreateAccount(ctx, sessionFor(admin), request_models.CreateAccountRequest{
			Email:    "bob@x.com",
			Password: "secret1",
		})
		assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		_, err := service.CreateAccount(ctx, sessionFor(editor), request_models.CreateAccountRequest{
			Email:    "carol@x.com",
			Password: "secret1",
		})
		assert.ErrorIs(t, err, utils.ErrAccessDenied)
	})

	t.Run("invalid role defaults to editor", func(t *testing.T) {
		created, err := service.CreateAccount(ctx, sessionFor(admin), request_models.CreateAccountRequest{
			Email:    "dave@x.com",
			Password: "secret1",
			Role:     "SUPERUSER",
		})
		assert.NoError(t, err)
		assert.Equal(t, db_models.RoleEditor, created.Role)
	})

	t.Run("anonymous caller required to authenticate", func(t *testing.T) {
		_, err := service.CreateAccount(ctx, &authz.Session{}, request_models.CreateAccountRequest{
			Email:    "eve@x.com",
			Password: "secret1",
		})
		assert.ErrorIs(t, err, utils.ErrAuthenticationRequired)
	})
}

func TestAccountService_UpdateAccount_RoleChange(t *testing.T) {
	service, repo := newAccountServiceForTest()
	admin := seedAccount(t, repo, "admin@x.com", "adminpw", db_models.RoleAdmin)
	editor := seedAccount(t, repo, "editor@x.com", "editorpw", db_models.RoleEditor)
	ctx := context.Background()

	t.Run("non-admin role change silently ignored", func(t *testing.T) {
		updated, _, err := service.UpdateAccount(ctx, sessionFor(editor), editor.ID.String(), request_models.UpdateAccountRequest{
			DisplayName: "Renamed",
			Role:        db_models.RoleAdmin,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Renamed", updated.DisplayName)
		assert.Equal(t, db_models.RoleEditor, updated.Role)
	})

	t.Run("admin role change applies", func(t *testing.T) {
		updated, _, err := service.UpdateAccount(ctx, sessionFor(admin), editor.ID.String(), request_models.UpdateAccountRequest{
			Role: db_models.RoleAdmin,
		})
		assert.NoError(t, err)
		assert.Equal(t, db_models.RoleAdmin, updated.Role)
	})

	t.Run("editor cannot update another account", func(t *testing.T) {
		_, _, err := service.UpdateAccount(ctx, sessionFor(editor), admin.ID.String(), request_models.UpdateAccountRequest{
			DisplayName: "Hacked",
		})
		assert.ErrorIs(t, err, utils.ErrAccessDenied)
	})
}

func TestAccountService_UpdateAccount_SelfEditReissuesToken(t *testing.T) {
	service, repo := newAccountServiceForTest()
	admin := seedAccount(t, repo, "admin@x.com", "adminpw", db_models.RoleAdmin)
	editor := seedAccount(t, repo, "editor@x.com", "editorpw", db_models.RoleEditor)
	ctx := context.Background()

	t.Run("self edit returns fresh token with new claims", func(t *testing.T) {
		_, token, err := service.UpdateAccount(ctx, sessionFor(editor), editor.ID.String(), request_models.UpdateAccountRequest{
			DisplayName: "New Name",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := utils.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "New Name", claims.DisplayName)
	})

	t.Run("editing another account returns no token", func(t *testing.T) {
		_, token, err := service.UpdateAccount(ctx, sessionFor(admin), editor.ID.String(), request_models.UpdateAccountRequest{
			DisplayName: "Other",
		})
		assert.NoError(t, err)
		assert.Empty(t, token)
	})
}

func TestAccountService_DeleteAccount(t *testing.T) {
	service, repo := newAccountServiceForTest()
	admin := seedAccount(t, repo, "admin@x.com", "adminpw", db_models.RoleAdmin)
	editor := seedAccount(t, repo, "editor@x.com", "editorpw", db_models.RoleEditor)
	ctx := context.Background()

	t.Run("self delete forbidden even for admin", func(t *testing.T) {
		err := service.DeleteAccount(ctx, sessionFor(admin), admin.ID.String())
		assert.ErrorIs(t, err, utils.ErrSelfDelete)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		err := service.DeleteAccount(ctx, sessionFor(editor), admin.ID.String())
		assert.ErrorIs(t, err, utils.ErrAccessDenied)
	})

	t.Run("non-admin self delete still denied", func(t *testing.T) {
		err := service.DeleteAccount(ctx, sessionFor(editor), editor.ID.String())
		assert.Error(t, err)
	})

	t.Run("admin deletes another account", func(t *testing.T) {
		assert.NoError(t, service.DeleteAccount(ctx, sessionFor(admin), editor.ID.String()))

		remaining, err := repo.FindById(ctx, editor.ID.String())
		assert.NoError(t, err)
		assert.Nil(t, remaining)
	})

	t.Run("missing account", func(t *testing.T) {
		err := service.DeleteAccount(ctx, sessionFor(admin), "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, utils.ErrAccountNotFound)
	})
}

func TestAccountService_EnsureAdminAccount(t *testing.T) {
	service, repo := newAccountServiceForTest()
	ctx := context.Background()

	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	assert.NoError(t, service.EnsureAdminAccount(ctx))

	seeded, err := repo.FindByEmail(ctx, "admin@qrfleet.com")
	assert.NoError(t, err)
	assert.NotNil(t, seeded)
	assert.Equal(t, db_models.RoleAdmin, seeded.Role)

	// Idempotent on restart.
	assert.NoError(t, service.EnsureAdminAccount(ctx))
	all, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}
