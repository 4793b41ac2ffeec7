// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/domain/service"
	"fittrack/internal/errors"
	"fittrack/internal/usecase"
)

// accountService implements the AccountUsecase interface. It holds no
// mutable state of its own; the credential store and the session store
// are the only shared resources, both externally synchronized.
type accountService struct {
	accounts repository.AccountRepository
	hasher   service.PasswordHasher
	sessions service.SessionManager
	notifier service.RecoveryNotifier
	logger   *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives
// all collaborators as interfaces so tests can substitute doubles.
func NewAccountService(
	accounts repository.AccountRepository,
	hasher service.PasswordHasher,
	sessions service.SessionManager,
	notifier service.RecoveryNotifier,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accounts: accounts,
		hasher:   hasher,
		sessions: sessions,
		notifier: notifier,
		logger:   logger,
	}
}

// SignUp validates the registration input, enforces username/email
// uniqueness, and creates the account together with a fresh session.
// The application-level uniqueness pre-checks only buy a friendly error
// message; the store's unique indexes are the authoritative guard and a
// late conflict from Insert surfaces as the same taken-key error.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	// Weight zero is indistinguishable from absent under this rule.
	// That quirk is observable behavior and is kept on purpose.
	if input.Username == "" || input.Password == "" || input.First == "" ||
		input.Last == "" || input.Email == "" || input.Weight == 0 {
		return nil, errors.Wrap(domainerrors.ErrMissingParameters, "signup input incomplete")
	}

	if input.Password != input.ConfirmPassword {
		return nil, errors.Wrap(domainerrors.ErrPasswordMismatch, "signup password confirmation failed")
	}

	if _, err := srv.accounts.FindByUsername(ctx, input.Username); err == nil {
		return nil, errors.Wrap(domainerrors.ErrUsernameTaken, "signup username pre-check")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check username availability")
	}

	if _, err := srv.accounts.FindByEmail(ctx, input.Email); err == nil {
		return nil, errors.Wrap(domainerrors.ErrEmailTaken, "signup email pre-check")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	// A client-supplied admin flag is accepted by the input shape but
	// never applied: accounts always start unprivileged.
	account := &entity.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		First:        input.First,
		Last:         input.Last,
		Weight:       input.Weight,
		Admin:        false,
	}

	if err := srv.accounts.Insert(ctx, account); err != nil {
		// A concurrent signup may have claimed the key between the
		// pre-check and the insert; the store decides the race.
		if errors.Is(err, domainerrors.ErrUsernameTaken) || errors.Is(err, domainerrors.ErrEmailTaken) {
			return nil, err
		}

		srv.logger.Error("Failed to insert account", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to insert account")
	}

	token, err := srv.sessions.Create(ctx, account.ID)
	if err != nil {
		srv.logger.Error("Failed to create session after signup", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create session after signup")
	}

	srv.logger.Info("Account created", slog.Any("accountID", account.ID), slog.String("username", account.Username))

	return &usecase.AuthOutput{Account: usecase.NewAccountView(account), Token: token}, nil
}

// Login verifies the supplied credentials and issues a session. Unknown
// username and wrong password produce the same generic error so callers
// cannot learn which field was wrong.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingParameters, "login input incomplete")
	}

	account, err := srv.accounts.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.sessions.Create(ctx, account.ID)
	if err != nil {
		srv.logger.Error("Failed to create session after login", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create session after login")
	}

	srv.logger.Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{Account: usecase.NewAccountView(account), Token: token}, nil
}

// Logout destroys the caller's session. A destruction failure is fatal
// to the request, not to the process.
func (srv *accountService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return errors.Wrap(domainerrors.ErrUnauthenticated, "logout without session token")
	}

	if err := srv.sessions.Destroy(ctx, token); err != nil {
		srv.logger.Error("Failed to destroy session", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrSessionDestroyFailed, err.Error())
	}

	return nil
}

// CurrentAccount resolves the session token to its account. Any token
// that no longer maps to a live account means "anonymous".
func (srv *accountService) CurrentAccount(ctx context.Context, token string) (*usecase.AccountView, error) {
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "missing session token")
	}

	accountID, err := srv.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "session not found")
		}

		return nil, errors.Wrap(err, "failed to resolve session")
	}

	account, err := srv.accounts.FindByID(ctx, accountID)
	if err != nil {
		// The account existed at session creation but may have been
		// deleted since; the session is then worthless.
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "session account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load session account")
	}

	return usecase.NewAccountView(account), nil
}

// RecoverUsername mails the account's username to its address. Delivery
// failure is reported as a gateway-class error, but the lookup result is
// still returned alongside it: the notification failure never rolls back
// the lookup.
func (srv *accountService) RecoverUsername(ctx context.Context, input *usecase.RecoverInput) (*usecase.RecoverOutput, error) {
	if input.Email == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingParameters, "recovery input incomplete")
	}

	account, err := srv.accounts.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidEmail, "recovery email unknown")
		}

		return nil, errors.Wrap(err, "failed to load account for recovery")
	}

	output := &usecase.RecoverOutput{Account: usecase.NewAccountView(account)}

	subject := "FitnessTracker 5000 - Account Recovery"
	body := "Username: " + account.Username

	if err := srv.notifier.Send(ctx, account.Email, subject, body); err != nil {
		srv.logger.Error("Failed to send recovery email", slog.String("email", account.Email), slog.Any("error", err))

		return output, errors.Wrap(domainerrors.ErrNotificationFailed, err.Error())
	}

	srv.logger.Info("Recovery email sent", slog.Any("accountID", account.ID))

	return output, nil
}

// AdminSearch looks up a non-admin account by username or email. The
// username lookup always runs first; the email lookup is consulted only
// when the username yields nothing. This ordering is the tie-break when
// both keys are supplied. Admin accounts are invisible to this path no
// matter which key matched.
func (srv *accountService) AdminSearch(ctx context.Context, input *usecase.AdminSearchInput) (*usecase.AccountView, error) {
	if input.Username == "" && input.Email == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingParameters, "admin search input incomplete")
	}

	if input.Username != "" {
		account, err := srv.accounts.FindByUsername(ctx, input.Username)
		if err == nil {
			return adminSearchResult(account)
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(err, "failed to search account by username")
		}
	}

	if input.Email != "" {
		account, err := srv.accounts.FindByEmail(ctx, input.Email)
		if err == nil {
			return adminSearchResult(account)
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(err, "failed to search account by email")
		}
	}

	return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "admin search found no account")
}

func adminSearchResult(account *entity.Account) (*usecase.AccountView, error) {
	if account.Admin {
		return nil, errors.Wrap(domainerrors.ErrAdminProtected, "admin accounts are not retrievable")
	}

	return usecase.NewAccountView(account), nil
}

// EditAccount applies the full replacement field set to the account
// identified by OldUsername. Uniqueness queries only run for keys that
// actually changed, which also avoids a false self-collision.
func (srv *accountService) EditAccount(ctx context.Context, input *usecase.EditAccountInput) (*usecase.AccountView, error) {
	// Same falsy-weight rule as signup: zero reads as missing.
	if input.Username == "" || input.First == "" || input.Last == "" ||
		input.Email == "" || input.Weight == 0 ||
		input.OldUsername == "" || input.OldEmail == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingParameters, "edit input incomplete")
	}

	if input.Username != input.OldUsername {
		if _, err := srv.accounts.FindByUsername(ctx, input.Username); err == nil {
			return nil, errors.Wrap(domainerrors.ErrUsernameTaken, "edit username pre-check")
		} else if !errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(err, "failed to check username availability")
		}
	}

	if input.Email != input.OldEmail {
		if _, err := srv.accounts.FindByEmail(ctx, input.Email); err == nil {
			return nil, errors.Wrap(domainerrors.ErrEmailTaken, "edit email pre-check")
		} else if !errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(err, "failed to check email availability")
		}
	}

	fields := repository.AccountFields{
		Username: input.Username,
		Email:    input.Email,
		First:    input.First,
		Last:     input.Last,
		Weight:   input.Weight,
		Admin:    input.Admin,
	}

	account, err := srv.accounts.UpdateByUsername(ctx, input.OldUsername, fields)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "edit target not found")
		}
		// The store may still report a taken key the pre-check missed.
		if errors.Is(err, domainerrors.ErrUsernameTaken) || errors.Is(err, domainerrors.ErrEmailTaken) {
			return nil, err
		}

		srv.logger.Error("Failed to update account", slog.String("oldUsername", input.OldUsername), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update account")
	}

	srv.logger.Info("Account updated", slog.Any("accountID", account.ID), slog.String("username", account.Username))

	return usecase.NewAccountView(account), nil
}

// DeleteAccount removes the account matching username. This path
// intentionally applies no admin-protection check; the asymmetry with
// AdminSearch is preserved observable behavior.
func (srv *accountService) DeleteAccount(ctx context.Context, username string) error {
	if err := srv.accounts.DeleteByUsername(ctx, username); err != nil {
		srv.logger.Error("Failed to delete account", slog.String("username", username), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrDeleteFailed, err.Error())
	}

	srv.logger.Info("Account deleted", slog.String("username", username))

	return nil
}
