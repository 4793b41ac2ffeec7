// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
// Admin is accepted at the boundary but deliberately ignored: every
// account starts unprivileged.
type SignUpInput struct {
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
	First           string  `json:"first"`
	Last            string  `json:"last"`
	Email           string  `json:"email"`
	Weight          float64 `json:"weight"`
	Admin           bool    `json:"admin"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RecoverInput identifies the account whose username should be mailed out.
type RecoverInput struct {
	Email string `json:"email"`
}

// AdminSearchInput looks up a non-admin account by username and/or email.
type AdminSearchInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// EditAccountInput carries the full replacement field set for the
// account identified by OldUsername. Admin absent in the request body
// decodes to false.
type EditAccountInput struct {
	Username    string  `json:"username"`
	First       string  `json:"first"`
	Last        string  `json:"last"`
	Email       string  `json:"email"`
	Weight      float64 `json:"weight"`
	Admin       bool    `json:"admin"`
	OldUsername string  `json:"oldUsername"`
	OldEmail    string  `json:"oldEmail"`
}

// --- Output DTOs ---

// AccountView is the externally visible shape of an account. It never
// carries the password hash.
type AccountView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	First    string    `json:"first"`
	Last     string    `json:"last"`
	Weight   float64   `json:"weight"`
	Admin    bool      `json:"admin"`
}

// NewAccountView builds the external view from a domain account.
func NewAccountView(account *entity.Account) *AccountView {
	if account == nil {
		return nil
	}

	return &AccountView{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
		First:    account.First,
		Last:     account.Last,
		Weight:   account.Weight,
		Admin:    account.Admin,
	}
}

// AuthOutput returns the account and its freshly issued session token.
type AuthOutput struct {
	Account *AccountView `json:"account"`
	Token   string       `json:"token"`
}

// RecoverOutput returns the looked-up account. When notification
// delivery fails, the service returns this output together with an
// error wrapping domainerrors.ErrNotificationFailed: the lookup result
// survives the delivery failure.
type RecoverOutput struct {
	Account *AccountView `json:"account"`
}

// AccountUsecase defines the account and session-authentication
// operations the delivery layer depends on.
type AccountUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Logout(ctx context.Context, token string) error
	CurrentAccount(ctx context.Context, token string) (*AccountView, error)
	RecoverUsername(ctx context.Context, input *RecoverInput) (*RecoverOutput, error)
	AdminSearch(ctx context.Context, input *AdminSearchInput) (*AccountView, error)
	EditAccount(ctx context.Context, input *EditAccountInput) (*AccountView, error)
	DeleteAccount(ctx context.Context, username string) error
}
