package workflow

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/five82/lms/internal/lms"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is not active")
)

var emailValidator = validator.New()

func validEmail(email string) bool {
	return emailValidator.Var(email, "required,email") == nil
}

// authenticate finds the account registered under email and checks its
// bcrypt password hash and status.
func authenticate[A lms.Account](accounts []A, email, password string) (A, error) {
	var zero A
	for _, account := range accounts {
		if account.LoginEmail() != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash()), []byte(password)); err != nil {
			return zero, ErrInvalidCredentials
		}
		if !account.IsActive() {
			return zero, ErrAccountInactive
		}
		return account, nil
	}
	return zero, ErrInvalidCredentials
}

// login prompts for credentials and checks them against the accounts
// returned by fetch. ok is false when the user cancelled or login failed;
// err is only set when the console cannot be read.
func login[A lms.Account](ctx context.Context, r *Runner, role string, fetch func(context.Context) ([]A, error)) (account A, ok bool, err error) {
	c := r.console
	c.Title(role + " Login")

	var email string
	for {
		res, err := c.PromptDefault("Enter your email", r.lastEmail)
		if err != nil {
			return account, false, err
		}
		if res.Cancelled {
			return account, false, nil
		}
		if validEmail(res.Value) {
			email = res.Value
			break
		}
		c.Error("Invalid email format. Please enter a valid email address.")
	}

	password, err := c.PromptSecret("Enter your password:")
	if err != nil || password.Cancelled {
		return account, false, err
	}

	accounts, err := fetch(ctx)
	if err != nil {
		r.serviceError("fetch "+role+" accounts", err)
		return account, false, nil
	}

	account, err = authenticate(accounts, email, password.Value)
	if err != nil {
		r.logger.Warn("login rejected",
			zap.String("role", role),
			zap.String("email", email),
			zap.Error(err),
		)
		c.Error("Login failed. Invalid email, password, or account is inactive.")
		return account, false, nil
	}

	r.logger.Info("login succeeded", zap.String("role", role), zap.String("email", email))
	c.Success("Login successful!")
	r.lastEmail = email
	if r.onLogin != nil {
		r.onLogin(email)
	}
	return account, true, nil
}
