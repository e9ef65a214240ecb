package service

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/quotedesk/quotedesk/internal/domain"
	"github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/logger"
	"github.com/quotedesk/quotedesk/internal/utils"
	"github.com/quotedesk/quotedesk/internal/validation"
)

type AuthService interface {
	Register(name string, email domain.Email, password domain.Password, role domain.Role) (string, domain.User, error)
	Login(email domain.Email, password domain.Password) (string, domain.User, error)
	Me(userId domain.UserId) (domain.User, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.User, error)
	UserByEmail(email domain.Email) (domain.User, error)
	UserById(id domain.UserId) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage, jwt}
}

// Register creates a user and issues their first token. The role defaults
// to Customer when absent; the password is only ever stored as a bcrypt
// hash.
func (a *Auth) Register(name string, email domain.Email, password domain.Password, role domain.Role) (string, domain.User, error) {
	name = utils.SanitizeText(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" {
		return "", domain.User{}, &errors.ErrorWithStatusCode{Message: "All fields are required", StatusCode: http.StatusBadRequest}
	}
	if !validation.ValidEmail(email) {
		return "", domain.User{}, &errors.ErrorWithStatusCode{Message: "Valid email is required", StatusCode: http.StatusBadRequest}
	}
	if role == "" {
		role = domain.RoleCustomer
	}
	if !role.Valid() {
		return "", domain.User{}, &errors.ErrorWithStatusCode{Message: "Invalid role", StatusCode: http.StatusBadRequest}
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", domain.User{}, err
	}

	user, err := a.storage.SaveUser(domain.User{Name: name, Email: email, PassHash: string(passHash), Role: role})
	if err != nil {
		return "", domain.User{}, err
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", domain.User{}, err
	}
	return token, user, nil
}

// Login checks credentials and issues a token. Unknown email and wrong
// password produce the same 401 so existing accounts don't leak.
func (a *Auth) Login(email domain.Email, password domain.Password) (string, domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", domain.User{}, &errors.ErrorWithStatusCode{Message: "Email and password are required", StatusCode: http.StatusBadRequest}
	}

	invalidCreds := &errors.ErrorWithStatusCode{Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		if e, ok := err.(*errors.ErrorWithStatusCode); ok && e.StatusCode == http.StatusNotFound {
			return "", domain.User{}, invalidCreds
		}
		return "", domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(password)); err != nil {
		return "", domain.User{}, invalidCreds
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", domain.User{}, err
	}
	return token, user, nil
}

// Me returns the caller's own profile.
func (a *Auth) Me(userId domain.UserId) (domain.User, error) {
	return a.storage.UserById(userId)
}
