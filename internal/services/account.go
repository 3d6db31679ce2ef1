package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/apperrors"
	"github.com/monocle-dev/trackr/internal/models"
	"github.com/monocle-dev/trackr/internal/repository"
	"github.com/monocle-dev/trackr/internal/types"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs credentials for a user.
type TokenIssuer interface {
	Generate(userID uuid.UUID, email string) (string, error)
}

type SignupInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type SigninInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

var accountMessages = map[string]string{
	"name":     "Please enter a proper name",
	"email":    "Please enter a valid email",
	"password": "The Password should have minimum 8 characters",
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type AccountService struct {
	store   repository.Store
	gate    Gate
	cascade *CascadeCoordinator
	tokens  TokenIssuer
	cost    int
}

func NewAccountService(store repository.Store, gate Gate, cascade *CascadeCoordinator, tokens TokenIssuer, bcryptCost int) *AccountService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AccountService{store: store, gate: gate, cascade: cascade, tokens: tokens, cost: bcryptCost}
}

func (s *AccountService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	if err := validateInput(input, accountMessages); err != nil {
		return nil, err
	}

	_, err := s.store.Users().FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, apperrors.Validation("email", "Email already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Internal(err)
	}

	user, err := s.createUser(ctx, input.Name, input.Email, input.Password, false)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

func (s *AccountService) Signin(ctx context.Context, input SigninInput) (*AuthResult, error) {
	input.Email = normalizeEmail(input.Email)
	if err := validateInput(input, accountMessages); err != nil {
		return nil, err
	}

	user, err := s.store.Users().FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.InvalidCredentials()
		}
		return nil, apperrors.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperrors.InvalidCredentials()
	}
	return s.issue(user)
}

func (s *AccountService) Profile(ctx context.Context, caller types.Identity) (*models.User, error) {
	if caller.Anonymous() {
		return nil, apperrors.Unauthorized()
	}
	user, err := s.store.Users().FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, lookupErr(err, "User")
	}
	return user, nil
}

// DeleteAccount checks the password again before removing the user and
// everything the user owns.
func (s *AccountService) DeleteAccount(ctx context.Context, caller types.Identity, password string) (CascadeResult, error) {
	user, err := s.Profile(ctx, caller)
	if err != nil {
		return CascadeResult{}, err
	}
	if password == "" {
		return CascadeResult{}, apperrors.Validation("password", "Password is required for account deletion")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return CascadeResult{}, apperrors.InvalidCredentials()
	}
	return s.cascade.CascadeDeleteUser(ctx, user.ID)
}

// ListUsers is the administrative listing of regular accounts.
func (s *AccountService) ListUsers(ctx context.Context, caller types.Identity) ([]models.User, error) {
	if err := s.gate.AuthorizeAdminListing(caller); err != nil {
		return nil, err
	}
	users, err := s.store.Users().FindNonAdmin(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// EnsureAdmin creates an admin account when none exists. It is a bootstrap
// step run from the CLI, never from a request.
func (s *AccountService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	exists, err := s.store.Users().HasAdmin(ctx)
	if err != nil {
		return false, apperrors.Internal(err)
	}
	if exists {
		return false, nil
	}

	input := SignupInput{Name: "admin", Email: normalizeEmail(email), Password: password}
	if err := validateInput(input, accountMessages); err != nil {
		return false, err
	}
	if _, err := s.createUser(ctx, input.Name, input.Email, input.Password, true); err != nil {
		return false, err
	}
	return true, nil
}

func (s *AccountService) createUser(ctx context.Context, name, email, password string, admin bool) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsAdminUser:  admin,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

func (s *AccountService) issue(user *models.User) (*AuthResult, error) {
	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
