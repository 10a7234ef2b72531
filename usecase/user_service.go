package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/odiaaudiogen/server/domain/entities"
	"github.com/odiaaudiogen/server/domain/repositories"
	"github.com/odiaaudiogen/server/internal/auth"
	"github.com/odiaaudiogen/server/internal/faults"
)

var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrUserNotFound          = errors.New("user not found")
	ErrGoogleAuthUnavailable = errors.New("google login is not configured")
)

// GoogleTokenVerifier abstracts Google ID token verification.
type GoogleTokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*auth.GoogleProfile, error)
}

// UserService handles registration, login and profile access.
type UserService struct {
	users  repositories.UserRepository
	tokens *auth.Issuer
	google GoogleTokenVerifier
	logger *zap.Logger
}

// NewUserService creates a new user service. google may be nil when Google
// sign-in is not configured.
func NewUserService(
	users repositories.UserRepository,
	tokens *auth.Issuer,
	google GoogleTokenVerifier,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		users:  users,
		tokens: tokens,
		google: google,
		logger: logger,
	}
}

// RegisterInput carries one registration request.
type RegisterInput struct {
	Name            string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

const bcryptCost = 10

// Register creates a new password-based account.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entities.User, error) {
	if in.Name == "" || in.Username == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, faults.NewValidation("Please enter all fields")
	}
	if in.Password != in.ConfirmPassword {
		return nil, faults.NewValidation("Passwords do not match")
	}

	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, faults.NewValidation("User already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:     in.Name,
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered successfully",
		zap.String("userID", user.ID),
		zap.String("email", user.Email))

	return user, nil
}

// Login authenticates by email and password and issues a token.
func (s *UserService) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	if email == "" || password == "" {
		return nil, "", faults.NewValidation("Please enter all fields")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	// A Google-only account has no password and can never match.
	if user == nil || user.Password == "" {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("User logged in successfully",
		zap.String("userID", user.ID),
		zap.String("email", user.Email))

	return user, token, nil
}

// GoogleSignIn verifies a Google ID token, creating the account on first
// login, and issues a token.
func (s *UserService) GoogleSignIn(ctx context.Context, rawIDToken string) (*entities.User, string, error) {
	if rawIDToken == "" {
		return nil, "", faults.NewValidation("Google token is required")
	}
	if s.google == nil {
		return nil, "", ErrGoogleAuthUnavailable
	}

	profile, err := s.google.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.GetByEmail(ctx, profile.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		user = &entities.User{
			Name:           profile.Name,
			Username:       usernameFromEmail(profile.Email),
			Email:          profile.Email,
			GoogleID:       profile.Subject,
			ProfilePicture: profile.Picture,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, "", err
		}
		s.logger.Info("New Google user registered",
			zap.String("userID", user.ID),
			zap.String("email", user.Email))
	} else {
		s.logger.Info("Google user logged in",
			zap.String("userID", user.ID),
			zap.String("email", user.Email))
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Profile fetches a user by the id carried in a validated token.
func (s *UserService) Profile(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
