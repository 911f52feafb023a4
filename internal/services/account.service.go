package services

import (
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"palahian/internal/auth"
	"palahian/internal/models"
	"palahian/internal/repository"
	"palahian/internal/utils"
)

type SignupInput struct {
	Name     string      `json:"name" binding:"required" example:"Juan Dela Cruz"`
	Email    string      `json:"email" binding:"required" example:"juan@example.com"`
	Password string      `json:"password" binding:"required" example:"secret123"`
	Role     models.Role `json:"role" binding:"required" example:"breeder"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required" example:"juan@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type SignupResult struct {
	User      models.UserSummary `json:"user"`
	EmailSent bool               `json:"emailSent"`
}

// Session is a freshly issued bearer token for a user.
type Session struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expiresAt"`
	User      models.UserSummary `json:"user"`
}

const msgVerifyFirst = "Please verify your email address before logging in. Check your inbox for a verification link."

type AccountService struct {
	users           repository.UserRepository
	tokens          *auth.TokenManager
	mailer          utils.Mailer
	appURL          string
	verificationTTL time.Duration
	now             func() time.Time
}

func NewAccountService(
	users repository.UserRepository,
	tokens *auth.TokenManager,
	mailer utils.Mailer,
	appURL string,
	verificationTTL time.Duration,
) *AccountService {
	return &AccountService{
		users:           users,
		tokens:          tokens,
		mailer:          mailer,
		appURL:          appURL,
		verificationTTL: verificationTTL,
		now:             time.Now,
	}
}

// Signup registers an unverified user and mails the verification link. A
// mail failure is logged and reported through EmailSent only.
func (s *AccountService) Signup(in SignupInput) (*SignupResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, in.Role)
	}

	if _, err := s.users.GetByEmail(in.Email); err == nil {
		return nil, fmt.Errorf("%w: email already in use", ErrConflict)
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := utils.GenerateVerificationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}
	expires := s.now().Add(s.verificationTTL)

	user := &models.User{
		Name:                     in.Name,
		Email:                    in.Email,
		PasswordHash:             hash,
		Role:                     in.Role,
		EmailVerificationToken:   &token,
		EmailVerificationExpires: &expires,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	emailSent := true
	subject, body := utils.VerificationEmail(s.appURL, user.Name, token)
	if err := s.mailer.Send(user.Email, subject, body); err != nil {
		log.Printf("Failed to send verification email to user %d: %v", user.ID, err)
		emailSent = false
	}

	return &SignupResult{User: user.Summary(), EmailSent: emailSent}, nil
}

func (s *AccountService) VerifyEmail(token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("%w: missing verification token", ErrValidation)
	}

	user, err := s.users.GetByVerificationToken(token, s.now())
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: invalid or expired verification token", ErrValidation)
		}
		return fmt.Errorf("failed to look up verification token: %w", err)
	}

	return s.users.MarkEmailVerified(user.ID)
}

func (s *AccountService) Login(in LoginInput) (*Session, error) {
	user, err := s.users.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, in.Password) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if !user.IsEmailVerified {
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, msgVerifyFirst)
	}

	return s.issue(user)
}

func (s *AccountService) Me(identity auth.Identity) (*models.UserSummary, error) {
	user, err := s.users.GetByID(identity.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: user not found", ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	summary := user.Summary()
	return &summary, nil
}

// Refresh issues a new token for the caller, picking up any role change.
func (s *AccountService) Refresh(identity auth.Identity) (*Session, error) {
	user, err := s.users.GetByID(identity.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: user not found", ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return s.issue(user)
}

func (s *AccountService) issue(user *models.User) (*Session, error) {
	token, expiresAt, err := s.tokens.Issue(auth.Identity{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &Session{Token: token, ExpiresAt: expiresAt, User: user.Summary()}, nil
}
