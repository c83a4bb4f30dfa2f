package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"HospitalManagement/dto"
	"HospitalManagement/models"
	"HospitalManagement/repositories"
	"HospitalManagement/utils"

	"github.com/sirupsen/logrus"
)

// Authentication errors
var (
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetCode   = errors.New("invalid or expired reset code")
	ErrResetUnavailable   = errors.New("password reset is not available")
)

// CodeStore keeps short-lived password reset codes.
type CodeStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	// Incr adds one to the counter at key, starting a fresh counter that lives
	// for expiration when none exists.
	Incr(ctx context.Context, key string, expiration time.Duration) (int64, error)
}

// ResetMailer delivers password reset codes.
type ResetMailer interface {
	SendResetCode(email, code string) error
}

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	GetUserByID(ctx context.Context, userID uint) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	SendResetCode(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
}

type authService struct {
	users      repositories.UserRepository
	tokens     utils.TokenMaker
	codes      CodeStore
	mailer     ResetMailer
	bcryptCost int
	dummyHash  string
	log        logrus.FieldLogger
}

// NewAuthService builds the auth service. codes and mailer may be nil, in which
// case password reset reports ErrResetUnavailable.
func NewAuthService(
	users repositories.UserRepository,
	tokens utils.TokenMaker,
	codes CodeStore,
	mailer ResetMailer,
	bcryptCost int,
	log logrus.FieldLogger,
) (AuthService, error) {
	// Compared against when the email is unknown so both login paths cost one bcrypt run.
	dummyHash, err := utils.HashPassword("not-a-real-password", bcryptCost)
	if err != nil {
		return nil, err
	}
	return &authService{
		users:      users,
		tokens:     tokens,
		codes:      codes,
		mailer:     mailer,
		bcryptCost: bcryptCost,
		dummyHash:  dummyHash,
		log:        log,
	}, nil
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		// Lost a race against a concurrent registration of the same email.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.CheckPassword(s.dummyHash, req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, claims, err := s.tokens.CreateToken(user.ID, user.FullName, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:      token,
		FullName:   user.FullName,
		Email:      user.Email,
		Role:       user.Role,
		Expiration: claims.ExpiresAt,
	}, nil
}

func (s *authService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

func (s *authService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.users.GetAllUsers(ctx)
}

// SendResetCode mails a fresh reset code. Unknown emails succeed silently.
func (s *authService) SendResetCode(ctx context.Context, email string) error {
	if s.codes == nil || s.mailer == nil {
		return ErrResetUnavailable
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		return err
	}
	if err := s.codes.Set(ctx, utils.ResetCodeKey(user.Email), code, utils.ResetCodeTTL); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}
	if err := s.codes.Delete(ctx, utils.ResetAttemptsKey(user.Email)); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("failed to clear reset attempts")
	}

	return s.mailer.SendResetCode(user.Email, code)
}

func (s *authService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	if s.codes == nil {
		return ErrResetUnavailable
	}

	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInvalidResetCode
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	key := utils.ResetCodeKey(user.Email)
	stored, err := s.codes.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load reset code: %w", err)
	}
	if stored == "" {
		return ErrInvalidResetCode
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(req.Code)) != 1 {
		s.recordFailedAttempt(ctx, user)
		return ErrInvalidResetCode
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdateUserPassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}

	s.discardResetCode(ctx, user)
	return nil
}

// recordFailedAttempt counts a wrong guess and burns the code once
// utils.MaxResetAttempts guesses have failed.
func (s *authService) recordFailedAttempt(ctx context.Context, user *models.User) {
	attempts, err := s.codes.Incr(ctx, utils.ResetAttemptsKey(user.Email), utils.ResetCodeTTL)
	if err != nil {
		// Guesses that cannot be counted burn the code.
		s.log.WithError(err).WithField("user_id", user.ID).Warn("failed to count reset attempt")
		s.discardResetCode(ctx, user)
		return
	}
	if attempts >= utils.MaxResetAttempts {
		s.log.WithField("user_id", user.ID).Warn("reset code discarded after too many failed attempts")
		s.discardResetCode(ctx, user)
	}
}

func (s *authService) discardResetCode(ctx context.Context, user *models.User) {
	for _, key := range []string{utils.ResetCodeKey(user.Email), utils.ResetAttemptsKey(user.Email)} {
		if err := s.codes.Delete(ctx, key); err != nil {
			s.log.WithError(err).WithField("user_id", user.ID).Warn("failed to delete reset state")
		}
	}
}
