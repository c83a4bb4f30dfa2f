package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"HospitalManagement/dto"
	"HospitalManagement/models"
	"HospitalManagement/repositories"
	"HospitalManagement/utils"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	users       map[string]*models.User
	nextID      uint
	createCalls int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUserRepository) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.users[strings.ToLower(email)]
	return ok, nil
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *models.User) error {
	f.createCalls++
	user.Email = strings.ToLower(user.Email)
	if _, ok := f.users[user.Email]; ok {
		return repositories.ErrDuplicate
	}
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.nextID++
	stored := *user
	f.users[user.Email] = &stored
	return nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[strings.ToLower(email)]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, userID uint) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == userID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepository) GetAllUsers(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepository) UpdateUserPassword(_ context.Context, userID uint, hashedPassword string) error {
	for _, user := range f.users {
		if user.ID == userID {
			user.PasswordHash = hashedPassword
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeCodeStore struct {
	values map[string]string
}

func (f *fakeCodeStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.values[key] = value.(string)
	return nil
}

func (f *fakeCodeStore) Get(_ context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeCodeStore) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeCodeStore) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	n, _ := strconv.ParseInt(f.values[key], 10, 64)
	n++
	f.values[key] = strconv.FormatInt(n, 10)
	return n, nil
}

type fakeMailer struct {
	sent map[string]string
	err  error
}

func (f *fakeMailer) SendResetCode(email, code string) error {
	if f.err != nil {
		return f.err
	}
	f.sent[email] = code
	return nil
}

type authFixture struct {
	service AuthService
	users   *fakeUserRepository
	codes   *fakeCodeStore
	mailer  *fakeMailer
	tokens  utils.TokenMaker
}

func newAuthFixture(t *testing.T, withReset bool) authFixture {
	t.Helper()
	tokens, err := utils.NewJWTMaker(utils.TokenSettings{
		Key:      "0123456789abcdef0123456789abcdef",
		Issuer:   "test-issuer",
		Audience: "test-audience",
		TTL:      time.Hour,
	})
	require.NoError(t, err)

	log, _ := test.NewNullLogger()
	f := authFixture{
		users:  newFakeUserRepository(),
		codes:  &fakeCodeStore{values: map[string]string{}},
		mailer: &fakeMailer{sent: map[string]string{}},
		tokens: tokens,
	}

	var codes CodeStore
	var mailer ResetMailer
	if withReset {
		codes, mailer = f.codes, f.mailer
	}
	f.service, err = NewAuthService(f.users, tokens, codes, mailer, bcrypt.MinCost, log)
	require.NoError(t, err)
	return f
}

func register(t *testing.T, f authFixture, email, role string) *models.User {
	t.Helper()
	user, err := f.service.Register(context.Background(), dto.RegisterRequest{
		FullName: "Test User",
		Email:    email,
		Password: "pw123456",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func TestRegister(t *testing.T) {
	f := newAuthFixture(t, false)

	user := register(t, f, "Ann@Example.com", utils.RoleDoctor)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, utils.RoleDoctor, user.Role)
	assert.NotEqual(t, "pw123456", user.PasswordHash)
	assert.True(t, utils.CheckPassword(user.PasswordHash, "pw123456"))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture(t, false)
	register(t, f, "ann@example.com", utils.RoleAdmin)
	require.Equal(t, 1, f.users.createCalls)

	_, err := f.service.Register(context.Background(), dto.RegisterRequest{
		Email:    "ANN@example.com",
		Password: "another123",
		Role:     utils.RolePatient,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, 1, f.users.createCalls, "duplicate registration must not insert")
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t, false)
	user := register(t, f, "ann@example.com", utils.RolePatient)

	resp, err := f.service.Login(context.Background(), dto.LoginRequest{Email: "ann@example.com", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, utils.RolePatient, resp.Role)
	assert.Equal(t, "ann@example.com", resp.Email)
	assert.True(t, resp.Expiration.After(time.Now()))

	claims, err := f.tokens.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, utils.RolePatient, claims.Role)
	assert.Equal(t, "ann@example.com", claims.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newAuthFixture(t, false)
	register(t, f, "ann@example.com", utils.RoleAdmin)

	_, err := f.service.Login(context.Background(), dto.LoginRequest{Email: "ann@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.service.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "pw123456"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordReset_Unavailable(t *testing.T) {
	f := newAuthFixture(t, false)
	register(t, f, "ann@example.com", utils.RoleAdmin)

	err := f.service.SendResetCode(context.Background(), "ann@example.com")
	assert.ErrorIs(t, err, ErrResetUnavailable)

	err = f.service.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email: "ann@example.com", Code: "123456", NewPassword: "newpass123",
	})
	assert.ErrorIs(t, err, ErrResetUnavailable)
}

func TestPasswordReset(t *testing.T) {
	f := newAuthFixture(t, true)
	register(t, f, "ann@example.com", utils.RoleAdmin)
	ctx := context.Background()

	require.NoError(t, f.service.SendResetCode(ctx, "nobody@example.com"))
	assert.Empty(t, f.mailer.sent)

	require.NoError(t, f.service.SendResetCode(ctx, "ann@example.com"))
	code := f.mailer.sent["ann@example.com"]
	require.Len(t, code, 6)
	assert.Equal(t, code, f.codes.values[utils.ResetCodeKey("ann@example.com")])

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	err := f.service.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "ann@example.com", Code: wrong, NewPassword: "newpass123"})
	assert.ErrorIs(t, err, ErrInvalidResetCode)

	err = f.service.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "ann@example.com", Code: code, NewPassword: "newpass123"})
	require.NoError(t, err)
	assert.NotContains(t, f.codes.values, utils.ResetCodeKey("ann@example.com"))

	_, err = f.service.Login(ctx, dto.LoginRequest{Email: "ann@example.com", Password: "pw123456"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.service.Login(ctx, dto.LoginRequest{Email: "ann@example.com", Password: "newpass123"})
	assert.NoError(t, err)

	// Codes are single use.
	err = f.service.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "ann@example.com", Code: code, NewPassword: "another123"})
	assert.ErrorIs(t, err, ErrInvalidResetCode)
}

func TestPasswordReset_TooManyAttempts(t *testing.T) {
	f := newAuthFixture(t, true)
	register(t, f, "ann@example.com", utils.RoleAdmin)
	ctx := context.Background()

	require.NoError(t, f.service.SendResetCode(ctx, "ann@example.com"))
	code := f.mailer.sent["ann@example.com"]

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	for i := 0; i < utils.MaxResetAttempts; i++ {
		err := f.service.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "ann@example.com", Code: wrong, NewPassword: "newpass123"})
		require.ErrorIs(t, err, ErrInvalidResetCode)
	}
	assert.NotContains(t, f.codes.values, utils.ResetCodeKey("ann@example.com"))
	assert.NotContains(t, f.codes.values, utils.ResetAttemptsKey("ann@example.com"))

	err := f.service.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "ann@example.com", Code: code, NewPassword: "newpass123"})
	assert.ErrorIs(t, err, ErrInvalidResetCode)

	_, err = f.service.Login(ctx, dto.LoginRequest{Email: "ann@example.com", Password: "pw123456"})
	assert.NoError(t, err)

	// A fresh code starts a fresh count.
	require.NoError(t, f.service.SendResetCode(ctx, "ann@example.com"))
	code = f.mailer.sent["ann@example.com"]
	wrong = "000000"
	if code == wrong {
		wrong = "111111"
	}
	err = f.service.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "ann@example.com", Code: wrong, NewPassword: "newpass123"})
	require.ErrorIs(t, err, ErrInvalidResetCode)
	assert.Equal(t, "1", f.codes.values[utils.ResetAttemptsKey("ann@example.com")])

	err = f.service.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "ann@example.com", Code: code, NewPassword: "newpass123"})
	require.NoError(t, err)
	assert.NotContains(t, f.codes.values, utils.ResetAttemptsKey("ann@example.com"))
}

func TestSendResetCode_MailerFailure(t *testing.T) {
	f := newAuthFixture(t, true)
	register(t, f, "ann@example.com", utils.RoleAdmin)
	f.mailer.err = errors.New("smtp down")

	err := f.service.SendResetCode(context.Background(), "ann@example.com")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrResetUnavailable)
}

