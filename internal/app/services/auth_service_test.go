package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/pkg/apperrors"
	"github.com/tobi/edushare/internal/pkg/auth"
)

type fakeUserStore struct {
	usersByID    map[int64]*models.User
	usersByEmail map[string]*models.User
	nextID       int64
	lastLogins   []int64
	onboarded    []int64
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) (int64, error) {
	if _, exists := f.usersByEmail[user.Email]; exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	f.nextID++
	user.ID = f.nextID
	if f.usersByID == nil {
		f.usersByID = make(map[int64]*models.User)
		f.usersByEmail = make(map[string]*models.User)
	}
	f.usersByID[user.ID] = user
	f.usersByEmail[user.Email] = user
	return user.ID, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.usersByID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.usersByEmail[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) UpdateLastLogin(_ context.Context, id int64) error {
	f.lastLogins = append(f.lastLogins, id)
	return nil
}

func (f *fakeUserStore) CompleteOnboarding(_ context.Context, id int64) error {
	f.onboarded = append(f.onboarded, id)
	if user, ok := f.usersByID[id]; ok {
		user.OnboardingComplete = true
	}
	return nil
}

type fakeTokenStore struct {
	tokens map[string]*models.RefreshToken
}

func (f *fakeTokenStore) Save(_ context.Context, userID int64, token string, expiresAt time.Time) error {
	if f.tokens == nil {
		f.tokens = make(map[string]*models.RefreshToken)
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, ExpiresAt: expiresAt}
	return nil
}

func (f *fakeTokenStore) Get(_ context.Context, token string) (*models.RefreshToken, error) {
	stored, ok := f.tokens[token]
	if !ok {
		return nil, apperrors.ErrTokenNotFound
	}
	return stored, nil
}

func (f *fakeTokenStore) Revoke(_ context.Context, token string) error {
	stored, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	stored.Revoked = true
	return nil
}

func newTestAuthService() (AuthService, *fakeUserStore, *fakeTokenStore) {
	users := &fakeUserStore{}
	tokens := &fakeTokenStore{}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "edushare-test",
	})
	return NewAuthService(users, tokens, jwtService), users, tokens
}

func registerStudent(t *testing.T, svc AuthService) *dto.AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "student@example.edu",
		Password:  "s3cret-pass",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      string(models.RoleStudent),
	})
	require.NoError(t, err)
	return resp
}

func TestRegister_IssuesTokens(t *testing.T) {
	svc, users, tokens := newTestAuthService()

	resp := registerStudent(t, svc)

	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
	assert.Equal(t, "student@example.edu", resp.User.Email)

	stored := users.usersByEmail["student@example.edu"]
	require.NotNil(t, stored)
	// password is stored hashed
	assert.NotEqual(t, "s3cret-pass", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "s3cret-pass"))
	assert.True(t, stored.IsActive)

	assert.Contains(t, tokens.tokens, resp.Tokens.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerStudent(t, svc)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "student@example.edu",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailMapsToInvalidCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.edu",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	svc, users, _ := newTestAuthService()
	registerStudent(t, svc)
	users.usersByEmail["student@example.edu"].IsActive = false

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "student@example.edu",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestLogin_RecordsLastLogin(t *testing.T) {
	svc, users, _ := newTestAuthService()
	reg := registerStudent(t, svc)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "student@example.edu",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{reg.User.ID}, users.lastLogins)
}

func TestRefreshTokens_RotatesToken(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	reg := registerStudent(t, svc)

	rotated, err := svc.RefreshTokens(context.Background(), reg.Tokens.RefreshToken)
	require.NoError(t, err)

	assert.NotEqual(t, reg.Tokens.RefreshToken, rotated.RefreshToken)
	// the presented token is revoked in the same operation
	assert.True(t, tokens.tokens[reg.Tokens.RefreshToken].Revoked)

	// a revoked token cannot be reused
	_, err = svc.RefreshTokens(context.Background(), reg.Tokens.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestRefreshTokens_Expired(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	reg := registerStudent(t, svc)
	tokens.tokens[reg.Tokens.RefreshToken].ExpiresAt = time.Now().Add(-time.Minute)

	_, err := svc.RefreshTokens(context.Background(), reg.Tokens.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestLogout_Idempotent(t *testing.T) {
	svc, _, _ := newTestAuthService()
	reg := registerStudent(t, svc)

	require.NoError(t, svc.Logout(context.Background(), reg.Tokens.RefreshToken))
	// logging out an already revoked or unknown token is not an error
	require.NoError(t, svc.Logout(context.Background(), "unknown-token"))
}

func TestCompleteOnboarding_ReissuesTokensWithClaim(t *testing.T) {
	svc, users, _ := newTestAuthService()
	reg := registerStudent(t, svc)

	resp, err := svc.CompleteOnboarding(context.Background(), reg.User.ID)
	require.NoError(t, err)

	assert.Equal(t, []int64{reg.User.ID}, users.onboarded)
	assert.True(t, resp.User.OnboardingComplete)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
}
