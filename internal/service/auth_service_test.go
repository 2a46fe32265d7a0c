package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/internal/service"
)

func TestAuthService_RegisterThenAuthenticate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	user, err := env.auth.Register(ctx, models.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "ana@x.com", user.Email)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	authed, err := env.auth.Authenticate(ctx, "ana@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
	assert.Equal(t, "ana@x.com", authed.Email)
}

func TestAuthService_RegisterNormalizesEmail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	user, err := env.auth.Register(ctx, models.RegisterRequest{Name: "Ana", Email: "  Ana@X.com ", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", user.Email)

	_, err = env.auth.Authenticate(ctx, "ANA@x.com", "secret123")
	require.NoError(t, err)
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.auth.Register(ctx, models.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "secret123"})
	require.NoError(t, err)
	original, ok := env.store.UserByEmail("ana@x.com")
	require.True(t, ok)

	_, err = env.auth.Register(ctx, models.RegisterRequest{Name: "Outra", Email: "ana@x.com", Password: "other-password"})
	assert.ErrorIs(t, err, service.ErrEmailAlreadyRegistered)

	after, ok := env.store.UserByEmail("ana@x.com")
	require.True(t, ok)
	assert.Equal(t, original.PasswordHash, after.PasswordHash)
	assert.Equal(t, "Ana", after.Name)

	_, err = env.auth.Authenticate(ctx, "ana@x.com", "other-password")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
}

// raceStore lets the pre-check pass and then fails the insert on the unique
// index, as a concurrent registration would.
type raceStore struct {
	service.UserStore
}

func (raceStore) EmailExists(context.Context, string) (bool, error) { return false, nil }

func TestAuthService_RegisterRaceMapsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.auth.Register(ctx, models.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "secret123"})
	require.NoError(t, err)

	racing := service.NewAuthService(raceStore{env.store.Users()}, bcryptHasher(), env.tokens, zapNop())
	_, err = racing.Register(ctx, models.RegisterRequest{Name: "Ana 2", Email: "ana@x.com", Password: "secret123"})
	assert.ErrorIs(t, err, service.ErrEmailAlreadyRegistered)
}

func TestAuthService_NonEnumeration(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.auth.Register(ctx, models.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "secret123"})
	require.NoError(t, err)

	_, wrongPassword := env.auth.Authenticate(ctx, "ana@x.com", "wrong")
	_, unknownEmail := env.auth.Authenticate(ctx, "ghost@x.com", "secret123")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, wrongPassword, unknownEmail)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.ErrorIs(t, wrongPassword, service.ErrAuthenticationFailed)
}

func TestAuthService_MalformedStoredHash(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	user := &models.User{Name: "Legacy", Email: "legacy@x.com", PasswordHash: "plain-text"}
	require.NoError(t, env.store.Users().Create(ctx, user))

	_, err := env.auth.Authenticate(ctx, "legacy@x.com", "plain-text")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
}

func TestAuthService_StorageErrorPropagates(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	boom := errors.New("connection reset")
	env.store.Err = boom

	_, err := env.auth.Authenticate(ctx, "ana@x.com", "secret123")
	assert.ErrorIs(t, err, boom)

	_, err = env.auth.Register(ctx, models.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "secret123"})
	assert.ErrorIs(t, err, boom)
}

func TestAuthService_LoginAndCurrentUser(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	user, err := env.auth.Register(ctx, models.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "secret123"})
	require.NoError(t, err)

	resp, err := env.auth.Login(ctx, models.LoginRequest{Username: "ana@x.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int64(1800), resp.ExpiresIn)

	subject, err := env.tokens.Validate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", subject)

	me, err := env.auth.CurrentUser(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, me.ID)

	_, err = env.auth.Login(ctx, models.LoginRequest{Username: "ana@x.com", Password: "nope"})
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
}

func TestAuthService_CurrentUserFailures(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.auth.CurrentUser(ctx, "garbage")
	assert.ErrorIs(t, err, service.ErrUnauthorized)

	// token for a user that does not exist
	token, _, err := env.tokens.Issue("ghost@x.com")
	require.NoError(t, err)
	_, err = env.auth.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, service.ErrUnauthorized)

	issued := time.Now().Add(-time.Hour)
	env.tokens.WithClock(func() time.Time { return issued })
	expired, _, err := env.tokens.Issue("ana@x.com")
	require.NoError(t, err)
	env.tokens.WithClock(time.Now)

	_, err = env.auth.CurrentUser(ctx, expired)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := env.auth.Register(ctx, models.RegisterRequest{Name: email, Email: email, Password: "secret123"})
		require.NoError(t, err)
	}

	users, err := env.users.ListUsers(ctx, models.Page{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "b@x.com", users[0].Email)

	all, err := env.users.ListUsers(ctx, models.Page{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = env.users.GetUser(ctx, 99)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestAuthService_RegisterPasswordTooLong(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.auth.Register(ctx, models.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: strings.Repeat("a", 73)})
	assert.ErrorIs(t, err, service.ErrPasswordTooLong)

	_, ok := env.store.UserByEmail("ana@x.com")
	assert.False(t, ok)
}
