package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sefazor/geradores-backend/internal/service"
	"github.com/sefazor/geradores-backend/internal/service/servicetest"
	"github.com/sefazor/geradores-backend/pkg/bcrypt"
	"github.com/sefazor/geradores-backend/pkg/jwt"
)

type testEnv struct {
	store      *servicetest.Store
	tokens     *jwt.TokenService
	auth       *service.AuthService
	users      *service.UserService
	generators *service.GeneratorService
	events     *service.EventService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := zap.NewNop()
	store := servicetest.NewStore()
	tokens, err := jwt.NewTokenService("test-secret", 30*time.Minute, "")
	require.NoError(t, err)

	guard := service.NewIntegrityGuard(store.Generators())
	return &testEnv{
		store:      store,
		tokens:     tokens,
		auth:       service.NewAuthService(store.Users(), bcrypt.NewHasher(4), tokens, log),
		users:      service.NewUserService(store.Users()),
		generators: service.NewGeneratorService(store.Generators(), store.Events(), log),
		events:     service.NewEventService(store.Events(), store.Generators(), guard, log),
	}
}

func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint    { return &v }

func bcryptHasher() *bcrypt.Hasher { return bcrypt.NewHasher(4) }
func zapNop() *zap.Logger          { return zap.NewNop() }
