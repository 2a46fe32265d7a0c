//go:build integration

package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/internal/repository"
	"github.com/sefazor/geradores-backend/pkg/database"
	"github.com/sefazor/geradores-backend/pkg/utils"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("geradores_test"),
		postgres.WithUsername("geradores"),
		postgres.WithPassword("geradores"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		panic(err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(err)
	}

	testDB, err = database.NewDatabase(connStr, zap.NewNop())
	if err != nil {
		panic(err)
	}
	if err := database.RunMigrations(testDB); err != nil {
		panic(err)
	}

	code := m.Run()

	_ = database.Close(testDB)
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func reset(t *testing.T) {
	t.Helper()
	require.NoError(t, testDB.Exec(`TRUNCATE TABLE evento, gerador, "user" RESTART IDENTITY CASCADE`).Error)
}

func strPtr(s string) *string { return &s }

func newGenerator(t *testing.T, name string) *models.Generator {
	t.Helper()
	g := &models.Generator{Name: name, Description: strPtr("Cummins 150kVA")}
	require.NoError(t, repository.NewGeneratorRepository(testDB).Create(context.Background(), g))
	return g
}

func newEvent(generatorID uint) *models.Event {
	return &models.Event{
		Location:    "Usina Norte",
		Description: "Manutenção preventiva",
		Date:        models.NewDate(2024, time.March, 15),
		Operator:    "Carlos",
		Responsible: "Marina",
		GeneratorID: generatorID,
	}
}

func TestUserRepository(t *testing.T) {
	reset(t)
	ctx := context.Background()
	repo := repository.NewUserRepository(testDB)

	user := &models.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "$2a$04$hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	err := repo.Create(ctx, &models.User{Name: "Ana 2", Email: "ana@x.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	found, err := repo.GetByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "$2a$04$hash", found.PasswordHash)

	exists, err := repo.EmailExists(ctx, "bia@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	users, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestGeneratorRepository_PartialUpdate(t *testing.T) {
	reset(t)
	ctx := context.Background()
	repo := repository.NewGeneratorRepository(testDB)
	g := newGenerator(t, "G-01")

	patch := &models.Generator{ID: g.ID, Name: "G-01A"}
	require.NoError(t, repo.Update(ctx, patch, []string{"nome"}))

	stored, err := repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "G-01A", stored.Name)
	require.NotNil(t, stored.Description)
	assert.Equal(t, "Cummins 150kVA", *stored.Description)

	err = repo.Update(ctx, &models.Generator{ID: 999, Name: "X"}, []string{"nome"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGeneratorRepository_GetByIDs(t *testing.T) {
	reset(t)
	ctx := context.Background()
	repo := repository.NewGeneratorRepository(testDB)
	a := newGenerator(t, "A")
	newGenerator(t, "B")
	c := newGenerator(t, "C")

	found, err := repo.GetByIDs(ctx, []uint{c.ID, a.ID, 999})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, a.ID, found[0].ID)
	assert.Equal(t, c.ID, found[1].ID)
}

func TestGeneratorRepository_DeleteRestricted(t *testing.T) {
	reset(t)
	ctx := context.Background()
	generators := repository.NewGeneratorRepository(testDB)
	events := repository.NewEventRepository(testDB)
	g := newGenerator(t, "G-01")
	require.NoError(t, events.Create(ctx, newEvent(g.ID)))

	deleted, err := generators.Delete(ctx, g.ID)
	assert.False(t, deleted)
	assert.ErrorIs(t, err, repository.ErrForeignKeyViolation)

	count, err := events.CountByGenerator(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	deleted, err = generators.Delete(ctx, 999)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestEventRepository(t *testing.T) {
	reset(t)
	ctx := context.Background()
	repo := repository.NewEventRepository(testDB)
	g1 := newGenerator(t, "G-01")
	g2 := newGenerator(t, "G-02")

	err := repo.Create(ctx, newEvent(999))
	assert.ErrorIs(t, err, repository.ErrForeignKeyViolation)

	event := newEvent(g1.ID)
	require.NoError(t, repo.Create(ctx, event))

	patch := &models.Event{ID: event.ID, GeneratorID: g2.ID, ResponsiblePhone: strPtr("(85) 99999-0000")}
	require.NoError(t, repo.Update(ctx, patch, []string{"id_gerador", "fone_resp"}))

	stored, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, g2.ID, stored.GeneratorID)
	assert.Equal(t, "Usina Norte", stored.Location)
	assert.Equal(t, "2024-03-15", stored.Date.String())
	require.NotNil(t, stored.ResponsiblePhone)

	err = repo.Update(ctx, &models.Event{ID: event.ID, GeneratorID: 999}, []string{"id_gerador"})
	assert.ErrorIs(t, err, repository.ErrForeignKeyViolation)

	byGenerator, err := repo.ListByGenerator(ctx, g2.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, byGenerator, 1)

	deleted, err := repo.Delete(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, event.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSeed(t *testing.T) {
	reset(t)

	result, err := database.Seed(testDB, 3, 10, utils.NewRand(42))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Generators)
	assert.Equal(t, 10, result.Events)

	events, err := repository.NewEventRepository(testDB).List(context.Background(), 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 10)
}
