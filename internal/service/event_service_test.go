package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/internal/service"
)

func TestEventService_CreateRequiresGenerator(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.events.Create(ctx, newEventRequest(9999))
	assert.ErrorIs(t, err, service.ErrGeneratorNotFound)
	assert.Zero(t, env.store.EventCount())

	_, err = env.events.Create(ctx, newEventRequest(0))
	assert.ErrorIs(t, err, service.ErrGeneratorNotFound)
	assert.Zero(t, env.store.EventCount())
}

func TestEventService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	g, err := env.generators.Create(ctx, models.CreateGeneratorRequest{Name: "Diesel G-1", Description: strPtr("backup")})
	require.NoError(t, err)

	created, err := env.events.Create(ctx, newEventRequest(g.ID))
	require.NoError(t, err)
	require.NotNil(t, created.Generator)
	assert.Equal(t, g.ID, created.Generator.ID)

	// the embedded generator reflects its current values
	_, err = env.generators.Update(ctx, g.ID, models.UpdateGeneratorRequest{Name: strPtr("Diesel G-1A")})
	require.NoError(t, err)

	got, err := env.events.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.GeneratorID)
	require.NotNil(t, got.Generator)
	assert.Equal(t, g.ID, got.Generator.ID)
	assert.Equal(t, "Diesel G-1A", got.Generator.Name)
	assert.Equal(t, "backup", *got.Generator.Description)
	assert.Equal(t, "2024-03-15", got.Date.String())

	_, err = env.events.Get(ctx, 999)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestEventService_List(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	g1, err := env.generators.Create(ctx, models.CreateGeneratorRequest{Name: "G-1"})
	require.NoError(t, err)
	g2, err := env.generators.Create(ctx, models.CreateGeneratorRequest{Name: "G-2"})
	require.NoError(t, err)
	for _, id := range []uint{g1.ID, g2.ID, g1.ID} {
		_, err := env.events.Create(ctx, newEventRequest(id))
		require.NoError(t, err)
	}

	list, err := env.events.List(ctx, models.Page{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "G-1", list[0].Generator.Name)
	assert.Equal(t, "G-2", list[1].Generator.Name)
	assert.Equal(t, "G-1", list[2].Generator.Name)

	paged, err := env.events.List(ctx, models.Page{Skip: 2, Limit: 5})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, list[2].ID, paged[0].ID)
}

func TestEventService_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	g1, err := env.generators.Create(ctx, models.CreateGeneratorRequest{Name: "G-1"})
	require.NoError(t, err)
	g2, err := env.generators.Create(ctx, models.CreateGeneratorRequest{Name: "G-2"})
	require.NoError(t, err)
	ev, err := env.events.Create(ctx, newEventRequest(g1.ID))
	require.NoError(t, err)

	newDate := models.NewDate(2024, time.April, 2)
	updated, err := env.events.Update(ctx, ev.ID, models.UpdateEventRequest{Date: &newDate})
	require.NoError(t, err)
	assert.Equal(t, "2024-04-02", updated.Date.String())
	assert.Equal(t, "Usina Norte", updated.Location)
	assert.Equal(t, g1.ID, updated.GeneratorID)
	assert.Equal(t, "G-1", updated.Generator.Name)

	moved, err := env.events.Update(ctx, ev.ID, models.UpdateEventRequest{GeneratorID: uintPtr(g2.ID)})
	require.NoError(t, err)
	assert.Equal(t, g2.ID, moved.GeneratorID)
	assert.Equal(t, "G-2", moved.Generator.Name)
	assert.Equal(t, "2024-04-02", moved.Date.String())

	stored, err := env.events.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, g2.ID, stored.GeneratorID)
	assert.Equal(t, "Carlos Lima", stored.Operator)
}

func TestEventService_UpdateErrors(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	g, err := env.generators.Create(ctx, models.CreateGeneratorRequest{Name: "G-1"})
	require.NoError(t, err)
	ev, err := env.events.Create(ctx, newEventRequest(g.ID))
	require.NoError(t, err)

	_, err = env.events.Update(ctx, 999, models.UpdateEventRequest{Location: strPtr("x")})
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = env.events.Update(ctx, ev.ID, models.UpdateEventRequest{Location: strPtr("Outro"), GeneratorID: uintPtr(9999)})
	assert.ErrorIs(t, err, service.ErrGeneratorNotFound)

	// the rejected update left the row untouched
	stored, err := env.events.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Usina Norte", stored.Location)
	assert.Equal(t, g.ID, stored.GeneratorID)
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	g, err := env.generators.Create(ctx, models.CreateGeneratorRequest{Name: "G-1"})
	require.NoError(t, err)
	ev, err := env.events.Create(ctx, newEventRequest(g.ID))
	require.NoError(t, err)

	deleted, err := env.events.Delete(ctx, ev.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = env.events.Delete(ctx, ev.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestIntegrityGuard(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	guard := service.NewIntegrityGuard(env.store.Generators())

	g, err := env.generators.Create(ctx, models.CreateGeneratorRequest{Name: "G-1"})
	require.NoError(t, err)

	got, err := guard.EnsureGeneratorExists(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.ID)

	_, err = guard.EnsureGeneratorExists(ctx, g.ID+1)
	assert.ErrorIs(t, err, service.ErrGeneratorNotFound)
}
