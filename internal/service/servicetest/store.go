// Package servicetest provides in-memory stores that honour the same
// constraints as the PostgreSQL schema: unique user email, evento.id_gerador
// foreign key and restrict-on-delete for referenced generators.
package servicetest

import (
	"context"
	"sort"
	"sync"

	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/internal/repository"
)

// Store is an in-memory database shared by the three store views.
type Store struct {
	mu         sync.Mutex
	users      map[uint]models.User
	generators map[uint]models.Generator
	events     map[uint]models.Event
	nextID     map[string]uint

	// Err, when set, is returned by every operation.
	Err error
}

func NewStore() *Store {
	return &Store{
		users:      map[uint]models.User{},
		generators: map[uint]models.Generator{},
		events:     map[uint]models.Event{},
		nextID:     map[string]uint{},
	}
}

func (s *Store) Users() *UserStore           { return &UserStore{s: s} }
func (s *Store) Generators() *GeneratorStore { return &GeneratorStore{s: s} }
func (s *Store) Events() *EventStore         { return &EventStore{s: s} }

func (s *Store) id(table string) uint {
	s.nextID[table]++
	return s.nextID[table]
}

// EventCount returns the number of stored events.
func (s *Store) EventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// UserByEmail returns the stored user row, including its password hash.
func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func page[T any](rows map[uint]T, offset, limit int, keep func(T) bool) []T {
	ids := make([]uint, 0, len(rows))
	for id := range rows {
		if keep == nil || keep(rows[id]) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []T{}
	for i := offset; i < len(ids) && len(out) < limit; i++ {
		out = append(out, rows[ids[i]])
	}
	return out
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

type UserStore struct{ s *Store }

func (u *UserStore) Create(_ context.Context, user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if u.s.Err != nil {
		return u.s.Err
	}
	for _, existing := range u.s.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateKey
		}
	}
	user.ID = u.s.id("user")
	u.s.users[user.ID] = *user
	return nil
}

func (u *UserStore) GetByID(_ context.Context, id uint) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if u.s.Err != nil {
		return nil, u.s.Err
	}
	user, ok := u.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (u *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if u.s.Err != nil {
		return nil, u.s.Err
	}
	for _, user := range u.s.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (u *UserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := u.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return true, nil
	case err == repository.ErrNotFound:
		return false, nil
	default:
		return false, err
	}
}

func (u *UserStore) List(_ context.Context, offset, limit int) ([]models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if u.s.Err != nil {
		return nil, u.s.Err
	}
	return page(u.s.users, offset, limit, nil), nil
}

type GeneratorStore struct{ s *Store }

func (g *GeneratorStore) Create(_ context.Context, generator *models.Generator) error {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	if g.s.Err != nil {
		return g.s.Err
	}
	generator.ID = g.s.id("gerador")
	stored := *generator
	stored.Description = cloneStr(generator.Description)
	g.s.generators[generator.ID] = stored
	return nil
}

func (g *GeneratorStore) GetByID(_ context.Context, id uint) (*models.Generator, error) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	if g.s.Err != nil {
		return nil, g.s.Err
	}
	generator, ok := g.s.generators[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	generator.Description = cloneStr(generator.Description)
	return &generator, nil
}

func (g *GeneratorStore) GetByIDs(_ context.Context, ids []uint) ([]models.Generator, error) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	if g.s.Err != nil {
		return nil, g.s.Err
	}
	want := make(map[uint]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	return page(g.s.generators, 0, len(g.s.generators), func(gen models.Generator) bool {
		return want[gen.ID]
	}), nil
}

func (g *GeneratorStore) List(_ context.Context, offset, limit int) ([]models.Generator, error) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	if g.s.Err != nil {
		return nil, g.s.Err
	}
	return page(g.s.generators, offset, limit, nil), nil
}

func (g *GeneratorStore) Update(_ context.Context, generator *models.Generator, columns []string) error {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	if g.s.Err != nil {
		return g.s.Err
	}
	stored, ok := g.s.generators[generator.ID]
	if !ok {
		return repository.ErrNotFound
	}
	for _, c := range columns {
		switch c {
		case "nome":
			stored.Name = generator.Name
		case "descricao":
			stored.Description = cloneStr(generator.Description)
		}
	}
	g.s.generators[generator.ID] = stored
	return nil
}

func (g *GeneratorStore) Delete(_ context.Context, id uint) (bool, error) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	if g.s.Err != nil {
		return false, g.s.Err
	}
	if _, ok := g.s.generators[id]; !ok {
		return false, nil
	}
	for _, e := range g.s.events {
		if e.GeneratorID == id {
			return false, repository.ErrForeignKeyViolation
		}
	}
	delete(g.s.generators, id)
	return true, nil
}

type EventStore struct{ s *Store }

func (e *EventStore) Create(_ context.Context, event *models.Event) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if e.s.Err != nil {
		return e.s.Err
	}
	if _, ok := e.s.generators[event.GeneratorID]; !ok {
		return repository.ErrForeignKeyViolation
	}
	event.ID = e.s.id("evento")
	stored := *event
	stored.ResponsiblePhone = cloneStr(event.ResponsiblePhone)
	e.s.events[event.ID] = stored
	return nil
}

func (e *EventStore) GetByID(_ context.Context, id uint) (*models.Event, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if e.s.Err != nil {
		return nil, e.s.Err
	}
	event, ok := e.s.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	event.ResponsiblePhone = cloneStr(event.ResponsiblePhone)
	return &event, nil
}

func (e *EventStore) List(_ context.Context, offset, limit int) ([]models.Event, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if e.s.Err != nil {
		return nil, e.s.Err
	}
	return page(e.s.events, offset, limit, nil), nil
}

func (e *EventStore) ListByGenerator(_ context.Context, generatorID uint, offset, limit int) ([]models.Event, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if e.s.Err != nil {
		return nil, e.s.Err
	}
	return page(e.s.events, offset, limit, func(ev models.Event) bool {
		return ev.GeneratorID == generatorID
	}), nil
}

func (e *EventStore) CountByGenerator(_ context.Context, generatorID uint) (int64, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if e.s.Err != nil {
		return 0, e.s.Err
	}
	var n int64
	for _, ev := range e.s.events {
		if ev.GeneratorID == generatorID {
			n++
		}
	}
	return n, nil
}

func (e *EventStore) Update(_ context.Context, event *models.Event, columns []string) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if e.s.Err != nil {
		return e.s.Err
	}
	stored, ok := e.s.events[event.ID]
	if !ok {
		return repository.ErrNotFound
	}
	for _, c := range columns {
		switch c {
		case "local":
			stored.Location = event.Location
		case "descricao":
			stored.Description = event.Description
		case "data":
			stored.Date = event.Date
		case "operador":
			stored.Operator = event.Operator
		case "responsavel":
			stored.Responsible = event.Responsible
		case "fone_resp":
			stored.ResponsiblePhone = cloneStr(event.ResponsiblePhone)
		case "id_gerador":
			if _, ok := e.s.generators[event.GeneratorID]; !ok {
				return repository.ErrForeignKeyViolation
			}
			stored.GeneratorID = event.GeneratorID
		}
	}
	e.s.events[event.ID] = stored
	return nil
}

func (e *EventStore) Delete(_ context.Context, id uint) (bool, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if e.s.Err != nil {
		return false, e.s.Err
	}
	if _, ok := e.s.events[id]; !ok {
		return false, nil
	}
	delete(e.s.events, id)
	return true, nil
}
