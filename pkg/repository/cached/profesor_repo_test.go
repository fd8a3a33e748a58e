package cached

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutechinnovations/proyect/pkg/profesor"
	"github.com/edutechinnovations/proyect/pkg/repository/memory"
)

type mapStore struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
	err  error
}

func newMapStore() *mapStore {
	return &mapStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (s *mapStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	b, ok := s.data[key]
	if !ok {
		return nil, ErrMiss
	}
	return b, nil
}

func (s *mapStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.data[key] = value
	s.ttls[key] = ttl
	return nil
}

func (s *mapStore) Del(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	delete(s.data, key)
	return nil
}

type countingRepo struct {
	profesor.Repository
	gets int
}

func (r *countingRepo) GetByID(ctx context.Context, id int64) (profesor.Profesor, error) {
	r.gets++
	return r.Repository.GetByID(ctx, id)
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestProfesorRepository_GetByIDReadsThrough(t *testing.T) {
	inner := &countingRepo{Repository: memory.NewProfesorRepository()}
	store := newMapStore()
	repo := NewProfesorRepository(inner, store, time.Minute, quietLogger())
	ctx := context.Background()

	saved, err := repo.Save(ctx, profesor.Profesor{FirstName: "Ana"})
	require.NoError(t, err)

	first, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.gets)
	assert.Equal(t, first, second)
	assert.Equal(t, time.Minute, store.ttls["profesor:1"])
}

func TestProfesorRepository_SaveEvicts(t *testing.T) {
	inner := memory.NewProfesorRepository()
	store := newMapStore()
	repo := NewProfesorRepository(inner, store, time.Minute, quietLogger())
	ctx := context.Background()

	saved, err := repo.Save(ctx, profesor.Profesor{FirstName: "Ana"})
	require.NoError(t, err)
	_, err = repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	require.Contains(t, store.data, "profesor:1")

	saved.FirstName = "Ana María"
	_, err = repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.NotContains(t, store.data, "profesor:1")

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", got.FirstName)
}

func TestProfesorRepository_NotFoundIsNotCached(t *testing.T) {
	store := newMapStore()
	repo := NewProfesorRepository(memory.NewProfesorRepository(), store, time.Minute, quietLogger())

	_, err := repo.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, profesor.ErrNotFound)
	assert.Empty(t, store.data)
}

func TestProfesorRepository_StoreFailureFallsThrough(t *testing.T) {
	inner := memory.NewProfesorRepository()
	store := newMapStore()
	repo := NewProfesorRepository(inner, store, time.Minute, quietLogger())
	ctx := context.Background()

	saved, err := inner.Save(ctx, profesor.Profesor{FirstName: "Ana"})
	require.NoError(t, err)

	store.err = errors.New("redis down")
	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.FirstName)

	got.FirstName = "Luis"
	_, err = repo.Save(ctx, got)
	assert.NoError(t, err)
}

func TestProfesorRepository_CorruptEntryIsDropped(t *testing.T) {
	inner := memory.NewProfesorRepository()
	store := newMapStore()
	repo := NewProfesorRepository(inner, store, time.Minute, quietLogger())
	ctx := context.Background()

	saved, err := inner.Save(ctx, profesor.Profesor{FirstName: "Ana"})
	require.NoError(t, err)
	store.data["profesor:1"] = []byte("{not json")

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.FirstName)
}
