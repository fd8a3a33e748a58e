package cached

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"

	"github.com/edutechinnovations/proyect/pkg/profesor"
)

// ErrMiss is returned by a Store when the key is absent.
var ErrMiss = errors.New("cache miss")

// Store is the key/value backend used for cached records.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// ProfesorRepository is a read-through cache in front of another
// profesor.Repository. Only single-record reads are cached; writes evict.
// Cache errors never fail a request, they are logged and the inner
// repository answers instead.
type ProfesorRepository struct {
	inner profesor.Repository
	store Store
	ttl   time.Duration
	log   logrus.FieldLogger
}

func NewProfesorRepository(inner profesor.Repository, store Store, ttl time.Duration, log logrus.FieldLogger) *ProfesorRepository {
	return &ProfesorRepository{inner: inner, store: store, ttl: ttl, log: log}
}

func (r *ProfesorRepository) List(ctx context.Context) ([]profesor.Profesor, error) {
	return r.inner.List(ctx)
}

func (r *ProfesorRepository) GetByID(ctx context.Context, id int64) (profesor.Profesor, error) {
	key := cacheKey(id)
	if b, err := r.store.Get(ctx, key); err == nil {
		var p profesor.Profesor
		if err := sonic.Unmarshal(b, &p); err == nil {
			return p, nil
		}
		r.log.WithField("key", key).Warn("dropping undecodable cache entry")
		r.evict(ctx, key)
	} else if !errors.Is(err, ErrMiss) {
		r.log.WithError(err).WithField("key", key).Warn("cache read failed")
	}

	p, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return profesor.Profesor{}, err
	}
	b, err := sonic.Marshal(p)
	if err == nil {
		err = r.store.Set(ctx, key, b, r.ttl)
	}
	if err != nil {
		r.log.WithError(err).WithField("key", key).Warn("cache write failed")
	}
	return p, nil
}

func (r *ProfesorRepository) Save(ctx context.Context, p profesor.Profesor) (profesor.Profesor, error) {
	saved, err := r.inner.Save(ctx, p)
	if err != nil {
		return profesor.Profesor{}, err
	}
	r.evict(ctx, cacheKey(saved.ID))
	return saved, nil
}

func (r *ProfesorRepository) evict(ctx context.Context, key string) {
	if err := r.store.Del(ctx, key); err != nil {
		r.log.WithError(err).WithField("key", key).Warn("cache evict failed")
	}
}

func cacheKey(id int64) string {
	return "profesor:" + strconv.FormatInt(id, 10)
}
