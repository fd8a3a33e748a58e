package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/edutechinnovations/proyect/pkg/profesor"
)

// ProfesorRepository keeps teacher records in process memory. It mirrors the
// postgres repository: store-assigned identities, upsert on explicit identity
// and unique non-empty email.
type ProfesorRepository struct {
	mu     sync.RWMutex
	rows   map[int64]profesor.Profesor
	lastID int64
}

func NewProfesorRepository() *ProfesorRepository {
	return &ProfesorRepository{rows: make(map[int64]profesor.Profesor)}
}

func (r *ProfesorRepository) List(ctx context.Context) ([]profesor.Profesor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]profesor.Profesor, 0, len(r.rows))
	for _, p := range r.rows {
		res = append(res, clone(p))
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (r *ProfesorRepository) GetByID(ctx context.Context, id int64) (profesor.Profesor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.rows[id]
	if !ok {
		return profesor.Profesor{}, profesor.ErrNotFound
	}
	return clone(p), nil
}

func (r *ProfesorRepository) Save(ctx context.Context, p profesor.Profesor) (profesor.Profesor, error) {
	if err := ctx.Err(); err != nil {
		return profesor.Profesor{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if email := normalizeEmail(p.Email); email != "" {
		for id, other := range r.rows {
			if id != p.ID && normalizeEmail(other.Email) == email {
				return profesor.Profesor{}, profesor.ErrDuplicateEmail
			}
		}
	}
	if p.ID == 0 {
		r.lastID++
		p.ID = r.lastID
	} else if p.ID > r.lastID {
		r.lastID = p.ID
	}
	r.rows[p.ID] = clone(p)
	return clone(p), nil
}

// normalizeEmail mirrors the lower(correo_profesor) unique index.
func normalizeEmail(s string) string {
	return strings.ToLower(s)
}

func clone(p profesor.Profesor) profesor.Profesor {
	if p.BirthDate != nil {
		d := *p.BirthDate
		p.BirthDate = &d
	}
	return p
}
