package profesor

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("profesor not found")
	ErrDuplicateEmail  = errors.New("profesor with this email already exists")
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)

// Repository is the persistence port for teacher records.
type Repository interface {
	List(ctx context.Context) ([]Profesor, error)
	GetByID(ctx context.Context, id int64) (Profesor, error)
	// Save inserts p when p.ID is zero and upserts it otherwise.
	Save(ctx context.Context, p Profesor) (Profesor, error)
}
