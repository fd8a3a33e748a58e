package profesor

import "context"

// UseCase exposes the teacher record operations to transport layers.
type UseCase interface {
	List(ctx context.Context) ([]Profesor, error)
	// Save stores p, hashing password into p.PasswordHash when it is non-empty.
	Save(ctx context.Context, p Profesor, password string) (Profesor, error)
	GetByID(ctx context.Context, id int64) (Profesor, error)
	// Update overwrites the record identified by id with the fields of p.
	// The identity of the stored record never changes. An empty password
	// keeps the current hash.
	Update(ctx context.Context, id int64, p Profesor, password string) (Profesor, error)
}

type service struct {
	repo   Repository
	hasher Hasher
}

func NewService(repo Repository, hasher Hasher) UseCase {
	return &service{repo: repo, hasher: hasher}
}

func (s *service) List(ctx context.Context) ([]Profesor, error) {
	return s.repo.List(ctx)
}

func (s *service) Save(ctx context.Context, p Profesor, password string) (Profesor, error) {
	if password != "" {
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return Profesor{}, err
		}
		p.PasswordHash = hash
	}
	return s.repo.Save(ctx, p)
}

func (s *service) GetByID(ctx context.Context, id int64) (Profesor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, p Profesor, password string) (Profesor, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Profesor{}, err
	}
	current.applyFrom(p)
	return s.Save(ctx, current, password)
}
