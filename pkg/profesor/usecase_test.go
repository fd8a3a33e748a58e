package profesor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/edutechinnovations/proyect/pkg/profesor"
)

type fakeRepo struct {
	rows    map[int64]profesor.Profesor
	nextID  int64
	saves   int
	failGet error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[int64]profesor.Profesor{}, nextID: 1}
}

func (r *fakeRepo) List(ctx context.Context) ([]profesor.Profesor, error) {
	out := make([]profesor.Profesor, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (profesor.Profesor, error) {
	if r.failGet != nil {
		return profesor.Profesor{}, r.failGet
	}
	p, ok := r.rows[id]
	if !ok {
		return profesor.Profesor{}, profesor.ErrNotFound
	}
	return p, nil
}

func (r *fakeRepo) Save(ctx context.Context, p profesor.Profesor) (profesor.Profesor, error) {
	r.saves++
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	r.rows[p.ID] = p
	return p, nil
}

func newService(repo profesor.Repository) profesor.UseCase {
	return profesor.NewService(repo, profesor.NewBcryptHasher(bcrypt.MinCost))
}

func TestService_Save_HashesPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	p, err := svc.Save(context.Background(), profesor.Profesor{FirstName: "Ana"}, "s3cret")
	require.NoError(t, err)

	assert.Equal(t, int64(1), p.ID)
	assert.NotEqual(t, "s3cret", p.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("s3cret")))
}

func TestService_Save_EmptyPasswordLeavesHashUntouched(t *testing.T) {
	svc := newService(newFakeRepo())

	p, err := svc.Save(context.Background(), profesor.Profesor{FirstName: "Ana"}, "")
	require.NoError(t, err)
	assert.Empty(t, p.PasswordHash)
}

func TestService_Save_PasswordTooLong(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}
	_, err := svc.Save(context.Background(), profesor.Profesor{}, string(long))
	assert.ErrorIs(t, err, profesor.ErrPasswordTooLong)
	assert.Zero(t, repo.saves)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := newService(newFakeRepo())

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, profesor.ErrNotFound)
}

func TestService_Update_CopiesFieldsAndKeepsIdentity(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	ctx := context.Background()

	created, err := svc.Save(ctx, profesor.Profesor{FirstName: "Ana", Email: "ana@example.com"}, "old")
	require.NoError(t, err)

	born := time.Date(1980, 5, 17, 0, 0, 0, 0, time.UTC)
	in := profesor.Profesor{
		ID:              999,
		CheckDigit:      "K",
		FirstName:       "Ana María",
		SecondName:      "José",
		PaternalSurname: "Pérez",
		MaternalSurname: "Soto",
		Email:           "ana.perez@example.com",
		BirthDate:       &born,
	}
	updated, err := svc.Update(ctx, created.ID, in, "")
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "K", updated.CheckDigit)
	assert.Equal(t, "Ana María", updated.FirstName)
	assert.Equal(t, "José", updated.SecondName)
	assert.Equal(t, "Pérez", updated.PaternalSurname)
	assert.Equal(t, "Soto", updated.MaternalSurname)
	assert.Equal(t, "ana.perez@example.com", updated.Email)
	require.NotNil(t, updated.BirthDate)
	assert.True(t, born.Equal(*updated.BirthDate))
	assert.Equal(t, created.PasswordHash, updated.PasswordHash)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, profesor.ErrNotFound)
}

func TestService_Update_ReplacesPassword(t *testing.T) {
	svc := newService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.Save(ctx, profesor.Profesor{FirstName: "Ana"}, "old")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, profesor.Profesor{FirstName: "Ana"}, "new")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new")))
}

func TestService_Update_MissingDoesNotWrite(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	_, err := svc.Update(context.Background(), 7, profesor.Profesor{FirstName: "X"}, "pw")
	assert.ErrorIs(t, err, profesor.ErrNotFound)
	assert.Zero(t, repo.saves)
}

func TestService_Update_PropagatesStoreFault(t *testing.T) {
	repo := newFakeRepo()
	repo.failGet = errors.New("connection reset")
	svc := newService(repo)

	_, err := svc.Update(context.Background(), 1, profesor.Profesor{}, "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, profesor.ErrNotFound)
	assert.Zero(t, repo.saves)
}
