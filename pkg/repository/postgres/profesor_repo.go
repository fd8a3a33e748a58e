package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/edutechinnovations/proyect/pkg/profesor"
)

const profesorColumns = `id_profesor, dv_profesor, pnombre_profesor, snombre_profesor,
	appaterno_profesor, apmaterno_profesor, COALESCE(correo_profesor, ''),
	contrasena_hash, fecha_nacimiento_profesor`

const uniqueViolation = "23505"

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ProfesorRepository implements profesor.Repository backed by PostgreSQL (pgx).
// The schema is owned by the goose migrations in pkg/storage/postgres.
type ProfesorRepository struct {
	pool DB
}

func NewProfesorRepository(pool DB) *ProfesorRepository {
	return &ProfesorRepository{pool: pool}
}

func (r *ProfesorRepository) List(ctx context.Context) ([]profesor.Profesor, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+profesorColumns+` FROM profesor ORDER BY id_profesor`)
	if err != nil {
		return nil, fmt.Errorf("list profesores: %w", err)
	}
	defer rows.Close()

	res := make([]profesor.Profesor, 0)
	for rows.Next() {
		p, err := scanProfesor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profesor: %w", err)
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profesores: %w", err)
	}
	return res, nil
}

func (r *ProfesorRepository) GetByID(ctx context.Context, id int64) (profesor.Profesor, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+profesorColumns+` FROM profesor WHERE id_profesor = $1`, id)
	p, err := scanProfesor(row)
	if err != nil {
		return profesor.Profesor{}, mapGetError(id, err)
	}
	return p, nil
}

func (r *ProfesorRepository) Save(ctx context.Context, p profesor.Profesor) (profesor.Profesor, error) {
	var err error
	if p.ID == 0 {
		err = r.insert(ctx, &p)
	} else {
		err = r.upsert(ctx, p)
	}
	if err != nil {
		return profesor.Profesor{}, mapSaveError(err)
	}
	return p, nil
}

func mapGetError(id int64, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return profesor.ErrNotFound
	}
	return fmt.Errorf("get profesor %d: %w", id, err)
}

func mapSaveError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return profesor.ErrDuplicateEmail
	}
	return fmt.Errorf("save profesor: %w", err)
}

func (r *ProfesorRepository) insert(ctx context.Context, p *profesor.Profesor) error {
	return r.pool.QueryRow(ctx, `
INSERT INTO profesor (dv_profesor, pnombre_profesor, snombre_profesor, appaterno_profesor,
	apmaterno_profesor, correo_profesor, contrasena_hash, fecha_nacimiento_profesor)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)
RETURNING id_profesor
`, p.CheckDigit, p.FirstName, p.SecondName, p.PaternalSurname,
		p.MaternalSurname, p.Email, p.PasswordHash, p.BirthDate).Scan(&p.ID)
}

// upsert writes a record with a caller-chosen identity and moves the identity
// sequence past it so later inserts cannot collide.
func (r *ProfesorRepository) upsert(ctx context.Context, p profesor.Profesor) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
INSERT INTO profesor (id_profesor, dv_profesor, pnombre_profesor, snombre_profesor, appaterno_profesor,
	apmaterno_profesor, correo_profesor, contrasena_hash, fecha_nacimiento_profesor)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)
ON CONFLICT (id_profesor) DO UPDATE SET
	dv_profesor = EXCLUDED.dv_profesor,
	pnombre_profesor = EXCLUDED.pnombre_profesor,
	snombre_profesor = EXCLUDED.snombre_profesor,
	appaterno_profesor = EXCLUDED.appaterno_profesor,
	apmaterno_profesor = EXCLUDED.apmaterno_profesor,
	correo_profesor = EXCLUDED.correo_profesor,
	contrasena_hash = EXCLUDED.contrasena_hash,
	fecha_nacimiento_profesor = EXCLUDED.fecha_nacimiento_profesor
`, p.ID, p.CheckDigit, p.FirstName, p.SecondName, p.PaternalSurname,
		p.MaternalSurname, p.Email, p.PasswordHash, p.BirthDate)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
SELECT setval(pg_get_serial_sequence('profesor', 'id_profesor'),
	GREATEST((SELECT MAX(id_profesor) FROM profesor), 1))
`)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func scanProfesor(row pgx.Row) (profesor.Profesor, error) {
	var p profesor.Profesor
	err := row.Scan(&p.ID, &p.CheckDigit, &p.FirstName, &p.SecondName,
		&p.PaternalSurname, &p.MaternalSurname, &p.Email, &p.PasswordHash, &p.BirthDate)
	if p.BirthDate != nil {
		d := p.BirthDate.UTC()
		p.BirthDate = &d
	}
	return p, err
}
