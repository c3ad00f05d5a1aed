package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"soulverse/internal/domain"
)

// ProfileRepository define el contrato de persistencia para perfiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile domain.Profile) error
	GetByID(ctx context.Context, id string) (domain.Profile, error)
	GetOldest(ctx context.Context) (domain.Profile, error)
	List(ctx context.Context, newestFirst bool) ([]domain.Profile, error)
	Update(ctx context.Context, profile domain.Profile) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// PgProfileRepository implementa ProfileRepository usando pgxpool.
type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

const profileColumns = `
	id, name, description, mbti, enneagram, variant, tritype,
	socionics, sloan, psyche, temperaments, profile_tags, image,
	created_at, updated_at
`

func (r *PgProfileRepository) Create(ctx context.Context, profile domain.Profile) error {
	const query = `
		INSERT INTO profiles (
			id, name, description, mbti, enneagram, variant, tritype,
			socionics, sloan, psyche, temperaments, profile_tags, image,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.Name,
		profile.Description,
		profile.MBTI,
		profile.Enneagram,
		profile.Variant,
		tritypeArg(profile.Tritype),
		profile.Socionics,
		profile.Sloan,
		profile.Psyche,
		profile.Temperaments,
		profile.ProfileTags,
		profile.Image,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	return err
}

func (r *PgProfileRepository) GetByID(ctx context.Context, id string) (domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *PgProfileRepository) GetOldest(ctx context.Context) (domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at ASC LIMIT 1`
	return r.scanOne(r.pool.QueryRow(ctx, query))
}

func (r *PgProfileRepository) List(ctx context.Context, newestFirst bool) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at ASC`
	if newestFirst {
		query = `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		p, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

// Update reemplaza el documento completo; los campos no enviados en la
// petición ya llegan aquí con sus valores por defecto.
func (r *PgProfileRepository) Update(ctx context.Context, profile domain.Profile) error {
	const query = `
		UPDATE profiles SET
			name = $2, description = $3, mbti = $4, enneagram = $5,
			variant = $6, tritype = $7, socionics = $8, sloan = $9,
			psyche = $10, temperaments = $11, profile_tags = $12,
			image = $13, updated_at = $14
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.Name,
		profile.Description,
		profile.MBTI,
		profile.Enneagram,
		profile.Variant,
		tritypeArg(profile.Tritype),
		profile.Socionics,
		profile.Sloan,
		profile.Psyche,
		profile.Temperaments,
		profile.ProfileTags,
		profile.Image,
		profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgProfileRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgProfileRepository) Exists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM profiles WHERE id = $1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}

func (r *PgProfileRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM profiles`).Scan(&count)
	return count, err
}

func (r *PgProfileRepository) scanOne(row pgx.Row) (domain.Profile, error) {
	var p domain.Profile
	var tritype sql.NullInt64

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.MBTI,
		&p.Enneagram,
		&p.Variant,
		&tritype,
		&p.Socionics,
		&p.Sloan,
		&p.Psyche,
		&p.Temperaments,
		&p.ProfileTags,
		&p.Image,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, err
	}
	if err != nil {
		return domain.Profile{}, err
	}
	if tritype.Valid {
		val := int(tritype.Int64)
		p.Tritype = &val
	}
	return p, nil
}

func tritypeArg(tritype *int) interface{} {
	if tritype == nil {
		return nil
	}
	return *tritype
}
