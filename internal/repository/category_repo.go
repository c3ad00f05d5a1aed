package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"soulverse/internal/domain"
)

// ErrDuplicateCategory indica un nombre de categoría ya registrado.
var ErrDuplicateCategory = errors.New("category name already exists")

// CategoryRepository define el contrato de persistencia para categorías.
type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) error
	GetByID(ctx context.Context, id string) (domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category domain.Category) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// PgCategoryRepository implementa CategoryRepository usando pgxpool.
type PgCategoryRepository struct {
	pool *pgxpool.Pool
}

func NewPgCategoryRepository(pool *pgxpool.Pool) *PgCategoryRepository {
	return &PgCategoryRepository{pool: pool}
}

func (r *PgCategoryRepository) Create(ctx context.Context, category domain.Category) error {
	const query = `
		INSERT INTO categories (id, name, url, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		category.ID,
		category.Name,
		category.URL,
		category.Order,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateCategory
	}
	return err
}

func (r *PgCategoryRepository) GetByID(ctx context.Context, id string) (domain.Category, error) {
	const query = `
		SELECT id, name, url, sort_order, created_at, updated_at
		FROM categories
		WHERE id = $1
	`
	var c domain.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.URL,
		&c.Order,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Category{}, err
	}
	return c, err
}

func (r *PgCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	const query = `
		SELECT id, name, url, sort_order, created_at, updated_at
		FROM categories
		ORDER BY sort_order ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.URL, &c.Order, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *PgCategoryRepository) Update(ctx context.Context, category domain.Category) error {
	const query = `
		UPDATE categories
		SET name = $2, url = $3, sort_order = $4, updated_at = $5
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		category.ID,
		category.Name,
		category.URL,
		category.Order,
		category.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateCategory
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgCategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgCategoryRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM categories`).Scan(&count)
	return count, err
}

// isUniqueViolation detecta el código 23505 de Postgres.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
