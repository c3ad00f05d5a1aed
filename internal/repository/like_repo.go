package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"soulverse/internal/domain"
)

// ErrDuplicateLike indica que el par (usuario, comentario) ya existe.
var ErrDuplicateLike = errors.New("like already exists")

// LikeRepository define el contrato del libro de likes. Like y Unlike
// actualizan además el contador denormalizado del comentario, en la
// misma transacción que la escritura sobre la tabla likes.
type LikeRepository interface {
	Like(ctx context.Context, userID, commentID string) (int, error)
	Unlike(ctx context.Context, userID, commentID string) (int, error)
	FindByUserAndComment(ctx context.Context, userID, commentID string) (domain.Like, error)
	ListByUser(ctx context.Context, userID string, commentIDs []string) ([]domain.Like, error)
}

// PgLikeRepository implementa LikeRepository usando pgxpool.
type PgLikeRepository struct {
	pool *pgxpool.Pool
}

func NewPgLikeRepository(pool *pgxpool.Pool) *PgLikeRepository {
	return &PgLikeRepository{pool: pool}
}

// Like inserta el registro y incrementa likes_count atómicamente. El
// duplicado lo detecta el índice único en el INSERT, nunca una lectura
// previa: dos peticiones concurrentes no pueden colarse ambas.
func (r *PgLikeRepository) Like(ctx context.Context, userID, commentID string) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	const insert = `
		INSERT INTO likes (id, user_id, comment_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err = tx.Exec(ctx, insert, uuid.NewString(), userID, commentID, time.Now().UTC())
	if isUniqueViolation(err) {
		return 0, ErrDuplicateLike
	}
	if err != nil {
		return 0, err
	}

	const bump = `
		UPDATE comments
		SET likes_count = likes_count + 1, updated_at = now()
		WHERE id = $1
		RETURNING likes_count
	`
	var likes int
	if err := tx.QueryRow(ctx, bump, commentID).Scan(&likes); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return likes, nil
}

// Unlike elimina el registro y decrementa likes_count con piso en cero,
// en una sola transacción.
func (r *PgLikeRepository) Unlike(ctx context.Context, userID, commentID string) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND comment_id = $2`,
		userID, commentID,
	)
	if err != nil {
		return 0, err
	}
	if tag.RowsAffected() == 0 {
		return 0, pgx.ErrNoRows
	}

	const drop = `
		UPDATE comments
		SET likes_count = GREATEST(likes_count - 1, 0), updated_at = now()
		WHERE id = $1
		RETURNING likes_count
	`
	var likes int
	if err := tx.QueryRow(ctx, drop, commentID).Scan(&likes); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return likes, nil
}

func (r *PgLikeRepository) FindByUserAndComment(ctx context.Context, userID, commentID string) (domain.Like, error) {
	const query = `
		SELECT id, user_id, comment_id, created_at
		FROM likes
		WHERE user_id = $1 AND comment_id = $2
	`
	var l domain.Like
	err := r.pool.QueryRow(ctx, query, userID, commentID).Scan(
		&l.ID,
		&l.UserID,
		&l.CommentID,
		&l.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Like{}, err
	}
	return l, err
}

// ListByUser devuelve los likes del usuario sobre el conjunto de
// comentarios dado, en una sola consulta.
func (r *PgLikeRepository) ListByUser(ctx context.Context, userID string, commentIDs []string) ([]domain.Like, error) {
	if len(commentIDs) == 0 {
		return nil, nil
	}

	const query = `
		SELECT id, user_id, comment_id, created_at
		FROM likes
		WHERE user_id = $1 AND comment_id = ANY($2::uuid[])
	`
	rows, err := r.pool.Query(ctx, query, userID, commentIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []domain.Like
	for rows.Next() {
		var l domain.Like
		if err := rows.Scan(&l.ID, &l.UserID, &l.CommentID, &l.CreatedAt); err != nil {
			return nil, err
		}
		likes = append(likes, l)
	}

	return likes, rows.Err()
}
