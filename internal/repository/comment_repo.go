package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"soulverse/internal/domain"
)

// CommentRepository define el contrato de persistencia para comentarios.
type CommentRepository interface {
	Create(ctx context.Context, comment domain.Comment) error
	GetByID(ctx context.Context, id string) (domain.Comment, error)
	ListByProfile(ctx context.Context, profileID string, filter domain.CommentFilter, sort domain.CommentSort) ([]domain.Comment, error)
	RecountLikes(ctx context.Context) (int, error)
}

// PgCommentRepository implementa CommentRepository usando pgxpool.
type PgCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPgCommentRepository(pool *pgxpool.Pool) *PgCommentRepository {
	return &PgCommentRepository{pool: pool}
}

const commentSelect = `
	SELECT c.id, c.profile_id, c.user_id, u.name, c.title, c.content,
	       c.mbti_vote, c.enneagram_vote, c.zodiac_vote, c.likes_count,
	       c.created_at, c.updated_at
	FROM comments c
	JOIN users u ON u.id = c.user_id
`

func (r *PgCommentRepository) Create(ctx context.Context, comment domain.Comment) error {
	const query = `
		INSERT INTO comments (
			id, profile_id, user_id, title, content,
			mbti_vote, enneagram_vote, zodiac_vote, likes_count,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		comment.ProfileID,
		comment.UserID,
		comment.Title,
		comment.Content,
		comment.MBTIVote,
		comment.EnneagramVote,
		comment.ZodiacVote,
		comment.LikesCount,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	return err
}

func (r *PgCommentRepository) GetByID(ctx context.Context, id string) (domain.Comment, error) {
	const query = commentSelect + ` WHERE c.id = $1`
	return scanComment(r.pool.QueryRow(ctx, query, id))
}

// ListByProfile compone existencia, filtro y orden en una sola consulta.
func (r *PgCommentRepository) ListByProfile(ctx context.Context, profileID string, filter domain.CommentFilter, sort domain.CommentSort) ([]domain.Comment, error) {
	query := commentSelect + ` WHERE c.profile_id = $1`

	switch filter {
	case domain.FilterMBTI:
		query += ` AND c.mbti_vote IS NOT NULL AND c.mbti_vote <> ''`
	case domain.FilterEnneagram:
		query += ` AND c.enneagram_vote IS NOT NULL AND c.enneagram_vote <> ''`
	case domain.FilterZodiac:
		query += ` AND c.zodiac_vote IS NOT NULL AND c.zodiac_vote <> ''`
	}

	if sort == domain.SortBest {
		query += ` ORDER BY c.likes_count DESC, c.created_at DESC`
	} else {
		query += ` ORDER BY c.created_at DESC`
	}

	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

// RecountLikes reconcilia todos los contadores denormalizados contra la
// tabla likes; es idempotente y devuelve cuántas filas se corrigieron.
func (r *PgCommentRepository) RecountLikes(ctx context.Context) (int, error) {
	const query = `
		UPDATE comments c
		SET likes_count = l.actual, updated_at = now()
		FROM (
			SELECT c2.id, count(lk.id) AS actual
			FROM comments c2
			LEFT JOIN likes lk ON lk.comment_id = c2.id
			GROUP BY c2.id
		) l
		WHERE c.id = l.id AND c.likes_count <> l.actual
	`
	tag, err := r.pool.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func scanComment(row pgx.Row) (domain.Comment, error) {
	var c domain.Comment
	var mbti, enneagram, zodiac sql.NullString

	err := row.Scan(
		&c.ID,
		&c.ProfileID,
		&c.UserID,
		&c.AuthorName,
		&c.Title,
		&c.Content,
		&mbti,
		&enneagram,
		&zodiac,
		&c.LikesCount,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Comment{}, err
	}
	if err != nil {
		return domain.Comment{}, err
	}

	if mbti.Valid {
		c.MBTIVote = &mbti.String
	}
	if enneagram.Valid {
		c.EnneagramVote = &enneagram.String
	}
	if zodiac.Valid {
		c.ZodiacVote = &zodiac.String
	}
	return c, nil
}
