package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"soulverse/internal/repository"
)

var (
	ErrAlreadyLiked = errors.New("already liked this comment")
	ErrLikeNotFound = errors.New("like not found")
)

// LikeService coordina likes y la consistencia del contador
// denormalizado frente al libro de likes.
type LikeService struct {
	logger   *zap.Logger
	likes    repository.LikeRepository
	comments repository.CommentRepository
	users    repository.UserRepository
}

func NewLikeService(
	logger *zap.Logger,
	likes repository.LikeRepository,
	comments repository.CommentRepository,
	users repository.UserRepository,
) *LikeService {
	return &LikeService{
		logger:   logger,
		likes:    likes,
		comments: comments,
		users:    users,
	}
}

// Like registra el like y devuelve el contador resultante. El duplicado
// lo resuelve el índice único de la tabla, no una lectura previa.
func (s *LikeService) Like(ctx context.Context, commentID, userID string) (int, error) {
	if err := validateID(commentID); err != nil {
		return 0, err
	}
	if err := validateID(userID); err != nil {
		return 0, err
	}

	if _, err := s.comments.GetByID(ctx, commentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrCommentNotFound
		}
		return 0, err
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrUserNotFound
	}

	likes, err := s.likes.Like(ctx, userID, commentID)
	if errors.Is(err, repository.ErrDuplicateLike) {
		return 0, ErrAlreadyLiked
	}
	return likes, err
}

// Unlike elimina el like y devuelve el contador resultante.
func (s *LikeService) Unlike(ctx context.Context, commentID, userID string) (int, error) {
	if err := validateID(commentID); err != nil {
		return 0, err
	}
	if err := validateID(userID); err != nil {
		return 0, err
	}

	likes, err := s.likes.Unlike(ctx, userID, commentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrLikeNotFound
	}
	return likes, err
}

// ReconcileCounters recalcula likes_count desde la tabla likes. La
// operación es idempotente: ejecutarla de más no cambia nada.
func (s *LikeService) ReconcileCounters(ctx context.Context) (int, error) {
	return s.comments.RecountLikes(ctx)
}

// RunReconciler ejecuta la reconciliación periódicamente hasta que el
// contexto se cancele.
func (s *LikeService) RunReconciler(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fixed, err := s.ReconcileCounters(ctx)
			if err != nil {
				s.logger.Error("like counter reconciliation failed", zap.Error(err))
				continue
			}
			if fixed > 0 {
				s.logger.Warn("like counters drifted from ledger", zap.Int("fixed", fixed))
			}
		}
	}
}
