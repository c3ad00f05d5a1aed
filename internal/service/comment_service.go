package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"soulverse/internal/domain"
	"soulverse/internal/repository"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrMissingFields   = errors.New("userId, title, and content are required")
	ErrInvalidVote     = errors.New("invalid personality vote")
)

// CommentService coordina la creación y lectura de comentarios,
// cruzando el libro de likes para anotar resultados.
type CommentService struct {
	logger   *zap.Logger
	comments repository.CommentRepository
	likes    repository.LikeRepository
	profiles repository.ProfileRepository
	users    repository.UserRepository
}

func NewCommentService(
	logger *zap.Logger,
	comments repository.CommentRepository,
	likes repository.LikeRepository,
	profiles repository.ProfileRepository,
	users repository.UserRepository,
) *CommentService {
	return &CommentService{
		logger:   logger,
		comments: comments,
		likes:    likes,
		profiles: profiles,
		users:    users,
	}
}

// CreateCommentInput trae los campos de alta de un comentario. Los votos
// vacíos se guardan como ausentes.
type CreateCommentInput struct {
	ProfileID     string
	UserID        string
	Title         string
	Content       string
	MBTIVote      string
	EnneagramVote string
	ZodiacVote    string
}

func (s *CommentService) Create(ctx context.Context, input CreateCommentInput) (domain.Comment, error) {
	if err := validateID(input.ProfileID); err != nil {
		return domain.Comment{}, err
	}
	if err := validateID(input.UserID); err != nil {
		return domain.Comment{}, err
	}

	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return domain.Comment{}, ErrMissingFields
	}

	mbti, err := normalizeVote(input.MBTIVote, "mbti", domain.IsValidMBTIVote)
	if err != nil {
		return domain.Comment{}, err
	}
	enneagram, err := normalizeVote(input.EnneagramVote, "enneagram", domain.IsValidEnneagramVote)
	if err != nil {
		return domain.Comment{}, err
	}
	zodiac, err := normalizeVote(input.ZodiacVote, "zodiac", domain.IsValidZodiacVote)
	if err != nil {
		return domain.Comment{}, err
	}

	// Toda la validación ocurre antes de cualquier escritura.
	exists, err := s.profiles.Exists(ctx, input.ProfileID)
	if err != nil {
		return domain.Comment{}, err
	}
	if !exists {
		return domain.Comment{}, ErrProfileNotFound
	}

	author, err := s.users.GetByID(ctx, input.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Comment{}, ErrUserNotFound
	}
	if err != nil {
		return domain.Comment{}, err
	}

	now := time.Now().UTC()
	comment := domain.Comment{
		ID:            uuid.NewString(),
		ProfileID:     input.ProfileID,
		UserID:        input.UserID,
		AuthorName:    author.Name,
		Title:         sanitizeUGC(title),
		Content:       sanitizeUGC(content),
		MBTIVote:      mbti,
		EnneagramVote: enneagram,
		ZodiacVote:    zodiac,
		LikesCount:    0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

func (s *CommentService) Get(ctx context.Context, id string) (domain.Comment, error) {
	if err := validateID(id); err != nil {
		return domain.Comment{}, err
	}

	comment, err := s.comments.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Comment{}, ErrCommentNotFound
	}
	return comment, err
}

// ListByProfile resuelve existencia, filtra, ordena y, si viene un
// usuario solicitante, anota is_liked consultando el libro de likes en
// lote. Un fallo en la anotación degrada la respuesta en vez de
// tumbarla; es el único punto donde se traga un error, y queda logueado.
func (s *CommentService) ListByProfile(ctx context.Context, profileID, sortRaw, filterRaw, requestingUserID string) ([]domain.Comment, error) {
	if err := validateID(profileID); err != nil {
		return nil, err
	}

	exists, err := s.profiles.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProfileNotFound
	}

	comments, err := s.comments.ListByProfile(ctx, profileID,
		domain.ParseCommentFilter(filterRaw),
		domain.ParseCommentSort(sortRaw),
	)
	if err != nil {
		return nil, err
	}

	if requestingUserID != "" {
		s.annotateLikes(ctx, comments, requestingUserID)
	}
	return comments, nil
}

func (s *CommentService) annotateLikes(ctx context.Context, comments []domain.Comment, userID string) {
	if len(comments) == 0 {
		return
	}
	if err := validateID(userID); err != nil {
		s.logger.Warn("like annotation skipped, malformed user id",
			zap.String("user_id", userID))
		return
	}

	ids := make([]string, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}

	likes, err := s.likes.ListByUser(ctx, userID, ids)
	if err != nil {
		s.logger.Warn("like annotation failed, returning comments without flags",
			zap.String("user_id", userID), zap.Error(err))
		return
	}

	liked := make(map[string]struct{}, len(likes))
	for _, l := range likes {
		liked[l.CommentID] = struct{}{}
	}
	for i := range comments {
		_, ok := liked[comments[i].ID]
		comments[i].IsLiked = &ok
	}
}

func normalizeVote(value, kind string, valid func(string) bool) (*string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if !valid(value) {
		return nil, fmt.Errorf("%w: %q is not a valid %s vote", ErrInvalidVote, value, kind)
	}
	return &value, nil
}
