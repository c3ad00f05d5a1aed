package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"soulverse/internal/domain"
	"soulverse/internal/repository"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

const (
	categoryListKey = "categories:list"
	categoryListTTL = time.Hour
)

// CategoryService coordina la taxonomía de etiquetas. El cache redis es
// opcional: con cache nil todas las lecturas van directas a la base.
type CategoryService struct {
	logger     *zap.Logger
	categories repository.CategoryRepository
	cache      *redis.Client
}

func NewCategoryService(logger *zap.Logger, categories repository.CategoryRepository, cache *redis.Client) *CategoryService {
	return &CategoryService{logger: logger, categories: categories, cache: cache}
}

// CategoryInput trae los campos de alta y edición de una categoría.
type CategoryInput struct {
	Name  string
	URL   string
	Order int
}

func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (domain.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Category{}, ErrNameRequired
	}

	url := input.URL
	if url == "" {
		url = "#"
	}

	now := time.Now().UTC()
	category := domain.Category{
		ID:        uuid.NewString(),
		Name:      name,
		URL:       url,
		Order:     input.Order,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return domain.Category{}, ErrCategoryExists
		}
		return domain.Category{}, err
	}

	s.invalidateCache(ctx)
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (domain.Category, error) {
	if err := validateID(id); err != nil {
		return domain.Category{}, err
	}

	category, err := s.categories.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Category{}, ErrCategoryNotFound
	}
	return category, err
}

// List devuelve las categorías por orden ascendente, sirviendo desde el
// cache cuando está disponible.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	if cached, ok := s.cachedList(ctx); ok {
		return cached, nil
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	s.storeList(ctx, categories)
	return categories, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, input CategoryInput) (domain.Category, error) {
	if err := validateID(id); err != nil {
		return domain.Category{}, err
	}

	current, err := s.categories.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		return domain.Category{}, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Category{}, ErrNameRequired
	}
	url := input.URL
	if url == "" {
		url = "#"
	}

	category := domain.Category{
		ID:        current.ID,
		Name:      name,
		URL:       url,
		Order:     input.Order,
		CreatedAt: current.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.categories.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateCategory):
			return domain.Category{}, ErrCategoryExists
		case errors.Is(err, pgx.ErrNoRows):
			return domain.Category{}, ErrCategoryNotFound
		}
		return domain.Category{}, err
	}

	s.invalidateCache(ctx)
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	err := s.categories.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrCategoryNotFound
	}
	if err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

// Seed inserta las categorías por defecto si la tabla está vacía y
// devuelve cuántas existen tras la operación.
func (s *CategoryService) Seed(ctx context.Context) (count int, seeded bool, err error) {
	count, err = s.categories.Count(ctx)
	if err != nil {
		return 0, false, err
	}
	if count > 0 {
		return count, false, nil
	}

	for _, input := range defaultCategories {
		if _, err := s.Create(ctx, input); err != nil {
			return 0, false, err
		}
	}
	s.logger.Info("seeded database with categories", zap.Int("count", len(defaultCategories)))
	return len(defaultCategories), true, nil
}

func (s *CategoryService) cachedList(ctx context.Context) ([]domain.Category, bool) {
	if s.cache == nil {
		return nil, false
	}

	payload, err := s.cache.Get(ctx, categoryListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Debug("category cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var categories []domain.Category
	if err := json.Unmarshal(payload, &categories); err != nil {
		return nil, false
	}
	return categories, true
}

func (s *CategoryService) storeList(ctx context.Context, categories []domain.Category) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, categoryListKey, payload, categoryListTTL).Err(); err != nil {
		s.logger.Warn("category cache set failed", zap.Error(err))
	}
}

func (s *CategoryService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, categoryListKey).Err(); err != nil {
		s.logger.Warn("category cache invalidation failed", zap.Error(err))
	}
}

// Taxonomía por defecto para instalaciones vacías.
var defaultCategories = []CategoryInput{
	{Name: "Anime", Order: 1},
	{Name: "Music", Order: 2},
	{Name: "Politics", Order: 3},
	{Name: "Historians", Order: 4},
	{Name: "Gaming", Order: 5},
	{Name: "Art", Order: 6},
	{Name: "Comics", Order: 7},
	{Name: "Science", Order: 8},
	{Name: "Philosophy", Order: 9},
	{Name: "Movies", Order: 10},
	{Name: "Television", Order: 11},
	{Name: "Literature", Order: 12},
	{Name: "Business", Order: 13},
	{Name: "Religion", Order: 14},
	{Name: "Pop Culture", Order: 15},
	{Name: "Internet", Order: 16},
	{Name: "Technology", Order: 17},
}
