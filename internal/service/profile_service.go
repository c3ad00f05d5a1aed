package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"soulverse/internal/domain"
	"soulverse/internal/repository"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileService coordina reglas de negocio para perfiles.
type ProfileService struct {
	logger   *zap.Logger
	profiles repository.ProfileRepository
}

func NewProfileService(logger *zap.Logger, profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{logger: logger, profiles: profiles}
}

// ProfileInput es el documento completo que llega en altas y reemplazos.
type ProfileInput struct {
	Name         string
	Description  string
	MBTI         string
	Enneagram    string
	Variant      string
	Tritype      *int
	Socionics    string
	Sloan        string
	Psyche       string
	Temperaments string
	ProfileTags  []string
	Image        string
}

func (s *ProfileService) Create(ctx context.Context, input ProfileInput) (domain.Profile, error) {
	profile, err := buildProfile(input)
	if err != nil {
		return domain.Profile{}, err
	}

	now := time.Now().UTC()
	profile.ID = uuid.NewString()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := s.profiles.Create(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

// Update reemplaza el documento completo del perfil.
func (s *ProfileService) Update(ctx context.Context, id string, input ProfileInput) (domain.Profile, error) {
	if err := validateID(id); err != nil {
		return domain.Profile{}, err
	}

	current, err := s.profiles.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return domain.Profile{}, err
	}

	profile, err := buildProfile(input)
	if err != nil {
		return domain.Profile{}, err
	}
	profile.ID = current.ID
	profile.CreatedAt = current.CreatedAt
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Update(ctx, profile); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *ProfileService) Get(ctx context.Context, id string) (domain.Profile, error) {
	if err := validateID(id); err != nil {
		return domain.Profile{}, err
	}

	profile, err := s.profiles.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, ErrProfileNotFound
	}
	return profile, err
}

// List devuelve los perfiles del más nuevo al más viejo (API).
func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.List(ctx, true)
}

// Index devuelve los perfiles en orden de creación (navegación de páginas).
func (s *ProfileService) Index(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.List(ctx, false)
}

// Oldest devuelve el primer perfil creado; es el que rinde la portada.
func (s *ProfileService) Oldest(ctx context.Context) (domain.Profile, error) {
	profile, err := s.profiles.GetOldest(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, ErrProfileNotFound
	}
	return profile, err
}

func (s *ProfileService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	err := s.profiles.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrProfileNotFound
	}
	return err
}

// Seed inserta los perfiles iniciales si la tabla está vacía.
func (s *ProfileService) Seed(ctx context.Context) (int, error) {
	count, err := s.profiles.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, input := range seedProfiles {
		if _, err := s.Create(ctx, input); err != nil {
			return 0, err
		}
	}
	s.logger.Info("seeded database with initial profiles", zap.Int("count", len(seedProfiles)))
	return len(seedProfiles), nil
}

func buildProfile(input ProfileInput) (domain.Profile, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Profile{}, ErrNameRequired
	}

	image := input.Image
	if image == "" {
		image = domain.DefaultProfileImage
	}
	tags := input.ProfileTags
	if tags == nil {
		tags = []string{}
	}

	return domain.Profile{
		Name:         name,
		Description:  sanitizeUGC(input.Description),
		MBTI:         input.MBTI,
		Enneagram:    input.Enneagram,
		Variant:      input.Variant,
		Tritype:      input.Tritype,
		Socionics:    input.Socionics,
		Sloan:        input.Sloan,
		Psyche:       input.Psyche,
		Temperaments: input.Temperaments,
		ProfileTags:  tags,
		Image:        image,
	}, nil
}
