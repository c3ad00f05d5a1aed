package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"soulverse/internal/domain"
)

func newProfileService() (*ProfileService, *mockProfileRepo) {
	repo := newMockProfileRepo()
	return NewProfileService(zap.NewNop(), repo), repo
}

func TestProfileCreate(t *testing.T) {
	svc, _ := newProfileService()

	profile, err := svc.Create(context.Background(), ProfileInput{
		Name:        "Alan Turing",
		Description: "Father of <b>computing</b><script>x()</script>",
		MBTI:        "INTP",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if profile.Image != domain.DefaultProfileImage {
		t.Errorf("expected default image, got %q", profile.Image)
	}
	if profile.ProfileTags == nil {
		t.Error("expected empty tag slice, got nil")
	}
	if strings.Contains(profile.Description, "<script>") {
		t.Errorf("expected script stripped, got %q", profile.Description)
	}
	if !strings.Contains(profile.Description, "<b>computing</b>") {
		t.Errorf("expected harmless markup kept, got %q", profile.Description)
	}

	if _, err := svc.Create(context.Background(), ProfileInput{Name: "  "}); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
}

func TestProfileUpdateReplacesDocument(t *testing.T) {
	svc, _ := newProfileService()

	created, err := svc.Create(context.Background(), ProfileInput{
		Name: "Marie Curie",
		MBTI: "INTJ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ProfileInput{
		Name:      "Marie Curie",
		Enneagram: "5w6",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.MBTI != "" {
		t.Errorf("expected full replacement to clear mbti, got %q", updated.MBTI)
	}
	if updated.Enneagram != "5w6" {
		t.Errorf("expected enneagram %q, got %q", "5w6", updated.Enneagram)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("expected created_at preserved across update")
	}

	if _, err := svc.Update(context.Background(), uuid.NewString(), ProfileInput{Name: "x"}); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "nope", ProfileInput{Name: "x"}); !errors.Is(err, ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestProfileOrdering(t *testing.T) {
	svc, _ := newProfileService()

	for _, name := range []string{"first", "second", "third"} {
		if _, err := svc.Create(context.Background(), ProfileInput{Name: name}); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list[0].Name != "third" {
		t.Errorf("expected newest first in list, got %q", list[0].Name)
	}

	index, err := svc.Index(context.Background())
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	if index[0].Name != "first" {
		t.Errorf("expected creation order in index, got %q", index[0].Name)
	}

	oldest, err := svc.Oldest(context.Background())
	if err != nil {
		t.Fatalf("oldest: %v", err)
	}
	if oldest.Name != "first" {
		t.Errorf("expected oldest profile %q, got %q", "first", oldest.Name)
	}
}

func TestProfileOldestEmpty(t *testing.T) {
	svc, _ := newProfileService()

	if _, err := svc.Oldest(context.Background()); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound on empty table, got %v", err)
	}
}

func TestProfileDelete(t *testing.T) {
	svc, repo := newProfileService()

	created, err := svc.Create(context.Background(), ProfileInput{Name: "temp"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if exists, _ := repo.Exists(context.Background(), created.ID); exists {
		t.Error("expected profile removed")
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound on second delete, got %v", err)
	}
}

func TestProfileSeed(t *testing.T) {
	svc, repo := newProfileService()

	seeded, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if seeded != len(seedProfiles) {
		t.Errorf("expected %d profiles seeded, got %d", len(seedProfiles), seeded)
	}
	count, _ := repo.Count(context.Background())
	if count != len(seedProfiles) {
		t.Errorf("expected %d profiles stored, got %d", len(seedProfiles), count)
	}

	// Con datos presentes el seed no hace nada.
	seeded, err = svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if seeded != 0 {
		t.Errorf("expected no reseeding, got %d", seeded)
	}
}
