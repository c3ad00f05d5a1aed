package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestUserCreate(t *testing.T) {
	svc := NewUserService(zap.NewNop(), newMockUserRepo())

	user, err := svc.Create(context.Background(), "  ada  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Name != "ada" {
		t.Errorf("expected trimmed name %q, got %q", "ada", user.Name)
	}
	if err := uuid.Validate(user.ID); err != nil {
		t.Errorf("expected valid uuid, got %q", user.ID)
	}

	if _, err := svc.Create(context.Background(), "   "); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
}

func TestUserGet(t *testing.T) {
	svc := NewUserService(zap.NewNop(), newMockUserRepo())

	created, err := svc.Create(context.Background(), "grace")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	user, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Name != "grace" {
		t.Errorf("expected name %q, got %q", "grace", user.Name)
	}

	if _, err := svc.Get(context.Background(), uuid.NewString()); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestUserList(t *testing.T) {
	svc := NewUserService(zap.NewNop(), newMockUserRepo())

	for _, name := range []string{"ada", "grace", "margaret"} {
		if _, err := svc.Create(context.Background(), name); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	if users[0].Name != "margaret" {
		t.Errorf("expected newest first, got %q", users[0].Name)
	}
}
