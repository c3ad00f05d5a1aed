package web

import (
	"bytes"
	"strings"
	"testing"

	"soulverse/internal/domain"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("expected templates to parse, got %v", err)
	}
	for _, name := range []string{"profile.html", "error.html"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("expected template %q to be defined", name)
		}
	}
}

func TestProfileTemplateRenders(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	data := map[string]any{
		"Profile": domain.Profile{
			ID:          "id-1",
			Name:        "Alan Turing",
			Description: "Mathematician",
			MBTI:        "INTP",
			ProfileTags: []string{"science"},
			Image:       domain.DefaultProfileImage,
		},
		"Categories": []domain.Category{{ID: "c-1", Name: "Science", URL: "#"}},
		"Profiles":   []domain.Profile{{ID: "id-1", Name: "Alan Turing"}},
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "profile.html", data); err != nil {
		t.Fatalf("expected render to succeed, got %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Alan Turing", "INTP", "Science"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected rendered page to contain %q", want)
		}
	}
}

func TestErrorTemplateRenders(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "error.html", map[string]any{
		"Message": "Profile not found",
		"Status":  404,
	})
	if err != nil {
		t.Fatalf("expected render to succeed, got %v", err)
	}
	if !strings.Contains(buf.String(), "Profile not found") {
		t.Error("expected rendered page to contain the message")
	}
}
