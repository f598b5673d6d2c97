// File: internal/services/resources/service_test.go
package resources_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/chadhq/chad-backend/internal/domain"
	"github.com/chadhq/chad-backend/internal/services/resources"
)

func TestFilterEmptyTermReturnsEverything(t *testing.T) {
	svc := resources.NewService(resources.Seed())

	got, err := svc.Filter("", "")
	if err != nil {
		t.Fatalf("Filter err: %v", err)
	}
	if len(got) != len(resources.Seed()) {
		t.Fatalf("expected the full catalog, got %d of %d", len(got), len(resources.Seed()))
	}
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	svc := resources.NewService(resources.Seed())

	got, err := svc.Filter("ANXIETY", domain.CategoryAll)
	if err != nil {
		t.Fatalf("Filter err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 match for %q, got %d", "ANXIETY", len(got))
	}
	if !strings.Contains(strings.ToLower(got[0].Title), "anxiety") {
		t.Fatalf("unexpected match: %q", got[0].Title)
	}
}

func TestFilterByCategory(t *testing.T) {
	svc := resources.NewService(resources.Seed())

	got, err := svc.Filter("", domain.CategoryVideo)
	if err != nil {
		t.Fatalf("Filter err: %v", err)
	}
	for _, r := range got {
		if r.Category != domain.CategoryVideo {
			t.Fatalf("category filter leaked %q item %q", r.Category, r.Title)
		}
	}
	if len(got) == 0 {
		t.Fatal("expected at least one video resource in the catalog")
	}
}

func TestFilterUnknownCategory(t *testing.T) {
	svc := resources.NewService(resources.Seed())

	if _, err := svc.Filter("", "podcast"); !errors.Is(err, resources.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestGetAndRenderBody(t *testing.T) {
	seed := resources.Seed()
	svc := resources.NewService(seed)

	r, err := svc.Get(seed[0].ID)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if r.Title != seed[0].Title {
		t.Fatalf("title: got %q want %q", r.Title, seed[0].Title)
	}

	html, err := svc.RenderBody(seed[0].ID)
	if err != nil {
		t.Fatalf("RenderBody err: %v", err)
	}
	if !strings.Contains(html, "<") {
		t.Fatalf("expected rendered HTML, got %q", html)
	}
}

func TestGetUnknownResource(t *testing.T) {
	svc := resources.NewService(resources.Seed())

	if _, err := svc.Get("missing"); !errors.Is(err, resources.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
	if _, err := svc.RenderBody("missing"); !errors.Is(err, resources.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}
