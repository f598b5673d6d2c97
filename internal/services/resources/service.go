// File: internal/services/resources/service.go
package resources

import (
	"bytes"
	"errors"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/chadhq/chad-backend/internal/domain"
)

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrUnknownCategory  = errors.New("unknown resource category")
)

// Service is a pure read/filter surface over the seeded catalog. No
// mutation, no persistence.
type Service struct {
	items []domain.Resource
	md    goldmark.Markdown
}

func NewService(items []domain.Resource) *Service {
	return &Service{
		items: append([]domain.Resource(nil), items...),
		md:    goldmark.New(),
	}
}

// Filter returns resources whose title or description contains the search
// term (case-insensitive) and whose category matches, or every category when
// the filter is "all". An empty term matches everything.
func (s *Service) Filter(searchTerm, category string) ([]domain.Resource, error) {
	if category == "" {
		category = domain.CategoryAll
	}
	if !domain.IsValidCategory(category) {
		return nil, ErrUnknownCategory
	}

	term := strings.ToLower(searchTerm)
	out := make([]domain.Resource, 0, len(s.items))
	for _, r := range s.items {
		if category != domain.CategoryAll && r.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(r.Title), term) &&
			!strings.Contains(strings.ToLower(r.Description), term) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Get returns one resource by id.
func (s *Service) Get(id string) (domain.Resource, error) {
	for _, r := range s.items {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Resource{}, ErrResourceNotFound
}

// RenderBody converts a resource's markdown body to HTML for the detail
// view.
func (s *Service) RenderBody(id string) (string, error) {
	r, err := s.Get(id)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(r.Body), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
