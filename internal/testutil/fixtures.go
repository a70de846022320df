package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/navmenu-io/navmenu/internal/domain"
)

var testPathCounter atomic.Int64

// ItemOption customizes a test menu item.
type ItemOption func(*domain.MenuItem)

func WithDomain(d domain.MenuDomain) ItemOption {
	return func(m *domain.MenuItem) {
		m.Domain = d
	}
}

func WithSection(s domain.Section) ItemOption {
	return func(m *domain.MenuItem) {
		m.Section = s
	}
}

func WithState(s domain.DisplayState) ItemOption {
	return func(m *domain.MenuItem) {
		m.State = s
	}
}

func WithParent(id string) ItemOption {
	return func(m *domain.MenuItem) {
		m.ParentID = &id
	}
}

func WithSortID(n int) ItemOption {
	return func(m *domain.MenuItem) {
		m.SortID = n
	}
}

func WithPath(p string) ItemOption {
	return func(m *domain.MenuItem) {
		m.Path = p
	}
}

func WithArchived() ItemOption {
	return func(m *domain.MenuItem) {
		m.Archived = true
	}
}

func WithIcon(icon string) ItemOption {
	return func(m *domain.MenuItem) {
		m.Icon = &icon
	}
}

// defaultPath derives a unique route path from the label so test items never
// collide on the partition-scoped path uniqueness constraint.
func defaultPath(label string) string {
	slug := strings.ToLower(strings.ReplaceAll(label, " ", "-"))
	return fmt.Sprintf("/%s-%d", slug, testPathCounter.Add(1))
}

// NewTestItem builds a live storefront header item with sensible defaults.
func NewTestItem(label string, opts ...ItemOption) *domain.MenuItem {
	now := time.Now().UTC()
	m := &domain.MenuItem{
		ID:        uuid.New().String(),
		Domain:    domain.DomainStorefront,
		Section:   domain.SectionHeader,
		State:     domain.StateLive,
		SortID:    1,
		Label:     label,
		Path:      defaultPath(label),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
