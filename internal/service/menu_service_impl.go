package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/navmenu-io/navmenu/internal/db"
	"github.com/navmenu-io/navmenu/internal/domain"
	"github.com/navmenu-io/navmenu/internal/repository"
)

type menuService struct {
	items    repository.MenuItemRepo
	uow      db.UnitOfWork
	observer OperationObserver
}

// NewMenuService wires the menu engine with its storage collaborator and
// transaction boundary. Observers are optional; the first non-nil one wins.
func NewMenuService(items repository.MenuItemRepo, uow db.UnitOfWork, observers ...OperationObserver) MenuService {
	return &menuService{
		items:    items,
		uow:      uow,
		observer: operationObserverOrNoop(observers),
	}
}

func (s *menuService) Create(ctx context.Context, m *domain.MenuItem) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	m.Version = 1

	if m.ParentID != nil {
		if _, err := s.items.GetByID(ctx, *m.ParentID); err != nil {
			return fmt.Errorf("parent %s: %w", *m.ParentID, err)
		}
	}

	if m.SortID <= 0 {
		siblings, err := s.items.ListGroup(ctx, domain.GroupOf(m), m.ID)
		if err != nil {
			return err
		}
		m.SortID = len(siblings) + 1
	}

	return s.items.Create(ctx, m)
}

func (s *menuService) FindOne(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *menuService) FindByGroup(ctx context.Context, d domain.MenuDomain, section *domain.Section, state *domain.DisplayState, includeArchived bool) ([]*domain.MenuItem, error) {
	return s.items.ListByDomain(ctx, d, section, state, includeArchived)
}

func (s *menuService) Update(ctx context.Context, id string, fields UpdateFields) (*domain.MenuItem, error) {
	m, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fields.Label != nil {
		m.Label = *fields.Label
	}
	if fields.Path != nil {
		m.Path = *fields.Path
	}
	if fields.Tooltip != nil {
		m.Tooltip = emptyToNil(*fields.Tooltip)
	}
	if fields.Icon != nil {
		m.Icon = emptyToNil(*fields.Icon)
	}
	m.UpdatedAt = time.Now().UTC()

	if err := s.items.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *menuService) Remove(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

func (s *menuService) Archive(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.setArchived(ctx, id, true)
}

func (s *menuService) Unarchive(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.setArchived(ctx, id, false)
}

func (s *menuService) setArchived(ctx context.Context, id string, archived bool) (*domain.MenuItem, error) {
	m, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Archived == archived {
		return m, nil
	}
	m.Archived = archived
	m.UpdatedAt = time.Now().UTC()
	if err := s.items.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *menuService) BuildHierarchy(ctx context.Context, d domain.MenuDomain, includeArchived bool) (domain.Hierarchy, error) {
	items, err := s.items.ListByDomain(ctx, d, nil, nil, includeArchived)
	if err != nil {
		return nil, err
	}
	h := make(domain.Hierarchy)
	for _, m := range items {
		h.Add(m)
	}
	return h, nil
}

func (s *menuService) Import(ctx context.Context, items []*domain.MenuItem) error {
	start := time.Now()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteMenuItemRepo(tx)
		for _, m := range items {
			if err := txItems.Create(ctx, m); err != nil {
				return err
			}
		}
		return nil
	})
	s.observe(ctx, "import", start, err, map[string]any{"items": len(items)})
	return err
}

// observe reports one engine operation to the configured observer.
func (s *menuService) observe(ctx context.Context, name string, start time.Time, err error, fields map[string]any) {
	s.observer.ObserveOperation(ctx, OperationEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
