package service

import (
	"errors"
	"strings"

	"github.com/inkwell/internal/db"
	"gorm.io/gorm"
)

var (
	ErrMenuNotFound    = errors.New("menu not found")
	ErrMenuNameMissing = errors.New("menu name is required")
	ErrMenuURLMissing  = errors.New("menu url is required")
)

// MenuService manages the public navigation entries.
type MenuService struct {
	db *gorm.DB
}

// NewMenuService creates a MenuService instance.
func NewMenuService(gdb *gorm.DB) *MenuService {
	return &MenuService{db: gdb}
}

// MenuCreateInput holds the fields accepted on create.
type MenuCreateInput struct {
	Name   string
	URL    string
	Active bool
	Order  *int
}

// MenuUpdateInput is a partial patch: only non-nil fields change.
type MenuUpdateInput struct {
	Name   *string
	URL    *string
	Active *bool
	Order  *int
}

// List returns menus sorted by display order. A nil activeOnly returns
// everything.
func (s *MenuService) List(activeOnly *bool) ([]db.Menu, error) {
	query := s.db.Model(&db.Menu{})
	if activeOnly != nil {
		query = query.Where("active = ?", *activeOnly)
	}

	var items []db.Menu
	if err := query.Order("sort_order asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches one menu by id.
func (s *MenuService) Get(id uint) (*db.Menu, error) {
	var item db.Menu
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new menu. A nil Order defaults to one past the current
// maximum.
func (s *MenuService) Create(input MenuCreateInput) (*db.Menu, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrMenuNameMissing
	}
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return nil, ErrMenuURLMissing
	}

	order := 0
	if input.Order != nil {
		order = *input.Order
	} else {
		var maxOrder int
		if err := s.db.Model(&db.Menu{}).
			Select("COALESCE(MAX(sort_order), 0)").
			Scan(&maxOrder).Error; err != nil {
			return nil, err
		}
		order = maxOrder + 1
	}

	item := db.Menu{Name: name, URL: url, Active: input.Active, Order: order}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies a partial patch.
func (s *MenuService) Update(id uint, input MenuUpdateInput) (*db.Menu, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	patch := map[string]interface{}{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrMenuNameMissing
		}
		patch["name"] = name
	}
	if input.URL != nil {
		url := strings.TrimSpace(*input.URL)
		if url == "" {
			return nil, ErrMenuURLMissing
		}
		patch["url"] = url
	}
	if input.Active != nil {
		patch["active"] = *input.Active
	}
	if input.Order != nil {
		patch["sort_order"] = *input.Order
	}

	if len(patch) == 0 {
		return item, nil
	}
	if err := s.db.Model(item).Updates(patch).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a menu.
func (s *MenuService) Delete(id uint) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(item).Error
}

// Move swaps the display order of a menu with its neighbor, exactly like
// home components: a pairwise swap inside one transaction, no-op at the
// list edge.
func (s *MenuService) Move(id uint, direction string) error {
	items, err := s.List(nil)
	if err != nil {
		return err
	}

	index := -1
	for i := range items {
		if items[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrMenuNotFound
	}

	var neighbor int
	switch direction {
	case MoveUp:
		neighbor = index - 1
	case MoveDown:
		neighbor = index + 1
	default:
		return nil
	}
	if neighbor < 0 || neighbor >= len(items) {
		return nil
	}

	current, other := items[index], items[neighbor]
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db.Menu{}).Where("id = ?", current.ID).
			Update("sort_order", other.Order).Error; err != nil {
			return err
		}
		return tx.Model(&db.Menu{}).Where("id = ?", other.ID).
			Update("sort_order", current.Order).Error
	})
}
