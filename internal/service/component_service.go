package service

import (
	"errors"
	"strings"

	"github.com/inkwell/internal/component"
	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrComponentNotFound    = errors.New("home component not found")
	ErrComponentNameMissing = errors.New("component name is required")
	ErrComponentTypeInvalid = errors.New("component type is invalid")
)

// MoveUp and MoveDown are the two directions a component can be nudged.
const (
	MoveUp   = "up"
	MoveDown = "down"
)

// ComponentService manages home page components and the image blobs their
// configs reference.
type ComponentService struct {
	db    *gorm.DB
	blobs storage.Store
}

// NewComponentService creates a ComponentService instance.
func NewComponentService(gdb *gorm.DB, blobs storage.Store) *ComponentService {
	return &ComponentService{db: gdb, blobs: blobs}
}

// ComponentCreateInput holds the fields accepted on create. A nil Order
// defaults to one past the current maximum; an empty Config gets the
// type's default shape.
type ComponentCreateInput struct {
	Name   string
	Type   string
	Active bool
	Order  *int
	Config string
}

// ComponentUpdateInput is a partial patch: only non-nil fields change.
type ComponentUpdateInput struct {
	Name   *string
	Type   *string
	Active *bool
	Order  *int
	Config *string
}

// List returns components sorted by display order. A nil activeOnly
// returns everything.
func (s *ComponentService) List(activeOnly *bool) ([]db.HomeComponent, error) {
	query := s.db.Model(&db.HomeComponent{})
	if activeOnly != nil {
		query = query.Where("active = ?", *activeOnly)
	}

	var items []db.HomeComponent
	if err := query.Order("sort_order asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches one component by id.
func (s *ComponentService) Get(id uint) (*db.HomeComponent, error) {
	var item db.HomeComponent
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComponentNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new component.
func (s *ComponentService) Create(input ComponentCreateInput) (*db.HomeComponent, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrComponentNameMissing
	}

	typ := component.Type(strings.TrimSpace(input.Type))
	if !component.Known(typ) {
		return nil, ErrComponentTypeInvalid
	}

	order := 0
	if input.Order != nil {
		order = *input.Order
	} else {
		next, err := s.nextOrder()
		if err != nil {
			return nil, err
		}
		order = next
	}

	config := strings.TrimSpace(input.Config)
	if config == "" {
		config = component.DefaultConfigJSON(typ)
	}

	item := db.HomeComponent{
		Name:   name,
		Type:   string(typ),
		Active: input.Active,
		Order:  order,
		Config: config,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies a partial patch. Replacing the config (directly, or
// implicitly by switching type) diffs the referenced blobs and deletes the
// ones only the old config knew about.
func (s *ComponentService) Update(id uint, input ComponentUpdateInput) (*db.HomeComponent, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	oldConfig := item.Config

	patch := map[string]interface{}{}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrComponentNameMissing
		}
		patch["name"] = name
	}

	typeChanged := false
	if input.Type != nil {
		typ := component.Type(strings.TrimSpace(*input.Type))
		if !component.Known(typ) {
			return nil, ErrComponentTypeInvalid
		}
		typeChanged = string(typ) != item.Type
		patch["type"] = string(typ)
	}

	newConfig := item.Config
	switch {
	case input.Config != nil:
		newConfig = *input.Config
		patch["config"] = newConfig
	case typeChanged:
		// Switching type without a fresh config resets to the new type's
		// default so stale fields from the old shape never leak through.
		newConfig = component.DefaultConfigJSON(component.Type(patch["type"].(string)))
		patch["config"] = newConfig
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

	if newConfig != oldConfig {
		s.cleanupReplacedBlobs(oldConfig, newConfig)
	}

	return s.Get(id)
}

// Delete removes a component, first deleting every blob its config still
// references. Blob cleanup is best effort: the record goes away even when
// a blob delete fails.
func (s *ComponentService) Delete(id uint) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}

	for _, blobID := range storage.ExtractStorageIDs(item.Config) {
		_ = s.blobs.Delete(blobID)
	}

	return s.db.Delete(item).Error
}

// Move swaps the display order of a component with its neighbor in the
// given direction. At the edge of the list the call is a no-op. The two
// order writes run in one transaction.
func (s *ComponentService) Move(id uint, direction string) error {
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
		return ErrComponentNotFound
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
		if err := tx.Model(&db.HomeComponent{}).Where("id = ?", current.ID).
			Update("sort_order", other.Order).Error; err != nil {
			return err
		}
		return tx.Model(&db.HomeComponent{}).Where("id = ?", other.ID).
			Update("sort_order", current.Order).Error
	})
}

// UsedStorageIDs collects every blob id referenced by any component config,
// deduplicated. Useful for reconciling against total stored blobs.
func (s *ComponentService) UsedStorageIDs() ([]string, error) {
	items, err := s.List(nil)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var ids []string
	for _, item := range items {
		for _, id := range storage.ExtractStorageIDs(item.Config) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *ComponentService) cleanupReplacedBlobs(oldConfig, newConfig string) {
	oldIDs := storage.ExtractStorageIDs(oldConfig)
	newIDs := storage.ExtractStorageIDs(newConfig)
	for _, id := range storage.DiffStorageIDs(oldIDs, newIDs) {
		_ = s.blobs.Delete(id)
	}
}

func (s *ComponentService) nextOrder() (int, error) {
	var maxOrder int
	if err := s.db.Model(&db.HomeComponent{}).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&maxOrder).Error; err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}
