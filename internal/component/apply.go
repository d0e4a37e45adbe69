package component

import (
	"encoding/json"
	"errors"
)

var (
	// ErrUnknownType is returned for a type tag missing from the registry.
	ErrUnknownType = errors.New("unknown component type")
	// ErrUnknownOp is returned for an operation a type does not support.
	ErrUnknownOp = errors.New("unknown config operation")
)

// Op is one list operation requested by the admin form.
type Op struct {
	Name      string          `json:"name" binding:"required"`
	Index     int             `json:"index"`
	Value     string          `json:"value"`
	StorageID string          `json:"storageId"`
	PostID    string          `json:"postId"`
	Item      json.RawMessage `json:"item,omitempty"`
}

// ApplyOp decodes the current config, applies one list operation and
// returns the re-encoded result. The input config is never mutated; a
// fresh value comes back even when the operation was a no-op.
func ApplyOp(t Type, rawConfig string, op Op) (string, error) {
	if !Known(t) {
		return "", ErrUnknownType
	}

	switch t {
	case TypeHero:
		cfg := decodeHero(rawConfig)
		switch op.Name {
		case "add_slide":
			return Encode(cfg.AddSlide()), nil
		case "set_slide":
			return Encode(cfg.SetSlide(op.Index, op.StorageID)), nil
		case "remove_slide":
			return Encode(cfg.RemoveSlide(op.Index)), nil
		}
	case TypePortfolio:
		cfg := decodePortfolio(rawConfig)
		switch op.Name {
		case "add_item":
			return Encode(cfg.AddItem()), nil
		case "set_item":
			var item PortfolioItem
			if err := json.Unmarshal(op.Item, &item); err != nil {
				return "", err
			}
			return Encode(cfg.SetItem(op.Index, item)), nil
		case "remove_item":
			return Encode(cfg.RemoveItem(op.Index)), nil
		}
	case TypeServices:
		cfg := decodeServices(rawConfig)
		switch op.Name {
		case "add_service":
			return Encode(cfg.AddService(op.Value)), nil
		case "set_service":
			return Encode(cfg.SetService(op.Index, op.Value)), nil
		case "remove_service":
			return Encode(cfg.RemoveService(op.Index)), nil
		case "add_quality":
			return Encode(cfg.AddQuality(op.Value)), nil
		case "set_quality":
			return Encode(cfg.SetQuality(op.Index, op.Value)), nil
		case "remove_quality":
			return Encode(cfg.RemoveQuality(op.Index)), nil
		}
	case TypeTestimonials:
		cfg := decodeTestimonials(rawConfig)
		switch op.Name {
		case "add_item":
			return Encode(cfg.AddItem()), nil
		case "set_item":
			var item Testimonial
			if err := json.Unmarshal(op.Item, &item); err != nil {
				return "", err
			}
			return Encode(cfg.SetItem(op.Index, item)), nil
		case "remove_item":
			return Encode(cfg.RemoveItem(op.Index)), nil
		}
	case TypePosts:
		cfg := decodePosts(rawConfig)
		switch op.Name {
		case "toggle_post":
			return Encode(cfg.TogglePost(op.PostID)), nil
		}
	}

	return "", ErrUnknownOp
}
