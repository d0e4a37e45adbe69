package component

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestApplyOp_HeroSlideLifecycle(t *testing.T) {
	config := DefaultConfigJSON(TypeHero)

	config, err := ApplyOp(TypeHero, config, Op{Name: "add_slide"})
	if err != nil {
		t.Fatalf("add_slide: %v", err)
	}
	config, err = ApplyOp(TypeHero, config, Op{Name: "set_slide", Index: 0, StorageID: "a.jpg"})
	if err != nil {
		t.Fatalf("set_slide: %v", err)
	}

	cfg := decodeHero(config)
	if len(cfg.Slides) != 1 || cfg.Slides[0].StorageID != "a.jpg" {
		t.Fatalf("unexpected config after ops: %+v", cfg)
	}

	config, err = ApplyOp(TypeHero, config, Op{Name: "remove_slide", Index: 0})
	if err != nil {
		t.Fatalf("remove_slide: %v", err)
	}
	if cfg = decodeHero(config); len(cfg.Slides) != 0 {
		t.Fatalf("slide not removed: %+v", cfg)
	}
}

func TestApplyOp_PortfolioSetItem(t *testing.T) {
	config, err := ApplyOp(TypePortfolio, DefaultConfigJSON(TypePortfolio), Op{Name: "add_item"})
	if err != nil {
		t.Fatalf("add_item: %v", err)
	}

	item, _ := json.Marshal(PortfolioItem{Title: "Cá chép", Category: "Nhật cổ", StorageID: "koi.jpg"})
	config, err = ApplyOp(TypePortfolio, config, Op{Name: "set_item", Index: 0, Item: item})
	if err != nil {
		t.Fatalf("set_item: %v", err)
	}

	cfg := decodePortfolio(config)
	if cfg.Items[0].Title != "Cá chép" || cfg.Items[0].StorageID != "koi.jpg" {
		t.Fatalf("item not applied: %+v", cfg.Items)
	}
}

func TestApplyOp_TogglePost(t *testing.T) {
	config, err := ApplyOp(TypePosts, `{"postIds":["1","2"]}`, Op{Name: "toggle_post", PostID: "1"})
	if err != nil {
		t.Fatalf("toggle_post: %v", err)
	}
	cfg := decodePosts(config)
	if len(cfg.PostIDs) != 1 || cfg.PostIDs[0] != "2" {
		t.Fatalf("expected [2], got %v", cfg.PostIDs)
	}
}

func TestApplyOp_UnknownTypeAndOp(t *testing.T) {
	if _, err := ApplyOp(Type("latest"), "{}", Op{Name: "add_item"}); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
	if _, err := ApplyOp(TypeHero, "{}", Op{Name: "toggle_post"}); !errors.Is(err, ErrUnknownOp) {
		t.Fatalf("expected ErrUnknownOp for a foreign op, got %v", err)
	}
	if _, err := ApplyOp(TypeCustom, "{}", Op{Name: "add_item"}); !errors.Is(err, ErrUnknownOp) {
		t.Fatalf("custom supports no list ops, got %v", err)
	}
}

func TestApplyOp_OutOfRangeIndexIsANoOp(t *testing.T) {
	before := `{"slides":[{"storageId":"a.jpg"}]}`
	after, err := ApplyOp(TypeHero, before, Op{Name: "remove_slide", Index: 7})
	if err != nil {
		t.Fatalf("remove_slide: %v", err)
	}
	if decoded := decodeHero(after); len(decoded.Slides) != 1 || decoded.Slides[0].StorageID != "a.jpg" {
		t.Fatalf("out-of-range op must keep the config intact: %+v", decoded)
	}
}
