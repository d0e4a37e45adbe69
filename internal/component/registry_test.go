package component

import (
	"encoding/json"
	"testing"
)

func TestTypeOptions_OrderAndLabels(t *testing.T) {
	options := TypeOptions()

	wantOrder := []string{"hero", "portfolio", "services", "testimonials", "posts", "custom"}
	if len(options) != len(wantOrder) {
		t.Fatalf("expected %d options, got %d", len(wantOrder), len(options))
	}
	for i, want := range wantOrder {
		if options[i].Value != want {
			t.Errorf("option %d: expected %q, got %q", i, want, options[i].Value)
		}
		if options[i].Label == "" {
			t.Errorf("option %q has empty label", options[i].Value)
		}
	}
}

func TestKnown_LegacyLatestTagIsUnrecognized(t *testing.T) {
	if Known(Type("latest")) {
		t.Fatalf("the retired latest tag must not be registered")
	}
	if Known(Type("")) {
		t.Fatalf("empty type must not be registered")
	}
	if !Known(TypeHero) {
		t.Fatalf("hero must be registered")
	}
}

func TestDefaultConfigJSON_EmptyListsNotNull(t *testing.T) {
	var hero HeroConfig
	if err := json.Unmarshal([]byte(DefaultConfigJSON(TypeHero)), &hero); err != nil {
		t.Fatalf("decode hero default: %v", err)
	}
	if hero.Slides == nil {
		t.Fatalf("hero default must carry an empty slides list, not null")
	}

	var posts PostsConfig
	if err := json.Unmarshal([]byte(DefaultConfigJSON(TypePosts)), &posts); err != nil {
		t.Fatalf("decode posts default: %v", err)
	}
	if posts.PostIDs == nil {
		t.Fatalf("posts default must carry an empty postIds list, not null")
	}
}

func TestDefaultConfigJSON_UnknownType(t *testing.T) {
	if got := DefaultConfigJSON(Type("latest")); got != "{}" {
		t.Fatalf("unknown type default should be an empty object, got %q", got)
	}
}

func TestDecode_ToleratesForeignShapes(t *testing.T) {
	// A config written for a different type decodes to a usable value with
	// type-appropriate defaults in place of missing fields.
	heroShaped := `{"title":"Hero","slides":[{"storageId":"a.jpg"}]}`

	services := decodeServices(heroShaped)
	if services.Title != "Hero" {
		t.Fatalf("shared field should survive, got %q", services.Title)
	}
	if services.Services == nil || services.Qualities == nil {
		t.Fatalf("missing lists must default to empty, got %+v", services)
	}

	posts := decodePosts(`{"count":-3}`)
	if posts.Count != 0 {
		t.Fatalf("negative count must clamp to zero, got %d", posts.Count)
	}
}

func TestDecode_MalformedConfigDegradesToEmpty(t *testing.T) {
	hero := decodeHero(`{broken`)
	if hero.Title != "" || len(hero.Slides) != 0 || hero.Slides == nil {
		t.Fatalf("malformed config must decode to the empty shape, got %+v", hero)
	}
}
