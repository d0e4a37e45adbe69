package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/inkwell/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMenuServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:menu-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&db.Menu{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

func TestMenuService_CreateAppendsToEnd(t *testing.T) {
	svc := NewMenuService(setupMenuServiceTestDB(t))

	first, err := svc.Create(MenuCreateInput{Name: "Trang chủ", URL: "/", Active: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(MenuCreateInput{Name: "Bài viết", URL: "/bai-viet", Active: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Order != 1 || second.Order != 2 {
		t.Fatalf("expected orders 1 and 2, got %d and %d", first.Order, second.Order)
	}
}

func TestMenuService_CreateValidation(t *testing.T) {
	svc := NewMenuService(setupMenuServiceTestDB(t))

	if _, err := svc.Create(MenuCreateInput{Name: "", URL: "/x"}); !errors.Is(err, ErrMenuNameMissing) {
		t.Fatalf("expected ErrMenuNameMissing, got %v", err)
	}
	if _, err := svc.Create(MenuCreateInput{Name: "X", URL: " "}); !errors.Is(err, ErrMenuURLMissing) {
		t.Fatalf("expected ErrMenuURLMissing, got %v", err)
	}
}

func TestMenuService_MoveDown(t *testing.T) {
	svc := NewMenuService(setupMenuServiceTestDB(t))

	a, _ := svc.Create(MenuCreateInput{Name: "A", URL: "/a"})
	if _, err := svc.Create(MenuCreateInput{Name: "B", URL: "/b"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Move(a.ID, MoveDown); err != nil {
		t.Fatalf("move down: %v", err)
	}
	items, err := svc.List(nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if items[0].Name != "B" || items[1].Name != "A" {
		t.Fatalf("expected [B A], got %+v", items)
	}
}

func TestMenuService_UpdateAndDelete(t *testing.T) {
	svc := NewMenuService(setupMenuServiceTestDB(t))

	menu, err := svc.Create(MenuCreateInput{Name: "Liên hệ", URL: "/lien-he", Active: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newURL := "/contact"
	inactive := false
	updated, err := svc.Update(menu.ID, MenuUpdateInput{URL: &newURL, Active: &inactive})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.URL != "/contact" || updated.Active {
		t.Fatalf("patch not applied: %+v", updated)
	}

	if err := svc.Delete(menu.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(menu.ID); !errors.Is(err, ErrMenuNotFound) {
		t.Fatalf("expected ErrMenuNotFound, got %v", err)
	}
}
