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

func setupUserServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:user-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&db.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

func TestUserService_CreateNormalizesEmailAndRole(t *testing.T) {
	svc := NewUserService(setupUserServiceTestDB(t))

	user, err := svc.Create(UserCreateInput{Name: "Huy", Email: "  Huy@Studio.VN ", Role: ""})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Email != "huy@studio.vn" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.Role != db.RoleStaff {
		t.Fatalf("empty role must default to staff, got %q", user.Role)
	}
}

func TestUserService_RejectsUnknownRole(t *testing.T) {
	svc := NewUserService(setupUserServiceTestDB(t))

	if _, err := svc.Create(UserCreateInput{Name: "X", Email: "x@y.z", Role: "owner"}); !errors.Is(err, ErrUserRoleInvalid) {
		t.Fatalf("expected ErrUserRoleInvalid, got %v", err)
	}
}

func TestUserService_EmailMustBeUnique(t *testing.T) {
	svc := NewUserService(setupUserServiceTestDB(t))

	first, err := svc.Create(UserCreateInput{Name: "A", Email: "a@studio.vn", Role: db.RoleAdmin})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Case differences collapse into the same address.
	if _, err := svc.Create(UserCreateInput{Name: "B", Email: "A@Studio.VN"}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	second, err := svc.Create(UserCreateInput{Name: "B", Email: "b@studio.vn"})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	own := "a@studio.vn"
	if _, err := svc.Update(first.ID, UserUpdateInput{Email: &own}); err != nil {
		t.Fatalf("keeping own email must succeed: %v", err)
	}
	if _, err := svc.Update(second.ID, UserUpdateInput{Email: &own}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken on collision, got %v", err)
	}
}

func TestUserService_UpdateRole(t *testing.T) {
	svc := NewUserService(setupUserServiceTestDB(t))

	user, err := svc.Create(UserCreateInput{Name: "Thợ", Email: "tho@studio.vn", Role: db.RoleStaff, Active: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	role := "Editor"
	updated, err := svc.Update(user.ID, UserUpdateInput{Role: &role})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Role != db.RoleEditor {
		t.Fatalf("role must normalize to lowercase, got %q", updated.Role)
	}

	bad := "superuser"
	if _, err := svc.Update(user.ID, UserUpdateInput{Role: &bad}); !errors.Is(err, ErrUserRoleInvalid) {
		t.Fatalf("expected ErrUserRoleInvalid, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc := NewUserService(setupUserServiceTestDB(t))

	user, err := svc.Create(UserCreateInput{Name: "Đi", Email: "di@studio.vn"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
