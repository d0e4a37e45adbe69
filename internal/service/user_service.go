package service

import (
	"errors"
	"strings"

	"github.com/inkwell/internal/db"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserNameMissing  = errors.New("user name is required")
	ErrUserEmailMissing = errors.New("user email is required")
	ErrUserRoleInvalid  = errors.New("user role is invalid")
	ErrEmailTaken       = errors.New("email already exists")
)

// UserService manages the staff directory. Accounts carry no credentials:
// the panel has no authentication layer of its own.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService instance.
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// UserCreateInput holds the fields accepted on create.
type UserCreateInput struct {
	Name   string
	Email  string
	Role   string
	Active bool
}

// UserUpdateInput is a partial patch: only non-nil fields change.
type UserUpdateInput struct {
	Name   *string
	Email  *string
	Role   *string
	Active *bool
}

// List returns users, newest first. A nil activeOnly returns everything.
func (s *UserService) List(activeOnly *bool) ([]db.User, error) {
	query := s.db.Model(&db.User{})
	if activeOnly != nil {
		query = query.Where("active = ?", *activeOnly)
	}

	var users []db.User
	if err := query.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Get fetches one user by id.
func (s *UserService) Get(id uint) (*db.User, error) {
	var user db.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. The email must be unique.
func (s *UserService) Create(input UserCreateInput) (*db.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrUserNameMissing
	}
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, ErrUserEmailMissing
	}
	role, ok := normalizeRole(input.Role)
	if !ok {
		return nil, ErrUserRoleInvalid
	}

	user := db.User{Name: name, Email: email, Role: role, Active: input.Active}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies a partial patch. Changing email re-checks uniqueness
// against other users; keeping the current email always succeeds.
func (s *UserService) Update(id uint, input UserUpdateInput) (*db.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	patch := map[string]interface{}{}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrUserNameMissing
		}
		patch["name"] = name
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email == "" {
			return nil, ErrUserEmailMissing
		}
		if email != user.Email {
			patch["email"] = email
		}
	}
	if input.Role != nil {
		role, ok := normalizeRole(*input.Role)
		if !ok {
			return nil, ErrUserRoleInvalid
		}
		patch["role"] = role
	}
	if input.Active != nil {
		patch["active"] = *input.Active
	}

	if len(patch) == 0 {
		return user, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if emailValue, ok := patch["email"]; ok {
			var count int64
			if err := tx.Model(&db.User{}).
				Where("email = ? AND id <> ?", emailValue, user.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrEmailTaken
			}
		}
		return tx.Model(user).Updates(patch).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a user.
func (s *UserService) Delete(id uint) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(user).Error
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeRole(role string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(role))
	switch normalized {
	case db.RoleAdmin, db.RoleEditor, db.RoleStaff:
		return normalized, true
	case "":
		return db.RoleStaff, true
	}
	return "", false
}
