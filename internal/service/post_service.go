package service

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrPostTitleMissing = errors.New("post title is required")
	ErrPostSlugMissing  = errors.New("post slug is required")
	ErrPostSlugInvalid  = errors.New("post slug may only contain lowercase letters, digits and dashes")
	ErrSlugTaken        = errors.New("slug already exists")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// PostService manages blog posts.
type PostService struct {
	db    *gorm.DB
	blobs storage.Store
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB, blobs storage.Store) *PostService {
	return &PostService{db: gdb, blobs: blobs}
}

// PostCreateInput holds the fields accepted when creating a post.
type PostCreateInput struct {
	Title             string
	Slug              string
	Excerpt           string
	Content           string
	Thumbnail         string
	Active            bool
	ContentStorageIDs []string
}

// PostUpdateInput is a partial patch: only non-nil fields change.
type PostUpdateInput struct {
	Title             *string
	Slug              *string
	Excerpt           *string
	Content           *string
	Thumbnail         *string
	Active            *bool
	ContentStorageIDs *[]string
}

// List returns posts, most recently updated first. A nil activeOnly
// returns everything.
func (s *PostService) List(activeOnly *bool) ([]db.Post, error) {
	query := s.db.Model(&db.Post{})
	if activeOnly != nil {
		query = query.Where("active = ?", *activeOnly)
	}

	var posts []db.Post
	if err := query.Order("updated_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Get fetches one post by id.
func (s *PostService) Get(id uint) (*db.Post, error) {
	var post db.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetBySlug fetches one post by its slug.
func (s *PostService) GetBySlug(slug string) (*db.Post, error) {
	var post db.Post
	if err := s.db.Where("slug = ?", strings.TrimSpace(slug)).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post. The slug must be unique; a post created
// active gets its publication time stamped immediately.
func (s *PostService) Create(input PostCreateInput) (*db.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPostTitleMissing
	}
	slug, err := normalizeSlug(input.Slug)
	if err != nil {
		return nil, err
	}

	post := db.Post{
		Title:             title,
		Slug:              slug,
		Excerpt:           strings.TrimSpace(input.Excerpt),
		Content:           input.Content,
		Thumbnail:         strings.TrimSpace(input.Thumbnail),
		Active:            input.Active,
		ContentStorageIDs: input.ContentStorageIDs,
	}
	if input.Active {
		now := time.Now()
		post.PublishedAt = &now
	}

	// Pre-check inside the transaction for a friendly conflict error; the
	// unique index on slug backstops concurrent writers.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db.Post{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrSlugTaken
		}
		return tx.Create(&post).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update applies a partial patch. Changing slug re-checks uniqueness
// against other posts (keeping the current slug always succeeds). The
// publication time is latched: it is set the first time the post becomes
// active and never cleared or reset afterwards. Replacing the thumbnail or
// the content image set deletes the blobs that fell out of use.
func (s *PostService) Update(id uint, input PostUpdateInput) (*db.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	patch := map[string]interface{}{}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrPostTitleMissing
		}
		patch["title"] = title
	}

	var newSlug string
	if input.Slug != nil {
		newSlug, err = normalizeSlug(*input.Slug)
		if err != nil {
			return nil, err
		}
		if newSlug != post.Slug {
			patch["slug"] = newSlug
		}
	}

	if input.Excerpt != nil {
		patch["excerpt"] = strings.TrimSpace(*input.Excerpt)
	}
	if input.Content != nil {
		patch["content"] = *input.Content
	}

	var orphanedBlobs []string
	if input.Thumbnail != nil {
		thumbnail := strings.TrimSpace(*input.Thumbnail)
		if thumbnail != post.Thumbnail {
			patch["thumbnail"] = thumbnail
			if post.Thumbnail != "" {
				orphanedBlobs = append(orphanedBlobs, post.Thumbnail)
			}
		}
	}
	if input.ContentStorageIDs != nil {
		patch["content_storage_ids"] = *input.ContentStorageIDs
		orphanedBlobs = append(orphanedBlobs,
			storage.DiffStorageIDs(post.ContentStorageIDs, *input.ContentStorageIDs)...)
	}

	if input.Active != nil {
		patch["active"] = *input.Active
		if *input.Active && post.PublishedAt == nil {
			patch["published_at"] = time.Now()
		}
	}

	if len(patch) == 0 {
		return post, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if slugValue, ok := patch["slug"]; ok {
			var count int64
			if err := tx.Model(&db.Post{}).
				Where("slug = ? AND id <> ?", slugValue, post.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrSlugTaken
			}
		}
		return tx.Model(post).Updates(patch).Error
	})
	if err != nil {
		return nil, err
	}

	for _, blobID := range orphanedBlobs {
		_ = s.blobs.Delete(blobID)
	}

	return s.Get(id)
}

// Delete removes a post along with its thumbnail and content image blobs.
// Blob cleanup is best effort; the record is removed regardless.
func (s *PostService) Delete(id uint) error {
	post, err := s.Get(id)
	if err != nil {
		return err
	}

	if post.Thumbnail != "" {
		_ = s.blobs.Delete(post.Thumbnail)
	}
	for _, blobID := range post.ContentStorageIDs {
		_ = s.blobs.Delete(blobID)
	}

	return s.db.Delete(post).Error
}

func normalizeSlug(raw string) (string, error) {
	slug := strings.ToLower(strings.TrimSpace(raw))
	if slug == "" {
		return "", ErrPostSlugMissing
	}
	if !slugPattern.MatchString(slug) {
		return "", ErrPostSlugInvalid
	}
	return slug, nil
}
