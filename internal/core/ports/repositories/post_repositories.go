package repositories

import (
	"context"

	"github.com/minsu-kang/postboard_backend/internal/core/domain"
)

// PostReader defines read operations for post data.
//
// All listing methods page by cursor: rows with id strictly below lastID are
// returned in descending id order, at most limit rows. lastID == 0 means no
// cursor (first page).
type PostReader interface {
	// FindPostByID retrieves a single post with its full content.
	FindPostByID(ctx context.Context, postID int64) (*domain.Post, error)

	// FindPostPage retrieves the global feed page.
	FindPostPage(ctx context.Context, lastID int64, limit int) ([]domain.PostSummary, error)

	// FindPostPageByWriter retrieves a page of posts owned by writerID.
	FindPostPageByWriter(ctx context.Context, writerID string, lastID int64, limit int) ([]domain.PostSummary, error)

	// FindPostPageByTitlePrefix retrieves a page of posts whose title starts with prefix.
	FindPostPageByTitlePrefix(ctx context.Context, prefix string, lastID int64, limit int) ([]domain.PostSummary, error)
}

// PostWriter defines write operations for post data.
type PostWriter interface {
	// SavePost persists a new post and returns its generated id.
	SavePost(ctx context.Context, post domain.Post) (int64, error)

	// UpdatePost updates title/content of a post owned by writerID and marks it
	// EDITED. Affecting zero rows is not an error.
	UpdatePost(ctx context.Context, postID int64, writerID string, title, content string) error

	// DeletePost removes a post owned by writerID. Affecting zero rows is not an error.
	DeletePost(ctx context.Context, postID int64, writerID string) error
}

// PostRepository combines all post-related repository interfaces.
type PostRepository interface {
	PostReader
	PostWriter
}
