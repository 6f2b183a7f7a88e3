package services

import (
	"context"

	"github.com/minsu-kang/postboard_backend/internal/core/domain"
	"github.com/minsu-kang/postboard_backend/internal/dto"
)

// PostSvcFacade defines the interface for post CRUD and feed pages.
type PostSvcFacade interface {
	// CreatePost persists a new post owned by writerID and returns its id.
	CreatePost(ctx context.Context, writerID string, req dto.CreatePostRequest) (int64, error)

	// UpdatePost updates a post scoped to its owner; updating a post the
	// caller does not own (or one that does not exist) is a no-op.
	UpdatePost(ctx context.Context, writerID string, postID int64, req dto.UpdatePostRequest) error

	// RemovePost deletes a post scoped to its owner; same no-op semantics as
	// UpdatePost.
	RemovePost(ctx context.Context, writerID string, postID int64) error

	// GetPostByID retrieves the full detail of a single post.
	GetPostByID(ctx context.Context, postID int64) (*domain.Post, error)

	// ListPosts returns the public feed page after the lastID cursor.
	ListPosts(ctx context.Context, lastID int64) (*dto.PostPageResponse, error)

	// ListPostsByWriter returns a page of the writer's own posts.
	ListPostsByWriter(ctx context.Context, writerID string, lastID int64) (*dto.PostPageResponse, error)

	// SearchPosts returns a page of posts whose title starts with keyword.
	SearchPosts(ctx context.Context, keyword string, lastID int64) (*dto.PostPageResponse, error)
}
