package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/minsu-kang/postboard_backend/internal/apperrors"
	"github.com/minsu-kang/postboard_backend/internal/core/domain"
	portsrepo "github.com/minsu-kang/postboard_backend/internal/core/ports/repositories"
	portssvc "github.com/minsu-kang/postboard_backend/internal/core/ports/services"
	"github.com/minsu-kang/postboard_backend/internal/dto"
)

// postPageSize is the fixed number of summaries per feed page.
const postPageSize = 10

// postService implements PostSvcFacade on top of the relational post store.
type postService struct {
	postRepo portsrepo.PostRepository
}

// NewPostService creates a new post service.
func NewPostService(postRepo portsrepo.PostRepository) portssvc.PostSvcFacade {
	return &postService{postRepo: postRepo}
}

func (s *postService) CreatePost(ctx context.Context, writerID string, req dto.CreatePostRequest) (int64, error) {
	post := domain.Post{
		Title:     req.Title,
		Content:   req.Content,
		WriterID:  writerID,
		PostState: domain.PostStateCreated,
	}

	id, err := s.postRepo.SavePost(ctx, post)
	if err != nil {
		// A broken writer FK surfaces as ErrNotFound from the repo.
		return 0, fmt.Errorf("failed to create post: %w", err)
	}
	return id, nil
}

func (s *postService) UpdatePost(ctx context.Context, writerID string, postID int64, req dto.UpdatePostRequest) error {
	// Owner-scoped update; zero rows affected (missing post or foreign owner)
	// is not an error at this layer.
	if err := s.postRepo.UpdatePost(ctx, postID, writerID, req.Title, req.Content); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

func (s *postService) RemovePost(ctx context.Context, writerID string, postID int64) error {
	if err := s.postRepo.DeletePost(ctx, postID, writerID); err != nil {
		return fmt.Errorf("failed to remove post: %w", err)
	}
	return nil
}

func (s *postService) GetPostByID(ctx context.Context, postID int64) (*domain.Post, error) {
	post, err := s.postRepo.FindPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post by ID: %w", err)
	}
	return post, nil
}

func (s *postService) ListPosts(ctx context.Context, lastID int64) (*dto.PostPageResponse, error) {
	summaries, err := s.postRepo.FindPostPage(ctx, lastID, postPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return dto.ToPostPageResponse(summaries, nextCursor(summaries, lastID)), nil
}

func (s *postService) ListPostsByWriter(ctx context.Context, writerID string, lastID int64) (*dto.PostPageResponse, error) {
	summaries, err := s.postRepo.FindPostPageByWriter(ctx, writerID, lastID, postPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by writer: %w", err)
	}
	return dto.ToPostPageResponse(summaries, nextCursor(summaries, lastID)), nil
}

func (s *postService) SearchPosts(ctx context.Context, keyword string, lastID int64) (*dto.PostPageResponse, error) {
	summaries, err := s.postRepo.FindPostPageByTitlePrefix(ctx, keyword, lastID, postPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}
	return dto.ToPostPageResponse(summaries, nextCursor(summaries, lastID)), nil
}

// nextCursor is the id of the last row on the page; an empty page keeps the
// incoming cursor (0 when the caller supplied none).
func nextCursor(summaries []domain.PostSummary, lastID int64) int64 {
	if len(summaries) > 0 {
		return summaries[len(summaries)-1].ID
	}
	return lastID
}
