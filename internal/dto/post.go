package dto

import (
	"time"

	"github.com/minsu-kang/postboard_backend/internal/core/domain"
)

// CreatePostRequest is the request body for creating a post.
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

// UpdatePostRequest is the request body for editing a post.
type UpdatePostRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

// CreatePostResponse returns the id of the newly created post.
type CreatePostResponse struct {
	ID int64 `json:"id"`
}

// PostDetailResponse is the full view of a single post.
type PostDetailResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PostState   string    `json:"postState"`
	WriterID    string    `json:"writerID"`
	CreatedDate time.Time `json:"createdDate"`
}

// PostSummaryResponse is the listing view of a post (no content, no state).
type PostSummaryResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	WriterID    string    `json:"writerID"`
	CreatedDate time.Time `json:"createdDate"`
}

// PageMetadata carries the cursor for fetching the next page.
type PageMetadata struct {
	LastID int64 `json:"lastId"`
}

// PostPageResponse is one page of post summaries plus the next-page cursor.
type PostPageResponse struct {
	PostSummaries []PostSummaryResponse `json:"postSummaries"`
	Metadata      PageMetadata          `json:"metadata"`
}

// ToPostDetailResponse converts a domain.Post to its detail DTO.
func ToPostDetailResponse(p *domain.Post) PostDetailResponse {
	return PostDetailResponse{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		PostState:   string(p.PostState),
		WriterID:    p.WriterID,
		CreatedDate: p.CreatedDate,
	}
}

// ToPostPageResponse converts a page of summaries and its cursor to the page DTO.
func ToPostPageResponse(summaries []domain.PostSummary, lastID int64) *PostPageResponse {
	items := make([]PostSummaryResponse, len(summaries))
	for i, s := range summaries {
		items[i] = PostSummaryResponse{
			ID:          s.ID,
			Title:       s.Title,
			WriterID:    s.WriterID,
			CreatedDate: s.CreatedDate,
		}
	}
	return &PostPageResponse{
		PostSummaries: items,
		Metadata:      PageMetadata{LastID: lastID},
	}
}
