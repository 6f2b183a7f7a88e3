package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minsu-kang/postboard_backend/internal/apperrors"
	"github.com/minsu-kang/postboard_backend/internal/core/domain"
	portsrepo "github.com/minsu-kang/postboard_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPostRepository struct {
	db *pgxpool.Pool
}

func newPgxPostRepository(db *pgxpool.Pool) portsrepo.PostRepository {
	return &PgxPostRepository{db: db}
}

// Ensure PgxPostRepository implements portsrepo.PostRepository
var _ portsrepo.PostRepository = (*PgxPostRepository)(nil)

func (r *PgxPostRepository) SavePost(ctx context.Context, post domain.Post) (int64, error) {
	query := `
        INSERT INTO posts (title, content, writer_id, post_state)
        VALUES ($1, $2, $3, $4)
        RETURNING id;
    `
	var id int64
	err := r.db.QueryRow(ctx, query,
		post.Title,
		post.Content,
		post.WriterID,
		post.PostState,
	).Scan(&id)
	if err != nil {
		if translated := translateError(err); errors.Is(translated, apperrors.ErrNotFound) {
			// writer_id FK violation: the owning user does not exist.
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("failed to save post: %w", err)
	}
	return id, nil
}

func (r *PgxPostRepository) UpdatePost(ctx context.Context, postID int64, writerID string, title, content string) error {
	query := `
		UPDATE posts
		SET title = $1, content = $2, post_state = $3
		WHERE id = $4 AND writer_id = $5;
	`
	// Zero rows affected is deliberately not an error: missing post and
	// foreign-owned post are both silent no-ops at this layer.
	_, err := r.db.Exec(ctx, query, title, content, domain.PostStateEdited, postID, writerID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

func (r *PgxPostRepository) DeletePost(ctx context.Context, postID int64, writerID string) error {
	query := `
		DELETE FROM posts
		WHERE id = $1 AND writer_id = $2;
	`
	_, err := r.db.Exec(ctx, query, postID, writerID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func (r *PgxPostRepository) FindPostByID(ctx context.Context, postID int64) (*domain.Post, error) {
	query := `
		SELECT id, title, content, writer_id, post_state, created_date
		FROM posts
		WHERE id = $1;
	`
	var post domain.Post
	err := r.db.QueryRow(ctx, query, postID).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.WriterID,
		&post.PostState,
		&post.CreatedDate,
	)
	if err != nil {
		if translated := translateError(err); errors.Is(translated, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post by ID %d: %w", postID, err)
	}
	return &post, nil
}

func (r *PgxPostRepository) FindPostPage(ctx context.Context, lastID int64, limit int) ([]domain.PostSummary, error) {
	query := `
		SELECT id, title, writer_id, created_date
		FROM posts
		WHERE ($1 = 0 OR id < $1)
		ORDER BY id DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, lastID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query post page: %w", err)
	}
	defer rows.Close()

	return scanPostSummaries(rows)
}

func (r *PgxPostRepository) FindPostPageByWriter(ctx context.Context, writerID string, lastID int64, limit int) ([]domain.PostSummary, error) {
	query := `
		SELECT id, title, writer_id, created_date
		FROM posts
		WHERE writer_id = $1 AND ($2 = 0 OR id < $2)
		ORDER BY id DESC
		LIMIT $3;
	`
	rows, err := r.db.Query(ctx, query, writerID, lastID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query post page by writer: %w", err)
	}
	defer rows.Close()

	return scanPostSummaries(rows)
}

func (r *PgxPostRepository) FindPostPageByTitlePrefix(ctx context.Context, prefix string, lastID int64, limit int) ([]domain.PostSummary, error) {
	query := `
		SELECT id, title, writer_id, created_date
		FROM posts
		WHERE title LIKE $1 || '%' ESCAPE '\' AND ($2 = 0 OR id < $2)
		ORDER BY id DESC
		LIMIT $3;
	`
	rows, err := r.db.Query(ctx, query, escapeLikePrefix(prefix), lastID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query post page by title prefix: %w", err)
	}
	defer rows.Close()

	return scanPostSummaries(rows)
}

// escapeLikePrefix escapes LIKE metacharacters in a search keyword so it
// matches as a literal prefix: a keyword of "100%" must not match "1000".
func escapeLikePrefix(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// scanPostSummaries collects listing rows; the projection omits content and
// post_state on purpose.
func scanPostSummaries(rows pgx.Rows) ([]domain.PostSummary, error) {
	summaries := []domain.PostSummary{}
	for rows.Next() {
		var s domain.PostSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.WriterID, &s.CreatedDate); err != nil {
			return nil, fmt.Errorf("failed to scan post summary row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating post summary rows: %w", rows.Err())
	}
	return summaries, nil
}
