package pgsql

import (
	portsrepo "github.com/minsu-kang/postboard_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositories wires the relational repositories; the refresh-token store
// lives in the cache layer and is filled in by the caller.
func NewRepositories(dbPool *pgxpool.Pool) (portsrepo.UserRepository, portsrepo.PostRepository) {
	return newPgxUserRepository(dbPool), newPgxPostRepository(dbPool)
}
