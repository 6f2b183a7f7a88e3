package services

import (
	portsrepo "github.com/minsu-kang/postboard_backend/internal/core/ports/repositories"
	portssvc "github.com/minsu-kang/postboard_backend/internal/core/ports/services"
	"github.com/minsu-kang/postboard_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, repos.RefreshTokenRepo)
	container.Token = NewTokenService(cfg, repos.RefreshTokenRepo)
	container.Post = NewPostService(repos.PostRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade  = (*userService)(nil)
	_ portssvc.TokenSvcFacade = (*tokenService)(nil)
	_ portssvc.PostSvcFacade  = (*postService)(nil)
)
