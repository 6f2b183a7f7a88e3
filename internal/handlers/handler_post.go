package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/minsu-kang/postboard_backend/internal/apperrors"
	portssvc "github.com/minsu-kang/postboard_backend/internal/core/ports/services"
	"github.com/minsu-kang/postboard_backend/internal/dto"
	"github.com/minsu-kang/postboard_backend/internal/middleware"
	"github.com/minsu-kang/postboard_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// postHandler handles HTTP requests related to posts.
type postHandler struct {
	postService portssvc.PostSvcFacade
}

// newPostHandler creates a new postHandler.
func newPostHandler(ps portssvc.PostSvcFacade) *postHandler {
	return &postHandler{postService: ps}
}

// registerPostRoutes registers all post-related routes. Listing, detail and
// search are public; mutation and the writer feed require an access token.
func registerPostRoutes(r *gin.Engine, cfg *config.Config, postService portssvc.PostSvcFacade) {
	h := newPostHandler(postService)
	authRequired := middleware.AuthMiddleware(cfg.JWTSecret)

	posts := r.Group("/api/v1/posts")
	{
		posts.GET("", h.listPosts)
		posts.GET("/search", h.searchPosts)
		posts.GET("/writers", authRequired, h.listOwnPosts)
		posts.GET("/:id", h.getPost)
		posts.POST("", authRequired, h.createPost)
		posts.PUT("/:id", authRequired, h.updatePost)
		posts.DELETE("/:id", authRequired, h.deletePost)
	}
}

// parseLastID reads the optional last-id cursor query param; absent means 0
// (first page).
func parseLastID(c *gin.Context) (int64, error) {
	raw := c.Query("last-id")
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func parsePostID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// createPost godoc
// @Summary Create a post
// @Description Creates a new post owned by the authenticated user.
// @Tags posts
// @Accept json
// @Produce json
// @Param post body dto.CreatePostRequest true "Post content"
// @Success 201 {object} dto.CreatePostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /posts [post]
func (h *postHandler) createPost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := h.postService.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Writer row is gone; the bearer of this token no longer exists.
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Writer not found"})
			return
		}
		respondServiceError(c, err, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, dto.CreatePostResponse{ID: id})
}

// updatePost godoc
// @Summary Edit a post
// @Description Updates a post owned by the authenticated user; a post the user does not own is left untouched.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body dto.UpdatePostRequest true "New content"
// @Success 200 {object} dto.OkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /posts/{id} [put]
func (h *postHandler) updatePost(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid post id"})
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.postService.UpdatePost(c.Request.Context(), userID, postID, req); err != nil {
		respondServiceError(c, err, "Failed to update post")
		return
	}

	c.JSON(http.StatusOK, dto.OkResponse{OK: true})
}

// deletePost godoc
// @Summary Remove a post
// @Description Deletes a post owned by the authenticated user; a post the user does not own is left untouched.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.OkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (h *postHandler) deletePost(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid post id"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.postService.RemovePost(c.Request.Context(), userID, postID); err != nil {
		respondServiceError(c, err, "Failed to delete post")
		return
	}

	c.JSON(http.StatusOK, dto.OkResponse{OK: true})
}

// getPost godoc
// @Summary Get post detail
// @Description Retrieves the full content of a single post.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.PostDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /posts/{id} [get]
func (h *postHandler) getPost(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid post id"})
		return
	}

	post, err := h.postService.GetPostByID(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
			return
		}
		respondServiceError(c, err, "Failed to get post")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDetailResponse(post))
}

// listPosts godoc
// @Summary Home feed
// @Description Returns up to 10 newest post summaries after the last-id cursor.
// @Tags posts
// @Produce json
// @Param last-id query int false "Cursor: id of the last item from the previous page"
// @Success 200 {object} dto.PostPageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /posts [get]
func (h *postHandler) listPosts(c *gin.Context) {
	lastID, err := parseLastID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid last-id"})
		return
	}

	page, err := h.postService.ListPosts(c.Request.Context(), lastID)
	if err != nil {
		respondServiceError(c, err, "Failed to list posts")
		return
	}

	c.JSON(http.StatusOK, page)
}

// listOwnPosts godoc
// @Summary Own posts feed
// @Description Returns a page of the authenticated user's posts.
// @Tags posts
// @Produce json
// @Param last-id query int false "Cursor: id of the last item from the previous page"
// @Success 200 {object} dto.PostPageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /posts/writers [get]
func (h *postHandler) listOwnPosts(c *gin.Context) {
	lastID, err := parseLastID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid last-id"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	page, err := h.postService.ListPostsByWriter(c.Request.Context(), userID, lastID)
	if err != nil {
		respondServiceError(c, err, "Failed to list posts")
		return
	}

	c.JSON(http.StatusOK, page)
}

// searchPosts godoc
// @Summary Search posts
// @Description Returns a page of posts whose title starts with the keyword.
// @Tags posts
// @Produce json
// @Param keyword query string true "Title prefix"
// @Param last-id query int false "Cursor: id of the last item from the previous page"
// @Success 200 {object} dto.PostPageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /posts/search [get]
func (h *postHandler) searchPosts(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "keyword is required"})
		return
	}

	lastID, err := parseLastID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid last-id"})
		return
	}

	page, err := h.postService.SearchPosts(c.Request.Context(), keyword, lastID)
	if err != nil {
		respondServiceError(c, err, "Failed to search posts")
		return
	}

	c.JSON(http.StatusOK, page)
}
