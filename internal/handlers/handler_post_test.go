package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/minsu-kang/postboard_backend/internal/apperrors"
	"github.com/minsu-kang/postboard_backend/internal/core/domain"
	portssvc "github.com/minsu-kang/postboard_backend/internal/core/ports/services"
	"github.com/minsu-kang/postboard_backend/internal/dto"
	"github.com/minsu-kang/postboard_backend/internal/handlers"
	"github.com/minsu-kang/postboard_backend/internal/platform/config"
	"github.com/minsu-kang/postboard_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PostService ---
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, writerID string, req dto.CreatePostRequest) (int64, error) {
	args := m.Called(ctx, writerID, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, writerID string, postID int64, req dto.UpdatePostRequest) error {
	args := m.Called(ctx, writerID, postID, req)
	return args.Error(0)
}

func (m *MockPostService) RemovePost(ctx context.Context, writerID string, postID int64) error {
	args := m.Called(ctx, writerID, postID)
	return args.Error(0)
}

func (m *MockPostService) GetPostByID(ctx context.Context, postID int64) (*domain.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context, lastID int64) (*dto.PostPageResponse, error) {
	args := m.Called(ctx, lastID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PostPageResponse), args.Error(1)
}

func (m *MockPostService) ListPostsByWriter(ctx context.Context, writerID string, lastID int64) (*dto.PostPageResponse, error) {
	args := m.Called(ctx, writerID, lastID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PostPageResponse), args.Error(1)
}

func (m *MockPostService) SearchPosts(ctx context.Context, keyword string, lastID int64) (*dto.PostPageResponse, error) {
	args := m.Called(ctx, keyword, lastID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PostPageResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PostSvcFacade = (*MockPostService)(nil)

// --- Test Suite ---
type PostHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockPostService *MockPostService
	cfg             *config.Config
}

func (suite *PostHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.cfg = &config.Config{
		JWTSecret:              "test-secret-key-that-is-long-enough",
		JWTIssuer:              "postboard-test",
		AccessTokenExpiry:      15 * time.Minute,
		RefreshTokenExpiry:     168 * time.Hour,
		RefreshTokenCookieName: "refreshToken",
		RefreshTokenCookiePath: "/auth",
	}

	suite.mockPostService = new(MockPostService)

	services := &portssvc.ServiceContainer{
		User:  new(MockUserService),
		Token: new(MockTokenService),
		Post:  suite.mockPostService,
	}
	handlers.RegisterRoutes(suite.router, suite.cfg, services)
}

func (suite *PostHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateToken(userID, utils.TokenTypeAccess, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func pageOf(summaries ...dto.PostSummaryResponse) *dto.PostPageResponse {
	page := &dto.PostPageResponse{PostSummaries: summaries}
	if len(summaries) > 0 {
		page.Metadata.LastID = summaries[len(summaries)-1].ID
	}
	return page
}

// --- List Tests ---

func (suite *PostHandlerTestSuite) TestListPosts_PublicNoToken() {
	expected := pageOf(
		dto.PostSummaryResponse{ID: 12, Title: "newest", WriterID: uuid.NewString()},
		dto.PostSummaryResponse{ID: 11, Title: "older", WriterID: uuid.NewString()},
	)
	suite.mockPostService.On("ListPosts", mock.Anything, int64(0)).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.PostPageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.PostSummaries, 2)
	suite.Equal(int64(11), resp.Metadata.LastID)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestListPosts_CursorPassedThrough() {
	suite.mockPostService.On("ListPosts", mock.Anything, int64(42)).Return(pageOf(), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/posts?last-id=42", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestListPosts_BadCursor() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/posts?last-id=abc", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPostService.AssertNotCalled(suite.T(), "ListPosts", mock.Anything, mock.Anything)
}

func (suite *PostHandlerTestSuite) TestListOwnPosts_RequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/posts/writers", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPostService.AssertNotCalled(suite.T(), "ListPostsByWriter", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostHandlerTestSuite) TestListOwnPosts_UsesTokenSubject() {
	userID := uuid.NewString()
	suite.mockPostService.On("ListPostsByWriter", mock.Anything, userID, int64(0)).Return(pageOf(), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/posts/writers", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPostService.AssertExpectations(suite.T())
}

// --- Search Tests ---

func (suite *PostHandlerTestSuite) TestSearchPosts_Success() {
	expected := pageOf(dto.PostSummaryResponse{ID: 3, Title: "go tips", WriterID: uuid.NewString()})
	suite.mockPostService.On("SearchPosts", mock.Anything, "go", int64(0)).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/posts/search?keyword=go", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestSearchPosts_MissingKeyword() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/posts/search", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPostService.AssertNotCalled(suite.T(), "SearchPosts", mock.Anything, mock.Anything, mock.Anything)
}

// --- Detail Tests ---

func (suite *PostHandlerTestSuite) TestGetPost_Success() {
	post := &domain.Post{
		ID:        7,
		Title:     "hello",
		Content:   "full body",
		WriterID:  uuid.NewString(),
		PostState: domain.PostStateCreated,
	}
	suite.mockPostService.On("GetPostByID", mock.Anything, int64(7)).Return(post, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/posts/7", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.PostDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(7), resp.ID)
	suite.Equal("full body", resp.Content)
	suite.Equal(string(domain.PostStateCreated), resp.PostState)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestGetPost_NotFound() {
	suite.mockPostService.On("GetPostByID", mock.Anything, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/posts/404", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPostService.AssertExpectations(suite.T())
}

// --- Create Tests ---

func (suite *PostHandlerTestSuite) TestCreatePost_Success() {
	userID := uuid.NewString()
	reqBody := dto.CreatePostRequest{Title: "new post", Content: "hello world"}

	suite.mockPostService.On("CreatePost", mock.Anything, userID, reqBody).Return(int64(99), nil).Once()

	payload, err := json.Marshal(reqBody)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/posts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CreatePostResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(99), resp.ID)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestCreatePost_NoToken() {
	payload, _ := json.Marshal(dto.CreatePostRequest{Title: "new post", Content: "hello"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/posts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPostService.AssertNotCalled(suite.T(), "CreatePost", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostHandlerTestSuite) TestCreatePost_MissingTitle() {
	userID := uuid.NewString()
	payload, _ := json.Marshal(dto.CreatePostRequest{Content: "body only"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/posts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPostService.AssertNotCalled(suite.T(), "CreatePost", mock.Anything, mock.Anything, mock.Anything)
}

// --- Update / Delete Tests ---

func (suite *PostHandlerTestSuite) TestUpdatePost_Success() {
	userID := uuid.NewString()
	reqBody := dto.UpdatePostRequest{Title: "edited", Content: "revised"}

	suite.mockPostService.On("UpdatePost", mock.Anything, userID, int64(5), reqBody).Return(nil).Once()

	payload, err := json.Marshal(reqBody)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/posts/5", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestUpdatePost_ServiceError() {
	userID := uuid.NewString()
	reqBody := dto.UpdatePostRequest{Title: "edited", Content: "revised"}

	suite.mockPostService.On("UpdatePost", mock.Anything, userID, int64(5), reqBody).
		Return(errors.New("connection reset")).Once()

	payload, err := json.Marshal(reqBody)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/posts/5", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection reset")
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestUpdatePost_BadID() {
	userID := uuid.NewString()
	payload, _ := json.Marshal(dto.UpdatePostRequest{Title: "edited", Content: "revised"})
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/posts/not-a-number", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPostService.AssertNotCalled(suite.T(), "UpdatePost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostHandlerTestSuite) TestDeletePost_Success() {
	userID := uuid.NewString()

	suite.mockPostService.On("RemovePost", mock.Anything, userID, int64(8)).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", 8), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.OkResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.OK)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestDeletePost_NoToken() {
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/posts/8", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPostService.AssertNotCalled(suite.T(), "RemovePost", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestPostHandler(t *testing.T) {
	suite.Run(t, new(PostHandlerTestSuite))
}
