package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"socialink_backend/database"
	"socialink_backend/internal/auth"
	"socialink_backend/internal/email"
	"socialink_backend/internal/middleware"
	"socialink_backend/internal/oauth"
	"socialink_backend/internal/services"
	"socialink_backend/internal/storage"
	"socialink_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type noopMailer struct{}

func (noopMailer) Send(*email.Email) error                 { return nil }
func (noopMailer) SendPasswordResetCode(_, _ string) error { return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	tokens := auth.NewTokenService("test-access", "test-refresh", time.Minute, time.Hour)
	container := services.NewServiceContainer(db, tokens, noopMailer{})

	store, err := storage.NewStorage(storage.Config{
		BasePath: t.TempDir(),
		BaseURL:  "/uploads",
	})
	require.NoError(t, err)

	google := oauth.NewGoogleClient(oauth.GoogleConfig{StateSecret: "test-state"})
	appHandlers := NewAppHandlers(container, google, store, validator.New())

	// A slim copy of the production route table, without the static mount.
	router := gin.New()
	authRequired := middleware.AuthMiddleware(tokens)
	authOptional := middleware.OptionalAuthMiddleware(tokens)

	api := router.Group("/")
	appHandlers.Auth.RegisterRoutes(api, authRequired)
	appHandlers.OAuth.RegisterRoutes(api)
	appHandlers.Posts.RegisterRoutes(api, authRequired, authOptional)
	appHandlers.Comments.RegisterRoutes(api, authRequired, authOptional)
	appHandlers.Users.RegisterRoutes(api, authRequired, authOptional)
	appHandlers.Notifications.RegisterRoutes(api, authRequired)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signUp(t *testing.T, router *gin.Engine, emailAddr string) map[string]interface{} {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/auth/signup", map[string]interface{}{
		"email":           emailAddr,
		"firstName":       "A",
		"lastName":        "B",
		"password":        "password1",
		"confirmPassword": "password1",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSignUpEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := signUp(t, router, "a@x.com")

	user, ok := resp["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotContains(t, user, "password")
	assert.NotEmpty(t, resp["accessToken"])
	assert.NotEmpty(t, resp["refreshToken"])
}

func TestSignUpValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/auth/signup", map[string]interface{}{
		"email":           "not-an-email",
		"firstName":       "A",
		"lastName":        "B",
		"password":        "password1",
		"confirmPassword": "password1",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshTokenEndpoint(t *testing.T) {
	router := newTestRouter(t)
	resp := signUp(t, router, "a@x.com")

	refresh, _ := resp["refreshToken"].(string)
	require.NotEmpty(t, refresh)

	w := doJSON(t, router, http.MethodPost, "/auth/refreshToken/"+refresh, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rotated map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rotated))
	assert.NotEmpty(t, rotated["accessToken"])
	assert.NotEqual(t, refresh, rotated["refreshToken"])
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/auth/refreshToken/garbage", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignOutRequiresBearer(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/auth/signout", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	resp := signUp(t, router, "a@x.com")
	access, _ := resp["accessToken"].(string)

	w = doJSON(t, router, http.MethodPost, "/auth/signout", nil, access)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestToggleLikeEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	author := signUp(t, router, "author@x.com")
	authorToken, _ := author["accessToken"].(string)
	liker := signUp(t, router, "liker@x.com")
	likerToken, _ := liker["accessToken"].(string)

	// Author creates a post (JSON-less multipart is awkward here, so use
	// the form field directly).
	req := httptest.NewRequest(http.MethodPost, "/posts/create",
		bytes.NewReader([]byte("content=hello+world")))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+authorToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var post map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	postID := uint(post["id"].(float64))

	path := fmt.Sprintf("/posts/%d/toggle-like", postID)

	w = doJSON(t, router, http.MethodPost, path, nil, likerToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":true`)

	w = doJSON(t, router, http.MethodPost, path, nil, likerToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":false`)

	// Anonymous toggle is rejected.
	w = doJSON(t, router, http.MethodPost, path, nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFeedEndpointAnonymous(t *testing.T) {
	router := newTestRouter(t)
	signUp(t, router, "author@x.com")

	w := doJSON(t, router, http.MethodGet, "/posts/all?limit=10", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var feed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	assert.Contains(t, feed, "posts")
	assert.Contains(t, feed, "totalCount")
	assert.Contains(t, feed, "hasNextPage")
}
