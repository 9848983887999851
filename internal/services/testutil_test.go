package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"socialink_backend/database"
	"socialink_backend/internal/auth"
	"socialink_backend/internal/email"
	"socialink_backend/internal/models"
	"socialink_backend/internal/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// stubMailer records sent reset codes instead of dialing SMTP.
type stubMailer struct {
	mu    sync.Mutex
	codes []string
}

func (m *stubMailer) Send(e *email.Email) error { return nil }

func (m *stubMailer) SendPasswordResetCode(to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes = append(m.codes, code)
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache database keeps all pooled connections on the
	// same in-memory store.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type testEnv struct {
	db     *gorm.DB
	tokens *auth.TokenService
	mailer *stubMailer

	auth          AuthService
	oauth         OAuthService
	posts         PostService
	comments      CommentService
	users         UserService
	notifications NotificationService

	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	tokens := auth.NewTokenService("test-access", "test-refresh", time.Minute, time.Hour)
	mailer := &stubMailer{}
	container := NewServiceContainer(db, tokens, mailer)

	return &testEnv{
		db:               db,
		tokens:           tokens,
		mailer:           mailer,
		auth:             container.Auth,
		oauth:            container.OAuth,
		posts:            container.Posts,
		comments:         container.Comments,
		users:            container.Users,
		notifications:    container.Notifications,
		userRepo:         repositories.NewUserRepository(db),
		notificationRepo: repositories.NewNotificationRepository(db),
	}
}

func (e *testEnv) createUser(t *testing.T, emailAddr string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password1")
	require.NoError(t, err)

	user := &models.User{
		Email:     emailAddr,
		FirstName: "Test",
		LastName:  "User",
		Password:  hash,
	}
	require.NoError(t, e.userRepo.Create(user))
	return user
}

func (e *testEnv) createPost(t *testing.T, userID uint, content string) *models.Post {
	t.Helper()

	post := &models.Post{Content: content, UserID: userID}
	require.NoError(t, e.db.Create(post).Error)
	return post
}

func (e *testEnv) notificationCount(t *testing.T, userID uint) int64 {
	t.Helper()

	count, err := e.notificationRepo.CountByUser(userID)
	require.NoError(t, err)
	return count
}
