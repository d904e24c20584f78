package api

import (
	"Atrium/internal/api/config"
	"Atrium/internal/api/handler"
	"Atrium/internal/api/middleware"
	"Atrium/internal/model"
	"Atrium/internal/pkg/consts"
	"Atrium/internal/pkg/database"
	"Atrium/internal/pkg/security"
	"Atrium/internal/repository"
	"Atrium/internal/service"
	"bytes"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

const testOperatorEmail = "operator@example.com"

func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.Cfg = &config.Config{
		Admin: config.AdminConfig{OperatorEmail: testOperatorEmail},
	}
	security.Init("test-secret")

	dbName := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err = database.Migrate(db); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	userRepo := repository.NewUserRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	businessRepo := repository.NewBusinessDataRepo(db)
	linkRepo := repository.NewYouTubeLinkRepo(db)

	mailService := service.NewMailService()
	adminService := service.NewAdminService(userRepo, profileRepo, mailService, testOperatorEmail)

	handlers := &HandlersGroup{
		AuthHandler:     handler.NewAuthHandler(service.NewAuthService(userRepo)),
		MemberHandler:   handler.NewMemberHandler(service.NewMemberService(userRepo, profileRepo)),
		BusinessHandler: handler.NewBusinessHandler(service.NewBusinessService(businessRepo)),
		AdminHandler:    handler.NewAdminHandler(adminService),
		YouTubeHandler:  handler.NewYouTubeHandler(service.NewYouTubeService(linkRepo)),
	}

	router := SetupRouter(handlers,
		middleware.AuthMiddleware(userRepo),
		middleware.CheckAdmin(profileRepo, testOperatorEmail))
	return router, db
}

// createTestUser 直接落库建用户，membershipType 为空时不建档案
func createTestUser(t *testing.T, db *gorm.DB, email string, status string, membershipType string) *model.User {
	t.Helper()

	hash, err := security.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &model.User{
		Email:    email,
		Password: hash,
		Name:     "测试用户",
		Status:   status,
	}
	if err = db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	if membershipType != "" {
		profile := &model.MemberProfile{
			UserID:         user.ID,
			MembershipType: membershipType,
			Status:         consts.ProfileStatusActive,
		}
		if err = db.Create(profile).Error; err != nil {
			t.Fatalf("create profile: %v", err)
		}
	}
	return user
}

func tokenFor(t *testing.T, user *model.User) string {
	t.Helper()
	token, err := security.GenerateToken(user.ID, user.Email)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, router *gin.Engine, method string, path string, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	result := make(map[string]any)
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response body %q: %v", w.Body.String(), err)
	}
	return result
}
