package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Krish-Depani/workhealth-admin/controllers"
	"github.com/Krish-Depani/workhealth-admin/database"
	"github.com/Krish-Depani/workhealth-admin/models"
	"github.com/Krish-Depani/workhealth-admin/routes"
	"github.com/Krish-Depani/workhealth-admin/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memDenylist is an in-memory stand-in for the Redis denylist.
type memDenylist struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

func newMemDenylist() *memDenylist {
	return &memDenylist{tokens: make(map[string]struct{})}
}

func (d *memDenylist) Deny(ctx context.Context, token string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tokens[token] = struct{}{}
	return nil
}

func (d *memDenylist) Contains(ctx context.Context, token string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, found := d.tokens[token]
	return found, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache memory database so every connection in the pool
	// sees the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *controllers.AuthController) {
	t.Helper()

	db := newTestDB(t)
	authController := controllers.NewAuthController(db, newMemDenylist())

	r := gin.New()
	routes.SetupRoutes(r,
		authController,
		controllers.NewEmployerController(db),
		controllers.NewConsultantController(db),
		controllers.NewEmployeeController(db),
		controllers.NewAssessmentController(db),
	)

	return r, db, authController
}

func performRequest(r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response body %q: %v", w.Body.String(), err)
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func createUser(t *testing.T, db *gorm.DB, username, password string, role models.Role, active bool) *models.User {
	t.Helper()

	stored := password
	if password != "" {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		stored = hashed
	}

	user := &models.User{
		Username:  &username,
		Password:  stored,
		Email:     username + "@example.com",
		Role:      role,
		FirstName: "Test",
		LastName:  "User",
		IsActive:  active,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func loginToken(t *testing.T, r http.Handler, username, password string) string {
	t.Helper()

	w := performRequest(r, http.MethodPost, "/api/auth/login", gin.H{
		"username": username,
		"password": password,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login as %s: status %d body %s", username, w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("login as %s: no token in response %s", username, w.Body.String())
	}
	return token
}
