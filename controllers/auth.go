package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Krish-Depani/workhealth-admin/models"
	"github.com/Krish-Depani/workhealth-admin/utils"
	"github.com/Krish-Depani/workhealth-admin/validators"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionDuration is the fixed lifetime of a login session.
const SessionDuration = 24 * time.Hour

const userContextKey = "currentUser"

// TokenDenylist is the shared revocation check consulted before any session
// lookup. The production implementation is database.RedisClient.
type TokenDenylist interface {
	Deny(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

type AuthController struct {
	db       *gorm.DB
	denylist TokenDenylist
}

func NewAuthController(db *gorm.DB, denylist TokenDenylist) *AuthController {
	return &AuthController{
		db:       db,
		denylist: denylist,
	}
}

// Authenticate verifies a username/password pair and creates a session with
// a 24-hour expiry. Legacy plain-text credentials are accepted once and
// re-hashed inside the same transaction. The returned user has its stored
// credential blanked.
func (ac *AuthController) Authenticate(ctx context.Context, username, password string) (*models.User, string, error) {
	tx := ac.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		log.Println("Authentication error:", tx.Error)
		return nil, "", ErrAuthFailed
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		log.Println("Authentication error:", err)
		return nil, "", ErrAuthFailed
	}

	valid, legacy := utils.VerifyPassword(user.Password, password)
	if !valid {
		tx.Rollback()
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsActive {
		tx.Rollback()
		return nil, "", ErrInvalidCredentials
	}

	updates := map[string]interface{}{"has_logged_in": true}
	if legacy {
		// Migration path: a matching legacy credential is re-hashed on the
		// spot so the plain-text form never survives a successful login.
		hashed, err := utils.HashPassword(password)
		if err != nil {
			tx.Rollback()
			log.Println("Authentication error:", err)
			return nil, "", ErrAuthFailed
		}
		updates["password"] = hashed
	}
	if err := tx.Model(&user).Updates(updates).Error; err != nil {
		tx.Rollback()
		log.Println("Authentication error:", err)
		return nil, "", ErrAuthFailed
	}

	token, err := utils.GenerateSessionToken()
	if err != nil {
		tx.Rollback()
		log.Println("Authentication error:", err)
		return nil, "", ErrAuthFailed
	}

	now := time.Now()
	session := models.Session{
		Token:        token,
		UserID:       user.ID,
		CreatedAt:    now,
		LastAccessed: now,
		ExpiresAt:    now.Add(SessionDuration),
		IsActive:     true,
	}
	if err := tx.Create(&session).Error; err != nil {
		tx.Rollback()
		log.Println("Authentication error:", err)
		return nil, "", ErrAuthFailed
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Authentication error:", err)
		return nil, "", ErrAuthFailed
	}

	user.Password = ""
	return &user, token, nil
}

// ValidateToken resolves a bearer token to its user. The denylist is checked
// first; a revoked token fails even while its session row is still active.
func (ac *AuthController) ValidateToken(ctx context.Context, token string) (*models.User, error) {
	denied, err := ac.denylist.Contains(ctx, token)
	if err != nil {
		log.Println("Token validation error:", err)
		return nil, ErrAuthFailed
	}
	if denied {
		return nil, ErrInvalidToken
	}

	var session models.Session
	err = ac.db.WithContext(ctx).
		Where("token = ? AND is_active = ? AND expires_at > ?", token, true, time.Now()).
		Order("created_at DESC").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		log.Println("Token validation error:", err)
		return nil, ErrAuthFailed
	}

	if err := ac.db.WithContext(ctx).Model(&session).Update("last_accessed", time.Now()).Error; err != nil {
		log.Println("Token validation error:", err)
		return nil, ErrAuthFailed
	}

	var user models.User
	err = ac.db.WithContext(ctx).First(&user, session.UserID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Token validation error:", err)
		return nil, ErrAuthFailed
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || !user.IsActive {
		ac.db.WithContext(ctx).Model(&session).Update("is_active", false)
		return nil, ErrUserInactive
	}

	user.Password = ""
	return &user, nil
}

// DestroyToken deactivates the matching session row and always records the
// token on the denylist. Idempotent: a second call is a no-op.
func (ac *AuthController) DestroyToken(ctx context.Context, token string) error {
	err := ac.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("token = ?", token).
		Update("is_active", false).Error
	if err != nil {
		log.Println("Token destruction error:", err)
		return err
	}

	if err := ac.denylist.Deny(ctx, token, SessionDuration); err != nil {
		log.Println("Token destruction error:", err)
		return err
	}

	return nil
}

// Login handles POST /api/auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	req, ok := validators.ValidateLoginRequest(c)
	if !ok {
		return
	}

	user, token, err := ac.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respondDetail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondDetail(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// ValidateSession handles POST /api/auth/validate-session.
func (ac *AuthController) ValidateSession(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondDetail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  user,
	})
}

// Me handles GET /api/auth/me.
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondDetail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout handles POST /api/auth/logout. The token is destroyed without being
// validated first, so logging out an already-dead token still succeeds.
func (ac *AuthController) Logout(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		respondDetail(c, http.StatusUnauthorized, "Authorization header missing")
		return
	}

	if err := ac.DestroyToken(c.Request.Context(), token); err != nil {
		respondDetail(c, http.StatusInternalServerError, "Logout failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// LegacyLogout handles GET /api/auth/logout for older clients; a missing
// Authorization header is tolerated.
func (ac *AuthController) LegacyLogout(c *gin.Context) {
	if token, ok := bearerToken(c); ok {
		if err := ac.DestroyToken(c.Request.Context(), token); err != nil {
			respondDetail(c, http.StatusInternalServerError, "Logout failed")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// AuthMiddleware extracts and validates the bearer token, then stores the
// resolved user in the request context.
func (ac *AuthController) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abortDetail(c, http.StatusUnauthorized, "Authorization header missing")
			return
		}

		user, err := ac.ValidateToken(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, ErrUserInactive):
				abortDetail(c, http.StatusUnauthorized, "User inactive")
			case errors.Is(err, ErrInvalidToken):
				abortDetail(c, http.StatusUnauthorized, "Invalid or expired token")
			default:
				abortDetail(c, http.StatusUnauthorized, "Authentication failed")
			}
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// AuthorizeRole checks a user's role against an allow-list. Pure function,
// no side effects.
func AuthorizeRole(user *models.User, allowed ...models.Role) error {
	for _, role := range allowed {
		if user.Role == role {
			return nil
		}
	}
	return ErrForbidden
}

// RequireRole rejects requests whose authenticated user is not in the
// allowed role set. It must run after AuthMiddleware.
func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortDetail(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		if err := AuthorizeRole(user, allowed...); err != nil {
			abortDetail(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

// CurrentUser returns the user placed in the context by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", false
	}
	return token, true
}
