package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Authentication failure taxonomy. ErrAuthFailed signals an unexpected
// storage error; it is kept distinct from ErrInvalidCredentials and
// ErrInvalidToken so internal detail never reaches the caller.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserInactive       = errors.New("user inactive")
	ErrAuthFailed         = errors.New("authentication failed")
	ErrForbidden          = errors.New("insufficient permissions")
)

func respondDetail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}

func abortDetail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": message})
}
