package database

import (
	"errors"

	"github.com/Krish-Depani/workhealth-admin/models"
	"github.com/Krish-Depani/workhealth-admin/utils"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Employer{},
		&models.Session{},
		&models.Assessment{},
		&models.AssessmentSession{},
		&models.Exercise{},
		&models.JobRole{},
		&models.Permission{},
	)
}

// EnsureInitialAdmin creates the bootstrap admin account if no user with the
// given username exists yet.
func EnsureInitialAdmin(db *gorm.DB, username, password, email string) error {
	if password == "" {
		return nil
	}

	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:  &username,
		Password:  hashed,
		Email:     email,
		Role:      models.RoleAdmin,
		FirstName: "System",
		LastName:  "Admin",
		IsActive:  true,
	}
	return db.Create(&admin).Error
}
