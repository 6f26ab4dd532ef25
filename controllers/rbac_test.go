package controllers_test

import (
	"testing"

	"github.com/Krish-Depani/workhealth-admin/controllers"
	"github.com/Krish-Depani/workhealth-admin/models"
)

func TestAuthorizeRole(t *testing.T) {
	admin := &models.User{Role: models.RoleAdmin}
	consultant := &models.User{Role: models.RoleConsultant}

	if err := controllers.AuthorizeRole(admin, models.RoleAdmin); err != nil {
		t.Errorf("admin against [admin]: %v", err)
	}
	if err := controllers.AuthorizeRole(consultant, models.RoleAdmin, models.RoleConsultant); err != nil {
		t.Errorf("consultant against [admin consultant]: %v", err)
	}
	if err := controllers.AuthorizeRole(consultant, models.RoleAdmin); err == nil {
		t.Error("consultant against [admin]: expected error")
	}
	if err := controllers.AuthorizeRole(admin); err == nil {
		t.Error("empty allow-list: expected error")
	}
}
