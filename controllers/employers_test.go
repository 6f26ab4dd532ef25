package controllers_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/Krish-Depani/workhealth-admin/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func adminToken(t *testing.T, r http.Handler, db *gorm.DB) string {
	t.Helper()
	createUser(t, db, "admin", "adminpass", models.RoleAdmin, true)
	return loginToken(t, r, "admin", "adminpass")
}

func TestListEmployersActiveOnly(t *testing.T) {
	r, db, _ := newTestRouter(t)
	token := adminToken(t, r, db)

	for _, e := range []models.Employer{
		{Name: "Acme", IsActive: true},
		{Name: "Globex", IsActive: true},
		{Name: "Defunct", IsActive: false},
	} {
		if err := db.Create(&e).Error; err != nil {
			t.Fatalf("create employer: %v", err)
		}
	}

	w := performRequest(r, http.MethodGet, "/api/admin/employers", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var employers []models.Employer
	decodeJSON(t, w, &employers)
	if len(employers) != 2 {
		t.Fatalf("got %d employers, want 2", len(employers))
	}
	for _, e := range employers {
		if e.Name == "Defunct" {
			t.Error("inactive employer in listing")
		}
	}
}

func TestCreateEmployerRequiresName(t *testing.T) {
	r, db, _ := newTestRouter(t)
	token := adminToken(t, r, db)

	w := performRequest(r, http.MethodPost, "/api/admin/employers", gin.H{
		"industry": "Mining",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	body := decodeBody(t, w)
	if body["detail"] != "Employer name is required" {
		t.Errorf("detail = %v", body["detail"])
	}
}

func TestCreateEmployer(t *testing.T) {
	r, db, _ := newTestRouter(t)
	token := adminToken(t, r, db)

	w := performRequest(r, http.MethodPost, "/api/admin/employers", gin.H{
		"name":      "Acme",
		"industry":  "Mining",
		"locations": []string{"Sydney", "Perth"},
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var employer models.Employer
	if err := db.Where("name = ?", "Acme").First(&employer).Error; err != nil {
		t.Fatalf("employer not persisted: %v", err)
	}
	if employer.Country != "Australia" {
		t.Errorf("country = %q, want default Australia", employer.Country)
	}
	if len(employer.Locations) != 2 {
		t.Errorf("locations = %v", employer.Locations)
	}
	if !employer.IsActive {
		t.Error("new employer should be active")
	}
}

func TestUpdateEmployerPatch(t *testing.T) {
	r, db, _ := newTestRouter(t)
	token := adminToken(t, r, db)

	employer := models.Employer{Name: "Acme", Industry: "Mining", IsActive: true}
	if err := db.Create(&employer).Error; err != nil {
		t.Fatalf("create employer: %v", err)
	}

	w := performRequest(r, http.MethodPut, "/api/admin/employers/1", gin.H{
		"industry": "Logistics",
		"unknown":  "ignored",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var updated models.Employer
	if err := db.First(&updated, employer.ID).Error; err != nil {
		t.Fatalf("reload employer: %v", err)
	}
	if updated.Industry != "Logistics" {
		t.Errorf("industry = %q, want Logistics", updated.Industry)
	}
	if updated.Name != "Acme" {
		t.Errorf("name changed by patch: %q", updated.Name)
	}
}

func TestUpdateEmployerNotFound(t *testing.T) {
	r, db, _ := newTestRouter(t)
	token := adminToken(t, r, db)

	w := performRequest(r, http.MethodPut, "/api/admin/employers/42", gin.H{
		"industry": "Logistics",
	}, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteEmployerNotFound(t *testing.T) {
	r, db, _ := newTestRouter(t)
	token := adminToken(t, r, db)

	w := performRequest(r, http.MethodDelete, "/api/admin/employers/42", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	body := decodeBody(t, w)
	if body["detail"] != "Employer not found" {
		t.Errorf("detail = %v, want %q", body["detail"], "Employer not found")
	}
}

func TestEmployerNonNumericID(t *testing.T) {
	r, db, _ := newTestRouter(t)
	token := adminToken(t, r, db)

	employer := models.Employer{Name: "Acme", IsActive: true}
	if err := db.Create(&employer).Error; err != nil {
		t.Fatalf("create employer: %v", err)
	}

	// A non-numeric id must 404, never reach the database as a raw
	// expression.
	for _, id := range []string{"abc", "0 OR 1=1"} {
		w := performRequest(r, http.MethodDelete, "/api/admin/employers/"+url.PathEscape(id), nil, token)
		if w.Code != http.StatusNotFound {
			t.Errorf("DELETE id %q: status = %d, want 404", id, w.Code)
		}

		w = performRequest(r, http.MethodPut, "/api/admin/employers/"+url.PathEscape(id), gin.H{
			"industry": "Logistics",
		}, token)
		if w.Code != http.StatusNotFound {
			t.Errorf("PUT id %q: status = %d, want 404", id, w.Code)
		}
	}

	var count int64
	db.Model(&models.Employer{}).Count(&count)
	if count != 1 {
		t.Errorf("employer count = %d, want 1; hostile id reached the database", count)
	}
}

func TestDeleteEmployer(t *testing.T) {
	r, db, _ := newTestRouter(t)
	token := adminToken(t, r, db)

	employer := models.Employer{Name: "Acme", IsActive: true}
	if err := db.Create(&employer).Error; err != nil {
		t.Fatalf("create employer: %v", err)
	}

	w := performRequest(r, http.MethodDelete, "/api/admin/employers/1", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	err := db.First(&models.Employer{}, employer.ID).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("employer row should be hard-deleted, got %v", err)
	}
}
