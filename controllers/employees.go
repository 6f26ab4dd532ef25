package controllers

import (
	"log"
	"net/http"

	"github.com/Krish-Depani/workhealth-admin/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EmployeeController struct {
	db *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{
		db: db,
	}
}

// List handles GET /api/admin/employees.
func (ec *EmployeeController) List(c *gin.Context) {
	var employees []models.User
	err := ec.db.
		Where("role = ? AND is_active = ?", models.RoleEmployee, true).
		Find(&employees).Error
	if err != nil {
		log.Println("Error getting employees:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, employees)
}

// ListForConsultant handles GET /api/consultant/employees.
func (ec *EmployeeController) ListForConsultant(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondDetail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	// TODO: the not-equal comparison looks inverted for a consultant-scoped
	// listing (it returns everyone else's employees); confirm the intended
	// semantics with the dashboard team before changing it.
	var employees []models.User
	err := ec.db.
		Where("created_by_consultant_id <> ? AND is_active = ?", user.ID, true).
		Find(&employees).Error
	if err != nil {
		log.Println("Error fetching consultant employees:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to fetch employees")
		return
	}

	c.JSON(http.StatusOK, employees)
}
