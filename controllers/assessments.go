package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Krish-Depani/workhealth-admin/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AssessmentController struct {
	db *gorm.DB
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{
		db: db,
	}
}

type assessmentWithEmployee struct {
	models.Assessment
	EmployeeName string `json:"employee_name"`
}

// List handles GET /api/admin/assessments with an optional consultant_id
// filter. Each assessment is annotated with its subject's full name.
func (ac *AssessmentController) List(c *gin.Context) {
	query := ac.db.Model(&models.Assessment{})

	if param := c.Query("consultant_id"); param != "" {
		consultantID, err := strconv.Atoi(param)
		if err != nil {
			respondDetail(c, http.StatusBadRequest, "Invalid consultant_id")
			return
		}
		query = query.Where("consultant_id = ?", consultantID)
	}

	var assessments []models.Assessment
	if err := query.Find(&assessments).Error; err != nil {
		log.Println("Error fetching assessments:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to fetch assessments")
		return
	}

	userIDs := make([]uint, 0, len(assessments))
	for _, a := range assessments {
		userIDs = append(userIDs, a.UserID)
	}

	names := make(map[uint]string, len(userIDs))
	if len(userIDs) > 0 {
		var users []models.User
		if err := ac.db.Find(&users, userIDs).Error; err != nil {
			log.Println("Error fetching assessments:", err)
			respondDetail(c, http.StatusInternalServerError, "Failed to fetch assessments")
			return
		}
		for _, u := range users {
			names[u.ID] = u.FirstName + " " + u.LastName
		}
	}

	results := make([]assessmentWithEmployee, 0, len(assessments))
	for _, a := range assessments {
		name, found := names[a.UserID]
		if !found {
			name = "Unknown Employee"
		}
		results = append(results, assessmentWithEmployee{
			Assessment:   a,
			EmployeeName: name,
		})
	}

	c.JSON(http.StatusOK, results)
}
