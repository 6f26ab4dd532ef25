package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Krish-Depani/workhealth-admin/models"
	"github.com/Krish-Depani/workhealth-admin/validators"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EmployerController struct {
	db *gorm.DB
}

func NewEmployerController(db *gorm.DB) *EmployerController {
	return &EmployerController{
		db: db,
	}
}

// List handles GET /api/admin/employers. Active employers only, no
// pagination.
func (ec *EmployerController) List(c *gin.Context) {
	var employers []models.Employer
	if err := ec.db.Where("is_active = ?", true).Find(&employers).Error; err != nil {
		log.Println("Error getting employers:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to fetch employers")
		return
	}

	c.JSON(http.StatusOK, employers)
}

// Create handles POST /api/admin/employers.
func (ec *EmployerController) Create(c *gin.Context) {
	req, ok := validators.ValidateEmployerCreateRequest(c)
	if !ok {
		return
	}

	country := req.Country
	if country == "" {
		country = "Australia"
	}

	employer := models.Employer{
		Name:          req.Name,
		Industry:      req.Industry,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Postcode:      req.Postcode,
		Country:       country,
		ABN:           req.ABN,
		Website:       req.Website,
		Subclients:    req.Subclients,
		BusinessUnits: req.BusinessUnits,
		Locations:     req.Locations,
		JobRoles:      req.JobRoles,
		IsActive:      true,
	}

	if err := ec.db.Create(&employer).Error; err != nil {
		log.Println("Error creating employer:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to create employer")
		return
	}

	c.JSON(http.StatusOK, employer)
}

// Update handles PUT /api/admin/employers/:id. Only fields present in the
// patch are applied.
func (ec *EmployerController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondDetail(c, http.StatusNotFound, "Employer not found")
		return
	}

	var employer models.Employer
	if err := ec.db.First(&employer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondDetail(c, http.StatusNotFound, "Employer not found")
			return
		}
		log.Println("Error updating employer:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to update employer")
		return
	}

	req, ok := validators.ValidateEmployerUpdateRequest(c)
	if !ok {
		return
	}

	applyEmployerPatch(&employer, req)

	if err := ec.db.Save(&employer).Error; err != nil {
		log.Println("Error updating employer:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to update employer")
		return
	}

	c.JSON(http.StatusOK, employer)
}

// Delete handles DELETE /api/admin/employers/:id. Hard delete by primary
// key.
func (ec *EmployerController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondDetail(c, http.StatusNotFound, "Employer not found")
		return
	}

	var employer models.Employer
	if err := ec.db.First(&employer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondDetail(c, http.StatusNotFound, "Employer not found")
			return
		}
		log.Println("Error deleting employer:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to delete employer")
		return
	}

	if err := ec.db.Delete(&employer).Error; err != nil {
		log.Println("Error deleting employer:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to delete employer")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employer deleted successfully",
	})
}

func applyEmployerPatch(employer *models.Employer, req *validators.EmployerUpdateRequest) {
	if req.Name != nil {
		employer.Name = *req.Name
	}
	if req.Industry != nil {
		employer.Industry = *req.Industry
	}
	if req.ContactEmail != nil {
		employer.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		employer.ContactPhone = *req.ContactPhone
	}
	if req.Address != nil {
		employer.Address = *req.Address
	}
	if req.City != nil {
		employer.City = *req.City
	}
	if req.State != nil {
		employer.State = *req.State
	}
	if req.Postcode != nil {
		employer.Postcode = *req.Postcode
	}
	if req.Country != nil {
		employer.Country = *req.Country
	}
	if req.ABN != nil {
		employer.ABN = *req.ABN
	}
	if req.Website != nil {
		employer.Website = *req.Website
	}
	if req.Subclients != nil {
		employer.Subclients = *req.Subclients
	}
	if req.BusinessUnits != nil {
		employer.BusinessUnits = *req.BusinessUnits
	}
	if req.Locations != nil {
		employer.Locations = *req.Locations
	}
	if req.JobRoles != nil {
		employer.JobRoles = *req.JobRoles
	}
	if req.IsActive != nil {
		employer.IsActive = *req.IsActive
	}
}
