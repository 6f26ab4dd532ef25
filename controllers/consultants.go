package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Krish-Depani/workhealth-admin/models"
	"github.com/Krish-Depani/workhealth-admin/utils"
	"github.com/Krish-Depani/workhealth-admin/validators"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ConsultantController struct {
	db *gorm.DB
}

func NewConsultantController(db *gorm.DB) *ConsultantController {
	return &ConsultantController{
		db: db,
	}
}

// List handles GET /api/admin/consultants.
func (cc *ConsultantController) List(c *gin.Context) {
	var consultants []models.User
	err := cc.db.
		Where("role = ? AND is_active = ?", models.RoleConsultant, true).
		Find(&consultants).Error
	if err != nil {
		log.Println("Error getting consultants:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to fetch consultants")
		return
	}

	c.JSON(http.StatusOK, consultants)
}

// Create handles POST /api/admin/consultants.
func (cc *ConsultantController) Create(c *gin.Context) {
	req, ok := validators.ValidateConsultantCreateRequest(c)
	if !ok {
		return
	}

	role := models.RoleConsultant
	if req.Role != "" {
		role = models.Role(req.Role)
		if role != models.RoleAdmin && role != models.RoleEmployer &&
			role != models.RoleConsultant && role != models.RoleEmployee {
			respondDetail(c, http.StatusBadRequest, "Invalid role")
			return
		}
	}

	if detail, ok := cc.checkAssignedLocations(req.EmployerID, req.AssignedLocations); !ok {
		respondDetail(c, http.StatusBadRequest, detail)
		return
	}

	var existing models.User
	err := cc.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		respondDetail(c, http.StatusBadRequest, "Email already exists. Please use a different email address.")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Error creating consultant:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to create consultant")
		return
	}

	consultant := models.User{
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Phone:             req.Phone,
		Role:              role,
		Specialization:    req.Specialization,
		Qualifications:    req.Qualifications,
		LicenseNumber:     req.LicenseNumber,
		City:              req.City,
		State:             req.State,
		EmployerID:        req.EmployerID,
		AssignedLocations: req.AssignedLocations,
		IsActive:          true,
	}
	if consultant.AssignedLocations == nil {
		consultant.AssignedLocations = []string{}
	}

	if err := cc.db.Create(&consultant).Error; err != nil {
		log.Println("Error creating consultant:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to create consultant")
		return
	}

	c.JSON(http.StatusOK, consultant)
}

// Update handles PUT /api/admin/consultants/:id. Patch semantics: only
// fields present in the request body change. A nil or empty password leaves
// the stored credential untouched; a non-empty one is re-hashed.
func (cc *ConsultantController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondDetail(c, http.StatusNotFound, "Consultant not found")
		return
	}

	var consultant models.User
	if err := cc.db.First(&consultant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondDetail(c, http.StatusNotFound, "Consultant not found")
			return
		}
		log.Println("Error updating consultant:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to update consultant")
		return
	}

	req, ok := validators.ValidateConsultantUpdateRequest(c)
	if !ok {
		return
	}

	if req.EmployerID != nil || req.AssignedLocations != nil {
		employerID := consultant.EmployerID
		if req.EmployerID != nil {
			employerID = req.EmployerID
		}
		assigned := consultant.AssignedLocations
		if req.AssignedLocations != nil {
			assigned = *req.AssignedLocations
		}
		if detail, ok := cc.checkAssignedLocations(employerID, assigned); !ok {
			respondDetail(c, http.StatusBadRequest, detail)
			return
		}
	}

	if req.Password != nil && *req.Password != "" {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			log.Println("Error updating consultant:", err)
			respondDetail(c, http.StatusInternalServerError, "Failed to update consultant")
			return
		}
		consultant.Password = hashed
	}

	applyConsultantPatch(&consultant, req)

	if err := cc.db.Save(&consultant).Error; err != nil {
		log.Println("Error updating consultant:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to update consultant")
		return
	}

	c.JSON(http.StatusOK, consultant)
}

// Delete handles DELETE /api/admin/consultants/:id.
func (cc *ConsultantController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondDetail(c, http.StatusNotFound, "Consultant not found")
		return
	}

	var consultant models.User
	if err := cc.db.First(&consultant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondDetail(c, http.StatusNotFound, "Consultant not found")
			return
		}
		log.Println("Error deleting consultant:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to delete consultant")
		return
	}

	if err := cc.db.Delete(&consultant).Error; err != nil {
		log.Println("Error deleting consultant:", err)
		respondDetail(c, http.StatusInternalServerError, "Failed to delete consultant")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Consultant deleted successfully"})
}

// checkAssignedLocations verifies that every assigned location exists in the
// target employer's locations list. On failure the returned detail names
// exactly the invalid entries.
func (cc *ConsultantController) checkAssignedLocations(employerID *uint, assigned []string) (string, bool) {
	if employerID == nil || len(assigned) == 0 {
		return "", true
	}

	var employer models.Employer
	if err := cc.db.First(&employer, *employerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "Selected employer not found", false
		}
		log.Println("Error validating assigned locations:", err)
		return "Selected employer not found", false
	}

	known := make(map[string]bool, len(employer.Locations))
	for _, loc := range employer.Locations {
		known[loc] = true
	}

	var invalid []string
	for _, loc := range assigned {
		if !known[loc] {
			invalid = append(invalid, loc)
		}
	}

	if len(invalid) > 0 {
		return "Invalid locations for selected employer: " + strings.Join(invalid, ", "), false
	}
	return "", true
}

func applyConsultantPatch(consultant *models.User, req *validators.ConsultantUpdateRequest) {
	if req.Email != nil {
		consultant.Email = *req.Email
	}
	if req.FirstName != nil {
		consultant.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		consultant.LastName = *req.LastName
	}
	if req.Phone != nil {
		consultant.Phone = *req.Phone
	}
	if req.Username != nil {
		consultant.Username = req.Username
	}
	if req.Specialization != nil {
		consultant.Specialization = *req.Specialization
	}
	if req.Qualifications != nil {
		consultant.Qualifications = *req.Qualifications
	}
	if req.LicenseNumber != nil {
		consultant.LicenseNumber = *req.LicenseNumber
	}
	if req.City != nil {
		consultant.City = *req.City
	}
	if req.State != nil {
		consultant.State = *req.State
	}
	if req.EmployerID != nil {
		consultant.EmployerID = req.EmployerID
	}
	if req.AssignedLocations != nil {
		consultant.AssignedLocations = *req.AssignedLocations
	}
	if req.Invited != nil {
		consultant.Invited = *req.Invited
	}
	if req.InvitedAt != nil {
		consultant.InvitedAt = req.InvitedAt
	}
	if req.IsActive != nil {
		consultant.IsActive = *req.IsActive
	}
}
