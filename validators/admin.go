package validators

import (
	"time"

	"github.com/gin-gonic/gin"
)

type EmployerCreateRequest struct {
	Name         string `json:"name" validate:"required"`
	Industry     string `json:"industry"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Postcode     string `json:"postcode"`
	Country      string `json:"country"`
	ABN          string `json:"abn"`
	Website      string `json:"website"`

	Subclients    []string `json:"subclients"`
	BusinessUnits []string `json:"business_units"`
	Locations     []string `json:"locations"`
	JobRoles      []string `json:"job_roles"`
}

// EmployerUpdateRequest is an explicit patch structure: only non-nil fields
// are applied. Unknown JSON fields are ignored by decoding.
type EmployerUpdateRequest struct {
	Name         *string `json:"name"`
	Industry     *string `json:"industry"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Postcode     *string `json:"postcode"`
	Country      *string `json:"country"`
	ABN          *string `json:"abn"`
	Website      *string `json:"website"`

	Subclients    *[]string `json:"subclients"`
	BusinessUnits *[]string `json:"business_units"`
	Locations     *[]string `json:"locations"`
	JobRoles      *[]string `json:"job_roles"`

	IsActive *bool `json:"is_active"`
}

type ConsultantCreateRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`

	Specialization string `json:"specialization"`
	Qualifications string `json:"qualifications"`
	LicenseNumber  string `json:"license_number"`
	City           string `json:"city"`
	State          string `json:"state"`

	EmployerID        *uint    `json:"employer_id"`
	AssignedLocations []string `json:"assigned_locations"`
}

// ConsultantUpdateRequest is the consultant patch structure. Password has
// dedicated semantics: nil or empty means no change, non-empty is re-hashed.
type ConsultantUpdateRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`

	Username *string `json:"username"`
	Password *string `json:"password"`

	Specialization *string `json:"specialization"`
	Qualifications *string `json:"qualifications"`
	LicenseNumber  *string `json:"license_number"`
	City           *string `json:"city"`
	State          *string `json:"state"`

	EmployerID        *uint      `json:"employer_id"`
	AssignedLocations *[]string  `json:"assigned_locations"`
	Invited           *bool      `json:"invited"`
	InvitedAt         *time.Time `json:"invited_at"`
	IsActive          *bool      `json:"is_active"`
}

func ValidateEmployerCreateRequest(c *gin.Context) (*EmployerCreateRequest, bool) {
	var req EmployerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload")
		return nil, false
	}

	if errs := Validate(req); len(errs) > 0 {
		badRequest(c, "Employer name is required")
		return nil, false
	}

	return &req, true
}

func ValidateEmployerUpdateRequest(c *gin.Context) (*EmployerUpdateRequest, bool) {
	var req EmployerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload")
		return nil, false
	}
	return &req, true
}

func ValidateConsultantCreateRequest(c *gin.Context) (*ConsultantCreateRequest, bool) {
	var req ConsultantCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload")
		return nil, false
	}

	if errs := Validate(req); len(errs) > 0 {
		badRequest(c, "Email, first_name and last_name are required")
		return nil, false
	}

	return &req, true
}

func ValidateConsultantUpdateRequest(c *gin.Context) (*ConsultantUpdateRequest, bool) {
	var req ConsultantUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload")
		return nil, false
	}
	return &req, true
}
