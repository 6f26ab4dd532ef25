package models

import (
	"time"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleEmployer   Role = "employer"
	RoleConsultant Role = "consultant"
	RoleEmployee   Role = "employee"
)

type User struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	Username  *string `gorm:"uniqueIndex" json:"username,omitempty"`
	Password  string  `json:"-"`
	Email     string  `gorm:"not null" json:"email"`
	Role      Role    `gorm:"not null;default:consultant" json:"role"`
	FirstName string  `gorm:"not null" json:"first_name"`
	LastName  string  `gorm:"not null" json:"last_name"`

	// Employee-specific fields
	DobYear               *int    `json:"dob_year,omitempty"`
	EmployeeID            *string `gorm:"uniqueIndex" json:"employee_id,omitempty"`
	Subclient             string  `json:"subclient,omitempty"`
	BusinessUnit          string  `json:"business_unit,omitempty"`
	Location              string  `json:"location,omitempty"`
	JobRole               string  `json:"job_role,omitempty"`
	CreatedByConsultantID *uint   `json:"created_by_consultant_id,omitempty"`

	// Consultant-specific fields
	AssignedLocations []string   `gorm:"serializer:json" json:"assigned_locations"`
	Invited           bool       `gorm:"default:false" json:"invited"`
	InvitedAt         *time.Time `json:"invited_at,omitempty"`
	HasLoggedIn       bool       `gorm:"default:false" json:"has_logged_in"`

	// Common organizational reference
	EmployerID *uint `json:"employer_id,omitempty"`

	Phone          string    `json:"phone,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	Qualifications string    `json:"qualifications,omitempty"`
	LicenseNumber  string    `json:"license_number,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
