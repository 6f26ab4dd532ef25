package models

import (
	"time"
)

type Employer struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Industry     string `json:"industry,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Postcode     string `json:"postcode,omitempty"`
	Country      string `gorm:"default:Australia" json:"country"`
	ABN          string `json:"abn,omitempty"`
	Website      string `json:"website,omitempty"`

	Subclients    []string `gorm:"serializer:json" json:"subclients"`
	BusinessUnits []string `gorm:"serializer:json" json:"business_units"`
	Locations     []string `gorm:"serializer:json" json:"locations"`
	JobRoles      []string `gorm:"serializer:json" json:"job_roles"`

	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
