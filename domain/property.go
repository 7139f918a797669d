package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Errors raised by the property service. The controller maps them to HTTP
// statuses and the error text goes straight into the response body.
var (
	ErrPropertyNotFound     = errors.New("Property not found")
	ErrNameLocationRequired = errors.New("Name and location are required")
)

// Property represents a real-estate listing managed by this API.
// Brochure, Image and Model3D are opaque references (usually URLs) to
// assets stored elsewhere; they are nullable and this service never
// dereferences them.
type Property struct {
	ID                  string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name                string    `gorm:"not null" json:"name"`
	Location            string    `gorm:"not null" json:"location"`
	Brochure            *string   `json:"brochure"`
	Image               *string   `json:"image"`
	Model3D             *string   `gorm:"column:model3d" json:"model3d"`
	AvailableApartments int       `gorm:"default:0" json:"availableApartments"`
	Status              string    `gorm:"type:varchar(50);default:'available'" json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// TableName specifies the table name used by GORM.
func (Property) TableName() string {
	return "properties"
}

// BeforeCreate assigns the opaque identifier. IDs are never
// caller-supplied or reused.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
