package repositories

import (
	"errors"

	"properties-api/domain"

	"gorm.io/gorm"
)

// PropertyRepository is the persistence contract for the properties table.
// Every method issues exactly one database operation.
type PropertyRepository interface {
	Create(property *domain.Property) error
	GetByID(id string) (*domain.Property, error)
	Update(property *domain.Property) error
	Delete(id string) error
	Count() (int64, error)
	List(offset, limit int) ([]domain.Property, error)
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a repository backed by the given connection.
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// Create inserts a new property. The ID is assigned by the model's
// BeforeCreate hook.
func (r *propertyRepository) Create(property *domain.Property) error {
	return r.db.Create(property).Error
}

// GetByID fetches one property by its identifier. A missing record is
// reported as domain.ErrPropertyNotFound; any other failure passes through.
func (r *propertyRepository) GetByID(id string) (*domain.Property, error) {
	var property domain.Property
	err := r.db.First(&property, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

// Update persists every field of the given record.
func (r *propertyRepository) Update(property *domain.Property) error {
	return r.db.Save(property).Error
}

// Delete removes a property permanently. There is no soft delete.
func (r *propertyRepository) Delete(id string) error {
	return r.db.Delete(&domain.Property{}, "id = ?", id).Error
}

// Count returns the total number of properties.
func (r *propertyRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Property{}).Count(&count).Error
	return count, err
}

// List returns up to limit properties skipping offset, newest first.
func (r *propertyRepository) List(offset, limit int) ([]domain.Property, error) {
	var properties []domain.Property
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&properties).Error
	return properties, err
}
