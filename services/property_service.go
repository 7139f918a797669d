package services

import (
	"properties-api/domain"
	"properties-api/dto"
	"properties-api/repositories"
)

// Pagination defaults applied when the caller supplies nothing usable.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PropertyService holds the business rules of the properties resource:
// create validation and defaulting, pagination math, and the field-merge
// rules of partial updates.
type PropertyService interface {
	Create(req dto.CreatePropertyRequest) (*domain.Property, error)
	List(page, limit int) ([]domain.Property, dto.Pagination, error)
	GetByID(id string) (*domain.Property, error)
	Update(id string, req dto.UpdatePropertyRequest) (*domain.Property, error)
	Delete(id string) error
}

type propertyService struct {
	repo repositories.PropertyRepository
}

// NewPropertyService creates the service on top of a repository.
func NewPropertyService(repo repositories.PropertyRepository) PropertyService {
	return &propertyService{repo: repo}
}

// Create validates the required fields, applies defaults and persists the
// new record. availableApartments is stored as supplied, negative values
// included; this layer does not constrain it.
func (s *propertyService) Create(req dto.CreatePropertyRequest) (*domain.Property, error) {
	if req.Name == "" || req.Location == "" {
		return nil, domain.ErrNameLocationRequired
	}

	status := req.Status
	if status == "" {
		status = "available"
	}

	property := &domain.Property{
		Name:                req.Name,
		Location:            req.Location,
		Brochure:            req.Brochure,
		Image:               req.Image,
		Model3D:             req.Model3D,
		AvailableApartments: req.AvailableApartments,
		Status:              status,
	}

	if err := s.repo.Create(property); err != nil {
		return nil, err
	}
	return property, nil
}

// List returns one page of properties, newest first, plus the pagination
// descriptor. Out-of-range page/limit values fall back to the defaults
// rather than producing negative offsets.
func (s *propertyService) List(page, limit int) ([]domain.Property, dto.Pagination, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	offset := (page - 1) * limit

	total, err := s.repo.Count()
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	properties, err := s.repo.List(offset, limit)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	if properties == nil {
		properties = []domain.Property{}
	}

	return properties, dto.BuildPagination(total, page, limit), nil
}

// GetByID fetches a single property.
func (s *propertyService) GetByID(id string) (*domain.Property, error) {
	return s.repo.GetByID(id)
}

// Update merges the request into the existing record and saves it.
//
// The merge rules are part of the API contract and are intentionally
// asymmetric: name, location and status keep their current value unless the
// request carries a non-empty replacement, whereas brochure, image, model3d
// and availableApartments are overwritten whenever the field is present in
// the request, even with an empty string or zero.
func (s *propertyService) Update(id string, req dto.UpdatePropertyRequest) (*domain.Property, error) {
	property, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		property.Name = req.Name
	}
	if req.Location != "" {
		property.Location = req.Location
	}
	if req.Status != "" {
		property.Status = req.Status
	}
	if req.Brochure != nil {
		property.Brochure = req.Brochure
	}
	if req.Image != nil {
		property.Image = req.Image
	}
	if req.Model3D != nil {
		property.Model3D = req.Model3D
	}
	if req.AvailableApartments != nil {
		property.AvailableApartments = *req.AvailableApartments
	}

	if err := s.repo.Update(property); err != nil {
		return nil, err
	}
	return property, nil
}

// Delete removes a property after confirming it exists, so a missing id
// surfaces as not-found rather than a silent no-op.
func (s *propertyService) Delete(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
