package dto

import (
	"math"

	"properties-api/domain"
)

// CreatePropertyRequest is the body of POST /properties.
// Only name and location are required; the rest default server-side.
type CreatePropertyRequest struct {
	Name                string  `json:"name"`
	Location            string  `json:"location"`
	Brochure            *string `json:"brochure"`
	Image               *string `json:"image"`
	Model3D             *string `json:"model3d"`
	AvailableApartments int     `json:"availableApartments"`
	Status              string  `json:"status"`
}

// UpdatePropertyRequest is the body of PUT /properties/:id. Every field is
// optional, but the merge rules differ per field: name, location and status
// overwrite only when non-empty, while brochure, image, model3d and
// availableApartments overwrite whenever the key is present in the request,
// even with an empty or zero value. The pointer fields encode presence.
type UpdatePropertyRequest struct {
	Name                string  `json:"name"`
	Location            string  `json:"location"`
	Status              string  `json:"status"`
	Brochure            *string `json:"brochure"`
	Image               *string `json:"image"`
	Model3D             *string `json:"model3d"`
	AvailableApartments *int    `json:"availableApartments"`
}

// Pagination describes the position of a page within the full result set.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// BuildPagination computes the pagination descriptor for a page.
func BuildPagination(total int64, page, limit int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

// PropertyResponse wraps a single record, as returned by GET /properties/:id.
type PropertyResponse struct {
	Property domain.Property `json:"property"`
}

// PropertyListResponse is the body of GET /properties.
type PropertyListResponse struct {
	Properties []domain.Property `json:"properties"`
	Pagination Pagination        `json:"pagination"`
}

// PropertyMutationResponse confirms a create or update.
type PropertyMutationResponse struct {
	Message  string          `json:"message"`
	Property domain.Property `json:"property"`
}

// MessageResponse confirms an operation with no record to return.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
