package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"properties-api/domain"
	"properties-api/dto"
	"properties-api/services"

	"github.com/gin-gonic/gin"
)

// PropertyController handles the HTTP endpoints of the properties resource.
type PropertyController struct {
	service services.PropertyService
}

// NewPropertyController creates a new controller instance.
func NewPropertyController(service services.PropertyService) *PropertyController {
	return &PropertyController{service: service}
}

// Create handles POST /properties (admin only).
func (ctrl *PropertyController) Create(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	property, err := ctrl.service.Create(req)
	if err != nil {
		if errors.Is(err, domain.ErrNameLocationRequired) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
			})
			return
		}
		log.Printf("create property failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.PropertyMutationResponse{
		Message:  "Property created successfully",
		Property: *property,
	})
}

// List handles GET /properties (public).
// page and limit come from the query string; anything that does not parse
// to a positive integer falls back to the defaults (page 1, limit 10).
func (ctrl *PropertyController) List(c *gin.Context) {
	page := atoiDefault(c.Query("page"), services.DefaultPage)
	limit := atoiDefault(c.Query("limit"), services.DefaultLimit)

	properties, pagination, err := ctrl.service.List(page, limit)
	if err != nil {
		log.Printf("list properties failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.PropertyListResponse{
		Properties: properties,
		Pagination: pagination,
	})
}

// GetByID handles GET /properties/:id (public).
func (ctrl *PropertyController) GetByID(c *gin.Context) {
	property, err := ctrl.service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
			return
		}
		log.Printf("get property failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.PropertyResponse{Property: *property})
}

// Update handles PUT /properties/:id (admin only).
func (ctrl *PropertyController) Update(c *gin.Context) {
	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	property, err := ctrl.service.Update(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
			return
		}
		log.Printf("update property failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.PropertyMutationResponse{
		Message:  "Property updated successfully",
		Property: *property,
	})
}

// Delete handles DELETE /properties/:id (admin only). Deletion is
// immediate and permanent.
func (ctrl *PropertyController) Delete(c *gin.Context) {
	if err := ctrl.service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
			return
		}
		log.Printf("delete property failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Property deleted successfully",
	})
}

// atoiDefault parses a positive integer, falling back to def for anything
// that is missing, non-numeric, zero or negative.
func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
