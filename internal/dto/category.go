package dto

import (
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name         string              `json:"name" binding:"required"`
	CategoryType domain.CategoryType `json:"categoryType" binding:"required,oneof=income expense saving investment"`
	SpendingType domain.SpendingType `json:"spendingType" binding:"omitempty,oneof=core fun future"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name         *string              `json:"name"`
	CategoryType *domain.CategoryType `json:"categoryType" binding:"omitempty,oneof=income expense saving investment"`
	SpendingType *domain.SpendingType `json:"spendingType" binding:"omitempty,oneof=core fun future"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string              `json:"categoryID"`
	Name          string              `json:"name"`
	CategoryType  domain.CategoryType `json:"categoryType"`
	SpendingType  domain.SpendingType `json:"spendingType,omitempty"`
	IsActive      bool                `json:"isActive"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    cat.CategoryID,
		Name:          cat.Name,
		CategoryType:  cat.CategoryType,
		SpendingType:  cat.SpendingType,
		IsActive:      cat.IsActive,
		CreatedAt:     cat.CreatedAt,
		LastUpdatedAt: cat.LastUpdatedAt,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to response DTOs
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = ToCategoryResponse(&cat)
	}
	return res
}
