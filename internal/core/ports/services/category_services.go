package services

import (
	"context"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/dto"
)

// CategoryReaderSvc defines read operations for category data
type CategoryReaderSvc interface {
	GetCategoryByID(ctx context.Context, categoryID string, userID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for category data
type CategoryWriterSvc interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error)
	DeactivateCategory(ctx context.Context, categoryID string, userID string) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
