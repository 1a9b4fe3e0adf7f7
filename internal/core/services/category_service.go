package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/apperrors"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	portsrepo "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/repositories"
	portssvc "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/services"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/dto"
	"github.com/google/uuid"
)

// categoryService implements the CategorySvcFacade interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: repo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) findOwnedCategory(ctx context.Context, categoryID, userID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return category, nil
}

// CreateCategory persists a new category for the user. A spending type is
// only meaningful on expense categories.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	if req.SpendingType != "" && req.CategoryType != domain.CategoryTypeExpense {
		return nil, fmt.Errorf("%w: spending type is only valid for expense categories", apperrors.ErrValidation)
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:   uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		CategoryType: req.CategoryType,
		SpendingType: req.SpendingType,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_name", req.Name))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

// GetCategoryByID retrieves a specific category owned by the user.
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string, userID string) (*domain.Category, error) {
	return s.findOwnedCategory(ctx, categoryID, userID)
}

// ListCategories retrieves all categories of a user.
func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// UpdateCategory updates an existing category's details.
func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error) {
	category, err := s.findOwnedCategory(ctx, categoryID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.CategoryType != nil {
		category.CategoryType = *req.CategoryType
	}
	if req.SpendingType != nil {
		category.SpendingType = *req.SpendingType
	}
	if category.SpendingType != "" && category.CategoryType != domain.CategoryTypeExpense {
		return nil, fmt.Errorf("%w: spending type is only valid for expense categories", apperrors.ErrValidation)
	}
	category.LastUpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeactivateCategory marks a category as inactive.
func (s *categoryService) DeactivateCategory(ctx context.Context, categoryID string, userID string) error {
	if _, err := s.findOwnedCategory(ctx, categoryID, userID); err != nil {
		return err
	}
	if err := s.categoryRepo.DeactivateCategory(ctx, categoryID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to deactivate category: %w", err)
	}
	s.LogInfo(ctx, "Category deactivated", slog.String("category_id", categoryID))
	return nil
}
