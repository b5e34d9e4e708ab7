package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rkabir/profscope/internal/app/models"
	"github.com/rkabir/profscope/internal/app/repositories"
	"github.com/rkabir/profscope/internal/pkg/apperrors"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo *repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
	}
}

// GetAll lists all departments
func (s *DepartmentService) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

// GetByID retrieves a single department
func (s *DepartmentService) GetByID(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// Create validates and stores a new department. Codes are normalized to
// uppercase.
func (s *DepartmentService) Create(ctx context.Context, department *models.Department) error {
	department.Name = strings.TrimSpace(department.Name)
	department.Code = strings.ToUpper(strings.TrimSpace(department.Code))

	if department.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if !isValidDepartmentCode(department.Code) {
		return fmt.Errorf("%w: code must be alphanumeric", apperrors.ErrValidationFailed)
	}

	return s.departmentRepo.Create(ctx, department)
}

// isValidDepartmentCode checks if a department code is uppercase
// alphanumeric
func isValidDepartmentCode(code string) bool {
	if code == "" {
		return false
	}
	for _, char := range code {
		if !((char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9')) {
			return false
		}
	}
	return true
}
