// Package seed creates the baseline catalog data on first startup.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/rkabir/profscope/internal/app/models"
	appRepos "github.com/rkabir/profscope/internal/app/repositories"
	"github.com/rkabir/profscope/internal/pkg/apperrors"
)

// CreateDefaultData creates the default departments, courses and professors
// if they don't exist. Errors are collected so one failed row never blocks
// the rest of the seed.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)
	professorRepo := appRepos.NewProfessorRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (departments, courses, professors)...")
	var finalErr error

	departments := []*appModels.Department{
		{Name: "Computer Science & Engineering", Code: "CSE"},
		{Name: "Electrical & Electronic Engineering", Code: "EEE"},
		{Name: "Business Administration", Code: "BBA"},
	}

	deptIDs := make(map[string]*appModels.Department)
	for _, dept := range departments {
		err := departmentRepo.Create(ctx, dept)
		if errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			existing, errGet := departmentRepo.GetByCode(ctx, dept.Code)
			if errGet != nil {
				lgr.Error().Err(errGet).Str("code", dept.Code).Msg("Error resolving existing department")
				finalErr = errors.Join(finalErr, errGet)
				continue
			}
			dept = existing
		} else if err != nil {
			lgr.Error().Err(err).Str("code", dept.Code).Msg("Error creating department")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		deptIDs[dept.Code] = dept
	}

	three := 3
	courses := []struct {
		deptCode string
		course   *appModels.Course
	}{
		{"CSE", &appModels.Course{Code: "CSE101", Name: "Programming Fundamentals", Credits: &three}},
		{"CSE", &appModels.Course{Code: "CSE203", Name: "Data Structures", Credits: &three}},
		{"BBA", &appModels.Course{Code: "BBA201", Name: "Financial Management", Credits: &three}},
	}

	for _, entry := range courses {
		if dept, ok := deptIDs[entry.deptCode]; ok {
			id := dept.ID
			entry.course.DepartmentID = &id
		}
		err := courseRepo.Create(ctx, entry.course)
		if err != nil && !errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			lgr.Error().Err(err).Str("code", entry.course.Code).Msg("Error creating course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	professors := []*appModels.Professor{
		{
			Name:        "Dr. Sarah Rahman",
			Slug:        "dr-sarah-rahman",
			Departments: []string{"Computer Science & Engineering"},
			Bio:         strPtr("Professor of Computer Science with expertise in Software Engineering and Data Structures."),
		},
		{
			Name:        "Prof. Ahmed Hassan",
			Slug:        "prof-ahmed-hassan",
			Departments: []string{"Business Administration"},
			Bio:         strPtr("Professor of Business Administration specializing in Financial Management and Strategic Planning."),
		},
		{
			Name:        "Dr. Fatima Khan",
			Slug:        "dr-fatima-khan",
			Departments: []string{"Electrical & Electronic Engineering"},
			Bio:         strPtr("Associate Professor of Electrical Engineering with research focus on Machine Learning and Signal Processing."),
		},
	}

	for _, professor := range professors {
		err := professorRepo.Create(ctx, professor)
		if err != nil && !errors.Is(err, apperrors.ErrSlugAlreadyExists) {
			lgr.Error().Err(err).Str("slug", professor.Slug).Msg("Error creating professor")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete")
	}
	return finalErr
}

func strPtr(s string) *string {
	return &s
}
