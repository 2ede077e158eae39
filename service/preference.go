package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"job-dashboard/dto"
	"job-dashboard/entities"
	"job-dashboard/repository"
	"slices"
	"strings"
)

type PreferenceService interface {
	GetJobTable(ctx context.Context, userId uint) (*dto.JobTablePreference, error)
	SaveJobTable(ctx context.Context, userId uint, pref dto.JobTablePreference) (*dto.JobTablePreference, error)
}

type preferenceService struct {
	repo     repository.Repository
	validate *validator.Validate
}

// NewPreferenceValidator registers the job table tags on a fresh validator.
func NewPreferenceValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("column_key", func(fl validator.FieldLevel) bool {
		return IsJobTableColumn(fl.Field().String())
	})
	_ = validate.RegisterValidation("sort_expr", func(fl validator.FieldLevel) bool {
		_, err := ParseSort(fl.Field().String())
		return err == nil
	})
	return validate
}

func defaultJobTable() *dto.JobTablePreference {
	return &dto.JobTablePreference{
		Version:        0,
		VisibleColumns: slices.Clone(DefaultJobTableColumns),
		Sort:           "",
		HideFinished:   false,
	}
}

func (s *preferenceService) GetJobTable(ctx context.Context, userId uint) (*dto.JobTablePreference, error) {
	pref, err := s.repo.FindUserPreference(ctx, userId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaultJobTable(), nil
	}
	if err != nil {
		return nil, err
	}
	return toJobTableDTO(pref), nil
}

// SaveJobTable stores the preference when pref.Version matches the stored
// version (0 for a first save) and returns it with the bumped version.
func (s *preferenceService) SaveJobTable(ctx context.Context, userId uint, pref dto.JobTablePreference) (*dto.JobTablePreference, error) {
	if err := s.validate.Struct(pref); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, formatValidationErrors(err))
	}

	var saved *entities.UserPreference
	err := s.repo.Transaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindUserPreference(ctx, userId)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing == nil {
			existing = &entities.UserPreference{UserID: userId}
		}
		if existing.Version != pref.Version {
			return fmt.Errorf("%w: stored version is %d", ErrPreferenceConflict, existing.Version)
		}

		fromVersion := existing.Version
		existing.Version++
		existing.JobTable = entities.JobTablePreference{
			VisibleColumns: pref.VisibleColumns,
			Sort:           strings.TrimSpace(pref.Sort),
			HideFinished:   pref.HideFinished,
		}

		var written bool
		if existing.ID == 0 {
			written, err = s.repo.CreateUserPreference(ctx, existing)
		} else {
			written, err = s.repo.UpdateUserPreference(ctx, existing, fromVersion)
		}
		if err != nil {
			return err
		}
		if !written {
			return fmt.Errorf("%w: preference was saved concurrently", ErrPreferenceConflict)
		}
		saved = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toJobTableDTO(saved), nil
}

func toJobTableDTO(pref *entities.UserPreference) *dto.JobTablePreference {
	columns := pref.JobTable.VisibleColumns
	if len(columns) == 0 {
		columns = slices.Clone(DefaultJobTableColumns)
	}
	return &dto.JobTablePreference{
		Version:        pref.Version,
		VisibleColumns: columns,
		Sort:           pref.JobTable.Sort,
		HideFinished:   pref.JobTable.HideFinished,
	}
}

func formatValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		message := fmt.Sprintf("field '%s' failed on the '%s' tag", fieldErr.Namespace(), fieldErr.Tag())
		if fieldErr.Param() != "" {
			message = fmt.Sprintf("%s (param: %s)", message, fieldErr.Param())
		}
		messages = append(messages, message)
	}
	return strings.Join(messages, "; ")
}

func NewPreferenceService(repo repository.Repository) PreferenceService {
	return &preferenceService{
		repo:     repo,
		validate: NewPreferenceValidator(),
	}
}
