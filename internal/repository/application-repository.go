package repository

import (
	"errors"
	"fmt"

	"github.com/ocs-portal/placement_service/internal/domain"
	"github.com/ocs-portal/placement_service/internal/dto"
	"gorm.io/gorm"
)

// ErrDuplicateKey surfaces the composite-key violation on insert. The unique
// constraint is the authoritative guard against two concurrent submits both
// passing the existence check.
var ErrDuplicateKey = errors.New("application already exists")

type ApplicationRepository interface {
	// FindBlocking returns the application freezing the student out of
	// browsing/applying (status Selected or Accepted), or (nil, nil).
	FindBlocking(entryNumber string) (*domain.Application, error)
	// Find returns (nil, nil) when the application does not exist.
	Find(profileCode int, entryNumber string) (*domain.Application, error)
	Create(app *domain.Application) error
	UpdateStatus(profileCode int, entryNumber, status string) error
	ListByStudent(entryNumber string) ([]dto.ApplicationInfo, error)
	ListByRecruiter(recruiterID string) ([]dto.ApplicationInfo, error)
	ListAll() ([]dto.ApplicationInfo, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) FindBlocking(entryNumber string) (*domain.Application, error) {
	app := &domain.Application{}
	err := r.db.Where("entry_number = ? AND status IN ?", entryNumber, domain.OfferLockStatuses()).
		First(app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find blocking application: %w", err)
	}
	return app, nil
}

func (r *applicationRepository) Find(profileCode int, entryNumber string) (*domain.Application, error) {
	app := &domain.Application{}
	err := r.db.Where("profile_code = ? AND entry_number = ?", profileCode, entryNumber).
		First(app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return app, nil
}

func (r *applicationRepository) Create(app *domain.Application) error {
	if app == nil {
		return errors.New("nil application")
	}
	if err := r.db.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

func (r *applicationRepository) UpdateStatus(profileCode int, entryNumber, status string) error {
	err := r.db.Model(&domain.Application{}).
		Where("profile_code = ? AND entry_number = ?", profileCode, entryNumber).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	return nil
}

const applicationInfoSelect = `applications.profile_code, applications.entry_number, applications.status,
profiles.company_name, profiles.designation, profiles.recruiter_id`

func (r *applicationRepository) ListByStudent(entryNumber string) ([]dto.ApplicationInfo, error) {
	var rows []dto.ApplicationInfo
	err := r.db.Table("applications").
		Select(applicationInfoSelect).
		Joins("JOIN profiles ON applications.profile_code = profiles.profile_code").
		Where("applications.entry_number = ?", entryNumber).
		Order("applications.profile_code").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list applications by student: %w", err)
	}
	return rows, nil
}

func (r *applicationRepository) ListByRecruiter(recruiterID string) ([]dto.ApplicationInfo, error) {
	var rows []dto.ApplicationInfo
	err := r.db.Table("applications").
		Select(applicationInfoSelect).
		Joins("JOIN profiles ON applications.profile_code = profiles.profile_code").
		Where("profiles.recruiter_id = ?", recruiterID).
		Order("applications.profile_code, applications.entry_number").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list applications by recruiter: %w", err)
	}
	return rows, nil
}

func (r *applicationRepository) ListAll() ([]dto.ApplicationInfo, error) {
	var rows []dto.ApplicationInfo
	err := r.db.Table("applications").
		Select(applicationInfoSelect).
		Joins("JOIN profiles ON applications.profile_code = profiles.profile_code").
		Order("applications.profile_code, applications.entry_number").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return rows, nil
}
