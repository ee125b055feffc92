package repository

import (
	"errors"
	"fmt"

	"github.com/ocs-portal/placement_service/internal/domain"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	// Create assigns ProfileCode from the database sequence.
	Create(profile *domain.Profile) (*domain.Profile, error)
	// FindByCode returns (nil, nil) when the profile does not exist.
	FindByCode(profileCode int) (*domain.Profile, error)
	// FindOwned returns (nil, nil) unless the profile exists and belongs
	// to the given recruiter.
	FindOwned(profileCode int, recruiterID string) (*domain.Profile, error)
	ListAll() ([]domain.Profile, error)
	ListByRecruiter(recruiterID string) ([]domain.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *domain.Profile) (*domain.Profile, error) {
	if profile == nil {
		return nil, errors.New("nil profile")
	}
	if err := r.db.Create(profile).Error; err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

func (r *profileRepository) FindByCode(profileCode int) (*domain.Profile, error) {
	profile := &domain.Profile{}
	if err := r.db.First(profile, "profile_code = ?", profileCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return profile, nil
}

func (r *profileRepository) FindOwned(profileCode int, recruiterID string) (*domain.Profile, error) {
	profile := &domain.Profile{}
	err := r.db.Where("profile_code = ? AND recruiter_id = ?", profileCode, recruiterID).First(profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find owned profile: %w", err)
	}
	return profile, nil
}

func (r *profileRepository) ListAll() ([]domain.Profile, error) {
	var profiles []domain.Profile
	if err := r.db.Order("profile_code").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

func (r *profileRepository) ListByRecruiter(recruiterID string) ([]domain.Profile, error) {
	var profiles []domain.Profile
	err := r.db.Where("recruiter_id = ?", recruiterID).Order("profile_code").Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("list profiles by recruiter: %w", err)
	}
	return profiles, nil
}
