package repository

import (
	"errors"
	"fmt"

	"github.com/ocs-portal/placement_service/internal/domain"
	"gorm.io/gorm"
)

type UserRepository interface {
	// FindByID returns (nil, nil) when no such user exists.
	FindByID(userID string) (*domain.User, error)
	// FindRecruiter returns (nil, nil) when the user is missing or is not
	// a recruiter.
	FindRecruiter(userID string) (*domain.User, error)
	ListAll() ([]domain.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(userID string) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.First(user, "userid = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return user, nil
}

func (r *userRepository) FindRecruiter(userID string) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.Where("userid = ? AND role = ?", userID, domain.RoleRecruiter).First(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find recruiter: %w", err)
	}
	return user, nil
}

func (r *userRepository) ListAll() ([]domain.User, error) {
	var users []domain.User
	if err := r.db.Order("role, userid").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
