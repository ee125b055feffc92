package services

import (
	"crypto/subtle"
	"regexp"
	"strings"

	"github.com/ocs-portal/placement_service/internal/apperr"
	"github.com/ocs-portal/placement_service/internal/dto"
	"github.com/ocs-portal/placement_service/internal/helper"
	"github.com/ocs-portal/placement_service/internal/repository"
)

// MD5 digests are exactly 32 hex characters; anything else is rejected
// before touching storage.
var md5HexPattern = regexp.MustCompile(`^[0-9a-fA-F]{32}$`)

type AuthService interface {
	Login(input dto.LoginRequest) (*dto.LoginResponse, error)
	CurrentUser(caller helper.Identity) (*dto.UserInfo, error)
}

type authService struct {
	users repository.UserRepository
	auth  helper.Auth
}

func NewAuthService(users repository.UserRepository, auth helper.Auth) AuthService {
	return &authService{users: users, auth: auth}
}

func (s *authService) Login(input dto.LoginRequest) (*dto.LoginResponse, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return nil, apperr.Validation("userid is required")
	}
	if input.PasswordMD5 == "" {
		return nil, apperr.Validation("password_md5 is required")
	}
	if !md5HexPattern.MatchString(input.PasswordMD5) {
		return nil, apperr.Validation("Invalid password hash format")
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	// A missing user and a wrong credential produce the same response so
	// callers cannot enumerate userids.
	if user == nil {
		return nil, apperr.InvalidCredentials()
	}
	if subtle.ConstantTimeCompare([]byte(user.PasswordHash), []byte(input.PasswordMD5)) != 1 {
		return nil, apperr.InvalidCredentials()
	}

	token, err := s.auth.GenerateToken(user.UserID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token, Role: user.Role, UserID: user.UserID}, nil
}

func (s *authService) CurrentUser(caller helper.Identity) (*dto.UserInfo, error) {
	user, err := s.users.FindByID(caller.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.UserNotFound()
	}
	return &dto.UserInfo{UserID: user.UserID, Role: user.Role}, nil
}
