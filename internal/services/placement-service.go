package services

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/ocs-portal/placement_service/internal/apperr"
	"github.com/ocs-portal/placement_service/internal/domain"
	"github.com/ocs-portal/placement_service/internal/dto"
	"github.com/ocs-portal/placement_service/internal/helper"
	"github.com/ocs-portal/placement_service/internal/interfaces"
	"github.com/ocs-portal/placement_service/internal/repository"
)

type PlacementService interface {
	// Student
	ListProfiles(caller helper.Identity) ([]domain.Profile, error)
	MyApplications(caller helper.Identity) ([]dto.ApplicationInfo, error)
	Apply(caller helper.Identity, input dto.ApplyRequest) error
	AcceptOffer(caller helper.Identity, input dto.ResolveOfferRequest) (*dto.OfferResult, error)
	RejectOffer(caller helper.Identity, input dto.ResolveOfferRequest) error

	// Recruiter / admin
	CreateProfile(caller helper.Identity, input dto.CreateProfileRequest) (*domain.Profile, error)
	MyProfiles(caller helper.Identity) ([]domain.Profile, error)
	RecruiterApplications(caller helper.Identity) ([]dto.ApplicationInfo, error)
	ChangeStatus(caller helper.Identity, input dto.ChangeStatusRequest) error

	// Admin oversight
	AllUsers() ([]dto.UserInfo, error)
	AllProfiles() ([]domain.Profile, error)
	AllApplications() ([]dto.ApplicationInfo, error)
}

type placementService struct {
	users        repository.UserRepository
	profiles     repository.ProfileRepository
	applications repository.ApplicationRepository
	producer     interfaces.ProducerHandler
}

func NewPlacementService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	applications repository.ApplicationRepository,
	producer interfaces.ProducerHandler,
) PlacementService {
	return &placementService{
		users:        users,
		profiles:     profiles,
		applications: applications,
		producer:     producer,
	}
}

// ensureNotLocked is the offer-lock predicate shared by ListProfiles and
// Apply. Both call sites re-query current state on purpose: the lock must
// hold even when the client cached a profile list before being selected.
func (s *placementService) ensureNotLocked(entryNumber string) error {
	blocking, err := s.applications.FindBlocking(entryNumber)
	if err != nil {
		return err
	}
	if blocking != nil {
		return apperr.LockedByOffer(blocking.Status)
	}
	return nil
}

func (s *placementService) ListProfiles(caller helper.Identity) ([]domain.Profile, error) {
	if caller.Role == domain.RoleStudent {
		if err := s.ensureNotLocked(caller.UserID); err != nil {
			return nil, err
		}
	}
	return s.profiles.ListAll()
}

func (s *placementService) MyApplications(caller helper.Identity) ([]dto.ApplicationInfo, error) {
	// No lock check here: a locked student needs this list to find the
	// offer blocking them.
	return s.applications.ListByStudent(caller.UserID)
}

func (s *placementService) Apply(caller helper.Identity, input dto.ApplyRequest) error {
	if input.ProfileCode <= 0 {
		return apperr.Validation("profile_code must be a positive number")
	}

	if err := s.ensureNotLocked(caller.UserID); err != nil {
		return err
	}

	existing, err := s.applications.Find(input.ProfileCode, caller.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.DuplicateApplication()
	}

	profile, err := s.profiles.FindByCode(input.ProfileCode)
	if err != nil {
		return err
	}
	if profile == nil {
		return apperr.ProfileNotFound()
	}

	app := &domain.Application{
		ProfileCode: input.ProfileCode,
		EntryNumber: caller.UserID,
		Status:      domain.StatusApplied,
	}
	if err := s.applications.Create(app); err != nil {
		// Concurrent submit lost the race to the unique constraint.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return apperr.DuplicateApplication()
		}
		return err
	}

	s.publishEvent(dto.ApplicationEvent{
		Event:       dto.EventApplicationSubmitted,
		ProfileCode: input.ProfileCode,
		EntryNumber: caller.UserID,
		Status:      domain.StatusApplied,
		ChangedBy:   caller.UserID,
	})
	return nil
}

func (s *placementService) AcceptOffer(caller helper.Identity, input dto.ResolveOfferRequest) (*dto.OfferResult, error) {
	app, err := s.resolveOffer(caller, input, "accept", domain.StatusAccepted)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByCode(app.ProfileCode)
	if err != nil {
		return nil, err
	}
	result := &dto.OfferResult{}
	if profile != nil {
		result.CompanyName = profile.CompanyName
		result.Designation = profile.Designation
	}
	return result, nil
}

func (s *placementService) RejectOffer(caller helper.Identity, input dto.ResolveOfferRequest) error {
	_, err := s.resolveOffer(caller, input, "reject", domain.StatusNotSelected)
	return err
}

// resolveOffer is the student-side transition: only a Selected application
// may be accepted or rejected.
func (s *placementService) resolveOffer(caller helper.Identity, input dto.ResolveOfferRequest, action, newStatus string) (*domain.Application, error) {
	if input.ProfileCode <= 0 {
		return nil, apperr.Validation("profile_code is required")
	}

	app, err := s.applications.Find(input.ProfileCode, caller.UserID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, apperr.ApplicationNotFound()
	}
	if !app.CanResolve() {
		return nil, apperr.InvalidTransition(action, app.Status)
	}

	if err := s.applications.UpdateStatus(app.ProfileCode, caller.UserID, newStatus); err != nil {
		return nil, err
	}

	s.publishEvent(dto.ApplicationEvent{
		Event:       dto.EventStatusChanged,
		ProfileCode: app.ProfileCode,
		EntryNumber: caller.UserID,
		Status:      newStatus,
		ChangedBy:   caller.UserID,
	})
	return app, nil
}

func (s *placementService) CreateProfile(caller helper.Identity, input dto.CreateProfileRequest) (*domain.Profile, error) {
	companyName := strings.TrimSpace(input.CompanyName)
	designation := strings.TrimSpace(input.Designation)
	if companyName == "" {
		return nil, apperr.Validation("company_name is required")
	}
	if designation == "" {
		return nil, apperr.Validation("designation is required")
	}

	recruiterID := caller.UserID
	if caller.Role == domain.RoleAdmin {
		// Admins create on behalf of a named, existing recruiter.
		recruiterID = strings.TrimSpace(input.RecruiterID)
		if recruiterID == "" {
			return nil, apperr.Validation("recruiter_id is required for admin")
		}
		recruiter, err := s.users.FindRecruiter(recruiterID)
		if err != nil {
			return nil, err
		}
		if recruiter == nil {
			return nil, apperr.RecruiterNotFound()
		}
	}

	return s.profiles.Create(&domain.Profile{
		RecruiterID: recruiterID,
		CompanyName: companyName,
		Designation: designation,
	})
}

func (s *placementService) MyProfiles(caller helper.Identity) ([]domain.Profile, error) {
	return s.profiles.ListByRecruiter(caller.UserID)
}

func (s *placementService) RecruiterApplications(caller helper.Identity) ([]dto.ApplicationInfo, error) {
	return s.applications.ListByRecruiter(caller.UserID)
}

func (s *placementService) ChangeStatus(caller helper.Identity, input dto.ChangeStatusRequest) error {
	if input.ProfileCode <= 0 {
		return apperr.Validation("profile_code is required")
	}
	if strings.TrimSpace(input.EntryNumber) == "" {
		return apperr.Validation("entry_number is required")
	}
	// Input-shape check only. The privileged path may set any enum member
	// regardless of current status; only the student accept/reject path is
	// transition-restricted.
	if !domain.ValidStatus(input.NewStatus) {
		return apperr.InvalidStatus(domain.Statuses())
	}

	if caller.Role == domain.RoleRecruiter {
		owned, err := s.profiles.FindOwned(input.ProfileCode, caller.UserID)
		if err != nil {
			return err
		}
		if owned == nil {
			return apperr.OwnershipViolation()
		}
	}

	app, err := s.applications.Find(input.ProfileCode, input.EntryNumber)
	if err != nil {
		return err
	}
	if app == nil {
		return apperr.ApplicationNotFound()
	}

	if err := s.applications.UpdateStatus(input.ProfileCode, input.EntryNumber, input.NewStatus); err != nil {
		return err
	}

	s.publishEvent(dto.ApplicationEvent{
		Event:       dto.EventStatusChanged,
		ProfileCode: input.ProfileCode,
		EntryNumber: input.EntryNumber,
		Status:      input.NewStatus,
		ChangedBy:   caller.UserID,
	})
	return nil
}

func (s *placementService) AllUsers() ([]dto.UserInfo, error) {
	users, err := s.users.ListAll()
	if err != nil {
		return nil, err
	}
	infos := make([]dto.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, dto.UserInfo{UserID: u.UserID, Role: u.Role})
	}
	return infos, nil
}

func (s *placementService) AllProfiles() ([]domain.Profile, error) {
	return s.profiles.ListAll()
}

func (s *placementService) AllApplications() ([]dto.ApplicationInfo, error) {
	return s.applications.ListAll()
}

// publishEvent is fire-and-forget: a broker outage must never turn a
// committed mutation into a client-facing error.
func (s *placementService) publishEvent(event dto.ApplicationEvent) {
	if s.producer == nil {
		return
	}
	event.OccurredAt = time.Now().UTC().Format(time.RFC3339)

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal %s event error: %v", event.Event, err)
		return
	}
	key := []byte(event.EntryNumber)
	if err := s.producer.PublishMessage(key, payload); err != nil {
		log.Printf("publish %s event error: %v", event.Event, err)
	}
}
