package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ocs-portal/placement_service/internal/domain"
	"github.com/ocs-portal/placement_service/internal/dto"
	"github.com/ocs-portal/placement_service/internal/helper"
	"github.com/ocs-portal/placement_service/internal/services"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "handler-test-secret"
	studentHash = "aeddf07d1ab10bd6d8dde8b778368511"
)

type appKey struct {
	code  int
	entry string
}

// memStore backs all three repositories for HTTP-level tests.
type memStore struct {
	users    map[string]domain.User
	profiles map[int]domain.Profile
	apps     map[appKey]*domain.Application
	nextCode int
}

func newMemStore() *memStore {
	return &memStore{
		users: map[string]domain.User{
			"student1":   {UserID: "student1", Role: domain.RoleStudent, PasswordHash: studentHash},
			"recruiter1": {UserID: "recruiter1", Role: domain.RoleRecruiter, PasswordHash: studentHash},
			"admin1":     {UserID: "admin1", Role: domain.RoleAdmin, PasswordHash: studentHash},
		},
		profiles: map[int]domain.Profile{
			1001: {ProfileCode: 1001, RecruiterID: "recruiter1", CompanyName: "TechCorp", Designation: "Backend Intern"},
			1002: {ProfileCode: 1002, RecruiterID: "recruiter1", CompanyName: "DataWorks", Designation: "Analyst"},
		},
		apps:     make(map[appKey]*domain.Application),
		nextCode: 1003,
	}
}

func (s *memStore) FindByID(userID string) (*domain.User, error) {
	if u, ok := s.users[userID]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *memStore) FindRecruiter(userID string) (*domain.User, error) {
	if u, ok := s.users[userID]; ok && u.Role == domain.RoleRecruiter {
		return &u, nil
	}
	return nil, nil
}

func (s *memStore) ListAll() ([]domain.User, error) {
	var users []domain.User
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	return users, nil
}

func (s *memStore) Create(profile *domain.Profile) (*domain.Profile, error) {
	profile.ProfileCode = s.nextCode
	s.nextCode++
	s.profiles[profile.ProfileCode] = *profile
	return profile, nil
}

func (s *memStore) FindByCode(profileCode int) (*domain.Profile, error) {
	if p, ok := s.profiles[profileCode]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *memStore) FindOwned(profileCode int, recruiterID string) (*domain.Profile, error) {
	if p, ok := s.profiles[profileCode]; ok && p.RecruiterID == recruiterID {
		return &p, nil
	}
	return nil, nil
}

func (s *memStore) ListAllProfiles() ([]domain.Profile, error) {
	var profiles []domain.Profile
	for _, p := range s.profiles {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ProfileCode < profiles[j].ProfileCode })
	return profiles, nil
}

func (s *memStore) ListByRecruiter(recruiterID string) ([]domain.Profile, error) {
	all, _ := s.ListAllProfiles()
	var profiles []domain.Profile
	for _, p := range all {
		if p.RecruiterID == recruiterID {
			profiles = append(profiles, p)
		}
	}
	return profiles, nil
}

func (s *memStore) FindBlocking(entryNumber string) (*domain.Application, error) {
	for _, a := range s.apps {
		if a.EntryNumber == entryNumber &&
			(a.Status == domain.StatusSelected || a.Status == domain.StatusAccepted) {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memStore) Find(profileCode int, entryNumber string) (*domain.Application, error) {
	if a, ok := s.apps[appKey{profileCode, entryNumber}]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, nil
}

func (s *memStore) CreateApplication(app *domain.Application) error {
	copied := *app
	s.apps[appKey{app.ProfileCode, app.EntryNumber}] = &copied
	return nil
}

func (s *memStore) UpdateStatus(profileCode int, entryNumber, status string) error {
	if a, ok := s.apps[appKey{profileCode, entryNumber}]; ok {
		a.Status = status
	}
	return nil
}

func (s *memStore) listApps(match func(dto.ApplicationInfo) bool) []dto.ApplicationInfo {
	var rows []dto.ApplicationInfo
	for _, a := range s.apps {
		row := dto.ApplicationInfo{
			ProfileCode: a.ProfileCode,
			EntryNumber: a.EntryNumber,
			Status:      a.Status,
		}
		if p, ok := s.profiles[a.ProfileCode]; ok {
			row.CompanyName = p.CompanyName
			row.Designation = p.Designation
			row.RecruiterID = p.RecruiterID
		}
		if match(row) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ProfileCode < rows[j].ProfileCode })
	return rows
}

func (s *memStore) ListByStudent(entryNumber string) ([]dto.ApplicationInfo, error) {
	return s.listApps(func(r dto.ApplicationInfo) bool { return r.EntryNumber == entryNumber }), nil
}

func (s *memStore) ListByRecruiterApplications(recruiterID string) ([]dto.ApplicationInfo, error) {
	return s.listApps(func(r dto.ApplicationInfo) bool { return r.RecruiterID == recruiterID }), nil
}

func (s *memStore) ListAllApplications() ([]dto.ApplicationInfo, error) {
	return s.listApps(func(dto.ApplicationInfo) bool { return true }), nil
}

// The repository interfaces overlap on method names, so the store is
// wrapped per interface.
type userStore struct{ *memStore }

type profileStore struct{ *memStore }

func (p profileStore) ListAll() ([]domain.Profile, error) { return p.ListAllProfiles() }

type applicationStore struct{ *memStore }

func (a applicationStore) Create(app *domain.Application) error { return a.CreateApplication(app) }
func (a applicationStore) ListByRecruiter(recruiterID string) ([]dto.ApplicationInfo, error) {
	return a.ListByRecruiterApplications(recruiterID)
}
func (a applicationStore) ListAll() ([]dto.ApplicationInfo, error) { return a.ListAllApplications() }

func newTestApp(t *testing.T) (*fiber.App, *memStore) {
	t.Helper()

	store := newMemStore()
	auth, err := helper.SetupAuth(testSecret, "HS256", time.Hour)
	require.NoError(t, err)

	authSvc := services.NewAuthService(userStore{store}, auth)
	placementSvc := services.NewPlacementService(
		userStore{store}, profileStore{store}, applicationStore{store}, nil)

	app := fiber.New()
	NewAuthHandler(authSvc, auth).SetupRoutes(app)
	NewStudentHandler(placementSvc, auth).SetupRoutes(app)
	NewRecruiterHandler(placementSvc, auth).SetupRoutes(app)
	NewAdminHandler(placementSvc, auth).SetupRoutes(app)

	return app, store
}

func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	auth, err := helper.SetupAuth(testSecret, "HS256", time.Hour)
	require.NoError(t, err)
	token, err := auth.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func expiredTokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	auth, err := helper.SetupAuth(testSecret, "HS256", -time.Minute)
	require.NoError(t, err)
	token, err := auth.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// doRequest runs a request through the app and decodes the JSON body.
func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	decoded := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

func bearer(token string) string {
	return "Bearer " + token
}
