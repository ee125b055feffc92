package services

import (
	"sort"

	"github.com/ocs-portal/placement_service/internal/domain"
	"github.com/ocs-portal/placement_service/internal/dto"
)

type fakeUserRepo struct {
	users     map[string]*domain.User
	findCalls int
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*domain.User)}
	for i := range users {
		u := users[i]
		r.users[u.UserID] = &u
	}
	return r
}

func (r *fakeUserRepo) FindByID(userID string) (*domain.User, error) {
	r.findCalls++
	u, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindRecruiter(userID string) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok || u.Role != domain.RoleRecruiter {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) ListAll() ([]domain.User, error) {
	var users []domain.User
	for _, u := range r.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Role != users[j].Role {
			return users[i].Role < users[j].Role
		}
		return users[i].UserID < users[j].UserID
	})
	return users, nil
}

type fakeProfileRepo struct {
	profiles map[int]*domain.Profile
	nextCode int
}

func newFakeProfileRepo(profiles ...domain.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: make(map[int]*domain.Profile), nextCode: 1001}
	for i := range profiles {
		p := profiles[i]
		r.profiles[p.ProfileCode] = &p
		if p.ProfileCode >= r.nextCode {
			r.nextCode = p.ProfileCode + 1
		}
	}
	return r
}

func (r *fakeProfileRepo) Create(profile *domain.Profile) (*domain.Profile, error) {
	profile.ProfileCode = r.nextCode
	r.nextCode++
	copied := *profile
	r.profiles[profile.ProfileCode] = &copied
	return profile, nil
}

func (r *fakeProfileRepo) FindByCode(profileCode int) (*domain.Profile, error) {
	p, ok := r.profiles[profileCode]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProfileRepo) FindOwned(profileCode int, recruiterID string) (*domain.Profile, error) {
	p, ok := r.profiles[profileCode]
	if !ok || p.RecruiterID != recruiterID {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProfileRepo) ListAll() ([]domain.Profile, error) {
	var profiles []domain.Profile
	for _, p := range r.profiles {
		profiles = append(profiles, *p)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].ProfileCode < profiles[j].ProfileCode
	})
	return profiles, nil
}

func (r *fakeProfileRepo) ListByRecruiter(recruiterID string) ([]domain.Profile, error) {
	all, _ := r.ListAll()
	var profiles []domain.Profile
	for _, p := range all {
		if p.RecruiterID == recruiterID {
			profiles = append(profiles, p)
		}
	}
	return profiles, nil
}

type appKey struct {
	code  int
	entry string
}

type fakeApplicationRepo struct {
	apps      map[appKey]*domain.Application
	profiles  *fakeProfileRepo
	createErr error
}

func newFakeApplicationRepo(profiles *fakeProfileRepo, apps ...domain.Application) *fakeApplicationRepo {
	r := &fakeApplicationRepo{apps: make(map[appKey]*domain.Application), profiles: profiles}
	for i := range apps {
		a := apps[i]
		r.apps[appKey{a.ProfileCode, a.EntryNumber}] = &a
	}
	return r
}

func (r *fakeApplicationRepo) FindBlocking(entryNumber string) (*domain.Application, error) {
	for _, a := range r.apps {
		if a.EntryNumber != entryNumber {
			continue
		}
		for _, s := range domain.OfferLockStatuses() {
			if a.Status == s {
				copied := *a
				return &copied, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeApplicationRepo) Find(profileCode int, entryNumber string) (*domain.Application, error) {
	a, ok := r.apps[appKey{profileCode, entryNumber}]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *fakeApplicationRepo) Create(app *domain.Application) error {
	if r.createErr != nil {
		return r.createErr
	}
	key := appKey{app.ProfileCode, app.EntryNumber}
	if _, exists := r.apps[key]; exists {
		return nil
	}
	copied := *app
	r.apps[key] = &copied
	return nil
}

func (r *fakeApplicationRepo) UpdateStatus(profileCode int, entryNumber, status string) error {
	if a, ok := r.apps[appKey{profileCode, entryNumber}]; ok {
		a.Status = status
	}
	return nil
}

func (r *fakeApplicationRepo) list(match func(dto.ApplicationInfo) bool) []dto.ApplicationInfo {
	var rows []dto.ApplicationInfo
	for _, a := range r.apps {
		row := dto.ApplicationInfo{
			ProfileCode: a.ProfileCode,
			EntryNumber: a.EntryNumber,
			Status:      a.Status,
		}
		if p, ok := r.profiles.profiles[a.ProfileCode]; ok {
			row.CompanyName = p.CompanyName
			row.Designation = p.Designation
			row.RecruiterID = p.RecruiterID
		}
		if match(row) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ProfileCode != rows[j].ProfileCode {
			return rows[i].ProfileCode < rows[j].ProfileCode
		}
		return rows[i].EntryNumber < rows[j].EntryNumber
	})
	return rows
}

func (r *fakeApplicationRepo) ListByStudent(entryNumber string) ([]dto.ApplicationInfo, error) {
	return r.list(func(row dto.ApplicationInfo) bool { return row.EntryNumber == entryNumber }), nil
}

func (r *fakeApplicationRepo) ListByRecruiter(recruiterID string) ([]dto.ApplicationInfo, error) {
	return r.list(func(row dto.ApplicationInfo) bool { return row.RecruiterID == recruiterID }), nil
}

func (r *fakeApplicationRepo) ListAll() ([]dto.ApplicationInfo, error) {
	return r.list(func(dto.ApplicationInfo) bool { return true }), nil
}

type fakeProducer struct {
	published [][]byte
	err       error
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, value)
	return nil
}
