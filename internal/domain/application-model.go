package domain

const (
	StatusApplied     = "Applied"
	StatusSelected    = "Selected"
	StatusAccepted    = "Accepted"
	StatusNotSelected = "Not Selected"
)

// Statuses lists every legal status value, in the order shown to clients.
func Statuses() []string {
	return []string{StatusApplied, StatusNotSelected, StatusSelected, StatusAccepted}
}

// ValidStatus is the input-shape check used for recruiter/admin status
// updates. It deliberately does not consult the current status: privileged
// callers may set any member of the enum.
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusSelected, StatusAccepted, StatusNotSelected:
		return true
	}
	return false
}

// OfferLockStatuses are the statuses that freeze a student out of browsing
// and applying until the offer is resolved.
func OfferLockStatuses() []string {
	return []string{StatusSelected, StatusAccepted}
}

// Application identity is the (profile_code, entry_number) pair; the
// composite primary key is the authoritative guard against duplicate
// applications from concurrent submits.
type Application struct {
	ProfileCode int    `gorm:"primaryKey;autoIncrement:false;column:profile_code" json:"profile_code"`
	EntryNumber string `gorm:"primaryKey;column:entry_number" json:"entry_number"`
	Status      string `gorm:"type:varchar(20);not null;default:Applied" json:"status"`
}

func (Application) TableName() string {
	return "applications"
}

// CanResolve reports whether the owning student may accept or reject the
// offer. Unlike the privileged update path, the student transition is
// restricted: only a Selected application can be resolved.
func (a Application) CanResolve() bool {
	return a.Status == StatusSelected
}
