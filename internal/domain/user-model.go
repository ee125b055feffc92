package domain

const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

// User rows are provisioned out of band; this service only reads them.
type User struct {
	UserID       string `gorm:"primaryKey;column:userid" json:"userid"`
	Role         string `gorm:"type:varchar(20);not null" json:"role"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
