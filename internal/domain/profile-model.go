package domain

type Profile struct {
	ProfileCode int    `gorm:"primaryKey;autoIncrement;column:profile_code" json:"profile_code"`
	RecruiterID string `gorm:"column:recruiter_id;index;not null" json:"recruiter_id"`
	CompanyName string `gorm:"not null" json:"company_name"`
	Designation string `gorm:"not null" json:"designation"`
}

func (Profile) TableName() string {
	return "profiles"
}
