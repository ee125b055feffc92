package dto

type CreateProfileRequest struct {
	CompanyName string `json:"company_name"`
	Designation string `json:"designation"`
	// RecruiterID names the owning recruiter when an admin creates the
	// profile; recruiters always own what they create.
	RecruiterID string `json:"recruiter_id,omitempty"`
}

type CreateProfileResponse struct {
	Message     string `json:"message"`
	ProfileCode int    `json:"profile_code"`
}
