package dto

type ApplyRequest struct {
	ProfileCode int `json:"profile_code"`
}

type ResolveOfferRequest struct {
	ProfileCode int `json:"profile_code"`
}

type ChangeStatusRequest struct {
	ProfileCode int    `json:"profile_code"`
	EntryNumber string `json:"entry_number"`
	NewStatus   string `json:"new_status"`
}

// ApplicationInfo is an application row joined with its profile.
type ApplicationInfo struct {
	ProfileCode int    `json:"profile_code"`
	EntryNumber string `json:"entry_number"`
	Status      string `json:"status"`
	CompanyName string `json:"company_name"`
	Designation string `json:"designation"`
	RecruiterID string `json:"recruiter_id"`
}

type OfferResult struct {
	CompanyName string `json:"company_name"`
	Designation string `json:"designation"`
}
