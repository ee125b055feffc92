package dto

type LoginRequest struct {
	UserID      string `json:"userid"`
	PasswordMD5 string `json:"password_md5"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"userid"`
}

type UserInfo struct {
	UserID string `json:"userid"`
	Role   string `json:"role"`
}
