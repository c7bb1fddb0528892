package dto

type AdminLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	LoginTime int64  `json:"loginTime"`
	ExpiresAt int64  `json:"expiresAt"`
}

type AuthResponse struct {
	AdminID uint    `json:"admin_id"`
	Email   string  `json:"email"`
	Iat     float64 `json:"iat"`
	Expiry  float64 `json:"expiry"`
}

type SessionStatus struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	ExpiresAt     int64  `json:"expiresAt,omitempty"`
	ExpiringSoon  bool   `json:"expiring_soon"`
}
