package dto

// LoginRequest carries the credential pair.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// SessionVendor is the vendor snapshot surfaced to clients alongside the
// session user.
type SessionVendor struct {
	ID                 string `json:"id"`
	BusinessName       string `json:"businessName"`
	Verified           bool   `json:"verified"`
	VerificationStatus string `json:"verificationStatus"`
}

type SessionUser struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Role   string         `json:"role"`
	Vendor *SessionVendor `json:"vendor,omitempty"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// RefreshResponse re-issues the token with a fresh vendor snapshot.
type RefreshResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
