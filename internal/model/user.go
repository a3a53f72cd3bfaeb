package model

import "time"

// Role identifiers are fixed reference data seeded at startup.
const (
	RoleAdminID      = 1
	RoleManagementID = 2
	RoleAuditorID    = 3

	RoleAdminName      = "Admin"
	RoleManagementName = "Management"
	RoleAuditorName    = "Auditor"
)

type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// User is the persisted account record. RefreshToken and RefreshTokenExpiry
// hold the single live refresh token; reissuing overwrites them.
type User struct {
	ID                 int        `json:"id"`
	Email              string     `json:"email"`
	FullName           string     `json:"fullName"`
	PasswordHash       string     `json:"-"`
	Active             bool       `json:"active"`
	RoleID             int        `json:"roleId"`
	RoleName           string     `json:"roleName"`
	RefreshToken       *string    `json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`
}

// UserInfo is the outward-facing projection of a user.
type UserInfo struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	RoleID   int    `json:"roleId"`
	RoleName string `json:"roleName"`
	Active   bool   `json:"active"`
}

func (u User) Info() UserInfo {
	return UserInfo{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		RoleID:   u.RoleID,
		RoleName: u.RoleName,
		Active:   u.Active,
	}
}

// AuthClaims are the verified claims of an access token.
type AuthClaims struct {
	Email string `json:"sub"`
	Role  string `json:"role"`
}

// TokenResponse is the payload returned by login and refresh.
type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
	Role         string `json:"role,omitempty"`
}
