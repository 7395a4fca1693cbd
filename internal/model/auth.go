package model

import "github.com/golang-jwt/jwt/v5"

// HostClaims are JWT claims for admin/host authentication
type HostClaims struct {
	HostID string `json:"hostId"`
	jwt.RegisteredClaims
}

// UserClaims are JWT claims for dashboard users. The core only ever
// consumes UserID.
type UserClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for host login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful host login
type LoginResponse struct {
	Token  string `json:"token"`
	HostID string `json:"hostId"`
}

// SignupRequest registers a dashboard user
type SignupRequest struct {
	Email        string `json:"email"`
	BusinessName string `json:"businessName"`
	Industry     string `json:"industry"`
}

// SignupResponse is returned after user registration
type SignupResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
