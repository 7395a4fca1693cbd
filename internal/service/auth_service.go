package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"trademate/internal/config"
	"trademate/internal/model"
	"trademate/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailRequired      = errors.New("email is required")
)

// AuthService stands in for the identity collaborator: host login with
// env credentials and user-scoped bearer tokens. The core only ever
// consumes the user id carried in the claims.
type AuthService struct {
	hostUsername string
	hostPassword string
	jwtSecret    []byte
	profileRepo  repository.ProfileRepo
	settingsRepo repository.SettingsRepo
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config, profileRepo repository.ProfileRepo, settingsRepo repository.SettingsRepo) *AuthService {
	return &AuthService{
		hostUsername: cfg.HostUsername,
		hostPassword: cfg.HostPassword,
		jwtSecret:    []byte(cfg.JWTSecret),
		profileRepo:  profileRepo,
		settingsRepo: settingsRepo,
	}
}

// Login validates host credentials and returns a token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.hostUsername || password != s.hostPassword {
		return nil, ErrInvalidCredentials
	}

	hostID := "host_" + uuid.New().String()[:8]

	claims := &model.HostClaims{
		HostID: hostID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:  tokenString,
		HostID: hostID,
	}, nil
}

// Signup registers a dashboard user, seeds their profile and settings,
// and returns a user-scoped token
func (s *AuthService) Signup(ctx context.Context, req *model.SignupRequest) (*model.SignupResponse, error) {
	if req.Email == "" {
		return nil, ErrEmailRequired
	}

	userID := uuid.New().String()

	profile := &model.UserProfile{
		UserID:       userID,
		Email:        req.Email,
		BusinessName: req.BusinessName,
		Industry:     req.Industry,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	settings := &model.BusinessSettings{
		UserID:         userID,
		GrowthAmbition: model.AmbitionSteady,
	}
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	token, err := s.GenerateUserToken(userID, req.Email)
	if err != nil {
		return nil, err
	}

	return &model.SignupResponse{
		Token:  token,
		UserID: userID,
	}, nil
}

// GenerateUserToken creates a user-scoped token
func (s *AuthService) GenerateUserToken(userID, email string) (string, error) {
	claims := &model.UserClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateHostToken validates a host JWT and returns claims
func (s *AuthService) ValidateHostToken(tokenString string) (*model.HostClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.HostClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.HostClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ValidateUserToken validates a user JWT and returns claims
func (s *AuthService) ValidateUserToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
