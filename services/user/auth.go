package user

import (
	"context"
	"fmt"
	"time"

	"medicalkz/models"
	"medicalkz/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL bounds both the JWT lifetime and the auth-cache entry.
const tokenTTL = 24 * time.Hour

// Register creates a new account with a role-appropriate profile.
func (s *DefaultUserService) Register(req RegistrationRequest) (*AuthResponse, error) {
	switch req.Role {
	case models.RolePatient:
		if req.PatientProfile == nil {
			return nil, fmt.Errorf("patient profile is required for the PATIENT role")
		}
	case models.RoleDoctor:
		if req.DoctorProfile == nil {
			return nil, fmt.Errorf("doctor profile is required for the DOCTOR role")
		}
		if err := validateAvailability(req.DoctorProfile.Availability); err != nil {
			return nil, err
		}
	case models.RoleAdmin:
		// No profile required.
	default:
		return nil, fmt.Errorf("unknown role %q", req.Role)
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:             uuid.New().String(),
		Email:          req.Email,
		PasswordHash:   string(hash),
		FullName:       req.FullName,
		PhoneNumber:    req.PhoneNumber,
		Role:           req.Role,
		DoctorProfile:  req.DoctorProfile,
		PatientProfile: req.PatientProfile,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if usr.Role == models.RoleDoctor {
		invalidateDoctorDirectory()
	}

	return s.issueToken(usr)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(usr)
}

// issueToken signs a JWT for the user, stores its hash on the record and
// primes the auth cache so the middleware can validate without a DB roundtrip.
func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, string(usr.Role), tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateTokenHash(usr.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + usr.ID
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, tokenTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to prime auth cache", zap.Error(err))
	}

	return &AuthResponse{
		ID:       usr.ID,
		Token:    token,
		Email:    usr.Email,
		FullName: usr.FullName,
		Role:     usr.Role,
	}, nil
}
