package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	userRepo "medicalkz/database/repository/user"
	"medicalkz/models"
	"medicalkz/services/scheduling"
	"medicalkz/utils"

	"go.uber.org/zap"
)

// doctorDirectoryCacheKey holds the serialized doctor directory in the generic
// cache. Invalidated whenever a doctor registers or changes availability.
const doctorDirectoryCacheKey = "doctors:directory"

// doctorDirectoryTTL bounds staleness of the cached directory. Slot
// availability is never cached; only the directory listing is.
const doctorDirectoryTTL = 5 * time.Minute

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// GetUserByID returns a user record.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	return usr, nil
}

// GetDoctors lists the doctor directory, served from the cache when a fresh
// copy exists. Cache failures fall through to the repository.
func (s *DefaultUserService) GetDoctors() ([]models.User, error) {
	ctx := context.Background()
	cache := utils.GetCacheClient()

	if raw, err := cache.Get(ctx, doctorDirectoryCacheKey).Result(); err == nil {
		var doctors []models.User
		if err := json.Unmarshal([]byte(raw), &doctors); err == nil {
			return doctors, nil
		}
		utils.GetLogger().Warn("discarding undecodable doctor directory cache entry", zap.Error(err))
	}

	doctors, err := s.Repo.GetDoctors()
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(doctors); err == nil {
		if err := cache.Set(ctx, doctorDirectoryCacheKey, raw, doctorDirectoryTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache doctor directory", zap.Error(err))
		}
	}
	return doctors, nil
}

// UpdateAvailability replaces a doctor's weekly availability after validating
// the weekday names and the working-hours window.
func (s *DefaultUserService) UpdateAvailability(doctorID string, availability models.WeeklyAvailability) error {
	if err := validateAvailability(availability); err != nil {
		return err
	}
	if err := s.Repo.UpdateDoctorAvailability(doctorID, availability); err != nil {
		return err
	}
	invalidateDoctorDirectory()
	return nil
}

// invalidateDoctorDirectory drops the cached directory so the next listing
// reflects the change. Best effort: the TTL bounds staleness either way.
func invalidateDoctorDirectory() {
	if err := utils.GetCacheClient().Del(context.Background(), doctorDirectoryCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate doctor directory cache", zap.Error(err))
	}
}

// validateAvailability checks weekday names are known and unique and the
// working hours form a valid interval.
func validateAvailability(availability models.WeeklyAvailability) error {
	seen := make(map[string]bool, len(availability.WorkingDays))
	for _, day := range availability.WorkingDays {
		if !scheduling.IsValidWeekdayName(day) {
			return fmt.Errorf("unknown weekday name %q", day)
		}
		if seen[day] {
			return fmt.Errorf("weekday %s listed more than once", day)
		}
		seen[day] = true
	}
	if _, err := scheduling.ParseInterval(availability.WorkingHours.Start, availability.WorkingHours.End); err != nil {
		return err
	}
	return nil
}
