package service

import (
	"errors"
	"fmt"

	"github.com/ChrisRobinT/forAthlete/internal/models"
	"github.com/ChrisRobinT/forAthlete/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// CreateProfile - создать профиль атлета (один на пользователя)
func (s *ProfileService) CreateProfile(userID uint, dto CreateProfileDTO) (*models.UserProfile, error) {
	if _, err := s.repo.FindByUserID(userID); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := validateRunDays(dto.PreferredRunDays, dto.AvoidRunDays); err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		UserID:                userID,
		PrimarySport:          dto.PrimarySport,
		BadmintonSessions:     datatypes.NewJSONType(dto.BadmintonSessions),
		RunningGoal:           dto.RunningGoal,
		TargetRace:            dto.TargetRace,
		WeeklyRunVolumeTarget: dto.WeeklyRunVolumeTarget,
		PreferredRunDays:      datatypes.NewJSONSlice(dto.PreferredRunDays),
		AvoidRunDays:          datatypes.NewJSONSlice(dto.AvoidRunDays),
		MorningPerson:         dto.MorningPerson,
		CurrentInjuries:       datatypes.NewJSONType(dto.CurrentInjuries),
		InjuryHistory:         datatypes.NewJSONType(dto.InjuryHistory),
		SleepAverage:          dto.SleepAverage,
		OtherCommitments:      dto.OtherCommitments,
	}
	if dto.RunningExperience != nil {
		profile.RunningExperience = datatypes.NewJSONType(*dto.RunningExperience)
	}

	return s.repo.Create(profile)
}

// GetProfile - профиль атлета
func (s *ProfileService) GetProfile(userID uint) (*models.UserProfile, error) {
	profile, err := s.repo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	return profile, err
}

// UpdateProfile - частичное обновление: меняются только переданные поля
func (s *ProfileService) UpdateProfile(userID uint, dto UpdateProfileDTO) (*models.UserProfile, error) {
	profile, err := s.repo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	preferred := []string(profile.PreferredRunDays)
	avoid := []string(profile.AvoidRunDays)
	if dto.PreferredRunDays != nil {
		preferred = *dto.PreferredRunDays
	}
	if dto.AvoidRunDays != nil {
		avoid = *dto.AvoidRunDays
	}
	if err := validateRunDays(preferred, avoid); err != nil {
		return nil, err
	}

	if dto.PrimarySport != nil {
		profile.PrimarySport = *dto.PrimarySport
	}
	if dto.BadmintonSessions != nil {
		profile.BadmintonSessions = datatypes.NewJSONType(*dto.BadmintonSessions)
	}
	if dto.RunningGoal != nil {
		profile.RunningGoal = *dto.RunningGoal
	}
	if dto.TargetRace != nil {
		profile.TargetRace = *dto.TargetRace
	}
	if dto.WeeklyRunVolumeTarget != nil {
		profile.WeeklyRunVolumeTarget = *dto.WeeklyRunVolumeTarget
	}
	if dto.RunningExperience != nil {
		profile.RunningExperience = datatypes.NewJSONType(*dto.RunningExperience)
	}
	if dto.PreferredRunDays != nil {
		profile.PreferredRunDays = datatypes.NewJSONSlice(*dto.PreferredRunDays)
	}
	if dto.AvoidRunDays != nil {
		profile.AvoidRunDays = datatypes.NewJSONSlice(*dto.AvoidRunDays)
	}
	if dto.MorningPerson != nil {
		profile.MorningPerson = dto.MorningPerson
	}
	if dto.CurrentInjuries != nil {
		profile.CurrentInjuries = datatypes.NewJSONType(*dto.CurrentInjuries)
	}
	if dto.InjuryHistory != nil {
		profile.InjuryHistory = datatypes.NewJSONType(*dto.InjuryHistory)
	}
	if dto.SleepAverage != nil {
		profile.SleepAverage = *dto.SleepAverage
	}
	if dto.OtherCommitments != nil {
		profile.OtherCommitments = *dto.OtherCommitments
	}

	if err := s.repo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// validateRunDays проверяет имена дней и запрещает пересечение:
// день не может быть одновременно желанным и запретным.
func validateRunDays(preferred, avoid []string) error {
	seen := make(map[string]bool, len(preferred))
	for _, d := range preferred {
		if _, ok := models.ParseWeekday(d); !ok {
			return fmt.Errorf("%w: %q", ErrBadWeekday, d)
		}
		seen[d] = true
	}
	for _, d := range avoid {
		if _, ok := models.ParseWeekday(d); !ok {
			return fmt.Errorf("%w: %q", ErrBadWeekday, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: %q", ErrDayConflict, d)
		}
	}
	return nil
}
