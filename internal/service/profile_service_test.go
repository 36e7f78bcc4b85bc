package service

import (
	"testing"

	"github.com/ChrisRobinT/forAthlete/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateProfile(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	profile, err := svc.CreateProfile(1, CreateProfileDTO{
		PrimarySport:          "both",
		WeeklyRunVolumeTarget: 180,
		BadmintonSessions: []models.BadmintonSession{
			{Day: "monday", DurationMinutes: 120, Intensity: "hard", Type: "training"},
		},
		PreferredRunDays: []string{"tuesday", "saturday"},
		AvoidRunDays:     []string{"monday"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "both", profile.PrimarySport)
	assert.Equal(t, []string{"monday"}, []string(profile.AvoidRunDays))
}

func TestCreateProfileTwice(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	_, err := svc.CreateProfile(1, CreateProfileDTO{PrimarySport: "running"})
	assert.NoError(t, err)

	_, err = svc.CreateProfile(1, CreateProfileDTO{PrimarySport: "badminton"})
	assert.ErrorIs(t, err, ErrProfileExists)
}

// День не может быть одновременно желанным и запретным для бега
func TestCreateProfileDayConflict(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	_, err := svc.CreateProfile(1, CreateProfileDTO{
		PrimarySport:     "running",
		PreferredRunDays: []string{"tuesday", "thursday"},
		AvoidRunDays:     []string{"thursday"},
	})
	assert.ErrorIs(t, err, ErrDayConflict)
}

func TestCreateProfileBadWeekday(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	_, err := svc.CreateProfile(1, CreateProfileDTO{
		PrimarySport:     "running",
		PreferredRunDays: []string{"someday"},
	})
	assert.ErrorIs(t, err, ErrBadWeekday)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	_, err := svc.CreateProfile(1, CreateProfileDTO{
		PrimarySport:          "running",
		RunningGoal:           "build aerobic base",
		WeeklyRunVolumeTarget: 150,
	})
	assert.NoError(t, err)

	newTarget := 200
	updated, err := svc.UpdateProfile(1, UpdateProfileDTO{WeeklyRunVolumeTarget: &newTarget})
	assert.NoError(t, err)
	assert.Equal(t, 200, updated.WeeklyRunVolumeTarget)
	// Непереданные поля не тронуты
	assert.Equal(t, "running", updated.PrimarySport)
	assert.Equal(t, "build aerobic base", updated.RunningGoal)
}

func TestUpdateProfileDayConflictAgainstStored(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	_, err := svc.CreateProfile(1, CreateProfileDTO{
		PrimarySport:     "running",
		PreferredRunDays: []string{"tuesday"},
	})
	assert.NoError(t, err)

	// Новый avoid пересекается с уже сохранённым preferred
	avoid := []string{"tuesday"}
	_, err = svc.UpdateProfile(1, UpdateProfileDTO{AvoidRunDays: &avoid})
	assert.ErrorIs(t, err, ErrDayConflict)
}

func TestUpdateProfileNotFound(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	sport := "both"
	_, err := svc.UpdateProfile(42, UpdateProfileDTO{PrimarySport: &sport})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
