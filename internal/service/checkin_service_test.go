package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateCheckin(t *testing.T) {
	svc := NewCheckinService(newFakeCheckinRepo())

	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	checkin, err := svc.CreateCheckin(1, CreateCheckinDTO{
		Date: date, HRV: 62, RHR: 49, SleepHours: 7.5, SleepQuality: intp(4),
		SorenessLevel: intp(2), EnergyLevel: intp(4),
	})
	assert.NoError(t, err)
	assert.Equal(t, 62, checkin.HRV)
}

// Шкальные метрики опциональны: чек-ин без них валиден
func TestCreateCheckinOmittedMetrics(t *testing.T) {
	svc := NewCheckinService(newFakeCheckinRepo())

	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	checkin, err := svc.CreateCheckin(1, CreateCheckinDTO{Date: date, SleepHours: 7.5})
	assert.NoError(t, err)
	assert.Nil(t, checkin.SleepQuality)
	assert.Nil(t, checkin.SorenessLevel)
	assert.Nil(t, checkin.EnergyLevel)
}

// Дубликат на дату отклоняется, оригинал не перезаписывается
func TestCreateCheckinDuplicate(t *testing.T) {
	repo := newFakeCheckinRepo()
	svc := NewCheckinService(repo)

	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateCheckin(1, CreateCheckinDTO{Date: date, HRV: 62})
	assert.NoError(t, err)

	_, err = svc.CreateCheckin(1, CreateCheckinDTO{Date: date, HRV: 99})
	assert.ErrorIs(t, err, ErrCheckinExists)

	stored, err := repo.FindByDate(1, date)
	assert.NoError(t, err)
	assert.Equal(t, 62, stored.HRV)
}

func TestGetByDateNotFound(t *testing.T) {
	svc := NewCheckinService(newFakeCheckinRepo())

	_, err := svc.GetByDate(1, time.Now())
	assert.ErrorIs(t, err, ErrCheckinNotFound)
}

func TestSameDateDifferentAthletes(t *testing.T) {
	svc := NewCheckinService(newFakeCheckinRepo())

	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateCheckin(1, CreateCheckinDTO{Date: date})
	assert.NoError(t, err)

	// Другой атлет, та же дата - не конфликт
	_, err = svc.CreateCheckin(2, CreateCheckinDTO{Date: date})
	assert.NoError(t, err)
}
