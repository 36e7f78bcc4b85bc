package service

import (
	"fmt"
	"time"

	"github.com/ChrisRobinT/forAthlete/internal/models"
	"gorm.io/gorm"
)

// Фейковые репозитории в памяти для тестов сервисов.
// Возвращают gorm.ErrRecordNotFound там же, где настоящие.

func intp(n int) *int { return &n }

type fakeUserRepo struct {
	users map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}}
}

func (r *fakeUserRepo) Create(user *models.User) (*models.User, error) {
	user.ID = uint(len(r.users) + 1)
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByTelegramChatID(chatID int64) (*models.User, error) {
	for _, u := range r.users {
		if u.TelegramChatID == chatID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindAllWithTelegram() ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.users {
		if u.TelegramChatID != 0 {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) LinkTelegram(userID uint, chatID int64) error {
	if u, ok := r.users[userID]; ok {
		u.TelegramChatID = chatID
		return nil
	}
	return gorm.ErrRecordNotFound
}

type fakeProfileRepo struct {
	profiles map[uint]*models.UserProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uint]*models.UserProfile{}}
}

func (r *fakeProfileRepo) Create(profile *models.UserProfile) (*models.UserProfile, error) {
	profile.ID = uint(len(r.profiles) + 1)
	r.profiles[profile.UserID] = profile
	return profile, nil
}

func (r *fakeProfileRepo) FindByUserID(userID uint) (*models.UserProfile, error) {
	if p, ok := r.profiles[userID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProfileRepo) Update(profile *models.UserProfile) error {
	r.profiles[profile.UserID] = profile
	return nil
}

type fakeCheckinRepo struct {
	checkins map[string]*models.DailyCheckin // userID|date
}

func newFakeCheckinRepo() *fakeCheckinRepo {
	return &fakeCheckinRepo{checkins: map[string]*models.DailyCheckin{}}
}

func checkinKey(userID uint, date time.Time) string {
	return fmt.Sprintf("%d|%s", userID, date.Format("2006-01-02"))
}

func (r *fakeCheckinRepo) Create(checkin *models.DailyCheckin) (*models.DailyCheckin, error) {
	checkin.ID = uint(len(r.checkins) + 1)
	r.checkins[checkinKey(checkin.UserID, checkin.Date)] = checkin
	return checkin, nil
}

func (r *fakeCheckinRepo) FindByDate(userID uint, date time.Time) (*models.DailyCheckin, error) {
	if c, ok := r.checkins[checkinKey(userID, date)]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCheckinRepo) FindHistory(userID uint, limit int) ([]*models.DailyCheckin, error) {
	var out []*models.DailyCheckin
	for _, c := range r.checkins {
		if c.UserID == userID && len(out) < limit {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakePlanRepo struct {
	plans  []*models.TrainingPlan
	nextID uint
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{}
}

func (r *fakePlanRepo) ReplaceActive(plan *models.TrainingPlan) (*models.TrainingPlan, error) {
	for _, p := range r.plans {
		if p.UserID == plan.UserID {
			p.IsActive = false
		}
	}
	r.nextID++
	plan.ID = r.nextID
	plan.IsActive = true
	r.plans = append(r.plans, plan)
	return plan, nil
}

func (r *fakePlanRepo) FindActive(userID uint) (*models.TrainingPlan, error) {
	for i := len(r.plans) - 1; i >= 0; i-- {
		if r.plans[i].UserID == userID && r.plans[i].IsActive {
			return r.plans[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePlanRepo) FindHistory(userID uint, limit int) ([]*models.TrainingPlan, error) {
	var out []*models.TrainingPlan
	for i := len(r.plans) - 1; i >= 0; i-- {
		if r.plans[i].UserID == userID && len(out) < limit {
			out = append(out, r.plans[i])
		}
	}
	return out, nil
}

func (r *fakePlanRepo) SpliceDay(userID uint, day models.Weekday, entry models.DayEntry) (*models.TrainingPlan, error) {
	plan, err := r.FindActive(userID)
	if err != nil {
		return nil, err
	}
	week := plan.Week()
	if week == nil {
		week = models.WeekPlan{}
	}
	week[day] = entry
	plan.SetWeek(week)
	return plan, nil
}
