package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ChrisRobinT/forAthlete/internal/models"
)

// ErrGeneration - сбой генерации плана: ошибка апстрима или
// ответ, который не разобрался в ожидаемый JSON. Не ретраится.
var ErrGeneration = errors.New("plan generation failed")

// planningRules - фиксированный свод правил планирования.
// Правила - это текст промпта, а не код: модель обязана их
// соблюдать, сервер проверяет только структуру ответа.
const planningRules = `Planning rules (follow ALL of them):
1. Badminton sessions are fixed: keep them exactly on the listed days with the listed durations.
2. Never schedule a hard running workout (intervals, tempo, threshold) the day after a hard or competition badminton session.
3. Keep total weekly running volume within 10% of the athlete's target.
4. Match workout variety to experience: under 2 years of running means simple steady runs only; 3+ years means intervals, tempo and a long run across the week.
5. If a target race is set, include at least one race-specific workout per week.
6. Respect current injuries: substitute workouts that load the injured area with cross-training or rest.
7. Schedule strength training twice per week, never on consecutive days and never the day before hard badminton.
8. Add short core work three times per week, mentioned in the notes of existing sessions.
9. Every fourth week is a recovery week: cut running volume by about 30%.
10. Never increase weekly load more than 10% over the athlete's current volume.
11. Prefer the athlete's preferred running days; never schedule runs on the avoid days.
12. Include at least one full rest day.
13. A run and badminton on the same day only if both are light.`

// weekJSONFormat - требуемая форма ответа генерации недели
const weekJSONFormat = `Respond with ONLY a JSON object, no explanations and no markdown. The object must have exactly these seven keys: "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday". Each value is an object:
{"type": "run" | "badminton" | "rest" | "strength" | "cross-training", "workout": "description", "duration_minutes": 45, "notes": "brief notes"}`

// dayJSONFormat - требуемая форма ответа для одного дня
const dayJSONFormat = `Respond with ONLY a JSON object for that single day, no explanations and no markdown:
{"type": "run" | "badminton" | "rest" | "strength" | "cross-training", "workout": "description", "duration_minutes": 45, "notes": "brief notes"}`

// GenerateWeek генерирует план на неделю с weekStart (понедельник).
// Даты дней проставляются сервером как weekStart + смещение,
// что бы модель ни написала в своём ответе.
func (co *Coach) GenerateWeek(userName string, profile *models.UserProfile, weekStart time.Time) (models.WeekPlan, error) {
	prompt := co.buildWeekPrompt(userName, profile, weekStart)

	response, err := co.llm.Chat([]Message{
		{Role: "system", Content: SystemPromptCoach},
		{Role: "user", Content: prompt},
	}, 0.7, 2048)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var raw map[string]models.DayEntry
	cleaned := extractJSON(response)
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON in response: %v", ErrGeneration, err)
	}

	week := models.WeekPlan{}
	for i, wd := range models.Weekdays {
		entry, ok := raw[string(wd)]
		if !ok {
			return nil, fmt.Errorf("%w: response is missing day %q", ErrGeneration, wd)
		}
		if !entry.Type.Valid() {
			return nil, fmt.Errorf("%w: unknown workout type %q for %s", ErrGeneration, entry.Type, wd)
		}
		if entry.DurationMinutes < 0 {
			return nil, fmt.Errorf("%w: negative duration for %s", ErrGeneration, wd)
		}
		entry.Date = weekStart.AddDate(0, 0, i).Format("2006-01-02")
		week[wd] = entry
	}
	return week, nil
}

// RegenerateDay генерирует замену для одного дня существующего плана.
// Остальная неделя передаётся моделью как read-only контекст.
func (co *Coach) RegenerateDay(userName string, profile *models.UserProfile, day models.Weekday, date time.Time, week models.WeekPlan) (models.DayEntry, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Athlete: %s\n", userName)
	sb.WriteString(co.renderProfile(profile))

	fmt.Fprintf(&sb, "\nRegenerate the workout for %s (%s) in the current week plan.\n", day, date.Format("2006-01-02"))
	sb.WriteString("Rest of the week (do NOT change these days, keep the new day consistent with them):\n")
	for _, wd := range models.Weekdays {
		if wd == day {
			continue
		}
		if e, ok := week[wd]; ok {
			fmt.Fprintf(&sb, "- %s: %s, %s, %d min\n", wd, e.Type, e.Workout, e.DurationMinutes)
		}
	}

	if s := badmintonOn(profile, day); s != nil {
		fmt.Fprintf(&sb, "\nBadminton is fixed on this day: %d min, %s intensity, %s.\n",
			s.DurationMinutes, s.Intensity, s.Type)
	} else {
		sb.WriteString("\nNo badminton is scheduled on this day.\n")
	}

	if prev, ok := week[day]; ok {
		fmt.Fprintf(&sb, "\nPreviously scheduled: %s, %s, %d min. Propose something materially different, do not repeat it.\n",
			prev.Type, prev.Workout, prev.DurationMinutes)
	}
	fmt.Fprintf(&sb, "Keep the weekly running volume near the target of %d minutes.\n\n", profile.WeeklyRunVolumeTarget)
	sb.WriteString(dayJSONFormat)

	entry, err := co.requestDay(sb.String())
	if err != nil {
		return models.DayEntry{}, err
	}
	// Дата дня принадлежит плану, а не модели
	entry.Date = date.Format("2006-01-02")
	return entry, nil
}

// AdjustToday корректирует сегодняшнюю тренировку по чек-ину.
// Флаги восстановления считаются локально, но только как контекст
// промпта: решение оставить/смягчить/отдыхать принимает модель.
func (co *Coach) AdjustToday(current models.DayEntry, checkin *models.DailyCheckin, recommendation string) (models.DayEntry, error) {
	flags := recoveryFlags(checkin)

	var sb strings.Builder
	sb.WriteString("Today's planned workout:\n")
	fmt.Fprintf(&sb, "- type: %s\n- workout: %s\n- duration: %d min\n- notes: %s\n\n",
		current.Type, current.Workout, current.DurationMinutes, current.Notes)

	sb.WriteString("This morning's check-in:\n")
	fmt.Fprintf(&sb, "- Sleep: %.1f hours, quality %s/5\n", checkin.SleepHours, orNA(checkin.SleepQuality))
	fmt.Fprintf(&sb, "- HRV: %d ms, resting HR: %d bpm\n", checkin.HRV, checkin.RHR)
	fmt.Fprintf(&sb, "- Energy: %s/5, soreness: %s/5\n", orNA(checkin.EnergyLevel), orNA(checkin.SorenessLevel))
	if len(checkin.SorenessAreas) > 0 {
		fmt.Fprintf(&sb, "- Sore areas: %s\n", strings.Join(checkin.SorenessAreas, ", "))
	}
	if len(flags) > 0 {
		fmt.Fprintf(&sb, "- Recovery flags: %s\n", strings.Join(flags, "; "))
	}
	if recommendation != "" {
		fmt.Fprintf(&sb, "\nCoach recommendation already given today: %s\n", recommendation)
	}

	sb.WriteString(`
Adjust today's workout for the athlete's recovery state:
- poor recovery: replace with rest or very light activity
- moderate recovery: reduce intensity and/or volume
- good recovery: keep the workout as planned

`)
	sb.WriteString(dayJSONFormat)

	entry, err := co.requestDay(sb.String())
	if err != nil {
		return models.DayEntry{}, err
	}
	// Дата исходного дня сохраняется, что бы модель ни ответила
	entry.Date = current.Date
	return entry, nil
}

// requestDay - общий путь "промпт -> один DayEntry"
func (co *Coach) requestDay(prompt string) (models.DayEntry, error) {
	response, err := co.llm.Chat([]Message{
		{Role: "system", Content: SystemPromptCoach},
		{Role: "user", Content: prompt},
	}, 0.7, 512)
	if err != nil {
		return models.DayEntry{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var entry models.DayEntry
	if err := json.Unmarshal([]byte(extractJSON(response)), &entry); err != nil {
		return models.DayEntry{}, fmt.Errorf("%w: invalid JSON in response: %v", ErrGeneration, err)
	}
	if !entry.Type.Valid() {
		return models.DayEntry{}, fmt.Errorf("%w: unknown workout type %q", ErrGeneration, entry.Type)
	}
	if entry.DurationMinutes < 0 {
		return models.DayEntry{}, fmt.Errorf("%w: negative duration", ErrGeneration)
	}
	return entry, nil
}

// buildWeekPrompt собирает промпт генерации недели.
// Структура фиксированная, содержание - из профиля.
func (co *Coach) buildWeekPrompt(userName string, profile *models.UserProfile, weekStart time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Build a 7-day training plan for %s, week starting %s (Monday).\n\n",
		userName, weekStart.Format("2006-01-02"))
	sb.WriteString(co.renderProfile(profile))
	sb.WriteString("\n")
	sb.WriteString(planningRules)
	sb.WriteString("\n\n")
	sb.WriteString(weekJSONFormat)
	return sb.String()
}

// renderProfile рендерит профиль в фиксированном порядке строк
func (co *Coach) renderProfile(profile *models.UserProfile) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Primary sport: %s\n", profile.PrimarySport)

	sessions := profile.BadmintonSessions.Data()
	if len(sessions) > 0 {
		sb.WriteString("Fixed badminton schedule (day: duration, intensity, kind):\n")
		for _, s := range sessions {
			fmt.Fprintf(&sb, "- %s: %d min, %s, %s\n", s.Day, s.DurationMinutes, s.Intensity, s.Type)
		}
	} else {
		sb.WriteString("No fixed badminton sessions this week.\n")
	}

	if profile.RunningGoal != "" {
		fmt.Fprintf(&sb, "Running goal: %s\n", profile.RunningGoal)
	}
	if profile.TargetRace != "" {
		fmt.Fprintf(&sb, "Target race: %s\n", profile.TargetRace)
	}
	fmt.Fprintf(&sb, "Weekly running volume target: %d minutes\n", profile.WeeklyRunVolumeTarget)

	exp := profile.RunningExperience.Data()
	facts := []string{}
	if exp.YearsRunning > 0 {
		facts = append(facts, fmt.Sprintf("%d years running", exp.YearsRunning))
	}
	if exp.CurrentWeeklyVolume > 0 {
		facts = append(facts, fmt.Sprintf("current volume %d min/week", exp.CurrentWeeklyVolume))
	}
	if exp.LongestRun > 0 {
		facts = append(facts, fmt.Sprintf("longest run %d min", exp.LongestRun))
	}
	for dist, t := range exp.RecentRaceTimes {
		facts = append(facts, fmt.Sprintf("%s in %s", dist, t))
	}
	if exp.TrainingPhase != "" {
		facts = append(facts, fmt.Sprintf("training phase: %s", exp.TrainingPhase))
	}
	if len(facts) > 0 {
		fmt.Fprintf(&sb, "Running experience: %s\n", strings.Join(facts, ", "))
	}

	sb.WriteString("Constraints:\n")
	if len(profile.PreferredRunDays) > 0 {
		fmt.Fprintf(&sb, "- preferred running days: %s\n", strings.Join(profile.PreferredRunDays, ", "))
	}
	if len(profile.AvoidRunDays) > 0 {
		fmt.Fprintf(&sb, "- never run on: %s\n", strings.Join(profile.AvoidRunDays, ", "))
	}
	for _, inj := range profile.CurrentInjuries.Data() {
		fmt.Fprintf(&sb, "- current injury: %s (%s) %s\n", inj.Area, inj.Severity, inj.Notes)
	}
	if profile.SleepAverage > 0 {
		fmt.Fprintf(&sb, "- average sleep: %.1f hours\n", profile.SleepAverage)
	}
	if profile.OtherCommitments != "" {
		fmt.Fprintf(&sb, "- other commitments: %s\n", profile.OtherCommitments)
	}

	return sb.String()
}

// recoveryFlags - качественные флаги плохого восстановления.
// Пороги фиксированные: сон < 6ч, качество сна <= 2,
// энергия <= 2, крепатура >= 4. Незаполненная метрика не флагуется.
func recoveryFlags(c *models.DailyCheckin) []string {
	var flags []string
	if c.SleepHours > 0 && c.SleepHours < 6 {
		flags = append(flags, "short sleep (under 6h)")
	}
	if c.SleepQuality != nil && *c.SleepQuality <= 2 {
		flags = append(flags, "poor sleep quality")
	}
	if c.EnergyLevel != nil && *c.EnergyLevel <= 2 {
		flags = append(flags, "low energy")
	}
	if c.SorenessLevel != nil && *c.SorenessLevel >= 4 {
		flags = append(flags, "high soreness")
	}
	return flags
}

// badmintonOn ищет бадминтонную сессию на данный день
func badmintonOn(profile *models.UserProfile, day models.Weekday) *models.BadmintonSession {
	for _, s := range profile.BadmintonSessions.Data() {
		if s.Day == string(day) {
			return &s
		}
	}
	return nil
}

// extractJSON убирает markdown-обёртку ```json ... ``` и мусор
// вокруг объекта, оставляя голый JSON
func extractJSON(s string) string {
	if idx := strings.Index(s, "```json"); idx != -1 {
		s = s[idx+7:]
	} else if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:]
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return strings.TrimSpace(s)
	}
	return s[start : end+1]
}
