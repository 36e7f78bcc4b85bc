package ai

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ChrisRobinT/forAthlete/internal/models"
)

// SystemPromptCoach - системный промпт тренера
const SystemPromptCoach = "You are an experienced endurance coach specializing in running and badminton training."

// DefaultPlannedWorkout подставляется, когда на сегодня нет плана
const DefaultPlannedWorkout = "Threshold run: 6-8 × 800m @ 3:20-3:25, jog rest 200m"

// Coach строит промпты и разбирает ответы генеративного сервиса.
// Все решения по содержанию тренировок делегированы модели,
// Coach отвечает только за структуру запроса и валидацию ответа.
type Coach struct {
	llm Chatter
}

func NewCoach(llm Chatter) *Coach {
	return &Coach{llm: llm}
}

// Recommendation - результат рекомендации. Ошибки апстрима не
// пробрасываются: Failed=true и текст с описанием ошибки, чтобы
// вызывающий сам решил, показывать как текст или как ошибку.
type Recommendation struct {
	Text          string
	Failed        bool
	FailureReason string
}

// DailyRecommendation строит рекомендацию по утреннему чек-ину.
// Возвращает текст модели как есть, без разбора структуры.
func (co *Coach) DailyRecommendation(userName string, checkin *models.DailyCheckin, plannedWorkout string) Recommendation {
	if plannedWorkout == "" {
		plannedWorkout = DefaultPlannedWorkout
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Your athlete %s has completed their morning check-in.\n\n", userName)
	sb.WriteString("Today's metrics:\n")
	fmt.Fprintf(&sb, "- Sleep: %.1f hours, quality %s/5\n", checkin.SleepHours, orNA(checkin.SleepQuality))
	fmt.Fprintf(&sb, "- HRV: %d ms\n", checkin.HRV)
	fmt.Fprintf(&sb, "- Resting HR: %d bpm\n", checkin.RHR)
	fmt.Fprintf(&sb, "- Energy level: %s/5\n", orNA(checkin.EnergyLevel))
	fmt.Fprintf(&sb, "- Soreness level: %s/5\n", orNA(checkin.SorenessLevel))
	fmt.Fprintf(&sb, "- Notes: %s\n\n", orNone(checkin.Notes))
	fmt.Fprintf(&sb, "Planned workout: %s\n\n", plannedWorkout)
	sb.WriteString(`Recovery guide:
- green (good sleep and energy, low soreness): proceed with the planned workout
- yellow (mixed signals): modify intensity or volume
- red (poor sleep, low energy, high soreness): prioritize rest

Based on these recovery metrics, provide a brief recommendation (2-3 sentences):
1. Should they do the planned workout, modify it, or rest?
2. Any specific adjustments needed (intensity, volume, etc.)?
3. Brief reasoning based on the metrics.

Keep it concise and actionable.`)

	messages := []Message{
		{Role: "system", Content: SystemPromptCoach},
		{Role: "user", Content: sb.String()},
	}

	text, err := co.llm.Chat(messages, 0.7, 200)
	if err != nil {
		return Recommendation{
			Text:          fmt.Sprintf("Error getting recommendation: %v", err),
			Failed:        true,
			FailureReason: err.Error(),
		}
	}
	return Recommendation{Text: text}
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

// orNA рендерит опциональную шкальную метрику, "N/A" когда её нет
func orNA(v *int) string {
	if v == nil {
		return "N/A"
	}
	return strconv.Itoa(*v)
}
