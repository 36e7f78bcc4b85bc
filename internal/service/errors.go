package service

import "errors"

// Ошибки сервисного слоя. Хендлеры различают их через errors.Is
// и переводят в HTTP-статусы; всё локально проверяемое ловится
// до обращения к генеративному сервису.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
	ErrDayConflict     = errors.New("preferred and avoid run days overlap")
	ErrBadWeekday      = errors.New("unknown weekday")

	ErrCheckinNotFound = errors.New("no check-in found")
	ErrCheckinExists   = errors.New("check-in already exists for this date")

	ErrPlanNotFound = errors.New("no active plan")

	ErrCompletionNotFound = errors.New("completion not found")
)
