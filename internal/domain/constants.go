package domain

import "time"

// Пороговые значения производных вычислений
const (
	// LongSessionHours граница разбиения по длительности
	// Сессия с timeSlot >= 2 считается длинной, граница включается в "длинные"
	LongSessionHours = 2.0

	// DefaultNearingExpiryWindow окно предупреждения об истечении сессии
	DefaultNearingExpiryWindow = 15 * time.Minute
)

// Пороги загрузки комнат (в процентах)
// Всё, что выше BusyLoadPercent - "busy", выше CriticalLoadPercent - "critical"
const (
	BusyLoadPercent     = 50.0
	CriticalLoadPercent = 85.0
)

// Business validation constants
const (
	MaxStudentNameLength = 200
	MaxBookTitleLength   = 300
	MaxRoomNumberLength  = 50
)
