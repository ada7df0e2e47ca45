package domain

// Параметры движка доступности
const (
	SlotStepMinutes        = 30  // Шаг сетки слотов
	DefaultOccurrenceLimit = 999 // Лимит повторений, если count не задан
	MinWorkerCapacity      = 1
)

// Значения по умолчанию
const (
	DefaultVIPRevenueThreshold = 1000.0
	DefaultTimezone            = "UTC"
)

// Ограничения бизнес-валидации
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 24 * 60
	MaxTimeBlockTitleLength   = 200
	MaxFallbackHours          = 24 * 30
	MaxOccurrenceWindowDays   = 366 // Максимальное окно выдачи вхождений блокировок
)

// Форматы даты и времени
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04" // Настенное время без часового пояса
)
