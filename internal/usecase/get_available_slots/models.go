package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID      int64     // ID бизнеса
	Date            time.Time // Дата (используются только год, месяц, день)
	DurationMinutes int       // Длительность услуги в минутах
	CustomerEmail   *string   // Email клиента для определения сегмента (опционально)
	CustomerPhone   *string   // Телефон клиента для определения сегмента (опционально)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time              // Полночь запрошенного дня в часовом поясе бизнеса
	BusinessID      int64                  // ID бизнеса
	DurationMinutes int                    // Длительность услуги
	Segment         domain.CustomerSegment // Определенный сегмент клиента (может быть пустым)
	Slots           []types.TimeString     // Доступные времена начала по возрастанию
}
