package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	BusinessID      int64            // ID бизнеса
	Date            time.Time        // Дата бронирования (без времени)
	Time            types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность услуги в минутах
	CustomerName    string           // Имя клиента (для нового клиента)
	CustomerEmail   *string          // Email клиента (опционально)
	CustomerPhone   *string          // Телефон клиента (опционально)
	TotalPrice      float64          // Стоимость заказа
	Notes           *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64                  // ID созданного заказа
	BusinessID      int64                  // ID бизнеса
	CustomerID      *int64                 // ID клиента, если клиент указан
	Date            time.Time              // Дата бронирования
	Time            types.TimeString       // Время начала
	DurationMinutes int                    // Длительность в минутах
	Status          domain.JobStatus       // Статус заказа
	Segment         domain.CustomerSegment // Сегмент клиента на момент бронирования
	TotalPrice      float64                // Стоимость
	Notes           *string                // Заметки
	CreatedAt       time.Time              // Время создания
}
