package domain

import "time"

// Business арендатор платформы (компания, оказывающая выездные услуги)
type Business struct {
	ID             int64
	Name           string
	Timezone       string
	OperatingHours *OperatingHours // nil = не настроено или не удалось разобрать
	RosterSize     int             // Активные сотрудники (без владельца)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Capacity возвращает количество параллельных заказов бизнеса
func (b *Business) Capacity() int {
	return WorkerCapacity(b.RosterSize)
}

// Location возвращает часовой пояс бизнеса, fallback при ошибке
func (b *Business) Location(fallback *time.Location) *time.Location {
	if b.Timezone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return fallback
	}
	return loc
}
