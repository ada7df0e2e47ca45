package domain

import "time"

// JobStatus статус заказа
type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// Job заказ (бронирование), занимающий исполнителя
type Job struct {
	ID              int64
	BusinessID      int64
	CustomerID      *int64
	ScheduledAt     time.Time
	HasTime         bool // false = заказ только на дату, без конкретного времени
	DurationMinutes int
	Status          JobStatus
	TotalPrice      float64
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CountsAgainstCapacity возвращает true, если заказ занимает исполнителя при расчете доступности
// Учитываются только запланированные заказы с явно заданным временем
func (j *Job) CountsAgainstCapacity() bool {
	return j.Status == JobStatusScheduled && j.HasTime && j.DurationMinutes > 0
}

// Interval интервал, занимаемый заказом
func (j *Job) Interval() Interval {
	return NewInterval(j.ScheduledAt, time.Duration(j.DurationMinutes)*time.Minute)
}

// Customer клиент бизнеса
type Customer struct {
	ID         int64
	BusinessID int64
	Name       string
	Email      *string
	Phone      *string
}
