package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// RecurrenceRequest правило повторения блокировки
type RecurrenceRequest struct {
	Pattern string     `json:"pattern"`
	Until   *time.Time `json:"until,omitempty"` // Дата окончания включительно
	Count   *int       `json:"count,omitempty"` // Общее количество повторений
}

// CreateTimeBlockRequest запрос на создание блокировки
// Start/End задаются в настенном времени бизнеса
type CreateTimeBlockRequest struct {
	BusinessID  int64              `json:"-"`
	Title       string             `json:"title"`
	Kind        string             `json:"kind"`
	Description *string            `json:"description,omitempty"`
	Start       time.Time          `json:"start"`
	End         time.Time          `json:"end"`
	Recurrence  *RecurrenceRequest `json:"recurrence,omitempty"`
}

// ToDomainTimeBlock конвертирует запрос в domain модель (без ID)
func (r *CreateTimeBlockRequest) ToDomainTimeBlock() *domain.TimeBlock {
	block := &domain.TimeBlock{
		BusinessID:  r.BusinessID,
		Title:       r.Title,
		Kind:        domain.BlockKind(r.Kind),
		Description: r.Description,
		Start:       r.Start,
		End:         r.End,
	}
	if block.Kind == "" {
		block.Kind = domain.BlockKindUnavailable
	}
	if r.Recurrence != nil {
		block.Recurrence = &domain.Recurrence{
			Pattern: domain.RecurrencePattern(r.Recurrence.Pattern),
			Until:   r.Recurrence.Until,
			Count:   r.Recurrence.Count,
		}
	}
	return block
}

// Response модели

// RecurrenceResponse правило повторения
type RecurrenceResponse struct {
	Pattern string  `json:"pattern"`
	Until   *string `json:"until,omitempty"`
	Count   *int    `json:"count,omitempty"`
}

// TimeBlockResponse блокировка времени
type TimeBlockResponse struct {
	ID          string              `json:"id"`
	BusinessID  int64               `json:"businessId"`
	Title       string              `json:"title"`
	Kind        string              `json:"kind"`
	Description *string             `json:"description,omitempty"`
	Start       string              `json:"start"`
	End         string              `json:"end"`
	Recurrence  *RecurrenceResponse `json:"recurrence,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// TimeBlockListResponse список блокировок
type TimeBlockListResponse struct {
	TimeBlocks []TimeBlockResponse `json:"timeBlocks"`
}

// OccurrenceResponse конкретное вхождение блокировки
type OccurrenceResponse struct {
	ID       string `json:"id"`
	BlockID  string `json:"blockId"`
	Sequence int    `json:"sequence"`
	Title    string `json:"title"`
	Kind     string `json:"kind"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

// OccurrenceListResponse вхождения блокировок в окне
type OccurrenceListResponse struct {
	From        string               `json:"from"`
	To          string               `json:"to"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
}

// Методы конвертации

// FromDomainTimeBlock конвертирует domain модель в DTO
func FromDomainTimeBlock(b *domain.TimeBlock) *TimeBlockResponse {
	if b == nil {
		return nil
	}

	resp := &TimeBlockResponse{
		ID:          b.ID.String(),
		BusinessID:  b.BusinessID,
		Title:       b.Title,
		Kind:        string(b.Kind),
		Description: b.Description,
		Start:       b.Start.Format(domain.DateTimeFormat),
		End:         b.End.Format(domain.DateTimeFormat),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	if b.Recurrence != nil {
		resp.Recurrence = &RecurrenceResponse{
			Pattern: string(b.Recurrence.Pattern),
			Count:   b.Recurrence.Count,
		}
		if b.Recurrence.Until != nil {
			until := b.Recurrence.Until.Format(domain.DateFormat)
			resp.Recurrence.Until = &until
		}
	}

	return resp
}

// FromDomainTimeBlockList конвертирует список domain моделей в DTO
func FromDomainTimeBlockList(blocks []domain.TimeBlock) *TimeBlockListResponse {
	resp := &TimeBlockListResponse{
		TimeBlocks: make([]TimeBlockResponse, 0, len(blocks)),
	}

	for i := range blocks {
		resp.TimeBlocks = append(resp.TimeBlocks, *FromDomainTimeBlock(&blocks[i]))
	}

	return resp
}

// FromDomainOccurrences конвертирует вхождения в DTO
func FromDomainOccurrences(window domain.Interval, occurrences []domain.Occurrence) *OccurrenceListResponse {
	resp := &OccurrenceListResponse{
		From:        window.Start.Format(domain.DateFormat),
		To:          window.End.Format(domain.DateFormat),
		Occurrences: make([]OccurrenceResponse, 0, len(occurrences)),
	}

	for _, o := range occurrences {
		resp.Occurrences = append(resp.Occurrences, OccurrenceResponse{
			ID:       o.ID.String(),
			BlockID:  o.BlockID.String(),
			Sequence: o.Sequence,
			Title:    o.Title,
			Kind:     string(o.Kind),
			Start:    o.Interval.Start.Format(domain.DateTimeFormat),
			End:      o.Interval.End.Format(domain.DateTimeFormat),
		})
	}

	return resp
}
