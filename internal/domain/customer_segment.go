package domain

// CustomerSegment вычисляемая классификация клиента по истории заказов
type CustomerSegment string

const (
	SegmentNone      CustomerSegment = "" // Сегмент не определен
	SegmentNew       CustomerSegment = "new"
	SegmentReturning CustomerSegment = "returning"
	SegmentVIP       CustomerSegment = "vip"
)

// IsValid проверяет, что сегмент является одним из определенных
func (s CustomerSegment) IsValid() bool {
	switch s {
	case SegmentNew, SegmentReturning, SegmentVIP:
		return true
	default:
		return false
	}
}

// CustomerHistory агрегированная история завершенных заказов клиента
type CustomerHistory struct {
	CustomerID     int64
	CompletedJobs  int
	CompletedValue float64
}

// ClassifySegment определяет сегмент клиента:
// выручка > threshold → vip, есть завершенные заказы → returning, иначе new
func ClassifySegment(history *CustomerHistory, vipThreshold float64) CustomerSegment {
	if history == nil || history.CompletedJobs == 0 {
		return SegmentNew
	}
	if history.CompletedValue > vipThreshold {
		return SegmentVIP
	}
	return SegmentReturning
}
