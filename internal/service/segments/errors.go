package segments

import "errors"

var (
	// ErrHistoryLookup возвращается, когда историю клиента не удалось прочитать внутри транзакции
	ErrHistoryLookup = errors.New("segments: customer history lookup failed")
)
