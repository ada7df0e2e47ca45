package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
// Дата и длительность дополнительно проверяются генератором слотов
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.TotalPrice < 0 {
		return fmt.Errorf("%w: totalPrice must not be negative", ErrInvalidInput)
	}

	if hasIdentity(req) && strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required when customer contact is provided", ErrInvalidInput)
	}

	return nil
}

// hasIdentity возвращает true, если указан хотя бы один контакт клиента
func hasIdentity(req *Request) bool {
	nonEmpty := func(s *string) bool {
		return s != nil && strings.TrimSpace(*s) != ""
	}
	return nonEmpty(req.CustomerEmail) || nonEmpty(req.CustomerPhone)
}
