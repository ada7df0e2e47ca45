package check_slot_availability

import "fmt"

// validateRequest проверяет поля, которые не проверяет генератор слотов
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}

	return nil
}
