package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type slotQuery struct {
	Time     string  `json:"time" validate:"required,hhmm"`
	Duration int     `json:"durationMinutes" validate:"min=1,max=1440"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

func TestValidateStruct(t *testing.T) {
	email := "client@example.com"
	assert.NoError(t, ValidateStruct(&slotQuery{Time: "09:30", Duration: 60, Email: &email}))

	err := ValidateStruct(&slotQuery{Time: "9:30", Duration: 0})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "slotQuery.time: hhmm")
		assert.Contains(t, err.Error(), "slotQuery.durationMinutes: min=1")
	}

	bad := "not-an-email"
	err = ValidateStruct(&slotQuery{Time: "24:00", Duration: 30, Email: &bad})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "slotQuery.email: email")
	}
}
