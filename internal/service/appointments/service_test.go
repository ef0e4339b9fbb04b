package appointments

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndmitko/SLN-SchedulingService/internal/domain"
)

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.AppointmentStatus
		to      domain.AppointmentStatus
		wantErr bool
	}{
		{"подтверждение ожидающей записи", domain.StatusPending, domain.StatusConfirmed, false},
		{"завершение ожидающей записи", domain.StatusPending, domain.StatusFinalized, false},
		{"завершение подтвержденной записи", domain.StatusConfirmed, domain.StatusFinalized, false},
		{"отмена через смену статуса запрещена", domain.StatusConfirmed, domain.StatusCancelled, true},
		{"возврат из finalized запрещен", domain.StatusFinalized, domain.StatusConfirmed, true},
		{"возврат из cancelled запрещен", domain.StatusCancelled, domain.StatusPending, true},
		{"повторное подтверждение запрещено", domain.StatusConfirmed, domain.StatusConfirmed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTransition(tt.from, tt.to)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
