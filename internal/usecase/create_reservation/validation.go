package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	"github.com/m04kA/SMC-LabReservationService/pkg/types"
)

// validateRequest валидирует входные данные и возвращает разобранные дату и слот
func validateRequest(req *Request) (types.DateString, domain.SlotDefinition, error) {
	if strings.TrimSpace(req.ResourceID) == "" {
		return "", domain.SlotDefinition{}, fmt.Errorf("%w: resourceId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserID) == "" {
		return "", domain.SlotDefinition{}, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserName) == "" {
		return "", domain.SlotDefinition{}, fmt.Errorf("%w: userName is required", ErrInvalidInput)
	}

	date, err := types.ParseDateString(req.Date)
	if err != nil {
		return "", domain.SlotDefinition{}, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	slot, ok := domain.FindSlot(domain.SlotID(req.SlotID))
	if !ok {
		return "", domain.SlotDefinition{}, fmt.Errorf("%w: unknown slot %q", ErrInvalidInput, req.SlotID)
	}

	return date, slot, nil
}
