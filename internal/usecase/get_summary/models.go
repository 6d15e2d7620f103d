package get_summary

import "github.com/m04kA/SMC-LabReservationService/pkg/types"

// Request модель запроса недельной сводки
type Request struct {
	ResourceID string
}

// SlotStatus занятый слот и статус брони
type SlotStatus struct {
	SlotID string
	Status string
}

// DaySummary сводка за один день окна
type DaySummary struct {
	Date           types.DateString
	Slots          []SlotStatus // только занятые слоты, в порядке каталога
	AvailableCount int          // не занятых и не прошедших слотов
}

// Response сводка по дням [From, To]; Days содержит все дни окна по порядку
type Response struct {
	ResourceID string
	From       types.DateString
	To         types.DateString
	Days       []DaySummary
}
