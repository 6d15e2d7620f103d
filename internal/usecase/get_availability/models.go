package get_availability

import "github.com/m04kA/SMC-LabReservationService/pkg/types"

// Request модель запроса доступности слотов
type Request struct {
	ResourceID string
	Date       string // YYYY-MM-DD
}

// SlotView состояние одного слота на дату
type SlotView struct {
	SlotID     string
	Label      string
	StartHour  int
	EndHour    int
	IsBooked   bool
	IsPast     bool
	Selectable bool // не занят, не в прошлом и компьютер доступен
}

// Response слоты в порядке каталога
type Response struct {
	ResourceID     string
	ResourceName   string
	ResourceStatus string
	Date           types.DateString
	Slots          []SlotView
}
