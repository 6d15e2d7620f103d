package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-LabReservationService/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	ResourceID   string // ID компьютера
	ResourceName string // Имя компьютера от клиента (опционально)
	Date         string // Дата в формате YYYY-MM-DD
	SlotID       string // ID слота из каталога
	UserID       string // ID пользователя (из токена)
	UserName     string // Отображаемое имя пользователя (из токена)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID           string
	ResourceID   string
	ResourceName string
	Date         types.DateString
	SlotID       string
	SlotLabel    string
	UserID       string
	UserName     string
	Status       string
	CreatedAt    time.Time
}
