package models

import (
	"time"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
)

// OverviewResponse сводные счетчики для панели администратора
type OverviewResponse struct {
	TotalResources     int `json:"totalResources"`
	ActiveReservations int `json:"activeReservations"`
	MaintenanceCount   int `json:"maintenanceCount"`
}

// UpdateResourceStatusRequest запрос на смену статуса компьютера
type UpdateResourceStatusRequest struct {
	Status string `json:"status"`
}

// ResourceResponse данные компьютера
type ResourceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResourceListResponse ответ со списком компьютеров
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// FromDomainResourceList конвертирует список domain моделей в DTO
func FromDomainResourceList(list []*domain.Resource) *ResourceListResponse {
	resp := &ResourceListResponse{
		Resources: make([]ResourceResponse, 0, len(list)),
	}
	for _, r := range list {
		resp.Resources = append(resp.Resources, ResourceResponse{
			ID:        r.ID,
			Name:      r.Name,
			Status:    string(r.Status),
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return resp
}
