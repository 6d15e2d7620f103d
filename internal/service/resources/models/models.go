package models

import "github.com/m04kA/SMC-LabReservationService/internal/domain"

// ResourceView компьютер в каталоге для студентов
type ResourceView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	IsAvailable bool   `json:"isAvailable"` // можно бронировать
}

// CatalogResponse ответ со списком компьютеров
type CatalogResponse struct {
	Resources []ResourceView `json:"resources"`
}

// FromDomainResourceList конвертирует список domain моделей в DTO
func FromDomainResourceList(list []*domain.Resource) *CatalogResponse {
	resp := &CatalogResponse{
		Resources: make([]ResourceView, 0, len(list)),
	}
	for _, r := range list {
		resp.Resources = append(resp.Resources, ResourceView{
			ID:          r.ID,
			Name:        r.Name,
			Status:      string(r.Status),
			IsAvailable: r.IsAvailable(),
		})
	}
	return resp
}
