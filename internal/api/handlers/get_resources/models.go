package get_resources

import "github.com/m04kA/SMC-LabReservationService/internal/service/resources/models"

// ResourceResponse компьютер в ответе
type ResourceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	IsAvailable bool   `json:"isAvailable"`
}

// ResourcesResponse HTTP response model
type ResourcesResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP ответ
func FromServiceResponse(resp *models.CatalogResponse) *ResourcesResponse {
	out := &ResourcesResponse{
		Resources: make([]ResourceResponse, 0, len(resp.Resources)),
	}
	for _, r := range resp.Resources {
		out.Resources = append(out.Resources, ResourceResponse{
			ID:          r.ID,
			Name:        r.Name,
			Status:      r.Status,
			IsAvailable: r.IsAvailable,
		})
	}
	return out
}
