package cancel_reservation

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
