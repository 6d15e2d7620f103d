package confirm_email

// ConfirmEmailRequest HTTP request model
type ConfirmEmailRequest struct {
	Code string `json:"code"`
}
