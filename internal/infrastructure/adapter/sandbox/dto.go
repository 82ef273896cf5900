package sandbox

// ErrorResponse represents an error returned by the simulated provider
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StatusResponse is returned for a verified status inquiry
type StatusResponse struct {
	Status   string `json:"status"`
	TxCode   string `json:"txcode"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// WithdrawalResponse is returned for an accepted withdrawal
type WithdrawalResponse struct {
	Status string `json:"status"`
	TxCode string `json:"txcode"`
}

// PaymentResponse is returned when the payment form is opened
type PaymentResponse struct {
	Status   string `json:"status"`
	TxCode   string `json:"txcode"`
	Merchant string `json:"merchant"`
}
