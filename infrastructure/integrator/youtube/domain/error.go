package youtubedomain

// ErrorResponse representa a estrutura de erro da YouTube Data API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Errors  []ErrorReason `json:"errors"`
}

type ErrorReason struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// IsQuotaExceeded verifica se a API recusou a chamada por falta de cota
func (e *ErrorResponse) IsQuotaExceeded() bool {
	for _, r := range e.Error.Errors {
		if r.Reason == "quotaExceeded" || r.Reason == "dailyLimitExceeded" {
			return true
		}
	}
	return false
}
