package dto

// FailureResponse is the generic error body. Messages never carry internal
// error details.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func Failure(message string) FailureResponse {
	return FailureResponse{Success: false, Error: message}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Storage   string `json:"storage"`
	DB        string `json:"db"`
}
