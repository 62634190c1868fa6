package api

type ErrorResponse struct {
	Error string `json:"error" example:"Unknown state: UNSUPPORTED_STATUS"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
