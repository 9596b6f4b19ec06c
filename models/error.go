package models

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string
	Error   string
}

// HealthCheckResponse returns the health check response struct
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// CodesErrorResponse is returned by the raw codes endpoint when the
// backing file is missing or unreadable
type CodesErrorResponse struct {
	Error string       `json:"error"`
	Codes []CodeRecord `json:"codes"`
}

// UpdateResponse acknowledges a manual update trigger
type UpdateResponse struct {
	Message string `json:"message"`
}

// StatusResponse reports the backing file state and refresh interval
type StatusResponse struct {
	LocalFileExists bool  `json:"local_file_exists"`
	UpdateInterval  int64 `json:"update_interval"`
}
