package models

// APIResponse is the envelope returned by write endpoints.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ReconcileResponse reports which branch an upsert took.
type ReconcileResponse struct {
	Created  bool `json:"created"`
	Affected bool `json:"affected"`
}

// BulkEarningsResponse reports how many records of a batch were applied.
// The batch is not atomic: on failure, Applied records are already written.
type BulkEarningsResponse struct {
	Applied    int  `json:"applied"`
	Total      int  `json:"total"`
	FailedYear *int `json:"failedYear,omitempty"`
}
