package dto

type SelectRequest struct {
	SessionID string `json:"session_id"`
	ObjectID  string `json:"object_id"`
}

type ClearSelectionRequest struct {
	SessionID string `json:"session_id"`
}

type SelectionResponse struct {
	SessionID string   `json:"session_id"`
	Selected  []string `json:"selected"`
	Evicted   *string  `json:"evicted,omitempty"`
	Ready     bool     `json:"ready"`
}
