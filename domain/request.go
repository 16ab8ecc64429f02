package domain

// AskRequest is the inbound request from a client front end.
type AskRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Language  string `json:"language,omitempty"`
	Location  string `json:"location,omitempty"`
	Prompt    string `json:"prompt"`
}

// AskResponse is the reply returned to the client.
type AskResponse struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
}
