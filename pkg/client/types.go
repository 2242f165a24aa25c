package client

// ChatRequest is the payload for POST /chat.
type ChatRequest struct {
	ReqID   string `json:"req_id,omitempty"`
	Message string `json:"message"`
}

// ChatReply is the assistant's answer to a chat request.
type ChatReply struct {
	ReqID      string `json:"req_id"`
	Reply      string `json:"reply"`
	DurationMs int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}
