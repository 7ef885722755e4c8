package dto

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// ChatHistoryItem mirrors the wire shape of one stored exchange.
type ChatHistoryItem struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}
