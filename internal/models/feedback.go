package models

// EvaluateBlockRequest carries a user's custom training block for AI
// review. The block structure is client-defined; we pass it through
// to the prompt as-is.
type EvaluateBlockRequest struct {
	Block map[string]any `json:"block" binding:"required"`
}

// EvaluateBlockResponse is the coach feedback returned to the caller.
type EvaluateBlockResponse struct {
	Feedback string `json:"feedback"`
}
