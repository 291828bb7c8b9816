package api

// GenerateRequest defines the payload for the content generation endpoint.
// Field names follow the front end's contract.
type GenerateRequest struct {
	BlogTopic string `json:"blogTopic"`
	Level     string `json:"level"`
	Context   string `json:"context"`
}

// GenerateResponse defines the successful response for the content
// generation endpoint.
type GenerateResponse struct {
	Blog    string `json:"blog"`
	Message string `json:"message"`
}

// Response messages. The wording is part of the external contract; the
// message is the only place a persistence failure is visible to the caller.
const (
	msgUploadSucceeded = "Blog content successfully generated and uploaded."
	msgUploadFailed    = "Failed to upload blog content to S3."
)
