package bedrock

// invokeRequest is the JSON body sent to the model. The field names follow
// the Llama instruct wire contract.
type invokeRequest struct {
	Prompt      string  `json:"prompt"`
	MaxGenLen   int     `json:"max_gen_len"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

// invokeResponse is the subset of the model's response envelope the
// generator consumes.
type invokeResponse struct {
	Generation string `json:"generation"`
}
