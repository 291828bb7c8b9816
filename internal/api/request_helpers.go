package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/blogsmith/blogsmith-api/internal/domain"
)

// maxRequestBytes bounds how much of a request body is read. Topics and
// context are short free-form text; a megabyte is generous.
const maxRequestBytes = 1 << 20

// decodeGenerateRequest reads and decodes the request body. Any read or
// parse failure maps to domain.ErrInvalidPayload; field-level validation
// happens later in the domain constructor.
func decodeGenerateRequest(r *http.Request) (GenerateRequest, error) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		return GenerateRequest{}, domain.ErrInvalidPayload
	}

	var req GenerateRequest
	if err := unmarshalGatewayStyle(payload, &req); err != nil {
		return GenerateRequest{}, domain.ErrInvalidPayload
	}

	return req, nil
}

// unmarshalGatewayStyle accepts the bare request object as well as the
// serverless-gateway convention of nesting it under a "body" field, either
// as an object or as a JSON-encoded string.
func unmarshalGatewayStyle(payload []byte, req *GenerateRequest) error {
	var envelope struct {
		Body json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return err
	}

	if len(envelope.Body) > 0 {
		var encoded string
		if err := json.Unmarshal(envelope.Body, &encoded); err == nil {
			return json.Unmarshal([]byte(encoded), req)
		}
		return json.Unmarshal(envelope.Body, req)
	}

	return json.Unmarshal(payload, req)
}
