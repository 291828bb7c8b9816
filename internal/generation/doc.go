// Package generation provides the interface and pure helpers for turning a
// validated content request into model output. It abstracts the details of
// the inference vendor (AWS Bedrock), allowing the application to generate
// blog content without coupling to a specific external service.
package generation
