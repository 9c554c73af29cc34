// ABOUTME: Error types for Oura API requests.
// ABOUTME: Distinguishes transport, upstream status, and decode failures.
package oura

import (
	"fmt"
)

// TransportError means the remote host could not be reached.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to reach Oura API: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError carries a non-success HTTP status and the raw body.
type UpstreamError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *UpstreamError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	if e.Body == "" {
		return fmt.Sprintf("Oura API returned %s", status)
	}
	return fmt.Sprintf("Oura API returned %s: %s", status, e.Body)
}

// DecodeError means the body was not valid JSON of the expected shape.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
