package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// FailureClass buckets submission failures. Timeout gets its own
// user-facing copy; everything else reads as a generic send failure.
type FailureClass int

const (
	ClassNetwork FailureClass = iota
	ClassTimeout
	ClassStatus
)

func (c FailureClass) String() string {
	switch c {
	case ClassTimeout:
		return "timeout"
	case ClassStatus:
		return "status"
	default:
		return "network"
	}
}

// SubmitError describes a failed submission attempt.
type SubmitError struct {
	Class  FailureClass
	Status int // HTTP status for ClassStatus, zero otherwise
	Err    error
}

func (e *SubmitError) Error() string {
	switch e.Class {
	case ClassStatus:
		return fmt.Sprintf("submit: server returned %d", e.Status)
	case ClassTimeout:
		return "submit: timed out"
	default:
		return fmt.Sprintf("submit: %v", e.Err)
	}
}

func (e *SubmitError) Unwrap() error { return e.Err }

// Classify extracts the failure class from a submission error,
// defaulting to ClassNetwork.
func Classify(err error) FailureClass {
	var se *SubmitError
	if errors.As(err, &se) {
		return se.Class
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ClassTimeout
	}
	return ClassNetwork
}

// Submitter performs the single network attempt. The context carries
// the timeout; implementations must honor cancellation.
type Submitter interface {
	Submit(ctx context.Context, endpoint string, values url.Values) error
}

// HTTPSubmitter POSTs form-encoded values and treats any non-2xx
// response as failure.
type HTTPSubmitter struct {
	Client *http.Client
}

func (s HTTPSubmitter) Submit(ctx context.Context, endpoint string, values url.Values) error {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return &SubmitError{Class: ClassNetwork, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &SubmitError{Class: ClassTimeout, Err: err}
		}
		return &SubmitError{Class: ClassNetwork, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &SubmitError{Class: ClassStatus, Status: resp.StatusCode}
	}
	return nil
}
