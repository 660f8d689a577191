package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/polysum/internal/pipeline"
	"github.com/jonathan/polysum/internal/types"
)

// Event names emitted on /summarize/stream, in the order a successful run sends them
const (
	EventStep     = "step"
	EventResult   = "result"
	EventComplete = "complete"
	EventError    = "error"
)

// StreamWriter sends the progress of one pipeline run as Server-Sent Events.
// After the first failed write every later write is skipped and returns that error.
type StreamWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	runID   string
	err     error
}

// NewStreamWriter sets the event-stream headers for runID
func NewStreamWriter(w http.ResponseWriter, runID string) (*StreamWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &StreamWriter{w: w, flusher: flusher, runID: runID}, nil
}

// Step sends one pipeline progress event
func (s *StreamWriter) Step(event pipeline.ProgressEvent) error {
	return s.send(EventStep, event)
}

// Result sends the final response body
func (s *StreamWriter) Result(resp *types.SummarizeResponse) error {
	return s.send(EventResult, resp)
}

// Complete marks the run finished
func (s *StreamWriter) Complete() error {
	return s.send(EventComplete, streamStatus{RunID: s.runID, Status: "completed"})
}

// Fail reports a run that stopped before producing a result
func (s *StreamWriter) Fail(cause error) error {
	return s.send(EventError, streamError{RunID: s.runID, Error: cause.Error()})
}

// Err returns the first write error, if any
func (s *StreamWriter) Err() error {
	return s.err
}

type streamStatus struct {
	RunID  string `json:"run_id"`
	Status string `json:"status"`
}

type streamError struct {
	RunID string `json:"run_id"`
	Error string `json:"error"`
}

// send writes a single frame and flushes it
func (s *StreamWriter) send(event string, data any) error {
	if s.err != nil {
		return s.err
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event, err)
	}

	var frame bytes.Buffer
	frame.WriteString("event: ")
	frame.WriteString(event)
	frame.WriteString("\ndata: ")
	frame.Write(payload)
	frame.WriteString("\n\n")

	if _, err := s.w.Write(frame.Bytes()); err != nil {
		s.err = err
		return err
	}
	s.flusher.Flush()
	return nil
}
