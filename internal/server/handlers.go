package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/polysum/internal/pipeline"
	"github.com/jonathan/polysum/internal/pipeline/steps"
	"github.com/jonathan/polysum/internal/server/middleware"
	"github.com/jonathan/polysum/internal/types"
)

// StatusResponse represents the response for GET /
type StatusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Mode    string `json:"mode"`
}

// HealthResponse represents the response for GET /health
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// handleRoot reports service identity
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, StatusResponse{
		Status:  "online",
		Service: ServiceName,
		Version: Version,
		Mode:    "offline",
	})
}

// handleHealth returns server health status with one entry per pipeline step
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	components := make(map[string]string, len(steps.StepRegistry)+1)
	for _, name := range steps.Names() {
		components[steps.StepRegistry[name].Description] = "ready"
	}
	components["lexicon"] = "loaded"

	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:     "healthy",
		Components: components,
	})
}

// decodeRequest reads a summarize request body, checks it against the request schema and gates it
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (*types.SummarizeRequest, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, &ErrRequestBody{Cause: err}
	}
	if err := s.requestSchema.ValidateBytes(body); err != nil {
		return nil, &ErrRequestBody{Cause: err}
	}

	var req types.SummarizeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, &ErrRequestBody{Cause: err}
	}
	if err := req.ValidateLength(s.cfg.MinChars, s.cfg.MaxChars); err != nil {
		return nil, err
	}
	return &req, nil
}

// pipelineOptions builds the per-request pipeline options
func (s *Server) pipelineOptions(runID string, onProgress pipeline.ProgressCallback) pipeline.Options {
	return pipeline.Options{
		Verbose:    s.cfg.Verbose,
		Out:        os.Stdout,
		RunID:      runID,
		OnProgress: onProgress,
	}
}

// handleSummarize runs the pipeline and returns the summary with stats
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), errorMessage(err))
		return
	}

	runID := middleware.GetRequestID(r.Context())
	start := time.Now()
	result, err := pipeline.Run(r.Context(), req.Text, s.pipelineOptions(runID, nil))
	if err != nil {
		log.Printf("Summarize %s failed: %v", runID, err)
		perr := &ErrProcessing{Cause: err}
		s.errorResponse(w, HTTPStatus(perr), perr.Error())
		return
	}

	stats := pipeline.ComputeStats(req.Text, result.Summary, time.Since(start))
	s.jsonResponse(w, http.StatusOK, pipeline.BuildResponse(result, stats, req.Debug || s.cfg.Debug))
}

// handleSummarizeStream runs the pipeline and streams progress as Server-Sent Events
func (s *Server) handleSummarizeStream(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), errorMessage(err))
		return
	}

	runID := middleware.GetRequestID(r.Context())
	if runID == "" {
		runID = uuid.NewString()
	}

	stream, err := NewStreamWriter(w, runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.Printf("Starting streaming summarize run %s...", runID)

	onProgress := func(event pipeline.ProgressEvent) {
		if stream.Err() != nil {
			return
		}
		if err := stream.Step(event); err != nil {
			log.Printf("Error writing step event for run %s: %v", runID, err)
		}
	}

	start := time.Now()
	result, err := pipeline.Run(r.Context(), req.Text, s.pipelineOptions(runID, onProgress))
	if err != nil {
		log.Printf("Streaming summarize run %s failed: %v", runID, err)
		_ = stream.Fail(&ErrProcessing{Cause: err})
		return
	}

	stats := pipeline.ComputeStats(req.Text, result.Summary, time.Since(start))
	if err := stream.Result(pipeline.BuildResponse(result, stats, req.Debug || s.cfg.Debug)); err != nil {
		log.Printf("Error writing result event for run %s: %v", runID, err)
		return
	}
	if err := stream.Complete(); err != nil {
		log.Printf("Error writing complete event for run %s: %v", runID, err)
		return
	}
	log.Printf("Streaming summarize run %s completed", runID)
}
