package httpserver

import (
	"context"
	"crypto/sha1"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	"travel_console/internal/adapters/observability"
	"travel_console/internal/domain"
)

const (
	internalErrorMsg = "Internal server error"
	maxBodyBytes     = 1 << 20
)

//go:embed openapi.json
var openAPIDoc []byte

type PackageLister interface {
	ListPackages(ctx context.Context) ([]domain.Package, error)
}

type PackageCreator interface {
	CreatePackage(ctx context.Context, in domain.PackageInput) (domain.Package, error)
}

type Handlers struct {
	Q PackageLister
	C PackageCreator
}

type listResponse struct {
	Packages []domain.Package `json:"packages"`
}

type createResponse struct {
	Package domain.Package `json:"package"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/swagger.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(openAPIDoc)
	})
	s.mux.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/swagger.json")))

	s.mux.Get("/api/packages", h.listPackages)
	s.mux.Post("/api/packages", h.createPackage)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// failureMessage returns the store's message for store failures and the
// generic text for anything else.
func failureMessage(err error) string {
	var se *domain.StoreError
	if errors.As(err, &se) {
		return se.Error()
	}
	return internalErrorMsg
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return "", nil, err
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body, nil
}

func (h *Handlers) listPackages(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Q.ListPackages(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list packages failed")
		writeError(w, http.StatusInternalServerError, failureMessage(err))
		return
	}

	etag, body, err := calcETagAndBody(listResponse{Packages: ps})
	if err != nil {
		log.Error().Err(err).Msg("encode package list failed")
		writeError(w, http.StatusInternalServerError, internalErrorMsg)
		return
	}
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write package list body")
	}
}

func (h *Handlers) createPackage(w http.ResponseWriter, r *http.Request) {
	in, err := decodePackageInput(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.C.CreatePackage(r.Context(), in)
	if err != nil {
		log.Error().Err(err).Msg("create package failed")
		writeError(w, http.StatusInternalServerError, failureMessage(err))
		return
	}

	observability.PackagesCreated.Inc()
	log.Info().Int64("id", p.ID).Str("name", p.Name).Msg("package created")
	writeJSON(w, http.StatusCreated, createResponse{Package: p})
}

// decodePackageInput reads exactly one JSON object and rejects unknown fields.
func decodePackageInput(w http.ResponseWriter, r *http.Request) (domain.PackageInput, error) {
	var in domain.PackageInput
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return in, errors.New("request body is empty")
		}
		return in, fmt.Errorf("invalid request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return in, errors.New("invalid request body: trailing data after JSON object")
	}
	return in, nil
}
