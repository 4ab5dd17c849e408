package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stemstr/quotes/internal/quotestore"
	"github.com/stemstr/quotes/internal/service"
)

type quoteService interface {
	Create(ctx context.Context, r service.QuoteRequest) (*quotestore.Quote, error)
	List(ctx context.Context) ([]quotestore.Quote, error)
	Update(ctx context.Context, id string, r service.QuoteRequest) error
	Delete(ctx context.Context, id string) error
}

type handlers struct {
	svc      quoteService
	log      zerolog.Logger
	validate *validator.Validate
}

func newHandlers(svc quoteService, logger zerolog.Logger) *handlers {
	return &handlers{
		svc:      svc,
		log:      logger,
		validate: validator.New(),
	}
}

// quoteBody is the payload of create and update. Pointers let a missing or
// null field be told apart from an empty string, which is accepted.
type quoteBody struct {
	Book  *string `json:"book" validate:"required"`
	Quote *string `json:"quote" validate:"required"`
}

var (
	errNotJSON       = errors.New("content type is not JSON")
	errMalformedBody = errors.New("malformed JSON body")
	errInvalidFields = errors.New("book and quote must be strings")
)

// handleHealth reports that the process is reachable.
func (h *handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// handleCreateQuote creates a quote and returns it.
func (h *handlers) handleCreateQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := h.decodeQuoteBody(r)
	if err != nil {
		h.writeDecodeError(w, r, err)
		return
	}

	quote, err := h.svc.Create(ctx, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	createCounter.Inc()
	h.writeJSON(w, r, http.StatusCreated, quote)
}

// handleListQuotes returns every stored quote.
func (h *handlers) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.svc.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, quotes)
}

// handleUpdateQuote replaces book and quote of an existing quote.
func (h *handlers) handleUpdateQuote(w http.ResponseWriter, r *http.Request) {
	var (
		ctx    = r.Context()
		id, ok = parseID(chi.URLParam(r, "id"))
	)

	// No stored quote can match an id that is not a uuid.
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	req, err := h.decodeQuoteBody(r)
	if err != nil {
		h.writeDecodeError(w, r, err)
		return
	}

	if err := h.svc.Update(ctx, id, req); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	updateCounter.Inc()
	w.WriteHeader(http.StatusOK)
}

// handleDeleteQuote removes a quote.
func (h *handlers) handleDeleteQuote(w http.ResponseWriter, r *http.Request) {
	var (
		ctx    = r.Context()
		id, ok = parseID(chi.URLParam(r, "id"))
	)

	// No stored quote can match an id that is not a uuid.
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	deleteCounter.Inc()
	w.WriteHeader(http.StatusOK)
}

// decodeQuoteBody reads exactly one JSON object from the request. Syntax
// errors and trailing data are errMalformedBody, a body of the wrong shape is
// errInvalidFields.
func (h *handlers) decodeQuoteBody(r *http.Request) (service.QuoteRequest, error) {
	if !isJSON(r.Header.Get("Content-Type")) {
		return service.QuoteRequest{}, errNotJSON
	}

	var (
		body quoteBody
		dec  = json.NewDecoder(r.Body)
	)
	if err := dec.Decode(&body); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return service.QuoteRequest{}, errInvalidFields
		}
		return service.QuoteRequest{}, errMalformedBody
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return service.QuoteRequest{}, errMalformedBody
	}
	if err := h.validate.Struct(body); err != nil {
		return service.QuoteRequest{}, errInvalidFields
	}

	return service.QuoteRequest{
		Book:  *body.Book,
		Quote: *body.Quote,
	}, nil
}

func (h *handlers) writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, errNotJSON):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, errInvalidFields):
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusBadRequest
	}

	h.log.Debug().
		Err(err).
		Str("request_id", middleware.GetReqID(r.Context())).
		Msg("rejected quote body")
	w.WriteHeader(status)
}

// writeServiceError maps a service error kind to a status. The cause is only
// logged, callers get the bare status.
func (h *handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		h.log.Error().
			Err(err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("quote store failure")
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	jsonb, err := json.Marshal(v)
	if err != nil {
		h.log.Error().
			Err(err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(jsonb)
}

// parseID returns the canonical form of a uuid path parameter.
func parseID(raw string) (string, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// isJSON accepts application/json and application/*+json, with or without
// parameters. A missing content type is not JSON.
func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" ||
		(strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json"))
}
