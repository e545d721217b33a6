// Package handler exposes the slices over HTTP. Handlers only translate: every request goes
// through the dispatcher, and errors are mapped by kind.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/mediator"
)

type base struct {
	d   *mediator.Dispatcher
	log logger.Logger
}

type errorBody struct {
	Error      string             `json:"error"`
	Violations []apperr.Violation `json:"violations,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps the error taxonomy onto status codes. Text of unexpected errors never
// reaches the client.
func (b base) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusGatewayTimeout, errorBody{Error: "request timed out"})
		return
	case errors.Is(err, context.Canceled):
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "request cancelled"})
		return
	}

	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "validation failed", Violations: apperr.ViolationsOf(err)})
	case apperr.KindNotFound:
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case apperr.KindConflict:
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case apperr.KindDependencyUnavailable:
		b.log.Error(r.Context(), "dependency unavailable",
			logger.String("path", r.URL.Path),
			logger.WithError(err),
		)
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "dependency unavailable"})
	default:
		b.log.Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.WithError(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, apperr.Invalid("body", "malformed JSON")
	}
	return v, nil
}

// send dispatches req and writes the response with status.
func send[Res, Req any](b base, w http.ResponseWriter, r *http.Request, req Req, status int) {
	res, err := mediator.Send[Res](r.Context(), b.d, req)
	if err != nil {
		b.writeError(w, r, err)
		return
	}
	writeJSON(w, status, res)
}

// created dispatches a create command and answers 201 with the new resource's location.
func created[Res, Req any](b base, w http.ResponseWriter, r *http.Request, req Req, location func(Res) string) {
	res, err := mediator.Send[Res](r.Context(), b.d, req)
	if err != nil {
		b.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", location(res))
	writeJSON(w, http.StatusCreated, res)
}

// find dispatches a query answering nil for an absent entity, which becomes a 404.
func find[Res, Req any](b base, w http.ResponseWriter, r *http.Request, req Req, entity, id string) {
	res, err := mediator.Send[*Res](r.Context(), b.d, req)
	if err != nil {
		b.writeError(w, r, err)
		return
	}
	if res == nil {
		b.writeError(w, r, apperr.NotFound(entity, id))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type queryParams struct {
	r          *http.Request
	violations []apperr.Violation
}

func query(r *http.Request) *queryParams {
	return &queryParams{r: r}
}

func (q *queryParams) integer(name string) int {
	raw := q.r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.violations = append(q.violations, apperr.Violation{Field: name, Message: "must be an integer"})
	}
	return v
}

func (q *queryParams) optionalInt(name string) *int {
	if q.r.URL.Query().Get(name) == "" {
		return nil
	}
	v := q.integer(name)
	return &v
}

func (q *queryParams) boolean(name string) bool {
	raw := q.r.URL.Query().Get(name)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		q.violations = append(q.violations, apperr.Violation{Field: name, Message: "must be a boolean"})
	}
	return v
}

func (q *queryParams) optionalFloat(name string) *float64 {
	raw := q.r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		q.violations = append(q.violations, apperr.Violation{Field: name, Message: "must be a number"})
		return nil
	}
	return &v
}

func (q *queryParams) text(name string) string {
	return q.r.URL.Query().Get(name)
}

func (q *queryParams) err() error {
	if len(q.violations) == 0 {
		return nil
	}
	return apperr.Validation(q.violations...)
}
