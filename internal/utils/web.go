package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/logger"
)

// errorResponse is the error envelope every endpoint returns.
type errorResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Errors []string `json:"errors"`
}

// WriteErrorAndStatusCode maps internal errors to HTTP responses.
// Validation errors carry the full list of violated rules; anything
// without an explicit status code is a 500 with a generic message so
// internals never leak to the client.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ValidationError); ok {
		writeJSONStatus(w, http.StatusBadRequest, validationResponse{Errors: e.Messages})
		return
	}
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		writeJSONStatus(w, e.StatusCode, errorResponse{Message: e.Message})
		return
	}
	logger.Log.Error("unexpected error", "error", err)
	writeJSONStatus(w, http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
}

// WriteJSON writes v with status 200.
func WriteJSON(w http.ResponseWriter, v interface{}) {
	writeJSONStatus(w, http.StatusOK, v)
}

// WriteJSONStatus writes v with an explicit status code.
func WriteJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	writeJSONStatus(w, status, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// DecodeValidate decodes a JSON body and checks `validate` struct tags
// (required fields and the like). Field-level business rules live in the
// validation package, not here.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// Decode decodes a JSON body without tag validation.
func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}
