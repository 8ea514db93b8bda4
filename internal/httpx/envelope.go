// Package httpx es el borde HTTP compartido: envelope de respuesta,
// mapeo de errores a status y helpers de decode/params.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"zoo-management/internal/domain/apperr"
	"zoo-management/internal/domain/crud"
	"zoo-management/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const UnexpectedMessage = "An unexpected error occurred!"

// Envelope es la forma de toda respuesta: {result?, error?}.
type Envelope struct {
	Result any        `json:"result,omitempty"`
	Error  *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Code    apperr.Code `json:"code"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Result(w http.ResponseWriter, status int, v any) {
	JSON(w, status, Envelope{Result: v})
}

// OK responde 200 sin payload.
func OK(w http.ResponseWriter) {
	JSON(w, http.StatusOK, Envelope{})
}

func WriteError(w http.ResponseWriter, status int, msg string, code apperr.Code) {
	JSON(w, status, Envelope{Error: &ErrorBody{Status: status, Message: msg, Code: code}})
}

// Fail traduce err al envelope. Los errores de negocio llevan su status
// tal cual; lo desconocido se loguea y sale como 500.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	if e, ok := apperr.As(err); ok {
		WriteError(w, e.Status, e.Message, e.Code)
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, io.ErrUnexpectedEOF):
		WriteError(w, http.StatusBadRequest, "invalid json", apperr.CodeBadRequest)
		return
	case errors.Is(err, crud.ErrNotFound):
		WriteError(w, http.StatusNotFound, "The entity was not found!", apperr.CodeEntityNotFound)
		return
	}

	logger.FromContext(r.Context()).Error("unhandled error", map[string]any{
		"method": r.Method,
		"path":   r.URL.Path,
		"error":  err,
	})
	WriteError(w, http.StatusInternalServerError, UnexpectedMessage, apperr.CodeUnknown)
}

// Decode lee el body JSON. Body vacío o mal formado => BadRequest.
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.BadRequest("request body is required")
		}
		return apperr.BadRequest("invalid json")
	}
	return nil
}

// IDParam valida que el path param sea un UUID.
func IDParam(r *http.Request, name string) (string, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperr.BadRequest(name + " must be a valid uuid")
	}
	return id.String(), nil
}
