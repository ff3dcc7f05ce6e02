package httplib

import (
	"context"
	"encoding/json"
	"github.com/QuangTung97/promo-schedule/pkg/otellib"
	"go.uber.org/zap"
	"net/http"
)

// ErrorResponse ...
type ErrorResponse struct {
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError ...
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// maxBodySize of request bodies
const maxBodySize = 1 << 20

// ReadJSON decodes the request body, unknown fields are rejected
func ReadJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodySize))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// WriteJSON ...
func WriteJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		WriteInternalError(ctx, w, err)
		return
	}
	WriteRaw(ctx, w, status, "application/json", data)
}

// WriteRaw ...
func WriteRaw(ctx context.Context, w http.ResponseWriter, status int, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		otellib.Extract(ctx).Warn("Write response", zap.Error(err))
	}
}

// WriteError writes an ErrorResponse with message
func WriteError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	WriteJSON(ctx, w, status, ErrorResponse{Message: message})
}

// WriteInternalError logs err and writes 500 without leaking the error
func WriteInternalError(ctx context.Context, w http.ResponseWriter, err error) {
	otellib.WrapError(ctx, err)
	WriteError(ctx, w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
