package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

const errInternalText = "Terjadi kesalahan pada server"

type ResponseError struct {
	Message  string `json:"message"`
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	SendErrRedirect(ctx, w, code, err, msg, "")
}

// SendErrRedirect is SendErr with a path the client should navigate to.
func SendErrRedirect(ctx context.Context, w http.ResponseWriter, code int, err error, msg, redirect string) {
	errText := ""
	if err != nil {
		errText = err.Error()
	}

	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", errText, "code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", errText, "code", code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{Message: msg, Error: errText, Redirect: redirect})
	if err != nil {
		slog.ErrorContext(ctx, "api error", "error", err, "code", http.StatusInternalServerError)
		return
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
		return
	}
}
