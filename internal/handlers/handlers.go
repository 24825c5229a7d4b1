package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/sessions"
)

var errInternal = errors.New("internal error")

func SendJSON(w http.ResponseWriter, status int, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return w.Write(payload)
}

func SendJSONOrLog(
	w http.ResponseWriter,
	logger *slog.Logger,
	status int,
	v any,
) {
	_, err := SendJSON(w, status, v)
	if err != nil {
		logger.Error(
			"failed to send data",
			slog.Any("data", v),
			slog.Any("error", err),
		)
	}
}

func SendErrorOrLog(
	w http.ResponseWriter,
	logger *slog.Logger,
	status int,
	e error,
) {
	_, err := SendJSON(w, status, wrapError(e))
	if err != nil {
		logger.Error(
			"failed to send error message",
			slog.Any("sent error", e),
			slog.Any("error", err),
		)
	}
}

// statusOf maps engine and store errors onto response codes. Anything it does
// not recognize is a 500 and is not shown to the client.
func statusOf(err error) (int, error) {
	var ce *mines.ConfigError
	switch {
	case errors.Is(err, sessions.ErrNotFound):
		return http.StatusNotFound, err
	case errors.As(err, &ce):
		return http.StatusBadRequest, err
	default:
		return http.StatusInternalServerError, errInternal
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}
