package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/raushankrgupta/skincare-storefront/logx"
)

// RespondJSON sends a JSON response with the given status code and payload.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already sent, nothing left to do but log.
		logx.Error().Err(err).Msg("error encoding JSON response")
	}
}

// RespondError sends a JSON error response and adds the message to the request log.
// If logger is nil, the message goes to the structured log instead.
func RespondError(w http.ResponseWriter, logger *strings.Builder, message string, status int) {
	if logger != nil {
		AddToLogMessage(logger, message)
	} else {
		logx.Warn().Int("status", status).Msg(message)
	}
	RespondJSON(w, status, map[string]string{"error": message})
}

// FlushLog writes the collected request log lines as one entry.
func FlushLog(logger *strings.Builder) {
	logx.Info().Msg(strings.TrimSpace(logger.String()))
}

// LatencyMiddleware logs the duration of each request
func LatencyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		logx.Debug().Str("latency", fmt.Sprint(duration)).Msgf("[LATENCY] %s %s", r.Method, r.URL.Path)
	})
}
