package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"runtime/debug"
	"time"

	"go.uber.org/zap"

	"salonboard/pkg/errors"
)

// Context key for request ID
type contextKey string

const requestIDKey contextKey = "requestID"

// RequestID generates a unique request ID for each request and exposes it in
// the response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Recoverer converts panics into 500 responses instead of dropping the
// connection.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.String("request_id", GetRequestID(r.Context())),
						zap.Any("panic", rec),
						zap.ByteString("stack", debug.Stack()))
					HandleError(w, r, logger, errors.NewInternalError("Internal server error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Logging logs each request with its id, status and duration.
func Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request completed",
				zap.String("request_id", GetRequestID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.status),
				zap.Duration("duration", time.Since(start)))
		})
	}
}

// Timeout adds a per-request deadline.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// HandleError writes an error response in the standard envelope, mapping
// application errors to their status and code.
func HandleError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	requestID := GetRequestID(r.Context())

	var appErr *errors.ApplicationError
	if stderrors.As(err, &appErr) {
		logger.Warn("request failed",
			zap.String("request_id", requestID),
			zap.String("code", appErr.Code),
			zap.Int("status", appErr.Status),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		sendErrorResponse(w, requestID, appErr.Status, appErr.Code, appErr.Message)
		return
	}

	logger.Error("unexpected error",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	sendErrorResponse(w, requestID, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}

func sendErrorResponse(w http.ResponseWriter, requestID string, statusCode int, code, message string) {
	response := map[string]interface{}{
		"success": false,
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
		"request_id": requestID,
		"timestamp":  time.Now().UTC(),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return "unknown"
}

// generateRequestID creates a unique request ID
func generateRequestID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
