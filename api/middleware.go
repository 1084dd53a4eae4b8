package api

import (
	"net/http"
	"runtime/debug"

	logcontext "github.com/adisuri/weekendwings/context"
	"github.com/adisuri/weekendwings/log"
)

// RequestID assigns a fresh request ID to every request's context
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logcontext.WithRequestID(r.Context(), logcontext.NewRequestID())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Recover converts a panic into a 500 JSON body carrying the message and a
// stack trace, the only place an unexpected fault becomes user-visible.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := string(debug.Stack())
				log.Errorf(r.Context(), "panic while serving %s: %v\n%s", r.URL.Path, rec, stack)
				writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
					"status":    "error",
					"error":     toErrorString(rec),
					"traceback": stack,
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func toErrorString(rec interface{}) string {
	if err, ok := rec.(error); ok {
		return err.Error()
	}
	if s, ok := rec.(string); ok {
		return s
	}
	return "internal server error"
}

// CORS allows all origins; the service is intended for a local browser
// extension during development.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
