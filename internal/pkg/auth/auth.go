package auth

import (
	"encoding/json"
	"net/http"

	"game_store/internal/models"
)

// SessionChecker reports whether the client currently holds an authenticated session.
type SessionChecker interface {
	IsAuthenticated() bool
}

// RequireSession is an HTTP middleware that rejects requests with 401 while the
// session is anonymous. Mutating catalog and purchase routes sit behind it.
func RequireSession(session SessionChecker) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if !session.IsAuthenticated() {
				writeErrorResponse(w, "login required", http.StatusUnauthorized)
				return
			}
			h.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// writeErrorResponse writes a JSON-formatted error response to the HTTP response writer.
func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}
