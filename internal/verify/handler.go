// Package verify implements the server-side password check that gates the
// investor material, and the client used by the access gate to call it.
//
// The endpoint never logs attempted values and never returns anything beyond
// a boolean verdict and a generic message.
package verify

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Path is the route of the verification endpoint.
const Path = "/api/verify-password"

// response is the JSON body of every verification response. No other fields
// are ever present.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Generic response messages. Deliberately uninformative: a client cannot
// tell a malformed request from a wrong password by message text alone.
const (
	msgInvalidRequest = "Invalid request"
	msgAccessDenied   = "Access denied"
	msgConfiguration  = "Configuration error"
)

// SecretSource yields the configured shared password. It is read once per
// request and never cached here.
type SecretSource func() string

// RegisterRoutes mounts the verification endpoint on the given router.
func RegisterRoutes(r chi.Router, secret SecretSource) {
	r.Post(Path, Handler(secret))
}

// Handler returns the verification handler.
//
//	200 {success:true}                        password matches
//	401 {success:false, message:generic}      password does not match
//	400 {success:false, message:generic}      malformed body or password field
//	500 {success:false, message:generic}      no password configured
func Handler(secret SecretSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Password *string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, response{Success: false, Message: msgInvalidRequest})
			return
		}

		configured := secret()
		if configured == "" {
			// Misconfiguration is a server fault even when a password was
			// supplied; it must never look like a wrong-password response.
			writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: msgConfiguration})
			return
		}

		if body.Password == nil || *body.Password == "" {
			writeJSON(w, http.StatusBadRequest, response{Success: false, Message: msgInvalidRequest})
			return
		}

		if *body.Password == configured {
			writeJSON(w, http.StatusOK, response{Success: true})
			return
		}

		writeJSON(w, http.StatusUnauthorized, response{Success: false, Message: msgAccessDenied})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
