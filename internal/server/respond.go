package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/overlaykit/pkg/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error     errorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// writeError answers with the status of the error code. Uncoded errors are
// internal: their text is logged, not returned.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)
	if code == "" {
		code = errors.ErrCodeInternal
		msg = "internal error"
		s.logger.Error("request failed", "request_id", RequestID(r.Context()), "err", err)
	}
	writeJSON(w, errors.HTTPStatus(code), errorBody{
		Error:     errorDetail{Code: code, Message: msg},
		RequestID: RequestID(r.Context()),
	})
}
