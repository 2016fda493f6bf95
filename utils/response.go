package utils

import (
	"encoding/json"
	"net/http"

	"github.com/jobify-dev/jobs-api/models"
	"github.com/rs/zerolog/log"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("error encoding response")
	}
}

// WriteMessage writes a {"msg": ...} body.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, models.MessageResponse{Msg: msg})
}

// DecodeJSON reads the request body into v, reporting malformed input as a bad request.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return BadRequest(MsgInvalidBody)
	}
	return nil
}
