package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

// Envelope is the plain success/failure response shape shared by routes that
// return no extra payload.
type Envelope struct {
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message"`
}

// JSON writes an arbitrary payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}

// OK writes a bare success envelope.
func OK(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{IsSuccess: true, Message: message})
}

// Error writes a failure envelope.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{IsSuccess: false, Message: message})
}
