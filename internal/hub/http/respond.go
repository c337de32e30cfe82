package http

import (
	"net/http"

	"github.com/tariq205/duetcareerhub/pkg/httpx"
)

// Message is the legacy auth response body. The auth endpoints predate the
// envelope below and their shape is frozen for client compatibility.
type Message struct {
	Message string `json:"message"`
}

// Envelope is the management API response body.
type Envelope struct {
	Status       string `json:"status"`
	ResponseCode int    `json:"responseCode"`
	Message      string `json:"message"`
	Count        *int64 `json:"count,omitempty"`
	Data         any    `json:"data,omitempty"`
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, Message{Message: msg})
}

func writeSuccess(w http.ResponseWriter, code int, msg string, data any) {
	httpx.WriteJSON(w, code, Envelope{
		Status:       "success",
		ResponseCode: code,
		Message:      msg,
		Data:         data,
	})
}

func writeList(w http.ResponseWriter, code int, msg string, count int64, data any) {
	httpx.WriteJSON(w, code, Envelope{
		Status:       "success",
		ResponseCode: code,
		Message:      msg,
		Count:        &count,
		Data:         data,
	})
}

func writeFailure(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, Envelope{
		Status:       "error",
		ResponseCode: code,
		Message:      msg,
	})
}
