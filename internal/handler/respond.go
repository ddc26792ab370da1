package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/AlexZinkM/wallet-demo/demo"
	"github.com/AlexZinkM/wallet-demo/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: demo.ErrorCode(err)})
}

// statusFor maps an operation error to an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, demo.ErrProviderAbsent), errors.Is(err, demo.ErrTransferPrecondition):
		return http.StatusPreconditionFailed
	case errors.Is(err, demo.ErrConnectionRejected):
		return http.StatusForbidden
	case errors.Is(err, demo.ErrAirdropFailed), errors.Is(err, demo.ErrSubmissionFailed):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// fromPage reports whether the request came from a page button; those get redirected back
func fromPage(r *http.Request) bool {
	return r.URL.Query().Get("ui") == "1"
}

func backToPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
