package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorBody is the error shape every route answers with.
type ErrorBody struct {
	Detail any `json:"detail"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Warn("write json failed", zap.Error(err))
	}
}

func Success(w http.ResponseWriter, payload any) {
	WriteJSON(w, http.StatusOK, payload)
}

func Fail(w http.ResponseWriter, status int, detail any) {
	WriteJSON(w, status, ErrorBody{Detail: detail})
}

func InternalError(w http.ResponseWriter) {
	Fail(w, http.StatusInternalServerError, "Internal Server Error")
}
