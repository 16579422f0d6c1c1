// Package respond writes JSON API responses.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type result struct {
	Result any `json:"result"`
}

type failure struct {
	Error string `json:"error"`
}

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, result{Result: v})
}

func Created(w http.ResponseWriter, v any) {
	JSON(w, http.StatusCreated, result{Result: v})
}

func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, failure{Error: err.Error()})
}
