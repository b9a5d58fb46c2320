package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type success struct {
	Result any `json:"result"`
}

type failure struct {
	Error string `json:"error"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

func OK(w http.ResponseWriter, result any) {
	JSON(w, http.StatusOK, success{Result: result})
}

func Accepted(w http.ResponseWriter, result any) {
	JSON(w, http.StatusAccepted, success{Result: result})
}

func Fail(w http.ResponseWriter, code int, err error) {
	JSON(w, code, failure{Error: err.Error()})
}
