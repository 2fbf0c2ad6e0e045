package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DioGolang/GoCommerce/internal/domain/entity"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// writeError maps the domain error kinds onto HTTP statuses. Unclassified
// errors become an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case entity.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case entity.IsInvalidArgument(err), entity.IsConflict(err):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}
