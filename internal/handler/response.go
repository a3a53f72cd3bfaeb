package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"inventory-api/internal/result"
)

// writeResult converts an envelope to a transport response using its status
// mapping. NoContent renders an empty body.
func writeResult[T any](w http.ResponseWriter, res *result.Result[T]) {
	code := res.Status.HTTPStatus()
	if res.Status == result.StatusNoContent {
		w.WriteHeader(code)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(res)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeResult(w, result.New[any]().Fail(result.StatusBadRequest, message))
}

// idParam extracts the numeric {id} route parameter.
func idParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
