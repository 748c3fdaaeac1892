package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"lovilike-backoffice/apperrors"
)

// ErrorResponse is the JSON body returned for every failed request: a human
// readable message plus a machine readable kind.
type ErrorResponse struct {
	Error string         `json:"error"`
	Kind  apperrors.Kind `json:"kind"`
}

// writeJSON writes v as a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ writeJSON: Error encoding response: %v", err)
	}
}

// writeError maps a typed error to its HTTP status and error kind. Unknown
// errors become a 500 with a generic message so internals never leak.
func writeError(w http.ResponseWriter, err error) {
	var (
		invalidReq  *apperrors.InvalidRequestError
		productNF   *apperrors.ProductNotFoundError
		areaNF      *apperrors.AreaNotFoundError
		orderNF     *apperrors.OrderNotFoundError
		outOfBounds *apperrors.OutOfBoundsError
		invalidGeo  *apperrors.InvalidGeometryError
	)

	switch {
	case errors.As(err, &invalidReq):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: apperrors.KindInvalidRequest})
	case errors.As(err, &productNF):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error(), Kind: apperrors.KindNotFound})
	case errors.As(err, &areaNF):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error(), Kind: apperrors.KindNotFound})
	case errors.As(err, &orderNF):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error(), Kind: apperrors.KindNotFound})
	case errors.As(err, &outOfBounds):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: apperrors.KindOutOfBounds})
	case errors.As(err, &invalidGeo):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: apperrors.KindInvalidGeometry})
	default:
		log.Printf("❌ Internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error", Kind: apperrors.KindInternal})
	}
}
