package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DioGolang/GoEvents/internal/application/port/outbound"
	"github.com/DioGolang/GoEvents/internal/domain/entity"
	"github.com/DioGolang/GoEvents/internal/domain/valueobject"
)

var validationErrors = []error{
	entity.ErrIDIsRequired,
	entity.ErrNameIsRequired,
	entity.ErrAddressIsRequired,
	entity.ErrRewardPointsNeg,
	entity.ErrPriceMustBePos,
	entity.ErrCustomerIDIsRequired,
	entity.ErrItemsAreRequired,
	entity.ErrQuantityMustBePos,
	entity.ErrProductIDIsRequired,
	valueobject.ErrStreetIsRequired,
	valueobject.ErrNumberMustBePos,
	valueobject.ErrZipIsRequired,
	valueobject.ErrCityIsRequired,
}

type errorResponse struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	if errors.Is(err, outbound.ErrNotFound) {
		return http.StatusNotFound
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
