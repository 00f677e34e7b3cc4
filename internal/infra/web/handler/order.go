package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DioGolang/GoEvents/internal/application/usecase/order"
)

type Order struct {
	PlaceOrderUseCase order.PlaceUseCase
}

func NewOrderHandler(uc order.PlaceUseCase) *Order {
	return &Order{PlaceOrderUseCase: uc}
}

func (h *Order) Place(w http.ResponseWriter, r *http.Request) {
	var dto order.PlaceInput
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	output, err := h.PlaceOrderUseCase.Execute(r.Context(), dto)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}
