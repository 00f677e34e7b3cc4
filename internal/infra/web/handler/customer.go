package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DioGolang/GoEvents/internal/application/usecase/customer"
	"github.com/go-chi/chi/v5"
)

type Customer struct {
	CreateCustomerUseCase customer.CreateUseCase
	ChangeAddressUseCase  customer.ChangeAddressUseCase
}

func NewCustomerHandler(create customer.CreateUseCase, changeAddress customer.ChangeAddressUseCase) *Customer {
	return &Customer{
		CreateCustomerUseCase: create,
		ChangeAddressUseCase:  changeAddress,
	}
}

func (h *Customer) Create(w http.ResponseWriter, r *http.Request) {
	var dto customer.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	output, err := h.CreateCustomerUseCase.Execute(r.Context(), dto)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

func (h *Customer) ChangeAddress(w http.ResponseWriter, r *http.Request) {
	var dto customer.ChangeAddressInput
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	dto.ID = chi.URLParam(r, "id")

	output, err := h.ChangeAddressUseCase.Execute(r.Context(), dto)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
