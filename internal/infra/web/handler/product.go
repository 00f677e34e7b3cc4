package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DioGolang/GoEvents/internal/application/usecase/product"
)

type Product struct {
	CreateProductUseCase product.CreateUseCase
}

func NewProductHandler(uc product.CreateUseCase) *Product {
	return &Product{CreateProductUseCase: uc}
}

func (h *Product) Create(w http.ResponseWriter, r *http.Request) {
	var dto product.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	output, err := h.CreateProductUseCase.Execute(r.Context(), dto)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}
