package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DioGolang/GoCommerce/internal/application/usecase/product"
	"github.com/go-chi/chi/v5"
)

type Product struct {
	CreateProductUseCase product.CreateUseCase
	UpdateProductUseCase product.UpdateUseCase
	DeleteProductUseCase product.DeleteUseCase
	GetProductUseCase    product.GetUseCase
	ListProductsUseCase  product.ListUseCase
}

func NewProductHandler(
	create product.CreateUseCase,
	update product.UpdateUseCase,
	del product.DeleteUseCase,
	get product.GetUseCase,
	list product.ListUseCase,
) *Product {
	return &Product{
		CreateProductUseCase: create,
		UpdateProductUseCase: update,
		DeleteProductUseCase: del,
		GetProductUseCase:    get,
		ListProductsUseCase:  list,
	}
}

func (h *Product) Create(w http.ResponseWriter, r *http.Request) {
	var dto product.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	output, err := h.CreateProductUseCase.Execute(r.Context(), dto)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, output)
}

func (h *Product) Update(w http.ResponseWriter, r *http.Request) {
	var dto product.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	output, err := h.UpdateProductUseCase.Execute(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Product) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.DeleteProductUseCase.Execute(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Product) Get(w http.ResponseWriter, r *http.Request) {
	output, err := h.GetProductUseCase.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Product) List(w http.ResponseWriter, r *http.Request) {
	output, err := h.ListProductsUseCase.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}
