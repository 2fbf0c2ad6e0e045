package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DioGolang/GoCommerce/internal/application/usecase/customer"
	"github.com/go-chi/chi/v5"
)

type Customer struct {
	CreateCustomerUseCase customer.CreateUseCase
	UpdateCustomerUseCase customer.UpdateUseCase
	DeleteCustomerUseCase customer.DeleteUseCase
	GetCustomerUseCase    customer.GetUseCase
	ListCustomersUseCase  customer.ListUseCase
}

func NewCustomerHandler(
	create customer.CreateUseCase,
	update customer.UpdateUseCase,
	del customer.DeleteUseCase,
	get customer.GetUseCase,
	list customer.ListUseCase,
) *Customer {
	return &Customer{
		CreateCustomerUseCase: create,
		UpdateCustomerUseCase: update,
		DeleteCustomerUseCase: del,
		GetCustomerUseCase:    get,
		ListCustomersUseCase:  list,
	}
}

func (h *Customer) Create(w http.ResponseWriter, r *http.Request) {
	var dto customer.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	output, err := h.CreateCustomerUseCase.Execute(r.Context(), dto)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, output)
}

func (h *Customer) Update(w http.ResponseWriter, r *http.Request) {
	var dto customer.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	output, err := h.UpdateCustomerUseCase.Execute(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Customer) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.DeleteCustomerUseCase.Execute(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Customer) Get(w http.ResponseWriter, r *http.Request) {
	output, err := h.GetCustomerUseCase.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Customer) List(w http.ResponseWriter, r *http.Request) {
	output, err := h.ListCustomersUseCase.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}
