package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DioGolang/GoCommerce/internal/application/usecase/order"
	"github.com/go-chi/chi/v5"
)

type Order struct {
	CreateOrderUseCase          order.CreateUseCase
	UpdateOrderUseCase          order.UpdateUseCase
	DeleteOrderUseCase          order.DeleteUseCase
	GetOrderUseCase             order.GetUseCase
	ListOrdersUseCase           order.ListUseCase
	ListOrdersByCustomerUseCase order.ListByCustomerUseCase
}

func NewOrderHandler(
	create order.CreateUseCase,
	update order.UpdateUseCase,
	del order.DeleteUseCase,
	get order.GetUseCase,
	list order.ListUseCase,
	listByCustomer order.ListByCustomerUseCase,
) *Order {
	return &Order{
		CreateOrderUseCase:          create,
		UpdateOrderUseCase:          update,
		DeleteOrderUseCase:          del,
		GetOrderUseCase:             get,
		ListOrdersUseCase:           list,
		ListOrdersByCustomerUseCase: listByCustomer,
	}
}

func (h *Order) Create(w http.ResponseWriter, r *http.Request) {
	var dto order.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if dto.CustomerID == "" {
		writeBadRequest(w, "customer_id is required")
		return
	}

	output, err := h.CreateOrderUseCase.Execute(r.Context(), dto)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, output)
}

func (h *Order) Update(w http.ResponseWriter, r *http.Request) {
	var dto order.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	output, err := h.UpdateOrderUseCase.Execute(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Order) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.DeleteOrderUseCase.Execute(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Order) Get(w http.ResponseWriter, r *http.Request) {
	output, err := h.GetOrderUseCase.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

// List returns every order joined with its customer and product names.
func (h *Order) List(w http.ResponseWriter, r *http.Request) {
	output, err := h.ListOrdersUseCase.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Order) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	output, err := h.ListOrdersByCustomerUseCase.Execute(r.Context(), chi.URLParam(r, "customerID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}
