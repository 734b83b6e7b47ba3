package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"locodhaasu-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/orders.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var input CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	o, err := h.svc.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"success": true,
		"orderId": o.OrderID,
		"message": "Order placed successfully",
	}, http.StatusCreated)
}

// List handles GET /api/orders with status/zone filters and pagination.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := ListQuery{
		Status: r.URL.Query().Get("status"),
		Zone:   r.URL.Query().Get("zone"),
		Limit:  queryInt(r, "limit", 50),
		Offset: queryInt(r, "offset", 0),
	}

	result, err := h.svc.List(r.Context(), q)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// Get handles GET /api/orders/{orderID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	o, err := h.svc.Get(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			utils.WriteJSONError(w, "Order not found", http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, o, http.StatusOK)
}

// UpdateStatus handles PATCH /api/orders/{orderID}.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var body struct {
		OrderStatus Status `json:"orderStatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), orderID, body.OrderStatus); err != nil {
		switch {
		case errors.Is(err, ErrStatusRequired), errors.Is(err, ErrInvalidStatus):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrStoreNotConfigured), errors.Is(err, ErrOrderNotFound):
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		default:
			utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"success":     true,
		"message":     "Order updated successfully",
		"orderStatus": body.OrderStatus,
	}, http.StatusOK)
}

// Stats handles GET /api/dashboard/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
