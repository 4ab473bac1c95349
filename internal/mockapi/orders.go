package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vijayaragavan-dev/storefront/internal/client"
)

func (s *Server) handleOrders(w http.ResponseWriter, _ *http.Request, email string) {
	s.mu.Lock()
	orders := append([]client.Order{}, s.orders[email]...)
	s.mu.Unlock()
	// Newest first.
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request, email string) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders[email] {
		if o.ID == id {
			writeJSON(w, http.StatusOK, o)
			return
		}
	}
	writeError(w, http.StatusBadRequest, "Order not found")
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request, email string) {
	var req client.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[email]
	if len(cart) == 0 {
		writeError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	o := client.Order{
		ID:              s.newID(),
		Status:          "PENDING",
		ShippingAddress: req.ShippingAddress,
		City:            req.City,
		State:           req.State,
		ZipCode:         req.ZipCode,
		Country:         req.Country,
		Phone:           req.Phone,
		CreatedAt:       s.now().UTC().Format(time.RFC3339),
	}
	for _, it := range cart {
		idx := -1
		for i := range s.products {
			if s.products[i].ID == it.ProductID {
				idx = i
				break
			}
		}
		if idx < 0 || s.products[idx].StockQuantity < it.Quantity {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Insufficient stock for: %s", it.ProductName))
			return
		}
	}
	for _, it := range cart {
		for i := range s.products {
			if s.products[i].ID == it.ProductID {
				s.products[i].StockQuantity -= it.Quantity
			}
		}
		unit := it.Price
		if it.DiscountPrice != nil && *it.DiscountPrice > 0 {
			unit = *it.DiscountPrice
		}
		o.Items = append(o.Items, client.OrderItem{
			ID:           s.newID(),
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			ProductImage: it.ProductImage,
			Quantity:     it.Quantity,
			Price:        unit,
		})
		o.TotalAmount += it.Total
	}
	s.orders[email] = append(s.orders[email], o)
	delete(s.carts, email)
	writeJSON(w, http.StatusOK, o)
}
