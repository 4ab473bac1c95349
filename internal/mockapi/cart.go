package mockapi

import (
	"net/http"
	"strconv"

	"github.com/vijayaragavan-dev/storefront/internal/client"
)

func cartItemFor(id int64, p client.Product, qty int) client.CartItem {
	it := client.CartItem{
		ID:            id,
		ProductID:     p.ID,
		ProductName:   p.Name,
		ProductImage:  p.ImageURL,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Quantity:      qty,
	}
	it.Total = p.CurrentPrice() * float64(qty)
	return it
}

func (s *Server) handleCart(w http.ResponseWriter, _ *http.Request, email string) {
	s.mu.Lock()
	items := append([]client.CartItem{}, s.carts[email]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCartCount(w http.ResponseWriter, _ *http.Request, email string) {
	s.mu.Lock()
	n := 0
	for _, it := range s.carts[email] {
		n += it.Quantity
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (s *Server) handleCartTotal(w http.ResponseWriter, _ *http.Request, email string) {
	s.mu.Lock()
	total := 0.0
	for _, it := range s.carts[email] {
		total += it.Total
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]float64{"total": total})
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request, email string) {
	q := r.URL.Query()
	productID, err := strconv.ParseInt(q.Get("productId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Required parameter 'productId' is not present.")
		return
	}
	qty := 1
	if v := q.Get("quantity"); v != "" {
		if qty, err = strconv.Atoi(v); err != nil || qty <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid quantity")
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.productLocked(productID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Product not found")
		return
	}

	cart := s.carts[email]
	for i, it := range cart {
		if it.ProductID == productID {
			if p.StockQuantity < it.Quantity+qty {
				writeError(w, http.StatusBadRequest, "Insufficient stock")
				return
			}
			cart[i] = cartItemFor(it.ID, p, it.Quantity+qty)
			writeJSON(w, http.StatusOK, cart[i])
			return
		}
	}
	if p.StockQuantity < qty {
		writeError(w, http.StatusBadRequest, "Insufficient stock")
		return
	}
	it := cartItemFor(s.newID(), p, qty)
	s.carts[email] = append(cart, it)
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request, email string) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid cart item id")
		return
	}
	qty, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil || qty <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid quantity")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[email]
	for i, it := range cart {
		if it.ID != id {
			continue
		}
		p, _ := s.productLocked(it.ProductID)
		if p.StockQuantity < qty {
			writeError(w, http.StatusBadRequest, "Insufficient stock")
			return
		}
		cart[i] = cartItemFor(it.ID, p, qty)
		writeJSON(w, http.StatusOK, cart[i])
		return
	}
	writeError(w, http.StatusBadRequest, "Cart item not found")
}

// handleCartRemove answers 200 with an empty body, like the backend.
func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request, email string) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid cart item id")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[email]
	for i, it := range cart {
		if it.ID == id {
			s.carts[email] = append(cart[:i:i], cart[i+1:]...)
			break
		}
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleCartClear(w http.ResponseWriter, _ *http.Request, email string) {
	s.mu.Lock()
	delete(s.carts, email)
	s.mu.Unlock()
	w.WriteHeader(http.StatusOK)
}
