package mockapi

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/vijayaragavan-dev/storefront/internal/client"
)

// pageParams reads page/size with the backend defaults (0 and 12).
func pageParams(r *http.Request) (page, size int) {
	q := r.URL.Query()
	page, _ = strconv.Atoi(q.Get("page"))
	size, err := strconv.Atoi(q.Get("size"))
	if err != nil || size <= 0 {
		size = 12
	}
	if page < 0 {
		page = 0
	}
	return page, size
}

func paginate(ps []client.Product, page, size int) client.ProductPage {
	total := len(ps)
	start := min(page*size, total)
	end := min(start+size, total)
	return client.ProductPage{
		Content:       append([]client.Product{}, ps[start:end]...),
		TotalElements: total,
		TotalPages:    (total + size - 1) / size,
		Number:        page,
		Size:          size,
	}
}

func (s *Server) active() []client.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]client.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	ps := s.active()

	desc := r.URL.Query().Get("sortDir") != "asc"
	var less func(a, b client.Product) bool
	switch r.URL.Query().Get("sortBy") {
	case "rating":
		less = func(a, b client.Product) bool { return a.Rating < b.Rating }
	case "price":
		less = func(a, b client.Product) bool { return a.Price < b.Price }
	case "name":
		less = func(a, b client.Product) bool { return a.Name < b.Name }
	default:
		less = func(a, b client.Product) bool { return a.ID < b.ID }
	}
	sort.SliceStable(ps, func(i, j int) bool {
		if desc {
			return less(ps[j], ps[i])
		}
		return less(ps[i], ps[j])
	})

	writeJSON(w, http.StatusOK, paginate(ps, page, size))
}

func (s *Server) handleFeatured(w http.ResponseWriter, _ *http.Request) {
	var out []client.Product
	for _, p := range s.active() {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	if q == "" {
		writeError(w, http.StatusBadRequest, "Required parameter 'q' is not present.")
		return
	}
	var out []client.Product
	for _, p := range s.active() {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	page, size := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(out, page, size))
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.active() {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleByCategory(w http.ResponseWriter, r *http.Request) {
	cat := r.PathValue("category")
	var out []client.Product
	for _, p := range s.active() {
		if strings.EqualFold(p.Category, cat) {
			out = append(out, p)
		}
	}
	page, size := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(out, page, size))
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	p, ok := s.product(id)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Product not found with id: %d", id))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) product(id int64) (client.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productLocked(id)
}

func (s *Server) productLocked(id int64) (client.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return client.Product{}, false
}
