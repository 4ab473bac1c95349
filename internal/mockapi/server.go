// Package mockapi is an in-memory storefront API for local runs and
// integration tests. It serves the same routes, payloads and error bodies as
// the real backend, with bearer tokens issued at login.
package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vijayaragavan-dev/storefront/internal/client"
)

type account struct {
	id        int64
	email     string
	password  string
	firstName string
	lastName  string
	role      string
}

// Server holds the catalogue, accounts, carts and orders.
type Server struct {
	mu       sync.Mutex
	products []client.Product
	accounts map[string]*account // by email
	tokens   map[string]string   // token -> email
	carts    map[string][]client.CartItem
	orders   map[string][]client.Order
	nextID   int64

	latency time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLatency delays every response, to exercise client timeouts.
func WithLatency(d time.Duration) Option {
	return func(s *Server) { s.latency = d }
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New creates a server seeded with the sample catalogue and two accounts:
// admin@ecommerce.com/admin123 and user@ecommerce.com/user123.
func New(opts ...Option) *Server {
	s := &Server{
		accounts: make(map[string]*account),
		tokens:   make(map[string]string),
		carts:    make(map[string][]client.CartItem),
		orders:   make(map[string][]client.Order),
		nextID:   100,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}

	for i, p := range client.SampleProducts() {
		p.IsActive = true
		p.IsFeatured = i < 4
		p.StockQuantity = 25
		p.Brand = "ShopHub"
		p.Description = "**" + p.Name + "** from our " + p.Category + " range.\n\n- Free shipping\n- 30 day returns"
		s.products = append(s.products, p)
	}
	s.addAccount("admin@ecommerce.com", "admin123", "Admin", "User", "ADMIN")
	s.addAccount("user@ecommerce.com", "user123", "John", "Doe", "USER")
	return s
}

func (s *Server) addAccount(email, password, first, last, role string) *account {
	a := &account{
		id:        s.newID(),
		email:     email,
		password:  password,
		firstName: first,
		lastName:  last,
		role:      role,
	}
	s.accounts[email] = a
	return a
}

func (s *Server) newID() int64 {
	s.nextID++
	return s.nextID
}

// Handler returns the API routes under /api.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/products", s.handleProducts)
	mux.HandleFunc("GET /api/products/featured", s.handleFeatured)
	mux.HandleFunc("GET /api/products/search", s.handleSearch)
	mux.HandleFunc("GET /api/products/categories", s.handleCategories)
	mux.HandleFunc("GET /api/products/category/{category}", s.handleByCategory)
	mux.HandleFunc("GET /api/products/{id}", s.handleProduct)

	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)

	mux.HandleFunc("GET /api/cart", s.authed(s.handleCart))
	mux.HandleFunc("GET /api/cart/count", s.authed(s.handleCartCount))
	mux.HandleFunc("GET /api/cart/total", s.authed(s.handleCartTotal))
	mux.HandleFunc("POST /api/cart/add", s.authed(s.handleCartAdd))
	mux.HandleFunc("PUT /api/cart/{id}", s.authed(s.handleCartUpdate))
	mux.HandleFunc("DELETE /api/cart/clear", s.authed(s.handleCartClear))
	mux.HandleFunc("DELETE /api/cart/{id}", s.authed(s.handleCartRemove))

	mux.HandleFunc("GET /api/orders", s.authed(s.handleOrders))
	mux.HandleFunc("GET /api/orders/{id}", s.authed(s.handleOrder))
	mux.HandleFunc("POST /api/orders/checkout", s.authed(s.handleCheckout))

	return s.withLogging(mux)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.latency > 0 {
			select {
			case <-time.After(s.latency):
			case <-r.Context().Done():
				return
			}
		}
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		started := time.Now()
		next.ServeHTTP(rec, r)
		s.logger.Debug("mock request",
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", rec.status,
			"duration", time.Since(started),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

type authedHandler func(w http.ResponseWriter, r *http.Request, email string)

// authed rejects requests without a known bearer token with an empty 401.
func (s *Server) authed(h authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := s.authorize(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		h(w, r, email)
	}
}

func (s *Server) authorize(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.tokens[strings.TrimPrefix(auth, "Bearer ")]
	return email, ok
}

// Revoke invalidates every token issued for email, as if it had expired.
func (s *Server) Revoke(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for tok, e := range s.tokens {
		if e == email {
			delete(s.tokens, tok)
		}
	}
}

func (s *Server) issueToken(email string) string {
	tok := uuid.NewString()
	s.tokens[tok] = email
	return tok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError mirrors the backend's {"message": ...} error body.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// ListenAndServe serves Handler on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("mock storefront listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
