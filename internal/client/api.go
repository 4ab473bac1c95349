package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vijayaragavan-dev/storefront/internal/gateway"
	"github.com/vijayaragavan-dev/storefront/internal/session"
)

// StorefrontClient is the set of calls the TUI makes. It is implemented by
// API and can be faked in view tests.
type StorefrontClient interface {
	FeaturedProducts(ctx context.Context) ([]Product, error)
	Bestsellers(ctx context.Context) ([]Product, error)
	Product(ctx context.Context, id int64) (*Product, error)
	SearchProducts(ctx context.Context, query string) (*ProductPage, error)
	Categories(ctx context.Context) ([]string, error)
	ProductsByCategory(ctx context.Context, category string) (*ProductPage, error)
	CartItems(ctx context.Context) ([]CartItem, error)
	CartCount(ctx context.Context) (int, error)
	AddToCart(ctx context.Context, productID int64, quantity int) (*CartItem, error)
	UpdateCartItem(ctx context.Context, cartItemID int64, quantity int) (*CartItem, error)
	RemoveCartItem(ctx context.Context, cartItemID int64) error
	ClearCart(ctx context.Context) error
	Login(ctx context.Context, email, password string) (*session.User, error)
	Register(ctx context.Context, req *RegisterRequest) (*session.User, error)
	Logout() error
}

// API talks to the storefront REST API through a gateway.
type API struct {
	gw    *gateway.Gateway
	store session.Store
}

var _ StorefrontClient = (*API)(nil)

// New creates an API. store is written on login and cleared on logout; it
// should be the same store the gateway reads tokens from.
func New(gw *gateway.Gateway, store session.Store) *API {
	return &API{gw: gw, store: store}
}

// --- Products ---

// FeaturedProducts fetches GET /products/featured.
func (a *API) FeaturedProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := a.public(ctx, "/products/featured", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Products fetches one page of the catalogue.
func (a *API) Products(ctx context.Context, req PageRequest) (*ProductPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(req.Page))
	size := req.Size
	if size <= 0 {
		size = 12
	}
	q.Set("size", strconv.Itoa(size))
	if req.SortBy != "" {
		q.Set("sortBy", req.SortBy)
	}
	if req.SortDir != "" {
		q.Set("sortDir", req.SortDir)
	}
	var page ProductPage
	if err := a.public(ctx, "/products?"+q.Encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Bestsellers returns the four highest-rated products.
func (a *API) Bestsellers(ctx context.Context) ([]Product, error) {
	page, err := a.Products(ctx, PageRequest{Page: 0, Size: 4, SortBy: "rating", SortDir: "desc"})
	if err != nil {
		return nil, err
	}
	return page.Content, nil
}

// Product fetches GET /products/{id}.
func (a *API) Product(ctx context.Context, id int64) (*Product, error) {
	res, err := a.gw.Request(ctx, gateway.Descriptor{
		Endpoint: "/products/" + strconv.FormatInt(id, 10),
		Method:   http.MethodGet,
	})
	if err != nil {
		return nil, err
	}
	return decodeOne[Product](res)
}

// SearchProducts fetches GET /products/search?q=.
func (a *API) SearchProducts(ctx context.Context, query string) (*ProductPage, error) {
	var page ProductPage
	if err := a.public(ctx, "/products/search?q="+url.QueryEscape(query), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ProductsByCategory fetches GET /products/category/{category}.
func (a *API) ProductsByCategory(ctx context.Context, category string) (*ProductPage, error) {
	var page ProductPage
	if err := a.public(ctx, "/products/category/"+url.PathEscape(category), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Categories fetches GET /products/categories.
func (a *API) Categories(ctx context.Context) ([]string, error) {
	var out []string
	if err := a.public(ctx, "/products/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Cart ---

// CartItems fetches GET /cart.
func (a *API) CartItems(ctx context.Context) ([]CartItem, error) {
	res, err := a.gw.Get(ctx, "/cart")
	if err != nil {
		return nil, err
	}
	return gateway.DecodeAs[[]CartItem](res)
}

// CartCount fetches GET /cart/count.
func (a *API) CartCount(ctx context.Context) (int, error) {
	res, err := a.gw.Get(ctx, "/cart/count")
	if err != nil {
		return 0, err
	}
	var out struct {
		Count int `json:"count"`
	}
	if err := res.Decode(&out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// CartTotal fetches GET /cart/total.
func (a *API) CartTotal(ctx context.Context) (float64, error) {
	res, err := a.gw.Get(ctx, "/cart/total")
	if err != nil {
		return 0, err
	}
	var out struct {
		Total float64 `json:"total"`
	}
	if err := res.Decode(&out); err != nil {
		return 0, err
	}
	return out.Total, nil
}

// AddToCart sends POST /cart/add?productId=&quantity=.
func (a *API) AddToCart(ctx context.Context, productID int64, quantity int) (*CartItem, error) {
	if quantity <= 0 {
		quantity = 1
	}
	path := fmt.Sprintf("/cart/add?productId=%d&quantity=%d", productID, quantity)
	res, err := a.gw.Post(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[CartItem](res)
}

// UpdateCartItem sends PUT /cart/{id}?quantity=.
func (a *API) UpdateCartItem(ctx context.Context, cartItemID int64, quantity int) (*CartItem, error) {
	path := fmt.Sprintf("/cart/%d?quantity=%d", cartItemID, quantity)
	res, err := a.gw.Put(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[CartItem](res)
}

// RemoveCartItem sends DELETE /cart/{id}.
func (a *API) RemoveCartItem(ctx context.Context, cartItemID int64) error {
	_, err := a.gw.Delete(ctx, "/cart/"+strconv.FormatInt(cartItemID, 10))
	return err
}

// ClearCart sends DELETE /cart/clear.
func (a *API) ClearCart(ctx context.Context) error {
	_, err := a.gw.Delete(ctx, "/cart/clear")
	return err
}

// --- Orders ---

// Orders fetches GET /orders.
func (a *API) Orders(ctx context.Context) ([]Order, error) {
	res, err := a.gw.Get(ctx, "/orders")
	if err != nil {
		return nil, err
	}
	return gateway.DecodeAs[[]Order](res)
}

// Order fetches GET /orders/{id}.
func (a *API) Order(ctx context.Context, id int64) (*Order, error) {
	res, err := a.gw.Get(ctx, "/orders/"+strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}
	return decodeOne[Order](res)
}

// Checkout sends POST /orders/checkout.
func (a *API) Checkout(ctx context.Context, req *CheckoutRequest) (*Order, error) {
	res, err := a.gw.Post(ctx, "/orders/checkout", req)
	if err != nil {
		return nil, err
	}
	return decodeOne[Order](res)
}

// --- Auth ---

// Login posts credentials and stores the returned session.
func (a *API) Login(ctx context.Context, email, password string) (*session.User, error) {
	return a.authenticate(ctx, "/auth/login", LoginRequest{Email: email, Password: password})
}

// Register creates an account and stores the returned session.
func (a *API) Register(ctx context.Context, req *RegisterRequest) (*session.User, error) {
	return a.authenticate(ctx, "/auth/register", req)
}

// Logout clears the stored session. The API is stateless, so there is no
// server call.
func (a *API) Logout() error {
	return a.store.Clear()
}

func (a *API) authenticate(ctx context.Context, endpoint string, body any) (*session.User, error) {
	res, err := a.gw.Request(ctx, gateway.Descriptor{
		Endpoint: endpoint,
		Method:   http.MethodPost,
		Body:     body,
	})
	if err != nil {
		return nil, err
	}
	if res.IsNull() {
		return nil, &gateway.DecodeError{Endpoint: endpoint, Err: errors.New("empty auth response")}
	}
	auth, err := gateway.DecodeAs[AuthResponse](res)
	if err != nil {
		return nil, err
	}
	user := &session.User{
		ID:        auth.ID,
		Email:     auth.Email,
		FirstName: auth.FirstName,
		LastName:  auth.LastName,
		Role:      auth.Role,
	}
	if err := a.store.Set(session.Session{Token: auth.Token, User: user}); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}
	return user, nil
}

// decodeOne decodes a single object. A null result yields nil, nil.
func decodeOne[T any](res gateway.Result) (*T, error) {
	if res.IsNull() {
		return nil, nil
	}
	v, err := gateway.DecodeAs[T](res)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// public issues an unauthenticated GET and decodes the payload into out.
func (a *API) public(ctx context.Context, endpoint string, out any) error {
	res, err := a.gw.Request(ctx, gateway.Descriptor{Endpoint: endpoint, Method: http.MethodGet})
	if err != nil {
		return err
	}
	return res.Decode(out)
}
