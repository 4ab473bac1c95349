package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijayaragavan-dev/storefront/internal/client"
	"github.com/vijayaragavan-dev/storefront/internal/gateway"
	"github.com/vijayaragavan-dev/storefront/internal/overlay"
	"github.com/vijayaragavan-dev/storefront/internal/session"
	"github.com/vijayaragavan-dev/storefront/internal/toast"
	"github.com/vijayaragavan-dev/storefront/internal/views/login"
)

// fakeAPI implements client.StorefrontClient. overlaySeen records whether
// the loading overlay was visible while a call was in flight.
type fakeAPI struct {
	mu          sync.Mutex
	store       session.Store
	overlay     *overlay.Controller
	addErr      error
	loginErr    error
	featuredErr error
	added       []int64
	overlaySeen bool
	cartCount   int
	cart        []client.CartItem
	removeErr   error
	updated     map[int64]int
	cleared     bool
	registered  *client.RegisterRequest
	categories  []string
	searched    []string
	detail      map[int64]client.Product
}

func (f *fakeAPI) FeaturedProducts(context.Context) ([]client.Product, error) {
	if f.featuredErr != nil {
		return nil, f.featuredErr
	}
	return []client.Product{{ID: 100, Name: "Live Product", Price: 10}}, nil
}

func (f *fakeAPI) Bestsellers(context.Context) ([]client.Product, error) {
	return client.SampleBestsellers(), nil
}

func (f *fakeAPI) Product(_ context.Context, id int64) (*client.Product, error) {
	if p, ok := f.detail[id]; ok {
		return &p, nil
	}
	return nil, &gateway.HTTPError{Status: 400, Message: "Product not found"}
}

func (f *fakeAPI) SearchProducts(_ context.Context, q string) (*client.ProductPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searched = append(f.searched, q)
	var out []client.Product
	for _, p := range client.SampleProducts() {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
			out = append(out, p)
		}
	}
	return &client.ProductPage{Content: out}, nil
}

func (f *fakeAPI) Categories(context.Context) ([]string, error) { return f.categories, nil }

func (f *fakeAPI) ProductsByCategory(_ context.Context, category string) (*client.ProductPage, error) {
	var out []client.Product
	for _, p := range client.SampleProducts() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return &client.ProductPage{Content: out}, nil
}

func (f *fakeAPI) UpdateCartItem(_ context.Context, id int64, qty int) (*client.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overlaySeen = f.overlay.Visible()
	if f.updated == nil {
		f.updated = make(map[int64]int)
	}
	f.updated[id] = qty
	for i, it := range f.cart {
		if it.ID == id {
			f.cart[i].Quantity = qty
			return &f.cart[i], nil
		}
	}
	return nil, &gateway.HTTPError{Status: 400, Message: "Cart item not found"}
}

func (f *fakeAPI) ClearCart(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overlaySeen = f.overlay.Visible()
	f.cleared = true
	f.cart = nil
	return nil
}

func (f *fakeAPI) Register(_ context.Context, req *client.RegisterRequest) (*session.User, error) {
	f.overlaySeen = f.overlay.Visible()
	f.registered = req
	u := &session.User{ID: 2, Email: req.Email, FirstName: req.FirstName, LastName: req.LastName}
	return u, f.store.Set(session.Session{Token: "new-tok", User: u})
}

func (f *fakeAPI) CartCount(context.Context) (int, error) { return f.cartCount, nil }

func (f *fakeAPI) CartItems(context.Context) ([]client.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]client.CartItem(nil), f.cart...), nil
}

func (f *fakeAPI) RemoveCartItem(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overlaySeen = f.overlay.Visible()
	if f.removeErr != nil {
		return f.removeErr
	}
	for i, it := range f.cart {
		if it.ID == id {
			f.cart = append(f.cart[:i], f.cart[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeAPI) AddToCart(_ context.Context, productID int64, _ int) (*client.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overlaySeen = f.overlay.Visible()
	f.added = append(f.added, productID)
	if f.addErr != nil {
		return nil, f.addErr
	}
	return &client.CartItem{ProductID: productID, Quantity: 1}, nil
}

func (f *fakeAPI) Login(_ context.Context, email, _ string) (*session.User, error) {
	f.overlaySeen = f.overlay.Visible()
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	u := &session.User{ID: 1, Email: email, FirstName: "Ada"}
	return u, f.store.Set(session.Session{Token: "tok", User: u})
}

func (f *fakeAPI) Logout() error { return f.store.Clear() }

type harness struct {
	m      Model
	api    *fakeAPI
	store  *session.MemoryStore
	toasts *toast.Notifier
	ov     *overlay.Controller
	expiry *Expiry
}

func newHarness(t *testing.T, signedIn bool) *harness {
	t.Helper()
	clock := clockwork.NewFakeClock()
	store := session.NewMemoryStore()
	if signedIn {
		require.NoError(t, store.Set(session.Session{
			Token: "tok",
			User:  &session.User{ID: 1, FirstName: "Ada"},
		}))
	}
	ov := overlay.New(overlay.WithClock(clock))
	ts := toast.New(toast.WithClock(clock))
	api := &fakeAPI{store: store, overlay: ov, cartCount: 2}
	exp := &Expiry{}

	m := New(Deps{API: api, Store: store, Overlay: ov, Toasts: ts, Expiry: exp})
	m.width, m.height = 120, 40
	m.statusBar.Width = 120
	return &harness{m: m, api: api, store: store, toasts: ts, ov: ov, expiry: exp}
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *harness) key(s string) tea.Cmd {
	switch s {
	case "enter":
		return h.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return h.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "tab":
		return h.send(tea.KeyMsg{Type: tea.KeyTab})
	}
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// run executes cmd and feeds its message back into the model.
func (h *harness) run(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return h.send(cmd())
}

func (h *harness) loadHome() {
	h.send(featuredMsg{products: []client.Product{{ID: 100, Name: "Live Product", Price: 10}}})
	h.send(bestsellersMsg{products: client.SampleBestsellers()})
}

func messages(n *toast.Notifier) []string {
	var out []string
	for _, t := range n.Visible() {
		out = append(out, string(t.Kind)+":"+t.Message)
	}
	return out
}

func TestAddToCartRequiresLogin(t *testing.T) {
	h := newHarness(t, false)
	h.loadHome()

	cmd := h.key("a")
	assert.Nil(t, cmd)
	assert.False(t, h.ov.Visible())
	assert.Empty(t, h.api.added)
	assert.Equal(t, []string{"warning:" + MessageLoginRequired}, messages(h.toasts))
}

func TestAddToCartSuccess(t *testing.T) {
	h := newHarness(t, true)
	h.loadHome()

	cmd := h.key("a")
	require.NotNil(t, cmd)
	assert.True(t, h.ov.Visible(), "overlay shows before the request")

	follow := h.run(cmd)
	assert.True(t, h.api.overlaySeen)
	assert.False(t, h.ov.Visible(), "overlay hidden after the request")
	assert.Equal(t, []int64{100}, h.api.added)
	assert.Equal(t, []string{"success:" + MessageAdded}, messages(h.toasts))

	h.run(follow)
	assert.Equal(t, 2, h.m.statusBar.CartCount)
}

func TestAddToCartFailureShowsError(t *testing.T) {
	h := newHarness(t, true)
	h.loadHome()
	h.api.addErr = &gateway.TimeoutError{Method: "POST", Endpoint: "/cart/add", After: 15 * time.Second}

	h.run(h.key("a"))
	assert.False(t, h.ov.Visible())
	assert.Equal(t, []string{"error:Request timed out. Please try again."}, messages(h.toasts))
}

func TestAddToCartFromBestsellersDetail(t *testing.T) {
	h := newHarness(t, true)
	h.loadHome()

	h.key("tab")
	h.key("l")
	h.key("enter")
	require.Equal(t, OverlayDetail, h.m.modal)
	assert.Contains(t, h.m.View(), "Wireless Earbuds")

	h.run(h.key("a"))
	assert.Equal(t, []int64{6}, h.api.added)
}

func TestLogout(t *testing.T) {
	h := newHarness(t, true)
	h.key("o")
	assert.Empty(t, h.store.Token())
	assert.Nil(t, h.m.statusBar.User)
	assert.Equal(t, []string{"success:" + MessageLoggedOut}, messages(h.toasts))
}

func TestFeaturedFallsBackToSamples(t *testing.T) {
	h := newHarness(t, false)
	h.api.featuredErr = &gateway.NetworkError{Method: "GET", Endpoint: "/products/featured", Err: errors.New("refused")}

	h.send(h.m.loadFeatured()())
	assert.True(t, h.m.featured.Fallback)
	assert.Equal(t, client.SampleFeatured(), h.m.featured.Products)
}

func TestSessionExpiryOpensLogin(t *testing.T) {
	h := newHarness(t, true)
	h.expiry.Notify()

	h.send(frameMsg(time.Now()))
	assert.Equal(t, ScreenLogin, h.m.screen)
	assert.Nil(t, h.m.statusBar.User)
	assert.Contains(t, h.m.View(), "session has expired")
	assert.False(t, h.expiry.Take(), "flag consumed")
}

func TestLoginFlow(t *testing.T) {
	h := newHarness(t, false)
	h.key("L")
	require.Equal(t, ScreenLogin, h.m.screen)

	for _, r := range "ada@example.com" {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	h.key("tab")
	for _, r := range "pw" {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	submit := h.key("enter")
	require.NotNil(t, submit)
	call := h.send(submit())
	require.NotNil(t, call)
	assert.True(t, h.ov.Visible())

	h.run(call)
	assert.True(t, h.api.overlaySeen)
	assert.False(t, h.ov.Visible())
	assert.Equal(t, ScreenHome, h.m.screen)
	assert.Equal(t, "tok", h.store.Token())
	assert.Equal(t, []string{"success:" + MessageLoggedIn}, messages(h.toasts))
}

func TestLoginRejected(t *testing.T) {
	h := newHarness(t, false)
	h.m.openLogin("")
	h.m.loginForm.Pending = true
	h.api.loginErr = &gateway.SessionExpiredError{Method: "POST", Endpoint: "/auth/login"}
	h.expiry.Notify()

	h.send(frameMsg(time.Now()))
	assert.True(t, h.expiry.Take(), "pending login keeps the flag")
	h.expiry.Notify()

	h.run(h.m.login("ada@example.com", "bad"))
	assert.Equal(t, ScreenLogin, h.m.screen)
	assert.Equal(t, login.MessageInvalidCredentials, h.m.loginForm.Err)
	assert.False(t, h.expiry.Take())
	assert.False(t, strings.Contains(h.m.View(), "session has expired"))
}

func TestFrameSyncsOverlayAndToasts(t *testing.T) {
	h := newHarness(t, false)
	h.ov.Show()
	h.toasts.Info("hello")

	h.send(frameMsg(time.Now()))
	assert.True(t, h.m.loading.Target())
	assert.Len(t, h.m.visible, 1)

	h.ov.Hide()
	h.send(frameMsg(time.Now()))
	assert.False(t, h.m.loading.Target())
}

func TestViewBeforeResize(t *testing.T) {
	h := newHarness(t, false)
	h.m.width = 0
	assert.Equal(t, "Initializing...", h.m.View())
}

func TestCartRequiresLogin(t *testing.T) {
	h := newHarness(t, false)
	assert.Nil(t, h.key("c"))
	assert.Equal(t, ScreenHome, h.m.screen)
	assert.Equal(t, []string{"warning:" + MessageCartLogin}, messages(h.toasts))
}

func TestCartRemoveItem(t *testing.T) {
	h := newHarness(t, true)
	h.api.cart = []client.CartItem{
		{ID: 1, ProductName: "Smart Watch Pro", Price: 349.99, Quantity: 1},
		{ID: 2, ProductName: "Denim Jacket Classic", Price: 129.99, Quantity: 1},
	}

	load := h.key("c")
	require.NotNil(t, load)
	assert.Equal(t, ScreenCart, h.m.screen)
	assert.True(t, h.ov.Visible())

	h.run(load)
	assert.False(t, h.ov.Visible())
	require.Len(t, h.m.cartView.Items, 2)
	assert.Contains(t, h.m.View(), "Denim Jacket Classic")

	h.key("j")
	remove := h.key("x")
	require.NotNil(t, remove)
	assert.True(t, h.ov.Visible())

	h.send(remove())
	assert.True(t, h.api.overlaySeen)
	assert.False(t, h.ov.Visible())
	assert.Equal(t, []string{"success:" + MessageRemoved}, messages(h.toasts))

	// The follow-up batch reloads the cart and the badge.
	h.send(h.m.loadCart(false)())
	require.Len(t, h.m.cartView.Items, 1)
	assert.Equal(t, int64(1), h.m.cartView.Items[0].ID)

	h.key("esc")
	assert.Equal(t, ScreenHome, h.m.screen)
}

func TestCartRemoveFailure(t *testing.T) {
	h := newHarness(t, true)
	h.api.cart = []client.CartItem{{ID: 9, ProductName: "Gone", Quantity: 1}}
	h.run(h.key("c"))
	h.api.removeErr = &gateway.HTTPError{Status: 400, Message: "Cart item not found"}

	h.send(h.key("x")())
	assert.False(t, h.ov.Visible())
	assert.Equal(t, []string{"error:Cart item not found"}, messages(h.toasts))
	assert.Len(t, h.m.cartView.Items, 1)
}

func openCart(t *testing.T, h *harness) {
	t.Helper()
	load := h.key("c")
	require.NotNil(t, load)
	h.run(load)
	require.Equal(t, ScreenCart, h.m.screen)
}

func TestCartQuantityKeys(t *testing.T) {
	h := newHarness(t, true)
	h.api.cart = []client.CartItem{
		{ID: 1, ProductName: "Smart Watch Pro", Price: 349.99, Quantity: 2},
		{ID: 2, ProductName: "Denim Jacket Classic", Price: 129.99, Quantity: 1},
	}
	openCart(t, h)

	inc := h.key("+")
	require.NotNil(t, inc)
	assert.True(t, h.ov.Visible())
	h.send(inc())
	assert.True(t, h.api.overlaySeen)
	assert.False(t, h.ov.Visible())
	assert.Equal(t, 3, h.api.updated[1])
	assert.Equal(t, []string{"success:" + MessageCartUpdated}, messages(h.toasts))

	h.send(h.m.loadCart(false)())
	assert.Equal(t, 3, h.m.cartView.Items[0].Quantity)

	h.send(h.key("-")())
	assert.Equal(t, 2, h.api.updated[1])

	// At quantity one, minus removes the line.
	h.key("j")
	h.send(h.key("-")())
	_, touched := h.api.updated[2]
	assert.False(t, touched)
	assert.Len(t, h.api.cart, 1)
	assert.Contains(t, messages(h.toasts), "success:"+MessageRemoved)
}

func TestCartClear(t *testing.T) {
	h := newHarness(t, true)
	h.api.cart = []client.CartItem{{ID: 1, ProductName: "Smart Watch Pro", Quantity: 2}}
	openCart(t, h)
	h.m.statusBar.CartCount = 2

	wipe := h.key("X")
	require.NotNil(t, wipe)
	assert.True(t, h.ov.Visible())
	h.send(wipe())

	assert.True(t, h.api.cleared)
	assert.False(t, h.ov.Visible())
	assert.Empty(t, h.m.cartView.Items)
	assert.Zero(t, h.m.statusBar.CartCount)
	assert.Equal(t, []string{"success:" + MessageCartCleared}, messages(h.toasts))
	assert.Contains(t, h.m.View(), "Your cart is empty")

	assert.Nil(t, h.key("X"), "nothing to clear")
}

func TestRegisterFlow(t *testing.T) {
	h := newHarness(t, false)
	h.key("L")
	call := h.send(login.SubmitMsg{
		Email: "grace@example.com", Password: "secret1",
		Register: true, FirstName: "Grace", LastName: "Hopper",
	})
	require.NotNil(t, call)
	assert.True(t, h.ov.Visible())

	h.run(call)
	assert.True(t, h.api.overlaySeen)
	require.NotNil(t, h.api.registered)
	assert.Equal(t, "Hopper", h.api.registered.LastName)
	assert.Equal(t, ScreenHome, h.m.screen)
	assert.Equal(t, "new-tok", h.store.Token())
	assert.Equal(t, "Grace", h.m.statusBar.User.FirstName)
	assert.Equal(t, []string{"success:" + MessageRegistered}, messages(h.toasts))
}

func TestCategoryBrowsing(t *testing.T) {
	h := newHarness(t, false)
	h.loadHome()
	h.api.categories = []string{"Accessories", "Electronics"}

	load := h.key("g")
	require.NotNil(t, load)
	page := h.run(load)
	require.NotNil(t, page)
	assert.Equal(t, "Category: Accessories", h.m.results.Title)
	assert.True(t, h.m.results.Loading)

	h.run(page)
	assert.Equal(t, sectionResults, h.m.section)
	require.Len(t, h.m.results.Products, 2)
	assert.Equal(t, "Designer Sunglasses", h.m.results.Products[0].Name)

	stale := h.m.loadCategory("Category: Accessories", "Accessories")
	h.run(h.key("g"))
	assert.Equal(t, "Category: Electronics", h.m.results.Title)
	assert.Len(t, h.m.results.Products, 4)

	h.send(stale())
	assert.Equal(t, "Category: Electronics", h.m.results.Title, "late answers are dropped")
	assert.Len(t, h.m.results.Products, 4)

	h.key("tab")
	assert.Equal(t, sectionFeatured, h.m.section)
	h.key("tab")
	h.key("tab")
	assert.Equal(t, sectionResults, h.m.section)
	assert.Contains(t, h.m.View(), "Category: Electronics")
}

func TestSearch(t *testing.T) {
	h := newHarness(t, false)
	h.loadHome()

	h.key("/")
	require.True(t, h.m.searching)
	for _, r := range "watch" {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Empty(t, h.api.added, "typing does not trigger shortcuts")

	run := h.key("enter")
	require.NotNil(t, run)
	assert.False(t, h.m.searching)
	h.run(run)
	assert.Equal(t, []string{"watch"}, h.api.searched)
	assert.Equal(t, `Results for "watch"`, h.m.results.Title)
	require.Len(t, h.m.results.Products, 1)
	assert.Equal(t, "Smart Watch Pro", h.m.results.Products[0].Name)

	h.key("/")
	assert.Nil(t, h.key("enter"), "empty query is ignored")
	h.key("/")
	h.key("esc")
	assert.False(t, h.m.searching)
	assert.Len(t, h.api.searched, 1)
}

func TestDetailRefreshesProduct(t *testing.T) {
	h := newHarness(t, false)
	h.loadHome()
	h.api.detail = map[int64]client.Product{
		100: {ID: 100, Name: "Live Product", Price: 10, Description: "Now with **tracking**.", StockQuantity: 3},
	}

	refresh := h.key("enter")
	require.NotNil(t, refresh)
	require.Equal(t, OverlayDetail, h.m.modal)
	assert.Empty(t, h.m.detail.Product.Description)

	h.run(refresh)
	assert.Equal(t, 3, h.m.detail.Product.StockQuantity)
	assert.Contains(t, h.m.View(), "3 in stock")

	h.key("esc")
	h.key("tab")
	h.run(h.key("enter"))
	assert.Equal(t, OverlayDetail, h.m.modal, "a failed refresh keeps the pane open")
}

func TestDebugPaneFilter(t *testing.T) {
	h := newHarness(t, false)
	h.key("d")
	require.Equal(t, OverlayDebug, h.m.modal)
	h.key("f")
	assert.True(t, h.m.debugLog.FailuresOnly)
	assert.Contains(t, h.m.View(), "[failures only]")
}
