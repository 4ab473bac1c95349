// Package app is the root Bubble Tea model of the storefront TUI. Every API
// call runs in a tea.Cmd; the loading overlay, toasts and session expiry are
// owned by their controllers and sampled once per frame.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vijayaragavan-dev/storefront/internal/client"
	"github.com/vijayaragavan-dev/storefront/internal/gateway"
	"github.com/vijayaragavan-dev/storefront/internal/overlay"
	"github.com/vijayaragavan-dev/storefront/internal/session"
	"github.com/vijayaragavan-dev/storefront/internal/theme"
	"github.com/vijayaragavan-dev/storefront/internal/toast"
	"github.com/vijayaragavan-dev/storefront/internal/views/cart"
	"github.com/vijayaragavan-dev/storefront/internal/views/debug"
	"github.com/vijayaragavan-dev/storefront/internal/views/detail"
	"github.com/vijayaragavan-dev/storefront/internal/views/loading"
	"github.com/vijayaragavan-dev/storefront/internal/views/login"
	"github.com/vijayaragavan-dev/storefront/internal/views/products"
	"github.com/vijayaragavan-dev/storefront/internal/views/status"
	"github.com/vijayaragavan-dev/storefront/internal/views/toasts"
)

// Toast texts.
const (
	MessageLoginRequired = "Please login to add items to cart"
	MessageAdded         = "Product added to cart"
	MessageLoggedOut     = "Logged out successfully"
	MessageLoggedIn      = "Login successful!"
	MessageCartLogin     = "Please login to view your cart"
	MessageRemoved       = "Item removed from cart"
	MessageRegistered    = "Registration successful!"
	MessageCartUpdated   = "Cart updated"
	MessageCartCleared   = "Cart cleared"
	MessageNoCategories  = "No categories available"
)

// Screen identifies the active page.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenLogin
	ScreenCart
)

// Overlay identifies which modal is active.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayDetail
	OverlayDebug
)

const (
	sectionFeatured = iota
	sectionBestsellers
	sectionResults
)

// Messages produced by commands.
type (
	frameMsg time.Time

	featuredMsg struct {
		products []client.Product
		err      error
	}
	bestsellersMsg struct {
		products []client.Product
		err      error
	}
	cartCountMsg struct {
		count int
		err   error
	}
	addedMsg struct {
		product client.Product
		err     error
	}
	cartItemsMsg struct {
		items []client.CartItem
		err   error
	}
	removedMsg struct {
		item client.CartItem
		err  error
	}
	loginResultMsg struct {
		user       *session.User
		registered bool
		err        error
	}
	productMsg struct {
		product *client.Product
		err     error
	}
	categoriesMsg struct {
		names []string
		err   error
	}
	resultsMsg struct {
		title    string
		products []client.Product
		err      error
	}
	cartUpdatedMsg struct {
		item client.CartItem
		err  error
	}
	cartClearedMsg struct {
		err error
	}
)

// Deps are the collaborators the model drives.
type Deps struct {
	API     client.StorefrontClient
	Store   session.Store
	Overlay *overlay.Controller
	Toasts  *toast.Notifier
	Expiry  *Expiry
	Sink    *debug.Sink
	Logger  *slog.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	api     client.StorefrontClient
	store   session.Store
	overlay *overlay.Controller
	toasts  *toast.Notifier
	expiry  *Expiry
	sink    *debug.Sink
	logger  *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	keys   KeyMap
	width  int
	height int

	screen   Screen
	modal    Overlay
	section  int
	featured products.Grid
	best     products.Grid
	// results holds search or category results once either has been used.
	results    products.Grid
	hasResults bool
	categories []string
	category   int
	search     textinput.Model
	searching  bool

	// Sub-views.
	statusBar status.Model
	cartView  cart.Model
	detail    detail.Model
	debugLog  debug.Model
	loginForm login.Model
	loading   loading.Model
	visible   []toast.Toast
}

// New creates the root model.
func New(d Deps) Model {
	ctx, cancel := context.WithCancel(context.Background())
	if d.Expiry == nil {
		d.Expiry = &Expiry{}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	search := textinput.New()
	search.Prompt = "Search › "
	search.Placeholder = "products..."
	search.CharLimit = 100

	m := Model{
		api:       d.API,
		store:     d.Store,
		overlay:   d.Overlay,
		toasts:    d.Toasts,
		expiry:    d.Expiry,
		sink:      d.Sink,
		logger:    d.Logger,
		ctx:       ctx,
		cancel:    cancel,
		keys:      DefaultKeyMap(),
		featured:  products.NewGrid("Featured Products"),
		best:      products.NewGrid("Bestsellers"),
		category:  -1,
		search:    search,
		statusBar: status.New(),
		cartView:  cart.New(),
		debugLog:  debug.New(),
		loginForm: login.New(),
		loading:   loading.New(),
	}
	if sess, ok := d.Store.Get(); ok {
		m.statusBar.SetSession(sess.User)
	}
	return m
}

// Init loads the home page and starts the frame clock.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.loadFeatured(),
		m.loadBestsellers(),
		m.loading.Spinner.Tick,
		frameTick(),
	}
	if m.loggedIn() {
		cmds = append(cmds, m.loadCartCount())
	}
	return tea.Batch(cmds...)
}

func frameTick() tea.Cmd {
	return tea.Tick(loading.FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.statusBar.Width = msg.Width
		m.cartView.Width = msg.Width
		return m, nil

	case frameMsg:
		m.syncFrame()
		return m, frameTick()

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		switch m.screen {
		case ScreenLogin:
			return m.handleLoginKey(msg)
		case ScreenCart:
			return m.handleCartKey(msg)
		}
		return m.handleKey(msg)

	case featuredMsg:
		if msg.err != nil {
			m.logger.Warn("loading featured products, showing samples", "error", msg.err)
			m.featured.SetProducts(client.SampleFeatured(), true)
			return m, nil
		}
		m.featured.SetProducts(msg.products, false)
		return m, nil

	case bestsellersMsg:
		if msg.err != nil {
			m.logger.Warn("loading bestsellers, showing samples", "error", msg.err)
			m.best.SetProducts(client.SampleBestsellers(), true)
			return m, nil
		}
		m.best.SetProducts(msg.products, false)
		return m, nil

	case cartCountMsg:
		if msg.err != nil {
			m.logger.Warn("loading cart count", "error", msg.err)
			return m, nil
		}
		m.statusBar.CartCount = msg.count
		return m, nil

	case addedMsg:
		if msg.err != nil {
			m.toasts.Error(gateway.UserMessage(msg.err))
			return m, nil
		}
		m.toasts.Success(MessageAdded)
		m.logger.Info("added to cart", "product", msg.product.ID)
		return m, m.loadCartCount()

	case cartItemsMsg:
		if msg.err != nil {
			m.toasts.Error(gateway.UserMessage(msg.err))
			m.cartView.SetItems(nil)
			return m, nil
		}
		m.cartView.SetItems(msg.items)
		return m, nil

	case removedMsg:
		if msg.err != nil {
			m.toasts.Error(gateway.UserMessage(msg.err))
			return m, nil
		}
		m.toasts.Success(MessageRemoved)
		m.logger.Info("removed from cart", "item", msg.item.ID)
		return m, tea.Batch(m.loadCart(false), m.loadCartCount())

	case cartUpdatedMsg:
		if msg.err != nil {
			m.toasts.Error(gateway.UserMessage(msg.err))
			return m, nil
		}
		m.toasts.Success(MessageCartUpdated)
		return m, tea.Batch(m.loadCart(false), m.loadCartCount())

	case cartClearedMsg:
		if msg.err != nil {
			m.toasts.Error(gateway.UserMessage(msg.err))
			return m, nil
		}
		m.cartView.SetItems(nil)
		m.statusBar.CartCount = 0
		m.toasts.Success(MessageCartCleared)
		return m, nil

	case productMsg:
		if msg.err != nil {
			m.logger.Warn("refreshing product", "error", msg.err)
			return m, nil
		}
		if msg.product != nil && m.modal == OverlayDetail && m.detail.Product != nil && m.detail.Product.ID == msg.product.ID {
			m.detail = detail.New(msg.product)
		}
		return m, nil

	case categoriesMsg:
		if msg.err != nil {
			m.toasts.Error(gateway.UserMessage(msg.err))
			return m, nil
		}
		if len(msg.names) == 0 {
			m.toasts.Info(MessageNoCategories)
			return m, nil
		}
		m.categories = msg.names
		m.category = -1
		return m.nextCategory()

	case resultsMsg:
		if msg.title != m.results.Title {
			return m, nil
		}
		if msg.err != nil {
			m.toasts.Error(gateway.UserMessage(msg.err))
			m.results.SetProducts(nil, false)
			return m, nil
		}
		m.results.SetProducts(msg.products, false)
		return m, nil

	case login.SubmitMsg:
		if msg.Register {
			return m, m.register(msg)
		}
		return m, m.login(msg.Email, msg.Password)

	case loginResultMsg:
		return m.handleLoginResult(msg)
	}

	var cmd tea.Cmd
	m.loading, cmd = m.loading.Update(msg)
	var sub tea.Cmd
	switch {
	case m.searching:
		m.search, sub = m.search.Update(msg)
	case m.screen == ScreenLogin:
		m.loginForm, sub = m.loginForm.Update(msg)
	}
	return m, tea.Batch(cmd, sub)
}

// syncFrame samples the controllers that change outside the event loop.
func (m *Model) syncFrame() {
	m.loading.SetVisible(m.overlay.Visible())
	m.loading.Step()
	m.visible = m.toasts.Visible()
	if m.sink != nil {
		m.debugLog.Append(m.sink.Drain()...)
	}
	// A login attempt answered with 401 also trips the hook; the result
	// message handles that case.
	if !m.loginForm.Pending && m.expiry.Take() {
		m.statusBar.SetSession(nil)
		m.openLogin(gateway.UserMessage(&gateway.SessionExpiredError{}))
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != OverlayNone {
		switch {
		case key.Matches(msg, m.keys.Escape):
			m.modal = OverlayNone
		case m.modal == OverlayDetail && key.Matches(msg, m.keys.AddToCart):
			return m.addCurrent()
		case m.modal == OverlayDebug && key.Matches(msg, m.keys.Up):
			m.debugLog.ScrollUp(1)
		case m.modal == OverlayDebug && key.Matches(msg, m.keys.Down):
			m.debugLog.ScrollDown(1)
		case m.modal == OverlayDebug && key.Matches(msg, m.keys.Failures):
			m.debugLog.ToggleFailures()
		case key.Matches(msg, m.keys.Quit):
			m.cancel()
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.grid().Prev()

	case key.Matches(msg, m.keys.Right):
		m.grid().Next()

	case key.Matches(msg, m.keys.Tab):
		n := 2
		if m.hasResults {
			n = 3
		}
		m.section = (m.section + 1) % n

	case key.Matches(msg, m.keys.Enter):
		if p, ok := m.grid().Current(); ok {
			m.detail = detail.New(&p)
			m.modal = OverlayDetail
			return m, m.loadProduct(p.ID)
		}

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue("")
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Category):
		if m.categories == nil {
			return m, m.loadCategories()
		}
		return m.nextCategory()

	case key.Matches(msg, m.keys.AddToCart):
		return m.addCurrent()

	case key.Matches(msg, m.keys.Cart):
		if !m.loggedIn() {
			m.toasts.Warning(MessageCartLogin)
			return m, nil
		}
		m.screen = ScreenCart
		m.cartView = cart.New()
		m.cartView.Width = m.width
		m.overlay.Show()
		return m, m.loadCart(true)

	case key.Matches(msg, m.keys.Login):
		if !m.loggedIn() {
			m.openLogin("")
			cmd := m.loginForm.Reset()
			return m, cmd
		}

	case key.Matches(msg, m.keys.Logout):
		if m.loggedIn() {
			if err := m.api.Logout(); err != nil {
				m.logger.Error("clearing session", "error", err)
			}
			m.statusBar.SetSession(nil)
			m.toasts.Success(MessageLoggedOut)
		}

	case key.Matches(msg, m.keys.Reload):
		m.featured.Loading = true
		m.best.Loading = true
		return m, tea.Batch(m.loadFeatured(), m.loadBestsellers())

	case key.Matches(msg, m.keys.Debug):
		m.modal = OverlayDebug
	}
	return m, nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape) && !m.loginForm.Pending:
		m.screen = ScreenHome
		return m, nil
	}
	var cmd tea.Cmd
	m.loginForm, cmd = m.loginForm.Update(msg)
	return m, cmd
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape):
		m.screen = ScreenHome
	case key.Matches(msg, m.keys.Up):
		m.cartView.Prev()
	case key.Matches(msg, m.keys.Down):
		m.cartView.Next()
	case key.Matches(msg, m.keys.Remove):
		it, ok := m.cartView.Current()
		if !ok {
			return m, nil
		}
		m.overlay.Show()
		return m, m.removeFromCart(it)
	case key.Matches(msg, m.keys.Increase):
		it, ok := m.cartView.Current()
		if !ok {
			return m, nil
		}
		m.overlay.Show()
		return m, m.updateQuantity(it, it.Quantity+1)
	case key.Matches(msg, m.keys.Decrease):
		it, ok := m.cartView.Current()
		if !ok {
			return m, nil
		}
		m.overlay.Show()
		if it.Quantity <= 1 {
			return m, m.removeFromCart(it)
		}
		return m, m.updateQuantity(it, it.Quantity-1)
	case key.Matches(msg, m.keys.ClearCart):
		if len(m.cartView.Items) == 0 {
			return m, nil
		}
		m.overlay.Show()
		return m, m.clearCart()
	}
	return m, nil
}

// handleSearchKey edits the search box. Enter runs a non-empty query into
// the results grid; esc abandons it.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.cancel()
		return m, tea.Quit
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEnter:
		q := strings.TrimSpace(m.search.Value())
		m.searching = false
		m.search.Blur()
		if q == "" {
			return m, nil
		}
		title := fmt.Sprintf("Results for %q", q)
		m.showResults(title)
		return m, m.searchProducts(title, q)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// nextCategory advances to the next category, wrapping, and loads it.
func (m Model) nextCategory() (tea.Model, tea.Cmd) {
	m.category = (m.category + 1) % len(m.categories)
	name := m.categories[m.category]
	title := "Category: " + name
	m.showResults(title)
	return m, m.loadCategory(title, name)
}

func (m *Model) showResults(title string) {
	m.results = products.NewGrid(title)
	m.hasResults = true
	m.section = sectionResults
}

func (m Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.loginForm.Pending = false
	if msg.err != nil {
		if gateway.KindOf(msg.err) == gateway.KindSessionExpired {
			m.expiry.Take()
			m.loginForm.Err = login.MessageInvalidCredentials
		} else {
			m.loginForm.Err = gateway.UserMessage(msg.err)
		}
		return m, nil
	}
	m.statusBar.SetSession(msg.user)
	m.screen = ScreenHome
	m.loginForm.Notice = ""
	if msg.registered {
		m.toasts.Success(MessageRegistered)
	} else {
		m.toasts.Success(MessageLoggedIn)
	}
	return m, m.loadCartCount()
}

func (m *Model) openLogin(notice string) {
	m.screen = ScreenLogin
	m.modal = OverlayNone
	m.searching = false
	m.search.Blur()
	m.loginForm.Notice = notice
}

// addCurrent adds the product under the cursor. Guests get a warning and no
// request is made.
func (m Model) addCurrent() (tea.Model, tea.Cmd) {
	p, ok := m.grid().Current()
	if m.modal == OverlayDetail && m.detail.Product != nil {
		p, ok = *m.detail.Product, true
	}
	if !ok {
		return m, nil
	}
	if !m.loggedIn() {
		m.toasts.Warning(MessageLoginRequired)
		return m, nil
	}
	m.overlay.Show()
	return m, m.addToCart(p)
}

func (m *Model) grid() *products.Grid {
	switch m.section {
	case sectionBestsellers:
		return &m.best
	case sectionResults:
		return &m.results
	}
	return &m.featured
}

func (m Model) loggedIn() bool {
	return m.store.Token() != ""
}

// --- Commands ---

func (m Model) loadFeatured() tea.Cmd {
	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		ps, err := api.FeaturedProducts(ctx)
		return featuredMsg{products: ps, err: err}
	}
}

func (m Model) loadBestsellers() tea.Cmd {
	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		ps, err := api.Bestsellers(ctx)
		return bestsellersMsg{products: ps, err: err}
	}
}

func (m Model) loadProduct(id int64) tea.Cmd {
	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		p, err := api.Product(ctx, id)
		return productMsg{product: p, err: err}
	}
}

func (m Model) loadCategories() tea.Cmd {
	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		names, err := api.Categories(ctx)
		return categoriesMsg{names: names, err: err}
	}
}

// loadCategory and searchProducts tag their result with the grid title so a
// late answer for an earlier query is dropped.
func (m Model) loadCategory(title, name string) tea.Cmd {
	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		page, err := api.ProductsByCategory(ctx, name)
		return pageResult(title, page, err)
	}
}

func (m Model) searchProducts(title, q string) tea.Cmd {
	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		page, err := api.SearchProducts(ctx, q)
		return pageResult(title, page, err)
	}
}

func pageResult(title string, page *client.ProductPage, err error) resultsMsg {
	msg := resultsMsg{title: title, err: err}
	if err == nil && page != nil {
		msg.products = page.Content
	}
	return msg
}

func (m Model) loadCartCount() tea.Cmd {
	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		n, err := api.CartCount(ctx)
		return cartCountMsg{count: n, err: err}
	}
}

// loadCart fetches the line items. withOverlay hides the overlay shown by
// the caller once the request settles.
func (m Model) loadCart(withOverlay bool) tea.Cmd {
	api, ctx, ov := m.api, m.ctx, m.overlay
	return func() tea.Msg {
		if withOverlay {
			defer ov.Hide()
		}
		items, err := api.CartItems(ctx)
		return cartItemsMsg{items: items, err: err}
	}
}

func (m Model) removeFromCart(it client.CartItem) tea.Cmd {
	api, ctx, ov := m.api, m.ctx, m.overlay
	return func() tea.Msg {
		defer ov.Hide()
		err := api.RemoveCartItem(ctx, it.ID)
		return removedMsg{item: it, err: err}
	}
}

func (m Model) updateQuantity(it client.CartItem, qty int) tea.Cmd {
	api, ctx, ov := m.api, m.ctx, m.overlay
	return func() tea.Msg {
		defer ov.Hide()
		_, err := api.UpdateCartItem(ctx, it.ID, qty)
		return cartUpdatedMsg{item: it, err: err}
	}
}

func (m Model) clearCart() tea.Cmd {
	api, ctx, ov := m.api, m.ctx, m.overlay
	return func() tea.Msg {
		defer ov.Hide()
		return cartClearedMsg{err: api.ClearCart(ctx)}
	}
}

// addToCart runs the request and hides the overlay on every exit path.
func (m Model) addToCart(p client.Product) tea.Cmd {
	api, ctx, ov := m.api, m.ctx, m.overlay
	return func() tea.Msg {
		defer ov.Hide()
		_, err := api.AddToCart(ctx, p.ID, 1)
		return addedMsg{product: p, err: err}
	}
}

func (m Model) login(email, password string) tea.Cmd {
	api, ctx, ov := m.api, m.ctx, m.overlay
	ov.Show()
	return func() tea.Msg {
		defer ov.Hide()
		u, err := api.Login(ctx, email, password)
		return loginResultMsg{user: u, err: err}
	}
}

func (m Model) register(sub login.SubmitMsg) tea.Cmd {
	api, ctx, ov := m.api, m.ctx, m.overlay
	ov.Show()
	req := &client.RegisterRequest{
		Email:     sub.Email,
		Password:  sub.Password,
		FirstName: sub.FirstName,
		LastName:  sub.LastName,
	}
	return func() tea.Msg {
		defer ov.Hide()
		u, err := api.Register(ctx, req)
		return loginResultMsg{user: u, registered: true, err: err}
	}
}

// --- View ---

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var body string
	switch {
	case m.loading.Opacity() > 0:
		body = m.loading.View(m.width, m.height-4)
	case m.screen == ScreenCart:
		body = m.cartView.View()
	case m.screen == ScreenLogin:
		body = lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, m.loginForm.View())
	case m.modal == OverlayDetail:
		body = lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, m.detail.View())
	case m.modal == OverlayDebug:
		body = m.debugLog.View(m.width, m.height-4)
	default:
		var parts []string
		if m.searching {
			parts = append(parts, m.search.View(), "")
		}
		parts = append(parts,
			m.featured.View(m.width, m.section == sectionFeatured),
			"",
			m.best.View(m.width, m.section == sectionBestsellers),
		)
		if m.hasResults {
			parts = append(parts, "", m.results.View(m.width, m.section == sectionResults))
		}
		body = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	screen := lipgloss.JoinVertical(lipgloss.Left, m.statusBar.View(), body, m.help())
	return toasts.Overlay(screen, m.visible, m.width)
}

func (m Model) help() string {
	var h string
	switch {
	case m.screen == ScreenLogin:
		h = "tab:next field  enter:submit  ctrl+r:sign in/create account  esc:back"
	case m.searching:
		h = "enter:search  esc:cancel"
	case m.screen == ScreenCart:
		h = "j/k:select  +/-:quantity  x:remove  X:clear  esc:back  q:quit"
	case m.modal == OverlayDebug:
		h = "j/k:scroll  f:failures only  esc:close"
	case m.modal != OverlayNone:
		h = "a:add to cart  esc:close"
	case m.loggedIn():
		h = "h/l:browse  tab:section  enter:details  a:add  /:search  g:category  c:cart  r:reload  o:logout  d:debug  q:quit"
	default:
		h = "h/l:browse  tab:section  enter:details  a:add  /:search  g:category  c:cart  r:reload  L:login  d:debug  q:quit"
	}
	return theme.StyleDimmed.Render(fmt.Sprintf("  %s", h))
}
