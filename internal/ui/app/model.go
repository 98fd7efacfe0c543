package app

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	accountdto "github.com/Nickgiresse/aurastyle/internal/modules/account/dto"
	authdto "github.com/Nickgiresse/aurastyle/internal/modules/auth/dto"
	cartdto "github.com/Nickgiresse/aurastyle/internal/modules/cart/dto"
	catalogdto "github.com/Nickgiresse/aurastyle/internal/modules/catalog/dto"
	orderdto "github.com/Nickgiresse/aurastyle/internal/modules/order/dto"
	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
	"github.com/Nickgiresse/aurastyle/internal/ui/components"
	"github.com/Nickgiresse/aurastyle/internal/ui/theme"
	accountview "github.com/Nickgiresse/aurastyle/internal/ui/views/account"
	cartview "github.com/Nickgiresse/aurastyle/internal/ui/views/cart"
	shopview "github.com/Nickgiresse/aurastyle/internal/ui/views/shop"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type shopPort interface {
	List(ctx context.Context, category, sort string, page, limit int) (catalogdto.ProductPageOutput, error)
	Get(ctx context.Context, id string) (catalogdto.ProductOutput, error)
	Search(ctx context.Context, query string) ([]catalogdto.ProductOutput, error)
}

type cartPort interface {
	Add(ctx context.Context, product cartdto.ProductInput, quantity int, size string) (cartdto.CartOutput, error)
	Remove(ctx context.Context, productID, size string) (cartdto.CartOutput, error)
	SetQuantity(ctx context.Context, productID string, quantity int, size string) (cartdto.CartOutput, error)
	Clear(ctx context.Context) error
	Show(ctx context.Context) (cartdto.CartOutput, error)
}

type authPort interface {
	Whoami(ctx context.Context) (authdto.SessionOutput, error)
	Logout(ctx context.Context) error
}

type accountPort interface {
	Profile(ctx context.Context) (accountdto.ProfileOutput, error)
	Wishlist(ctx context.Context) ([]accountdto.WishlistItemOutput, error)
}

type orderPort interface {
	Checkout(ctx context.Context, firstName, lastName, phone, city, street, promoCode string) (orderdto.CheckoutOutput, error)
	ListMine(ctx context.Context) ([]orderdto.OrderOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabShop tabID = iota
	tabCart
	tabAccount
	tabCount
)

var tabLabels = [tabCount]string{"Shop", "Cart", "Account"}

// ─── async messages ───────────────────────────────────────────────────────────

type sessionLoadedMsg struct {
	session authdto.SessionOutput
	err     error
}

type addedToCartMsg struct {
	cart cartdto.CartOutput
	name string
	err  error
}

type checkoutDoneMsg struct {
	out orderdto.CheckoutOutput
	err error
}

type ordersLoadedMsg struct {
	orders []orderdto.OrderOutput
	err    error
}

type loggedOutMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Add     key.Binding
	Qty     key.Binding
	Remove  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to cart")),
		Qty:     key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "quantity")),
		Remove:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove line")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Add},
		{k.Qty, k.Remove},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the signed-in
// badge, the global help overlay, and the command palette. All business
// logic is delegated to port interfaces; all rendering to sub-views.
type Model struct {
	cart    cartPort
	auth    authPort
	account accountPort
	order   orderPort

	shopView    shopview.Model
	cartView    cartview.Model
	accountView accountview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	session   authdto.SessionOutput
	status    string
	width     int
	height    int
}

func NewModel(shop shopPort, cart cartPort, auth authPort, account accountPort, order orderPort) Model {
	return Model{
		cart:        cart,
		auth:        auth,
		account:     account,
		order:       order,
		shopView:    shopview.New(shop),
		cartView:    cartview.New(cart),
		accountView: accountview.New(auth, account),
		activeTab:   tabShop,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.shopView.Init(),
		m.cartView.Init(),
		m.accountView.Init(),
		m.loadSessionCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case sessionLoadedMsg:
		switch {
		case msg.err == nil:
			m.session = msg.session
		case errors.Is(msg.err, apperrors.ErrNotAuthenticated):
			m.session = authdto.SessionOutput{}
		default:
			m.status = "session: " + msg.err.Error()
		}

	case addedToCartMsg:
		if msg.err != nil {
			m.status = "add to cart: " + msg.err.Error()
			return m, nil
		}
		m.status = "added " + msg.name + " — " + components.FCFA(msg.cart.Total)
		var cmd tea.Cmd
		m.cartView, cmd = m.cartView.Update(cartview.LoadedMsg{Cart: msg.cart})
		return m, cmd

	case checkoutDoneMsg:
		if msg.err != nil {
			m.status = "checkout: " + msg.err.Error()
			return m, nil
		}
		m.status = "order " + msg.out.OrderID + " placed — " + msg.out.WhatsAppURL
		m.activeTab = tabCart
		return m, m.cartView.Reload()

	case ordersLoadedMsg:
		if msg.err != nil {
			m.status = "orders: " + msg.err.Error()
		} else if len(msg.orders) == 0 {
			m.status = "no orders yet"
		} else {
			last := msg.orders[0]
			m.status = "last order " + last.ID + " (" + last.Status + "), " +
				components.FCFA(last.Total)
		}

	case loggedOutMsg:
		if msg.err != nil {
			m.status = "logout: " + msg.err.Error()
			return m, nil
		}
		m.session = authdto.SessionOutput{}
		m.status = "logged out"
		cmds = append(cmds, m.cartView.Reload(), m.accountView.Reload())
		return m, tea.Batch(cmds...)

	// LoadedMsg is produced by the cart view but bubbles here too so the
	// cart stays fresh when mutations happen on other tabs.
	case cartview.LoadedMsg:
		var cmd tea.Cmd
		m.cartView, cmd = m.cartView.Update(msg)
		return m, cmd

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the shop list when its search filter is active.
		if m.activeTab == tabShop && m.shopView.Filtering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "a":
			if m.activeTab == tabShop {
				if product, ok := m.shopView.SelectedProduct(); ok {
					cmds = append(cmds, m.addToCartCmd(product, ""))
				}
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabShop:
		m.shopView, tabCmd = m.shopView.Update(msg)
	case tabCart:
		m.cartView, tabCmd = m.cartView.Update(msg)
	case tabAccount:
		m.accountView, tabCmd = m.accountView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabShop:
		return m.shopView.View()
	case tabCart:
		return m.cartView.View()
	case tabAccount:
		return m.accountView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "aura  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.session.UserID != "" {
		left = theme.Hot.Render("● "+m.session.Email) + "  " + left
	} else {
		left = theme.Muted.Render("guest") + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "shop:category":
		if len(parts) < 2 {
			m.status = "usage: shop:category <name|all>"
			return m, nil
		}
		category := parts[1]
		if category == "all" {
			category = ""
		}
		m.activeTab = tabShop
		return m, m.shopView.SetCategory(category)

	case "shop:sort":
		if len(parts) < 2 {
			m.status = "usage: shop:sort <price-asc|price-desc|newest>"
			return m, nil
		}
		m.activeTab = tabShop
		return m, m.shopView.SetSort(parts[1])

	case "shop:search":
		if len(parts) < 2 {
			m.status = "usage: shop:search <query>"
			return m, nil
		}
		m.activeTab = tabShop
		return m, m.shopView.Search(strings.Join(parts[1:], " "))

	case "cart:add":
		product, ok := m.shopView.SelectedProduct()
		if !ok {
			m.status = "no product selected"
			return m, nil
		}
		size := ""
		if len(parts) >= 2 {
			size = parts[1]
		}
		return m, m.addToCartCmd(product, size)

	case "cart:clear":
		return m, m.clearCartCmd()

	case "checkout":
		promo := ""
		if len(parts) >= 2 {
			promo = parts[1]
		}
		m.status = "placing order…"
		return m, m.checkoutCmd(promo)

	case "orders":
		return m, m.loadOrdersCmd()

	case "account:reload":
		m.activeTab = tabAccount
		return m, tea.Batch(m.accountView.Reload(), m.loadSessionCmd())

	case "logout":
		return m, m.logoutCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.shopView, _ = m.shopView.Update(sz)
	m.cartView, _ = m.cartView.Update(sz)
	m.accountView, _ = m.accountView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadSessionCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.auth.Whoami(context.Background())
		return sessionLoadedMsg{session: session, err: err}
	}
}

func (m Model) addToCartCmd(product catalogdto.ProductOutput, size string) tea.Cmd {
	if size == "" && len(product.Sizes) > 0 {
		size = product.Sizes[0]
	}
	return func() tea.Msg {
		cart, err := m.cart.Add(context.Background(), cartdto.ProductInput{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Category: product.Category,
			Image:    product.Image,
		}, 1, size)
		return addedToCartMsg{cart: cart, name: product.Name, err: err}
	}
}

func (m Model) clearCartCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.cart.Clear(context.Background()); err != nil {
			return cartview.LoadedMsg{Err: err}
		}
		cart, err := m.cart.Show(context.Background())
		return cartview.LoadedMsg{Cart: cart, Err: err}
	}
}

// checkoutCmd places the order with the customer details already stored on
// the profile. Missing details surface as validation errors in the status bar.
func (m Model) checkoutCmd(promo string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		profile, err := m.account.Profile(ctx)
		if err != nil {
			return checkoutDoneMsg{err: err}
		}
		out, err := m.order.Checkout(ctx,
			profile.FirstName, profile.LastName, profile.Phone,
			profile.Address.City, profile.Address.Street, promo)
		return checkoutDoneMsg{out: out, err: err}
	}
}

func (m Model) loadOrdersCmd() tea.Cmd {
	return func() tea.Msg {
		orders, err := m.order.ListMine(context.Background())
		return ordersLoadedMsg{orders: orders, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.auth.Logout(context.Background())}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
