package shop

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "github.com/Nickgiresse/aurastyle/internal/modules/catalog/dto"
	"github.com/Nickgiresse/aurastyle/internal/ui/components"
	"github.com/Nickgiresse/aurastyle/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ShopPort interface {
	List(ctx context.Context, category, sort string, page, limit int) (catalogdto.ProductPageOutput, error)
	Get(ctx context.Context, id string) (catalogdto.ProductOutput, error)
	Search(ctx context.Context, query string) ([]catalogdto.ProductOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ProductsLoadedMsg struct {
	Products []catalogdto.ProductOutput
	Err      error
}

type DetailLoadedMsg struct {
	Detail catalogdto.ProductOutput
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type productItem struct {
	product catalogdto.ProductOutput
}

func (i productItem) Title() string { return i.product.Name }
func (i productItem) Description() string {
	desc := components.FCFA(i.product.Price)
	if i.product.Category != "" {
		desc += "  " + i.product.Category
	}
	return desc
}
func (i productItem) FilterValue() string { return i.product.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     ShopPort
	list     list.Model
	detail   catalogdto.ProductOutput
	preview  viewport.Model
	spinner  spinner.Model
	loading  bool
	category string
	sort     string
	width    int
	height   int
}

func New(port ShopPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Shop"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadProductsCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case ProductsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Shop — " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = m.listTitle()
		items := make([]list.Item, len(msg.Products))
		for i, p := range msg.Products {
			items[i] = productItem{product: p}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Products) > 0 {
			cmds = append(cmds, m.loadDetailCmd(msg.Products[0].ID))
		}

	case DetailLoadedMsg:
		if msg.Err == nil {
			m.detail = msg.Detail
			m.preview.SetContent(m.renderDetail())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(productItem); ok {
				cmds = append(cmds, m.loadDetailCmd(item.product.ID))
			}
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading catalogue…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedProduct returns the current selection, if any.
func (m Model) SelectedProduct() (catalogdto.ProductOutput, bool) {
	if item, ok := m.list.SelectedItem().(productItem); ok {
		return item.product, true
	}
	return catalogdto.ProductOutput{}, false
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SetCategory reloads the listing restricted to one category ("" for all).
func (m *Model) SetCategory(category string) tea.Cmd {
	m.category = category
	m.loading = true
	return tea.Batch(m.loadProductsCmd(), m.spinner.Tick)
}

// SetSort reloads the listing with a new sort order.
func (m *Model) SetSort(sort string) tea.Cmd {
	m.sort = sort
	m.loading = true
	return tea.Batch(m.loadProductsCmd(), m.spinner.Tick)
}

// Search replaces the listing with backend search results.
func (m *Model) Search(query string) tea.Cmd {
	m.loading = true
	port := m.port
	return tea.Batch(func() tea.Msg {
		products, err := port.Search(context.Background(), query)
		return ProductsLoadedMsg{Products: products, Err: err}
	}, m.spinner.Tick)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) listTitle() string {
	if m.category == "" {
		return "Shop"
	}
	return "Shop — " + m.category
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.ID == "" {
		return theme.Muted.Render("Select a product to see details")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Name) + "\n")
	if d.SubTitle != "" {
		sb.WriteString(theme.Muted.Render(d.SubTitle) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(theme.Price.Render(components.FCFA(d.Price)) + "\n\n")
	sb.WriteString(theme.Muted.Render("category: ") + d.Category + "\n")
	if d.Badge != "" {
		sb.WriteString(theme.Muted.Render("badge:    ") + d.Badge + "\n")
	}
	if len(d.Sizes) > 0 {
		sb.WriteString(theme.Muted.Render("sizes:    ") + strings.Join(d.Sizes, ", ") + "\n")
	}
	if d.Stock > 0 {
		sb.WriteString(theme.Muted.Render("stock:    ") + strconv.Itoa(d.Stock) + "\n")
	}
	if !d.IsActive {
		sb.WriteString(theme.Error.Render("unavailable") + "\n")
	}
	if d.Description != "" {
		sb.WriteString("\n" + d.Description + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("a: add to cart"))
	return sb.String()
}

func (m Model) loadProductsCmd() tea.Cmd {
	return func() tea.Msg {
		page, err := m.port.List(context.Background(), m.category, m.sort, 1, 50)
		return ProductsLoadedMsg{Products: page.Products, Err: err}
	}
}

func (m Model) loadDetailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.Get(context.Background(), id)
		return DetailLoadedMsg{Detail: detail, Err: err}
	}
}
