package cart

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	cartdto "github.com/Nickgiresse/aurastyle/internal/modules/cart/dto"
	"github.com/Nickgiresse/aurastyle/internal/ui/components"
	"github.com/Nickgiresse/aurastyle/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CartPort interface {
	Show(ctx context.Context) (cartdto.CartOutput, error)
	SetQuantity(ctx context.Context, productID string, quantity int, size string) (cartdto.CartOutput, error)
	Remove(ctx context.Context, productID, size string) (cartdto.CartOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Cart cartdto.CartOutput
	Err  error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   CartPort
	cart   cartdto.CartOutput
	cursor int
	err    error
	width  int
	height int
}

func New(port CartPort) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload refetches the cart. The app model calls this after any mutation
// made outside this view, including identity changes.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		cart, err := m.port.Show(context.Background())
		return LoadedMsg{Cart: cart, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.cart = msg.Cart
		}
		if m.cursor >= len(m.cart.Items) {
			m.cursor = len(m.cart.Items) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.cart.Items)-1 {
				m.cursor++
			}
		case "+", "=":
			if line, ok := m.selected(); ok {
				return m, m.setQuantityCmd(line, line.Quantity+1)
			}
		case "-":
			if line, ok := m.selected(); ok {
				return m, m.setQuantityCmd(line, line.Quantity-1)
			}
		case "x", "delete":
			if line, ok := m.selected(); ok {
				return m, m.removeCmd(line)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Cart") + "\n\n")

	switch {
	case m.err != nil:
		sb.WriteString(theme.Error.Render(m.err.Error()) + "\n")
	case len(m.cart.Items) == 0:
		sb.WriteString(theme.Muted.Render("Your cart is empty.") + "\n")
	default:
		for i, line := range m.cart.Items {
			marker := "  "
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == m.cursor {
				marker = theme.Hot.Render("› ")
				style = style.Foreground(theme.Lavender)
			}
			size := line.Size
			if size == "" {
				size = "-"
			}
			row := fmt.Sprintf("%-28s  %3s  ×%-3d  %s",
				truncate(line.Name, 28), size, line.Quantity,
				components.FCFA(line.Subtotal))
			sb.WriteString(marker + style.Render(row) + "\n")
		}
		sb.WriteString("\n")
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d article(s)", m.cart.ItemCount)) + "\n")
		sb.WriteString(theme.Price.Render("Total  " + components.FCFA(m.cart.Total)) + "\n")
	}

	sb.WriteString("\n" + theme.Muted.Render("+/-: quantity  x: remove  :checkout to order"))

	pane := theme.Pane.Width(m.width - 4)
	if m.height > 4 {
		pane = pane.Height(m.height - 4)
	}
	return pane.Render(sb.String())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) selected() (cartdto.LineOutput, bool) {
	if m.cursor < 0 || m.cursor >= len(m.cart.Items) {
		return cartdto.LineOutput{}, false
	}
	return m.cart.Items[m.cursor], true
}

func (m Model) setQuantityCmd(line cartdto.LineOutput, quantity int) tea.Cmd {
	return func() tea.Msg {
		cart, err := m.port.SetQuantity(context.Background(), line.ProductID, quantity, line.Size)
		return LoadedMsg{Cart: cart, Err: err}
	}
}

func (m Model) removeCmd(line cartdto.LineOutput) tea.Cmd {
	return func() tea.Msg {
		cart, err := m.port.Remove(context.Background(), line.ProductID, line.Size)
		return LoadedMsg{Cart: cart, Err: err}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
