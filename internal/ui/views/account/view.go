package account

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	accountdto "github.com/Nickgiresse/aurastyle/internal/modules/account/dto"
	authdto "github.com/Nickgiresse/aurastyle/internal/modules/auth/dto"
	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
	"github.com/Nickgiresse/aurastyle/internal/ui/components"
	"github.com/Nickgiresse/aurastyle/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type SessionPort interface {
	Whoami(ctx context.Context) (authdto.SessionOutput, error)
}

type AccountPort interface {
	Profile(ctx context.Context) (accountdto.ProfileOutput, error)
	Wishlist(ctx context.Context) ([]accountdto.WishlistItemOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Session  authdto.SessionOutput
	Profile  accountdto.ProfileOutput
	Wishlist []accountdto.WishlistItemOutput
	Guest    bool
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	session SessionPort
	account AccountPort
	view    viewport.Model
	loaded  LoadedMsg
	hasData bool
	width   int
	height  int
}

func New(session SessionPort, account AccountPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	return Model{session: session, account: account, view: vp}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload refetches session, profile, and wishlist. A missing session is not
// an error, the view renders the guest hint instead.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		sess, err := m.session.Whoami(ctx)
		if errors.Is(err, apperrors.ErrNotAuthenticated) {
			return LoadedMsg{Guest: true}
		}
		if err != nil {
			return LoadedMsg{Err: err}
		}
		profile, err := m.account.Profile(ctx)
		if err != nil && !errors.Is(err, apperrors.ErrNotAuthenticated) {
			return LoadedMsg{Session: sess, Err: err}
		}
		wishlist, _ := m.account.Wishlist(ctx)
		return LoadedMsg{Session: sess, Profile: profile, Wishlist: wishlist}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = m.width - 4
		m.view.Height = m.height - 2

	case LoadedMsg:
		m.loaded = msg
		m.hasData = true
		m.view.SetContent(m.renderContent())

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.Reload()
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - 2).
		Height(m.height - 2).
		Render(m.view.View())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderContent() string {
	if !m.hasData {
		return theme.Muted.Render("Loading…")
	}
	l := m.loaded
	if l.Err != nil {
		return theme.Error.Render(l.Err.Error())
	}
	if l.Guest {
		return theme.Title.Render("Account") + "\n\n" +
			theme.Muted.Render("You are browsing as a guest.\nRun `aura login` to sign in, then press r to reload.")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Account") + "\n\n")
	sb.WriteString(theme.Muted.Render("name:   ") + l.Session.FirstName + " " + l.Session.LastName + "\n")
	sb.WriteString(theme.Muted.Render("email:  ") + l.Session.Email + "\n")
	if l.Profile.Phone != "" {
		sb.WriteString(theme.Muted.Render("phone:  ") + l.Profile.Phone + "\n")
	}
	if l.Session.IsAdmin {
		sb.WriteString(theme.Hot.Render("admin") + "\n")
	}

	addr := l.Profile.Address
	if addr.Street != "" || addr.City != "" {
		sb.WriteString("\n" + theme.Title.Render("Address") + "\n")
		sb.WriteString(addr.Street + "\n")
		sb.WriteString(strings.TrimSpace(addr.Zip+" "+addr.City) + "\n")
		if addr.Country != "" {
			sb.WriteString(addr.Country + "\n")
		}
	}

	sb.WriteString("\n" + theme.Title.Render("Wishlist") + "\n")
	if len(l.Wishlist) == 0 {
		sb.WriteString(theme.Muted.Render("empty") + "\n")
	} else {
		for _, item := range l.Wishlist {
			sb.WriteString("• " + item.Name + "  " + theme.Price.Render(components.FCFA(item.Price)) + "\n")
		}
	}

	sb.WriteString("\n" + theme.Muted.Render("r: reload"))
	return sb.String()
}
