// Package tui is the terminal application shell: it owns the router,
// session, wizard and filter state and renders one screen at a time.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"techmarket/internal/catalog"
	"techmarket/internal/chat"
	"techmarket/internal/config"
	"techmarket/internal/router"
	"techmarket/internal/session"
	"techmarket/internal/wizard"
)

const appName = "TechMarket"

// App ties together screens. A single App exists per run; events are
// processed to completion in delivery order, so no locking is needed.
type App struct {
	cfg      config.Config
	provider *catalog.Provider
	sess     *session.Session
	routes   *router.Router
	chats    *chat.Store
	keys     keyMap

	width  int
	height int

	status      string
	statusErr   bool
	statusEpoch int

	// home
	homeCursor int
	search     textinput.Model
	searching  bool

	// listing; recreated on every mount, never persisted across navigation
	filter       catalog.FilterSpec
	listCursor   int
	showFilters  bool
	filterCursor int

	// detail
	imageIndex int
	showPhone  bool

	// auth forms
	authInputs []textinput.Model
	authFocus  int

	// chat
	chatCursor int
	activePeer string
	composer   textinput.Model

	// post wizard
	wiz          *wizard.Wizard
	detailInputs []textinput.Model // title, price, description
	locInput     textinput.Model
	wizFocus     int
	catIndex     int
	condIndex    int
	planIndex    int

	// listings published this session, newest first
	published []catalog.Product

	profileTab int
}

// New wires the application model.
func New(cfg config.Config, provider *catalog.Provider, sess *session.Session, chats *chat.Store) *App {
	search := textinput.New()
	search.Placeholder = "Search for products..."
	search.CharLimit = 64

	composer := textinput.New()
	composer.Placeholder = "Type a message..."
	composer.CharLimit = 500

	return &App{
		cfg:      cfg,
		provider: provider,
		sess:     sess,
		routes:   router.New(),
		chats:    chats,
		keys:     newKeyMap(),
		search:   search,
		composer: composer,
	}
}

// products returns the session's view of the catalog: locally published
// listings first (they are newest), then the seeded catalog.
func (a *App) products() []catalog.Product {
	if len(a.published) == 0 {
		return a.provider.Products()
	}
	out := make([]catalog.Product, 0, len(a.published)+len(a.provider.Products()))
	for i := len(a.published) - 1; i >= 0; i-- {
		out = append(out, a.published[i])
	}
	return append(out, a.provider.Products()...)
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type statusMsg string

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// statusClearMsg dismisses the transient status line; the epoch guards
// against a stale tick clearing a newer status.
type statusClearMsg struct{ epoch int }

// publishDoneMsg resolves the simulated publish delay. The token ties it
// to the wizard generation that scheduled it.
type publishDoneMsg struct{ token int }

// publishRedirectMsg fires after the success interval and navigates to
// the profile screen, unless the wizard was torn down meanwhile.
type publishRedirectMsg struct{ token int }

// ---------------------------------------------------------------------------
// Init / Update / View
// ---------------------------------------------------------------------------

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case statusMsg:
		return a, a.setStatus(string(msg), false)

	case errMsg:
		return a, a.setStatus("error: "+msg.Error(), true)

	case statusClearMsg:
		if msg.epoch == a.statusEpoch {
			a.status = ""
			a.statusErr = false
		}
		return a, nil

	case publishDoneMsg:
		return a.handlePublishDone(msg)

	case publishRedirectMsg:
		return a.handlePublishRedirect(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.routes.Current() {
		case router.ScreenHome:
			return a.handleHomeKey(msg)
		case router.ScreenListing:
			return a.handleListingKey(msg)
		case router.ScreenDetail:
			return a.handleDetailKey(msg)
		case router.ScreenLogin, router.ScreenSignup:
			return a.handleAuthKey(msg)
		case router.ScreenChat:
			return a.handleChatKey(msg)
		case router.ScreenPost:
			return a.handlePostKey(msg)
		case router.ScreenProfile:
			return a.handleProfileKey(msg)
		case router.ScreenPricing:
			return a.handlePricingKey(msg)
		}
	}
	return a, nil
}

func (a *App) View() string {
	var body string
	switch a.routes.Current() {
	case router.ScreenListing:
		body = a.renderListing()
	case router.ScreenDetail:
		body = a.renderDetail()
	case router.ScreenLogin:
		body = a.renderLogin()
	case router.ScreenSignup:
		body = a.renderSignup()
	case router.ScreenChat:
		body = a.renderChat()
	case router.ScreenPost:
		body = a.renderPost()
	case router.ScreenProfile:
		body = a.renderProfile()
	case router.ScreenPricing:
		body = a.renderPricing()
	default:
		body = a.renderHome()
	}

	header := a.renderHeader()
	statusLine := a.renderStatusLine()
	return header + "\n\n" + body + "\n\n" + statusLine
}

// ---------------------------------------------------------------------------
// Navigation
// ---------------------------------------------------------------------------

// navigate routes to a screen, running the per-screen mount hooks. The
// wizard draft is discarded whenever navigation leaves the post screen.
func (a *App) navigate(screen router.Screen, opts ...router.Option) {
	leavingPost := a.routes.Current() == router.ScreenPost && screen != router.ScreenPost
	if leavingPost && a.wiz != nil {
		a.wiz.Abandon()
		a.wiz = nil
	}

	a.routes.Navigate(screen, opts...)

	switch a.routes.Current() {
	case router.ScreenListing:
		a.mountListing()
	case router.ScreenDetail:
		a.imageIndex = 0
		a.showPhone = false
	case router.ScreenLogin:
		a.mountAuth(2)
	case router.ScreenSignup:
		a.mountAuth(4)
	case router.ScreenChat:
		a.mountChat()
	case router.ScreenPost:
		a.mountPost()
	case router.ScreenProfile:
		a.profileTab = 0
		a.listCursor = 0
	case router.ScreenHome:
		a.homeCursor = 0
		a.searching = false
		a.search.Blur()
		a.search.SetValue("")
	}
}

// mountListing builds a fresh FilterSpec from the router context; the
// spec is screen-local and dies on navigation.
func (a *App) mountListing() {
	a.filter = catalog.DefaultFilter(a.cfg.Listing.MaxPrice)
	a.filter.Category = a.routes.Category()
	a.filter.Query = a.routes.SearchQuery()
	a.filter.MaxDistance = a.cfg.Listing.MaxDistanceKm
	a.listCursor = 0
	a.showFilters = false
	a.filterCursor = 0
}

func (a *App) mountChat() {
	a.chatCursor = 0
	a.activePeer = ""
	a.composer.Blur()
	a.composer.SetValue("")
	if id := a.routes.ChatUserID(); id != "" && a.sess.LoggedIn() {
		if a.chats.Open(id) != nil {
			a.activePeer = id
			a.composer.Focus()
		}
	}
}

func (a *App) mountPost() {
	if a.wiz != nil {
		return
	}
	a.wiz = wizard.New()
	a.wizFocus = 0
	a.catIndex = 0
	a.condIndex = 0
	a.planIndex = 0

	a.detailInputs = make([]textinput.Model, 3)
	for i := range a.detailInputs {
		a.detailInputs[i] = textinput.New()
	}
	a.detailInputs[0].Placeholder = "e.g. iPhone 14 Pro Max 256GB"
	a.detailInputs[0].CharLimit = 80
	a.detailInputs[1].Placeholder = "0"
	a.detailInputs[1].CharLimit = 10
	a.detailInputs[2].Placeholder = "Describe your product in detail..."
	a.detailInputs[2].CharLimit = 500

	a.locInput = textinput.New()
	a.locInput.Placeholder = "City, State"
	a.locInput.CharLimit = 80
}

func (a *App) mountAuth(fields int) {
	a.authInputs = make([]textinput.Model, fields)
	for i := range a.authInputs {
		a.authInputs[i] = textinput.New()
		a.authInputs[i].CharLimit = 80
	}
	a.authFocus = 0
	a.authInputs[0].Focus()
}

// ---------------------------------------------------------------------------
// Status line
// ---------------------------------------------------------------------------

// setStatus shows a transient status and schedules its dismissal.
func (a *App) setStatus(text string, isErr bool) tea.Cmd {
	a.status = text
	a.statusErr = isErr
	a.statusEpoch++
	epoch := a.statusEpoch
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{epoch: epoch}
	})
}

// ---------------------------------------------------------------------------
// Publish flow
// ---------------------------------------------------------------------------

// startPublishCmd models the asynchronous publish effect as a deferred
// message carrying the wizard's liveness token.
func (a *App) startPublishCmd(token int) tea.Cmd {
	delay := time.Duration(a.cfg.Publish.DelayMs) * time.Millisecond
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return publishDoneMsg{token: token}
	})
}

func (a *App) handlePublishDone(msg publishDoneMsg) (tea.Model, tea.Cmd) {
	if a.wiz == nil || a.wiz.FinishPublish(msg.token) != nil {
		// Stale timer: the wizard was reset or abandoned after the
		// publish was scheduled.
		return a, nil
	}
	user := a.sess.Current()
	if user != nil {
		listing, err := a.wiz.Listing(newListingID(), *user)
		if err != nil {
			return a, a.setStatus("error: "+err.Error(), true)
		}
		a.published = append(a.published, listing)
	}
	interval := time.Duration(a.cfg.Publish.RedirectMs) * time.Millisecond
	token := msg.token
	return a, tea.Tick(interval, func(time.Time) tea.Msg {
		return publishRedirectMsg{token: token}
	})
}

func (a *App) handlePublishRedirect(msg publishRedirectMsg) (tea.Model, tea.Cmd) {
	if a.wiz == nil || !a.wiz.TokenValid(msg.token) || a.wiz.State() != wizard.StatePublished {
		return a, nil
	}
	a.navigate(router.ScreenProfile)
	return a, a.setStatus("Your product is now live and visible to buyers", false)
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func (a *App) renderHeader() string {
	brand := titleStyle.Render(appName)
	nav := mutedStyle.Render("h home · b browse · c messages · p post · m profile · g plans")
	who := mutedStyle.Render("not signed in · l login")
	if u := a.sess.Current(); u != nil {
		who = statusStyle.Render(u.Name)
		if u.Verified {
			who += " " + verifiedBadge.Render("✓")
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, brand, "   ", nav, "   ", who)
	return line
}

func (a *App) renderStatusLine() string {
	if a.status == "" {
		return footerStyle.Render(a.helpLine())
	}
	if a.statusErr {
		return statusErrStyle.Render(a.status)
	}
	return statusStyle.Render(a.status)
}

func (a *App) helpLine() string {
	switch a.routes.Current() {
	case router.ScreenListing:
		return "↑/↓ navigate · enter open · f filters · s sort · / search · esc home"
	case router.ScreenDetail:
		return "←/→ photos · c chat seller · t show phone · esc back"
	case router.ScreenChat:
		return "↑/↓ conversations · enter open · esc back"
	case router.ScreenPost:
		return "tab next field · enter continue · esc back"
	case router.ScreenProfile:
		return "tab active/sold · enter view · n post ad · o logout · esc home"
	case router.ScreenLogin, router.ScreenSignup:
		return "tab next field · enter submit · esc home"
	case router.ScreenPricing:
		return "p post an ad · esc home"
	}
	parts := make([]string, 0, 8)
	for _, b := range []key.Binding{
		a.keys.UpDown, a.keys.Enter, a.keys.Search, a.keys.Post,
		a.keys.Chat, a.keys.Profile, a.keys.Pricing, a.keys.Quit,
	} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
