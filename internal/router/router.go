// Package router holds the single source of truth for which screen is
// active and the contextual payload that screen consumes. It is a pure
// state container: it never enforces authentication and never clears
// payload fields on its own.
package router

import "techmarket/internal/catalog"

// Screen identifies one of the mutually exclusive application screens.
type Screen string

const (
	ScreenHome    Screen = "home"
	ScreenListing Screen = "listing"
	ScreenDetail  Screen = "detail"
	ScreenLogin   Screen = "login"
	ScreenSignup  Screen = "signup"
	ScreenChat    Screen = "chat"
	ScreenPost    Screen = "post"
	ScreenProfile Screen = "profile"
	ScreenPricing Screen = "pricing"
)

// Screens returns every navigable screen.
func Screens() []Screen {
	return []Screen{
		ScreenHome, ScreenListing, ScreenDetail, ScreenLogin, ScreenSignup,
		ScreenChat, ScreenPost, ScreenProfile, ScreenPricing,
	}
}

// ParseScreen maps an identifier to a Screen, failing closed to home for
// anything it does not recognize.
func ParseScreen(id string) Screen {
	for _, s := range Screens() {
		if string(s) == id {
			return s
		}
	}
	return ScreenHome
}

// Router owns the RouteState. One router exists per session scope.
type Router struct {
	current Screen

	// Payload fields persist across navigation on purpose: leaving the
	// detail screen does not clear the selected product. Accessors keep
	// the staleness isolated so explicit clearing could be added without
	// touching callers.
	product    *catalog.Product
	category   string
	query      string
	chatUserID string
}

// New returns a router positioned on the home screen.
func New() *Router {
	return &Router{current: ScreenHome}
}

// Option updates one payload field during Navigate. Fields without an
// option in the call are left untouched.
type Option func(*Router)

// WithProduct selects the product the detail screen shows.
func WithProduct(p *catalog.Product) Option {
	return func(r *Router) { r.product = p }
}

// WithCategory sets the category context for the listing screen.
func WithCategory(id string) Option {
	return func(r *Router) { r.category = id }
}

// WithSearch sets the search context for the listing screen.
func WithSearch(query string) Option {
	return func(r *Router) { r.query = query }
}

// WithChatUser selects the conversation peer for the chat screen.
func WithChatUser(userID string) Option {
	return func(r *Router) { r.chatUserID = userID }
}

// Navigate switches the active screen unconditionally and applies any
// payload options. Unknown screens land on home.
func (r *Router) Navigate(screen Screen, opts ...Option) {
	for _, opt := range opts {
		opt(r)
	}
	r.current = ParseScreen(string(screen))
}

func (r *Router) Current() Screen            { return r.current }
func (r *Router) Product() *catalog.Product  { return r.product }
func (r *Router) Category() string           { return r.category }
func (r *Router) SearchQuery() string        { return r.query }
func (r *Router) ChatUserID() string         { return r.chatUserID }
