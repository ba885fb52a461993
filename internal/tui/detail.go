package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"techmarket/internal/catalog"
	"techmarket/internal/router"
)

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := a.routes.Product()
	if p == nil {
		if msg.String() == "esc" || msg.String() == "enter" {
			a.navigate(router.ScreenHome)
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.navigate(router.ScreenListing, router.WithCategory(p.Category), router.WithSearch(""))
		return a, nil
	case "left", "h":
		if n := len(p.Images); n > 0 {
			a.imageIndex = (a.imageIndex - 1 + n) % n
		}
		return a, nil
	case "right", "l":
		if n := len(p.Images); n > 0 {
			a.imageIndex = (a.imageIndex + 1) % n
		}
		return a, nil
	case "c":
		// Chat requires a session; unauthenticated users get the login
		// screen instead, per the original contact buttons.
		if !a.sess.LoggedIn() {
			a.navigate(router.ScreenLogin)
			return a, nil
		}
		a.navigate(router.ScreenChat, router.WithChatUser(p.SellerID))
		return a, nil
	case "t":
		if !a.sess.LoggedIn() {
			a.navigate(router.ScreenLogin)
			return a, nil
		}
		a.showPhone = true
		return a, nil
	case "1", "2", "3", "4":
		related := catalog.Related(a.products(), *p, 4)
		idx := int(msg.String()[0] - '1')
		if idx < len(related) {
			q := related[idx]
			a.navigate(router.ScreenDetail, router.WithProduct(&q))
		}
		return a, nil
	}
	return a, nil
}

func (a *App) renderDetail() string {
	p := a.routes.Product()
	if p == nil {
		return mutedStyle.Render("Product not found") + "\n\n" +
			mutedStyle.Render("esc back to home")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title))
	if badge := planBadge(string(p.Plan)); badge != "" {
		b.WriteString("  " + badge)
	}
	b.WriteString("\n")
	b.WriteString(priceStyle.Render(fmt.Sprintf("%s%.0f", a.cfg.UI.CurrencySymbol, p.Price)))
	b.WriteString("  " + mutedStyle.Render(fmt.Sprintf("%s · %s · %s", p.Condition, p.Location, p.PostedTime)))
	b.WriteString("\n\n")

	if len(p.Images) > 0 {
		idx := a.imageIndex
		if idx >= len(p.Images) {
			idx = 0
		}
		b.WriteString(boxStyle.Render(fmt.Sprintf("photo %d/%d  %s", idx+1, len(p.Images), p.Images[idx])))
		b.WriteString("\n\n")
	}

	b.WriteString(sectionStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(p.Description)
	b.WriteString("\n\n")

	if len(p.Specifications) > 0 {
		b.WriteString(sectionStyle.Render("Specifications"))
		b.WriteString("\n")
		keys := make([]string, 0, len(p.Specifications))
		for k := range p.Specifications {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("  %s: %s\n", k, p.Specifications[k]))
		}
		b.WriteString("\n")
	}

	b.WriteString(a.renderSeller(p))

	related := catalog.Related(a.products(), *p, 4)
	if len(related) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Similar Items"))
		b.WriteString(mutedStyle.Render("  (press 1-4 to open)"))
		b.WriteString("\n")
		for i, q := range related {
			b.WriteString(fmt.Sprintf("  %d %s  %s\n", i+1, q.Title,
				priceStyle.Render(fmt.Sprintf("%s%.0f", a.cfg.UI.CurrencySymbol, q.Price))))
		}
	}
	return b.String()
}

func (a *App) renderSeller(p *catalog.Product) string {
	seller := a.sess.UserByID(p.SellerID)
	if seller == nil {
		seller = catalog.UserByID(a.provider.Users(), p.SellerID)
	}
	if seller == nil {
		return mutedStyle.Render("Seller unknown") + "\n"
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Seller"))
	b.WriteString("\n  " + seller.Name)
	if seller.Verified {
		b.WriteString(" " + verifiedBadge.Render("✓ verified"))
	}
	b.WriteString("\n")
	if a.showPhone {
		b.WriteString("  " + seller.Phone + "\n")
	} else {
		b.WriteString(mutedStyle.Render("  t to reveal phone · c to chat") + "\n")
	}
	return b.String()
}
