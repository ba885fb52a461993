package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"techmarket/internal/catalog"
	"techmarket/internal/router"
)

func (a *App) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !a.sess.LoggedIn() {
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "esc":
			a.navigate(router.ScreenHome)
		case "enter", "l":
			a.navigate(router.ScreenLogin)
		}
		return a, nil
	}

	listings := a.profileListings()
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.navigate(router.ScreenHome)
		return a, nil
	case "tab":
		a.profileTab = (a.profileTab + 1) % 2
		a.listCursor = 0
		return a, nil
	case "n":
		a.navigate(router.ScreenPost)
		return a, nil
	case "g":
		a.navigate(router.ScreenPricing)
		return a, nil
	case "o":
		a.sess.Logout()
		a.navigate(router.ScreenHome)
		return a, a.setStatus("Signed out", false)
	case "up", "k":
		if a.listCursor > 0 {
			a.listCursor--
		}
		return a, nil
	case "down", "j":
		if a.listCursor < len(listings)-1 {
			a.listCursor++
		}
		return a, nil
	case "enter":
		if a.listCursor < len(listings) {
			p := listings[a.listCursor]
			a.navigate(router.ScreenDetail, router.WithProduct(&p))
		}
		return a, nil
	}
	return a, nil
}

// profileListings returns the active tab's rows. Sold listings have no
// backing data source, so the sold tab is always empty.
func (a *App) profileListings() []catalog.Product {
	if a.profileTab != 0 {
		return nil
	}
	u := a.sess.Current()
	if u == nil {
		return nil
	}
	return catalog.BySeller(a.products(), u.ID)
}

func (a *App) renderProfile() string {
	u := a.sess.Current()
	if u == nil {
		return titleStyle.Render("My Profile") + "\n\n" +
			mutedStyle.Render("Sign in to manage your listings.") + "\n\n" +
			mutedStyle.Render("enter login · esc home")
	}

	var b strings.Builder
	name := u.Name
	if u.Verified {
		name += " " + verifiedBadge.Render("✓ verified")
	}
	b.WriteString(titleStyle.Render(name))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(u.Email))
	if u.Phone != "" {
		b.WriteString(mutedStyle.Render(" · " + u.Phone))
	}
	b.WriteString("\n\n")

	active := catalog.BySeller(a.products(), u.ID)
	b.WriteString(fmt.Sprintf("%s %d   %s %d\n\n",
		sectionStyle.Render("Active Ads"), len(active),
		sectionStyle.Render("Sold"), 0))

	tabs := []string{"Active", "Sold"}
	for i, t := range tabs {
		if i == a.profileTab {
			b.WriteString(selectedStyle.Render(" "+t+" "))
		} else {
			b.WriteString(mutedStyle.Render(" " + t + " "))
		}
	}
	b.WriteString("\n\n")

	listings := a.profileListings()
	if len(listings) == 0 {
		if a.profileTab == 0 {
			b.WriteString(mutedStyle.Render("No active ads. Press n to post your first one."))
		} else {
			b.WriteString(mutedStyle.Render("Nothing sold yet."))
		}
		return b.String()
	}
	for i, p := range listings {
		b.WriteString(a.productLine(p, i == a.listCursor))
		b.WriteString("\n")
	}
	return b.String()
}
