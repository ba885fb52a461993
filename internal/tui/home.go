package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"techmarket/internal/catalog"
	"techmarket/internal/router"
)

// homeRows flattens the home rails in display order: premium spotlight,
// featured items, then everything nearby.
func (a *App) homeRows() []catalog.Product {
	products := a.products()
	rows := catalog.ByPlan(products, catalog.PlanPremium)
	rows = append(rows, catalog.ByPlan(products, catalog.PlanFeatured)...)
	return append(rows, products...)
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		switch msg.String() {
		case "esc":
			a.searching = false
			a.search.Blur()
			return a, nil
		case "enter":
			query := strings.TrimSpace(a.search.Value())
			a.searching = false
			a.search.Blur()
			a.navigate(router.ScreenListing, router.WithSearch(query), router.WithCategory(""))
			return a, nil
		}
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}

	rows := a.homeRows()
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "/":
		a.searching = true
		a.search.SetValue("")
		return a, a.search.Focus()
	case "b":
		a.navigate(router.ScreenListing, router.WithCategory(""), router.WithSearch(""))
		return a, nil
	case "c":
		a.navigate(router.ScreenChat)
		return a, nil
	case "p":
		a.navigate(router.ScreenPost)
		return a, nil
	case "m":
		a.navigate(router.ScreenProfile)
		return a, nil
	case "g":
		a.navigate(router.ScreenPricing)
		return a, nil
	case "l":
		a.navigate(router.ScreenLogin)
		return a, nil
	case "1", "2", "3", "4", "5", "6", "7", "8":
		cats := catalog.Categories()
		idx := int(msg.String()[0] - '1')
		if idx < len(cats) {
			a.navigate(router.ScreenListing, router.WithCategory(cats[idx]), router.WithSearch(""))
		}
		return a, nil
	case "up", "k":
		if a.homeCursor > 0 {
			a.homeCursor--
		}
		return a, nil
	case "down", "j":
		if a.homeCursor < len(rows)-1 {
			a.homeCursor++
		}
		return a, nil
	case "enter":
		if a.homeCursor < len(rows) {
			p := rows[a.homeCursor]
			a.navigate(router.ScreenDetail, router.WithProduct(&p))
		}
		return a, nil
	}
	return a, nil
}

func (a *App) renderHome() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Buy & Sell Used Electronics"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Your trusted local marketplace"))
	b.WriteString("\n\n")

	if a.searching {
		b.WriteString(a.search.View())
	} else {
		b.WriteString(mutedStyle.Render("Press / to search"))
	}
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Browse Categories"))
	b.WriteString("\n")
	var cats []string
	for i, id := range catalog.Categories() {
		cats = append(cats, fmt.Sprintf("%d %s", i+1, catalog.CategoryLabel(id)))
	}
	b.WriteString(mutedStyle.Render(strings.Join(cats, "   ")))
	b.WriteString("\n\n")

	rows := a.homeRows()
	products := a.products()
	premium := len(catalog.ByPlan(products, catalog.PlanPremium))
	featured := len(catalog.ByPlan(products, catalog.PlanFeatured))

	idx := 0
	idx = a.renderRail(&b, "Premium Listings", rows[idx:idx+premium], idx)
	idx = a.renderRail(&b, "Featured Items", rows[idx:idx+featured], idx)
	a.renderRail(&b, "Nearby Items", rows[idx:], idx)

	return b.String()
}

// renderRail writes one home section and returns the row offset after it.
func (a *App) renderRail(b *strings.Builder, title string, products []catalog.Product, offset int) int {
	if len(products) == 0 {
		return offset
	}
	b.WriteString(sectionStyle.Render(title))
	b.WriteString("\n")
	for i, p := range products {
		b.WriteString(a.productLine(p, offset+i == a.homeCursor))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return offset + len(products)
}

// productLine renders one catalog row with cursor, badge, price and
// location metadata.
func (a *App) productLine(p catalog.Product, selected bool) string {
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}
	price := priceStyle.Render(fmt.Sprintf("%s%.0f", a.cfg.UI.CurrencySymbol, p.Price))
	meta := mutedStyle.Render(fmt.Sprintf("%s · %s · %s", p.Condition, p.Location, p.PostedTime))
	line := fmt.Sprintf("%s%s  %s  %s", prefix, p.Title, price, meta)
	if badge := planBadge(string(p.Plan)); badge != "" {
		line += "  " + badge
	}
	if selected {
		return selectedStyle.Render(line)
	}
	return line
}
