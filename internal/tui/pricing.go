package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"techmarket/internal/catalog"
	"techmarket/internal/router"
)

func (a *App) handlePricingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.navigate(router.ScreenHome)
	case "p":
		a.navigate(router.ScreenPost)
	}
	return a, nil
}

func (a *App) renderPricing() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Plans & Pricing"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Give your ad the visibility it deserves."))
	b.WriteString("\n\n")

	for _, info := range catalog.Plans() {
		var card strings.Builder
		name := sectionStyle.Render(info.Name)
		if info.Popular {
			name += "  " + premiumBadge.Render("most popular")
		}
		card.WriteString(name + "\n")
		if info.Price == 0 {
			card.WriteString(priceStyle.Render("Free") + "\n")
		} else {
			card.WriteString(priceStyle.Render(fmt.Sprintf("%s%.2f", a.cfg.UI.CurrencySymbol, info.Price)) + "\n")
		}
		card.WriteString(mutedStyle.Render(fmt.Sprintf("live for %d days", info.Days)) + "\n")
		card.WriteString(info.Description + "\n")
		for _, f := range info.Features {
			card.WriteString("  ✓ " + f + "\n")
		}
		b.WriteString(boxStyle.Render(card.String()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Plans apply per listing and are chosen in the last step of posting."))
	return b.String()
}
