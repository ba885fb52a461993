package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"techmarket/internal/catalog"
	"techmarket/internal/router"
)

const priceStep = 50

// results runs the query engine over the current catalog view with the
// screen-local filter spec.
func (a *App) results() []catalog.Product {
	return catalog.Query(a.products(), a.filter)
}

// filterRowCount: price min, price max, one row per condition, one per
// brand, and the advisory distance slider.
func (a *App) filterRowCount() int {
	return 2 + len(catalog.Conditions()) + len(catalog.Brands(a.products())) + 1
}

func (a *App) handleListingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showFilters {
		return a.handleFilterKey(msg)
	}

	results := a.results()
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.navigate(router.ScreenHome)
		return a, nil
	case "f":
		a.showFilters = true
		a.filterCursor = 0
		return a, nil
	case "s":
		a.filter.Sort = nextSort(a.filter.Sort)
		a.listCursor = 0
		return a, nil
	case "up", "k":
		if a.listCursor > 0 {
			a.listCursor--
		}
		return a, nil
	case "down", "j":
		if a.listCursor < len(results)-1 {
			a.listCursor++
		}
		return a, nil
	case "enter":
		if a.listCursor < len(results) {
			p := results[a.listCursor]
			a.navigate(router.ScreenDetail, router.WithProduct(&p))
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		a.showFilters = false
		a.listCursor = 0
		return a, nil
	case "x":
		category := a.filter.Category
		query := a.filter.Query
		sort := a.filter.Sort
		a.filter = catalog.DefaultFilter(a.cfg.Listing.MaxPrice)
		a.filter.Category = category
		a.filter.Query = query
		a.filter.Sort = sort
		a.filter.MaxDistance = a.cfg.Listing.MaxDistanceKm
		return a, nil
	case "up", "k":
		if a.filterCursor > 0 {
			a.filterCursor--
		}
		return a, nil
	case "down", "j":
		if a.filterCursor < a.filterRowCount()-1 {
			a.filterCursor++
		}
		return a, nil
	case "left", "h":
		a.adjustFilterRow(-1)
		return a, nil
	case "right", "l":
		a.adjustFilterRow(1)
		return a, nil
	case "enter", " ":
		a.toggleFilterRow()
		return a, nil
	}
	return a, nil
}

// adjustFilterRow moves the numeric rows; toggles are handled by
// toggleFilterRow.
func (a *App) adjustFilterRow(dir int) {
	switch a.filterCursor {
	case 0:
		a.filter.PriceMin += float64(dir * priceStep)
		if a.filter.PriceMin < 0 {
			a.filter.PriceMin = 0
		}
		if a.filter.PriceMin > a.filter.PriceMax {
			a.filter.PriceMin = a.filter.PriceMax
		}
	case 1:
		a.filter.PriceMax += float64(dir * priceStep)
		if a.filter.PriceMax < a.filter.PriceMin {
			a.filter.PriceMax = a.filter.PriceMin
		}
	case a.filterRowCount() - 1:
		// Distance is advisory only; the slider moves but the value
		// never reaches the predicate chain.
		a.filter.MaxDistance += float64(dir * 5)
		if a.filter.MaxDistance < 0 {
			a.filter.MaxDistance = 0
		}
		if a.filter.MaxDistance > 100 {
			a.filter.MaxDistance = 100
		}
	}
}

func (a *App) toggleFilterRow() {
	conditions := catalog.Conditions()
	brands := catalog.Brands(a.products())
	condStart := 2
	brandStart := condStart + len(conditions)
	switch {
	case a.filterCursor >= condStart && a.filterCursor < brandStart:
		c := conditions[a.filterCursor-condStart]
		if a.filter.Conditions[c] {
			delete(a.filter.Conditions, c)
		} else {
			a.filter.Conditions[c] = true
		}
	case a.filterCursor >= brandStart && a.filterCursor < brandStart+len(brands):
		b := brands[a.filterCursor-brandStart]
		if a.filter.Brands[b] {
			delete(a.filter.Brands, b)
		} else {
			a.filter.Brands[b] = true
		}
	}
	a.listCursor = 0
}

func nextSort(current string) string {
	switch current {
	case catalog.SortLatest:
		return catalog.SortPriceLow
	case catalog.SortPriceLow:
		return catalog.SortPriceHigh
	default:
		return catalog.SortLatest
	}
}

func sortLabel(order string) string {
	switch order {
	case catalog.SortPriceLow:
		return "Price: Low to High"
	case catalog.SortPriceHigh:
		return "Price: High to Low"
	}
	return "Latest First"
}

func (a *App) renderListing() string {
	var b strings.Builder

	heading := "All Products"
	if a.filter.Category != "" {
		heading = catalog.CategoryLabel(a.filter.Category)
	} else if a.filter.Query != "" {
		heading = fmt.Sprintf("Results for %q", a.filter.Query)
	}
	results := a.results()

	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d products found · sort: %s", len(results), sortLabel(a.filter.Sort))))
	b.WriteString("\n\n")

	if a.showFilters {
		b.WriteString(a.renderFilterSidebar())
		b.WriteString("\n")
	}

	if len(results) == 0 {
		b.WriteString(mutedStyle.Render("No products found"))
		if hint := catalog.Suggest(a.products(), a.filter.Query); hint != "" {
			b.WriteString("\n")
			b.WriteString(statusStyle.Render(fmt.Sprintf("Did you mean %q?", hint)))
		}
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("esc back to home"))
		return b.String()
	}

	for i, p := range results {
		b.WriteString(a.productLine(p, !a.showFilters && i == a.listCursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderFilterSidebar() string {
	conditions := catalog.Conditions()
	brands := catalog.Brands(a.products())

	var rows []string
	rows = append(rows,
		fmt.Sprintf("Price min  %s%.0f", a.cfg.UI.CurrencySymbol, a.filter.PriceMin),
		fmt.Sprintf("Price max  %s%.0f", a.cfg.UI.CurrencySymbol, a.filter.PriceMax),
	)
	for _, c := range conditions {
		rows = append(rows, checkbox(string(c), a.filter.Conditions[c]))
	}
	for _, br := range brands {
		rows = append(rows, checkbox(br, a.filter.Brands[br]))
	}
	rows = append(rows, fmt.Sprintf("Distance   %.0f km", a.filter.MaxDistance))

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Filters"))
	b.WriteString(mutedStyle.Render("  (space toggle · ←/→ adjust · x clear · esc close)"))
	b.WriteString("\n")
	for i, row := range rows {
		prefix := "  "
		if i == a.filterCursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix + row + "\n")
	}
	return boxStyle.Render(b.String())
}

func checkbox(label string, checked bool) string {
	mark := "[ ]"
	if checked {
		mark = "[x]"
	}
	return fmt.Sprintf("%s %s", mark, label)
}
