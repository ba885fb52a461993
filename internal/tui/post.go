package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"techmarket/internal/catalog"
	"techmarket/internal/router"
	"techmarket/internal/wizard"
)

func newListingID() string { return uuid.NewString() }

// Detail-step rows: three text inputs interleaved with two cyclers.
const (
	rowTitle = iota
	rowPrice
	rowCategory
	rowCondition
	rowDescription
	detailRowCount
)

func (a *App) handlePostKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

	switch a.wiz.State() {
	case wizard.StatePublishing:
		// Esc abandons the draft; the in-flight timer's token goes stale
		// and the publish never completes.
		if msg.String() == "esc" {
			a.navigate(router.ScreenHome)
		}
		return a, nil
	case wizard.StatePublished:
		switch msg.String() {
		case "enter":
			a.navigate(router.ScreenProfile)
		case "esc":
			a.navigate(router.ScreenHome)
		}
		return a, nil
	}

	switch a.wiz.Step() {
	case wizard.StepPhotos:
		return a.handlePhotosKey(msg)
	case wizard.StepDetails:
		return a.handleDetailsKey(msg)
	case wizard.StepLocation:
		return a.handleLocationKey(msg)
	case wizard.StepPlan:
		return a.handlePlanKey(msg)
	}
	return a, nil
}

func (a *App) handlePhotosKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.navigate(router.ScreenHome)
		return a, nil
	case "u":
		if !a.wiz.AddImage(catalog.UploadPlaceholderImage) {
			return a, a.setStatus(fmt.Sprintf("error: at most %d photos per listing", wizard.MaxImages), true)
		}
		return a, nil
	case "x":
		a.wiz.RemoveImage(len(a.wiz.Images) - 1)
		return a, nil
	case "enter":
		if err := a.wiz.Advance(); err != nil {
			return a, a.setStatus("error: add at least one photo to continue", true)
		}
		a.wizFocus = rowTitle
		a.syncDetailFocus()
		return a, nil
	}
	return a, nil
}

func (a *App) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.wiz.Back()
		a.blurDetailInputs()
		return a, nil
	case "tab", "down":
		a.wizFocus = (a.wizFocus + 1) % detailRowCount
		a.syncDetailFocus()
		return a, nil
	case "shift+tab", "up":
		a.wizFocus = (a.wizFocus - 1 + detailRowCount) % detailRowCount
		a.syncDetailFocus()
		return a, nil
	case "enter":
		if err := a.wiz.Advance(); err != nil {
			return a, a.setStatus("error: fill in every field to continue", true)
		}
		a.blurDetailInputs()
		a.locInput.Focus()
		return a, nil
	case "left", "right":
		switch a.wizFocus {
		case rowCategory:
			a.cycleCategory(msg.String() == "right")
			return a, nil
		case rowCondition:
			a.cycleCondition(msg.String() == "right")
			return a, nil
		}
	}

	idx, ok := detailInputIndex(a.wizFocus)
	if !ok {
		return a, nil
	}
	var cmd tea.Cmd
	a.detailInputs[idx], cmd = a.detailInputs[idx].Update(msg)
	a.wiz.Title = a.detailInputs[0].Value()
	a.wiz.Price = a.detailInputs[1].Value()
	a.wiz.Description = a.detailInputs[2].Value()
	return a, cmd
}

func (a *App) handleLocationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.wiz.Back()
		a.locInput.Blur()
		a.syncDetailFocus()
		return a, nil
	case "enter":
		if err := a.wiz.Advance(); err != nil {
			return a, a.setStatus("error: enter a location to continue", true)
		}
		a.locInput.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	a.locInput, cmd = a.locInput.Update(msg)
	a.wiz.Location = a.locInput.Value()
	return a, cmd
}

func (a *App) handlePlanKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	plans := catalog.Plans()
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.wiz.Back()
		a.locInput.Focus()
		return a, nil
	case "left", "h", "up", "k":
		a.planIndex = (a.planIndex - 1 + len(plans)) % len(plans)
		a.wiz.Plan = plans[a.planIndex].Plan
		return a, nil
	case "right", "l", "down", "j":
		a.planIndex = (a.planIndex + 1) % len(plans)
		a.wiz.Plan = plans[a.planIndex].Plan
		return a, nil
	case "enter":
		token := a.wiz.StartPublish()
		return a, a.startPublishCmd(token)
	}
	return a, nil
}

func detailInputIndex(focus int) (int, bool) {
	switch focus {
	case rowTitle:
		return 0, true
	case rowPrice:
		return 1, true
	case rowDescription:
		return 2, true
	}
	return 0, false
}

func (a *App) syncDetailFocus() {
	a.blurDetailInputs()
	if idx, ok := detailInputIndex(a.wizFocus); ok {
		a.detailInputs[idx].Focus()
	}
}

func (a *App) blurDetailInputs() {
	for i := range a.detailInputs {
		a.detailInputs[i].Blur()
	}
}

// cycleCategory steps the category picker. The first press selects the
// current index rather than skipping past it, so the field cannot stay
// blank after any arrow press.
func (a *App) cycleCategory(forward bool) {
	cats := catalog.Categories()
	if a.wiz.Category == "" {
		a.wiz.Category = cats[a.catIndex]
		return
	}
	if forward {
		a.catIndex = (a.catIndex + 1) % len(cats)
	} else {
		a.catIndex = (a.catIndex - 1 + len(cats)) % len(cats)
	}
	a.wiz.Category = cats[a.catIndex]
}

func (a *App) cycleCondition(forward bool) {
	conds := catalog.Conditions()
	if a.wiz.Condition == "" {
		a.wiz.Condition = conds[a.condIndex]
		return
	}
	if forward {
		a.condIndex = (a.condIndex + 1) % len(conds)
	} else {
		a.condIndex = (a.condIndex - 1 + len(conds)) % len(conds)
	}
	a.wiz.Condition = conds[a.condIndex]
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

func (a *App) renderPost() string {
	if !a.sess.LoggedIn() {
		return titleStyle.Render("Post Your Ad") + "\n\n" +
			mutedStyle.Render("Sign in to post a listing.") + "\n\n" +
			mutedStyle.Render("enter login · esc home")
	}

	switch a.wiz.State() {
	case wizard.StatePublishing:
		return titleStyle.Render("Post Your Ad") + "\n\n" +
			statusStyle.Render("Publishing your ad...") + "\n" +
			mutedStyle.Render("Hold on while we put your listing live.")
	case wizard.StatePublished:
		plan := catalog.PlanByID(a.wiz.Plan)
		return titleStyle.Render("Post Your Ad") + "\n\n" +
			statusStyle.Render("✓ Your ad has been published!") + "\n" +
			mutedStyle.Render(fmt.Sprintf("%s plan · live for %d days", plan.Name, plan.Days)) + "\n" +
			mutedStyle.Render("Taking you to your profile shortly... enter to go now")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Post Your Ad"))
	b.WriteString("  " + mutedStyle.Render(fmt.Sprintf("step %d/4 · %s", a.wiz.Step(), stepName(a.wiz.Step()))))
	b.WriteString("\n\n")

	switch a.wiz.Step() {
	case wizard.StepPhotos:
		b.WriteString(a.renderPhotosStep())
	case wizard.StepDetails:
		b.WriteString(a.renderDetailsStep())
	case wizard.StepLocation:
		b.WriteString(a.renderLocationStep())
	case wizard.StepPlan:
		b.WriteString(a.renderPlanStep())
	}
	return b.String()
}

func stepName(s wizard.Step) string {
	switch s {
	case wizard.StepPhotos:
		return "Photos"
	case wizard.StepDetails:
		return "Details"
	case wizard.StepLocation:
		return "Location"
	case wizard.StepPlan:
		return "Plan"
	}
	return ""
}

func (a *App) renderPhotosStep() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(fmt.Sprintf("Photos (%d/%d)", len(a.wiz.Images), wizard.MaxImages)))
	b.WriteString("\n")
	if len(a.wiz.Images) == 0 {
		b.WriteString(mutedStyle.Render("No photos yet. Ads with photos get more replies."))
		b.WriteString("\n")
	}
	for i, img := range a.wiz.Images {
		b.WriteString(fmt.Sprintf("  %2d. %s\n", i+1, img))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("u add photo · x remove last · enter continue · esc cancel"))
	return b.String()
}

func (a *App) renderDetailsStep() string {
	cat := mutedStyle.Render("←/→ select")
	if a.wiz.Category != "" {
		cat = catalog.CategoryLabel(a.wiz.Category)
	}
	cond := mutedStyle.Render("←/→ select")
	if a.wiz.Condition != "" {
		cond = string(a.wiz.Condition)
	}

	rows := []struct {
		label string
		view  string
	}{
		{"Title", a.detailInputs[0].View()},
		{"Price (" + a.cfg.UI.CurrencySymbol + ")", a.detailInputs[1].View()},
		{"Category", cat},
		{"Condition", cond},
		{"Description", a.detailInputs[2].View()},
	}

	var b strings.Builder
	for i, r := range rows {
		label := sectionStyle.Render(r.label)
		if i == a.wizFocus {
			label = cursorStyle.Render("> ") + label
		} else {
			label = "  " + label
		}
		b.WriteString(label + "\n  " + r.view + "\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("tab next field · enter continue · esc back"))
	return b.String()
}

func (a *App) renderLocationStep() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Location"))
	b.WriteString("\n")
	b.WriteString(a.locInput.View())
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Buyers nearby see your ad first."))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter continue · esc back"))
	return b.String()
}

func (a *App) renderPlanStep() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Choose a plan"))
	b.WriteString("\n\n")
	for i, info := range catalog.Plans() {
		marker := "  "
		if i == a.planIndex {
			marker = cursorStyle.Render("> ")
		}
		name := info.Name
		if info.Popular {
			name += " " + premiumBadge.Render("popular")
		}
		line := fmt.Sprintf("%s%s  %s%.2f · %d days", marker, name, a.cfg.UI.CurrencySymbol, info.Price, info.Days)
		if i == a.planIndex {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
		b.WriteString(mutedStyle.Render("    "+info.Description) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("←/→ choose · enter publish · esc back"))
	return b.String()
}
