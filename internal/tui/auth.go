package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"techmarket/internal/router"
)

var (
	loginLabels  = []string{"Email", "Password"}
	signupLabels = []string{"Full Name", "Email", "Phone", "Password"}
)

func (a *App) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.navigate(router.ScreenHome)
		return a, nil
	case "tab", "down":
		a.setAuthFocus((a.authFocus + 1) % len(a.authInputs))
		return a, nil
	case "shift+tab", "up":
		a.setAuthFocus((a.authFocus - 1 + len(a.authInputs)) % len(a.authInputs))
		return a, nil
	case "enter":
		return a.submitAuth()
	case "ctrl+s":
		if a.routes.Current() == router.ScreenLogin {
			a.navigate(router.ScreenSignup)
		} else {
			a.navigate(router.ScreenLogin)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.authInputs[a.authFocus], cmd = a.authInputs[a.authFocus].Update(msg)
	return a, cmd
}

func (a *App) setAuthFocus(i int) {
	a.authInputs[a.authFocus].Blur()
	a.authFocus = i
	a.authInputs[a.authFocus].Focus()
}

func (a *App) submitAuth() (tea.Model, tea.Cmd) {
	if a.routes.Current() == router.ScreenLogin {
		u := a.sess.Login()
		if u == nil {
			return a, a.setStatus("error: no accounts available", true)
		}
		a.navigate(router.ScreenHome)
		return a, a.setStatus("Welcome back, "+u.Name, false)
	}

	name := strings.TrimSpace(a.authInputs[0].Value())
	email := strings.TrimSpace(a.authInputs[1].Value())
	phone := strings.TrimSpace(a.authInputs[2].Value())
	if name == "" || email == "" {
		return a, a.setStatus("error: name and email are required", true)
	}
	u := a.sess.Signup(name, email, phone)
	a.navigate(router.ScreenHome)
	return a, a.setStatus("Account created. Welcome, "+u.Name, false)
}

func (a *App) renderLogin() string {
	return a.renderAuthForm("Login to TechMarket", loginLabels,
		"Any credentials sign in the demo account.")
}

func (a *App) renderSignup() string {
	return a.renderAuthForm("Create your account", signupLabels,
		"Your account lives for this session only.")
}

func (a *App) renderAuthForm(heading string, labels []string, note string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")
	for i, label := range labels {
		b.WriteString(sectionStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(a.authInputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(note))
	if a.routes.Current() == router.ScreenLogin {
		b.WriteString("\n" + mutedStyle.Render("No account? ctrl+s to sign up."))
	} else {
		b.WriteString("\n" + mutedStyle.Render("Already registered? ctrl+s to log in."))
	}
	return b.String()
}
