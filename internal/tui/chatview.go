package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"techmarket/internal/catalog"
	"techmarket/internal/router"
)

func (a *App) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

	// A conversation is open: keys go to the composer except navigation.
	if a.activePeer != "" {
		switch msg.String() {
		case "esc":
			a.activePeer = ""
			a.composer.Blur()
			a.composer.SetValue("")
			return a, nil
		case "enter":
			text := a.composer.Value()
			if err := a.chats.Send(a.activePeer, text); err != nil {
				return a, a.setStatus("error: "+err.Error(), true)
			}
			a.composer.SetValue("")
			return a, nil
		}
		var cmd tea.Cmd
		a.composer, cmd = a.composer.Update(msg)
		return a, cmd
	}

	convs := a.chats.Conversations()
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.navigate(router.ScreenHome)
		return a, nil
	case "up", "k":
		if a.chatCursor > 0 {
			a.chatCursor--
		}
		return a, nil
	case "down", "j":
		if a.chatCursor < len(convs)-1 {
			a.chatCursor++
		}
		return a, nil
	case "enter":
		if a.chatCursor < len(convs) {
			peer := convs[a.chatCursor].PeerID
			if a.chats.Open(peer) != nil {
				a.activePeer = peer
				a.composer.Focus()
			}
		}
		return a, nil
	}
	return a, nil
}

func (a *App) renderChat() string {
	if !a.sess.LoggedIn() {
		return titleStyle.Render("Messages") + "\n\n" +
			mutedStyle.Render("Sign in to see your conversations.") + "\n\n" +
			mutedStyle.Render("enter login · esc home")
	}

	if a.activePeer != "" {
		return a.renderConversation()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Messages"))
	b.WriteString("\n\n")
	convs := a.chats.Conversations()
	if len(convs) == 0 {
		b.WriteString(mutedStyle.Render("No conversations yet. Contact a seller from a product page."))
		return b.String()
	}
	for i, c := range convs {
		cursor := "  "
		if i == a.chatCursor {
			cursor = cursorStyle.Render("> ")
		}
		name := c.PeerName
		if c.Online {
			name += " " + statusStyle.Render("●")
		}
		line := fmt.Sprintf("%s%s  %s", cursor, name, mutedStyle.Render(truncate(c.LastMessage(), 48)))
		if c.Unread > 0 {
			line += "  " + premiumBadge.Render(fmt.Sprintf("%d new", c.Unread))
		}
		if i == a.chatCursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (a *App) renderConversation() string {
	c := a.chats.ByPeer(a.activePeer)
	if c == nil {
		return mutedStyle.Render("Conversation not found") + "\n\n" + mutedStyle.Render("esc back")
	}

	var b strings.Builder
	name := c.PeerName
	if c.Online {
		name += "  " + statusStyle.Render("online")
	} else {
		name += "  " + mutedStyle.Render("offline")
	}
	b.WriteString(titleStyle.Render(name))
	b.WriteString("\n")

	if p := catalog.ByID(a.products(), c.ProductID); p != nil {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("about: %s · %s%.0f", p.Title, a.cfg.UI.CurrencySymbol, p.Price)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	me := ""
	if u := a.sess.Current(); u != nil {
		me = u.ID
	}
	for _, m := range c.Messages {
		stamp := mutedStyle.Render(m.Timestamp)
		if m.SenderID == me {
			b.WriteString(lipgloss.NewStyle().Align(lipgloss.Right).Width(a.contentWidth()).
				Render(m.Text+"  "+stamp) + "\n")
		} else {
			b.WriteString(m.Text + "  " + stamp + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("> ") + a.composer.View())
	b.WriteString("\n" + mutedStyle.Render("enter send · esc conversations"))
	return b.String()
}

func (a *App) contentWidth() int {
	if a.width <= 0 {
		return 80
	}
	return a.width
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
