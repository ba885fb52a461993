package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"techmarket/internal/catalog"
	"techmarket/internal/chat"
	"techmarket/internal/config"
	"techmarket/internal/session"
	"techmarket/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	provider := catalog.NewStaticProvider()
	sess := session.New(provider.Users())
	chats := chat.NewSeededStore()

	p := tea.NewProgram(tui.New(cfg, provider, sess, chats), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
