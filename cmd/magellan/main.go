package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeffersonsimaogoncalves/go-magellan/internal/tui"
	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/logger"
)

func main() {
	if path := os.Getenv("MAGELLAN_LOG"); path != "" {
		logData, err := logger.New().FromPath(path).Make()
		if err != nil {
			log.Fatal(err)
		}
		logData.Info("inspector starting", "pid", os.Getpid())
		defer logData.LogFile.Close()
	}

	var m tea.Model
	if len(os.Args) > 1 {
		m = tui.NewWithInput(os.Args[1])
	} else {
		m = tui.New()
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
