package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vimwizard/internal/config"
	"github.com/zjrosen/vimwizard/internal/level"
	"github.com/zjrosen/vimwizard/internal/oracle"
)

// levelLoadedMsg carries the level fetched for index.
type levelLoadedMsg struct {
	index int
	level level.Level
}

// remarkMsg carries a wizard line produced for the level at index.
type remarkMsg struct {
	index   int
	text    string
	emotion oracle.Emotion
}

// packChangedMsg signals that the level pack file changed on disk.
type packChangedMsg struct{}

// progressSavedMsg reports the outcome of persisting progress.
type progressSavedMsg struct {
	err error
}

func loadLevelCmd(ctx context.Context, o *oracle.Oracle, index int) tea.Cmd {
	return func() tea.Msg {
		return levelLoadedMsg{index: index, level: o.Level(ctx, index)}
	}
}

func remarkCmd(ctx context.Context, o *oracle.Oracle, index int, situation string, emotion oracle.Emotion) tea.Cmd {
	return func() tea.Msg {
		return remarkMsg{index: index, text: o.Remark(ctx, situation, emotion), emotion: emotion}
	}
}

func waitForPackChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return packChangedMsg{}
	}
}

func saveProgressCmd(path string, p config.Progress) tea.Cmd {
	return func() tea.Msg {
		return progressSavedMsg{err: config.SaveProgress(path, p)}
	}
}
