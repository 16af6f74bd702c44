// Package tui implements the interactive key browser of the secure-storage
// CLI. It lists the keys under the current prefix and lets the user reveal,
// copy and delete values.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Storage is the part of the storage facade the browser needs.
type Storage interface {
	Keys(ctx context.Context, opts ...service.Option) ([]string, error)
	GetItem(ctx context.Context, key string, opts ...service.Option) (*string, error)
	RemoveItem(ctx context.Context, key string, opts ...service.Option) error
	KeyPrefix() string
}

var _ Storage = (*service.StorageService)(nil)

type TUI struct {
	storage Storage
	logger  *logger.Logger
}

func New(storage Storage, logger *logger.Logger) *TUI {
	return &TUI{storage: storage, logger: logger}
}

// Browse runs the browser until the user quits.
func (t *TUI) Browse(ctx context.Context) error {
	finalModel, err := tea.NewProgram(newBrowseModel(ctx, t.storage), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		t.logger.Err(err).Str("func", "*TUI.Browse").Msg("tui program failed")
		return err
	}

	if _, ok := finalModel.(browseModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
