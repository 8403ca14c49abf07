package clipboard

import (
	"errors"
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// ErrUnavailable reports that no system clipboard can be reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// Service defines the clipboard surface exposed to commands.
type Service interface {
	Available() bool
	Copy(text string) error
}

// NewService builds a clipboard service backed by the system clipboard.
// When copying is disabled, or the host has no clipboard utility, a noop
// implementation is returned.
func NewService(enabled bool) Service {
	if !enabled || atotto.Unsupported {
		return noopService{}
	}
	return systemService{}
}

type systemService struct{}

func (systemService) Available() bool { return true }

func (systemService) Copy(text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

type noopService struct{}

func (noopService) Available() bool { return false }

func (noopService) Copy(string) error { return ErrUnavailable }
