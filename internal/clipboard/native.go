package clipboard

import (
	"fmt"
	"sync"

	xclipboard "golang.design/x/clipboard"
)

var (
	nativeOnce sync.Once
	nativeErr  error
)

// Native writes images through the golang.design clipboard bindings.
type Native struct{}

func (n *Native) Name() string { return "native" }

func (n *Native) WriteImage(png []byte) error {
	nativeOnce.Do(func() {
		nativeErr = xclipboard.Init()
	})
	if nativeErr != nil {
		return fmt.Errorf("clipboard init: %w", nativeErr)
	}
	xclipboard.Write(xclipboard.FmtImage, png)
	return nil
}
