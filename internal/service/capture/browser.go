// Package capture drives a headless Chrome instance that turns rendered
// mock pages into PNG screenshots.
package capture

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Browser owns the shared Chrome connection. Pages are created per capture
// and closed when the capture finishes.
type Browser struct {
	mu       sync.Mutex
	bin      string
	headless bool

	launch  *launcher.Launcher
	browser *rod.Browser
}

func NewBrowser(bin string, headless bool) *Browser {
	return &Browser{bin: bin, headless: headless}
}

// Start launches Chrome and connects over the DevTools protocol. Calling
// Start on a live browser is a no-op.
func (b *Browser) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.browser != nil {
		if _, err := b.browser.Version(); err == nil {
			return nil
		}
		_ = b.browser.Close()
		b.browser = nil
	}

	launch := launcher.New().Headless(b.headless)
	if b.bin != "" {
		launch = launch.Bin(b.bin)
	}
	url, err := launch.Launch()
	if err != nil {
		return fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(url).Context(ctx)
	if err := browser.Connect(); err != nil {
		launch.Cleanup()
		return fmt.Errorf("connect to chrome: %w", err)
	}

	b.launch = launch
	b.browser = browser
	return nil
}

// Page opens a blank page on the shared browser.
func (b *Browser) Page() (*rod.Page, error) {
	b.mu.Lock()
	browser := b.browser
	b.mu.Unlock()
	if browser == nil {
		return nil, fmt.Errorf("browser not started")
	}
	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return page, nil
}

// Stop closes the browser and kills the launched Chrome process.
func (b *Browser) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.launch != nil {
		b.launch.Cleanup()
		b.launch = nil
	}
	return err
}
