package capture

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"mockshot/pkg/logger"
)

// pngSignature is the 8-byte magic every valid PNG starts with.
var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// CaptureError reports which pipeline stage failed.
type CaptureError struct {
	Stage string
	Err   error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("capture failed at %s: %v", e.Stage, e.Err)
}

func (e *CaptureError) Unwrap() error { return e.Err }

// awaitAssetsJS blocks until every image has either decoded or definitively
// failed, then waits for the font set. A broken image must not wedge the
// capture, so decode failures are swallowed.
const awaitAssetsJS = `async () => {
	const images = Array.from(document.images);
	await Promise.all(images.map(img => img.decode().catch(() => {})));
	await document.fonts.ready;
	return true;
}`

// applyBackdropJS paints the page background from the capture-root marker
// class when the document carries none, so rounded card corners never show
// a transparent checkerboard.
const applyBackdropJS = `() => {
	const body = document.body;
	const bg = getComputedStyle(body).backgroundColor;
	if (bg !== 'rgba(0, 0, 0, 0)' && bg !== 'transparent') return;
	const root = document.getElementById('capture-root');
	if (root && root.classList.contains('theme-dark')) {
		body.style.backgroundColor = '#000000';
	} else {
		body.style.backgroundColor = '#F5F5F5';
	}
}`

// Options fixes the emulated viewport and pipeline timing.
type Options struct {
	ViewportWidth  int
	ViewportHeight int
	DeviceScale    float64
	PageTimeout    time.Duration
	SettleDelay    time.Duration
}

// Pipeline renders HTML documents into PNG bytes on a shared browser.
type Pipeline struct {
	browser *Browser
	opts    Options
	log     *logger.Logger
}

func NewPipeline(browser *Browser, opts Options, log *logger.Logger) *Pipeline {
	return &Pipeline{browser: browser, opts: opts, log: log}
}

// Capture loads the document into a fresh page, waits for assets to settle
// and screenshots the #capture-root element.
func (p *Pipeline) Capture(ctx context.Context, html string) ([]byte, error) {
	start := time.Now()

	page, err := p.browser.Page()
	if err != nil {
		return nil, &CaptureError{Stage: "page", Err: err}
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(p.opts.PageTimeout)

	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             p.opts.ViewportWidth,
		Height:            p.opts.ViewportHeight,
		DeviceScaleFactor: p.opts.DeviceScale,
		Mobile:            false,
	}).Call(page); err != nil {
		return nil, &CaptureError{Stage: "viewport", Err: err}
	}

	if err := page.SetDocumentContent(html); err != nil {
		return nil, &CaptureError{Stage: "load", Err: err}
	}

	if _, err := page.Evaluate(&rod.EvalOptions{JS: awaitAssetsJS, AwaitPromise: true, ByValue: true}); err != nil {
		return nil, &CaptureError{Stage: "assets", Err: err}
	}
	if _, err := page.Evaluate(&rod.EvalOptions{JS: applyBackdropJS, ByValue: true}); err != nil {
		return nil, &CaptureError{Stage: "backdrop", Err: err}
	}

	// Let layout and font swaps settle before the shot.
	select {
	case <-time.After(p.opts.SettleDelay):
	case <-ctx.Done():
		return nil, &CaptureError{Stage: "settle", Err: ctx.Err()}
	}

	root, err := page.Element("#capture-root")
	if err != nil {
		return nil, &CaptureError{Stage: "locate", Err: err}
	}
	data, err := root.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
	if err != nil {
		return nil, &CaptureError{Stage: "screenshot", Err: err}
	}
	if err := ValidatePNG(data); err != nil {
		return nil, &CaptureError{Stage: "validate", Err: err}
	}

	p.log.Debug("captured screenshot",
		logger.Int("bytes", len(data)),
		logger.Duration("duration_ms", time.Since(start)),
	)
	return data, nil
}

// ValidatePNG checks the PNG signature and a sane minimum size.
func ValidatePNG(data []byte) error {
	if len(data) < len(pngSignature)+8 {
		return fmt.Errorf("image too small: %d bytes", len(data))
	}
	if !bytes.HasPrefix(data, pngSignature) {
		return fmt.Errorf("missing png signature")
	}
	return nil
}
