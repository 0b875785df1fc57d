package capture

import (
	"errors"
	"testing"
)

func TestValidatePNG(t *testing.T) {
	valid := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 32)...)
	if err := ValidatePNG(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidatePNGRejectsWrongMagic(t *testing.T) {
	jpeg := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 32)...)
	if err := ValidatePNG(jpeg); err == nil {
		t.Fatalf("jpeg bytes must be rejected")
	}
}

func TestValidatePNGRejectsTruncated(t *testing.T) {
	if err := ValidatePNG([]byte{0x89, 0x50}); err == nil {
		t.Fatalf("truncated payload must be rejected")
	}
}

func TestCaptureErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &CaptureError{Stage: "screenshot", Err: inner}
	if !errors.Is(err, inner) {
		t.Fatalf("CaptureError must unwrap to the stage error")
	}
	if err.Error() != "capture failed at screenshot: boom" {
		t.Fatalf("got %q", err.Error())
	}
}
