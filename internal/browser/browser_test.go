package browser

import (
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if !opts.Headless {
		t.Error("Expected headless to be true by default")
	}

	if opts.Timeout != 30*time.Second {
		t.Errorf("Expected timeout to be 30s, got %v", opts.Timeout)
	}

	if opts.ViewportWidth != 1280 || opts.ViewportHeight != 1024 {
		t.Errorf("Expected viewport to be 1280x1024, got %dx%d", opts.ViewportWidth, opts.ViewportHeight)
	}
}
