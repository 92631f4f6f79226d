// Package convert defines the contract to the format-conversion engine
// that turns foreign workout exports (FIT sensor binaries, TCX, GPX, CSV)
// into PWF history text. The converters themselves live outside this
// module; they register here and are dispatched by format.
package convert

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Format identifies a foreign input format.
type Format string

const (
	FormatFIT Format = "fit"
	FormatTCX Format = "tcx"
	FormatGPX Format = "gpx"
	FormatCSV Format = "csv"
)

// Result is a successful conversion: PWF document text plus a warning per
// lossy step (dropped fields, approximated values).
type Result struct {
	Text     string   `json:"text"`
	Warnings []string `json:"warnings,omitempty"`
}

// Func converts raw input bytes into PWF history text.
type Func func(ctx context.Context, data []byte) (*Result, error)

var (
	mu         sync.RWMutex
	converters = map[Format]Func{}
)

// Register installs a converter for a format, replacing any previous one.
// A nil fn removes the registration. Registration normally happens from
// init or main wiring, before serving.
func Register(format Format, fn Func) {
	mu.Lock()
	defer mu.Unlock()
	if fn == nil {
		delete(converters, format)
		return
	}
	converters[format] = fn
}

// Convert dispatches input to the registered converter for format.
func Convert(ctx context.Context, format Format, data []byte) (*Result, error) {
	mu.RLock()
	fn := converters[format]
	mu.RUnlock()
	if fn == nil {
		return nil, fmt.Errorf("no converter registered for format %q", format)
	}
	return fn(ctx, data)
}

// Supported returns the formats with a registered converter, sorted.
func Supported() []Format {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Format, 0, len(converters))
	for f := range converters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
