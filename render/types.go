// Package render defines styles, options and sentinel errors for text rendering.
package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for rendering.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("render: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// Overlay supplies an optional per-cell value drawn inside the cell body.
// *distances.Distances satisfies it.
type Overlay interface {
	Get(c grid.Cell) (int, bool)
}

// Style selects the glyph set used for walls and corners.
type Style int

const (
	// StyleASCII draws "+", "---" and "|".
	StyleASCII Style = iota
	// StyleBox draws Unicode box-drawing lines with junction-aware corners.
	StyleBox
)

// String returns the style name accepted by ParseStyle.
func (s Style) String() string {
	switch s {
	case StyleASCII:
		return "ascii"
	case StyleBox:
		return "box"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle maps "ascii" or "box" to a Style.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "ascii":
		return StyleASCII, nil
	case "box":
		return StyleBox, nil
	}
	return 0, fmt.Errorf("%w: unknown style %q", ErrOptionViolation, name)
}

// Option configures Render via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Render.
type Option func(*Options)

// Options holds the rendering parameters.
type Options struct {
	// Overlay, if non-nil, provides the values drawn in cell bodies.
	Overlay Overlay

	// Style selects the frame glyphs.
	Style Style

	// HeatMap tints overlaid bodies by relative value.
	HeatMap bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns plain ASCII output without overlay.
func DefaultOptions() Options {
	return Options{
		Overlay: nil,
		Style:   StyleASCII,
		HeatMap: false,
	}
}

// WithOverlay draws o's values inside cell bodies.
// A nil overlay is an error; omit the option instead.
func WithOverlay(o Overlay) Option {
	return func(opts *Options) {
		if o == nil {
			opts.err = fmt.Errorf("%w: overlay is nil", ErrOptionViolation)
			return
		}
		opts.Overlay = o
	}
}

// WithStyle selects the frame glyphs.
func WithStyle(s Style) Option {
	return func(opts *Options) {
		if s != StyleASCII && s != StyleBox {
			opts.err = fmt.Errorf("%w: unknown style %v", ErrOptionViolation, s)
			return
		}
		opts.Style = s
	}
}

// WithHeatMap enables background tinting of overlaid bodies.
// Without an overlay it has no effect.
func WithHeatMap(on bool) Option {
	return func(opts *Options) {
		opts.HeatMap = on
	}
}
