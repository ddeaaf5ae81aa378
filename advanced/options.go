package advanced

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrInvalidOptions = errors.New("invalid border options")
	ErrInvalidSurface = errors.New("invalid surface")
)

// Options configures border generation.
type Options struct {
	// Full width of the border strip. Each side is offset by half of it.
	BorderWidth float64
	// UVs are divided by this.
	TextureScale float64
	// Project UVs as if every triangle faced up, instead of using face normals.
	ForceUpNormal bool
	// Merge colinear boundary pieces left behind by subdivision before
	// building loops.
	RemoveExtendingEdges bool
}

// Option configures Options. Use functional options to override defaults.
//
// Example:
//
//	mesh, err := navborder.GenerateBorderMesh(surface,
//		navborder.WithBorderWidth(0.5),
//		navborder.WithTextureScale(2),
//	)
type Option func(*Options)

// DefaultOptions returns the defaults. BorderWidth has no sensible default and
// is left at zero, which fails validation until set.
func DefaultOptions() Options {
	return Options{
		TextureScale:         1,
		RemoveExtendingEdges: true,
	}
}

func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithBorderWidth(width float64) Option {
	return func(o *Options) {
		o.BorderWidth = width
	}
}

func WithTextureScale(scale float64) Option {
	return func(o *Options) {
		o.TextureScale = scale
	}
}

func WithForceUpNormal(force bool) Option {
	return func(o *Options) {
		o.ForceUpNormal = force
	}
}

func WithRemoveExtendingEdges(remove bool) Option {
	return func(o *Options) {
		o.RemoveExtendingEdges = remove
	}
}

// Validate checks the preconditions that must hold before any geometry work.
func (o Options) Validate() error {
	if !isPositive(o.BorderWidth) {
		return errors.Wrapf(ErrInvalidOptions, "border width must be positive, got %v", o.BorderWidth)
	}
	return validateTextureScale(o.TextureScale)
}

func validateTextureScale(scale float64) error {
	if !isPositive(scale) {
		return errors.Wrapf(ErrInvalidOptions, "texture scale must be positive, got %v", scale)
	}
	return nil
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
