package chart

import (
	"fmt"

	"github.com/arloliu/quadfit/errs"
	"github.com/arloliu/quadfit/internal/options"
	"gonum.org/v1/plot/vg"
)

const defaultDPI = 96

type config struct {
	width, height vg.Length
	dpi           int
	legend        bool
}

// Option configures figure rendering.
type Option = options.Option[*config]

// WithSize sets the figure size. Both dimensions must be positive.
func WithSize(width, height vg.Length) Option {
	return options.New(func(cfg *config) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("%w: %v x %v", errs.ErrInvalidFigureSize, width, height)
		}
		cfg.width, cfg.height = width, height

		return nil
	})
}

// WithDPI sets the raster resolution in dots per inch.
func WithDPI(dpi int) Option {
	return options.New(func(cfg *config) error {
		if dpi <= 0 {
			return fmt.Errorf("%w: %d dpi", errs.ErrInvalidFigureSize, dpi)
		}
		cfg.dpi = dpi

		return nil
	})
}

// WithoutLegend hides panel legends.
func WithoutLegend() Option {
	return options.NoError(func(cfg *config) {
		cfg.legend = false
	})
}

func newConfig(width, height vg.Length, opts []Option) (*config, error) {
	cfg := &config{width: width, height: height, dpi: defaultDPI, legend: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
