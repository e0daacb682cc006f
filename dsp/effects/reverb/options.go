package reverb

import "github.com/cwbudde/algo-fxengine/dsp/fxengine"

const (
	defaultSampleRate = 32000.0
	defaultLFO1Hz     = 0.5
	defaultLFO2Hz     = 0.3
	defaultFormat     = fxengine.Format12Bit

	defaultLP        = 0.7
	defaultDiffusion = 0.625
	defaultSize      = 1.0
)

type config struct {
	format     fxengine.Format
	sampleRate float64
	lfo1Hz     float64
	lfo2Hz     float64
}

func defaultConfig() config {
	return config{
		format:     defaultFormat,
		sampleRate: defaultSampleRate,
		lfo1Hz:     defaultLFO1Hz,
		lfo2Hz:     defaultLFO2Hz,
	}
}

// Option configures a Reverb at initialization.
type Option func(*config)

// WithFormat sets the delay storage format. The default is 12-bit.
func WithFormat(format fxengine.Format) Option {
	return func(cfg *config) {
		cfg.format = format
	}
}

// WithSampleRate sets the sample rate used to convert the LFO rates.
// Non-positive rates are ignored.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) {
		if sampleRate > 0 {
			cfg.sampleRate = sampleRate
		}
	}
}

// WithLFORates sets the modulation rates in Hz. LFO1 sweeps the first input
// diffuser, LFO2 sweeps the long delay of the first loop. Negative rates
// are ignored.
func WithLFORates(lfo1Hz, lfo2Hz float64) Option {
	return func(cfg *config) {
		if lfo1Hz >= 0 {
			cfg.lfo1Hz = lfo1Hz
		}
		if lfo2Hz >= 0 {
			cfg.lfo2Hz = lfo2Hz
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
