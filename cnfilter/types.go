package cnfilter

import "github.com/derivchrom/svrecon/breakend"

// DefaultBackgroundPloidy is the assumed non-rearranged copy number.
const DefaultBackgroundPloidy = 2.0

// DefaultThreshold is the minimum length-weighted mean of
// (major+minor-background) required to keep a TI edge.
const DefaultThreshold = 0.15

// WeightFn extracts the copy-number value contributed by one CN
// segment, before background subtraction. Pluggable so callers can
// swap in an alternate CN value definition (e.g. total_cn directly)
// while keeping the length-weighted overlap-averaging machinery fixed.
type WeightFn func(seg breakend.CNSegment) float64

// DefaultWeightFn returns major_cn + minor_cn, the standard
// rearrangement-attributable copy number.
func DefaultWeightFn(seg breakend.CNSegment) float64 {
	return seg.MajorCN + seg.MinorCN
}

// Options configures Keep and FilterEdges.
type Options struct {
	BackgroundPloidy float64
	Threshold        float64
	Weight           WeightFn
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the standard thresholds and weight rule.
func DefaultOptions() Options {
	return Options{
		BackgroundPloidy: DefaultBackgroundPloidy,
		Threshold:        DefaultThreshold,
		Weight:           DefaultWeightFn,
	}
}

// WithBackgroundPloidy overrides the assumed background ploidy.
func WithBackgroundPloidy(p float64) Option {
	return func(o *Options) { o.BackgroundPloidy = p }
}

// WithThreshold overrides the minimum length-weighted mean required to
// keep an edge.
func WithThreshold(t float64) Option {
	return func(o *Options) { o.Threshold = t }
}

// WithWeightFn overrides the per-segment CN value rule.
func WithWeightFn(fn WeightFn) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}
