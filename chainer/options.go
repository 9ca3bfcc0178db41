package chainer

// DefaultJCNUncertainty is the per-endpoint uncertainty assumed when a
// breakend's JCNUnc was not parsed from its record.
const DefaultJCNUncertainty = 0.5

// Option configures Derive and ScoreEdges via functional arguments,
// modeled on tsp.Options' single-struct-plus-functional-option shape.
type Option func(*Options)

// Options holds chaining-engine tunables. All fields have sensible
// zero-value-free defaults via DefaultOptions.
type Options struct {
	// JCNUncertainty is the fallback per-endpoint uncertainty used by the
	// JCN_MATCH test when a breakend carries no explicit JCNUnc.
	JCNUncertainty float64

	// OnApply, if set, is called once per edge applied during Derive's
	// splice/extend pass, after the chain state has been updated.
	OnApply func(e ScoredEdge)
}

// DefaultOptions returns the standard uncertainty default and a
// no-op OnApply hook.
func DefaultOptions() Options {
	return Options{
		JCNUncertainty: DefaultJCNUncertainty,
		OnApply:        func(ScoredEdge) {},
	}
}

// WithJCNUncertainty overrides the fallback per-endpoint JCN uncertainty.
func WithJCNUncertainty(u float64) Option {
	return func(o *Options) { o.JCNUncertainty = u }
}

// WithOnApply registers a callback invoked once per edge Derive applies.
func WithOnApply(fn func(e ScoredEdge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnApply = fn
		}
	}
}
