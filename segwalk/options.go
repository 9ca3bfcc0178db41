package segwalk

// Option configures Reconstruct behavior via functional arguments, modeled
// directly on bfs.BFSOptions's OnEnqueue/OnDequeue/OnVisit hook pattern.
type Option func(*Options)

// Options holds instrumentation hooks for Reconstruct. All hooks default to
// no-ops; none of them can alter traversal outcome, only observe it.
type Options struct {
	// OnSegment is called once per ref segment as it is produced during
	// segmentation, in ascending index order.
	OnSegment func(seg RefSegment)

	// OnChainStart is called when a new chain traversal begins at a port.
	OnChainStart func(port string)

	// OnChainEnd is called when a chain traversal terminates, with the
	// finished chain.
	OnChainEnd func(c Chain)

	// OnOrphan is called once per ref segment index that belongs to no
	// chain, after all chains (closed loops included) have been walked;
	// segments of a closed loop are not reported.
	OnOrphan func(refIndex int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnSegment:    func(RefSegment) {},
		OnChainStart: func(string) {},
		OnChainEnd:   func(Chain) {},
		OnOrphan:     func(int) {},
	}
}

// WithOnSegment registers a callback invoked per produced ref segment.
func WithOnSegment(fn func(seg RefSegment)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSegment = fn
		}
	}
}

// WithOnChainStart registers a callback invoked when a chain traversal begins.
func WithOnChainStart(fn func(port string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnChainStart = fn
		}
	}
}

// WithOnChainEnd registers a callback invoked when a chain traversal ends.
func WithOnChainEnd(fn func(c Chain)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnChainEnd = fn
		}
	}
}

// WithOnOrphan registers a callback invoked per orphaned ref segment index.
func WithOnOrphan(fn func(refIndex int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnOrphan = fn
		}
	}
}
