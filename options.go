package nested

type options struct {
	create    bool
	fill      FillStrategy
	seqDelete bool
	maxDepth  int
	maxIndex  int
}

// Option configures a single path operation.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{
		fill:     FillAuto,
		maxDepth: DefaultMaxDepth,
		maxIndex: DefaultMaxIndex,
	}
	for _, f := range opts {
		f(o)
	}
	return o
}

// Create lets Set materialize missing intermediate containers, replace nil
// steps with containers and fill sequence gaps.
func Create(v bool) Option {
	return func(o *options) { o.create = v }
}

// Fill selects the fill strategy used by Set.
func Fill(f FillStrategy) Option {
	return func(o *options) { o.fill = f }
}

// AllowSequenceDelete lets Delete remove sequence elements.  Removing an
// element shifts every later index, invalidating any path a caller holds
// into the rest of the sequence.
func AllowSequenceDelete(v bool) Option {
	return func(o *options) { o.seqDelete = v }
}

// MaxDepth overrides DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// MaxIndex overrides DefaultMaxIndex.
func MaxIndex(n int) Option {
	return func(o *options) { o.maxIndex = n }
}
