package kintree

// UnknownPolicy controls how unknown keys are handled.
type UnknownPolicy int

const (
	UnknownStrict UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                       // Drop unknown keys.
)

// ParseOpt bundles parsing options.
type ParseOpt struct {
	// MaxDepth caps the nesting depth accepted from a wire value. Zero means
	// the package default (see wire.DefaultMaxDepth).
	MaxDepth int
	FailFast bool
}
