package provenance

// Config toggles which operations get recorded, how deep history is kept,
// and what happens when recording itself fails. See spec.md §4.7.
type Config struct {
	// Enabled is the master switch. false disables provenance entirely -
	// Record always returns ("", nil).
	Enabled bool

	// TrackLiterals records the nodes created by value.FromLiteral / value.Zero.
	TrackLiterals bool

	// TrackOps records the nodes created by package value's arithmetic and
	// conversion operators.
	TrackOps bool

	// TrackCalculations records the nodes created by package calc's engine.
	TrackCalculations bool

	// TrackSpans attaches the active span's name/hierarchy/attrs (see
	// span.go) to every node recorded while a span is open.
	TrackSpans bool

	// MaxHistoryDepth, if > 0, drops literal nodes more than this many hops
	// from an export's root during ToTraceJSON/Closure - see export.go's
	// closure walk (Explain does not apply it). 0 means unlimited.
	MaxHistoryDepth int

	// MaxGraphSize, if > 0, fails ToTraceJSON/Closure with a
	// GraphTooLargeError once the transitive closure exceeds this many
	// nodes (Explain does not apply it). 0 means unlimited.
	MaxGraphSize int

	// InternIDs reuses an existing Node when Record computes an id that
	// already exists in the graph; when false, Record overwrites the stored
	// Node with the newly built one. Neither case is an error.
	InternIDs bool

	// FailOnError, when true, makes Record return the underlying error
	// instead of degrading to an absent NodeID.
	FailOnError bool
}

// DefaultConfig matches spec.md §4.7's stated defaults: provenance on,
// everything tracked, no depth or size caps, ids interned, errors degraded
// rather than raised.
func DefaultConfig() Config {
	return Config{
		Enabled:           true,
		TrackLiterals:     true,
		TrackOps:          true,
		TrackCalculations: true,
		TrackSpans:        true,
		MaxHistoryDepth:   0,
		MaxGraphSize:       0,
		InternIDs:         true,
		FailOnError:       false,
	}
}
