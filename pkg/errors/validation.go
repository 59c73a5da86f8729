package errors

// ValidateNodeCount validates a node count for graph generation.
// Zero is allowed: generating an empty graph is well-defined.
func ValidateNodeCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "node count must be non-negative, got %d", n)
	}

	// Guard against accidental huge inputs: the generators are quadratic in
	// the worst case and the renderers choke long before this limit.
	const maxNodes = 100_000
	if n > maxNodes {
		return New(ErrCodeInvalidInput, "node count too large (max %d), got %d", maxNodes, n)
	}

	return nil
}

// ValidateProbability validates an edge probability.
// Out-of-range values are rejected rather than silently clamped, to keep
// generation deterministic and debuggable.
func ValidateProbability(p float64) error {
	if p != p { // NaN
		return New(ErrCodeInvalidProbability, "probability must not be NaN")
	}
	if p < 0 || p > 1 {
		return New(ErrCodeInvalidProbability, "probability must be in [0,1], got %g", p)
	}
	return nil
}

// ValidOutputFormats is the set of renderer output formats.
var ValidOutputFormats = map[string]bool{
	"dot": true,
	"svg": true,
	"png": true,
}

// ValidateOutputFormat validates a renderer output format name.
func ValidateOutputFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	}
	if !ValidOutputFormats[format] {
		return New(ErrCodeInvalidFormat, "unknown output format %q (want dot, svg, or png)", format)
	}
	return nil
}
