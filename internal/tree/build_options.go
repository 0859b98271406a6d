package tree

import "fmt"

// OrphanPolicy selects what BuildForest does with a record whose parent id is
// not present in the input.
type OrphanPolicy string

const (
	// PromoteToRoot turns orphans into top-level trees. This is the default.
	PromoteToRoot OrphanPolicy = "promote-to-root"
	// Reject fails the build with an OrphanReferenceError.
	Reject OrphanPolicy = "reject"
)

// ParseOrphanPolicy converts a user supplied string into an OrphanPolicy.
// An empty string selects the default.
func ParseOrphanPolicy(s string) (OrphanPolicy, error) {
	switch OrphanPolicy(s) {
	case "":
		return PromoteToRoot, nil
	case PromoteToRoot, Reject:
		return OrphanPolicy(s), nil
	default:
		return "", fmt.Errorf("invalid orphan policy %q: must be %q or %q", s, PromoteToRoot, Reject)
	}
}

// BuildOption customizes a BuildForest call.
type BuildOption func(*buildConfig)

type buildConfig struct {
	orphans OrphanPolicy
}

// WithOrphanPolicy sets the orphan policy. Any value other than Reject
// promotes orphans.
func WithOrphanPolicy(p OrphanPolicy) BuildOption {
	return func(c *buildConfig) {
		c.orphans = p
	}
}

func newBuildConfig(opts []BuildOption) buildConfig {
	cfg := buildConfig{orphans: PromoteToRoot}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
