// Package validate checks the structural and geometric invariants of the
// b-rep object graph: watertightness, sibling coincidence, curve-geometry
// agreement across surfaces, vertex coincidence, and uniqueness of object
// references. Checks run eagerly during construction and can be re-run
// over entire shells and solids on demand.
package validate

import "github.com/sksmith/brep/geom"

const (
	// defaultIdenticalMaxDistance is the default maximum 3D distance at
	// which two samples still count as identical.
	defaultIdenticalMaxDistance = 5e-14

	// defaultDistinctMinDistance is the default minimum 3D distance at
	// which two samples still count as distinct.
	defaultDistinctMinDistance = 5e-9
)

// Config holds the distance thresholds validation checks compare against.
type Config struct {
	// IdenticalMaxDistance is the maximum distance between two samples
	// that are supposed to be identical.
	IdenticalMaxDistance geom.Scalar

	// DistinctMinDistance is the minimum distance between two samples
	// that are supposed to be distinct.
	DistinctMinDistance geom.Scalar
}

// DefaultConfig returns the default validation thresholds.
func DefaultConfig() *Config {
	return &Config{
		IdenticalMaxDistance: geom.S(defaultIdenticalMaxDistance),
		DistinctMinDistance:  geom.S(defaultDistinctMinDistance),
	}
}
