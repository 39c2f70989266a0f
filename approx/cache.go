package approx

import (
	"fmt"

	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

type cacheKey struct {
	curve    storage.Handle[topology.Curve]
	boundary geometry.CurveBoundary
}

// CurveApproxCache caches curve approximations per (curve, boundary). A
// lookup that misses the exact key also tries the reversed boundary and
// returns the points in reverse order, so the two sibling half-edges of a
// shared curve receive the same interior samples up to order.
type CurveApproxCache struct {
	inner map[cacheKey]CurveApprox
}

// NewCurveApproxCache creates an empty cache.
func NewCurveApproxCache() *CurveApproxCache {
	return &CurveApproxCache{
		inner: make(map[cacheKey]CurveApprox),
	}
}

// Get looks up an approximation for the curve and boundary, trying the
// reversed boundary on a miss.
func (c *CurveApproxCache) Get(
	curve storage.Handle[topology.Curve],
	boundary geometry.CurveBoundary,
) (CurveApprox, bool) {
	if approx, ok := c.inner[cacheKey{curve: curve, boundary: boundary}]; ok {
		return approx, true
	}

	key := cacheKey{curve: curve, boundary: boundary.Reverse()}
	if approx, ok := c.inner[key]; ok {
		return approx.Reverse(), true
	}

	return CurveApprox{}, false
}

// Insert stores an approximation and returns it.
func (c *CurveApproxCache) Insert(
	curve storage.Handle[topology.Curve],
	boundary geometry.CurveBoundary,
	approx CurveApprox,
) CurveApprox {
	c.inner[cacheKey{curve: curve, boundary: boundary}] = approx

	return approx
}

// ApproxCurveWithCache approximates a curve within a boundary, using and
// populating the cache.
func ApproxCurveWithCache(
	curve storage.Handle[topology.Curve],
	surface storage.Handle[topology.Surface],
	boundary geometry.CurveBoundary,
	tolerance geometry.Tolerance,
	cache *CurveApproxCache,
	geom *geometry.Geometry,
) (CurveApprox, error) {
	if approx, ok := cache.Get(curve, boundary); ok {
		return approx, nil
	}

	local, ok := geom.OfCurve(curve, surface)
	if !ok {
		return CurveApprox{}, fmt.Errorf(
			"curve %d has no local geometry on surface %d",
			curve.ID(), surface.ID(),
		)
	}
	surfaceGeom, ok := geom.OfSurface(surface)
	if !ok {
		return CurveApprox{}, fmt.Errorf(
			"surface %d has no geometry", surface.ID(),
		)
	}

	approx, err := ApproxCurve(local.Path, surfaceGeom, boundary, tolerance)
	if err != nil {
		return CurveApprox{}, err
	}

	return cache.Insert(curve, boundary, approx), nil
}
