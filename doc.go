// Package linestring provides primitives and routines for polylines: paths
// made of straight line segments between consecutive 2D points. It focuses on
// measuring along such paths: arc length, interpolating the point at a
// fraction of the total length, and locating the fraction closest to an
// arbitrary query point.
//
// # Features
//
// We provide the following notable features:
//
//   - Interpolation by length fraction (see [Line.Interp] and
//     [LineString.Interp])
//   - Locating a point as a length fraction (see [LineString.Locate])
//   - Closest-point queries (see [Line.Nearest] and [LineString.Nearest])
//   - Arc length (see [Line.Length] and [LineString.Length])
//   - Bounding boxes (see [LineString.BoundingBox])
//
// [LineString.Locate] and [LineString.Interp] are inverses of one another in
// the following sense: interpolating at the fraction located for a query
// point reproduces the point on the linestring closest to the query, up to
// floating point rounding.
//
// # Fractions and arc length
//
// Positions along a line or linestring are expressed as fractions of total
// euclidean length, not as vertex indices or curve parameters. Fractions are
// not restricted to [0, 1]: values below zero resolve to the start point and
// values above one to the end point.
//
// # Non-finite values
//
// Coordinates are plain float64 values and may be NaN or infinite. Operations
// that cannot produce a meaningful point for such inputs, such as
// interpolating with a NaN fraction or along geometry whose coordinates make
// the result non-finite, report failure with a false second return value
// rather than returning garbage coordinates. Internally this falls out of
// three-way comparisons ([Cmp]) whose [Undefined] case propagates NaN
// wherever it entered the computation.
//
// All types in this package are immutable values; operations return fresh
// values and never modify their inputs, so values can be used concurrently
// without synchronization.
package linestring
