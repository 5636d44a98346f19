// Package metric provides pairwise streamline distance kernels.
//
// All kernels operate on contiguous row-major float64 buffers of 3D points
// (x, y, z per point) and are pure: they only read their inputs and are safe
// to call concurrently from any number of goroutines.
//
// # Supported Metrics
//
//   - MetricMDF: minimum-average-direct-flip distance (default); both
//     streamlines must share the same point count
//   - MetricMAMMin / MetricMAMMean / MetricMAMMax: mean-average-minimum
//     distances; point counts may differ
//
// # Usage
//
//	d := metric.MDF(a, b, rows)
//	fn, _ := metric.Provider(metric.MetricMAMMean)
//	d = fn(a, b, rowsA, rowsB)
package metric
