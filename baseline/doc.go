// Package baseline removes systematic baseline drift from averaged sweep
// traces.
//
// Even after background subtraction a sweep trace carries a slowly varying
// offset from source power drift and etalon effects. The package offers a
// closed set of removal strategies behind one entry point, [Remove]:
//
//   - [ModeNone]: pass the trace through unchanged.
//   - [ModeBoxcar]: subtract the smoothed sliding-window minimum, a robust
//     lower envelope that ignores narrow emission peaks.
//   - [ModeSpline]: anchor knots at windowed minima and subtract a natural
//     cubic spline fitted through them.
//   - [ModePolynomial]: subtract a least-squares polynomial over the
//     sample index (degree 1 removes linear drift).
//   - [ModeSinusoid]: subtract a fitted sine ripple, correcting the
//     residual detector-response wiggle.
//
// All strategies preserve the trace length and return both the corrected
// trace and the subtracted estimate.
//
// # Usage
//
//	res, err := baseline.Remove(trace, baseline.ModeBoxcar, baseline.WithWindow(25))
//	flat := res.Corrected
package baseline
