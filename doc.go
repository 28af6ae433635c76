// Package resample implements a streaming polyphase FIR sample-rate
// converter in pure Go.
//
// It consumes fixed-size chunks of PCM frames at one sample rate and
// produces frames at another, preserving signal fidelity within a
// configurable frequency/attenuation envelope. Internally it retains just
// enough history between calls to stitch output seamlessly across call
// boundaries, so a host pipeline can feed it arbitrarily sized chunks.
//
// # Filter design
//
// Five window methods are available: Nearest, Linear, Cubic (Mitchell-
// Netravali BC-spline), BlackmanNuttall, and Kaiser. Kaiser additionally
// derives its tap count and beta from a target stopband attenuation and
// transition bandwidth (see NewQuality and the Options fields).
//
// # Coefficient storage
//
// Depending on the rate ratio, the resampler either stores one exact
// coefficient row per output phase (FULL mode) or a bounded number of
// oversampled rows reconstructed by linear/cubic interpolation
// (INTERPOLATED mode). AUTO picks FULL when out_rate is small enough to
// keep the per-phase table compact, INTERPOLATED otherwise.
//
// # Sample formats
//
// Int16 and Int32 is quantized fixed-point arithmetic with DC-bias
// correction so a filter's taps sum to exactly unity in fixed point;
// Float32 and Float64 use plain real-valued coefficients.
//
// This package requires no cgo dependencies and no SIMD assembly; all
// kernels have a portable scalar Go reference implementation. An optional
// CPU-feature-probed acceleration hook is available on amd64 (see
// kernels_accel_amd64.go) and installs itself once at process start.
package resample
