// errors.go defines public error types for the resample package.

package resample

import "errors"

// Public error types for construction and reconfiguration.
var (
	// ErrInvalidChannels indicates a non-positive channel count.
	ErrInvalidChannels = errors.New("resample: invalid channels (must be >= 1)")

	// ErrInvalidRate indicates a non-positive input or output sample rate.
	ErrInvalidRate = errors.New("resample: invalid rate (must be > 0)")

	// ErrInvalidMethod indicates an unrecognized filter method.
	ErrInvalidMethod = errors.New("resample: invalid method")

	// ErrInvalidFormat indicates an unrecognized sample format.
	ErrInvalidFormat = errors.New("resample: invalid format")

	// ErrInvalidQuality indicates a quality preset outside 0-10.
	ErrInvalidQuality = errors.New("resample: invalid quality (must be 0-10)")

	// ErrInvalidNTaps indicates an explicit n-taps override that is <= 0.
	ErrInvalidNTaps = errors.New("resample: invalid n-taps (must be > 0)")

	// ErrInvalidOversample indicates filter-oversample is not a power of two >= 1.
	ErrInvalidOversample = errors.New("resample: invalid filter-oversample (must be a power of two >= 1)")

	// ErrBufferTooSmall indicates an output buffer shorter than the
	// requested out_frames, or an input buffer shorter than in_frames.
	ErrBufferTooSmall = errors.New("resample: buffer too small")
)

// validChannels returns true if n is usable as a channel count.
func validChannels(n int) bool {
	return n >= 1
}

// validRate returns true if r is usable as a sample rate.
func validRate(r int) bool {
	return r > 0
}

// validQuality returns true if q is a recognized quality preset.
func validQuality(q int) bool {
	return q >= 0 && q <= 10
}
