package resample

// Method selects the FIR window used to design filter taps.
type Method uint8

const (
	// MethodNearest repeats the nearest input sample (zero-order hold).
	MethodNearest Method = iota
	// MethodLinear linearly interpolates between adjacent input samples.
	MethodLinear
	// MethodCubic uses a Mitchell-Netravali BC-spline kernel.
	MethodCubic
	// MethodBlackmanNuttall windows a sinc kernel with a four-term
	// Blackman-Nuttall window.
	MethodBlackmanNuttall
	// MethodKaiser windows a sinc kernel with a Kaiser window derived from
	// a target stopband attenuation and transition bandwidth.
	MethodKaiser
)

// String returns a human-readable method name.
func (m Method) String() string {
	switch m {
	case MethodNearest:
		return "nearest"
	case MethodLinear:
		return "linear"
	case MethodCubic:
		return "cubic"
	case MethodBlackmanNuttall:
		return "blackman-nuttall"
	case MethodKaiser:
		return "kaiser"
	default:
		return "unknown"
	}
}

// Format selects the PCM sample representation the resampler reads and
// writes. Input and output always share one format.
type Format uint8

const (
	// FormatS16 is 16-bit signed integer PCM, fixed-point precision 15.
	FormatS16 Format = iota
	// FormatS32 is 32-bit signed integer PCM, fixed-point precision 31.
	FormatS32
	// FormatF32 is 32-bit IEEE-754 float PCM.
	FormatF32
	// FormatF64 is 64-bit IEEE-754 float PCM.
	FormatF64
)

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatS16:
		return "s16"
	case FormatS32:
		return "s32"
	case FormatF32:
		return "f32"
	case FormatF64:
		return "f64"
	default:
		return "unknown"
	}
}

// FilterMode selects how coefficients are addressed per output phase.
type FilterMode uint8

const (
	// FilterModeAuto picks FULL when out_rate is small enough to keep the
	// per-phase table compact, INTERPOLATED otherwise.
	FilterModeAuto FilterMode = iota
	// FilterModeFull stores one exact coefficient row per output phase.
	FilterModeFull
	// FilterModeInterpolated stores a bounded number of oversampled rows
	// and reconstructs intermediate phases by interpolation.
	FilterModeInterpolated
)

// FilterInterpolation selects the interpolation polynomial used in
// INTERPOLATED mode to reconstruct a phase between oversampled rows.
type FilterInterpolation uint8

const (
	// FilterInterpolationNone performs no interpolation (nearest row).
	FilterInterpolationNone FilterInterpolation = iota
	// FilterInterpolationLinear interpolates between 2 adjacent rows.
	FilterInterpolationLinear
	// FilterInterpolationCubic interpolates across 4 adjacent rows.
	FilterInterpolationCubic
)

// Flags customizes the calling convention for samples.
type Flags uint8

const (
	// FlagNonInterleaved indicates the caller passes one buffer pointer
	// per channel instead of one interleaved buffer.
	FlagNonInterleaved Flags = 1 << iota
)
