package resample

import (
	"math"

	"github.com/thesyncim/resample/util"
)

// Resampler is a streaming polyphase FIR sample-rate converter for PCM
// samples of type T. One instance converts a continuous stream from
// in_rate to out_rate at a fixed channel count and sample format; rates
// and filter options may be changed between calls via Update, but the
// format (T) and channel count are fixed for the instance's lifetime.
//
// A Resampler is not internally synchronized: the public methods must be
// called sequentially on a given instance (spec.md 5). Independent
// instances may be used from separate goroutines without coordination.
type Resampler[T Sample] struct {
	method   Method
	flags    Flags
	channels int

	inRate, outRate int
	phase           phaseState

	nTaps  int
	cutoff float64
	beta   float64
	cubicB float64
	cubicC float64

	filterMode   FilterMode // resolved: Full or Interpolated, never Auto
	filterInterp FilterInterpolation
	oversample   int
	mult         int // coefficient row width multiplier: 1/2/4 for none/linear/cubic

	store coeffStore[T]
	full  *fullTable

	hist    history[T]
	blocks  int
	inc     int
	ostride int

	// gatherBuf and tapBuf are per-instance scratch buffers reused across
	// Resample calls to avoid an allocation per output sample: gatherBuf
	// holds the nTaps-long input window, tapBuf the (possibly combined)
	// coefficient row fed to kernelNone.
	gatherBuf []T
	tapBuf    []T

	opts Options
	warn func(string)
}

// interpMult returns the coefficient-row width multiplier for an
// interpolation method: 1 (none), 2 (linear), 4 (cubic).
func interpMult(i FilterInterpolation) int {
	switch i {
	case FilterInterpolationLinear:
		return 2
	case FilterInterpolationCubic:
		return 4
	default:
		return 1
	}
}

func validMethod(m Method) bool {
	return m <= MethodKaiser
}

func validFormatT[T Sample]() bool {
	var zero T
	switch any(zero).(type) {
	case int16, int32, float32, float64:
		return true
	default:
		return false
	}
}

// New constructs a Resampler converting from inRate to outRate at the
// given channel count, using method's default filter parameters
// (overridable via opts). flags customizes the calling convention (see
// FlagNonInterleaved).
func New[T Sample](method Method, flags Flags, channels, inRate, outRate int, opts ...Option) (*Resampler[T], error) {
	if !validFormatT[T]() {
		return nil, ErrInvalidFormat
	}
	if !validMethod(method) {
		return nil, ErrInvalidMethod
	}
	if !validChannels(channels) {
		return nil, ErrInvalidChannels
	}
	if !validRate(inRate) || !validRate(outRate) {
		return nil, ErrInvalidRate
	}

	r := &Resampler[T]{
		method:   method,
		flags:    flags,
		channels: channels,
	}
	if err := r.Update(inRate, outRate, opts...); err != nil {
		return nil, err
	}
	return r, nil
}

// NewQuality constructs a Resampler using one of the eleven (0-10) quality
// presets from spec.md 6, with opts layered on top for further overrides.
func NewQuality[T Sample](method Method, flags Flags, channels, inRate, outRate, quality int, opts ...Option) (*Resampler[T], error) {
	if !validQuality(quality) {
		return nil, ErrInvalidQuality
	}
	base := qualityOptions(method, quality)
	all := append([]Option{func(o *Options) { *o = base.merge() }}, opts...)
	return New[T](method, flags, channels, inRate, outRate, all...)
}

// Update reconfigures the rates and/or filter options of an existing
// Resampler, per spec.md 4.H. A non-positive inRate or outRate adopts the
// instance's current rate for that argument (spec.md 4.H step 1).
func (r *Resampler[T]) Update(inRate, outRate int, opts ...Option) error {
	if inRate <= 0 {
		inRate = r.inRate
	}
	if outRate <= 0 {
		outRate = r.outRate
	}
	if !validRate(inRate) || !validRate(outRate) {
		return ErrInvalidRate
	}

	// Step 2: rescale samp_phase to the new out_rate (relative to the
	// previously stored, already-reduced out_rate).
	rescaledPhase := 0
	if r.outRate > 0 {
		rescaledPhase = r.phase.sampPhase * outRate / r.outRate
	}

	opts2 := r.opts.merge(opts...)
	if opts2.NTaps != nil && *opts2.NTaps <= 0 {
		return ErrInvalidNTaps
	}
	if opts2.FilterOversample != nil && !isPowerOfTwo(*opts2.FilterOversample) {
		return ErrInvalidOversample
	}
	maxPhaseError := 0.1
	if opts2.MaxPhaseError != nil {
		maxPhaseError = *opts2.MaxPhaseError
	}

	// Step 3: GCD-reduce (and, within max_phase_error, further shrink).
	redIn, redOut, redPhase := reduceRates(inRate, outRate, rescaledPhase, maxPhaseError)

	nTaps, cutoff, beta, cubicB, cubicC, oversample, filterInterp := r.designFilter(redIn, redOut, opts2)

	if nTaps > 4 {
		nTaps = roundUp8(nTaps)
	}

	filterMode := FilterModeAuto
	if opts2.FilterMode != nil {
		filterMode = *opts2.FilterMode
	}
	if filterMode == FilterModeAuto {
		if redOut <= oversample {
			filterMode = FilterModeFull
		} else {
			filterMode = FilterModeInterpolated
		}
	}

	mult := interpMult(filterInterp)

	oldNTaps := r.nTaps
	r.inRate, r.outRate = redIn, redOut
	r.nTaps = nTaps
	r.cutoff = cutoff
	r.beta = beta
	r.cubicB = cubicB
	r.cubicC = cubicC
	r.filterMode = filterMode
	r.filterInterp = filterInterp
	r.oversample = oversample
	r.mult = mult
	r.opts = opts2
	r.warn = opts2.OnWarning

	r.phase.sampInc = redIn / redOut
	r.phase.sampFrac = redIn % redOut
	r.phase.sampPhase = redPhase % redOut
	if r.phase.sampPhase < 0 {
		r.phase.sampPhase += redOut
	}
	r.phase.outRate = redOut

	nonInterleaved := r.flags&FlagNonInterleaved != 0
	if r.channels == 2 && !nonInterleaved {
		r.blocks = 1
		r.inc = r.channels
	} else {
		r.blocks = r.channels
		r.inc = 1
	}
	if nonInterleaved {
		r.ostride = 1
	} else {
		r.ostride = r.channels
	}
	if cap(r.gatherBuf) < nTaps {
		r.gatherBuf = make([]T, nTaps)
	}
	if cap(r.tapBuf) < nTaps {
		r.tapBuf = make([]T, nTaps)
	}

	params := &filterParams{method: r.method, nTaps: nTaps, cutoff: cutoff, beta: beta, cubicB: cubicB, cubicC: cubicC}

	switch filterMode {
	case FilterModeFull:
		r.store.ensure(nTaps, 1, redOut)
		if r.full == nil {
			r.full = newFullTable(redOut)
		} else {
			r.full.reset(redOut)
		}
	default: // Interpolated
		r.store.ensure(nTaps, mult, oversample)
		r.buildInterpolatedTable(params)
		r.full = nil
	}

	if oldNTaps == 0 {
		// First construction: spec.md invariant 3.
		r.hist.zeroPrefix(r.blocks, nTaps/2-1, r.inc)
		r.phase.sampIndex = 0
	} else if oldNTaps != nTaps {
		// spec.md 9 open question: recenter bookkeeping only, leaving
		// stale samples in an expanded region rather than mirroring or
		// zero-filling (documented, intentionally unresolved upstream).
		shift := (nTaps - oldNTaps) / 2
		r.hist.avail += shift
		if r.hist.avail < 0 {
			r.hist.avail = 0
		}
		r.hist.ensureCap(r.blocks, r.hist.avail, r.inc)
	}

	return nil
}

// designFilter computes the real-valued filter design parameters for the
// configured method at the (already rate-reduced) in/out pair, applying
// per-method defaults, user overrides, and the downsampling cutoff/tap/
// oversample adjustments of spec.md 4.H step 4.
func (r *Resampler[T]) designFilter(inRate, outRate int, opts Options) (nTaps int, cutoff, beta, cubicB, cubicC float64, oversample int, interp FilterInterpolation) {
	cutoff = methodDefaultCutoff(r.method)
	if opts.Cutoff != nil {
		cutoff = *opts.Cutoff
	}
	downFactor := methodDefaultDownCutoffFactor(r.method)
	if opts.DownCutoffFactor != nil {
		downFactor = *opts.DownCutoffFactor
	}
	cubicB = 1.0
	if opts.CubicB != nil {
		cubicB = *opts.CubicB
	}
	cubicC = 0.0
	if opts.CubicC != nil {
		cubicC = *opts.CubicC
	}
	stopAttenDB := 85.0
	if opts.StopAttenuationDB != nil {
		stopAttenDB = *opts.StopAttenuationDB
	}
	trBW := methodDefaultTransitionBandwidth(r.method)
	if opts.TransitionBandwidth != nil {
		trBW = *opts.TransitionBandwidth
	}
	oversample = 8
	if opts.FilterOversample != nil {
		oversample = *opts.FilterOversample
	}
	interp = FilterInterpolationCubic
	if opts.FilterInterpolation != nil {
		interp = *opts.FilterInterpolation
	}

	if opts.NTaps != nil {
		nTaps = *opts.NTaps
	} else {
		nTaps = methodDefaultNTaps(r.method, stopAttenDB, trBW)
	}

	if r.method == MethodKaiser {
		beta = kaiserBeta(stopAttenDB)
	}

	if outRate < inRate {
		ratio := float64(outRate) / float64(inRate)
		cutoff = cutoff * downFactor * ratio
		nTaps = int(math.Ceil(float64(nTaps) * float64(inRate) / float64(outRate)))

		oversampleMult := 1
		for oversample > 1 && oversampleMult*outRate < inRate {
			oversample /= 2
			oversampleMult *= 2
		}
	}

	if nTaps < 1 {
		nTaps = 1
	}
	return nTaps, cutoff, beta, cubicB, cubicC, oversample, interp
}

// buildInterpolatedTable computes the dense oversampled tap table once
// (spec.md 4.H step 7 / 4.E INTERPOLATED mode) and scatters it into
// r.store according to the "row o holds, for each tap j, mult successive
// values at oversample positions o + j*oversample + k" layout.
func (r *Resampler[T]) buildInterpolatedTable(p *filterParams) {
	oversample, mult, nTaps := r.oversample, r.mult, r.nTaps
	otaps := oversample*nTaps + mult - 1
	x0 := 1 - float64(nTaps)/2

	dense := make([]float64, otaps)
	for k := 0; k < otaps; k++ {
		dense[k] = p.weight(x0 + float64(k)/float64(oversample))
	}
	weight := tapWeight(dense) / float64(oversample)

	quantized, feasible := quantizeRow[T](dense, weight)
	if !feasible && r.warn != nil {
		r.warn("resample: DC-bias search did not converge for the interpolated coefficient table; taps written with the final search offset")
	}

	for o := 0; o < oversample; o++ {
		row := r.store.row(o)
		for j := 0; j < nTaps; j++ {
			for k := 0; k < mult; k++ {
				row[j*mult+k] = quantized[o+j*oversample+k]
			}
		}
	}
}

// reduceRates implements spec.md 4.H step 3: divide in/out by their GCD,
// then — unless max_phase_error is ~0, in which case phase is folded into
// the GCD for an exact (lossless) reduction — progressively divide by the
// GCD's smallest prime factors as long as the induced phase error (the
// discrepancy introduced by rounding the phase to the new, coarser
// out_rate resolution) stays under max_phase_error. Reduction stops at the
// first factor that would exceed the tolerance, since further factors
// would only compound the error.
func reduceRates(inRate, outRate, phase int, maxPhaseError float64) (newIn, newOut, newPhase int) {
	g := util.GCD(inRate, outRate)
	if g <= 1 {
		return inRate, outRate, phase
	}

	if maxPhaseError <= 1e-9 {
		g2 := util.GCD(g, phase)
		if g2 <= 0 {
			g2 = g
		}
		return inRate / g2, outRate / g2, phase / g2
	}

	cur, curIn, curOut, curPhase := g, inRate, outRate, phase
outer:
	for d := 2; d*d <= cur; d++ {
		for cur%d == 0 {
			candIn, candOut := curIn/d, curOut/d
			if candOut == 0 {
				break outer
			}
			candPhase := int(math.Round(float64(curPhase) / float64(d)))
			errVal := math.Abs(float64(curPhase)/float64(curOut) - float64(candPhase)/float64(candOut))
			if errVal >= maxPhaseError {
				break outer
			}
			cur /= d
			curIn, curOut, curPhase = candIn, candOut, candPhase
		}
	}
	if cur > 1 {
		candIn, candOut := curIn/cur, curOut/cur
		if candOut > 0 {
			candPhase := int(math.Round(float64(curPhase) / float64(cur)))
			errVal := math.Abs(float64(curPhase)/float64(curOut) - float64(candPhase)/float64(candOut))
			if errVal < maxPhaseError {
				curIn, curOut, curPhase = candIn, candOut, candPhase
			}
		}
	}
	return curIn, curOut, curPhase
}

// roundUp8 rounds n up to the next multiple of 8.
func roundUp8(n int) int {
	return (n + 7) &^ 7
}

// isPowerOfTwo reports whether n is a power of two >= 1, per spec.md 6's
// filter-oversample constraint.
func isPowerOfTwo(n int) bool {
	return n >= 1 && n&(n-1) == 0
}

func methodDefaultCutoff(m Method) float64 {
	switch m {
	case MethodNearest, MethodLinear:
		return 1.0
	case MethodCubic:
		return 0.92
	case MethodBlackmanNuttall:
		return 0.90
	case MethodKaiser:
		return 0.92
	default:
		return 1.0
	}
}

func methodDefaultDownCutoffFactor(m Method) float64 {
	switch m {
	case MethodNearest, MethodLinear:
		return 1.0
	default:
		return 0.90
	}
}

func methodDefaultTransitionBandwidth(m Method) float64 {
	if m == MethodKaiser {
		return 0.05
	}
	return 0
}

func methodDefaultNTaps(m Method, stopAttenDB, trBW float64) int {
	switch m {
	case MethodNearest:
		return 2
	case MethodLinear:
		return 2
	case MethodCubic:
		return 4
	case MethodBlackmanNuttall:
		return 32
	case MethodKaiser:
		return kaiserNTaps(stopAttenDB, trBW)
	default:
		return 2
	}
}
