package resample

import "math"

// sincFc evaluates sin(pi*x*fc)/(pi*x), defined as fc at x == 0.
func sincFc(x, fc float64) float64 {
	if x == 0 {
		return fc
	}
	px := math.Pi * x
	return math.Sin(px*fc) / px
}

// besselI0 evaluates the zero-order modified Bessel function of the first
// kind via its power series. The series converges quickly for the |x|
// ranges Kaiser windows use (beta typically 0-20).
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0
	halfX := x / 2
	for k := 1; k < 64; k++ {
		term *= (halfX * halfX) / (float64(k) * float64(k))
		sum += term
		if term < sum*1e-18 {
			break
		}
	}
	return sum
}

// windowNearest implements the Nearest (zero-order hold) tap weight.
func windowNearest(x float64) float64 {
	if math.Abs(x) < 0.5 {
		return 1
	}
	return 0
}

// windowLinear implements the Linear tap weight.
func windowLinear(x float64, nTaps int) float64 {
	w := 1 - math.Abs(x)/float64(nTaps)
	if w < 0 {
		return 0
	}
	return w
}

// windowCubic implements the Mitchell-Netravali BC-spline tap weight.
// b and c are the standard BC-spline parameters (b=1,c=0 is a cubic
// B-spline; b=0,c=0.5 is the Catmull-Rom spline).
func windowCubic(x float64, nTaps int, b, c float64) float64 {
	a := math.Abs(x) * 4 / float64(nTaps)
	if a > 2 {
		return 0
	}
	if a < 1 {
		return ((12-9*b-6*c)*a*a*a +
			(-18+12*b+6*c)*a*a +
			(6 - 2*b)) / 6
	}
	return ((-b-6*c)*a*a*a +
		(6*b+30*c)*a*a +
		(-12*b-48*c)*a +
		(8*b + 24*c)) / 6
}

// windowBlackmanNuttall implements the Blackman-Nuttall windowed-sinc tap
// weight for a kernel of nTaps taps and normalized cutoff fc.
func windowBlackmanNuttall(x float64, nTaps int, fc float64) float64 {
	w := 2*math.Pi*x/float64(nTaps) + math.Pi
	win := 0.3635819 -
		0.4891775*math.Cos(w) +
		0.1365995*math.Cos(2*w) -
		0.0106411*math.Cos(3*w)
	return sincFc(x, fc) * win
}

// windowKaiser implements the Kaiser windowed-sinc tap weight for a kernel
// of nTaps taps, normalized cutoff fc, and shape parameter beta.
func windowKaiser(x float64, nTaps int, fc, beta float64) float64 {
	r := 2 * x / float64(nTaps)
	arg := 1 - r*r
	if arg < 0 {
		arg = 0
	}
	win := besselI0(beta * math.Sqrt(arg))
	return sincFc(x, fc) * win
}

// kaiserBeta derives the Kaiser window shape parameter from a target
// stopband attenuation A (in dB), per the standard Kaiser design formulas
// (Oppenheim & Schafer, also used by libsoxr/libsamplerate/GStreamer).
func kaiserBeta(stopAttenDB float64) float64 {
	switch {
	case stopAttenDB < 21:
		return 0
	case stopAttenDB <= 50:
		return 0.5842*math.Pow(stopAttenDB-21, 0.4) + 0.07886*(stopAttenDB-21)
	default:
		return 0.1102 * (stopAttenDB - 8.7)
	}
}

// kaiserNTaps derives the Kaiser kernel's tap count from a target stopband
// attenuation A (in dB) and normalized transition bandwidth trBW.
func kaiserNTaps(stopAttenDB, trBW float64) int {
	n := (stopAttenDB-8)/(2.285*2*math.Pi*trBW) + 1
	nt := int(math.Ceil(n))
	if nt < 1 {
		nt = 1
	}
	return nt
}

// weight evaluates the configured window method at offset x, in
// source-sample units centered on zero, for a kernel described by p.
func (p *filterParams) weight(x float64) float64 {
	switch p.method {
	case MethodNearest:
		return windowNearest(x)
	case MethodLinear:
		return windowLinear(x, p.nTaps)
	case MethodCubic:
		return windowCubic(x, p.nTaps, p.cubicB, p.cubicC)
	case MethodBlackmanNuttall:
		return windowBlackmanNuttall(x, p.nTaps, p.cutoff)
	case MethodKaiser:
		return windowKaiser(x, p.nTaps, p.cutoff, p.beta)
	default:
		return 0
	}
}

// filterParams holds the real-valued (pre-quantization) design parameters
// a window needs to evaluate a tap weight. It is a thin view over the
// Resampler's own fields, kept separate so window.go has no dependency on
// the rest of the control-plane state.
type filterParams struct {
	method Method
	nTaps  int
	cutoff float64
	beta   float64
	cubicB float64
	cubicC float64
}

// designRow fills real[0:len(real)] with tap weights for a kernel starting
// at source-sample offset x0, one source-sample apart, per spec.md 4.E's
// "x = 1 - n_taps/2 - p/out_rate" family of starting offsets.
func (p *filterParams) designRow(x0 float64, real []float64) {
	for i := range real {
		real[i] = p.weight(x0 + float64(i))
	}
}
