package resample

import "math"

// kernelNone computes the single-row (FULL mode, or an already-interpolated
// INTERPOLATED-mode row) inner product described in spec.md 4.F: a plain
// dot product of a[0..nTaps) and b[0..nTaps). Integer formats accumulate
// the products in a float64 accumulator (exact for int16; a documented
// approximation for int32, see DESIGN.md), add a rounding bias of
// 1<<(prec-1), arithmetic-shift right prec bits, and clamp to the format's
// range. Float formats return the raw sum.
func kernelNone[T Sample](a, b []T, nTaps int) T {
	switch av := any(a).(type) {
	case []float32:
		return any(kernelF32Impl(av, any(b).([]float32), nTaps)).(T)
	case []float64:
		return any(kernelF64Impl(av, any(b).([]float64), nTaps)).(T)
	}

	var sum float64
	for i := 0; i < nTaps; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return T(roundShiftClamp[T](sum))
}

// roundShiftClamp applies the integer-kernel finishing sequence from
// spec.md 4.F: add a rounding bias, arithmetic-shift right by the format's
// fixed-point precision, and clamp to [-2^prec, 2^prec-1] (which, composed
// with the format's own native range, also bounds it to the native type).
func roundShiftClamp[T Sample](sum float64) float64 {
	prec := precisionBits[T]()
	bias := float64(int64(1) << uint(prec-1))
	shifted := math.Floor((sum + bias) / float64(int64(1)<<uint(prec)))
	lo, hi := sampleBounds[T]()
	return clampF(shifted, lo, hi)
}

// interpTapScratch materializes one interpolated coefficient row of length
// nTaps from a stored oversample row, per spec.md 4.E: for tap j, combine
// the mult stored sub-tap values b[mult*j : mult*j+mult] with the
// mult-long icoeff weight vector. Integer formats round/clamp each
// combined tap individually (to the same scale as a normal quantized tap)
// before the caller's kernelNone does its own final round/shift/clamp —
// two independently-justified fixed-point reductions, documented in
// DESIGN.md as this repository's resolution of spec.md 4.F's compressed
// "combine with icoeff, then round/shift/clamp" description.
func interpTapScratch[T Sample](row []T, nTaps, mult int, icoeff []T, scratch []T) []T {
	isInt := isIntFormat[T]()
	prec := precisionBits[T]()
	iscale := float64(int64(1) << uint(prec))
	lo, hi := sampleBounds[T]()

	for j := 0; j < nTaps; j++ {
		var sum float64
		base := j * mult
		for k := 0; k < mult; k++ {
			sum += float64(row[base+k]) * float64(icoeff[k])
		}
		if isInt {
			v := math.Floor((sum + iscale/2) / iscale)
			scratch[j] = T(clampF(v, lo, hi))
		} else {
			scratch[j] = T(sum)
		}
	}
	return scratch[:nTaps]
}
