package resample

import "math"

// fullTable holds the FULL-mode lazy per-phase coefficient memo described
// in spec.md 4.E / 9 ("array of nullable pointers into the coefficient
// block... Option<row-index> per phase; never reallocate rows after
// initial allocation"). filled[p] tracks whether store.row(p) has been
// designed yet; rows are never moved once written.
type fullTable struct {
	filled []bool
}

func newFullTable(phases int) *fullTable {
	return &fullTable{filled: make([]bool, phases)}
}

func (f *fullTable) reset(phases int) {
	if cap(f.filled) >= phases {
		f.filled = f.filled[:phases]
		for i := range f.filled {
			f.filled[i] = false
		}
		return
	}
	f.filled = make([]bool, phases)
}

// fullModeRow returns the coefficient row for output phase p, designing
// and quantizing it on first use (spec.md 4.E FULL mode). warn is invoked
// (non-fatal) if the integer DC-bias search could not find an exact-unity
// offset for this row (spec.md 4.B/7).
func fullModeRow[T Sample](store *coeffStore[T], table *fullTable, p *filterParams, outRate int, phase int, warn func(string)) []T {
	row := store.row(phase)
	if table.filled[phase] {
		return row[:p.nTaps]
	}

	x0 := 1 - float64(p.nTaps)/2 - float64(phase)/float64(outRate)
	real := make([]float64, p.nTaps)
	p.designRow(x0, real)
	weight := tapWeight(real)

	quantized, feasible := quantizeRow[T](real, weight)
	copy(row, quantized)
	if !feasible && warn != nil {
		warn("resample: DC-bias search did not converge for this phase; taps written with the final search offset")
	}
	table.filled[phase] = true
	return row[:p.nTaps]
}

// linearICoeffReal returns the 2-long real interpolation weight vector for
// linear (mult=2) reconstruction at the given fractional position, per
// spec.md 4.E: x = frac/outRate; weight[0] = x pairs with the stored row's
// k=0 sub-tap and weight[1] = 1-x with k=1. At frac 0 the tap sits on the
// k=1 sub-tap; as frac grows it moves toward the k=0 sub-tap, which is the
// k=1 sub-tap of the next phase's row (one row lower, see interpolatedRow).
func linearICoeffReal(frac, outRate int) [2]float64 {
	x := float64(frac) / float64(outRate)
	return [2]float64{x, 1 - x}
}

// cubicICoeffReal returns the 4-long real interpolation weight vector for
// cubic (mult=4) reconstruction, per spec.md 4.E's closed-form formula.
func cubicICoeffReal(frac, outRate int) [4]float64 {
	x := float64(frac) / float64(outRate)
	x2 := x * x
	x3 := x2 * x
	w0 := (x3 - x) / 6
	w1 := x + (x2-x3)/2
	w3 := -x/3 + x2/2 - x3/6
	w2 := 1 - w0 - w1 - w3
	return [4]float64{w0, w1, w2, w3}
}

// quantizeICoeff converts a real interpolation weight vector to the
// target sample format. Float formats keep the real weights as-is.
// Integer formats round each weight independently except the last, which
// is forced to (1<<prec)-1 minus the others so the fixed-point row sums
// to exactly unity (spec.md 4.E: "forced exact so weights sum to 1.0 in
// fixed point"; spec.md 8 property 3).
func quantizeICoeff[T Sample](real []float64) []T {
	out := make([]T, len(real))
	if !isIntFormat[T]() {
		for i, w := range real {
			out[i] = T(w)
		}
		return out
	}
	prec := precisionBits[T]()
	m := int64(1)<<uint(prec) - 1
	var sum int64
	for i := 0; i < len(real)-1; i++ {
		v := int64(math.Round(real[i] * float64(m)))
		out[i] = T(v)
		sum += v
	}
	out[len(real)-1] = T(m - sum)
	return out
}

// interpolatedRow returns the offset (oversample row index) and fractional
// position for the current sampPhase, per spec.md 4.E:
//
//	pos    = sampPhase * oversample
//	offset = (oversample - 1) - (pos / outRate)
//	frac   = pos mod outRate
func interpolatedRow(sampPhase, oversample, outRate int) (offset, frac int) {
	pos := sampPhase * oversample
	offset = (oversample - 1) - pos/outRate
	frac = pos % outRate
	return offset, frac
}
