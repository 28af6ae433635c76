package resample

// This file is the streaming façade described in spec.md 4.I: converting
// already-configured filter state (control.go) into actual frame
// production, plus the frame-accounting helpers callers use to size their
// buffers up front.

// appendInterleaved deinterleaves inFrames frames of new input into
// history, choosing the paired bulk-copy path or the per-channel strided
// path according to how Update laid out r.blocks/r.inc. in == nil appends
// silence (used to drain a stream at end-of-input).
func (r *Resampler[T]) appendInterleaved(in []T, inFrames int) {
	if r.blocks == 1 {
		deinterleavePaired[T](&r.hist, in, inFrames, r.inc)
	} else {
		deinterleaveStrided[T](&r.hist, in, inFrames, r.channels)
	}
}

// gather builds the nTaps-long contiguous input window for channel ch
// starting at the current samp_index, copying into the reusable
// gatherBuf scratch slice.
func (r *Resampler[T]) gather(ch int) []T {
	idx := r.phase.sampIndex
	if r.blocks == 1 {
		buf := r.hist.buf[0]
		for i := 0; i < r.nTaps; i++ {
			r.gatherBuf[i] = buf[(idx+i)*r.inc+ch]
		}
	} else {
		copy(r.gatherBuf[:r.nTaps], r.hist.buf[ch][idx:idx+r.nTaps])
	}
	return r.gatherBuf[:r.nTaps]
}

// icoeffReal returns the real-valued interpolation weight vector for the
// current row width (mult): the identity weight for mult==1 (no
// interpolation, nearest oversampled row only), spec.md 4.E's linear
// formula for mult==2, and its cubic formula for mult==4.
func (r *Resampler[T]) icoeffReal(frac int) []float64 {
	switch r.mult {
	case 2:
		v := linearICoeffReal(frac, r.outRate)
		return v[:]
	case 4:
		v := cubicICoeffReal(frac, r.outRate)
		return v[:]
	default:
		return []float64{1.0}
	}
}

// kernelAt produces one output sample for channel ch at the current
// phase state, dispatching on the resolved filter mode (spec.md 4.E/4.F).
func (r *Resampler[T]) kernelAt(ch int) T {
	a := r.gather(ch)

	if r.filterMode == FilterModeFull {
		params := &filterParams{method: r.method, nTaps: r.nTaps, cutoff: r.cutoff, beta: r.beta, cubicB: r.cubicB, cubicC: r.cubicC}
		row := fullModeRow[T](&r.store, r.full, params, r.outRate, r.phase.sampPhase, r.warn)
		return kernelNone[T](a, row, r.nTaps)
	}

	offset, frac := interpolatedRow(r.phase.sampPhase, r.oversample, r.outRate)
	row := r.store.row(offset)
	icoeff := quantizeICoeff[T](r.icoeffReal(frac))
	tap := interpTapScratch[T](row, r.nTaps, r.mult, icoeff, r.tapBuf)
	return kernelNone[T](a, tap, r.nTaps)
}

// produce writes up to maxFrames output frames via write(frame, channel,
// value), advancing the phase state one step per frame and stopping when
// either maxFrames is reached or history no longer holds a full tap
// window for the next frame. It then discards consumed history and
// resets samp_index to 0 (spec.md 4.I), returning the number of frames
// actually produced.
//
// spec.md 3/4.I's skip attribute (deferred input-frame discard when a
// call virtually consumes more frames than were physically available) is
// not tracked here: the loop below stops producing the moment
// sampIndex+nTaps would exceed hist.avail, so sampIndex never advances
// past avail and consumed (sampIndex at loop exit) never exceeds it
// either. skip would stay permanently 0 in this design; omitted rather
// than carried as always-zero dead state.
func (r *Resampler[T]) produce(maxFrames int, write func(frame, ch int, v T)) int {
	produced := 0
	for produced < maxFrames {
		if r.phase.sampIndex+r.nTaps > r.hist.avail {
			break
		}
		for ch := 0; ch < r.channels; ch++ {
			write(produced, ch, r.kernelAt(ch))
		}
		r.phase.advance()
		produced++
	}
	if r.phase.sampIndex > 0 {
		r.hist.discard(r.phase.sampIndex, r.inc)
		r.phase.sampIndex = 0
	}
	return produced
}

// Resample converts inFrames frames of interleaved input in into up to
// outFrames frames of interleaved output out, appending in to the
// instance's retained history before producing output (so a single
// logical stream may be fed across many calls). in may be nil with
// inFrames > 0 to append silence (draining a stream at end-of-input,
// spec.md 4.I). Buffers must be at least outFrames*channels and
// inFrames*channels samples long respectively.
//
// It returns the number of output frames actually written (which may be
// less than outFrames if history does not yet hold enough samples) and
// the number of input frames consumed (always inFrames: input is always
// fully absorbed into history).
func (r *Resampler[T]) Resample(out []T, outFrames int, in []T, inFrames int) (producedOut, consumedIn int, err error) {
	if outFrames < 0 || inFrames < 0 {
		return 0, 0, ErrBufferTooSmall
	}
	if len(out) < outFrames*r.channels {
		return 0, 0, ErrBufferTooSmall
	}
	if in != nil && len(in) < inFrames*r.channels {
		return 0, 0, ErrBufferTooSmall
	}

	r.appendInterleaved(in, inFrames)
	produced := r.produce(outFrames, func(frame, ch int, v T) {
		out[frame*r.channels+ch] = v
	})
	return produced, inFrames, nil
}

// ResampleNonInterleaved is the non-interleaved counterpart of Resample,
// for instances constructed with FlagNonInterleaved: in and out hold one
// slice per channel instead of one interleaved buffer. in may be nil (or
// individual channel slices within it nil) to append silence.
func (r *Resampler[T]) ResampleNonInterleaved(out [][]T, outFrames int, in [][]T, inFrames int) (producedOut, consumedIn int, err error) {
	if outFrames < 0 || inFrames < 0 {
		return 0, 0, ErrBufferTooSmall
	}
	if len(out) < r.channels {
		return 0, 0, ErrBufferTooSmall
	}
	for _, ch := range out {
		if len(ch) < outFrames {
			return 0, 0, ErrBufferTooSmall
		}
	}
	if in != nil {
		if len(in) < r.channels {
			return 0, 0, ErrBufferTooSmall
		}
		for _, ch := range in {
			if ch != nil && len(ch) < inFrames {
				return 0, 0, ErrBufferTooSmall
			}
		}
	}

	appendPerChannel[T](&r.hist, in, inFrames, r.channels)
	produced := r.produce(outFrames, func(frame, ch int, v T) {
		out[ch][frame] = v
	})
	return produced, inFrames, nil
}

// sampIndexAt returns the samp_index the phase accumulator would reach
// after k further advances from its current state, without mutating it
// (closed form of phaseState.advance's single-carry recurrence).
func (r *Resampler[T]) sampIndexAt(k int) int {
	return r.phase.sampIndex + k*r.phase.sampInc + (r.phase.sampPhase+k*r.phase.sampFrac)/r.phase.outRate
}

// GetOutFrames returns the maximum number of output frames producible
// from the instance's current history plus inFrames additional input
// frames, per spec.md 4.I. Callers use this to size an output buffer
// before calling Resample.
func (r *Resampler[T]) GetOutFrames(inFrames int) int {
	total := r.hist.avail + inFrames
	if total < r.nTaps {
		return 0
	}
	lo, hi := 0, total
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if r.sampIndexAt(mid-1)+r.nTaps <= total {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// GetInFrames returns the minimum number of new input frames required,
// on top of the instance's current history, to produce outFrames output
// frames (the inverse of GetOutFrames). This is not the literal spec.md
// 4.I formula (floor((samp_phase + out*samp_frac)/out_rate) + out*samp_inc,
// which is stated relative to an empty history); it solves the same
// sampIndexAt recurrence relative to the instance's actual current
// history fill (hist.avail), which is what GetOutFrames's own inverse
// needs and what spec.md 8 property 5 tests against.
func (r *Resampler[T]) GetInFrames(outFrames int) int {
	if outFrames <= 0 {
		return 0
	}
	need := r.sampIndexAt(outFrames-1) + r.nTaps - r.hist.avail
	if need < 0 {
		need = 0
	}
	return need
}

// GetMaxLatency returns the number of output frames of latency the
// filter's priming history introduces (half the tap count, spec.md
// invariant 3's samples_avail = n_taps/2 - 1 zero-filled prefix).
func (r *Resampler[T]) GetMaxLatency() int {
	return r.nTaps / 2
}

// Reset clears retained history back to its just-constructed state
// (zero-filled priming, samp_index and samp_phase at 0), discarding any
// buffered input that has not yet produced output.
func (r *Resampler[T]) Reset() {
	r.hist.zeroPrefix(r.blocks, r.nTaps/2-1, r.inc)
	r.phase.sampIndex = 0
	r.phase.sampPhase = 0
}

// Free releases the instance's backing buffers for garbage collection.
// The instance must not be used afterward.
func (r *Resampler[T]) Free() {
	r.store.data = nil
	r.hist.buf = nil
	r.full = nil
	r.gatherBuf = nil
	r.tapBuf = nil
}

// Channels reports the channel count the instance was constructed with.
func (r *Resampler[T]) Channels() int { return r.channels }

// InRate reports the instance's current (GCD-reduced) input rate.
func (r *Resampler[T]) InRate() int { return r.inRate }

// OutRate reports the instance's current (GCD-reduced) output rate.
func (r *Resampler[T]) OutRate() int { return r.outRate }

// NTaps reports the instance's current filter length.
func (r *Resampler[T]) NTaps() int { return r.nTaps }

// Blocks reports the number of independent per-channel history buffers
// in use: 1 when the paired-channel (interleaved stereo) fast path is
// active, or Channels() otherwise.
func (r *Resampler[T]) Blocks() int { return r.blocks }
