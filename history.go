package resample

// history holds the per-channel retained-input scratch buffers described
// in spec.md 3/4.G. blocks is 1 when a paired-channel kernel is in use
// (interleaved bulk copy into sbuf[0]) or equal to channels otherwise (one
// scratch buffer per channel, strided deinterleave copy).
type history[T Sample] struct {
	buf   [][]T
	avail int
}

// ensureCap grows each scratch buffer to hold at least n frames (inc
// elements per frame), preserving existing content.
func (h *history[T]) ensureCap(blocks, n, inc int) {
	need := n * inc
	if h.buf == nil {
		h.buf = make([][]T, blocks)
	}
	for c := range h.buf {
		if cap(h.buf[c]) < need {
			grown := make([]T, need)
			copy(grown, h.buf[c])
			h.buf[c] = grown[:len(h.buf[c])]
		}
	}
}

// deinterleaveStrided implements spec.md 4.G's strided path (blocks ==
// channels, inc == 1): for each channel c, copy inFrames strided samples
// in[0]+c+channels*i into sbuf[c]+samplesAvail+i, or zero-fill if in is
// nil (silence).
func deinterleaveStrided[T Sample](h *history[T], in []T, inFrames, channels int) {
	for c := 0; c < channels; c++ {
		buf := h.buf[c]
		base := h.avail
		need := base + inFrames
		if cap(buf) < need {
			grown := make([]T, need)
			copy(grown, buf)
			buf = grown
		} else {
			buf = buf[:need]
		}
		if in == nil {
			for i := 0; i < inFrames; i++ {
				buf[base+i] = 0
			}
		} else {
			for i := 0; i < inFrames; i++ {
				buf[base+i] = in[i*channels+c]
			}
		}
		h.buf[c] = buf
	}
	h.avail += inFrames
}

// deinterleavePaired implements spec.md 4.G's paired-channel bulk-copy
// path (blocks == 1, inc == channels): the whole interleaved block is
// copied verbatim into sbuf[0] starting at samplesAvail*inc.
func deinterleavePaired[T Sample](h *history[T], in []T, inFrames, inc int) {
	buf := h.buf[0]
	base := h.avail * inc
	need := base + inFrames*inc
	if cap(buf) < need {
		grown := make([]T, need)
		copy(grown, buf)
		buf = grown
	} else {
		buf = buf[:need]
	}
	if in == nil {
		for i := 0; i < inFrames*inc; i++ {
			buf[base+i] = 0
		}
	} else {
		copy(buf[base:need], in[:inFrames*inc])
	}
	h.buf[0] = buf
	h.avail += inFrames
}

// appendPerChannel copies inFrames frames of already-deinterleaved input
// (one slice per channel) into the per-channel scratch buffers, or
// zero-fills when the corresponding channel slice (or in itself) is nil.
// This is the non-interleaved counterpart of deinterleaveStrided: the
// source is already split by channel, so no destriding copy is needed.
func appendPerChannel[T Sample](h *history[T], in [][]T, inFrames, channels int) {
	for c := 0; c < channels; c++ {
		buf := h.buf[c]
		base := h.avail
		need := base + inFrames
		if cap(buf) < need {
			grown := make([]T, need)
			copy(grown, buf)
			buf = grown
		} else {
			buf = buf[:need]
		}
		var src []T
		if in != nil {
			src = in[c]
		}
		if src == nil {
			for i := 0; i < inFrames; i++ {
				buf[base+i] = 0
			}
		} else {
			copy(buf[base:need], src[:inFrames])
		}
		h.buf[c] = buf
	}
	h.avail += inFrames
}

// discard memmoves residual history left by consumed frames, so
// samp_index resets to 0 relative to the new start of history (spec.md
// 4.I: "the kernel then resets [samp_index] to 0 by memmoving residual
// history left").
func (h *history[T]) discard(consumed, inc int) {
	if consumed <= 0 {
		return
	}
	for c := range h.buf {
		buf := h.buf[c]
		n := len(buf)
		shift := consumed * inc
		if shift >= n {
			h.buf[c] = buf[:0]
			continue
		}
		copy(buf, buf[shift:])
		h.buf[c] = buf[:n-shift]
	}
	if consumed > h.avail {
		h.avail = 0
	} else {
		h.avail -= consumed
	}
}

// zeroPrefix zeroes the first n frames of every scratch buffer and resets
// avail, used by reset() and by construction (spec.md invariant 3).
func (h *history[T]) zeroPrefix(blocks, n, inc int) {
	if h.buf == nil {
		h.buf = make([][]T, blocks)
	}
	need := n * inc
	for c := range h.buf {
		if cap(h.buf[c]) < need {
			h.buf[c] = make([]T, need)
		} else {
			h.buf[c] = h.buf[c][:need]
			for i := range h.buf[c] {
				h.buf[c][i] = 0
			}
		}
	}
	h.avail = n
}
