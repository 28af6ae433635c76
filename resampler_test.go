package resample

import (
	"math"
	"testing"
)

func generateSine(rate int, freq float64, frames, channels int) []float32 {
	out := make([]float32, frames*channels)
	for i := 0; i < frames; i++ {
		v := float32(0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
		for c := 0; c < channels; c++ {
			out[i*channels+c] = v
		}
	}
	return out
}

func rmsEnergy(s []float32) float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum / float64(len(s)))
}

func TestResampleUpsamplePreservesEnergy(t *testing.T) {
	r, err := NewQuality[float32](MethodKaiser, 0, 1, 44100, 48000, 6)
	if err != nil {
		t.Fatalf("NewQuality: %v", err)
	}

	const inFrames = 4410 // 100ms
	in := generateSine(44100, 1000, inFrames, 1)

	outFrames := r.GetOutFrames(inFrames)
	out := make([]float32, outFrames)

	produced, consumed, err := r.Resample(out, outFrames, in, inFrames)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if consumed != inFrames {
		t.Errorf("consumed = %d, want %d", consumed, inFrames)
	}
	if produced == 0 {
		t.Fatal("produced 0 output frames")
	}

	inEnergy := rmsEnergy(in)
	outEnergy := rmsEnergy(out[:produced])
	if outEnergy < inEnergy*0.5 || outEnergy > inEnergy*1.5 {
		t.Errorf("output RMS energy %v too far from input RMS energy %v", outEnergy, inEnergy)
	}
}

func TestResampleDownsample(t *testing.T) {
	r, err := NewQuality[float32](MethodKaiser, 0, 2, 48000, 8000, 6)
	if err != nil {
		t.Fatalf("NewQuality: %v", err)
	}
	const inFrames = 4800
	in := generateSine(48000, 300, inFrames, 2)
	outFrames := r.GetOutFrames(inFrames)
	out := make([]float32, outFrames*2)

	produced, _, err := r.Resample(out, outFrames, in, inFrames)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if produced == 0 {
		t.Fatal("produced 0 output frames downsampling 48k -> 8k")
	}
}

func TestResampleBufferTooSmall(t *testing.T) {
	r, err := New[float32](MethodLinear, 0, 1, 44100, 48000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	in := make([]float32, 10)
	out := make([]float32, 1)
	if _, _, err := r.Resample(out, 10, in, 10); err != ErrBufferTooSmall {
		t.Errorf("err = %v, want ErrBufferTooSmall", err)
	}
}

func TestResampleNonInterleavedRoundTrip(t *testing.T) {
	r, err := New[int16](MethodCubic, FlagNonInterleaved, 2, 48000, 48000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	const inFrames = 512
	ch0 := make([]int16, inFrames)
	ch1 := make([]int16, inFrames)
	for i := range ch0 {
		ch0[i] = int16(i % 100)
		ch1[i] = int16(-(i % 50))
	}
	in := [][]int16{ch0, ch1}

	outFrames := r.GetOutFrames(inFrames)
	out := [][]int16{make([]int16, outFrames), make([]int16, outFrames)}

	produced, consumed, err := r.ResampleNonInterleaved(out, outFrames, in, inFrames)
	if err != nil {
		t.Fatalf("ResampleNonInterleaved: %v", err)
	}
	if consumed != inFrames {
		t.Errorf("consumed = %d, want %d", consumed, inFrames)
	}
	if produced == 0 {
		t.Fatal("produced 0 output frames at a 1:1 rate")
	}
}

func TestResetReprimeHistory(t *testing.T) {
	r, err := New[float32](MethodCubic, 0, 1, 44100, 48000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	in := generateSine(44100, 440, 2000, 1)
	outFrames := r.GetOutFrames(2000)
	out := make([]float32, outFrames)
	if _, _, err := r.Resample(out, outFrames, in, 2000); err != nil {
		t.Fatalf("Resample: %v", err)
	}

	r.Reset()
	wantAvail := r.nTaps/2 - 1
	if r.hist.avail != wantAvail {
		t.Errorf("after Reset, hist.avail = %d, want %d", r.hist.avail, wantAvail)
	}
	if r.phase.sampIndex != 0 || r.phase.sampPhase != 0 {
		t.Error("Reset should zero the phase state")
	}
}

func TestFreeReleasesBuffers(t *testing.T) {
	r, err := New[float32](MethodCubic, 0, 1, 44100, 48000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.Free()
	if r.store.data != nil || r.hist.buf != nil {
		t.Error("Free did not release backing buffers")
	}
}

func TestGetMaxLatencyMatchesHalfTapCount(t *testing.T) {
	r, err := New[float32](MethodBlackmanNuttall, 0, 1, 44100, 48000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := r.GetMaxLatency(); got != r.nTaps/2 {
		t.Errorf("GetMaxLatency() = %d, want %d", got, r.nTaps/2)
	}
}

func TestResampleFullModeProduces(t *testing.T) {
	// 8000 -> 4 reduces to 2000 -> 1; downsampling shrinks the default
	// oversample (8) to 1, and out_rate (1) <= oversample (1) resolves AUTO
	// to FULL mode, so this exercises fullModeRow's lazy per-phase design
	// path. The tap count grows to 4000 (2 * 2000), so the input must
	// exceed 4000 - (4000/2 - 1) = 2001 frames before any output appears.
	r, err := New[float32](MethodLinear, 0, 1, 8000, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.filterMode != FilterModeFull {
		t.Fatalf("filterMode = %v, want FilterModeFull", r.filterMode)
	}
	in := generateSine(8000, 200, 8000, 1)
	outFrames := r.GetOutFrames(8000)
	out := make([]float32, outFrames)
	produced, _, err := r.Resample(out, outFrames, in, 8000)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if produced == 0 {
		t.Fatal("produced 0 output frames in FULL mode")
	}
}

func TestUpdateChangingRatesKeepsProducingOutput(t *testing.T) {
	r, err := New[float32](MethodCubic, 0, 1, 44100, 44100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.Update(44100, 22050); err != nil {
		t.Fatalf("Update: %v", err)
	}
	in := generateSine(44100, 500, 4410, 1)
	outFrames := r.GetOutFrames(4410)
	out := make([]float32, outFrames)
	produced, _, err := r.Resample(out, outFrames, in, 4410)
	if err != nil {
		t.Fatalf("Resample after Update: %v", err)
	}
	if produced == 0 {
		t.Fatal("produced 0 output frames after Update to a new rate pair")
	}
}
