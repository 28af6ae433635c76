package resample

import "testing"

func TestDeinterleaveStridedSplitsChannels(t *testing.T) {
	var h history[int16]
	h.ensureCap(2, 4, 1)
	in := []int16{1, 10, 2, 20, 3, 30, 4, 40} // 4 frames, 2 channels
	deinterleaveStrided[int16](&h, in, 4, 2)

	wantCh0 := []int16{1, 2, 3, 4}
	wantCh1 := []int16{10, 20, 30, 40}
	for i, v := range wantCh0 {
		if h.buf[0][i] != v {
			t.Errorf("buf[0][%d] = %d, want %d", i, h.buf[0][i], v)
		}
	}
	for i, v := range wantCh1 {
		if h.buf[1][i] != v {
			t.Errorf("buf[1][%d] = %d, want %d", i, h.buf[1][i], v)
		}
	}
	if h.avail != 4 {
		t.Errorf("avail = %d, want 4", h.avail)
	}
}

func TestDeinterleaveStridedNilZeroFills(t *testing.T) {
	var h history[int16]
	h.ensureCap(1, 3, 1)
	deinterleaveStrided[int16](&h, nil, 3, 1)
	for i, v := range h.buf[0] {
		if v != 0 {
			t.Errorf("buf[0][%d] = %d, want 0 (silence)", i, v)
		}
	}
}

func TestDeinterleavePairedBulkCopy(t *testing.T) {
	var h history[int16]
	h.ensureCap(1, 4, 2)
	in := []int16{1, 10, 2, 20}
	deinterleavePaired[int16](&h, in, 2, 2)
	for i, v := range in {
		if h.buf[0][i] != v {
			t.Errorf("buf[0][%d] = %d, want %d", i, h.buf[0][i], v)
		}
	}
}

func TestAppendPerChannelMixedNil(t *testing.T) {
	var h history[int16]
	h.ensureCap(2, 2, 1)
	in := [][]int16{{1, 2}, nil}
	appendPerChannel[int16](&h, in, 2, 2)
	if h.buf[0][0] != 1 || h.buf[0][1] != 2 {
		t.Error("channel 0 did not copy through")
	}
	if h.buf[1][0] != 0 || h.buf[1][1] != 0 {
		t.Error("channel 1 (nil source) should be zero-filled")
	}
}

func TestHistoryDiscard(t *testing.T) {
	var h history[int16]
	h.ensureCap(1, 5, 1)
	deinterleaveStrided[int16](&h, []int16{1, 2, 3, 4, 5}, 5, 1)
	h.discard(2, 1)
	want := []int16{3, 4, 5}
	if len(h.buf[0]) != 3 {
		t.Fatalf("len(buf[0]) = %d, want 3", len(h.buf[0]))
	}
	for i, v := range want {
		if h.buf[0][i] != v {
			t.Errorf("buf[0][%d] = %d, want %d", i, h.buf[0][i], v)
		}
	}
	if h.avail != 3 {
		t.Errorf("avail = %d, want 3", h.avail)
	}
}

func TestHistoryZeroPrefix(t *testing.T) {
	var h history[float32]
	h.zeroPrefix(1, 4, 1)
	if len(h.buf[0]) != 4 || h.avail != 4 {
		t.Fatalf("zeroPrefix did not set up 4 frames of history, got len=%d avail=%d", len(h.buf[0]), h.avail)
	}
	for _, v := range h.buf[0] {
		if v != 0 {
			t.Error("zeroPrefix should zero-fill")
		}
	}
}
