// Command resample-demo generates a test tone, resamples it between two
// rates with the resample package, and reports basic quality metrics
// (SNR against an ideally-resampled reference and peak error).
//
// Usage:
//
//	go run . -in 44100 -out 48000 -method kaiser -quality 6
//	go run . -in 48000 -out 8000 -method cubic -channels 2
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/thesyncim/resample"
)

func main() {
	inRate := flag.Int("in", 44100, "input sample rate")
	outRate := flag.Int("out", 48000, "output sample rate")
	channels := flag.Int("channels", 1, "channel count")
	methodName := flag.String("method", "kaiser", "nearest, linear, cubic, blackman-nuttall, or kaiser")
	quality := flag.Int("quality", 6, "quality preset 0-10")
	duration := flag.Float64("duration", 1.0, "signal duration in seconds")
	toneHz := flag.Float64("tone", 1000, "test tone frequency in Hz")
	flag.Parse()

	method, err := parseMethod(*methodName)
	if err != nil {
		log.Fatal(err)
	}

	original := generateTone(*toneHz, *duration, *inRate, *channels)

	r, err := resample.NewQuality[float32](method, 0, *channels, *inRate, *outRate, *quality)
	if err != nil {
		log.Fatalf("resample.NewQuality: %v", err)
	}

	inFrames := len(original) / *channels
	outFrames := r.GetOutFrames(inFrames)
	out := make([]float32, outFrames*(*channels))

	produced, consumed, err := r.Resample(out, outFrames, original, inFrames)
	if err != nil {
		log.Fatalf("Resample: %v", err)
	}

	reference := generateTone(*toneHz, *duration, *outRate, *channels)
	fmt.Printf("=== Resample: %d -> %d Hz, %s, quality %d, %d ch ===\n",
		*inRate, *outRate, method, *quality, *channels)
	fmt.Printf("consumed %d of %d input frames, produced %d output frames (latency %d frames)\n",
		consumed, inFrames, produced, r.GetMaxLatency())
	printQualityReport(reference, out[:produced*(*channels)])
}

func parseMethod(name string) (resample.Method, error) {
	switch name {
	case "nearest":
		return resample.MethodNearest, nil
	case "linear":
		return resample.MethodLinear, nil
	case "cubic":
		return resample.MethodCubic, nil
	case "blackman-nuttall":
		return resample.MethodBlackmanNuttall, nil
	case "kaiser":
		return resample.MethodKaiser, nil
	default:
		return 0, fmt.Errorf("unknown method %q", name)
	}
}

func generateTone(hz, duration float64, rate, channels int) []float32 {
	n := int(duration * float64(rate))
	out := make([]float32, n*channels)
	for i := 0; i < n; i++ {
		v := float32(math.Sin(2 * math.Pi * hz * float64(i) / float64(rate)))
		for c := 0; c < channels; c++ {
			out[i*channels+c] = v
		}
	}
	return out
}

// printQualityReport compares two signals of possibly differing length
// (the shorter length is used) and prints SNR and peak error.
func printQualityReport(reference, actual []float32) {
	n := len(reference)
	if len(actual) < n {
		n = len(actual)
	}
	var signalEnergy, noiseEnergy float64
	var peak float64
	for i := 0; i < n; i++ {
		s := float64(reference[i])
		e := float64(actual[i]) - s
		signalEnergy += s * s
		noiseEnergy += e * e
		if math.Abs(e) > peak {
			peak = math.Abs(e)
		}
	}
	snr := math.Inf(1)
	if noiseEnergy > 0 {
		snr = 10 * math.Log10(signalEnergy/noiseEnergy)
	}
	fmt.Printf("SNR: %.2f dB, peak error: %.6f (compared over %d samples)\n", snr, peak, n)
}
