package resample

// kernelF32Impl and kernelF64Impl are the float kernel dispatch points
// kernelNone routes float32/float64 inner products through. They default
// to the portable scalar implementations below; kernels_accel_amd64.go
// may swap them for a SIMD implementation at init time, mirroring the
// dispatch pattern the teacher codec uses for its IMDCT rotation kernels
// (a package-level function variable reassigned in an amd64-gated
// init()). No SIMD implementation is wired in yet, so on every platform
// this currently just calls the scalar path through one extra indirection
// — the extension point is real, the accelerated kernel is not.
var kernelF32Impl = kernelF32Scalar
var kernelF64Impl = kernelF64Scalar

func kernelF32Scalar(a, b []float32, nTaps int) float32 {
	var sum float64
	for i := 0; i < nTaps; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return float32(sum)
}

func kernelF64Scalar(a, b []float64, nTaps int) float64 {
	var sum float64
	for i := 0; i < nTaps; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
