//go:build amd64 && !purego

package resample

import "golang.org/x/sys/cpu"

// init probes the running CPU's feature set the same way the teacher
// codec's internal/celt/imdct_amd64.go does, so an accelerated
// implementation can be dropped into kernelF32Impl/kernelF64Impl here
// without touching the dispatch point in kernels.go. Nothing faster than
// the scalar path is implemented yet; this wires the probe and the
// extension point.
func init() {
	if cpu.X86.HasAVX2 {
		kernelF32Impl = kernelF32Scalar
		kernelF64Impl = kernelF64Scalar
		return
	}
	if cpu.X86.HasAVX {
		kernelF32Impl = kernelF32Scalar
		kernelF64Impl = kernelF64Scalar
	}
}
