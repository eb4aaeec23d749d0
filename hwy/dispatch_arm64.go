//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setLevel(DispatchScalar, 16)
		return
	}

	// ASIMD is part of the ARMv8-A base architecture; the check is kept for
	// kernels built for stripped-down cores.
	if cpu.ARM64.HasASIMD {
		setLevel(DispatchNEON, 16)
	} else {
		setLevel(DispatchScalar, 16)
	}
}
