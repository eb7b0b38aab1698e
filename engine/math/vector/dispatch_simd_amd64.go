//go:build amd64 && goexperiment.simd && !purego

package vector

import "golang.org/x/sys/cpu"

func init() {
	// The 128-bit kernel is emitted with VEX encodings.
	if !cpu.X86.HasAVX {
		return
	}
	registerKernel(LevelSIMD, simdKernel{})

	if NoSimdEnv() {
		return
	}
	active = simdKernel{}
	activeLevel = LevelSIMD
}
