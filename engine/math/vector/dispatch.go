package vector

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/korkuveren/MARS/engine/core"
	"golang.org/x/sys/cpu"
)

// Level identifies a kernel family.
type Level int

const (
	// LevelGeneric is the portable lane-loop kernel.
	LevelGeneric Level = iota
	// LevelSIMD is the archsimd kernel.
	LevelSIMD
)

// String returns the kernel name for the level.
func (l Level) String() string {
	switch l {
	case LevelGeneric:
		return "generic"
	case LevelSIMD:
		return "simd"
	default:
		return "unknown"
	}
}

// active is the kernel every operation routes through. It is written during
// package init and by UseBackend, never concurrently with vector math.
var (
	active      Kernel = genericKernel{}
	activeLevel        = LevelGeneric
)

// available lists the kernels compiled into this binary and usable on this
// CPU, keyed by level.
var available = map[Level]Kernel{
	LevelGeneric: genericKernel{},
}

func registerKernel(level Level, k Kernel) {
	available[level] = k
}

// NoSimdEnv reports whether MARS_NO_SIMD asks for the generic kernel.
func NoSimdEnv() bool {
	val := os.Getenv("MARS_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Backend returns the level of the active kernel.
func Backend() Level {
	return activeLevel
}

// BackendName returns the name of the active kernel.
func BackendName() string {
	return active.Name()
}

// Backends returns the levels available in this binary, lowest first.
func Backends() []Level {
	levels := make([]Level, 0, len(available))
	for l := range available {
		levels = append(levels, l)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	return levels
}

// ParseLevel maps a backend name to its level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "generic", "scalar", "purego":
		return LevelGeneric, nil
	case "simd":
		return LevelSIMD, nil
	default:
		return LevelGeneric, fmt.Errorf("%q: %w", name, core.ErrUnknownBackend)
	}
}

// UseBackend switches the active kernel. It must not race with vector math
// running on other goroutines; call it during setup.
func UseBackend(level Level) error {
	k, ok := available[level]
	if !ok {
		return fmt.Errorf("%s not available on %s/%s: %w", level, runtime.GOOS, runtime.GOARCH, core.ErrUnknownBackend)
	}
	active = k
	activeLevel = level
	return nil
}

// Features lists the CPU features relevant to the vector kernels.
func Features() []string {
	var features []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasSSE41 {
			features = append(features, "sse4.1")
		}
		if cpu.X86.HasAVX {
			features = append(features, "avx")
		}
		if cpu.X86.HasAVX2 {
			features = append(features, "avx2")
		}
		if cpu.X86.HasFMA {
			features = append(features, "fma")
		}
		if cpu.X86.HasAVX512F {
			features = append(features, "avx512f")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			features = append(features, "asimd")
		}
		if cpu.ARM64.HasFPHP {
			features = append(features, "fphp")
		}
		if cpu.ARM64.HasSVE {
			features = append(features, "sve")
		}
	}
	return features
}

// Describe returns a one-line summary of the kernel selection.
func Describe() string {
	names := make([]string, 0, len(available))
	for _, l := range Backends() {
		names = append(names, l.String())
	}
	return fmt.Sprintf("kernel=%s available=[%s] cpu=[%s]",
		active.Name(), strings.Join(names, ","), strings.Join(Features(), ","))
}
