package kernel

import (
	"os"
	"strings"

	"golang.org/x/text/cases"
)

// Impl names a kernel implementation.
type Impl uint8

const (
	// Generic is the plain one-element-per-iteration loop.
	Generic Impl = iota
	// Unrolled processes four elements per iteration, which wide
	// out-of-order cores retire in parallel.
	Unrolled
)

// EnvOverride is the environment variable that forces an implementation.
const EnvOverride = "VALGEBRA_KERNEL"

func (i Impl) String() string {
	switch i {
	case Generic:
		return "generic"
	case Unrolled:
		return "unrolled"
	default:
		return "unknown"
	}
}

// ParseImpl parses an implementation name.
func ParseImpl(s string) (Impl, bool) {
	switch cases.Fold().String(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "unrolled":
		return Unrolled, true
	default:
		return Generic, false
	}
}

// Set once by the platform init and read-only afterwards.
var (
	active      Impl
	hasOverride bool

	// hasWideCore is set by the platform init when the CPU advertises the
	// vector extensions that come with wide issue.
	hasWideCore bool
)

func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if impl, ok := ParseImpl(override); ok {
			hasOverride = true
			use(impl)
			return
		}
	}

	if hasWideCore {
		use(Unrolled)
		return
	}
	use(Generic)
}

// Active returns the selected implementation.
func Active() Impl { return active }

// IsOverridden reports whether VALGEBRA_KERNEL chose the implementation.
func IsOverridden() bool { return hasOverride }

// HasWideCore reports whether the CPU was detected as wide-issue.
func HasWideCore() bool { return hasWideCore }

func use(impl Impl) {
	active = impl
	if impl == Unrolled {
		addImpl, subImpl, mulImpl = addUnrolled, subUnrolled, mulUnrolled
		addScaledImpl, lerpImpl = addScaledUnrolled, lerpUnrolled
		minImpl, maxImpl = minUnrolled, maxUnrolled
		return
	}
	addImpl, subImpl, mulImpl = addGeneric, subGeneric, mulGeneric
	addScaledImpl, lerpImpl = addScaledGeneric, lerpGeneric
	minImpl, maxImpl = minGeneric, maxGeneric
}
