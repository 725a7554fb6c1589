package vec128

import (
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/pion/yuv2bgra/internal/logging"
)

var logger = logging.NewLogger("yuv2bgra/vec128")

// enabled is probed once and never changes afterwards.
var enabled bool

func init() {
	enabled = probe()
	logger.Debugf("128-bit vector tier enabled: %v (%s)", enabled, runtime.GOARCH)
}

func probe() bool {
	switch runtime.GOARCH {
	case "386", "amd64":
		return cpu.X86.HasSSE2
	case "arm64":
		return cpu.ARM64.HasASIMD
	case "ppc64", "ppc64le":
		return cpu.PPC64.IsPOWER8
	default:
		return false
	}
}

// Enabled reports whether the host has 128-bit integer vector units, in which
// case callers should prefer this tier over package base for frames that are
// wide enough.
func Enabled() bool {
	return enabled
}
