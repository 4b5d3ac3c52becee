package simd

import (
	"os"
	"strings"

	"golang.org/x/sys/cpu"
)

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents pure Go implementation (no SIMD).
	Generic ISA = iota
	// AVX2 represents x86-64 AVX2 (256-bit SIMD with FMA).
	AVX2
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case AVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "avx2":
		return AVX2, true
	default:
		return Generic, false
	}
}

// Package-level state, initialized once at package init.
var (
	activeISA   ISA
	hasOverride bool
	hasAVX2     bool
)

func init() {
	hasAVX2 = cpu.X86.HasAVX2 && cpu.X86.HasFMA
	initCapabilities(os.Getenv("KNN_SIMD"))
}

// initCapabilities selects the active ISA and installs the matching kernels.
func initCapabilities(override string) {
	hasOverride = false
	activeISA = selectBestISA()

	if override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			hasOverride = true
			activeISA = isa
		}
	}

	install(activeISA)
}

func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case AVX2:
		return hasAVX2
	default:
		return false
	}
}

func selectBestISA() ISA {
	if hasAVX2 {
		return AVX2
	}
	return Generic
}

// ActiveISA returns the ISA whose kernels are currently installed.
func ActiveISA() ISA { return activeISA }

// HasOverride reports whether KNN_SIMD forced the active ISA.
func HasOverride() bool { return hasOverride }
