package fxengine

import (
	"fmt"
	"math"
)

// Format selects the precision used to store delayed samples.
type Format int

const (
	// Format12Bit stores samples on a 1/4096 grid with a range of about ±8.
	Format12Bit Format = iota
	// Format16Bit stores samples on a 1/32768 grid with a range of about ±1.
	Format16Bit
	// Format32Bit stores samples as float32.
	Format32Bit
)

const (
	scale12Bit = 4096.0
	scale16Bit = 32768.0

	minStoredWord = -32768.0
	maxStoredWord = 32767.0
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case Format12Bit:
		return "12-bit"
	case Format16Bit:
		return "16-bit"
	case Format32Bit:
		return "32-bit"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

func (f Format) valid() bool {
	return f >= Format12Bit && f <= Format32Bit
}

// Compress converts a sample to its stored representation. Fixed-point
// formats saturate at the 16-bit word range and truncate toward zero.
func (f Format) Compress(x float64) float32 {
	switch f {
	case Format12Bit:
		return quantize(x, scale12Bit)
	case Format16Bit:
		return quantize(x, scale16Bit)
	default:
		return float32(x)
	}
}

// Decompress converts a stored value back to a full precision sample.
func (f Format) Decompress(v float32) float64 {
	return float64(v)
}

// Resolution returns the smallest non-zero magnitude the format can store.
func (f Format) Resolution() float64 {
	switch f {
	case Format12Bit:
		return 1 / scale12Bit
	case Format16Bit:
		return 1 / scale16Bit
	default:
		return math.SmallestNonzeroFloat32
	}
}

func quantize(x, scale float64) float32 {
	word := math.Trunc(math.Min(math.Max(x*scale, minStoredWord), maxStoredWord))
	return float32(word / scale)
}
