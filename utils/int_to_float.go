// SPDX-License-Identifier: EPL-2.0

package utils

// FullScale returns the magnitude of the most negative value of a signed
// PCM sample with the given bit depth. Unknown depths fall back to 16-bit.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// IntToFloat32 scales a signed integer sample into [-1, 1).
func IntToFloat32(v int, bitDepth int) float32 {
	return float32(v) / FullScale(bitDepth)
}

// Uint8ToFloat32 scales an unsigned 8-bit sample (WAV stores 8-bit PCM
// with a 128 offset) into [-1, 1).
func Uint8ToFloat32(v int) float32 {
	return float32(v-128) / 128.0
}

// SupportedBitDepth reports whether IntToFloat32 has an exact scale for bitDepth.
func SupportedBitDepth(bitDepth int) bool {
	switch bitDepth {
	case 8, 16, 24, 32:
		return true
	}

	return false
}
