package format

import (
	"path/filepath"
	"strings"
)

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed sweep log.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard frame stream.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2 (Snappy-compatible) stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 frame stream.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// compressionByExt maps lower-cased file extensions to compression types.
var compressionByExt = map[string]CompressionType{
	".zst":  CompressionZstd,
	".zstd": CompressionZstd,
	".sz":   CompressionS2,
	".s2":   CompressionS2,
	".lz4":  CompressionLZ4,
}

// CompressionFromPath guesses the compression of a sweep log from its file
// extension. Unknown extensions are treated as uncompressed.
func CompressionFromPath(path string) CompressionType {
	if c, ok := compressionByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return c
	}

	return CompressionNone
}
