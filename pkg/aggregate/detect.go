package aggregate

import "bytes"

// Encoding is the result of classifying a leading byte sample.
type Encoding int

const (
	EncodingBinary Encoding = iota
	EncodingUTF8
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingUTF8BOM:
		return "utf-8-bom"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "binary"
	}
}

// IsText reports whether the classification is one of the accepted textual
// encodings. Anything else is skipped without a diagnostic.
func (e Encoding) IsText() bool {
	switch e {
	case EncodingUTF8, EncodingUTF8BOM, EncodingUTF16LE, EncodingUTF16BE:
		return true
	default:
		return false
	}
}

// DetectFunc classifies a leading byte sample. The emitter treats it as a
// black box so alternative heuristics can be substituted in tests.
type DetectFunc func(sample []byte) Encoding

// Byte-order marks recognized by Detect.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detect classifies a sample by byte-order mark first, then falls back to a
// null-byte scan: any NUL means binary, everything else is treated as UTF-8.
// An empty sample therefore classifies as UTF-8.
func Detect(sample []byte) Encoding {
	switch {
	case bytes.HasPrefix(sample, bomUTF8):
		return EncodingUTF8BOM
	case bytes.HasPrefix(sample, bomUTF16LE):
		return EncodingUTF16LE
	case bytes.HasPrefix(sample, bomUTF16BE):
		return EncodingUTF16BE
	}
	if bytes.IndexByte(sample, 0) >= 0 {
		return EncodingBinary
	}
	return EncodingUTF8
}
