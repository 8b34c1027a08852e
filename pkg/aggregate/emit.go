package aggregate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf16"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
)

// Emitter appends path-labeled blocks of textual file content to the output
// document. Each block is three newline-terminated writes: an opening tag
// naming the file, the decoded content verbatim, and a closing tag followed
// by a blank line. Non-text files contribute nothing, not even a tag.
type Emitter struct {
	w          io.Writer
	base       string // labels are computed relative to this directory
	sampleSize int
	detect     DetectFunc
	logger     *zap.Logger
}

// NewEmitter returns an emitter writing to w. A nil detect falls back to
// Detect; a non-positive sampleSize falls back to the default.
func NewEmitter(w io.Writer, base string, sampleSize int, detect DetectFunc, logger *zap.Logger) *Emitter {
	if detect == nil {
		detect = Detect
	}
	if sampleSize <= 0 {
		sampleSize = DefaultConfig().SampleSize
	}
	return &Emitter{
		w:          w,
		base:       base,
		sampleSize: sampleSize,
		detect:     detect,
		logger:     logger,
	}
}

// Emit appends one block for path if its leading sample classifies as text
// and the full content decodes strictly. A non-text classification is an
// expected skip and returns nil; every real failure is logged with the
// offending path and returned so the caller can count it. No partial block
// is ever written for a file that fails before its first write.
func (e *Emitter) Emit(path string) error {
	sample, err := readSample(path, e.sampleSize)
	if err != nil {
		e.logger.Warn("Failed to sample file", zap.String("path", path), zap.Error(err))
		return err
	}

	enc := e.detect(sample)
	if !enc.IsText() {
		e.logger.Debug("Skipping non-text file", zap.String("path", path), zap.Stringer("encoding", enc))
		return nil
	}

	content, err := readText(path, enc)
	if err != nil {
		e.logger.Warn("Failed to decode file",
			zap.String("path", path),
			zap.Stringer("encoding", enc),
			zap.Error(err))
		return err
	}

	if err := e.writeBlock(Label(path, e.base), content); err != nil {
		e.logger.Error("Failed to write output block", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}

// readSample reads up to limit leading bytes of the file; fewer when the
// file is shorter, zero for an empty file.
func readSample(path string, limit int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// ReadFull keeps the classification window deterministic; a bare Read
	// may legally return short before EOF.
	buf := make([]byte, limit)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buf[:n], nil
}

// readText reads the whole file and strictly decodes it according to the
// detected encoding. UTF-8 content is returned byte-for-byte (byte-order
// mark included); UTF-16 content is transcoded to UTF-8. A file whose
// sample looked textual but whose body does not decode fails here, before
// anything is written.
func readText(path string, enc Encoding) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	switch enc {
	case EncodingUTF16LE:
		return decodeUTF16(raw, unicode.LittleEndian)
	case EncodingUTF16BE:
		return decodeUTF16(raw, unicode.BigEndian)
	default:
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("content is not valid UTF-8")
		}
		return string(raw), nil
	}
}

func decodeUTF16(raw []byte, endianness unicode.Endianness) (string, error) {
	// The x/text decoder substitutes U+FFFD for malformed input instead of
	// failing, so strictness has to be enforced before it runs.
	if err := validateUTF16(raw, endianness); err != nil {
		return "", err
	}
	dec := unicode.UTF16(endianness, unicode.ExpectBOM).NewDecoder()
	out, err := dec.Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// validateUTF16 rejects content a lenient decoder would paper over: an odd
// byte count and unpaired surrogate code units.
func validateUTF16(raw []byte, endianness unicode.Endianness) error {
	if len(raw)%2 != 0 {
		return fmt.Errorf("truncated UTF-16 content: odd byte length %d", len(raw))
	}

	units := make([]uint16, 0, len(raw)/2)
	for i := 0; i < len(raw); i += 2 {
		if endianness == unicode.BigEndian {
			units = append(units, uint16(raw[i])<<8|uint16(raw[i+1]))
		} else {
			units = append(units, uint16(raw[i])|uint16(raw[i+1])<<8)
		}
	}

	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		if !utf16.IsSurrogate(u) {
			continue
		}
		if i+1 == len(units) || utf16.DecodeRune(u, rune(units[i+1])) == utf8.RuneError {
			return fmt.Errorf("unpaired surrogate at code unit %d", i)
		}
		i++ // consume the low half of the pair
	}
	return nil
}

// writeBlock appends the three writes of one block. A failure mid-block is
// returned as-is; bytes already flushed before the failure stay in the
// document.
func (e *Emitter) writeBlock(label, content string) error {
	if _, err := fmt.Fprintf(e.w, "<%s>\n", label); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(e.w, "%s\n", content); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(e.w, "</%s>\n\n", label); err != nil {
		return err
	}
	return nil
}
