package mdr

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if the input is not valid UTF-8 or
// appears binary: any NUL byte, or control characters beyond a small
// share of a large enough sample.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var control int
	for _, b := range src {
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	return b == 0x7F
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	return r < 0x20 || r == 0x7F
}

// sanitizeChunk copies src into dst dropping control runes and invalid
// byte sequences. It returns the cleaned slice and the undecoded tail
// (a rune possibly split across chunks) for the caller to carry over.
func sanitizeChunk(dst, src []byte) (clean, rest []byte) {
	di, i := 0, 0
	for i < len(src) {
		if !utf8.FullRune(src[i:]) {
			break
		}
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		if isControlRune(r) {
			i += size
			continue
		}
		copy(dst[di:], src[i:i+size])
		di += size
		i += size
	}
	return dst[:di], src[i:]
}

// Front matter at the start of the stream is dropped before anything
// reaches the renderer. Input buffers until a header can be ruled in
// or out, then either swallows it or releases the probe untouched.

const maxFrontMatterProbe = 64 * 1024

type frontMatterFilter struct {
	passthrough bool
	probe       []byte
	probeArr    [4096]byte
}

func (f *frontMatterFilter) reset() {
	f.passthrough = false
	f.probe = f.probeArr[:0]
}

// process feeds the next chunk through the filter, returning the bytes
// that should reach the renderer now. While the header is undecided,
// input accumulates and nothing is returned.
func (f *frontMatterFilter) process(chunk []byte) []byte {
	if f.passthrough || len(chunk) == 0 {
		return chunk
	}
	f.probe = append(f.probe, chunk...)
	out, decided := f.decide(false)
	if !decided && len(f.probe) > maxFrontMatterProbe {
		return f.release()
	}
	if decided {
		return out
	}
	return nil
}

// finish resolves an undecided probe at end of input.
func (f *frontMatterFilter) finish() []byte {
	if f.passthrough || len(f.probe) == 0 {
		return nil
	}
	out, _ := f.decide(true)
	return out
}

// release gives up on front matter: everything probed so far is
// content.
func (f *frontMatterFilter) release() []byte {
	out := f.probe
	f.passthrough = true
	f.probe = f.probe[:0]
	return out
}

func (f *frontMatterFilter) decide(eof bool) ([]byte, bool) {
	line, next, ok := scanLine(f.probe, 0, eof)
	if !ok {
		return nil, false
	}
	delim, isFrontMatter := openingDelimiter(line)
	if !isFrontMatter {
		return f.release(), true
	}
	line, next, ok = scanLine(f.probe, next, eof)
	if !ok {
		return nil, false
	}
	if !metadataLikely(line) {
		return f.release(), true
	}
	for idx := next; ; {
		line, n, ok := scanLine(f.probe, idx, eof)
		if !ok {
			return nil, false
		}
		if string(bytes.TrimSpace(line)) == delim {
			out := f.probe[n:]
			f.passthrough = true
			f.probe = f.probe[:0]
			return out, true
		}
		if n == idx {
			return f.release(), true
		}
		idx = n
		if idx == len(f.probe) && !eof {
			return nil, false
		}
	}
}

// scanLine returns the line starting at start without its terminator,
// and the offset of the next line. Without eof, an unterminated final
// line reports not ok.
func scanLine(src []byte, start int, eof bool) (line []byte, next int, ok bool) {
	if start > len(src) {
		return nil, 0, false
	}
	if start == len(src) {
		if eof {
			return src[start:], start, true
		}
		return nil, 0, false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		if !eof {
			return nil, 0, false
		}
		return trimCR(src[start:]), len(src), true
	}
	end := start + i
	return trimCR(src[start:end]), end + 1, true
}

func openingDelimiter(line []byte) (string, bool) {
	switch string(bytes.TrimSpace(trimBOM(line))) {
	case "---":
		return "---", true
	case "+++":
		return "+++", true
	case ";;;":
		return ";;;", true
	}
	return "", false
}

// metadataLikely reports whether a line inside a front matter candidate
// looks like metadata rather than document text.
func metadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return true
	}
	return bytes.IndexByte(trimmed, ':') >= 0 || bytes.IndexByte(trimmed, '=') >= 0
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
