package mdr

import (
	"bytes"
	"regexp"
	"testing"
)

var ansiRegexp = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")
var osc8Regexp = regexp.MustCompile("\x1b\\]8;;.*?\x1b\\\\")

func stripANSI(s string) string {
	s = ansiRegexp.ReplaceAllString(s, "")
	s = osc8Regexp.ReplaceAllString(s, "")
	return s
}

func renderStream(t *testing.T, src []byte, width int) string {
	t.Helper()
	return renderStreamWithOptions(t, src, width, WithOSC8(false))
}

func renderStreamWithOptions(t *testing.T, src []byte, width int, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  bytes.NewReader(src),
		Writer:  &out,
		Width:   width,
		Theme:   DefaultTheme(),
		Options: opts,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

// captureSink records emitted blocks for structural assertions.
type captureSink struct {
	blocks []Block
	width  int
}

func (c *captureSink) WriteBlock(b Block) error {
	c.blocks = append(c.blocks, b)
	return nil
}

func (c *captureSink) Flush() error { return nil }

func (c *captureSink) Width() int {
	if c.width > 0 {
		return c.width
	}
	return 80
}

func (c *captureSink) SetWidth(w int) { c.width = w }

// captureBlocks feeds the fragments through a fresh renderer and
// returns every block emitted up to and including finalize.
func captureBlocks(t *testing.T, fragments ...string) []Block {
	t.Helper()
	sink := &captureSink{}
	r := NewRenderer(sink)
	for _, fragment := range fragments {
		if err := r.Feed(fragment); err != nil {
			t.Fatalf("feed %q: %v", fragment, err)
		}
	}
	if err := r.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	return sink.blocks
}

func spanText(spans []Span) string {
	var b bytes.Buffer
	for _, span := range spans {
		b.WriteString(span.Text)
	}
	return b.String()
}
