package mdr

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestValidateInput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  []byte
		want error
	}{
		{name: "plain text", src: []byte("# hello\n"), want: nil},
		{name: "utf8 text", src: []byte("héllo wörld"), want: nil},
		{name: "invalid utf8", src: []byte{0xff, 0xfe, 0xfd}, want: ErrInvalidUTF8},
		{name: "nul byte", src: []byte("hello\x00world"), want: ErrBinaryInput},
		{name: "tabs and newlines fine", src: []byte("a\tb\r\nc"), want: nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidateInput(tc.src); !errors.Is(got, tc.want) {
				t.Fatalf("ValidateInput = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidateInputControlDensity(t *testing.T) {
	t.Parallel()

	dense := append(bytes.Repeat([]byte("a"), 62), 0x01, 0x02)
	if got := ValidateInput(dense); !errors.Is(got, ErrBinaryInput) {
		t.Fatalf("dense control sample = %v, want ErrBinaryInput", got)
	}
	sparse := append(bytes.Repeat([]byte("a"), 63), 0x01)
	if got := ValidateInput(sparse); got != nil {
		t.Fatalf("sparse control sample = %v, want nil", got)
	}
}

func TestSanitizeChunk(t *testing.T) {
	t.Parallel()

	var dst [64]byte
	clean, rest := sanitizeChunk(dst[:], []byte("a\x01b\ttab\r\n"))
	if string(clean) != "ab\ttab\r\n" {
		t.Fatalf("clean = %q", clean)
	}
	if len(rest) != 0 {
		t.Fatalf("rest = %q, want empty", rest)
	}

	clean, _ = sanitizeChunk(dst[:], []byte("a\xffb"))
	if string(clean) != "ab" {
		t.Fatalf("invalid byte kept: %q", clean)
	}

	split := []byte("é")
	clean, rest = sanitizeChunk(dst[:], split[:1])
	if len(clean) != 0 || string(rest) != string(split[:1]) {
		t.Fatalf("split rune = clean %q rest %q, want carried over", clean, rest)
	}
}

func TestRenderStripsControlRunes(t *testing.T) {
	t.Parallel()

	out := stripANSI(renderStream(t, []byte("he\x01llo\n"), 80))
	if out != "hello\n" {
		t.Fatalf("control rune survived: %q", out)
	}
}

func TestFrontMatterYAMLStripped(t *testing.T) {
	t.Parallel()

	src := "---\ntitle: Doc\nauthor: me\n---\n# Hello\n"
	out := stripANSI(renderStream(t, []byte(src), 80))
	if out != "\nHello\n" {
		t.Fatalf("front matter leaked: %q", out)
	}
}

func TestFrontMatterTOMLStripped(t *testing.T) {
	t.Parallel()

	src := "+++\ntitle = \"Doc\"\n+++\nBody text\n"
	out := stripANSI(renderStream(t, []byte(src), 80))
	if out != "Body text\n" {
		t.Fatalf("front matter leaked: %q", out)
	}
}

func TestFrontMatterJSONStripped(t *testing.T) {
	t.Parallel()

	src := ";;;\n{\"title\": \"Doc\"}\n;;;\nBody text\n"
	out := stripANSI(renderStream(t, []byte(src), 80))
	if out != "Body text\n" {
		t.Fatalf("front matter leaked: %q", out)
	}
}

func TestFrontMatterWithBOM(t *testing.T) {
	t.Parallel()

	src := "\xEF\xBB\xBF---\ntitle: Doc\n---\nBody text\n"
	out := stripANSI(renderStream(t, []byte(src), 80))
	if out != "Body text\n" {
		t.Fatalf("BOM front matter leaked: %q", out)
	}
}

func TestFrontMatterOnlyAtStart(t *testing.T) {
	t.Parallel()

	src := "Intro\n\n---\ntitle: not front matter\n"
	out := stripANSI(renderStream(t, []byte(src), 80))
	if !strings.Contains(out, "Intro") {
		t.Fatalf("intro missing: %q", out)
	}
	if !strings.Contains(out, "title: not front matter") {
		t.Fatalf("mid-stream delimiter swallowed content: %q", out)
	}
	if !strings.Contains(out, strings.Repeat("─", 80)) {
		t.Fatalf("mid-stream --- not rendered as rule: %q", out)
	}
}

func TestFrontMatterUnclosedReplayed(t *testing.T) {
	t.Parallel()

	src := "---\ntitle: x\nno closing delimiter here"
	out := stripANSI(renderStream(t, []byte(src), 80))
	if !strings.Contains(out, "title: x no closing delimiter here") {
		t.Fatalf("unclosed front matter not replayed: %q", out)
	}
	if !strings.Contains(out, strings.Repeat("─", 80)) {
		t.Fatalf("replayed --- not rendered as rule: %q", out)
	}
}

func TestFrontMatterRequiresMetadataShape(t *testing.T) {
	t.Parallel()

	src := "---\nJust a sentence\n---\nBody\n"
	out := stripANSI(renderStream(t, []byte(src), 80))
	if !strings.Contains(out, "Just a sentence") {
		t.Fatalf("non-metadata content swallowed: %q", out)
	}
	if !strings.Contains(out, "Body") {
		t.Fatalf("body missing: %q", out)
	}
}

func TestFrontMatterAcrossChunkedReads(t *testing.T) {
	t.Parallel()

	src := "---\ntitle: Doc\n---\nBody text\n"
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  &drizzleReader{data: []byte(src)},
		Writer:  &out,
		Width:   80,
		Theme:   DefaultTheme(),
		Options: []RenderOption{WithOSC8(false)},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := stripANSI(out.String()); got != "Body text\n" {
		t.Fatalf("chunked front matter = %q", got)
	}
}
