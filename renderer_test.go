package mdr

import (
	"reflect"
	"testing"
)

func blockKinds(blocks []Block) []blockKind {
	kinds := make([]blockKind, len(blocks))
	for i, b := range blocks {
		kinds[i] = b.Kind
	}
	return kinds
}

func TestFeedChunkingIsInvariant(t *testing.T) {
	t.Parallel()

	src := "# Héading\n\nplain paragraph with **bold** and :rocket:\n\n" +
		"```go\nfmt.Println(\"hi\")\n```\n\n" +
		"| A | B |\n|---|---|\n| 1 | 2 |\n\n" +
		"> quoted\n> more\n\n" +
		"- one\n- two\n  - nested\n\n" +
		"see note[^x]\n\n[^x]: the note\n\ntrailing tail"

	whole := captureBlocks(t, src)

	var parts []string
	for i := 0; i < len(src); i += 3 {
		end := i + 3
		if end > len(src) {
			end = len(src)
		}
		parts = append(parts, src[i:end])
	}
	chunked := captureBlocks(t, parts...)

	if !reflect.DeepEqual(whole, chunked) {
		t.Fatalf("chunked feed diverged\nwhole:   %+v\nchunked: %+v", whole, chunked)
	}

	var bytewise []string
	for i := 0; i < len(src); i++ {
		bytewise = append(bytewise, src[i:i+1])
	}
	if got := captureBlocks(t, bytewise...); !reflect.DeepEqual(whole, got) {
		t.Fatalf("byte-wise feed diverged\nwhole:    %+v\nbytewise: %+v", whole, got)
	}
}

func TestMarkerSplitAcrossFragments(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "- [50", "%] done\n")
	if len(blocks) != 1 || blocks[0].Kind != BlockProgress {
		t.Fatalf("blocks = %+v, want one progress block", blocks)
	}
	if blocks[0].Percent != 50 || spanText(blocks[0].Spans) != "done" {
		t.Fatalf("progress = %d%% %q, want 50%% %q", blocks[0].Percent, spanText(blocks[0].Spans), "done")
	}
}

func TestParagraphAccumulation(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "line one\nline two\n\nsecond para\n")
	if got, want := blockKinds(blocks), []blockKind{BlockParagraph, BlockParagraph}; !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if got := spanText(blocks[0].Spans); got != "line one line two" {
		t.Fatalf("joined paragraph = %q", got)
	}
}

func TestParagraphDeferredWhileMarkersOpen(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "**bold\n\nmore**\n\n")
	if len(blocks) != 1 || blocks[0].Kind != BlockParagraph {
		t.Fatalf("blocks = %+v, want one paragraph", blocks)
	}
	want := []Span{{Text: "bold more", Role: RoleBold}}
	if !reflect.DeepEqual(blocks[0].Spans, want) {
		t.Fatalf("spans = %+v, want %+v", blocks[0].Spans, want)
	}
}

func TestUnbalancedMarkersFlushLiteralAtFinalize(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "dangling **marker\n")
	if len(blocks) != 1 || blocks[0].Kind != BlockParagraph {
		t.Fatalf("blocks = %+v, want one paragraph", blocks)
	}
	if got := spanText(blocks[0].Spans); got != "dangling **marker" {
		t.Fatalf("text = %q, want literal markers", got)
	}
}

func TestHeadingFlushesOpenParagraph(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "intro text\n# Title\n")
	if got, want := blockKinds(blocks), []blockKind{BlockParagraph, BlockHeading}; !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if blocks[1].Level != 1 || spanText(blocks[1].Spans) != "Title" {
		t.Fatalf("heading = level %d %q", blocks[1].Level, spanText(blocks[1].Spans))
	}
}

func TestCodeFence(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "```go\nfunc main() {}\n\n\t// indented\n```\n")
	if len(blocks) != 1 || blocks[0].Kind != BlockCode {
		t.Fatalf("blocks = %+v, want one code block", blocks)
	}
	code := blocks[0].Code
	if code.Language != "go" {
		t.Fatalf("language = %q, want go", code.Language)
	}
	want := []string{"func main() {}", "", "\t// indented"}
	if !reflect.DeepEqual(code.Lines, want) {
		t.Fatalf("lines = %q, want %q", code.Lines, want)
	}
}

func TestCodeFenceClosedByAnyFence(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "```go\ncode\n```python\nafter\n")
	if got, want := blockKinds(blocks), []blockKind{BlockCode, BlockParagraph}; !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if blocks[0].Code.Language != "go" {
		t.Fatalf("language = %q, want go", blocks[0].Code.Language)
	}
}

func TestUnterminatedFenceFlushedAtFinalize(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "```\nhello\n")
	if len(blocks) != 1 || blocks[0].Kind != BlockCode {
		t.Fatalf("blocks = %+v, want one code block", blocks)
	}
	if want := []string{"hello"}; !reflect.DeepEqual(blocks[0].Code.Lines, want) {
		t.Fatalf("lines = %q, want %q", blocks[0].Code.Lines, want)
	}
}

func TestMermaidFenceBecomesDiagram(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "```mermaid\nA --> B\n```\n")
	if len(blocks) != 1 || blocks[0].Kind != BlockDiagram {
		t.Fatalf("blocks = %+v, want one diagram block", blocks)
	}
}

func TestTableNormalization(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "| A | B |\n|---|---|\n| 1 |\n| x | y | z |\n\n")
	if len(blocks) != 1 || blocks[0].Kind != BlockTable {
		t.Fatalf("blocks = %+v, want one table block", blocks)
	}
	table := blocks[0].Table
	if len(table.Header) != 2 {
		t.Fatalf("header width = %d, want 2", len(table.Header))
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	if got := spanText(table.Rows[0][1].Spans); got != "" {
		t.Fatalf("short row pad = %q, want empty cell", got)
	}
	if got := spanText(table.Rows[1][1].Spans); got != "y" {
		t.Fatalf("long row cell = %q, want y (extras dropped)", got)
	}
	if len(table.Rows[1]) != 2 {
		t.Fatalf("long row width = %d, want 2", len(table.Rows[1]))
	}
}

func TestTableWithoutSeparatorDemotes(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "| not | a table |\nplain follows\n")
	if len(blocks) != 1 || blocks[0].Kind != BlockParagraph {
		t.Fatalf("blocks = %+v, want one paragraph", blocks)
	}
	if got := spanText(blocks[0].Spans); got != "| not | a table | plain follows" {
		t.Fatalf("demoted text = %q", got)
	}
}

func TestQuoteRunAndLazyContinuation(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "> first\ncontinues here\nSecond paragraph.\n")
	if got, want := blockKinds(blocks), []blockKind{BlockQuote, BlockParagraph}; !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	quote := blocks[0].Quote
	if len(quote.Lines) != 2 {
		t.Fatalf("quote lines = %d, want 2", len(quote.Lines))
	}
	if got := spanText(quote.Lines[1].Spans); got != "continues here" {
		t.Fatalf("continuation = %q", got)
	}
	if got := spanText(blocks[1].Spans); got != "Second paragraph." {
		t.Fatalf("following paragraph = %q", got)
	}
}

func TestNestedQuoteLevels(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "> outer\n>> inner\n\n")
	quote := blocks[0].Quote
	if quote.Lines[0].Level != 1 || quote.Lines[1].Level != 2 {
		t.Fatalf("levels = %d, %d, want 1, 2", quote.Lines[0].Level, quote.Lines[1].Level)
	}
}

func TestCalloutQuote(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "> [!WARNING] disk almost full\n> free some space\n\n")
	quote := blocks[0].Quote
	if quote.Callout != "WARNING" || quote.Title != "disk almost full" {
		t.Fatalf("callout = %q %q", quote.Callout, quote.Title)
	}
	if len(quote.Lines) != 1 || spanText(quote.Lines[0].Spans) != "free some space" {
		t.Fatalf("body = %+v, want marker line excluded", quote.Lines)
	}

	blocks = captureBlocks(t, "> Note: colon form works too\n\n")
	quote = blocks[0].Quote
	if quote.Callout != "NOTE" || quote.Title != "colon form works too" {
		t.Fatalf("colon callout = %q %q", quote.Callout, quote.Title)
	}
}

func TestBoxQuote(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "│ boxed text\n\n")
	if len(blocks) != 1 || blocks[0].Kind != BlockQuote {
		t.Fatalf("blocks = %+v, want one quote block", blocks)
	}
	if got := spanText(blocks[0].Quote.Lines[0].Spans); got != "boxed text" {
		t.Fatalf("box quote text = %q", got)
	}
}

func TestListDepthNormalization(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "- a\n- b\n  - c\n  - d\n- e\n    - f\n\n")
	items := blocks[0].List.Items
	wantDepths := []int{0, 0, 1, 1, 0, 1}
	for i, item := range items {
		if item.Depth != wantDepths[i] {
			t.Fatalf("item %d depth = %d, want %d (all: %+v)", i, item.Depth, wantDepths[i], items)
		}
	}
}

func TestOrderedListNumbering(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "1. a\n9. b\n   1. x\n   7. y\n2. c\n\n")
	items := blocks[0].List.Items
	wantNumbers := []int{1, 2, 1, 2, 3}
	for i, item := range items {
		if !item.Ordered || item.Number != wantNumbers[i] {
			t.Fatalf("item %d = ordered %v number %d, want number %d", i, item.Ordered, item.Number, wantNumbers[i])
		}
	}
}

func TestListClosedByOtherBlock(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "1. one\n```\ncode\n```\n")
	if got, want := blockKinds(blocks), []blockKind{BlockList, BlockCode}; !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestCheckboxBlocks(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "- [x] shipped\n- [ ] pending\n")
	if got, want := blockKinds(blocks), []blockKind{BlockCheckbox, BlockCheckbox}; !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if !blocks[0].Checked || blocks[1].Checked {
		t.Fatalf("checked flags = %v, %v", blocks[0].Checked, blocks[1].Checked)
	}
}

func TestDefinitionBlock(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "Latency  :  time before the first byte\n")
	if len(blocks) != 1 || blocks[0].Kind != BlockDefinition {
		t.Fatalf("blocks = %+v, want one definition", blocks)
	}
	if blocks[0].Term != "Latency" {
		t.Fatalf("term = %q", blocks[0].Term)
	}
}

func TestRuleBlock(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "above\n---\nbelow\n")
	if got, want := blockKinds(blocks), []blockKind{BlockParagraph, BlockRule, BlockParagraph}; !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestFootnoteNumberingFollowsReferenceOrder(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "[^a]: alpha\n[^b]: beta\n\nsee[^b] and[^a]\n\n")
	if got, want := blockKinds(blocks), []blockKind{BlockParagraph, BlockFootnotes}; !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	notes := blocks[1].Notes
	if len(notes) != 2 {
		t.Fatalf("notes = %+v, want 2 entries", notes)
	}
	if notes[0].Label != "b" || notes[0].Index != 1 || spanText(notes[0].Spans) != "beta" {
		t.Fatalf("first note = %+v, want b/1/beta", notes[0])
	}
	if notes[1].Label != "a" || notes[1].Index != 2 || spanText(notes[1].Spans) != "alpha" {
		t.Fatalf("second note = %+v, want a/2/alpha", notes[1])
	}
}

func TestUnreferencedFootnoteAppended(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "ref[^one]\n\n[^one]: used\n[^two]: orphan\n")
	notes := blocks[len(blocks)-1].Notes
	if len(notes) != 2 || notes[1].Label != "two" || notes[1].Index != 2 {
		t.Fatalf("notes = %+v, want orphan appended last", notes)
	}
}

func TestUndefinedFootnoteKeepsEmptyText(t *testing.T) {
	t.Parallel()

	blocks := captureBlocks(t, "ref[^missing]\n")
	notes := blocks[len(blocks)-1].Notes
	if len(notes) != 1 || notes[0].Label != "missing" || len(notes[0].Spans) != 0 {
		t.Fatalf("notes = %+v, want single empty entry", notes)
	}
}

func TestFootnoteDefinitionEmitsNothingImmediately(t *testing.T) {
	t.Parallel()

	sink := &captureSink{}
	r := NewRenderer(sink)
	if err := r.Feed("[^x]: definition text\n"); err != nil {
		t.Fatalf("feed: %v", err)
	}
	if len(sink.blocks) != 0 {
		t.Fatalf("definition emitted %+v before finalize", sink.blocks)
	}
	if err := r.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if len(sink.blocks) != 1 || sink.blocks[0].Kind != BlockFootnotes {
		t.Fatalf("blocks = %+v, want footnote section only", sink.blocks)
	}
}

func TestFinalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	sink := &captureSink{}
	r := NewRenderer(sink)
	if err := r.Feed("text\n"); err != nil {
		t.Fatalf("feed: %v", err)
	}
	if err := r.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	n := len(sink.blocks)
	if err := r.Finalize(); err != nil {
		t.Fatalf("second finalize: %v", err)
	}
	if len(sink.blocks) != n {
		t.Fatalf("second finalize emitted more blocks: %d -> %d", n, len(sink.blocks))
	}
}

func TestRendererWriteImplementsWriter(t *testing.T) {
	t.Parallel()

	sink := &captureSink{}
	r := NewRenderer(sink)
	n, err := r.Write([]byte("hello\n"))
	if err != nil || n != 6 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	if err := r.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if len(sink.blocks) != 1 || spanText(sink.blocks[0].Spans) != "hello" {
		t.Fatalf("blocks = %+v", sink.blocks)
	}
}

func TestResetClearsState(t *testing.T) {
	t.Parallel()

	first := &captureSink{}
	r := NewRenderer(first)
	if err := r.Feed("```\ndangling code\n"); err != nil {
		t.Fatalf("feed: %v", err)
	}

	second := &captureSink{}
	r.Reset(second)
	if err := r.Feed("fresh\n"); err != nil {
		t.Fatalf("feed after reset: %v", err)
	}
	if err := r.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if len(first.blocks) != 0 {
		t.Fatalf("old sink received %+v", first.blocks)
	}
	if len(second.blocks) != 1 || second.blocks[0].Kind != BlockParagraph {
		t.Fatalf("blocks after reset = %+v", second.blocks)
	}
	if got := spanText(second.blocks[0].Spans); got != "fresh" {
		t.Fatalf("text after reset = %q", got)
	}
}
