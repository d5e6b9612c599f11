// Package mdr renders Markdown to styled terminal output.
//
// This package is built for streaming: fragments are parsed incrementally
// as they arrive, so output from an LLM or a slow network connection starts
// painting immediately. Each input line is classified once, complete blocks
// are emitted as soon as their last line is seen, and only the one block
// still open (a fenced code block, table, quote, list, or paragraph) is
// buffered.
//
// Core properties:
//   - Streaming-first parsing from io.Reader or per-fragment Feed calls
//   - At most one open block buffered at any time
//   - Output identical no matter how the input is split into fragments
//   - Theme-driven styling via lipgloss, syntax highlighting via chroma
//
// Example:
//
//	reader := strings.NewReader("# Hello\n\nMarkdown in, styled text out.\n")
//	err := mdr.Render(mdr.RenderRequest{
//		Reader: reader,
//		Writer: os.Stdout,
//		Width:  80,
//		Theme:  mdr.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// For incremental feeding, construct a Renderer over a TerminalSink and
// call Feed for each fragment, then Finalize when the stream ends. Behavior
// can be customized with RenderOptions such as OSC 8 hyperlink support.
package mdr
