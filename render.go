package mdr

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"unicode/utf8"
)

var rendererPool = sync.Pool{
	New: func() any {
		return NewRenderer(nil)
	},
}

var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, 4096)
	},
}

var scratchPool = sync.Pool{
	New: func() any {
		return &parseScratch{}
	},
}

// parseScratch holds the per-call read buffers so repeated renders
// reuse them.
type parseScratch struct {
	readBuf  [4096]byte
	cleanBuf [4096]byte
	front    frontMatterFilter
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []RenderOption
}

// ParseRequest configures Parse.
type ParseRequest struct {
	Reader io.Reader
	Sink   Sink
}

// Render reads Markdown from req.Reader and writes styled terminal
// output to req.Writer through a TerminalSink.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	sink := NewTerminalSink(req.Writer, req.Width, req.Theme, req.Options...)
	return Parse(ParseRequest{Reader: req.Reader, Sink: sink})
}

// Parse streams Markdown from req.Reader into req.Sink. Input is
// sanitized (control runes and invalid sequences dropped, a rune split
// across reads carried over) and leading front matter is filtered out
// before lines reach the renderer.
func Parse(req ParseRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("parse: reader is nil")
	}
	if req.Sink == nil {
		return fmt.Errorf("parse: sink is nil")
	}
	renderer := rendererPool.Get().(*Renderer)
	renderer.Reset(req.Sink)
	reader := readerPool.Get().(*bufio.Reader)
	reader.Reset(req.Reader)
	scratch := scratchPool.Get().(*parseScratch)
	scratch.front.reset()

	var tailBuf [utf8.UTFMax]byte
	tailLen := 0
	var retErr error
	for {
		n, err := reader.Read(scratch.readBuf[:])
		if n > 0 {
			chunk := scratch.readBuf[:n]
			if tailLen > 0 {
				need := utf8.UTFMax - tailLen
				if need > len(chunk) {
					need = len(chunk)
				}
				var combinedBuf [utf8.UTFMax * 2]byte
				combined := combinedBuf[:tailLen+need]
				copy(combined, tailBuf[:tailLen])
				copy(combined[tailLen:], chunk[:need])
				var cleanedBuf [utf8.UTFMax * 2]byte
				clean, rest := sanitizeChunk(cleanedBuf[:], combined)
				if err := feedFiltered(renderer, &scratch.front, clean); err != nil {
					retErr = fmt.Errorf("parse: %w", err)
					goto done
				}
				tailLen = copy(tailBuf[:], rest)
				chunk = chunk[need:]
			}
			if len(chunk) > 0 {
				clean, rest := sanitizeChunk(scratch.cleanBuf[:len(chunk)], chunk)
				if err := feedFiltered(renderer, &scratch.front, clean); err != nil {
					retErr = fmt.Errorf("parse: %w", err)
					goto done
				}
				tailLen = copy(tailBuf[:], rest)
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			retErr = fmt.Errorf("parse: read: %w", err)
			goto done
		}
	}
	if trailing := scratch.front.finish(); len(trailing) > 0 {
		if err := renderer.Feed(string(trailing)); err != nil {
			retErr = fmt.Errorf("parse: %w", err)
			goto done
		}
	}
	if err := renderer.Finalize(); err != nil {
		retErr = fmt.Errorf("parse: %w", err)
	}
done:
	renderer.Reset(nil)
	rendererPool.Put(renderer)
	readerPool.Put(reader)
	scratchPool.Put(scratch)
	return retErr
}

func feedFiltered(r *Renderer, front *frontMatterFilter, clean []byte) error {
	if len(clean) == 0 {
		return nil
	}
	filtered := front.process(clean)
	if len(filtered) == 0 {
		return nil
	}
	return r.Feed(string(filtered))
}
