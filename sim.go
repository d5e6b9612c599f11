package mdr

import (
	"bufio"
	"fmt"
	"io"
	"time"
	"unicode/utf8"
)

// StreamSimulateRequest configures StreamSimulate.
type StreamSimulateRequest struct {
	Reader    io.Reader
	Writer    io.Writer
	Width     int
	Theme     Theme
	ChunkSize int
	Delay     time.Duration
	Options   []RenderOption
}

// StreamSimulate reads Markdown from Reader and feeds it to the renderer in
// fixed-size rune chunks with an optional delay between them. This is
// intended for reproducing inference token timing from a static file.
func StreamSimulate(req StreamSimulateRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("simulate: Reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("simulate: Writer is nil")
	}
	if req.ChunkSize <= 0 {
		return fmt.Errorf("simulate: ChunkSize must be > 0")
	}
	sink := NewTerminalSink(req.Writer, req.Width, req.Theme, req.Options...)
	renderer := rendererPool.Get().(*Renderer)
	renderer.Reset(sink)
	reader := readerPool.Get().(*bufio.Reader)
	reader.Reset(req.Reader)
	var smallBuf [256]rune
	buf := smallBuf[:0]
	if req.ChunkSize > len(smallBuf) {
		buf = make([]rune, 0, req.ChunkSize)
	}
	first := true
	var retErr error
	for {
		r, size, err := reader.ReadRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			retErr = fmt.Errorf("simulate: read: %w", err)
			goto done
		}
		if r == utf8.RuneError && size == 1 {
			continue
		}
		if isControlRune(r) {
			continue
		}
		buf = append(buf, r)
		if len(buf) >= req.ChunkSize {
			if err := simulateFeed(renderer, buf, req.Delay, first); err != nil {
				retErr = err
				goto done
			}
			first = false
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		if err := simulateFeed(renderer, buf, req.Delay, first); err != nil {
			retErr = err
			goto done
		}
	}
	if err := renderer.Finalize(); err != nil {
		retErr = err
	}
done:
	renderer.Reset(nil)
	rendererPool.Put(renderer)
	reader.Reset(nil)
	readerPool.Put(reader)
	return retErr
}

func simulateFeed(r *Renderer, buf []rune, delay time.Duration, first bool) error {
	if len(buf) == 0 {
		return nil
	}
	if delay > 0 && !first {
		time.Sleep(delay)
	}
	if err := r.Feed(string(buf)); err != nil {
		return fmt.Errorf("simulate: feed: %w", err)
	}
	return nil
}
