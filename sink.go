package mdr

// Sink receives finished blocks from the streaming renderer.
type Sink interface {
	WriteBlock(Block) error
	Flush() error
	Width() int
	SetWidth(int)
}
