package mdr

import (
	"reflect"
	"testing"
)

func TestReassemblerSplitsAcrossFragments(t *testing.T) {
	t.Parallel()

	var r lineReassembler
	r.reset()

	got := r.feed("hel")
	if len(got) != 0 {
		t.Fatalf("partial fragment released lines: %v", got)
	}
	got = append([]string(nil), r.feed("lo\nwor")...)
	if want := []string{"hello"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("feed released %v, want %v", got, want)
	}
	got = append([]string(nil), r.feed("ld\n")...)
	if want := []string{"world"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("feed released %v, want %v", got, want)
	}
	if line, ok := r.finalize(); ok {
		t.Fatalf("finalize released %q, want nothing", line)
	}
}

func TestReassemblerMultipleLinesInOneFragment(t *testing.T) {
	t.Parallel()

	var r lineReassembler
	r.reset()

	got := append([]string(nil), r.feed("a\nb\nc\ntail")...)
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("feed released %v, want %v", got, want)
	}
	line, ok := r.finalize()
	if !ok || line != "tail" {
		t.Fatalf("finalize = %q, %v, want %q, true", line, ok, "tail")
	}
	if _, ok := r.finalize(); ok {
		t.Fatal("second finalize released a line")
	}
}

func TestReassemblerStripsCarriageReturns(t *testing.T) {
	t.Parallel()

	var r lineReassembler
	r.reset()

	got := append([]string(nil), r.feed("one\r\ntwo\r")...)
	if want := []string{"one"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("feed released %v, want %v", got, want)
	}
	line, ok := r.finalize()
	if !ok || line != "two" {
		t.Fatalf("finalize = %q, %v, want %q, true", line, ok, "two")
	}
}

func TestReassemblerEmptyLines(t *testing.T) {
	t.Parallel()

	var r lineReassembler
	r.reset()

	got := append([]string(nil), r.feed("\n\nx\n")...)
	if want := []string{"", "", "x"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("feed released %v, want %v", got, want)
	}
}

func TestReassemblerRuneSplitAcrossFragments(t *testing.T) {
	t.Parallel()

	var r lineReassembler
	r.reset()

	raw := []byte("héllo\n")
	// Split inside the two-byte é sequence.
	r.feed(string(raw[:2]))
	got := append([]string(nil), r.feed(string(raw[2:]))...)
	if want := []string{"héllo"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("feed released %v, want %v", got, want)
	}
}
