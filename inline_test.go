package mdr

import (
	"reflect"
	"testing"
)

func TestExtractSpans(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		want []Span
	}{
		{
			name: "plain",
			text: "just words",
			want: []Span{{Text: "just words"}},
		},
		{
			name: "code span",
			text: "use `go test` now",
			want: []Span{
				{Text: "use "},
				{Text: "go test", Role: RoleCode},
				{Text: " now"},
			},
		},
		{
			name: "bold",
			text: "**hi**",
			want: []Span{{Text: "hi", Role: RoleBold}},
		},
		{
			name: "bold underscores",
			text: "__hi__",
			want: []Span{{Text: "hi", Role: RoleBold}},
		},
		{
			name: "italic",
			text: "a *slanted* word",
			want: []Span{
				{Text: "a "},
				{Text: "slanted", Role: RoleItalic},
				{Text: " word"},
			},
		},
		{
			name: "bold italic",
			text: "***loud***",
			want: []Span{{Text: "loud", Role: RoleBoldItalic}},
		},
		{
			name: "strike and highlight",
			text: "~~old~~ ==new==",
			want: []Span{
				{Text: "old", Role: RoleStrike},
				{Text: " "},
				{Text: "new", Role: RoleHighlight},
			},
		},
		{
			name: "code wins over bold",
			text: "`**not bold**`",
			want: []Span{{Text: "**not bold**", Role: RoleCode}},
		},
		{
			name: "link",
			text: "read [the docs](https://go.dev/doc) first",
			want: []Span{
				{Text: "read "},
				{Text: "the docs", Role: RoleLink, URL: "https://go.dev/doc"},
				{Text: " first"},
			},
		},
		{
			name: "image not reparsed as link",
			text: "![alt text](img.png)",
			want: []Span{{Text: "alt text", Role: RoleImage, URL: "img.png"}},
		},
		{
			name: "angle link",
			text: "<https://go.dev>",
			want: []Span{{Text: "https://go.dev", Role: RoleLink, URL: "https://go.dev"}},
		},
		{
			name: "line break",
			text: "one<br>two",
			want: []Span{
				{Text: "one"},
				{Role: RoleBreak},
				{Text: "two"},
			},
		},
		{
			name: "inline math",
			text: `equals \(a+b\) here`,
			want: []Span{
				{Text: "equals "},
				{Text: "a+b", Role: RoleMath},
				{Text: " here"},
			},
		},
		{
			name: "display math",
			text: `\[x^2\]`,
			want: []Span{
				{Role: RoleBreak},
				{Text: "x^2", Role: RoleMath},
				{Role: RoleBreak},
			},
		},
		{
			name: "emoji shortcode",
			text: "ship it :rocket:",
			want: []Span{
				{Text: "ship it "},
				{Text: "\U0001F680"},
			},
		},
		{
			name: "unknown emoji stays literal",
			text: ":not_an_emoji_xyz:",
			want: []Span{{Text: ":not_an_emoji_xyz:"}},
		},
		{
			name: "footnote ref without table stays literal",
			text: "see [^a]",
			want: []Span{{Text: "see [^a]"}},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := extractSpans(tc.text, nil)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("extractSpans(%q)\n got %+v\nwant %+v", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractSpansFootnoteRefs(t *testing.T) {
	t.Parallel()

	var notes footnoteTable
	got := extractSpans("first[^b] then[^a] again[^b]", &notes)
	want := []Span{
		{Text: "first"},
		{Text: "1", Role: RoleFootnoteRef, URL: "b"},
		{Text: " then"},
		{Text: "2", Role: RoleFootnoteRef, URL: "a"},
		{Text: " again"},
		{Text: "1", Role: RoleFootnoteRef, URL: "b"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("footnote refs\n got %+v\nwant %+v", got, want)
	}
}

func TestInlineIncomplete(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "complete sentence", text: "all closed **here** fine", want: false},
		{name: "open backtick", text: "code `starts", want: true},
		{name: "open bold", text: "this is **important", want: true},
		{name: "open italic", text: "an *emphasis", want: true},
		{name: "star bullet exempt", text: "* bullet text", want: false},
		{name: "open underscore", text: "snake _case", want: true},
		{name: "open strike", text: "cross ~~this", want: true},
		{name: "open highlight", text: "mark ==this", want: true},
		{name: "open bracket", text: "a [link starts", want: true},
		{name: "open paren after bracket", text: "[text](http://exam", want: true},
		{name: "bare paren no bracket", text: "an aside (like this", want: false},
		{name: "open inline math", text: `math \(a+b`, want: true},
		{name: "open display math", text: `math \[x^2`, want: true},
		{name: "open angle tag", text: "a <br is coming", want: true},
		{name: "angle closed", text: "a <br> done", want: false},
		{name: "less-than comparison", text: "x < 10", want: false},
		{name: "balanced everything", text: "`a` **b** *c* _d_ ~~e~~ ==f== [g](h)", want: false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := inlineIncomplete(tc.text); got != tc.want {
				t.Fatalf("inlineIncomplete(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}
