// Package palette defines the color palettes behind the built-in themes.
package palette

// Palette holds the colors of one theme. Values are hex strings such as
// "#58a6ff" or ANSI indexes such as "8", both accepted by lipgloss.Color.
type Palette struct {
	H1, H2, H3, H4, H5, H6 string

	InlineCode   string
	Link         string
	QuoteBorder  string
	TableBorder  string
	TableHeader  string
	ListMarker   string
	CheckedBox   string
	UncheckedBox string
	Rule         string
	Note         string
	Highlight    string

	// ChromaStyle names the chroma syntax style used for fenced code.
	ChromaStyle string
}

var GithubDark = Palette{
	H1: "#58a6ff", H2: "#79c0ff", H3: "#96cbfe", H4: "#b4d7fd", H5: "#c8e1fc", H6: "#dcebfb",
	InlineCode:   "#c99eff",
	Link:         "#58a6ff",
	QuoteBorder:  "8",
	TableBorder:  "8",
	TableHeader:  "#58a6ff",
	ListMarker:   "#58a6ff",
	CheckedBox:   "#2ea043",
	UncheckedBox: "8",
	Rule:         "8",
	Note:         "#e5c07b",
	Highlight:    "#ffff00",
	ChromaStyle:  "monokai",
}

var Monokai = Palette{
	H1: "#f92672", H2: "#66d9ef", H3: "#a6e22e", H4: "#fd971f", H5: "#ae81ff", H6: "#e6db74",
	InlineCode:   "#ae81ff",
	Link:         "#66d9ef",
	QuoteBorder:  "#75715e",
	TableBorder:  "#75715e",
	TableHeader:  "#f92672",
	ListMarker:   "#66d9ef",
	CheckedBox:   "#a6e22e",
	UncheckedBox: "#75715e",
	Rule:         "#75715e",
	Note:         "#e6db74",
	Highlight:    "#e6db74",
	ChromaStyle:  "monokai",
}

var Dracula = Palette{
	H1: "#ff79c6", H2: "#bd93f9", H3: "#8be9fd", H4: "#50fa7b", H5: "#ffb86c", H6: "#f1fa8c",
	InlineCode:   "#bd93f9",
	Link:         "#8be9fd",
	QuoteBorder:  "#6272a4",
	TableBorder:  "#6272a4",
	TableHeader:  "#ff79c6",
	ListMarker:   "#bd93f9",
	CheckedBox:   "#50fa7b",
	UncheckedBox: "#6272a4",
	Rule:         "#6272a4",
	Note:         "#f1fa8c",
	Highlight:    "#f1fa8c",
	ChromaStyle:  "dracula",
}

var Nord = Palette{
	H1: "#88c0d0", H2: "#81a1c1", H3: "#5e81ac", H4: "#8fbcbb", H5: "#a3be8c", H6: "#bf616a",
	InlineCode:   "#b48ead",
	Link:         "#88c0d0",
	QuoteBorder:  "#4c566a",
	TableBorder:  "#4c566a",
	TableHeader:  "#88c0d0",
	ListMarker:   "#88c0d0",
	CheckedBox:   "#a3be8c",
	UncheckedBox: "#4c566a",
	Rule:         "#4c566a",
	Note:         "#ebcb8b",
	Highlight:    "#ebcb8b",
	ChromaStyle:  "nord",
}

var OneDark = Palette{
	H1: "#e06c75", H2: "#d19a66", H3: "#e5c07b", H4: "#98c379", H5: "#56b6c2", H6: "#61afef",
	InlineCode:   "#c678dd",
	Link:         "#61afef",
	QuoteBorder:  "#5c6370",
	TableBorder:  "#5c6370",
	TableHeader:  "#e06c75",
	ListMarker:   "#61afef",
	CheckedBox:   "#98c379",
	UncheckedBox: "#5c6370",
	Rule:         "#5c6370",
	Note:         "#e5c07b",
	Highlight:    "#e5c07b",
	ChromaStyle:  "onedark",
}

var SolarizedDark = Palette{
	H1: "#268bd2", H2: "#2aa198", H3: "#859900", H4: "#b58900", H5: "#cb4b16", H6: "#d33682",
	InlineCode:   "#6c71c4",
	Link:         "#268bd2",
	QuoteBorder:  "#586e75",
	TableBorder:  "#586e75",
	TableHeader:  "#859900",
	ListMarker:   "#268bd2",
	CheckedBox:   "#859900",
	UncheckedBox: "#586e75",
	Rule:         "#586e75",
	Note:         "#b58900",
	Highlight:    "#b58900",
	ChromaStyle:  "solarized-dark",
}

var SolarizedLight = Palette{
	H1: "#268bd2", H2: "#2aa198", H3: "#859900", H4: "#b58900", H5: "#cb4b16", H6: "#d33682",
	InlineCode:   "#6c71c4",
	Link:         "#268bd2",
	QuoteBorder:  "#93a1a1",
	TableBorder:  "#93a1a1",
	TableHeader:  "#859900",
	ListMarker:   "#268bd2",
	CheckedBox:   "#859900",
	UncheckedBox: "#93a1a1",
	Rule:         "#93a1a1",
	Note:         "#b58900",
	Highlight:    "#b58900",
	ChromaStyle:  "solarized-light",
}
