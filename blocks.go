package mdr

// Span is a run of inline text with one role applied.
type Span struct {
	Text string
	Role spanRole
	// URL carries the target for link and image spans and the footnote
	// label for reference spans.
	URL string
}

type spanRole uint8

// SpanRole is the exported alias of spanRole for tooling and custom sinks.
type SpanRole = spanRole

const (
	roleText spanRole = iota
	roleBold
	roleItalic
	roleBoldItalic
	roleStrike
	roleHighlight
	roleCode
	roleLink
	roleImage
	roleFootnoteRef
	roleMath
	roleBreak
)

const (
	// RoleText represents unstyled text.
	RoleText spanRole = roleText
	// RoleBold represents strong emphasis.
	RoleBold spanRole = roleBold
	// RoleItalic represents emphasis.
	RoleItalic spanRole = roleItalic
	// RoleBoldItalic represents combined strong emphasis.
	RoleBoldItalic spanRole = roleBoldItalic
	// RoleStrike represents struck-through text.
	RoleStrike spanRole = roleStrike
	// RoleHighlight represents highlighted text.
	RoleHighlight spanRole = roleHighlight
	// RoleCode represents inline code.
	RoleCode spanRole = roleCode
	// RoleLink represents link text; URL holds the target.
	RoleLink spanRole = roleLink
	// RoleImage represents an image; Text holds the alt text, URL the source.
	RoleImage spanRole = roleImage
	// RoleFootnoteRef represents a footnote reference; Text holds the
	// assigned number, URL the original label.
	RoleFootnoteRef spanRole = roleFootnoteRef
	// RoleMath represents LaTeX math kept as raw text.
	RoleMath spanRole = roleMath
	// RoleBreak represents an explicit line break.
	RoleBreak spanRole = roleBreak
)

// Block is one finished block element handed to a Sink. Kind selects
// which fields are populated.
type Block struct {
	Kind blockKind

	// Spans holds the inline content for paragraphs, headings,
	// checkboxes, progress items and definition values.
	Spans []Span

	// Level is the heading level (1..6).
	Level int
	// Indent is the nesting depth for checkbox and progress items.
	Indent int
	// Checked reports a ticked checkbox.
	Checked bool
	// Percent is the progress value (0..100).
	Percent int
	// Term is the definition term.
	Term string

	Code  *CodeBlock
	Table *Table
	Quote *Quote
	List  *List
	Notes []Footnote
}

type blockKind uint8

// BlockKind is the exported alias of blockKind for tooling and custom sinks.
type BlockKind = blockKind

const (
	blockParagraph blockKind = iota
	blockHeading
	blockRule
	blockCode
	blockDiagram
	blockTable
	blockQuote
	blockList
	blockCheckbox
	blockProgress
	blockDefinition
	blockFootnotes
)

const (
	// BlockParagraph is a plain text paragraph.
	BlockParagraph blockKind = blockParagraph
	// BlockHeading is an ATX heading; Level holds 1..6.
	BlockHeading blockKind = blockHeading
	// BlockRule is a horizontal rule.
	BlockRule blockKind = blockRule
	// BlockCode is a fenced code block.
	BlockCode blockKind = blockCode
	// BlockDiagram is a fenced mermaid block rendered as a diagram.
	BlockDiagram blockKind = blockDiagram
	// BlockTable is a pipe table.
	BlockTable blockKind = blockTable
	// BlockQuote is a blockquote or callout run.
	BlockQuote blockKind = blockQuote
	// BlockList is a run of list items.
	BlockList blockKind = blockList
	// BlockCheckbox is a task list item.
	BlockCheckbox blockKind = blockCheckbox
	// BlockProgress is a progress task item.
	BlockProgress blockKind = blockProgress
	// BlockDefinition is a definition list entry.
	BlockDefinition blockKind = blockDefinition
	// BlockFootnotes is the collected footnote section emitted at finalize.
	BlockFootnotes blockKind = blockFootnotes
)

// CodeBlock holds a fenced code block before styling.
type CodeBlock struct {
	Language string
	Lines    []string
}

// Cell is a single table cell.
type Cell struct {
	Spans []Span
}

// Table holds a normalized pipe table. Rows are padded or truncated to
// the header width before emission.
type Table struct {
	Header []Cell
	Rows   [][]Cell
}

// QuoteLine is one line of a blockquote with its nesting level (≥ 1).
type QuoteLine struct {
	Spans []Span
	Level int
}

// Quote holds a blockquote run. Callout is the uppercase keyword when
// the first line carried a callout marker, otherwise empty.
type Quote struct {
	Lines   []QuoteLine
	Callout string
	Title   string
}

// ListItem is a single list entry after depth normalization.
type ListItem struct {
	Spans   []Span
	Depth   int
	Ordered bool
	// Number is the display number for ordered items, assigned per depth.
	Number int
}

// List holds a contiguous run of list items.
type List struct {
	Items []ListItem
}

// Footnote pairs a reference number with its definition.
type Footnote struct {
	Label string
	Index int
	Spans []Span
}
