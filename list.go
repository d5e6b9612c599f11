package mdr

// listAccumulator buffers a contiguous run of list items so nesting
// depths can be assigned over the whole run.
type listAccumulator struct {
	items []listRaw
}

type listRaw struct {
	width   int
	ordered bool
	number  int
	text    string
}

func (a *listAccumulator) open() {
	a.items = a.items[:0]
}

func (a *listAccumulator) add(width int, ordered bool, number int, text string) {
	a.items = append(a.items, listRaw{width: width, ordered: ordered, number: number, text: text})
}

// block assigns nesting depths and ordered numbering, then
// materializes the run. Depths come from a stack of indentation
// widths: a wider item pushes a level, a narrower one pops levels
// until the stack top fits. Ordered counters are independent per
// depth; entering a new deeper level restarts its counter while
// shallower levels resume theirs.
func (a *listAccumulator) block(notes *footnoteTable) Block {
	list := &List{Items: make([]ListItem, 0, len(a.items))}
	var stack []int
	counters := make(map[int]int)
	for _, item := range a.items {
		switch {
		case len(stack) == 0 || item.width > stack[len(stack)-1]:
			stack = append(stack, item.width)
			counters[len(stack)-1] = 0
		default:
			for len(stack) > 1 && stack[len(stack)-1] > item.width {
				stack = stack[:len(stack)-1]
			}
		}
		depth := len(stack) - 1
		number := 0
		if item.ordered {
			counters[depth]++
			number = counters[depth]
		}
		list.Items = append(list.Items, ListItem{
			Spans:   extractSpans(item.text, notes),
			Depth:   depth,
			Ordered: item.ordered,
			Number:  number,
		})
	}
	return Block{Kind: blockList, List: list}
}
