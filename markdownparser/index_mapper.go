package markdownparser

import "sort"

type indexToLine struct {
	offsets []int
}

func newIndexToLine(content []byte) *indexToLine {
	offsets := []int{0}

	for i, b := range content {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}

	return &indexToLine{offsets: offsets}
}

// lineFor returns the 0-based row holding the byte at index
func (m *indexToLine) lineFor(index int) int {
	if m == nil || index < 0 {
		return -1
	}

	pos := sort.Search(len(m.offsets), func(i int) bool {
		return m.offsets[i] > index
	})

	return pos - 1
}

// lineStart returns the index of the first byte of the row holding index
func (m *indexToLine) lineStart(index int) int {
	row := m.lineFor(index)
	if row < 0 {
		return 0
	}

	return m.offsets[row]
}
