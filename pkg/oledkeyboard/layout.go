package oledkeyboard

// KeyboardMode selects which of the three layouts is active.
type KeyboardMode int

const (
	ModeUpper KeyboardMode = iota
	ModeLower
	ModeSymbols
)

func (m KeyboardMode) String() string {
	switch m {
	case ModeLower:
		return "lower"
	case ModeSymbols:
		return "symbols"
	default:
		return "upper"
	}
}

const (
	KeyRows  = 4
	KeyCols  = 8
	KeyCount = KeyRows * KeyCols
)

// Special key labels. Any other label is typed verbatim.
const (
	KeyEnter     = ">"
	KeyBackspace = "<"
	KeySpace     = "_"
	KeyShift     = "Aa"
	KeySymbols   = "?#"
)

// Layout is a fixed grid of key labels, row major.
type Layout [KeyCount]string

var upperLayout = Layout{
	"A", "B", "C", "D", "E", "F", "G", "H",
	"I", "J", "K", "L", "M", "N", "O", "P",
	"Q", "R", "S", "T", "U", "V", "W", "X",
	"Aa", "?#", "<", "_", ".", "Y", "Z", ">",
}

var lowerLayout = Layout{
	"a", "b", "c", "d", "e", "f", "g", "h",
	"i", "j", "k", "l", "m", "n", "o", "p",
	"q", "r", "s", "t", "u", "v", "w", "x",
	"Aa", "?#", "<", "_", ".", "y", "z", ">",
}

var symbolsLayout = Layout{
	"1", "2", "3", "4", "5", "6", "7", "8",
	"9", "0", "@", "#", "$", "%", "&", "*",
	"-", "+", "=", "/", "\\", "(", ")", "!",
	"Aa", "?#", "<", "_", ".", "?", ",", ">",
}

// LayoutFor returns the grid for a mode. Unknown modes fall back to upper case.
func LayoutFor(mode KeyboardMode) *Layout {
	switch mode {
	case ModeLower:
		return &lowerLayout
	case ModeSymbols:
		return &symbolsLayout
	default:
		return &upperLayout
	}
}

// Label returns the label at index, or "" when index is outside the grid.
func (l *Layout) Label(index int) string {
	if index < 0 || index >= KeyCount {
		return ""
	}
	return l[index]
}

// RowCol converts a key index to its grid position.
func RowCol(index int) (row, col int) {
	return index / KeyCols, index % KeyCols
}

func IsSpecialKey(label string) bool {
	switch label {
	case KeyEnter, KeyBackspace, KeySpace, KeyShift, KeySymbols:
		return true
	}
	return false
}
