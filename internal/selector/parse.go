package selector

import "strings"

// DefaultQuit is the sequence that abandons the prompt when typed at the end
// of the buffer.
const DefaultQuit = `\q`

// Kind tags what a buffer means once its trailing characters are considered.
type Kind int

const (
	PlainText Kind = iota
	SelectIndex
	Quit
)

func (k Kind) String() string {
	switch k {
	case PlainText:
		return "text"
	case SelectIndex:
		return "select"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is the parsed form of the input buffer. Text is the buffer with
// any trailing selector or quit sequence removed; Index is only meaningful
// for SelectIndex.
type Command struct {
	Kind  Kind
	Text  string
	Index int
}

// Parser recognises the trailing `\<digit>` selector and the quit sequence.
//
// A backslash preceded by an odd run of backslashes is escaped, so `\\1`
// is plain text that ends in a literal backslash and a digit.
type Parser struct {
	Quit string
}

func (p Parser) Parse(buf string) Command {
	if p.Quit != "" && strings.HasSuffix(buf, p.Quit) && !escaped(buf, len(buf)-len(p.Quit)) {
		return Command{Kind: Quit, Text: strings.TrimSuffix(buf, p.Quit)}
	}
	n := len(buf)
	if n >= 2 && isDigit(buf[n-1]) && buf[n-2] == '\\' && !escaped(buf, n-2) {
		return Command{Kind: SelectIndex, Text: buf[:n-2], Index: int(buf[n-1] - '0')}
	}
	return Command{Kind: PlainText, Text: buf}
}

// Query is the text candidates are ranked against: the parsed text, minus a
// lone trailing backslash that may still become a selector.
func (p Parser) Query(buf string) string {
	c := p.Parse(buf)
	if c.Kind == PlainText {
		n := len(c.Text)
		if n > 0 && c.Text[n-1] == '\\' && !escaped(c.Text, n-1) {
			return c.Text[:n-1]
		}
	}
	return c.Text
}

// escaped reports whether buf[i] is a backslash escaped by the backslashes
// right before it.
func escaped(buf string, i int) bool {
	if i < 0 || i >= len(buf) || buf[i] != '\\' {
		return false
	}
	run := 0
	for j := i - 1; j >= 0 && buf[j] == '\\'; j-- {
		run++
	}
	return run%2 == 1
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
