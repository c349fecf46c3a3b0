package bignum

import "fmt"

// formatNumber writes an unsigned text body, such as "12345" or "1/3",
// honouring the width and flags of state.
// The following verbs are supported: %d, %s, %v, %q.
// Unsupported verbs are written as "%!x(name=text)", like in package fmt.
func formatNumber(state fmt.State, verb rune, neg bool, body []byte, name string) {

	// Arithmetic sign
	rsign := 0
	if neg || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(body) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case neg:
			buf = append(buf, '-')
		case state.Flag('+'):
			buf = append(buf, '+')
		default:
			buf = append(buf, ' ')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, body...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'd', 'D':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(" + name + "="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
