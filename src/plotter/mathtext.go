package plotter

import "strings"

// plainMath flattens the small mathtext subset used in labels ($k$, $F_1$, $np^D$,
// [$\%$]) into text the chart fonts can draw: dollars and braces vanish, subscripts
// are inlined and escaped characters lose their backslash. Text outside $...$ is kept.
func plainMath(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}
	var b strings.Builder
	inMath := false
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case r == '\\' && i+1 < len(rs):
			i++
			b.WriteRune(rs[i])
		case r == '$':
			inMath = !inMath
		case inMath && (r == '_' || r == '{' || r == '}'):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
