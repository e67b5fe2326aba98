package board

import "strings"

// ToDisplayText draws the board with box characters, for the shell and the
// watch mode. Purely presentational; nothing in the engine reads it.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("╔" + strings.Repeat("═", b.w) + "╗\n")
	for y := 0; y < b.h; y++ {
		sb.WriteString("║")
		for x := 0; x < b.w; x++ {
			if b.Occupied(x, y) {
				sb.WriteString("█")
			} else {
				sb.WriteString("·")
			}
		}
		sb.WriteString("║\n")
	}
	sb.WriteString("╚" + strings.Repeat("═", b.w) + "╝\n")
	return sb.String()
}
