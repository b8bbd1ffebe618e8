package assembly

// Color pairs a display name with a lipgloss-compatible ANSI 256 code.
type Color struct {
	Name string
	Code string
}

// Palette is the assembly color rotation. Index N of an assembly maps
// to Palette[N mod len(Palette)], so colors wrap once the palette is
// exhausted.
var Palette = []Color{
	{Name: "Blue", Code: "33"},
	{Name: "Green", Code: "28"},
	{Name: "Orange", Code: "214"},
	{Name: "Purple", Code: "170"},
	{Name: "Red", Code: "196"},
	{Name: "Teal", Code: "37"},
	{Name: "Yellow", Code: "226"},
	{Name: "Pink", Code: "212"},
	{Name: "Cyan", Code: "51"},
	{Name: "Lime", Code: "118"},
}

// ColorOf returns the display color for an assembly index. Negative
// indices are treated as zero.
func ColorOf(index int) Color {
	if index < 0 {
		index = 0
	}
	return Palette[index%len(Palette)]
}
