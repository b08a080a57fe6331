package discord

import (
	"strconv"
	"strings"
)

// NamedColor is one entry of the color table
type NamedColor struct {
	Name  string
	Value int
}

// colorTable follows the palette of the Discord client. Default is 0, which an
// embed never writes on the wire, so Discord falls back to its theme color.
var colorTable = []NamedColor{
	{"Default", 0x000000},
	{"White", 0xFFFFFF},
	{"Aqua", 0x1ABC9C},
	{"Green", 0x57F287},
	{"Blue", 0x3498DB},
	{"Yellow", 0xFEE75C},
	{"Purple", 0x9B59B6},
	{"LuminousVividPink", 0xE91E63},
	{"Fuchsia", 0xEB459E},
	{"Gold", 0xF1C40F},
	{"Orange", 0xE67E22},
	{"Red", 0xED4245},
	{"Grey", 0x95A5A6},
	{"Navy", 0x34495E},
	{"DarkAqua", 0x11806A},
	{"DarkGreen", 0x1F8B4C},
	{"DarkBlue", 0x206694},
	{"DarkPurple", 0x71368A},
	{"DarkVividPink", 0xAD1457},
	{"DarkGold", 0xC27C0E},
	{"DarkOrange", 0xA84300},
	{"DarkRed", 0x992D22},
	{"DarkGrey", 0x979C9F},
	{"DarkerGrey", 0x7F8C8D},
	{"LightGrey", 0xBCC0C0},
	{"DarkNavy", 0x2C3E50},
	{"Blurple", 0x5865F2},
	{"Greyple", 0x99AAB5},
	{"DarkButNotBlack", 0x2C2F33},
	{"NotQuiteBlack", 0x23272A},
}

var colorIndex = buildColorIndex()

func buildColorIndex() map[string]int {
	index := make(map[string]int, len(colorTable))
	for _, c := range colorTable {
		index[normalizeColorName(c.Name)] = c.Value
	}
	return index
}

// normalizeColorName makes "dark_red", "Dark Red" and "DarkRed" the same key.
func normalizeColorName(name string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.TrimSpace(name)))
}

// Colors returns the color table in declaration order
func Colors() []NamedColor {
	out := make([]NamedColor, len(colorTable))
	copy(out, colorTable)
	return out
}

// ResolveColor turns a color name, a "#rrggbb"/"0xrrggbb" literal or a decimal
// literal into its integer value.
func ResolveColor(name string) (int, bool) {
	if value, ok := colorIndex[normalizeColorName(name)]; ok {
		return value, true
	}

	literal := strings.TrimSpace(name)
	switch {
	case strings.HasPrefix(literal, "#"):
		return parseColorLiteral(literal[1:], 16)
	case strings.HasPrefix(literal, "0x"), strings.HasPrefix(literal, "0X"):
		return parseColorLiteral(literal[2:], 16)
	default:
		return parseColorLiteral(literal, 10)
	}
}

func parseColorLiteral(s string, base int) (int, bool) {
	if s == "" {
		return 0, false
	}
	value, err := strconv.ParseInt(s, base, 32)
	if err != nil || value < 0 || value > 0xFFFFFF {
		return 0, false
	}
	return int(value), true
}
