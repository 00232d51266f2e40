package allowlist

// Global is every character a lesson may use once the whole keyboard has
// been introduced.
const Global = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ!#$%&'()*+,-./;=@^_`~"

// builtinUnits is the cumulative keyboard progression of the standard
// course: home row first, then letters, shift, digits and symbols.
var builtinUnits = map[int]string{
	1:  "adfjkls;",
	2:  "adfjklrsu;",
	3:  "adfjklmrsuv;",
	4:  "adefijklmrsuv;",
	5:  "acdefijklmrsuv,;",
	6:  "acdefghijklmrsuv,;",
	7:  "acdefghijklmrstuvy,;",
	8:  "abcdefghijklmnrstuvy,;",
	9:  "abcdefghijklmnorstuvwy,;",
	10: "abcdefghijklmnorstuvwxy,.;",
	11: "abcdefghijklmnopqrstuvwxy,.;",
	12: "abcdefghijklmnopqrstuvwxyz,./;",
	13: "abcdefghijklmnopqrstuvwxyz',./;",
	14: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ',./;",
	15: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ',./;",
	16: "58abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ',./;",
	17: "4589abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ',./;",
	18: "456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ',./;",
	19: "03456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ',./;",
	20: "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ',./;",
	21: "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ',./;",
	22: "!#$@0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ',./;",
	23: "!#$&*()@0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ',./;",
	24: "!#$&*()@0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ',./;",
	// Unit 25 introduces brackets, braces and the colon, which Global lacks.
	25: "!#$%&()*+-./0123456789:=@ABCDEFGHIJKLMNOPQRSTUVWXYZ[]^_`abcdefghijklmnopqrstuvwxyz{}~',;",
	26: Global,
	27: Global,
}

var builtin = mustBuiltin()

func mustBuiltin() *Table {
	sets := make(map[int]Set, len(builtinUnits))
	for u, chars := range builtinUnits {
		sets[u] = NewSet(chars)
	}
	t, err := NewTable(sets)
	if err != nil {
		panic(err)
	}
	return t
}

// Builtin returns the standard 27-unit course table.
func Builtin() *Table { return builtin }
