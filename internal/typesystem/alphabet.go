package typesystem

// Alphabet is the closed-form function Int -> String used by canonical
// renaming: 0 -> "a", 1 -> "b", ..., 25 -> "z", 26 -> "aa", 27 -> "ab", ...
// (spec.md §4.6 "Normalisation", §9 "Global state").
func Alphabet(n int) string {
	if n < 0 {
		n = 0
	}
	var out []byte
	n++ // make it 1-based so the algorithm is the familiar spreadsheet-column one
	for n > 0 {
		n--
		out = append([]byte{byte('a' + n%26)}, out...)
		n /= 26
	}
	return string(out)
}
