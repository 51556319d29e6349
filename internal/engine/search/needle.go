package search

// ParseHexNeedle converts user input such as "DE AD be ef" into bytes.
//
// Hex digits are read in pairs; every other character is skipped. A final
// unpaired digit becomes the high nibble of a last byte, so "ABC" yields
// {0xAB, 0xC0}.
func ParseHexNeedle(s string) []byte {
	var out []byte
	high := -1
	for i := 0; i < len(s); i++ {
		v, ok := hexValue(s[i])
		if !ok {
			continue
		}
		if high < 0 {
			high = v
			continue
		}
		out = append(out, byte(high<<4|v))
		high = -1
	}
	if high >= 0 {
		out = append(out, byte(high<<4))
	}
	return out
}

// ParseTextNeedle converts literal text into bytes.
func ParseTextNeedle(s string) []byte {
	return []byte(s)
}

func hexValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
