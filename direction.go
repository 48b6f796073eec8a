package chatdocx

// IsRTL reports whether text contains at least one rune from the Arabic
// Unicode block (U+0600–U+06FF). Text without such a rune, including the
// empty string, is treated as left-to-right.
func IsRTL(text string) bool {
	for _, r := range text {
		if isArabic(r) {
			return true
		}
	}
	return false
}

func isArabic(r rune) bool {
	return r >= 0x0600 && r <= 0x06FF
}
