package extract

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// readText reads a file as UTF-8, falling back to a latin-1 interpretation
// when the bytes do not decode.
func readText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}

	if utf8.Valid(raw) {
		return strings.TrimSpace(string(raw)), nil
	}

	return strings.TrimSpace(decodeLatin1(raw)), nil
}

// decodeLatin1 maps each byte to the equivalent code point. Every byte
// sequence is valid latin-1, so this never fails.
func decodeLatin1(raw []byte) string {
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes)
}
