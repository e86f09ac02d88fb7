package core

import (
	"fmt"
	"strconv"
	"strings"
)

// RunLengthEncode writes each maximal run of identical characters as the
// character followed by the run length in decimal. Empty input encodes to "".
func RunLengthEncode(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	count := 1
	for i := 1; i < len(text); i++ {
		if text[i] == text[i-1] {
			count++
			continue
		}
		sb.WriteByte(text[i-1])
		sb.WriteString(strconv.Itoa(count))
		count = 1
	}
	sb.WriteByte(text[len(text)-1])
	sb.WriteString(strconv.Itoa(count))
	return sb.String()
}

// RunLengthDecode expands character+count pairs. It is the inverse of
// RunLengthEncode for input that contains no digits. Output longer than
// maxLineLength is rejected with ErrOutOfRange.
func RunLengthDecode(encoded string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(encoded); {
		ch := encoded[i]
		j := i + 1
		for j < len(encoded) && encoded[j] >= '0' && encoded[j] <= '9' {
			j++
		}
		if j == i+1 {
			return "", fmt.Errorf("RunLengthDecode: missing count for %q at offset %d", ch, i)
		}
		n, err := strconv.Atoi(encoded[i+1 : j])
		if err != nil {
			return "", fmt.Errorf("RunLengthDecode: %w", err)
		}
		if n > maxLineLength-sb.Len() {
			return "", fmt.Errorf("RunLengthDecode: %w: run of %s at offset %d exceeds %d bytes",
				ErrOutOfRange, encoded[i+1:j], i, maxLineLength)
		}
		for range n {
			sb.WriteByte(ch)
		}
		i = j
	}
	return sb.String(), nil
}

// EncodeLines run-length encodes each line independently.
func EncodeLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = RunLengthEncode(l)
	}
	return out
}

// DecodeLines reverses EncodeLines.
func DecodeLines(lines []string) ([]string, error) {
	out := make([]string, len(lines))
	for i, l := range lines {
		decoded, err := RunLengthDecode(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out[i] = decoded
	}
	return out, nil
}
