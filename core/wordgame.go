package core

import "slices"

// WordsFormableFrom returns, sorted, the distinct tokens of the document
// that can be spelled with the characters of input, each character used at
// most as many times as it occurs in input.
func (d *Document) WordsFormableFrom(input string) []string {
	var available [256]int
	for i := 0; i < len(input); i++ {
		available[input[i]]++
	}

	seen := make(map[string]bool)
	var words []string
	d.eachLine(func(l *Line) bool {
		for _, w := range fields(l.Content()) {
			if seen[w] {
				continue
			}
			seen[w] = true
			if formable(w, &available) {
				words = append(words, w)
			}
		}
		return true
	})

	slices.Sort(words)
	return words
}

func formable(word string, available *[256]int) bool {
	var need [256]int
	for i := 0; i < len(word); i++ {
		c := word[i]
		need[c]++
		if need[c] > available[c] {
			return false
		}
	}
	return true
}
