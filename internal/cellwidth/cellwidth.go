// Package cellwidth measures text in terminal cells, grapheme-cluster
// aware.
package cellwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Cluster returns the terminal cell width of one grapheme cluster.
// runewidth decides; uniseg breaks ties for clusters runewidth reports as
// zero-width but terminals render.
func Cluster(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(text); fallback > w {
			w = fallback
		}
	}
	return w
}

// String returns the terminal cell width of text.
func String(text string) int {
	total := 0
	for _, c := range Split(text) {
		total += Cluster(c)
	}
	return total
}

// PrefixCells returns the cell width of the first n runes of text.
func PrefixCells(text string, n int) int {
	if n <= 0 {
		return 0
	}
	total := 0
	seen := 0
	for _, c := range Split(text) {
		runes := len([]rune(c))
		if seen+runes > n {
			break
		}
		seen += runes
		total += Cluster(c)
	}
	return total
}
