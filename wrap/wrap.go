// seehuhn.de/go/pdfstress - generate oversized PDF files for stress testing
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package wrap breaks text into lines and lines into pages.
package wrap

import (
	"math"
	"strings"
)

// MeasureFunc returns the width of a string when typeset.
type MeasureFunc func(s string) float64

// Lines breaks text into lines no wider than width.
//
// Words are separated by white space and are joined by single spaces.
// Lines are filled greedily.  A word which is wider than a line on its own
// is split between characters.  Lines returns nil if text contains no words.
func Lines(text string, width float64, measure MeasureFunc) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	space := measure(" ")

	var lines []string
	var cur []string
	var curWidth float64
	for _, word := range words {
		w := measure(word)

		if w > width+eps {
			if len(cur) > 0 {
				lines = append(lines, strings.Join(cur, " "))
			}
			parts := splitWord(word, width, measure)
			lines = append(lines, parts[:len(parts)-1]...)
			last := parts[len(parts)-1]
			cur = append(cur[:0], last)
			curWidth = measure(last)
			continue
		}

		if len(cur) > 0 && curWidth+space+w <= width+eps {
			cur = append(cur, word)
			curWidth += space + w
			continue
		}

		if len(cur) > 0 {
			lines = append(lines, strings.Join(cur, " "))
		}
		cur = append(cur[:0], word)
		curWidth = w
	}
	lines = append(lines, strings.Join(cur, " "))
	return lines
}

// splitWord splits a single word into pieces no wider than width.
// Every piece contains at least one character.
func splitWord(word string, width float64, measure MeasureFunc) []string {
	var parts []string
	start := 0
	var cur float64
	for i, r := range word {
		w := measure(string(r))
		if i > start && cur+w > width+eps {
			parts = append(parts, word[start:i])
			start = i
			cur = 0
		}
		cur += w
	}
	parts = append(parts, word[start:])
	return parts
}

// PerPage returns the number of lines which fit between top and bottom,
// when consecutive lines are lineHeight apart.  The result is at least 1.
func PerPage(top, bottom, lineHeight float64) int {
	n := int(math.Floor((bottom-top)/lineHeight + eps))
	return max(n, 1)
}

// Pages splits lines into groups of at most perPage lines.
// If perPage is zero or negative, all lines form a single group.
// The result always contains at least one group, which may be empty.
func Pages(lines []string, perPage int) [][]string {
	if perPage <= 0 || len(lines) <= perPage {
		return [][]string{lines}
	}
	res := make([][]string, 0, (len(lines)+perPage-1)/perPage)
	for len(lines) > perPage {
		res = append(res, lines[:perPage])
		lines = lines[perPage:]
	}
	res = append(res, lines)
	return res
}

// eps absorbs rounding errors when widths are added up.
const eps = 1e-6
