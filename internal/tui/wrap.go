package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/fiasco/internal/model"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildStyledWords lays out words separated by spaces. The first word is the
// current one and is styled from classes; cursor marks the next rune to type.
func buildStyledWords(words []string, classes []model.CharClass, cursor int) []styledRune {
	out := make([]styledRune, 0, len(words)*8)
	for wi, word := range words {
		if wi > 0 {
			out = append(out, styledRune{s: " ", width: 1, isSpace: true})
		}
		for i, r := range []rune(word) {
			style := pendingStyle
			if wi == 0 {
				style = classStyle(classes, i)
				if i == cursor {
					style = cursorStyle
				}
			}
			out = append(out, styledRune{
				s:     style.Render(string(r)),
				width: runewidth.RuneWidth(r),
			})
		}
	}
	return out
}

func classStyle(classes []model.CharClass, i int) lipgloss.Style {
	if i >= len(classes) {
		return currentWordStyle
	}
	switch classes[i] {
	case model.CharCorrect:
		return correctStyle
	case model.CharWrong:
		return incorrectStyle
	default:
		return currentWordStyle
	}
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks runes into lines of at most width cells, preferring
// to break at spaces.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
