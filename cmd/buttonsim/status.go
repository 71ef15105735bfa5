package main

import (
	"fmt"
	"math"
	"strings"
)

const barWidth = 20

// status renders a one-line view of the light and selector.
func status(s *sim, down bool) string {
	lv := s.light()
	n := int(math.Round(lv.Brightness * barWidth))
	if n > barWidth {
		n = barWidth
	}
	btn := "up  "
	if down {
		btn = "down"
	}
	return fmt.Sprintf("[%s%s] %.2f %-4s program %d %s ",
		strings.Repeat("#", n), strings.Repeat(".", barWidth-n),
		lv.Brightness, s.dev.Override(), s.disp.Program(), btn)
}
