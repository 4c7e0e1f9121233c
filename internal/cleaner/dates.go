package cleaner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KarloVrd/FlunkyStats/internal/config"
)

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)
	dotSpaceRe   = regexp.MustCompile(`\s*\.\s*`)
)

// NormalizeDate normalizes a birth date string to dd.mm.yyyy. It accepts
// ".", "/" and "-" as separators, collapses stray whitespace, strips
// trailing dots, zero-pads day and month, and expands 2-digit years
// (above 50 becomes 19xx, otherwise 20xx). The second return value is
// false when the input could not be normalized; the input is then
// returned unchanged so the caller can decide what to do with it.
//
// Only the format is normalized here; calendar validity is checked when
// the date is parsed for age statistics.
func NormalizeDate(s string) (string, bool) {
	if s == "" || s == config.NASymbol || s == "0" {
		return s, false
	}

	t := strings.TrimSpace(s)
	t = strings.TrimRight(t, ".")
	t = multiSpaceRe.ReplaceAllString(t, " ")
	t = dotSpaceRe.ReplaceAllString(t, ".")

	for _, sep := range []string{".", "/", "-"} {
		if !strings.Contains(t, sep) {
			continue
		}

		var parts []string
		for _, part := range strings.Split(t, sep) {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
		if len(parts) != 3 {
			return s, false
		}

		day, errD := strconv.Atoi(parts[0])
		month, errM := strconv.Atoi(parts[1])
		if errD != nil || errM != nil {
			return s, false
		}

		year, ok := normalizeYear(parts[2])
		if !ok {
			return s, false
		}

		return fmt.Sprintf("%02d.%02d.%s", day, month, year), true
	}

	return s, false
}

// normalizeYear expands 2-digit years and passes 4-digit years through.
func normalizeYear(s string) (string, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return "", false
	}

	year := strconv.Itoa(n)
	switch len(year) {
	case 4:
		return year, true
	case 2:
		// 51-99 are 1900s, 10-50 are 2000s.
		if n > 50 {
			return "19" + year, true
		}
		return "20" + year, true
	default:
		return "", false
	}
}
