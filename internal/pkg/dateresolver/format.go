package dateresolver

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatPHP renders t with the time related subset of PHP's date() tokens:
// a A B g G h H i s e I O P T Z. A backslash escapes the next character and
// any other character is copied as is.
func FormatPHP(t time.Time, layout string) string {
	var b strings.Builder
	runes := []rune(layout)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) {
			i++
			b.WriteRune(runes[i])
			continue
		}
		b.WriteString(formatToken(t, r))
	}
	return b.String()
}

func formatToken(t time.Time, token rune) string {
	switch token {
	case 'a':
		if t.Hour() < 12 {
			return "am"
		}
		return "pm"
	case 'A':
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case 'B':
		return fmt.Sprintf("%03d", swatchBeat(t))
	case 'g':
		return strconv.Itoa(twelveHour(t))
	case 'G':
		return strconv.Itoa(t.Hour())
	case 'h':
		return fmt.Sprintf("%02d", twelveHour(t))
	case 'H':
		return fmt.Sprintf("%02d", t.Hour())
	case 'i':
		return fmt.Sprintf("%02d", t.Minute())
	case 's':
		return fmt.Sprintf("%02d", t.Second())
	case 'e':
		return t.Location().String()
	case 'I':
		if t.IsDST() {
			return "1"
		}
		return "0"
	case 'O':
		return t.Format("-0700")
	case 'P':
		return t.Format("-07:00")
	case 'T':
		return t.Format("MST")
	case 'Z':
		_, offset := t.Zone()
		return strconv.Itoa(offset)
	default:
		return string(token)
	}
}

func twelveHour(t time.Time) int {
	hour := t.Hour() % 12
	if hour == 0 {
		return 12
	}
	return hour
}

// swatchBeat is Swatch Internet Time, measured from UTC+1 midnight.
func swatchBeat(t time.Time) int {
	u := t.UTC()
	seconds := (u.Hour()*3600 + u.Minute()*60 + u.Second() + 3600) % 86400
	return seconds * 10 / 864
}
