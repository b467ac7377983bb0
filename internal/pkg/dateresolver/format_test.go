package dateresolver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPHP(t *testing.T) {
	morning := time.Date(2024, time.March, 1, 9, 5, 7, 0, time.UTC)
	evening := time.Date(2024, time.March, 1, 21, 30, 0, 0, time.UTC)
	midnight := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	wib := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.FixedZone("WIB", 7*3600))

	tests := []struct {
		name   string
		t      time.Time
		layout string
		want   string
	}{
		{"default layout", morning, "g:ia", "9:05am"},
		{"default layout evening", evening, "g:ia", "9:30pm"},
		{"midnight twelve hour", midnight, "g:i A", "12:00 AM"},
		{"padded twelve hour", evening, "h:i", "09:30"},
		{"twenty four hour", evening, "H:i", "21:30"},
		{"unpadded twenty four hour", morning, "G:i:s", "9:05:07"},
		{"swatch beat", midnight, "B", "041"},
		{"zone identifier", morning, "e T", "UTC UTC"},
		{"offsets", wib, "O P Z", "+0700 +07:00 25200"},
		{"dst flag", morning, "I", "0"},
		{"literals", morning, "H.i, -/", "09.05, -/"},
		{"escape", morning, `H\h`, "09h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPHP(tt.t, tt.layout))
		})
	}
}
