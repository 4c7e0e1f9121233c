package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	reference := time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate string
		wantAge   int
		wantOK    bool
	}{
		{"birthday already passed", "15.03.1995", 29, true},
		{"birthday on reference date", "20.09.2000", 24, true},
		{"birthday still ahead", "21.09.2000", 23, true},
		{"birthday next month", "01.10.1990", 33, true},
		{"na sentinel", "N/A", 0, false},
		{"zero placeholder", "0", 0, false},
		{"empty", "", 0, false},
		{"unparseable", "sometime in march", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, ok := AgeAt(tt.birthDate, reference)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantAge, age)
			}
		})
	}
}
