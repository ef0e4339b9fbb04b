package timefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndmitko/SLN-SchedulingService/pkg/types"
)

func TestFormat12Hour(t *testing.T) {
	tests := []struct {
		input types.TimeString
		want  string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"09:05", "9:05 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"12:30", "12:30 PM"},
		{"16:00", "4:00 PM"},
		{"23:59", "11:59 PM"},
		// Некорректное время возвращается как есть
		{"garbage", "garbage"},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.want, Format12Hour(tt.input))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0 min"},
		{-5, "0 min"},
		{30, "30 min"},
		{45, "45 min"},
		{59, "59 min"},
		{60, "1h"},
		{90, "1:30h"},
		{105, "1:45h"},
		{120, "2h"},
		{150, "2:30h"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.minutes))
		})
	}
}
