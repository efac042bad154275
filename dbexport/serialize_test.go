package dbexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatHeaderAndLine(t *testing.T) {
	row := Row{Columns: []string{"id", "name", "email"}, Values: []any{int64(1), "alice", nil}}
	assert.Equal(t, "id;name;email\n", FormatHeader(row))
	assert.Equal(t, "1;alice;\n", FormatLine(row))
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "x", "x"},
		{"bytes", []byte("42"), "42"},
		{"int", int64(-7), "-7"},
		{"float", 2.5, "2.5"},
		{"bool", true, "true"},
		{"time", ts, "2024-03-09 14:05:06"},
		{"time with fraction", ts.Add(1500 * time.Microsecond), "2024-03-09 14:05:06.0015"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}

func TestFormatLine_DelimiterIsNotEscaped(t *testing.T) {
	row := Row{Columns: []string{"a", "b"}, Values: []any{"x;y", "z"}}
	assert.Equal(t, "x;y;z\n", FormatLine(row))
}
