package dbexport

import (
	"fmt"
	"strings"
	"time"
)

// Delimiter separates columns in the output file.
const Delimiter = ";"

// timeLayout renders time values; trailing fractional zeros are dropped.
const timeLayout = "2006-01-02 15:04:05.999999999"

// FormatHeader returns the column names of row joined by Delimiter, newline terminated.
func FormatHeader(row Row) string {
	return strings.Join(row.Columns, Delimiter) + "\n"
}

// FormatLine returns the values of row joined by Delimiter, newline terminated.
//
// Values are not quoted or escaped. A value containing the delimiter or a
// newline produces a line that can no longer be split back into columns, and
// the validator will not find it in the file.
func FormatLine(row Row) string {
	return formatValues(row) + "\n"
}

func formatValues(row Row) string {
	vals := make([]string, len(row.Values))
	for i, v := range row.Values {
		vals[i] = FormatValue(v)
	}
	return strings.Join(vals, Delimiter)
}

// FormatValue converts a scanned column value to its text form.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(timeLayout)
	default:
		return fmt.Sprint(t)
	}
}
