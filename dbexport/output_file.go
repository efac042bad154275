package dbexport

import (
	"bufio"
	"os"
)

// InitOutputFile truncates or creates path and writes the header line built from
// the first row of probe. It fails with ErrEmptySource, without touching the
// file, when probe is empty.
func InitOutputFile(path string, probe []Row) error {
	if len(probe) == 0 {
		return ErrEmptySource
	}
	file, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	if _, err := file.WriteString(FormatHeader(probe[0])); err != nil {
		file.Close()
		return &IOError{Op: "write header", Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}

// AppendBatch appends one line per row to path, in order. The file handle only
// lives for the duration of the call.
func AppendBatch(path string, rows []Row) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	w := bufio.NewWriter(file)
	for _, row := range rows {
		if _, err := w.WriteString(FormatLine(row)); err != nil {
			file.Close()
			return &IOError{Op: "write", Path: path, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}
