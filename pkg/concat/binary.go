package concat

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// isTextFile checks whether a file is plain text by reading its first few
// bytes and looking for null bytes or a high ratio of non-printable
// characters. Binary input cannot be combined into a prompt body, so
// callers treat a false result as a read failure.
func isTextFile(filePath string) (bool, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	buffer = buffer[:n]

	// Null bytes are a strong binary signal
	if bytes.Contains(buffer, []byte{0}) {
		return false, nil
	}

	nonPrintable := 0
	for _, b := range buffer {
		if !isPrintable(b) {
			nonPrintable++
		}
	}

	if len(buffer) == 0 {
		return true, nil // Empty files are considered text
	}
	return float64(nonPrintable)/float64(len(buffer)) <= 0.3, nil
}

// isPrintable checks if a byte represents a printable ASCII character
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' || b >= 128
}
