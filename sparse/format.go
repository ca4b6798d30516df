// SPDX-License-Identifier: MIT

package sparse

import "strings"

// Format tags the storage layout of a Matrix.
type Format uint8

const (
	// FormatCSR is compressed sparse row storage.
	FormatCSR Format = iota + 1
	// FormatBSR is block compressed sparse row storage with dense R×C blocks.
	FormatBSR
	// FormatCOO is coordinate (triplet) storage. It is an input format only.
	FormatCOO
	// FormatDense tags a dense operator supplied through gonum. No Matrix
	// reports it; it only records where a converted operator came from.
	FormatDense
)

// String returns the lower-case short name ("csr", "bsr", "coo").
func (f Format) String() string {
	switch f {
	case FormatCSR:
		return "csr"
	case FormatBSR:
		return "bsr"
	case FormatCOO:
		return "coo"
	case FormatDense:
		return "dense"
	default:
		return "unknown"
	}
}

// ParseFormat maps a short name (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csr":
		return FormatCSR, nil
	case "bsr":
		return FormatBSR, nil
	case "coo":
		return FormatCOO, nil
	}

	return 0, sparseErrorf("ParseFormat: "+s, ErrUnknownFormat)
}

// In reports whether f is one of formats.
func (f Format) In(formats ...Format) bool {
	for _, g := range formats {
		if f == g {
			return true
		}
	}

	return false
}
