package billing

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultNumberSeparator is the canonical separator for document numbers.
const DefaultNumberSeparator = "-"

// sequenceWidth is the zero-padded width of the sequence part.
const sequenceWidth = 6

// NumberSpec describes a formatted sequential document number.
type NumberSpec struct {
	Prefix    string
	Year      int
	Sequence  int
	Separator string // empty means DefaultNumberSeparator
}

// BuildDocumentNumber formats a document number as
// PREFIX{sep}YEAR{sep}000000 with the sequence zero-padded to six digits.
func BuildDocumentNumber(spec NumberSpec) string {
	sep := spec.Separator
	if sep == "" {
		sep = DefaultNumberSeparator
	}
	return fmt.Sprintf("%s%s%d%s%0*d", spec.Prefix, sep, spec.Year, sep, sequenceWidth, spec.Sequence)
}

// ParsedNumber is the decomposition of a document number.
type ParsedNumber struct {
	Prefix   string
	Year     int
	Sequence int
}

// ParseDocumentNumber splits a document number on the canonical "-"
// separator, whatever separator was used at build time. Numbers built with
// another separator therefore do not round-trip; "-" is the one blessed
// separator and the asymmetry is kept on purpose.
//
// ok is false when the number has fewer than three parts or the year or
// sequence parts are not numeric.
func ParseDocumentNumber(number string) (ParsedNumber, bool) {
	parts := strings.Split(number, DefaultNumberSeparator)
	if len(parts) < 3 {
		return ParsedNumber{}, false
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return ParsedNumber{}, false
	}
	sequence, err := strconv.Atoi(parts[2])
	if err != nil {
		return ParsedNumber{}, false
	}

	return ParsedNumber{
		Prefix:   parts[0],
		Year:     year,
		Sequence: sequence,
	}, true
}
