package importer

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical date form produced by the importer.
const DateLayout = "2006-01-02"

// fallbackLayouts are tried in order for cells that are not already
// canonical. Two-digit day/month forms are ambiguous between the US and
// European orderings; the chain order decides, and the match is logged
// at debug level so misreads can be audited.
var fallbackLayouts = []string{
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
	"1/2/2006",
}

// serialEpoch is the spreadsheet serial-date epoch: serial 1 is
// 1899-12-31, matching the usual workbook convention.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const maxSerial = 300000 // ~year 2721, beyond any plausible input

// ParseDate normalizes a raw date cell to YYYY-MM-DD. It accepts an
// already-canonical string, then the fallback layout chain, then a
// numeric spreadsheet serial date. Anything else is invalid.
func ParseDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("empty date")
	}
	if len(s) == len(DateLayout) {
		if t, err := time.Parse(DateLayout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			slog.Debug("importer.date.fallback", "value", s, "layout", layout)
			return t.Format(DateLayout), nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial <= 0 || serial > maxSerial {
			return "", fmt.Errorf("serial date %v out of range", serial)
		}
		// Fractional part is time-of-day; only the date matters here.
		return serialEpoch.AddDate(0, 0, int(serial)).Format(DateLayout), nil
	}
	return "", fmt.Errorf("unrecognized date %q", raw)
}
