// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package csvexport renders responses as the surveyor's CSV download.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/danielhkuo/survey-portal/models"
)

// TimestampLayout is the en-US locale date/time rendering.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

const ContentType = "text/csv"

var ErrEmpty = errors.New("no responses to export")

var header = []string{"Name", "Age", "Timestamp"}

// FormatTimestamp renders t the way the table displays it.
func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(TimestampLayout)
}

// FileName returns survey-responses-<ISO date>.csv for the UTC date of now.
func FileName(now time.Time) string {
	return "survey-responses-" + now.UTC().Format(time.DateOnly) + ".csv"
}

// Write emits the header and one row per response, in the order given.
func Write(w io.Writer, rs []models.Response, loc *time.Location) error {
	if len(rs) == 0 {
		return ErrEmpty
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rs {
		rec := []string{
			r.Name,
			strconv.Itoa(r.Age),
			FormatTimestamp(r.CreatedAt, loc),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Render is Write into a byte slice.
func Render(rs []models.Response, loc *time.Location) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := Write(buf, rs, loc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
