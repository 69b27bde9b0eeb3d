package fred

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/etnz/yieldcurve"
	"github.com/etnz/yieldcurve/date"
	log "github.com/sirupsen/logrus"
)

// GraphClient downloads the series as one CSV file from the FRED graph
// service. It needs no API key.
type GraphClient struct {
	opts *options
}

// Fetch implements yieldcurve.Provider.
func (c *GraphClient) Fetch(ctx context.Context, r date.Range) (*yieldcurve.Series, error) {
	q := url.Values{}
	q.Set("id", strings.Join(yieldcurve.SeriesIDs(), ","))
	q.Set("cosd", r.From.String())
	q.Set("coed", r.To.String())
	addr := c.opts.graphURL + "?" + q.Encode()

	log.Infof("Downloading from FRED: %s", addr)
	body, err := get(ctx, c.opts.client, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to download from FRED: %w", err)
	}

	s, err := parseGraphCSV(bytes.NewReader(body), r)
	if err != nil {
		return nil, err
	}
	if s.IsEmpty() {
		return nil, fmt.Errorf("FRED graph for %s: %w", r, ErrNoObservations)
	}
	return s, nil
}

// parseGraphCSV reads the FRED graph CSV format:
//
//	observation_date,DGS1MO,DGS3MO,...
//	2024-01-02,5.55,5.46,...
//
// Older downloads name the first column "DATE". Unknown series columns are
// ignored, rows outside r are skipped.
func parseGraphCSV(rd io.Reader, r date.Range) (*yieldcurve.Series, error) {
	reader := csv.NewReader(rd)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty csv: %w", ErrNoObservations)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(header) == 0 {
		return nil, errors.New("failed to read csv header: no columns")
	}
	first := strings.TrimSpace(strings.TrimPrefix(header[0], "\ufeff"))
	if !strings.EqualFold(first, "DATE") && !strings.EqualFold(first, "observation_date") {
		return nil, fmt.Errorf("unexpected csv header %q: want a date column first", first)
	}

	// columns maps a csv column to its maturity index.
	columns := make(map[int]int)
	for col, name := range header[1:] {
		if i, ok := yieldcurve.MaturityBySeriesID(name); ok {
			columns[col+1] = i
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("no treasury series in csv header %q", strings.Join(header, ","))
	}

	s := yieldcurve.NewSeries()
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		on, err := date.Parse(strings.TrimSpace(row[0]))
		if err != nil {
			// Don't wrap, date.Parse provides good context
			return nil, err
		}
		if !r.Contains(on) {
			continue
		}
		var rec yieldcurve.Record
		for col, i := range columns {
			if col >= len(row) {
				continue
			}
			y, err := parseValue(row[col])
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s for date %q: %w", header[col], row[0], err)
			}
			rec[i] = y
		}
		s.Append(on, rec)
	}
	return s, nil
}
