package jpl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/antonholmquist/jason"

	"github.com/orbitdata/query-data/internal/errors"
	"github.com/orbitdata/query-data/internal/logger"
)

// Markers delimiting the ephemeris table in a Horizons result
const (
	startOfEphemeris = "$$SOE"
	endOfEphemeris   = "$$EOE"
)

// horizonsColumns maps Horizons ELEMENTS CSV column names to Elements fields
var horizonsColumns = map[string]func(*Elements, float64){
	"JDTDB": func(e *Elements, v float64) { e.Epoch = v },
	"EC":    func(e *Elements, v float64) { e.Eccentricity = v },
	"A":     func(e *Elements, v float64) { e.SemiMajorAxis = v },
	"IN":    func(e *Elements, v float64) { e.Inclination = v },
	"OM":    func(e *Elements, v float64) { e.AscendingNode = v },
	"W":     func(e *Elements, v float64) { e.Periapsis = v },
	"MA":    func(e *Elements, v float64) { e.MeanAnomaly = v },
}

// horizonsParams builds the query for one osculating-element ephemeris
func horizonsParams(q ElementsQuery) url.Values {
	epoch := strconv.FormatFloat(q.Epoch, 'f', -1, 64)
	return url.Values{
		"format":     {"json"},
		"COMMAND":    {quote(q.Command)},
		"OBJ_DATA":   {"'NO'"},
		"MAKE_EPHEM": {"'YES'"},
		"EPHEM_TYPE": {"'ELEMENTS'"},
		"CENTER":     {quote(q.Center)},
		"TLIST":      {quote(epoch)},
		"TLIST_TYPE": {"'JD'"},
		"OUT_UNITS":  {"'AU-D'"},
		"REF_PLANE":  {"'ECLIPTIC'"},
		"REF_SYSTEM": {"'ICRF'"},
		"CSV_FORMAT": {"'YES'"},
	}
}

func quote(s string) string {
	return "'" + s + "'"
}

// FetchElements queries Horizons for the osculating elements of one body
// relative to q.Center at q.Epoch.
func (c *Client) FetchElements(ctx context.Context, q ElementsQuery) (Elements, error) {
	if q.Command == "" || q.Center == "" {
		return Elements{}, errors.Newf("horizons query needs a command and a center").
			Category(errors.CategoryValidation).
			Component(component).
			Build()
	}

	var elements Elements
	err := c.doRequestWithRetry(ctx, "horizons", c.config.HorizonsURL, horizonsParams(q), func(body io.Reader) error {
		raw, err := io.ReadAll(body)
		if err != nil {
			return err
		}
		result, err := horizonsResult(raw)
		if err != nil {
			return err
		}
		elements, err = parseElements(result)
		return err
	})
	if err != nil {
		return Elements{}, addCommandContext(err, q.Command)
	}

	c.logger.Trace("Fetched elements",
		logger.String("command", q.Command),
		logger.String("center", q.Center),
		logger.Float64("a", elements.SemiMajorAxis))

	return elements, nil
}

// horizonsResult returns the "result" text of a Horizons JSON envelope, or
// the error the service reported in it.
func horizonsResult(raw []byte) (string, error) {
	obj, err := parseObject(raw)
	if err != nil {
		return "", err
	}

	if msg, err := obj.GetString("error"); err == nil && msg != "" {
		return "", errors.Newf("horizons error: %s", strings.TrimSpace(msg)).
			Category(errors.CategoryNotFound).
			Component(component).
			Build()
	}

	result, err := obj.GetString("result")
	if err != nil {
		return "", errors.Newf("horizons response has no result: %w", err).
			Category(errors.CategoryFileParsing).
			Component(component).
			Build()
	}
	return result, nil
}

// parseElements extracts the first row of the ephemeris table. The CSV
// header is the last line before $$SOE that names the JDTDB column.
func parseElements(result string) (Elements, error) {
	start := strings.Index(result, startOfEphemeris)
	end := strings.Index(result, endOfEphemeris)
	if start < 0 || end < start {
		return Elements{}, errors.Newf("horizons result has no ephemeris block: %s", resultPreview(result)).
			Category(errors.CategoryNotFound).
			Component(component).
			Build()
	}

	var header []string
	for line := range strings.Lines(result[:start]) {
		if strings.Contains(line, "JDTDB") {
			header = splitCSVLine(line)
		}
	}
	if header == nil {
		return Elements{}, errors.Newf("horizons result has no column header").
			Category(errors.CategoryFileParsing).
			Component(component).
			Build()
	}

	var row []string
	for line := range strings.Lines(result[start+len(startOfEphemeris) : end]) {
		if strings.TrimSpace(line) != "" {
			row = splitCSVLine(line)
			break
		}
	}
	if row == nil {
		return Elements{}, errors.Newf("horizons ephemeris block is empty").
			Category(errors.CategoryNotFound).
			Component(component).
			Build()
	}

	var elements Elements
	found := make(map[string]bool, len(horizonsColumns))
	for i, name := range header {
		set, ok := horizonsColumns[name]
		if !ok || i >= len(row) {
			continue
		}
		v, err := strconv.ParseFloat(row[i], 64)
		if err != nil {
			return Elements{}, errors.Newf("horizons column %s: %w", name, err).
				Category(errors.CategoryFileParsing).
				Component(component).
				Build()
		}
		set(&elements, v)
		found[name] = true
	}

	for name := range horizonsColumns {
		if !found[name] {
			return Elements{}, errors.Newf("horizons result is missing column %s", name).
				Category(errors.CategoryFileParsing).
				Component(component).
				Build()
		}
	}

	return elements, nil
}

// splitCSVLine splits a Horizons CSV line and trims each cell. Horizons ends
// every line with a comma, so the trailing empty cell is dropped.
func splitCSVLine(line string) []string {
	cells := strings.Split(strings.TrimSpace(line), ",")
	if n := len(cells); n > 0 && strings.TrimSpace(cells[n-1]) == "" {
		cells = cells[:n-1]
	}
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

func resultPreview(result string) string {
	result = strings.TrimSpace(result)
	if len(result) > 200 {
		return result[:200] + "..."
	}
	return result
}

func parseObject(raw []byte) (*jason.Object, error) {
	obj, err := jason.NewObjectFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return obj, nil
}

// addCommandContext tags a request error with the Horizons command
func addCommandContext(err error, command string) error {
	var enhanced *errors.EnhancedError
	if errors.As(err, &enhanced) {
		return errors.New(enhanced).
			Category(enhanced.Category).
			Context("command", command).
			Component(component).
			Build()
	}
	return err
}
