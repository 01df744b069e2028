package jpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/orbitdata/query-data/internal/errors"
	"github.com/orbitdata/query-data/internal/logger"
)

// sbdbParams builds the SBDB query string for q
func sbdbParams(q AsteroidQuery) url.Values {
	params := url.Values{
		"fields":    {strings.Join(sbdbFields, ",")},
		"full-prec": {"true"},
		"sb-kind":   {"a"},
	}
	if q.Constraint != "" {
		params.Set("sb-cdata", q.Constraint)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return params
}

// QueryAsteroids runs one SBDB query and returns the matching asteroids in
// response order. The response is decoded as a stream, so the full catalog
// never has to be held as raw JSON.
func (c *Client) QueryAsteroids(ctx context.Context, q AsteroidQuery) ([]SmallBody, error) {
	if q.Limit < 0 {
		return nil, errors.Newf("sbdb limit must not be negative, got %d", q.Limit).
			Category(errors.CategoryValidation).
			Component(component).
			Build()
	}
	if q.Constraint != "" && !json.Valid([]byte(q.Constraint)) {
		return nil, errors.Newf("sbdb constraint is not valid JSON").
			Category(errors.CategoryValidation).
			Context("constraint", q.Constraint).
			Component(component).
			Build()
	}

	start := time.Now()
	var bodies []SmallBody
	count := -1
	err := c.doRequestWithRetry(ctx, "sbdb", c.config.SBDBURL, sbdbParams(q), func(body io.Reader) error {
		var err error
		bodies, count, err = decodeSBDB(body)
		return err
	})
	if err != nil {
		return nil, err
	}

	if count >= 0 && count != len(bodies) {
		c.logger.Warn("Small-body count does not match returned rows",
			logger.Int("count", count),
			logger.Int("rows", len(bodies)))
	}

	c.logger.Info("Small-body query complete",
		logger.Int("rows", len(bodies)),
		logger.Int("limit", q.Limit),
		logger.Bool("constrained", q.Constraint != ""),
		logger.Duration("elapsed", time.Since(start)))

	return bodies, nil
}

// sbdbDecoder walks an SBDB query response token by token
type sbdbDecoder struct {
	dec     *json.Decoder
	columns map[string]int // field name to column index
	pending [][]any        // rows seen before the field list
	bodies  []SmallBody
	count   int
}

// decodeSBDB decodes {"signature":..., "count":..., "fields":[...], "data":[[...]]}.
// Rows that arrive before the field list are buffered until it is known.
// The returned count is the value the service reported, or -1 if absent.
func decodeSBDB(r io.Reader) ([]SmallBody, int, error) {
	d := &sbdbDecoder{dec: json.NewDecoder(r), count: -1}
	d.dec.UseNumber()

	if err := d.expectDelim('{'); err != nil {
		return nil, -1, err
	}

	for d.dec.More() {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, -1, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, -1, fmt.Errorf("unexpected token %v", tok)
		}

		switch key {
		case "fields":
			var fields []string
			if err := d.dec.Decode(&fields); err != nil {
				return nil, -1, fmt.Errorf("decode fields: %w", err)
			}
			if err := d.setFields(fields); err != nil {
				return nil, -1, err
			}
		case "data":
			if err := d.decodeData(); err != nil {
				return nil, -1, err
			}
		case "count":
			var count any
			if err := d.dec.Decode(&count); err != nil {
				return nil, -1, fmt.Errorf("decode count: %w", err)
			}
			n, err := optionalFloat(count)
			if err != nil {
				return nil, -1, fmt.Errorf("decode count: %w", err)
			}
			if n.Valid {
				d.count = int(n.Value)
			}
		default:
			var skip json.RawMessage
			if err := d.dec.Decode(&skip); err != nil {
				return nil, -1, fmt.Errorf("decode %s: %w", key, err)
			}
		}
	}

	if err := d.expectDelim('}'); err != nil {
		return nil, -1, err
	}

	if d.columns == nil {
		if len(d.pending) > 0 {
			return nil, -1, fmt.Errorf("sbdb response has data but no field list")
		}
		// An empty result carries neither fields nor data.
		return []SmallBody{}, d.count, nil
	}
	return d.bodies, d.count, nil
}

func (d *sbdbDecoder) expectDelim(want json.Delim) error {
	tok, err := d.dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func (d *sbdbDecoder) setFields(fields []string) error {
	d.columns = make(map[string]int, len(fields))
	for i, name := range fields {
		d.columns[name] = i
	}
	for _, name := range sbdbFields {
		if _, ok := d.columns[name]; !ok {
			return fmt.Errorf("sbdb response is missing field %q", name)
		}
	}

	for _, row := range d.pending {
		if err := d.appendRow(row); err != nil {
			return err
		}
	}
	d.pending = nil
	return nil
}

func (d *sbdbDecoder) decodeData() error {
	if err := d.expectDelim('['); err != nil {
		return err
	}
	for d.dec.More() {
		var row []any
		if err := d.dec.Decode(&row); err != nil {
			return fmt.Errorf("decode row %d: %w", len(d.bodies)+len(d.pending), err)
		}
		if d.columns == nil {
			d.pending = append(d.pending, row)
			continue
		}
		if err := d.appendRow(row); err != nil {
			return err
		}
	}
	return d.expectDelim(']')
}

// appendRow converts one data row. Missing elements and epoch become 0;
// H, albedo and diameter keep their null state.
func (d *sbdbDecoder) appendRow(row []any) error {
	if len(row) < len(d.columns) {
		return fmt.Errorf("row %d has %d values, want %d", len(d.bodies), len(row), len(d.columns))
	}

	var err error
	number := func(field string) OptionalFloat {
		if err != nil {
			return OptionalFloat{}
		}
		var v OptionalFloat
		v, err = optionalFloat(row[d.columns[field]])
		if err != nil {
			err = fmt.Errorf("row %d field %s: %w", len(d.bodies), field, err)
		}
		return v
	}
	text := func(field string) string {
		switch v := row[d.columns[field]].(type) {
		case string:
			return strings.TrimSpace(v)
		case json.Number:
			return v.String()
		default:
			return ""
		}
	}

	body := SmallBody{
		Elements: Elements{
			Eccentricity:  number("e").Or(0),
			SemiMajorAxis: number("a").Or(0),
			Inclination:   number("i").Or(0),
			AscendingNode: number("om").Or(0),
			Periapsis:     number("w").Or(0),
			MeanAnomaly:   number("ma").Or(0),
			Epoch:         number("epoch").Or(0),
		},
		H:           number("H"),
		Albedo:      number("albedo"),
		Diameter:    number("diameter"),
		Class:       text("class"),
		FullName:    text("full_name"),
		Designation: text("pdes"),
	}
	if err != nil {
		return err
	}

	d.bodies = append(d.bodies, body)
	return nil
}

// optionalFloat converts an SBDB value. The API sends numbers as strings
// for full precision; null and empty strings are missing values.
func optionalFloat(v any) (OptionalFloat, error) {
	switch x := v.(type) {
	case nil:
		return OptionalFloat{}, nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return OptionalFloat{}, err
		}
		return Some(f), nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return OptionalFloat{}, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return OptionalFloat{}, err
		}
		return Some(f), nil
	default:
		return OptionalFloat{}, fmt.Errorf("unexpected value %v", v)
	}
}
