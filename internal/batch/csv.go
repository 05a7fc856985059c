// Package batch evaluates many parts from a CSV file concurrently.
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/Veraticus/limit-gauge/internal/tui/viewmodel"
)

// Column names of the input file.
const (
	ColumnNominal = "nominal"
	ColumnUpper   = "upper"
	ColumnLower   = "lower"
	ColumnFeature = "feature"
)

// Input errors.
var (
	ErrMissingColumn = errors.New("missing required column")
	ErrEmptyInput    = errors.New("input has no header row")
)

// Row is one part read from the input file. Values are kept as text so
// that parsing follows the same rules as interactive input.
type Row struct {
	Nominal string
	Upper   string
	Lower   string
	Feature string
	Line    int
}

// ReadRows reads parts from CSV. The header must name the nominal, upper
// and lower columns in any order; feature is optional.
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{ColumnNominal, ColumnUpper, ColumnLower} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	cell := func(record []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}
		rows = append(rows, Row{
			Line:    line,
			Nominal: cell(record, ColumnNominal),
			Upper:   cell(record, ColumnUpper),
			Lower:   cell(record, ColumnLower),
			Feature: cell(record, ColumnFeature),
		})
	}
	return rows, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// OutputHeader returns the column names written by WriteOutcomes.
func OutputHeader() []string {
	header := []string{"line", ColumnNominal, ColumnUpper, ColumnLower, ColumnFeature, "it_grade"}
	for _, role := range model.GaugeRoles {
		code := role.Code()
		header = append(header, code+"_nominal", code+"_upper", code+"_lower")
		if role == model.RoleGo {
			header = append(header, code+"_wear_limit")
		}
		header = append(header, code+"_ra")
	}
	return append(header, "error")
}

// WriteOutcomes writes one CSV row per outcome in input order. Failed rows
// carry their message in the error column and placeholders elsewhere.
func WriteOutcomes(w io.Writer, outcomes []Outcome, placeholder string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(OutputHeader()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, o := range outcomes {
		feature := model.Feature(strings.TrimSpace(o.Row.Feature))
		view := viewmodel.ClearedResultView(feature, placeholder)
		errText := ""
		if o.Err != nil {
			errText = strings.ReplaceAll(o.Err.Error(), "\n", "; ")
		} else if o.Result != nil {
			view = viewmodel.NewResultView(o.Result, placeholder)
		}

		record := []string{
			fmt.Sprint(o.Row.Line), o.Row.Nominal, o.Row.Upper, o.Row.Lower, view.Feature, view.Grade,
		}
		for _, g := range view.Gauges {
			record = append(record, g.Nominal, g.UpperDeviation, g.LowerDeviation)
			if g.ShowWearLimit {
				record = append(record, g.WearLimit)
			}
			record = append(record, g.Ra)
		}
		record = append(record, errText)

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write line %d: %w", o.Row.Line, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
