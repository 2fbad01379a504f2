// Package dataset loads tabular data into gonum matrices and splits it
// into training and test partitions.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdlinear/pkg/errors"
	"github.com/YuminosukeSato/gdlinear/pkg/log"
)

// Dataset is a feature matrix with its label column.
type Dataset struct {
	Features     *mat.Dense
	Labels       *mat.VecDense
	FeatureNames []string
	LabelName    string
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	r, _ := d.Features.Dims()
	return r
}

// NFeatures returns the number of feature columns.
func (d *Dataset) NFeatures() int {
	_, c := d.Features.Dims()
	return c
}

// Split partitions the dataset with TrainTestSplit.
func (d *Dataset) Split(testFraction float64) (*Split, error) {
	return TrainTestSplit(d.Features, d.Labels, testFraction)
}

// ParseError reports a cell that is not a number.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gdlinear: line %d, column %q: cannot parse %q as a number", e.Line, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MarshalZerologObject adds the failing cell to a zerolog event.
func (e *ParseError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("line", e.Line).
		Str("column", e.Column).
		Str("value", e.Value).
		Str("type", "ParseError")
}

type loadConfig struct {
	features []string
}

// LoadOption configures LoadCSV.
type LoadOption func(*loadConfig)

// WithFeatures selects and orders the feature columns. By default every
// column except the label is a feature, in header order. Surrounding
// spaces are ignored, as they are in the header.
func WithFeatures(names ...string) LoadOption {
	var trimmed []string
	for _, n := range names {
		trimmed = append(trimmed, strings.TrimSpace(n))
	}
	return func(c *loadConfig) {
		c.features = trimmed
	}
}

// LoadCSV reads a CSV table with a header row. label names the column that
// holds the labels.
func LoadCSV(r io.Reader, label string, opts ...LoadOption) (*Dataset, error) {
	const op = "LoadCSV"
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewEmptyInputError(op)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	labelCol, ok := index[label]
	if !ok {
		return nil, errors.NewValidationError("label", "column not found in header", label)
	}

	featureNames := cfg.features
	if featureNames == nil {
		for _, name := range header {
			if name = strings.TrimSpace(name); name != label {
				featureNames = append(featureNames, name)
			}
		}
	}
	if len(featureNames) == 0 {
		return nil, errors.NewValidationError("features", "no feature columns", header)
	}
	featureCols := make([]int, len(featureNames))
	for k, name := range featureNames {
		col, ok := index[name]
		if !ok {
			return nil, errors.NewValidationError("features", "column not found in header", name)
		}
		featureCols[k] = col
	}

	var xs, ys []float64
	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read row %d", rows+1)
		}
		line, _ := reader.FieldPos(0)
		if len(record) != len(header) {
			return nil, errors.Wrapf(
				errors.NewDimensionError(op, len(header), len(record), 1),
				"line %d", line)
		}

		for k, col := range featureCols {
			v, err := parseCell(record[col], line, featureNames[k])
			if err != nil {
				return nil, err
			}
			xs = append(xs, v)
		}
		v, err := parseCell(record[labelCol], line, label)
		if err != nil {
			return nil, err
		}
		ys = append(ys, v)
		rows++
	}
	if rows == 0 {
		return nil, errors.NewEmptyInputError(op)
	}

	return &Dataset{
		Features:     mat.NewDense(rows, len(featureCols), xs),
		Labels:       mat.NewVecDense(rows, ys),
		FeatureNames: append([]string(nil), featureNames...),
		LabelName:    label,
	}, nil
}

// LoadCSVFile opens path and calls LoadCSV.
func LoadCSVFile(path, label string, opts ...LoadOption) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %s", path)
	}
	defer f.Close()

	ds, err := LoadCSV(f, label, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	log.GetLogger().Debug("dataset loaded",
		log.OperationKey, log.OperationLoad,
		log.SourceKey, path,
		log.SamplesKey, ds.Len(),
		log.FeaturesKey, ds.NFeatures(),
	)
	return ds, nil
}

func parseCell(s string, line int, column string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.WithStack(&ParseError{Line: line, Column: column, Value: s, Err: err})
	}
	return v, nil
}
