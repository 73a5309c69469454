package stats

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-frame/frame"
	errors "github.com/go-frame/frame/errors"
)

// PositiveLabel designates which label value is the positive class of a
// binary classifier. It is either a string or a numeric designator; the two
// are mutually exclusive. Absence of a PositiveLabel selects multiclass
// metrics instead.
type PositiveLabel interface {
	matches(v interface{}) bool
	String() string
}

type stringLabel string

func (l stringLabel) matches(v interface{}) bool {
	s, ok := v.(string)
	return ok && s == string(l)
}

func (l stringLabel) String() string {
	return string(l)
}

type numericLabel float64

func (l numericLabel) matches(v interface{}) bool {
	f, ok := frame.ToFloat64(v)
	return ok && f == float64(l)
}

func (l numericLabel) String() string {
	return strconv.FormatFloat(float64(l), 'g', -1, 64)
}

// PositiveString designates a string label value as the positive class
func PositiveString(label string) PositiveLabel {
	return stringLabel(label)
}

// PositiveNumber designates a numeric label value as the positive class
func PositiveNumber(label float64) PositiveLabel {
	return numericLabel(label)
}

// ConfusionMatrix counts observations per (actual, predicted) label pairing:
// Counts[i][j] is the (frequency-weighted) number of rows whose actual label
// is Labels[i] and whose predicted label is Labels[j].
type ConfusionMatrix struct {
	Labels []string
	Counts [][]float64
}

// GetCount returns the count of rows with the given actual and predicted labels
func (m *ConfusionMatrix) GetCount(actual string, predicted string) (float64, error) {
	i, j := -1, -1
	for idx, l := range m.Labels {
		if l == actual {
			i = idx
		}
		if l == predicted {
			j = idx
		}
	}
	if i < 0 || j < 0 {
		return 0, fmt.Errorf("confusion matrix does not contain labels (%s, %s)", actual, predicted)
	}
	return m.Counts[i][j], nil
}

// ClassificationMetricsValue holds the metrics of a classification model.
// Degenerate denominators (no predicted positives, no actual positives, no
// rows) yield 0 rather than an error.
type ClassificationMetricsValue struct {
	Accuracy        float64
	Precision       float64
	Recall          float64
	FMeasure        float64
	ConfusionMatrix *ConfusionMatrix
}

// BinaryClassificationMetrics computes the precision, recall, F-beta measure,
// accuracy and 2x2 confusion matrix of a binary classifier in a single
// frequency-weighted pass, counting each row as a true/false positive/negative
// against the designated positive label. If frequencyColumn is non-empty,
// each row contributes its frequency value instead of 1. Rows with a null
// label or prediction are excluded. Parameters are validated before any pass:
// beta must be greater than zero and both column names must name existing
// columns.
func BinaryClassificationMetrics(labelColumn string, predColumn string, posLabel PositiveLabel, beta float64, frequencyColumn string) frame.Summarization {
	return func(state *frame.State) (interface{}, error) {
		if posLabel == nil {
			return nil, errors.MissingParameterError{Name: "posLabel"}
		}
		if err := validateMetricsParams(state.GetSchema(), labelColumn, predColumn, beta, frequencyColumn); err != nil {
			return nil, err
		}
		acc, err := state.GetDataset().Aggregate(func() frame.Accumulator {
			return &binaryCounter{labelCol: labelColumn, predCol: predColumn, freqCol: frequencyColumn, pos: posLabel}
		})
		if err != nil {
			return nil, err
		}
		c := acc.(*binaryCounter)
		precision := ratio(c.tp, c.tp+c.fp)
		recall := ratio(c.tp, c.tp+c.fn)
		return &ClassificationMetricsValue{
			Accuracy:  ratio(c.tp+c.tn, c.tp+c.tn+c.fp+c.fn),
			Precision: precision,
			Recall:    recall,
			FMeasure:  fMeasure(precision, recall, beta),
			ConfusionMatrix: &ConfusionMatrix{
				Labels: []string{"pos", "neg"},
				Counts: [][]float64{{c.tp, c.fn}, {c.fp, c.tn}},
			},
		}, nil
	}
}

// MulticlassClassificationMetrics builds an NxN confusion matrix over all
// observed labels in a single frequency-weighted pass, then reports accuracy
// plus precision, recall and F-beta averaged across classes weighted by each
// class's support (its frequency-weighted row count). Matrix labels are
// ordered by the label column's natural ordering.
func MulticlassClassificationMetrics(labelColumn string, predColumn string, beta float64, frequencyColumn string) frame.Summarization {
	return func(state *frame.State) (interface{}, error) {
		if err := validateMetricsParams(state.GetSchema(), labelColumn, predColumn, beta, frequencyColumn); err != nil {
			return nil, err
		}
		labelType, err := columnType(state.GetSchema(), labelColumn)
		if err != nil {
			return nil, err
		}
		predType, err := columnType(state.GetSchema(), predColumn)
		if err != nil {
			return nil, err
		}
		acc, err := state.GetDataset().Aggregate(func() frame.Accumulator {
			return &confusionCounter{
				labelCol: labelColumn, predCol: predColumn, freqCol: frequencyColumn,
				labelType: labelType, predType: predType,
				counts: make(map[labelPair]float64), ordering: make(map[string]float64),
			}
		})
		if err != nil {
			return nil, err
		}
		c := acc.(*confusionCounter)
		matrix := c.matrix()
		n := len(matrix.Labels)

		var total, trace float64
		rowSums := make([]float64, n)
		colSums := make([]float64, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v := matrix.Counts[i][j]
				total += v
				rowSums[i] += v
				colSums[j] += v
			}
			trace += matrix.Counts[i][i]
		}

		var precision, recall, f float64
		for i := 0; i < n; i++ {
			p := ratio(matrix.Counts[i][i], colSums[i])
			r := ratio(matrix.Counts[i][i], rowSums[i])
			support := rowSums[i]
			precision += p * support
			recall += r * support
			f += fMeasure(p, r, beta) * support
		}
		if total > 0 {
			precision /= total
			recall /= total
			f /= total
		}
		return &ClassificationMetricsValue{
			Accuracy:        ratio(trace, total),
			Precision:       precision,
			Recall:          recall,
			FMeasure:        f,
			ConfusionMatrix: matrix,
		}, nil
	}
}

func validateMetricsParams(schema frame.Schema, labelColumn, predColumn string, beta float64, frequencyColumn string) error {
	if len(labelColumn) == 0 {
		return errors.MissingParameterError{Name: "labelColumn"}
	}
	if len(predColumn) == 0 {
		return errors.MissingParameterError{Name: "predColumn"}
	}
	if beta <= 0 {
		return errors.NonPositiveBetaError{Beta: beta}
	}
	cols := []string{labelColumn, predColumn}
	if len(frequencyColumn) > 0 {
		cols = append(cols, frequencyColumn)
	}
	_, err := schema.ValidateColumnsExist(cols...)
	return err
}

func columnType(schema frame.Schema, colName string) (frame.ColumnType, error) {
	col, err := schema.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	return col.Type(), nil
}

func ratio(num float64, denom float64) float64 {
	if denom == 0 {
		return 0
	}
	return num / denom
}

func fMeasure(precision float64, recall float64, beta float64) float64 {
	denom := beta*beta*precision + recall
	if denom == 0 {
		return 0
	}
	return (1 + beta*beta) * precision * recall / denom
}

// binaryCounter accumulates frequency-weighted true/false positive/negative
// counts against a designated positive label
type binaryCounter struct {
	labelCol string
	predCol  string
	freqCol  string
	pos      PositiveLabel
	tp       float64
	fp       float64
	tn       float64
	fn       float64
}

// Accumulate adds a row to this Accumulator
func (a *binaryCounter) Accumulate(row frame.Row) error {
	if row.IsNil(a.labelCol) || row.IsNil(a.predCol) {
		return nil
	}
	w, err := frequencyOf(row, a.freqCol)
	if err != nil || w <= 0 {
		return err
	}
	label, err := row.Get(a.labelCol)
	if err != nil {
		return err
	}
	pred, err := row.Get(a.predCol)
	if err != nil {
		return err
	}
	actualPos := a.pos.matches(label)
	predictedPos := a.pos.matches(pred)
	switch {
	case actualPos && predictedPos:
		a.tp += w
	case !actualPos && predictedPos:
		a.fp += w
	case actualPos && !predictedPos:
		a.fn += w
	default:
		a.tn += w
	}
	return nil
}

// Merge merges another Accumulator into this one
func (a *binaryCounter) Merge(o frame.Accumulator) error {
	ba, ok := o.(*binaryCounter)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a binaryCounter Accumulator")
	}
	a.tp += ba.tp
	a.fp += ba.fp
	a.tn += ba.tn
	a.fn += ba.fn
	return nil
}

type labelPair struct {
	actual    string
	predicted string
}

// confusionCounter accumulates frequency-weighted counts per
// (actual, predicted) label pairing over all observed labels
type confusionCounter struct {
	labelCol  string
	predCol   string
	freqCol   string
	labelType frame.ColumnType
	predType  frame.ColumnType
	counts    map[labelPair]float64
	// ordering remembers a numeric sort key per label when labels are numeric
	ordering map[string]float64
	numeric  bool
	seenAny  bool
}

// Accumulate adds a row to this Accumulator
func (a *confusionCounter) Accumulate(row frame.Row) error {
	if row.IsNil(a.labelCol) || row.IsNil(a.predCol) {
		return nil
	}
	w, err := frequencyOf(row, a.freqCol)
	if err != nil || w <= 0 {
		return err
	}
	label, err := row.Get(a.labelCol)
	if err != nil {
		return err
	}
	pred, err := row.Get(a.predCol)
	if err != nil {
		return err
	}
	actual := a.observe(a.labelType.ToString(label), label)
	predicted := a.observe(a.predType.ToString(pred), pred)
	a.counts[labelPair{actual, predicted}] += w
	return nil
}

func (a *confusionCounter) observe(name string, v interface{}) string {
	f, isNumeric := frame.ToFloat64(v)
	if !a.seenAny {
		a.numeric = isNumeric
		a.seenAny = true
	}
	a.numeric = a.numeric && isNumeric
	if _, ok := a.ordering[name]; !ok {
		a.ordering[name] = f
	}
	return name
}

// Merge merges another Accumulator into this one
func (a *confusionCounter) Merge(o frame.Accumulator) error {
	ca, ok := o.(*confusionCounter)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a confusionCounter Accumulator")
	}
	for pair, w := range ca.counts {
		a.counts[pair] += w
	}
	for name, f := range ca.ordering {
		if _, ok := a.ordering[name]; !ok {
			a.ordering[name] = f
		}
	}
	if ca.seenAny {
		if !a.seenAny {
			a.numeric = ca.numeric
			a.seenAny = true
		} else {
			a.numeric = a.numeric && ca.numeric
		}
	}
	return nil
}

// matrix finalizes the accumulated counts into an NxN ConfusionMatrix over
// all observed labels, ordered by the labels' natural ordering
func (a *confusionCounter) matrix() *ConfusionMatrix {
	labels := make([]string, 0, len(a.ordering))
	for name := range a.ordering {
		labels = append(labels, name)
	}
	sort.Slice(labels, func(i, j int) bool {
		if a.numeric {
			return a.ordering[labels[i]] < a.ordering[labels[j]]
		}
		return labels[i] < labels[j]
	})
	counts := make([][]float64, len(labels))
	for i, actual := range labels {
		counts[i] = make([]float64, len(labels))
		for j, predicted := range labels {
			counts[i][j] = a.counts[labelPair{actual, predicted}]
		}
	}
	return &ConfusionMatrix{Labels: labels, Counts: counts}
}

func frequencyOf(row frame.Row, freqCol string) (float64, error) {
	if len(freqCol) == 0 {
		return 1, nil
	}
	if row.IsNil(freqCol) {
		return 0, nil
	}
	return row.GetFloat64(freqCol)
}
