package stats

import (
	"testing"

	"github.com/go-frame/frame"
	"github.com/go-frame/frame/schema"
	ftesting "github.com/go-frame/frame/testing"
	"github.com/stretchr/testify/require"
)

func createTestLabelFrame(t *testing.T, labels, preds []interface{}) *frame.Frame {
	sch := schema.CreateSchema()
	_, err := sch.CreateColumn("labels", &frame.Float64ColumnType{})
	require.Nil(t, err)
	_, err = sch.CreateColumn("predictions", &frame.Float64ColumnType{})
	require.Nil(t, err)
	data := make([][]interface{}, len(labels))
	for i := range labels {
		data[i] = []interface{}{labels[i], preds[i]}
	}
	fr, err := ftesting.LocalFrame(2, sch, data)
	require.Nil(t, err)
	return fr
}

func TestBinaryClassificationMetricsBalanced(t *testing.T) {
	fr := createTestLabelFrame(t,
		[]interface{}{1, 1, 0, 0},
		[]interface{}{1, 0, 0, 1})
	res, err := fr.Summarize(BinaryClassificationMetrics("labels", "predictions", PositiveNumber(1), 1, ""))
	require.Nil(t, err)
	m := res.(*ClassificationMetricsValue)
	require.Equal(t, 0.5, m.Accuracy)
	require.Equal(t, 0.5, m.Precision)
	require.Equal(t, 0.5, m.Recall)
	require.Equal(t, 0.5, m.FMeasure)

	tp, err := m.ConfusionMatrix.GetCount("pos", "pos")
	require.Nil(t, err)
	require.Equal(t, 1.0, tp)
	fn, err := m.ConfusionMatrix.GetCount("pos", "neg")
	require.Nil(t, err)
	require.Equal(t, 1.0, fn)
}

func TestBinaryClassificationMetricsAsymmetric(t *testing.T) {
	fr := createTestLabelFrame(t,
		[]interface{}{0, 1, 0, 1},
		[]interface{}{0, 0, 0, 1})
	res, err := fr.Summarize(BinaryClassificationMetrics("labels", "predictions", PositiveNumber(1), 1, ""))
	require.Nil(t, err)
	m := res.(*ClassificationMetricsValue)
	require.Equal(t, 0.75, m.Accuracy)
	require.Equal(t, 1.0, m.Precision)
	require.Equal(t, 0.5, m.Recall)
	require.InDelta(t, 2.0/3.0, m.FMeasure, 1e-12)
}

func TestBinaryClassificationMetricsStringLabels(t *testing.T) {
	sch := schema.CreateSchema()
	_, err := sch.CreateColumn("labels", &frame.StringColumnType{})
	require.Nil(t, err)
	_, err = sch.CreateColumn("predictions", &frame.StringColumnType{})
	require.Nil(t, err)
	fr, err := ftesting.LocalFrame(2, sch, [][]interface{}{
		{"yes", "yes"}, {"yes", "no"}, {"no", "no"}, {"no", "yes"},
	})
	require.Nil(t, err)
	res, err := fr.Summarize(BinaryClassificationMetrics("labels", "predictions", PositiveString("yes"), 1, ""))
	require.Nil(t, err)
	m := res.(*ClassificationMetricsValue)
	require.Equal(t, 0.5, m.Accuracy)
}

func TestBinaryClassificationMetricsWeighted(t *testing.T) {
	sch := schema.CreateSchema()
	_, err := sch.CreateColumn("labels", &frame.Float64ColumnType{})
	require.Nil(t, err)
	_, err = sch.CreateColumn("predictions", &frame.Float64ColumnType{})
	require.Nil(t, err)
	_, err = sch.CreateColumn("freq", &frame.Float64ColumnType{})
	require.Nil(t, err)
	fr, err := ftesting.LocalFrame(2, sch, [][]interface{}{
		{1, 1, 3},
		{0, 1, 2},
	})
	require.Nil(t, err)
	res, err := fr.Summarize(BinaryClassificationMetrics("labels", "predictions", PositiveNumber(1), 1, "freq"))
	require.Nil(t, err)
	m := res.(*ClassificationMetricsValue)
	require.Equal(t, 0.6, m.Precision)
	require.Equal(t, 1.0, m.Recall)
}

func TestBinaryClassificationMetricsExcludesNullRows(t *testing.T) {
	fr := createTestLabelFrame(t,
		[]interface{}{1, nil, 0},
		[]interface{}{1, 1, nil})
	res, err := fr.Summarize(BinaryClassificationMetrics("labels", "predictions", PositiveNumber(1), 1, ""))
	require.Nil(t, err)
	m := res.(*ClassificationMetricsValue)
	require.Equal(t, 1.0, m.Accuracy)
}

func TestClassificationMetricsValidation(t *testing.T) {
	fr := createTestLabelFrame(t, []interface{}{1}, []interface{}{1})
	_, err := fr.Summarize(BinaryClassificationMetrics("labels", "predictions", PositiveNumber(1), 0, ""))
	require.Error(t, err)
	_, err = fr.Summarize(BinaryClassificationMetrics("labels", "predictions", PositiveNumber(1), -2, ""))
	require.Error(t, err)
	_, err = fr.Summarize(BinaryClassificationMetrics("", "predictions", PositiveNumber(1), 1, ""))
	require.Error(t, err)
	_, err = fr.Summarize(BinaryClassificationMetrics("labels", "missing", PositiveNumber(1), 1, ""))
	require.Error(t, err)
	_, err = fr.Summarize(BinaryClassificationMetrics("labels", "predictions", nil, 1, ""))
	require.Error(t, err)
	_, err = fr.Summarize(MulticlassClassificationMetrics("labels", "predictions", 0, ""))
	require.Error(t, err)

	// no pass runs when validation fails
	require.Equal(t, int64(0), fr.GetStats().GetNumPasses())
}

func TestMulticlassClassificationMetrics(t *testing.T) {
	fr := createTestLabelFrame(t,
		[]interface{}{0, 1, 2, 2},
		[]interface{}{0, 1, 1, 2})
	res, err := fr.Summarize(MulticlassClassificationMetrics("labels", "predictions", 1, ""))
	require.Nil(t, err)
	m := res.(*ClassificationMetricsValue)
	require.Equal(t, 0.75, m.Accuracy)
	require.InDelta(t, 0.875, m.Precision, 1e-12)
	require.InDelta(t, 0.75, m.Recall, 1e-12)
	require.InDelta(t, 0.75, m.FMeasure, 1e-12)

	// labels are ordered numerically
	require.Equal(t, []string{"0", "1", "2"}, m.ConfusionMatrix.Labels)
	c, err := m.ConfusionMatrix.GetCount("2", "1")
	require.Nil(t, err)
	require.Equal(t, 1.0, c)
}

func TestMulticlassClassificationMetricsSinglePass(t *testing.T) {
	fr := createTestLabelFrame(t,
		[]interface{}{0, 1, 0, 1},
		[]interface{}{0, 1, 1, 0})
	_, err := fr.Summarize(MulticlassClassificationMetrics("labels", "predictions", 1, ""))
	require.Nil(t, err)
	require.Equal(t, int64(1), fr.GetStats().GetNumPasses())
}
