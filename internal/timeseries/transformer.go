package timeseries

import (
	"slices"

	"trafficapi/internal/domain"
)

type NameResolver interface {
	Name(metricID string) (string, bool)
}

// Transformer wraps dense series with their display name and total.
type Transformer struct {
	names NameResolver
}

func NewTransformer(names NameResolver) *Transformer {
	return &Transformer{names: names}
}

func (t *Transformer) ToSeries(metricID string, data []int64) (domain.MetricSeries, error) {
	name, ok := t.names.Name(metricID)
	if !ok {
		return domain.MetricSeries{}, &domain.UnknownMetricError{MetricID: metricID}
	}

	var total int64
	for _, v := range data {
		total += v
	}

	return domain.MetricSeries{
		Name:  name,
		Total: total,
		Data:  slices.Clone(data),
	}, nil
}
