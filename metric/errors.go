package metric

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMetric matches any *UnknownMetricError via errors.Is.
	ErrUnknownMetric = errors.New("unknown distance metric")
	// ErrUnsupportedMetric matches any *UnsupportedMetricError via errors.Is.
	ErrUnsupportedMetric = errors.New("unsupported distance metric")
)

// UnknownMetricError is returned when a name matches no metric.
type UnknownMetricError struct {
	Name string
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("unknown distance metric: %s", e.Name)
}

func (e *UnknownMetricError) Is(target error) bool { return target == ErrUnknownMetric }

// UnsupportedMetricError is returned for a Metric value outside the declared
// constants, e.g. Metric(42).
type UnsupportedMetricError struct {
	Metric Metric
}

func (e *UnsupportedMetricError) Error() string {
	return fmt.Sprintf("unsupported distance metric: %d", int(e.Metric))
}

func (e *UnsupportedMetricError) Is(target error) bool { return target == ErrUnsupportedMetric }
