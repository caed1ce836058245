package engine

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/viant/vecmetric/metric"
	"github.com/viant/vecmetric/vector"
	sqlite "modernc.org/sqlite"
)

// DistanceFunction is the name of the SQL function taking the metric name as
// its first argument.
const DistanceFunction = "vec_distance"

var (
	registerOnce sync.Once
	registerErr  error
)

// MetricFunction returns the SQL function name bound to m, e.g.
// vec_euclidean.
func MetricFunction(m metric.Metric) string {
	switch m {
	case metric.CosineDistance:
		return "vec_cosine_distance"
	default:
		return "vec_" + m.Name()
	}
}

// RegisterDistanceFunctions registers vec_distance and one function per
// metric with the driver so they are available on new connections opened
// after this call. Existing open connections will not see new functions.
// Subsequent calls return the result of the first one.
func RegisterDistanceFunctions() error {
	registerOnce.Do(func() {
		registerErr = register()
	})
	return registerErr
}

func register() error {
	if err := sqlite.RegisterDeterministicScalarFunction(DistanceFunction, 3, vecDistanceImpl); err != nil {
		return fmt.Errorf("engine: register %s: %w", DistanceFunction, err)
	}
	for _, m := range metric.All() {
		name := MetricFunction(m)
		if err := sqlite.RegisterDeterministicScalarFunction(name, 2, metricImpl(name, m)); err != nil {
			return fmt.Errorf("engine: register %s: %w", name, err)
		}
	}
	return nil
}

func vecDistanceImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("%s: expected 3 arguments, got %d", DistanceFunction, len(args))
	}
	var name string
	switch v := args[0].(type) {
	case nil:
		observe(unknownMetric, statusNull)
		return nil, nil
	case string:
		name = v
	case []byte:
		name = string(v)
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T for metric; want TEXT", DistanceFunction, args[0])
	}
	m, err := metric.ParseMetric(name)
	if err != nil {
		observe(unknownMetric, statusError)
		return nil, fmt.Errorf("%s: %w", DistanceFunction, err)
	}
	return evaluate(DistanceFunction, m, args[1], args[2])
}

type scalarFunc = func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error)

func metricImpl(name string, m metric.Metric) scalarFunc {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s: expected 2 arguments, got %d", name, len(args))
		}
		return evaluate(name, m, args[0], args[1])
	}
}

func evaluate(fn string, m metric.Metric, argA, argB driver.Value) (driver.Value, error) {
	a, err := asEmbedding(fn, argA)
	if err != nil {
		observe(m.Name(), statusError)
		return nil, err
	}
	b, err := asEmbedding(fn, argB)
	if err != nil {
		observe(m.Name(), statusError)
		return nil, err
	}
	if a == nil || b == nil {
		observe(m.Name(), statusNull)
		return nil, nil
	}
	d, err := metric.Compute(m, a, b)
	if err != nil {
		observe(m.Name(), statusError)
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	observe(m.Name(), statusOK)
	return float64(d), nil
}

// asEmbedding returns nil for a NULL argument and an empty, non-nil vector
// for a zero-length BLOB.
func asEmbedding(fn string, arg driver.Value) (vector.Vector, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		decoded, err := vector.DecodeEmbedding(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn, err)
		}
		if decoded == nil {
			decoded = vector.Vector{}
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T for embedding; want BLOB", fn, arg)
	}
}
