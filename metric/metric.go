package metric

import (
	"strconv"
	"strings"
)

// Metric selects a distance function.
type Metric int

const (
	// Euclidean is the L2 distance.
	Euclidean Metric = iota
	// Manhattan is the L1 distance.
	Manhattan
	// CosineDistance is one minus the cosine similarity.
	CosineDistance
)

var names = [...]string{
	Euclidean:      "euclidean",
	Manhattan:      "manhattan",
	CosineDistance: "cosinesim",
}

// aliases maps every accepted lowercase spelling to its metric.
var aliases = map[string]Metric{
	"euclidean": Euclidean,
	"e":         Euclidean,
	"manhattan": Manhattan,
	"m":         Manhattan,
	"cosinesim": CosineDistance,
	"c":         CosineDistance,
}

// All returns every metric in declaration order.
func All() []Metric {
	return []Metric{Euclidean, Manhattan, CosineDistance}
}

// Valid reports whether m is one of the declared metrics.
func (m Metric) Valid() bool {
	return m >= Euclidean && int(m) < len(names)
}

// Name returns the canonical lowercase name, or "" for an undeclared value.
func (m Metric) Name() string {
	if !m.Valid() {
		return ""
	}
	return names[m]
}

func (m Metric) String() string {
	if !m.Valid() {
		return "metric(" + strconv.Itoa(int(m)) + ")"
	}
	return names[m]
}

// Parse looks up a metric by canonical name or shorthand, ignoring case and
// surrounding whitespace. The boolean is false when name is not recognised.
func Parse(name string) (Metric, bool) {
	m, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// ParseMetric is like Parse but returns an *UnknownMetricError for an
// unrecognised name.
func ParseMetric(name string) (Metric, error) {
	m, ok := Parse(name)
	if !ok {
		return 0, &UnknownMetricError{Name: name}
	}
	return m, nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, &UnsupportedMetricError{Metric: m}
	}
	return []byte(names[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(text []byte) error {
	parsed, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
