package check

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Result is the recorded outcome of a single check within one evaluation.
type Result struct {
	// Name is the check's identifier.
	Name string

	// OK reports whether the check passed.
	OK bool

	// Err carries the failure reason when one is available: the error from
	// a ping-style check, ErrCheckTimeout, or the recovered panic value.
	// It is kept for logging only; serialization emits just Name and OK.
	Err error

	// Duration is how long the check ran.
	Duration time.Duration
}

// Report is the ordered outcome of one evaluation pass. The zero value is
// an empty, passing report.
type Report struct {
	results []Result
}

// NewReport builds a report from results, preserving their order.
func NewReport(results []Result) Report {
	return Report{results: results}
}

// OK reports whether every check passed. An empty report is passing.
func (r Report) OK() bool {
	for _, res := range r.results {
		if !res.OK {
			return false
		}
	}
	return true
}

// Len returns the number of results.
func (r Report) Len() int {
	return len(r.results)
}

// Results returns a copy of the results in evaluation order.
func (r Report) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Failures returns the failed results in evaluation order.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.results {
		if !res.OK {
			out = append(out, res)
		}
	}
	return out
}

// MarshalJSON renders the report as a single flat object mapping each
// check name to its boolean outcome, in evaluation order:
//
//	{"db":true,"cache":false}
//
// An empty report renders as {}.
func (r Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, res := range r.results {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(res.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatBool(res.OK))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Ensure Report implements json.Marshaler
var _ json.Marshaler = Report{}
