package domain

// Outcome is the result of a single test.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
)

// String returns the outcome as it appears in runner output.
func (o Outcome) String() string {
	if o == OutcomeFailure {
		return "FAIL"
	}
	return "PASS"
}

// MarshalText implements encoding.TextMarshaler so outcomes serialize
// as "PASS"/"FAIL" in stored results.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	if string(text) == "FAIL" {
		*o = OutcomeFailure
	} else {
		*o = OutcomeSuccess
	}
	return nil
}

// FailureDetail holds the diagnostic text attached to a failed test.
// All three fields carry the raw captured text so a report shows exactly
// what the runner printed.
type FailureDetail struct {
	Message    string `json:"message"`
	Detail     string `json:"detail"`
	StackTrace string `json:"stack_trace"`
}

// TestRecord is one test's parsed outcome, name, duration and message.
type TestRecord struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Outcome        Outcome        `json:"outcome"`
	DurationMillis int64          `json:"duration_ms"`
	Message        string         `json:"message"`
	Failure        *FailureDetail `json:"failure,omitempty"`
	Resolved       bool           `json:"resolved,omitempty"` // Track if failure is marked as resolved
}

// AddFailure attaches failure detail to the record.
func (r *TestRecord) AddFailure(message, detail, stackTrace string) {
	r.Failure = &FailureDetail{
		Message:    message,
		Detail:     detail,
		StackTrace: stackTrace,
	}
}

// ClassResult is a named group of test records, derived from the source
// file that declares them and the package path.
type ClassResult struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Records []TestRecord `json:"records"`
}

// Add appends a record to the class, preserving discovery order.
func (c *ClassResult) Add(record TestRecord) {
	c.Records = append(c.Records, record)
}

// FailureCount returns the number of failed records in the class.
func (c *ClassResult) FailureCount() int {
	count := 0
	for _, r := range c.Records {
		if r.Outcome == OutcomeFailure {
			count++
		}
	}
	return count
}

// SuccessCount returns the number of passed records in the class.
func (c *ClassResult) SuccessCount() int {
	return len(c.Records) - c.FailureCount()
}
