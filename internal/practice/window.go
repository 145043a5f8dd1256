package practice

// DefaultWindowCap is the default capacity of the recent-outcome window.
const DefaultWindowCap = 20

// Outcome is a single answer result retained for windowed calculations.
type Outcome struct {
	Correct        bool `json:"correct"`
	ResponseTimeMs int  `json:"response_time_ms"`
}

// Window is a bounded buffer of the most recent answer outcomes.
// Appending beyond capacity evicts the oldest entry.
type Window struct {
	Outcomes []Outcome `json:"outcomes"`
	Cap      int       `json:"cap"`
}

// NewWindow creates a window with the given capacity.
// A capacity of zero or less falls back to DefaultWindowCap.
func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		capacity = DefaultWindowCap
	}
	return &Window{Cap: capacity}
}

// Append records an outcome, evicting the oldest beyond capacity.
func (w *Window) Append(o Outcome) {
	if w.Cap <= 0 {
		w.Cap = DefaultWindowCap
	}
	w.Outcomes = append(w.Outcomes, o)
	if len(w.Outcomes) > w.Cap {
		w.Outcomes = w.Outcomes[len(w.Outcomes)-w.Cap:]
	}
}

// Len returns the number of outcomes currently held.
func (w *Window) Len() int {
	return len(w.Outcomes)
}

// Accuracy returns the fraction of correct outcomes in the window.
// Returns 0 for an empty window.
func (w *Window) Accuracy() float64 {
	if len(w.Outcomes) == 0 {
		return 0
	}
	correct := 0
	for _, o := range w.Outcomes {
		if o.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(w.Outcomes))
}

// AvgResponseTimeMs returns the mean response time over the window.
// Returns 0 for an empty window.
func (w *Window) AvgResponseTimeMs() float64 {
	if len(w.Outcomes) == 0 {
		return 0
	}
	sum := 0
	for _, o := range w.Outcomes {
		sum += o.ResponseTimeMs
	}
	return float64(sum) / float64(len(w.Outcomes))
}
