package middleware

import "time"

// RequestLogEntry is an exported view of a logged request used in tests
type RequestLogEntry struct {
	Title    string
	Path     string
	Status   int
	Response string
}

// SetPrintRequestFunc -
func (rlm *responseLoggerMiddleware) SetPrintRequestFunc(handler func(entry RequestLogEntry)) {
	rlm.printRequestFunc = func(entry requestLogEntry) {
		handler(RequestLogEntry{
			Title:    entry.title,
			Path:     entry.path,
			Status:   entry.status,
			Response: entry.response,
		})
	}
}

// SetGetTimeFunc -
func (st *sourceThrottler) SetGetTimeFunc(getTimeFunc func() time.Time) {
	st.mutSources.Lock()
	st.getTimeFunc = getTimeFunc
	st.mutSources.Unlock()
}

// NumTrackedSources -
func (st *sourceThrottler) NumTrackedSources() int {
	st.mutSources.Lock()
	defer st.mutSources.Unlock()

	return len(st.sources)
}

// ComputeLogTitle -
func ComputeLogTitle(status int) string {
	return computeLogTitle(status)
}
