package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	defaultIdleTimeout  = 10 * time.Minute
	evictionCheckPeriod = 512
)

// ArgsSourceThrottler is the DTO used to create a new source throttler
type ArgsSourceThrottler struct {
	RequestsPerSecond float64
	Burst             int
	IdleTimeout       time.Duration
}

type sourceEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// sourceThrottler is a middleware limiter applying a token bucket to each request source
type sourceThrottler struct {
	limit       rate.Limit
	burst       int
	idleTimeout time.Duration

	mutSources  sync.Mutex
	sources     map[string]*sourceEntry
	numRequests uint64
	getTimeFunc func() time.Time
}

// NewSourceThrottler creates a new instance of a sourceThrottler
func NewSourceThrottler(args ArgsSourceThrottler) (*sourceThrottler, error) {
	if args.RequestsPerSecond <= 0 {
		return nil, ErrInvalidRequestsPerSecond
	}
	if args.Burst <= 0 {
		return nil, ErrInvalidBurst
	}
	idleTimeout := args.IdleTimeout
	if idleTimeout <= 0 {
		idleTimeout = defaultIdleTimeout
	}

	return &sourceThrottler{
		limit:       rate.Limit(args.RequestsPerSecond),
		burst:       args.Burst,
		idleTimeout: idleTimeout,
		sources:     make(map[string]*sourceEntry),
		getTimeFunc: time.Now,
	}, nil
}

// MiddlewareHandlerFunc returns the handler func used by the gin server to limit requests originating from the same source
func (st *sourceThrottler) MiddlewareHandlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		source := sourceOf(c)
		if !st.allow(source) {
			log.Debug("source throttler: request rejected", "source", source, "path", c.Request.URL.Path)
			abortWithTooManyRequests(c, fmt.Sprintf("%s for address %s", ErrTooManyRequests.Error(), source))
			return
		}

		c.Next()
	}
}

func (st *sourceThrottler) allow(source string) bool {
	now := st.getTimeFunc()

	st.mutSources.Lock()
	defer st.mutSources.Unlock()

	entry, ok := st.sources[source]
	if !ok {
		entry = &sourceEntry{
			limiter: rate.NewLimiter(st.limit, st.burst),
		}
		st.sources[source] = entry
	}
	entry.lastSeen = now
	allowed := entry.limiter.AllowN(now, 1)

	st.numRequests++
	if st.numRequests%evictionCheckPeriod == 0 {
		st.evictIdleSources(now)
	}

	return allowed
}

func (st *sourceThrottler) evictIdleSources(now time.Time) {
	cutoff := now.Add(-st.idleTimeout)
	for source, entry := range st.sources {
		if entry.lastSeen.Before(cutoff) {
			delete(st.sources, source)
		}
	}
}

// Reset removes all tracked sources
func (st *sourceThrottler) Reset() {
	st.mutSources.Lock()
	st.sources = make(map[string]*sourceEntry)
	st.mutSources.Unlock()
}

// IsInterfaceNil returns true if there is no value under the interface
func (st *sourceThrottler) IsInterfaceNil() bool {
	return st == nil
}
