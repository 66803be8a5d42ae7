package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
)

const (
	prefixDurationTooLong = "[too long]"
	prefixBadRequest      = "[bad request]"
	prefixInternalError   = "[internal error]"
	responseMaxLength     = 100
)

type requestLogEntry struct {
	title    string
	method   string
	path     string
	source   string
	duration time.Duration
	status   int
	response string
}

type responseLoggerMiddleware struct {
	thresholdDurationForLoggingRequest time.Duration
	printRequestFunc                   func(entry requestLogEntry)
}

// NewResponseLoggerMiddleware returns a new instance of responseLoggerMiddleware
func NewResponseLoggerMiddleware(thresholdDurationForLoggingRequest time.Duration) *responseLoggerMiddleware {
	rlm := &responseLoggerMiddleware{
		thresholdDurationForLoggingRequest: thresholdDurationForLoggingRequest,
	}
	rlm.printRequestFunc = rlm.printRequest

	return rlm
}

// MiddlewareHandlerFunc logs details about a request if it is not successful or its duration is higher than a threshold
func (rlm *responseLoggerMiddleware) MiddlewareHandlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		bw := &bodyWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = bw

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		shouldLogRequest := latency > rlm.thresholdDurationForLoggingRequest || status != http.StatusOK
		if !shouldLogRequest {
			return
		}

		response := removeWhitespacesFromString(bw.body.String())
		if len(response) > responseMaxLength {
			response = response[:responseMaxLength] + "..."
		}

		rlm.printRequestFunc(requestLogEntry{
			title:    computeLogTitle(status),
			method:   c.Request.Method,
			path:     c.Request.URL.RequestURI(),
			source:   sourceOf(c),
			duration: latency,
			status:   status,
			response: response,
		})
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (rlm *responseLoggerMiddleware) IsInterfaceNil() bool {
	return rlm == nil
}

func computeLogTitle(status int) string {
	logPrefix := prefixDurationTooLong
	switch {
	case status == http.StatusBadRequest:
		logPrefix = prefixBadRequest
	case status == http.StatusInternalServerError:
		logPrefix = prefixInternalError
	case status != http.StatusOK:
		logPrefix = fmt.Sprintf("http code %d", status)
	}

	return fmt.Sprintf("%s api request", logPrefix)
}

func (rlm *responseLoggerMiddleware) printRequest(entry requestLogEntry) {
	log.Debug(entry.title,
		"method", entry.method,
		"path", entry.path,
		"source", entry.source,
		"duration", entry.duration,
		"status", entry.status,
		"response", entry.response,
	)
}

func removeWhitespacesFromString(str string) string {
	var b strings.Builder
	b.Grow(len(str))
	for _, ch := range str {
		if !unicode.IsSpace(ch) {
			b.WriteRune(ch)
		}
	}

	return b.String()
}

type bodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write writes the data in the buffer and also to the wrapped writer
func (w *bodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}
