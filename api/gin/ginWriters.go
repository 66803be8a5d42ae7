package gin

import "strings"

type ginWriter struct {
}

// Write will output the message using the application logger
func (gv *ginWriter) Write(p []byte) (n int, err error) {
	log.Debug("gin server", "message", strings.TrimSpace(string(p)))

	return len(p), nil
}

type ginErrorWriter struct {
}

// Write will output the error using the application logger
func (gev *ginErrorWriter) Write(p []byte) (n int, err error) {
	log.Debug("gin server", "error", strings.TrimSpace(string(p)))

	return len(p), nil
}
