package retry

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/vvka-141/mdconv/internal/fetch"
	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// HTTPErrorClassifier implements mdconv.ErrorClassifier for schema downloads.
type HTTPErrorClassifier struct{}

var _ mdconv.ErrorClassifier = (*HTTPErrorClassifier)(nil)

// NewHTTPErrorClassifier creates a classifier for fetch errors.
func NewHTTPErrorClassifier() *HTTPErrorClassifier {
	return &HTTPErrorClassifier{}
}

// IsTransient reports whether retrying the download may succeed.
func (c *HTTPErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var fetchErr *fetch.Error
	if errors.As(err, &fetchErr) && fetchErr.StatusCode > 0 {
		return isTransientStatus(fetchErr.StatusCode)
	}

	if isNetworkError(err) {
		return true
	}
	return hasTransientMessage(err)
}

func isTransientStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests, http.StatusRequestTimeout:
		return true
	}
	return code >= 500 && code != http.StatusNotImplemented
}

func isNetworkError(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.Temporary() || dnsErr.Timeout()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	for _, errno := range []syscall.Errno{
		syscall.ECONNREFUSED,
		syscall.ECONNRESET,
		syscall.ENETUNREACH,
		syscall.EHOSTUNREACH,
	} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}

// transientPatterns match errors from transports that do not wrap syscall errors.
var transientPatterns = []string{
	"connection refused",
	"connection reset",
	"network is unreachable",
	"i/o timeout",
	"broken pipe",
	"unexpected eof",
	"tls handshake timeout",
	"server closed idle connection",
}

func hasTransientMessage(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, pattern := range transientPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
