package exceptions

import (
	"time"

	"github.com/cbsinteractive/annotate/timecode"
	"github.com/getsentry/sentry-go"
)

const defaultFlushTimeout = time.Second * 5

// Reporter sends exceptions to an external source
type Reporter interface {
	ReportException(err error)
}

// NewReporter returns a SentryReporter for dsn, or a NoopReporter when dsn
// is empty.
func NewReporter(dsn, env string) (Reporter, error) {
	if dsn == "" {
		return &NoopReporter{}, nil
	}
	return NewSentryReporter(dsn, env)
}

// NoopReporter is a no-op exception reporter
type NoopReporter struct{}

// ReportException does nothing
func (r *NoopReporter) ReportException(_ error) {}

// SentryReporter is a Reporter that sends error information to Sentry.
// Invalid input is the caller's mistake, not an exception, and is not sent.
type SentryReporter struct {
	flush time.Duration
}

// NewSentryReporter creates and returns an instance of SentryReporter
func NewSentryReporter(dsn, env string) (*SentryReporter, error) {
	err := sentry.Init(sentry.ClientOptions{Dsn: dsn, Environment: env})
	if err != nil {
		return nil, err
	}
	return &SentryReporter{flush: defaultFlushTimeout}, nil
}

// ReportException will send errors to Sentry
func (r *SentryReporter) ReportException(err error) {
	if !Reportable(err) {
		return
	}
	sentry.CaptureException(err)
	sentry.Flush(r.flush)
}

// Reportable reports whether err is worth an exception report.
func Reportable(err error) bool {
	return err != nil && !timecode.IsInvalidArgument(err)
}
