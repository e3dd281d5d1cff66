package telemetry

import (
	"github.com/getsentry/sentry-go"
)

// InitSentry initializes Sentry for the service. An empty DSN disables it;
// every capture call below becomes a no-op in that case.
func InitSentry(dsn, serviceName, environment string) error {
	if dsn == "" {
		return nil
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		ServerName:  serviceName,
	})
}

// CaptureError reports err with key/value tags attached to the event scope.
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}
