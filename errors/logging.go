package errors

import "github.com/sirupsen/logrus"

// discardLogger is the default logger used when a caller does not supply
// one via htmldom.WithLogger. Library code must never emit log output by
// default — embedding htmldom in a server should produce zero log volume
// unless the caller opts in.
var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(logrusDiscard{})
	return l
}()

type logrusDiscard struct{}

func (logrusDiscard) Write(p []byte) (int, error) { return len(p), nil }

// DefaultLogger returns the package-wide discard logger.
func DefaultLogger() *logrus.Logger {
	return discardLogger
}

// LogParseError emits a soft parse error at Debug level, following the
// logrus.WithField(...).Debugf(...) idiom used for recoverable conditions
// elsewhere in this codebase's lineage.
func LogParseError(log *logrus.Logger, e *ParseError) {
	if log == nil {
		log = discardLogger
	}
	log.WithField("code", e.Code).
		WithField("line", e.Line).
		WithField("column", e.Column).
		Debug(e.Message)
}

// LogDOMError emits a hard DOM mutation rejection at Warn level: these are
// always surfaced to the caller too, but logging them lets a host
// application correlate rejected mutations with the parse/transform run
// that produced them.
func LogDOMError(log *logrus.Logger, e *DOMError) {
	if log == nil {
		log = discardLogger
	}
	log.WithField("op", e.Op).WithField("kind", e.Kind.String()).Warn(e.Message)
}
