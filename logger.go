package mactok

// Logger is satisfied by *zap.SugaredLogger.
type Logger interface {
	Debugf(format string, a ...interface{})
	Infof(format string, a ...interface{})
	Warnf(format string, a ...interface{})
	Errorf(format string, a ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(format string, a ...interface{}) {}
func (nopLogger) Infof(format string, a ...interface{})  {}
func (nopLogger) Warnf(format string, a ...interface{})  {}
func (nopLogger) Errorf(format string, a ...interface{}) {}

func loggerOrNop(logger Logger) Logger {
	if logger == nil {
		return nopLogger{}
	}
	return logger
}
