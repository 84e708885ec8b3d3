package log

import (
	"github.com/sirupsen/logrus"
)

type Logger interface {
	Trace(message string, opts ...interface{})
	Debug(message string, opts ...interface{})
	Info(message string, opts ...interface{})
	Warning(message string, opts ...interface{})
	Error(message string, opts ...interface{})
	Fatal(message string, opts ...interface{})
	Child(opts ...interface{}) Logger
}

type childLogger struct {
	l      Logger
	fields []interface{}
}

func (c *childLogger) Trace(message string, opts ...interface{}) {
	c.l.Trace(message, append(opts, c.fields...)...)
}

func (c *childLogger) Debug(message string, opts ...interface{}) {
	c.l.Debug(message, append(opts, c.fields...)...)
}

func (c *childLogger) Info(message string, opts ...interface{}) {
	c.l.Info(message, append(opts, c.fields...)...)
}

func (c *childLogger) Warning(message string, opts ...interface{}) {
	c.l.Warning(message, append(opts, c.fields...)...)
}

func (c *childLogger) Error(message string, opts ...interface{}) {
	c.l.Error(message, append(opts, c.fields...)...)
}

func (c *childLogger) Fatal(message string, opts ...interface{}) {
	c.l.Fatal(message, append(opts, c.fields...)...)
}

func (c *childLogger) Child(opts ...interface{}) Logger {
	return &childLogger{
		l:      c,
		fields: opts,
	}
}

type rootLogger struct {
}

func (r *rootLogger) Trace(message string, opts ...interface{}) {
	r.entry(opts).Trace(message)
}

func (r *rootLogger) Debug(message string, opts ...interface{}) {
	r.entry(opts).Debug(message)
}

func (r *rootLogger) Info(message string, opts ...interface{}) {
	r.entry(opts).Info(message)
}

func (r *rootLogger) Warning(message string, opts ...interface{}) {
	r.entry(opts).Warning(message)
}

func (r *rootLogger) Error(message string, opts ...interface{}) {
	r.entry(opts).Error(message)
}

func (r *rootLogger) Fatal(message string, opts ...interface{}) {
	r.entry(opts).Fatal(message)
}

func (r *rootLogger) Child(opts ...interface{}) Logger {
	return &childLogger{
		l:      r,
		fields: opts,
	}
}

func (r *rootLogger) entry(opts []interface{}) *logrus.Entry {
	if len(opts)%2 != 0 {
		panic("mismatched log key/value pairs")
	}

	fields := make(logrus.Fields, len(opts)/2)
	for i := 0; i < len(opts); i += 2 {
		fields[opts[i].(string)] = opts[i+1]
	}
	return logrus.WithFields(fields)
}

var root = new(rootLogger)

func ModuleLogger(name string) Logger {
	return root.Child("module", name)
}

func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	return nil
}
