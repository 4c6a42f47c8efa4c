package log

import (
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

// SetLogFile directs log output to a rotated file.
// logRotation and logMaxAge are in hours.
func SetLogFile(logFile string, logRotation, logMaxAge uint64) {
	if logFile == "" {
		return
	}
	writer, err := rotatelogs.New(
		logFile+".%Y%m%d%H",
		rotatelogs.WithLinkName(logFile),
		rotatelogs.WithRotationTime(time.Duration(logRotation)*time.Hour),
		rotatelogs.WithMaxAge(time.Duration(logMaxAge)*time.Hour),
	)
	if err != nil {
		logrus.Fatalf("create rotate logs for file %v failed. %v", logFile, err)
	}
	JSONFormat = true
	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: timestampFormat,
	})
	logrus.SetOutput(writer)
	logrus.Infof("set log file to %v success, rotation %v hours, max age %v hours", logFile, logRotation, logMaxAge)
}
