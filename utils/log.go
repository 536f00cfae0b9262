package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

const (
	logMaxAge   = 7 * 24 * time.Hour
	logRotation = 24 * time.Hour
)

type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToUpper(entry.Level.String())

	if entry.Caller == nil {
		return []byte(fmt.Sprintf("%s [%s] %s\n", timestamp, level, entry.Message)), nil
	}

	fileName := filepath.Base(entry.Caller.File)
	return []byte(fmt.Sprintf("%s [%s] %s:%d %s\n",
		timestamp, level, fileName, entry.Caller.Line, entry.Message)), nil
}

// Logger 返回按天轮转写文件的日志器，目录建不出来时退回标准错误输出。
func Logger(level logrus.Level, logPath string) interfaces.Logger {
	l := logrus.New()
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)

	if writer, err := newWriter(logPath); err != nil {
		l.SetOutput(os.Stderr)
		l.Warnf("log writer unavailable, falling back to stderr: %v", err)
	} else {
		l.SetOutput(writer)
	}
	return logruswrapper.NewWithFieldLogger(l)
}

func newWriter(logPath string) (*rotatelogs.RotateLogs, error) {
	if err := os.MkdirAll(logPath, os.ModePerm); err != nil {
		return nil, err
	}

	programName := filepath.Base(os.Args[0])
	logFile := filepath.Join(logPath, fmt.Sprintf("%s-%%Y%%m%%d.log", programName))
	return rotatelogs.New(
		logFile,
		rotatelogs.WithMaxAge(logMaxAge),
		rotatelogs.WithRotationTime(logRotation),
	)
}
