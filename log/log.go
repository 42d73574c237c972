package log

import (
	"io/ioutil"
	"path/filepath"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"

	"github.com/cardanokit/cardanokit/config"
)

const (
	rotationTime int64 = 86400
	maxAge       int64 = 604800
)

var defaultFormatter = &logrus.TextFormatter{DisableColors: true}

// InitLogFile redirects all logrus output into per-module, date-rotated
// files under the configured log directory.
func InitLogFile(config *config.Config) error {
	hook := newFileHook(config.LogPath())
	logrus.AddHook(hook)
	logrus.SetOutput(ioutil.Discard)
	return nil
}

// FileHook splits log entries by their "module" field into rotated files.
type FileHook struct {
	logPath string
	lock    *sync.Mutex
}

func newFileHook(logPath string) *FileHook {
	hook := &FileHook{lock: new(sync.Mutex)}
	hook.logPath = logPath
	return hook
}

// Write a log line to an io.Writer.
func (hook *FileHook) ioWrite(entry *logrus.Entry) error {
	module := "general"
	if data, ok := entry.Data["module"]; ok {
		module = data.(string)
	}

	logPath := filepath.Join(hook.logPath, module)
	writer, err := rotatelogs.New(
		logPath+".%Y%m%d",
		rotatelogs.WithMaxAge(time.Duration(maxAge)*time.Second),
		rotatelogs.WithRotationTime(time.Duration(rotationTime)*time.Second),
	)
	if err != nil {
		return err
	}

	msg, err := defaultFormatter.Format(entry)
	if err != nil {
		return err
	}

	if _, err = writer.Write(msg); err != nil {
		return err
	}

	return writer.Close()
}

func (hook *FileHook) Fire(entry *logrus.Entry) error {
	hook.lock.Lock()
	defer hook.lock.Unlock()
	return hook.ioWrite(entry)
}

// Levels returns configured log levels.
func (hook *FileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
