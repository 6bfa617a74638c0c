package logging

import (
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileAppender writes console formatted logs to a file that is rotated once it grows too large.
type FileAppender struct {
	ConsoleAppender
	file *lumberjack.Logger
}

const (
	fileAppenderMaxSizeMB  = 10
	fileAppenderMaxBackups = 3
)

// NewFileAppender returns an appender writing to filename. Old logs are compressed, and at most
// three of them are kept.
func NewFileAppender(filename string) *FileAppender {
	file := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    fileAppenderMaxSizeMB,
		MaxBackups: fileAppenderMaxBackups,
		Compress:   true,
	}
	return &FileAppender{ConsoleAppender: NewWriterAppender(file), file: file}
}

// Close closes the underlying file.
func (appender *FileAppender) Close() error {
	return appender.file.Close()
}
