// Package logger provides leveled logging for the validation engine.
package logger

import (
	"fmt"
)

const (
	levelDebug = iota
	levelInfo
	levelError
)

var level = levelInfo

func GetLevel() string {
	switch level {
	case levelDebug:
		return "debug"
	case levelError:
		return "error"
	default:
		return "info"
	}
}

func SetLevel(lvl string) {
	switch lvl {
	case "debug", "":
		level = levelDebug
	case "error":
		level = levelError
	default:
		level = levelInfo
	}
}

func Debug(args ...interface{}) {
	if level <= levelDebug {
		fmt.Println(args...)
	}
}

func Info(args ...interface{}) {
	if level <= levelInfo {
		fmt.Println(args...)
	}
}

func Error(args ...interface{}) {
	fmt.Println(args...)
}

func Debugf(template string, args ...interface{}) {
	if level <= levelDebug {
		fmt.Printf(template, args...)
	}
}

func Infof(template string, args ...interface{}) {
	if level <= levelInfo {
		fmt.Printf(template, args...)
	}
}

func Errorf(template string, args ...interface{}) {
	fmt.Printf(template, args...)
}
