/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log provides a logging abstraction for the watchface codec and
// renderer. Library code calls through the package-level loggers below;
// callers decide whether and how those calls reach anything.
package log

import (
	"log"
	"os"
)

// Logger defines the minimal interface the library logs through.
type Logger interface {
	Printf(format string, args ...interface{})
	Println(args ...interface{})
}

type logger struct {
	log Logger
}

// The library's defined loggers, one per phase.
var (
	Parse  = &logger{}
	Decode = &logger{}
	Render = &logger{}
	Stats  = &logger{}
)

// SetParseLogger sets the logger used while walking the tag-value container.
func SetParseLogger(l Logger) {
	Parse.log = l
}

// SetDecodeLogger sets the logger used while decoding bitmap images.
func SetDecodeLogger(l Logger) {
	Decode.log = l
}

// SetRenderLogger sets the logger used while composing preview placements.
func SetRenderLogger(l Logger) {
	Render.log = l
}

// SetStatsLogger sets the logger used for one-line summaries (counts, sizes).
func SetStatsLogger(l Logger) {
	Stats.log = l
}

// SetDefaultParseLogger installs the standard library logger for Parse.
func SetDefaultParseLogger() {
	SetParseLogger(log.New(os.Stderr, "PARSE: ", log.Ldate|log.Ltime))
}

// SetDefaultDecodeLogger installs the standard library logger for Decode.
func SetDefaultDecodeLogger() {
	SetDecodeLogger(log.New(os.Stderr, "DECODE: ", log.Ldate|log.Ltime))
}

// SetDefaultRenderLogger installs the standard library logger for Render.
func SetDefaultRenderLogger() {
	SetRenderLogger(log.New(os.Stderr, "RENDER: ", log.Ldate|log.Ltime))
}

// SetDefaultStatsLogger installs the standard library logger for Stats.
func SetDefaultStatsLogger() {
	SetStatsLogger(log.New(os.Stderr, "STATS: ", log.Ldate|log.Ltime))
}

// SetDefaultLoggers wires every phase logger to a standard library logger.
func SetDefaultLoggers() {
	SetDefaultParseLogger()
	SetDefaultDecodeLogger()
	SetDefaultRenderLogger()
	SetDefaultStatsLogger()
}

// DisableLoggers turns off all logging (the default state).
func DisableLoggers() {
	SetParseLogger(nil)
	SetDecodeLogger(nil)
	SetRenderLogger(nil)
	SetStatsLogger(nil)
}

// Printf writes a formatted message to the log, if one is wired.
func (l *logger) Printf(format string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Printf(format, args...)
}

// Println writes a line to the log, if one is wired.
func (l *logger) Println(args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Println(args...)
}
