//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each go file to one line.
// The functions return Logger instances which are configured with
// the necessary backends and formatters.
package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chessbot/internal/config"
)

var out = message.NewPrinter(language.English)

var (
	standardLog   *logging.Logger
	testLog       *logging.Logger
	motorLog      *logging.Logger
	engineLog     *logging.Logger
	motorLogFile  *os.File
	engineLogFile *os.File

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

	motorLogFilePath  string
	engineLogFilePath string
)

func init() {
	programName, _ := os.Executable()
	exePath := filepath.Dir(programName)
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")
	motorLogFilePath = exePath + "/../logs/" + exeName + "_motor.log"
	engineLogFilePath = exePath + "/../logs/" + exeName + "_engine.log"

	standardLog = logging.MustGetLogger("standard")
	testLog = logging.MustGetLogger("test")
	motorLog = logging.MustGetLogger("motor")
	engineLog = logging.MustGetLogger("engine")
}

// GetLog returns an instance of a standard Logger preconfigured with an
// os.Stdout backend and a "normal" logging format (time - file - level).
func GetLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	standardBackEnd := logging.AddModuleLevel(backend1Formatter)
	level := logging.Level(config.LogLevel)
	standardBackEnd.SetLevel(level, "")
	standardLog.SetBackend(standardBackEnd)
	return standardLog
}

// GetTestLog returns an instance of a standard Logger for use in tests.
func GetTestLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	testBackEnd := logging.AddModuleLevel(backend1Formatter)
	testBackEnd.SetLevel(logging.Level(config.TestLogLevel), "")
	testLog.SetBackend(testBackEnd)
	return testLog
}

// GetMotorLog returns an instance of a special Logger preconfigured for
// logging every motor instruction actually sent to the GPIO driver, the
// way the teacher's GetUciLog logs every UCI protocol line. Format is
// simple: "time MOTOR <instruction>".
func GetMotorLog() *logging.Logger {
	motorFormat := logging.MustStringFormatter(`%{time:15:04:05.000} MOTOR %{message}`)
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, motorFormat)
	motorBackEnd1 := logging.AddModuleLevel(backend1Formatter)
	motorBackEnd1.SetLevel(logging.DEBUG, "")

	var err error
	motorLogFile, err = os.OpenFile(motorLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		motorLog.SetBackend(motorBackEnd1)
		return motorLog
	}
	backend2 := logging.NewLogBackend(motorLogFile, "", log.Lmsgprefix)
	backend2Formatter := logging.NewBackendFormatter(backend2, motorFormat)
	motorBackEnd2 := logging.AddModuleLevel(backend2Formatter)
	motorBackEnd2.SetLevel(logging.DEBUG, "")
	multi := logging.SetBackend(motorBackEnd1, motorBackEnd2)
	motorLog.SetBackend(multi)
	return motorLog
}

// GetEngineLog returns an instance of a special Logger preconfigured for
// logging every line sent to and received from the external engine
// subprocess, the way the teacher's GetUciLog logs every UCI protocol
// line. Format is simple: "time ENGINE <line>".
func GetEngineLog() *logging.Logger {
	engineFormat := logging.MustStringFormatter(`%{time:15:04:05.000} ENGINE %{message}`)
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, engineFormat)
	engineBackEnd1 := logging.AddModuleLevel(backend1Formatter)
	engineBackEnd1.SetLevel(logging.DEBUG, "")

	var err error
	engineLogFile, err = os.OpenFile(engineLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		engineLog.SetBackend(engineBackEnd1)
		return engineLog
	}
	backend2 := logging.NewLogBackend(engineLogFile, "", log.Lmsgprefix)
	backend2Formatter := logging.NewBackendFormatter(backend2, engineFormat)
	engineBackEnd2 := logging.AddModuleLevel(backend2Formatter)
	engineBackEnd2.SetLevel(logging.DEBUG, "")
	multi := logging.SetBackend(engineBackEnd1, engineBackEnd2)
	engineLog.SetBackend(multi)
	return engineLog
}
