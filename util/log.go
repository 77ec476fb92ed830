/*
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

package util

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	log "github.com/sirupsen/logrus"
)

// Verbosity levels understood by StatusMessage/ErrorMessage.
const (
	VERBOSITY_SILENT  = 0
	VERBOSITY_QUIET   = 1
	VERBOSITY_DEFAULT = 2
	VERBOSITY_VERBOSE = 3
)

// Verbosity gates StatusMessage/ErrorMessage output; set once at CLI
// startup and never mutated mid-query by the engine itself.
var Verbosity int

// PrintSh, when set, makes LogShellCmd additionally echo the resolved flags
// to stdout as a single shell-quoted line (cmd/pkgconf's --print-sh).
var PrintSh bool

var logFile *os.File

type logFormatter struct{}

func (f *logFormatter) Format(entry *log.Entry) ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteString(entry.Time.Format("2006/01/02 15:04:05.000 "))
	b.WriteString("[" + strings.ToUpper(entry.Level.String()) + "] ")
	b.WriteString(entry.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// InitLog configures logrus the way the CLI wants it: level, and optionally
// a secondary file sink alongside stderr.
func InitLog(level log.Level, logFilename string) error {
	log.SetLevel(level)

	var writer io.Writer = os.Stderr
	if logFilename != "" {
		var err error
		logFile, err = os.Create(logFilename)
		if err != nil {
			return ChildPkgConfigError(err)
		}
		writer = io.MultiWriter(os.Stderr, logFile)
	}

	log.SetOutput(writer)
	log.SetFormatter(&logFormatter{})

	return nil
}

// WriteMessage prints message to f, gated by Verbosity.
func WriteMessage(f *os.File, level int, message string, args ...interface{}) {
	if Verbosity >= level {
		str := fmt.Sprintf(message, args...)
		f.WriteString(str)
		f.Sync()

		if logFile != nil {
			logFile.WriteString(str)
		}
	}
}

// StatusMessage prints a Silent/Quiet/Verbose-aware message to stdout.
func StatusMessage(level int, message string, args ...interface{}) {
	WriteMessage(os.Stdout, level, message, args...)
}

// ErrorMessage prints a Silent/Quiet/Verbose-aware message to stderr.
func ErrorMessage(level int, message string, args ...interface{}) {
	WriteMessage(os.Stderr, level, message, args...)
}

// LogShellCmd debug-logs a resolved flag vector the way the reference tool's
// --print-sh would echo the equivalent shell command line, joining with
// shellquote so the result is copy-pasteable even when a flag argument (an
// include path, say) contains spaces or shell metacharacters.
func LogShellCmd(tokens []string) {
	joined := shellquote.Join(tokens...)
	log.Debugf("%s", joined)

	if PrintSh {
		StatusMessage(VERBOSITY_DEFAULT, "%s\n", joined)
	}
}
