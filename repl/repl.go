/*
File    : mhando/repl/repl.go
*/

// Package repl implements the interactive Read-Eval-Print Loop for
// mhando, structurally adapted from the teacher's repl package: same
// readline+color combination, same banner/prompt/history shape, but
// driving a driver.Driver (JIT compile-and-run) instead of an
// eval.Evaluator (tree-walking interpretation).
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/tadiwanashe/mhando/driver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's visual configuration.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl with the given banner and chrome.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to mhando!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main REPL loop against reader/writer until the user
// exits or EOF is reached, JIT-compiling and executing each line
// against a single long-lived driver.Driver session (§4.6's
// accumulated module persists across every line typed).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	d, err := driver.New()
	if err != nil {
		redColor.Fprintf(writer, "[JIT ERROR] %v\n", err)
		return
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, d)
	}
}

// executeWithRecovery compiles and runs one line, displaying its
// result or diagnostics and recovering from any panic the JIT-executed
// code or the compiler itself raises so the REPL keeps running.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, d *driver.Driver) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	res, errs := d.Exec(line)
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}
	if res != nil && res.HasValue {
		yellowColor.Fprintf(writer, "%.5f\n", res.Value)
	}
}
