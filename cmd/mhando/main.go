/*
File    : mhando/cmd/mhando/main.go
*/

// Command mhando is the entry point for the mhando JIT compiler.
// It provides three modes of operation:
//  1. REPL mode (default): an interactive, line-at-a-time session
//  2. File mode: JIT-compile and execute a mhando source file
//  3. Server mode: a REPL session per TCP connection on a given port
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/tadiwanashe/mhando/driver"
	"github.com/tadiwanashe/mhando/repl"
)

var VERSION = "v0.1.0"
var AUTHOR = "tadiwanashe"
var LICENCE = "MIT"
var PROMPT = "mhando >>> "

var BANNER = `
  __  __ _                     _
 |  \/  | |__   __ _ _ __   __| | ___
 | |\/| | '_ \ / _` + "`" + ` | '_ \ / _` + "`" + ` |/ _ \
 | |  | | | | | (_| | | | | (_| | (_) |
 |_|  |_|_| |_|\__,_|_| |_|\__,_|\___/
`

var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: mhando server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("mhando - a JIT-compiled expression language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  mhando                    Start interactive REPL mode")
	yellowColor.Println("  mhando <path-to-file>     Compile and run a mhando file (.mh)")
	yellowColor.Println("  mhando server <port>      Start a REPL server on the given port")
	yellowColor.Println("  mhando --help             Display this help message")
	yellowColor.Println("  mhando --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                     Exit the REPL")
}

func showVersion() {
	cyanColor.Println("mhando - a JIT-compiled expression language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads fileName and JIT-executes it top to bottom, per
// spec.md §4.6's batch-mode counterpart to the REPL's line-at-a-time
// loop: one driver.Driver session, one Exec call over the whole file.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(source))
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("mhando REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}

func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	d, err := driver.New()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[JIT ERROR] %v\n", err)
		os.Exit(1)
	}

	res, errs := d.Exec(source)
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "[COMPILE ERROR] %s\n", e)
		}
		os.Exit(1)
	}
	if res != nil && res.HasValue {
		yellowColor.Fprintf(os.Stdout, "%s\n", fmt.Sprintf("%.5f", res.Value))
	}
}
