// Command modelgen is the thin CLI/REPL front end spec §1 scopes as an
// external collaborator, not core functionality: it wraps mg.Instance
// with file execution and an interactive loop.
//
// Grounded on the teacher's main/main.go (flag dispatch, colored file-
// execution error reporting, exit codes) and repl/repl.go (readline-
// backed interactive loop, colored banner/result output).
package main

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/modelgen-run/modelgen/internal/inspect"
	"github.com/modelgen-run/modelgen/lexer"
	"github.com/modelgen-run/modelgen/mg"
	"github.com/modelgen-run/modelgen/parser"
	"github.com/modelgen-run/modelgen/value"
)

const (
	version = "v0.1.0"
	prompt  = "modelgen >>> "
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
	blueColor   = color.New(color.FgBlue)
)

func main() {
	if len(os.Args) <= 1 {
		runRepl()
		return
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "--dump":
		if len(os.Args) < 3 {
			redColor.Fprintln(os.Stderr, "usage: modelgen --dump <file.mg>")
			os.Exit(1)
		}
		dumpFile(os.Args[2])
	default:
		runFile(arg)
	}
}

func showHelp() {
	cyanColor.Println("ModelGen - an embeddable geometry-emitting scripting language")
	cyanColor.Println()
	cyanColor.Println("USAGE:")
	yellowColor.Println("  modelgen                 Start the interactive REPL")
	yellowColor.Println("  modelgen <file.mg>        Run a ModelGen source file")
	yellowColor.Println("  modelgen --dump <file.mg> Print the file's tokens and parsed AST")
	yellowColor.Println("  modelgen --help           Show this message")
	yellowColor.Println("  modelgen --version        Show version information")
}

func showVersion() {
	cyanColor.Printf("modelgen %s\n", version)
}

// runFile executes path to completion, printing any fatal error in the
// `filename:line:col: Error: <message>` form spec §6 mandates and
// exiting non-zero (spec §6: "terminate the process").
func runFile(path string) {
	inst := mg.New()
	if err := inst.RunFile(path); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// dumpFile parses path and prints its tokens and AST via internal/inspect,
// without running it.
func dumpFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "modelgen: %s\n", err)
		os.Exit(1)
	}
	root, errs := parser.Parse(path, string(src))
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		os.Exit(1)
	}
	inspect.DumpTokens(os.Stdout, lexer.Significant(lexer.Tokenize(string(src))))
	blueColor.Fprintln(os.Stdout, "----")
	inspect.DumpNode(os.Stdout, root)
}

// runRepl starts the interactive read-eval-print loop: each line is run
// through a single persistent mg.Instance via Eval so definitions and
// assignments accumulate across lines.
func runRepl() {
	printBanner()

	rl, err := readline.New(prompt)
	if err != nil {
		redColor.Fprintf(os.Stderr, "modelgen: %s\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	inst := mg.New()
	end := inst.BeginSession("repl")
	defer end()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Println("Good bye!")
			return
		}
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Println("Good bye!")
			return
		}
		rl.SaveHistory(line)

		v, err := inst.Eval(line)
		if err != nil {
			redColor.Fprintf(os.Stdout, "%s\n", err)
			continue
		}
		if v != nil && v.Kind() != value.KNull {
			yellowColor.Fprintln(os.Stdout, value.ToString(v))
		}
	}
}

func printBanner() {
	line := "----------------------------------------------------------------"
	blueColor.Println(line)
	greenColor.Println(" ModelGen")
	blueColor.Println(line)
	yellowColor.Printf("Version: %s\n", version)
	blueColor.Println(line)
	cyanColor.Println("Type an expression and press enter.")
	cyanColor.Println("Type '.exit' to quit.")
	blueColor.Println(line)
}
