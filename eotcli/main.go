package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/eotype/eot"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'font.eotype'
func tracer() tracing.Trace {
	return tracing.Select("font.eotype")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.font.eotype": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	eotname := flag.String("eot", "", "EOT file to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the EOT container CLI")
	//
	// set up REPL
	repl, err := readline.New("eot > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load the container to inspect
	if err := intp.loadContainer(*eotname); err != nil { // file name provided by flag
		pterm.Error.Println(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	path string
	data []byte
	file *eot.File
}

func (intp *Intp) loadContainer(path string) error {
	if path == "" {
		return errors.New("no EOT file given, use flag -eot")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	file, err := eot.Decode(data)
	if err != nil {
		return err // a *eot.DecodeError names the offending field and offset
	}
	intp.path, intp.data, intp.file = path, data, file
	for _, w := range file.Warnings() {
		pterm.Warning.Println(w.String())
	}
	if reason, unsupported := file.FontData().Unsupported(); unsupported {
		pterm.Warning.Printf("payload not usable: %s\n", reason)
	}
	tracer().Infof("loaded %s, version %s, %d payload bytes",
		path, file.Version, file.FontData().Size())
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Printf("( %s | %s )\n", intp.path, intp.file.Version)
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		err, quit := intp.execute(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (error, bool) {
	cmd, arg := line, ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	switch cmd {
	case "quit":
		return nil, true
	case "help":
		help()
	case "info":
		printInfo(intp.file)
	case "names":
		printNames(intp.file)
	case "flags":
		printFlags(intp.file)
	case "urls":
		printURLs(intp.file)
	case "warnings":
		printWarnings(intp.file)
	case "extract":
		return extractPayload(intp.file, arg), false
	default:
		return fmt.Errorf("unknown command: %s", cmd), false
	}
	return nil, false
}

func help() {
	pterm.Info.Println("EOT container inspection")
	pterm.Println(`
	info               print the fixed header fields
	names              print the container's name records
	flags              print processing flags and embedding permissions
	urls               print root-string URL bindings
	warnings           print permissive-validation findings
	extract <file>     write the raw font payload to <file>
	quit               leave the CLI (or <ctrl>D)
	`)
}
