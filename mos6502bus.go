// This file is part of mos6502bus.
//
// mos6502bus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6502bus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6502bus.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/mos6502bus/capture"
	"github.com/jetsetilly/mos6502bus/colorterm"
	"github.com/jetsetilly/mos6502bus/decoder"
	"github.com/jetsetilly/mos6502bus/disassembly"
	"github.com/jetsetilly/mos6502bus/environment"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502bus/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502bus/logger"
	"github.com/jetsetilly/mos6502bus/modalflag"
	"github.com/jetsetilly/mos6502bus/paths"
	"github.com/jetsetilly/mos6502bus/performance"
	"github.com/jetsetilly/mos6502bus/preferences"
	"github.com/jetsetilly/mos6502bus/prefs"
	"github.com/jetsetilly/mos6502bus/statsview"
	"github.com/jetsetilly/mos6502bus/version"
)

// the number of log entries to show when a mode ends with an error
const logTail = 10

// the sample rate of WAV files created by CONVERT mode if none is given
const defaultSampleRate = 1000000

func main() {
	// #ctrlc ends the capture early. the instruction in progress is flushed
	// and the output up to that point is complete
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the command line and runs the selected mode. returns the
// value to be used with os.Exit()
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("DECODE", "DISASM", "CONVERT", "TABLE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "DECODE":
		err = decode(ctx, md)

	case "DISASM":
		err = disasm(ctx, md)

	case "CONVERT":
		err = convert(ctx, md)

	case "TABLE":
		err = table(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		logger.Tail(output, logTail)
		return 20
	}

	return 0
}

// decodeOptions are the flags shared by the DECODE and DISASM modes
type decodeOptions struct {
	md *modalflag.Modes

	prefsFile *string
	prefsCL   *string
	channels  *string
	policy    *string
	pc        *string
	emulate   *bool
	registers *bool
	skip      *int
	log       *bool
	save      *bool
	profile   *string
}

func addDecodeOptions(md *modalflag.Modes) *decodeOptions {
	return &decodeOptions{
		md:        md,
		prefsFile: md.AddString("prefsfile", "", "preferences file to use instead of the default"),
		prefsCL:   md.AddString("prefs", "", "preferences for this session (eg. \"decode.emulate::true; channels.sync::9\")"),
		channels:  md.AddString("channels", "", "channel mapping (eg. \"d0=0,d1=1,rnw=8,sync=9,phi2=10\")"),
		policy:    md.AddString("policy", preferences.PolicyEvery, "sampling policy: every, change, clock"),
		pc:        md.AddString("pc", "", "program counter at start of capture in hex (empty for unknown)"),
		emulate:   md.AddBool("emulate", false, "emulate registers and flags"),
		registers: md.AddBool("registers", true, "include register state in output (requires -emulate)"),
		skip:      md.AddInt("skip", 0, "number of leading CSV columns to ignore (eg. a time column)"),
		log:       md.AddBool("log", false, "echo log to stderr"),
		save:      md.AddBool("save", false, "save preferences, including those set on the command line"),
		profile:   md.AddString("profile", "none", "run decoder through profiler: cpu, mem, trace, all (comma separated)"),
	}
}

// the capture file is the only argument for DECODE and DISASM modes
func (opts *decodeOptions) filename() (string, error) {
	switch len(opts.md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("capture file required for %s mode", opts.md)
	case 1:
		return opts.md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", opts.md)
}

// parseStartPC accepts a hex address with an optional $ or 0x prefix. an
// empty string or a question mark is an unknown address
func parseStartPC(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "?" {
		return -1, nil
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("program counter: %w", err)
	}
	return int(v), nil
}

// environment creates the decoding environment. preferences are loaded from
// disk, the -prefs stack is applied and then any flags that were set on the
// command line
func (opts *decodeOptions) environment() (*environment.Environment, error) {
	if *opts.log {
		if colorterm.NewTerminal(os.Stderr, true).Colour() {
			logger.SetEcho(logger.NewColorizer(os.Stderr))
		} else {
			logger.SetEcho(os.Stderr)
		}
	} else {
		logger.SetEcho(nil)
	}

	// the command line stack is consulted when the preferences are loaded
	if *opts.prefsCL != "" {
		if err := prefs.PushCommandLineStack(*opts.prefsCL); err != nil {
			return nil, err
		}
	}

	var p *preferences.Preferences
	var err error
	if *opts.prefsFile != "" {
		p, err = preferences.NewPreferencesFromFile(*opts.prefsFile)
	} else {
		p, err = preferences.NewPreferences()
	}

	if *opts.prefsCL != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, version.ApplicationName, "unused preferences: %s", unused)
		}
	}

	if err != nil {
		return nil, err
	}

	var ferr error
	opts.md.Visit(func(flag string, value string) {
		if ferr != nil {
			return
		}
		switch flag {
		case "channels":
			var ch capture.Channels
			ch, ferr = capture.ParseChannels(value, capture.ChannelsFromPrefs(p))
			if ferr == nil {
				ferr = ch.Store(p)
			}
		case "policy":
			ferr = p.Policy.Set(value)
		case "pc":
			var pc int
			pc, ferr = parseStartPC(value)
			if ferr == nil {
				ferr = p.StartPC.Set(pc)
			}
		case "emulate":
			ferr = p.Emulate.Set(value)
		case "registers":
			ferr = p.Registers.Set(value)
		}
	})
	if ferr != nil {
		return nil, ferr
	}

	if *opts.save {
		if *opts.prefsFile == "" {
			if err := paths.MakeResourceDir(); err != nil {
				return nil, err
			}
		}
		if err := p.Save(); err != nil {
			return nil, err
		}
	}

	logger.Logf(logger.Allow, version.ApplicationName, "%s", p)

	return environment.NewEnvironment(environment.MainDecoder, p)
}

// source opens the capture file and prepares the sampler described by the
// preferences. the returned File must be closed by the caller
func (opts *decodeOptions) source(ctx context.Context, env *environment.Environment, filename string) (capture.Source, *capture.File, error) {
	cf, err := capture.Open(filename, *opts.skip)
	if err != nil {
		return nil, nil, err
	}

	policy, err := capture.ParsePolicy(env.Prefs.Policy.Get().(string))
	if err != nil {
		cf.Close()
		return nil, nil, err
	}

	ch := capture.ChannelsFromPrefs(env.Prefs)
	logger.Logf(logger.Allow, version.ApplicationName, "sampling %s with policy %s", ch, policy)

	smp, err := capture.NewSampler(cf, cf.Columns(), ch, policy)
	if err != nil {
		cf.Close()
		return nil, nil, err
	}

	return capture.WithContext(ctx, smp), cf, nil
}

// run the decoder through the profiler selected on the command line
func (opts *decodeOptions) run(dec *decoder.Decoder, src capture.Source, sink decoder.Sink) error {
	profile, err := performance.ParseProfile(*opts.profile)
	if err != nil {
		return err
	}
	return performance.RunProfiler(profile, strings.ToLower(opts.md.Mode()), func() error {
		return dec.Run(src, sink)
	})
}

// pens used for each annotation row when output is coloured
var rowPens = map[decoder.Row]string{
	decoder.RowDatabus:      "",
	decoder.RowCycle:        "yellow",
	decoder.RowInstructions: "green",
	decoder.RowRegisters:    "cyan",
}

// annotationPrinter is the Sink used by DECODE mode
type annotationPrinter struct {
	output io.Writer
	colour bool

	// clip lines to this width. zero means no clipping
	width int

	// rows to print. nil means all rows
	rows map[decoder.Row]bool

	err error
}

func parseRows(s string) (map[decoder.Row]bool, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	rows := make(map[decoder.Row]bool)
	for r := range strings.SplitSeq(s, ",") {
		row, ok := decoder.ParseRow(strings.TrimSpace(r))
		if !ok {
			return nil, fmt.Errorf("unknown annotation row (%s)", r)
		}
		rows[row] = true
	}
	return rows, nil
}

// Annotate implements the decoder.Sink interface.
func (pr *annotationPrinter) Annotate(a decoder.Annotation) {
	if pr.err != nil {
		return
	}

	row := a.Category.Row()
	if pr.rows != nil && !pr.rows[row] {
		return
	}

	s := fmt.Sprintf("%10d %10d %-12s %-5s %s", a.Start, a.End, row, a.Category, a.Text)
	if pr.width > 0 && len(s) > pr.width {
		s = s[:pr.width]
	}

	colorterm.Print(pr.output, pr.colour, rowPens[row], s)
	_, pr.err = io.WriteString(pr.output, "\n")
}

func decode(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	opts := addDecodeOptions(md)
	rows := md.AddString("rows", "", "annotation rows to print: databus, cycle, instructions, registers (default all)")
	colour := md.AddBool("colour", true, "colour output when writing to a terminal")
	memvizFile := md.AddString("memviz", "", "write a graph of the decoder state to file at end of capture (dot format)")
	stats := md.AddBool("statsview", false, "run the runtime statistics server (if available)")

	md.AdditionalHelp("The capture file can be a sigrok CSV export or a WAV file with one logic line per channel.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := opts.filename()
	if err != nil {
		return err
	}

	pr := &annotationPrinter{output: md.Output}
	pr.rows, err = parseRows(*rows)
	if err != nil {
		return err
	}

	if f, ok := md.Output.(*os.File); ok {
		term := colorterm.NewTerminal(f, *colour)
		pr.colour = term.Colour()
		if term.IsRealTerminal() {
			pr.width = term.Width()
		}
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(os.Stderr)
	}

	env, err := opts.environment()
	if err != nil {
		return err
	}

	src, cf, err := opts.source(ctx, env, filename)
	if err != nil {
		return err
	}
	defer cf.Close()

	dec := decoder.NewDecoder(env)

	err = opts.run(dec, src, pr)
	if err != nil {
		return err
	}
	if pr.err != nil {
		return pr.err
	}

	logger.Logf(logger.Allow, version.ApplicationName, "%s", dec.Stats())

	if *memvizFile != "" {
		return writeMemviz(*memvizFile, dec)
	}

	return nil
}

func writeMemviz(filename string, dec *decoder.Decoder) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	memviz.Map(f, dec)
	logger.Logf(logger.Allow, version.ApplicationName, "decoder state written to %s", filename)

	return nil
}

func disasm(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	opts := addDecodeOptions(md)
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", true, "include cycle count in disassembly")
	notes := md.AddBool("notes", true, "include notes (eg. branch taken) in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := opts.filename()
	if err != nil {
		return err
	}

	env, err := opts.environment()
	if err != nil {
		return err
	}

	src, cf, err := opts.source(ctx, env, filename)
	if err != nil {
		return err
	}
	defer cf.Close()

	dsm := disassembly.NewListing()

	dec := decoder.NewDecoder(env)
	dec.SetRetire(func(res *execution.Result, registers string) {
		dsm.Add(res, registers)
	})

	err = opts.run(dec, src, decoder.SinkFunc(func(decoder.Annotation) {}))
	if err != nil {
		// print what disassembly output we do have. ignore any further errors
		_ = dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode})
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode:  *bytecode,
		Cycles:    *cycles,
		Notes:     *notes,
		Registers: env.Prefs.Emulate.Get().(bool) && env.Prefs.Registers.Get().(bool),
	}

	return dsm.Write(md.Output, attr)
}

func convert(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	skip := md.AddInt("skip", 0, "number of leading CSV columns to ignore (eg. a time column)")
	rate := md.AddInt("rate", defaultSampleRate, "sample rate of the WAV file")
	log := md.AddBool("log", false, "echo log to stderr")

	md.AdditionalHelp("Converts a capture file to a WAV file with one channel per logic line.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0, 1:
		return fmt.Errorf("capture file and WAV file required for %s mode", md)
	case 2:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cf, err := capture.Open(md.GetArg(0), *skip)
	if err != nil {
		return err
	}
	defer cf.Close()

	aw, err := capture.NewWavWriter(md.GetArg(1), cf.Columns(), *rate)
	if err != nil {
		return err
	}

	for ctx.Err() == nil {
		_, row, err := cf.NextRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		aw.AddRow(row)
	}

	err = aw.Write()
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d rows written to %s\n", aw.Len(), md.GetArg(1))

	return nil
}

func table(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	for _, defn := range instructions.Definitions() {
		fmt.Fprintln(md.Output, defn)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		v, r, _ := version.Version()
		fmt.Fprintf(md.Output, "%s %s (%s)\n", v, r, version.GoVersion())
		return nil
	}

	fmt.Fprintln(md.Output, version.String())

	return nil
}
