// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

// schemats generates TypeScript declarations from JSON Schema and OpenAPI documents.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/schemats"
	"github.com/woozymasta/schemats/openapi"
)

const (
	formatTypeScript = "ts"
	formatJSON       = "json"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/schemats"
	_buildTime string
)

// errStrict is returned when --strict is set and conversion reported problems.
var errStrict = errors.New("strict mode")

// cliOptions describes schemats CLI flags and subcommands.
type cliOptions struct {
	Version     versionCommand     `command:"version" description:"Print version information"`
	Template    templateCommand    `command:"template" description:"Print built-in TypeScript module template"`
	SchemaToTS  schemaToTSCommand  `command:"schema2ts" description:"Convert JSON Schema to one TypeScript declaration"`
	OpenAPIToTS openAPIToTSCommand `command:"openapi2ts" description:"Convert OpenAPI or Swagger document to TypeScript declarations"`
}

// typeRenderFlags groups declaration rendering flags.
type typeRenderFlags struct {
	PreferUnknown   bool `short:"u" long:"prefer-unknown" description:"Print unconstrained values as unknown instead of any"`
	PreferInterface bool `short:"i" long:"prefer-interface" description:"Emit export interface for plain object declarations"`
	WrapWidth       int  `short:"w" long:"wrap" description:"Wrap property comments at this width (0 disables wrapping)" default:"0"`
}

// runFlags groups diagnostics and logging flags.
type runFlags struct {
	Strict  bool `short:"s" long:"strict" description:"Fail when any schema or path could not be converted exactly"`
	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging"`
}

// templateSelectFlags groups built-in template selection flags.
type templateSelectFlags struct {
	TemplateName string `short:"t" long:"template" description:"Built-in module template" choice:"module" choice:"components" default:"module"`
}

// schemaToTSCommand converts one schema document into one declaration.
type schemaToTSCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input schema file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output TypeScript file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Name        string          `short:"n" long:"name" description:"Declaration name" required:"yes"`
	RenderFlags typeRenderFlags `group:"TypeScript Render"`
	RunFlags    runFlags        `group:"Run"`
}

// Execute runs schema2ts subcommand.
func (command *schemaToTSCommand) Execute(_ []string) error {
	return command.runner.runSchemaToTS(command.Name, command.RenderFlags, command.RunFlags, command.Args.Input, command.Args.Output)
}

// openAPIToTSCommand converts one OpenAPI document.
type openAPIToTSCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input document file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Format        string              `short:"F" long:"format" description:"Output format: TypeScript module or JSON report" choice:"ts" choice:"json" default:"ts"`
	Title         string              `short:"T" long:"title" description:"Module header title (document title when omitted)"`
	TemplatePath  string              `short:"f" long:"template-file" description:"Path to custom module template (.gotmpl)"`
	TemplateFlags templateSelectFlags `group:"Template Select"`
	RenderFlags   typeRenderFlags     `group:"TypeScript Render"`
	RunFlags      runFlags            `group:"Run"`
}

// Execute runs openapi2ts subcommand.
func (command *openAPIToTSCommand) Execute(_ []string) error {
	return command.runner.runOpenAPIToTS(openAPIRunOptions{
		Format:       command.Format,
		Title:        command.Title,
		TemplatePath: command.TemplatePath,
		TemplateName: command.TemplateFlags.TemplateName,
		Render:       command.RenderFlags,
		Run:          command.RunFlags,
		InputPath:    command.Args.Input,
		OutputPath:   command.Args.Output,
	})
}

// templateCommand exports built-in module template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateFlags templateSelectFlags `group:"Template Select"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateFlags.TemplateName, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	return command.runner.printVersionInfo()
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

// openAPIRunOptions configures one openapi2ts run.
type openAPIRunOptions struct {
	Format       string
	Title        string
	TemplatePath string
	TemplateName string
	Render       typeRenderFlags
	Run          runFlags
	InputPath    string
	OutputPath   string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "schemats"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// logger returns a text logger on stderr; verbose enables debug records.
func (runner *cliRunner) logger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(runner.stderr, &slog.HandlerOptions{Level: level}))
}

// diagnosticCounter logs every diagnostic and counts them for strict mode.
type diagnosticCounter struct {
	count   int
	handler schemats.DiagnosticHandler
}

// newDiagnosticCounter wraps a slog diagnostics handler.
func newDiagnosticCounter(logger *slog.Logger) *diagnosticCounter {
	return &diagnosticCounter{handler: schemats.LogDiagnostics(logger)}
}

// handle forwards one diagnostic.
func (counter *diagnosticCounter) handle(d schemats.Diagnostic) {
	counter.count++
	counter.handler(d)
}

// convertOptions builds conversion options from render flags.
func convertOptions(render typeRenderFlags, diagnostics schemats.DiagnosticHandler) schemats.Options {
	return schemats.Options{
		PreferUnknownOverAny:    render.PreferUnknown,
		PreferInterfaceOverType: render.PreferInterface,
		CommentWrapWidth:        render.WrapWidth,
		Diagnostics:             diagnostics,
	}
}

// runSchemaToTS renders one declaration and writes it to stdout or file.
func (runner *cliRunner) runSchemaToTS(name string, render typeRenderFlags, runOpt runFlags, inputPath, outputPath string) error {
	logger := runner.logger(runOpt.Verbose)
	schemaBytes, sourcePath, err := runner.readInput(inputPath, "schema")
	if err != nil {
		return err
	}

	logger.Debug("converting schema", "source", sourcePath, "name", name)

	counter := newDiagnosticCounter(logger)
	rendered, err := schemats.Render(name, schemaBytes, convertOptions(render, counter.handle))
	if err != nil {
		return fmt.Errorf("render declaration: %w", err)
	}

	if runOpt.Strict && counter.count > 0 {
		return fmt.Errorf("%w: %d schema diagnostics reported", errStrict, counter.count)
	}

	return runner.writeOutput(outputPath, ensureNewline(rendered), "declaration")
}

// runOpenAPIToTS converts a document and writes a module or JSON report.
func (runner *cliRunner) runOpenAPIToTS(opt openAPIRunOptions) error {
	logger := runner.logger(opt.Run.Verbose)
	documentBytes, sourcePath, err := runner.readInput(opt.InputPath, "document")
	if err != nil {
		return err
	}

	doc, err := openapi.ParseDocument(documentBytes)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	logger.Debug("converting document", "source", sourcePath, "version", doc.Version,
		"paths", len(doc.Paths), "components", len(doc.Components))

	counter := newDiagnosticCounter(logger)
	out, convertErr := openapi.Convert(doc, convertOptions(opt.Render, counter.handle))
	pathErrors := reportPathErrors(logger, convertErr)
	if opt.Run.Strict && (counter.count > 0 || pathErrors > 0) {
		return fmt.Errorf("%w: %d schema diagnostics and %d path errors reported", errStrict, counter.count, pathErrors)
	}

	var rendered string
	switch opt.Format {
	case formatJSON:
		data, err := out.JSON()
		if err != nil {
			return err
		}

		rendered = string(data)
	case formatTypeScript:
		bundle := openapi.BundleOptions{
			Title:        opt.Title,
			Source:       sourcePath,
			TemplateName: opt.TemplateName,
		}

		if strings.TrimSpace(opt.TemplatePath) != "" {
			rendered, err = out.TypeScriptFile(opt.TemplatePath, bundle)
		} else {
			rendered, err = out.TypeScript(bundle)
		}

		if err != nil {
			return fmt.Errorf("render module: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q", opt.Format)
	}

	return runner.writeOutput(opt.OutputPath, rendered, opt.Format)
}

// reportPathErrors logs every joined path error and returns how many were found.
// Errors that are not path errors are logged once as well.
func reportPathErrors(logger *slog.Logger, err error) int {
	if err == nil {
		return 0
	}

	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	for _, item := range errs {
		var pathErr *openapi.PathError
		if errors.As(item, &pathErr) {
			logger.Warn("path skipped", "path", pathErr.Path, "method", pathErr.Method, "ref", pathErr.Ref, "error", pathErr.Err)
			continue
		}

		logger.Warn("conversion problem", "error", item)
	}

	return len(errs)
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := openapi.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, tpl, "template")
}

// readInput reads input from file path or stdin and returns source marker.
func (runner *cliRunner) readInput(path, kind string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read %s file %q: %w", kind, path, err)
		}

		return data, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read %s from stdin: %w", kind, err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", fmt.Errorf("read %s from stdin: empty input", kind)
	}

	return data, "(stdin)", nil
}

// writeOutput writes text to stdout or to outputPath.
func (runner *cliRunner) writeOutput(outputPath, text, kind string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, text); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, outputPath, err)
	}

	return nil
}

// ensureNewline appends a trailing newline to non-empty text.
func ensureNewline(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") {
		return text
	}

	return text + "\n"
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Template.runner = runner
	options.SchemaToTS.runner = runner
	options.OpenAPIToTS.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in TypeScript module template text (`+"`module` or `components`"+`).
Use it as a starting point for a custom template file.

Examples:
> $ %s template > module.gotmpl
> $ %s template -t components templates/components.gotmpl
`, programName, programName)),
		"schema2ts": strings.TrimSpace(fmt.Sprintf(`
Convert JSON Schema (JSON or YAML) to one TypeScript declaration.
Reads schema from file argument or stdin; writes TypeScript to file argument or stdout.

Examples:
> $ %s schema2ts -n Config schema.json > config.ts
> $ cat schema.yaml | %s schema2ts -n Config --prefer-interface --wrap 80
`, programName, programName)),
		"openapi2ts": strings.TrimSpace(fmt.Sprintf(`
Convert OpenAPI 3.x or Swagger 2.0 document to TypeScript declarations.
Components become named declarations; every operation yields Query, Path, Body and Response types.
Path items with unsupported references are skipped with a warning; --strict turns warnings into failure.

Examples:
> $ %s openapi2ts petstore.yaml api.ts
> $ %s openapi2ts --format json petstore.yaml > api.json
> $ %s openapi2ts -f custom.gotmpl petstore.yaml
`, programName, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// printVersionInfo writes build metadata to stdout.
func (runner *cliRunner) printVersionInfo() error {
	_, err := fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)

	return err
}
