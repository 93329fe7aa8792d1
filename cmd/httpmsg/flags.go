package main

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	formatDebug = "debug"
	formatYAML  = "yaml"
	formatAST   = "ast"
	formatWire  = "wire"
	formatText  = "text"
)

var version = "unknown"

type config struct {
	Strict bool
	Format string
	Lint   bool
	File   string
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	app := kingpin.New("httpmsg", "Locate the request line, headers and body of an HTTP request message.")
	app.Version(version)
	app.HelpFlag.Short('h')

	app.Flag("strict", "Require a complete request line and a blank line after the headers").Default("false").Envar("HTTPMSG_STRICT").BoolVar(&cfg.Strict)
	app.Flag("format", "Output format: debug, yaml, ast, wire or text").Default(formatDebug).Envar("HTTPMSG_FORMAT").
		EnumVar(&cfg.Format, formatDebug, formatYAML, formatAST, formatWire, formatText)
	app.Flag("lint", "Print warnings about suspicious lines after the output").Default("false").Envar("HTTPMSG_LINT").BoolVar(&cfg.Lint)
	app.Arg("file", "Message file, - for stdin").Default("-").StringVar(&cfg.File)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
