package main

import (
	"fmt"
	"io"
	"os"

	"github.com/shapestone/shape-httpmsg/pkg/httpmsg"
	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		klog.Exitln(err)
	}
	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		klog.Exitln(err)
	}
}

func run(cfg *config, stdin io.Reader, stdout io.Writer) error {
	name := cfg.File
	r := stdin
	if name == "-" {
		name = "<stdin>"
	} else {
		f, err := os.Open(cfg.File)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	msg, err := read(r, cfg.Strict)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	klog.V(1).Infof("%s: parsed %d bytes in %s mode", name, len(msg.view.String()), msg.mode)

	if err := write(stdout, cfg.Format, msg); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if cfg.Lint {
		warnings := msg.view.Diagnose()
		for _, w := range warnings {
			fmt.Fprintf(stdout, "%s: %s\n", name, w)
		}
		if len(warnings) > 0 {
			klog.Warningln(name+":", len(warnings), "lint warnings")
		}
	}
	return nil
}

func read(r io.Reader, strict bool) (*message, error) {
	if strict {
		v, err := httpmsg.ReadStrict(r)
		if err != nil {
			return nil, err
		}
		return strictMessage(v), nil
	}
	v, err := httpmsg.ReadLenient(r)
	if err != nil {
		return nil, err
	}
	return lenientMessage(v), nil
}
