package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shapestone/shape-httpmsg/pkg/httpmsg"
	"gopkg.in/yaml.v2"
)

// located is what both view kinds have in common.
type located interface {
	String() string
	HeaderSpans() []httpmsg.Span
	BodySpan() (httpmsg.Span, bool)
	Diagnose() []string
}

// message flattens a lenient or strict view for printing. Absent
// request-line parts are zero spans.
type message struct {
	mode                    string
	view                    located
	method, target, version httpmsg.Span
	request                 func() (*httpmsg.Request, error)
}

func lenientMessage(v *httpmsg.LenientView) *message {
	m := &message{mode: "lenient", view: v, request: v.Request}
	m.method, _ = v.MethodSpan()
	m.target, _ = v.TargetSpan()
	m.version, _ = v.VersionSpan()
	return m
}

func strictMessage(v *httpmsg.StrictView) *message {
	return &message{
		mode:    "strict",
		view:    v,
		method:  v.MethodSpan(),
		target:  v.TargetSpan(),
		version: v.VersionSpan(),
		request: func() (*httpmsg.Request, error) { return v.Request(), nil },
	}
}

type field struct {
	Span string `yaml:"span"`
	Text string `yaml:"text"`
}

type summary struct {
	Mode    string  `yaml:"mode"`
	Method  *field  `yaml:"method,omitempty"`
	Target  *field  `yaml:"target,omitempty"`
	Version *field  `yaml:"version,omitempty"`
	Headers []field `yaml:"headers,omitempty"`
	Body    *field  `yaml:"body,omitempty"`
}

func (m *message) field(s httpmsg.Span) *field {
	if s.IsZero() {
		return nil
	}
	return &field{Span: s.String(), Text: s.Slice(m.view.String())}
}

func (m *message) summary() summary {
	s := summary{
		Mode:    m.mode,
		Method:  m.field(m.method),
		Target:  m.field(m.target),
		Version: m.field(m.version),
	}
	for _, h := range m.view.HeaderSpans() {
		s.Headers = append(s.Headers, *m.field(h))
	}
	body, _ := m.view.BodySpan()
	s.Body = m.field(body)
	return s
}

func write(w io.Writer, format string, m *message) error {
	switch format {
	case formatText:
		_, err := io.WriteString(w, m.view.String())
		return err
	case formatYAML:
		return writeYAML(w, m.summary())
	case formatAST:
		req, err := m.request()
		if err != nil {
			return err
		}
		return writeYAML(w, httpmsg.NodeToInterface(httpmsg.RequestToNode(req)))
	case formatWire:
		req, err := m.request()
		if err != nil {
			return err
		}
		return httpmsg.NewEncoder(w).Encode(req)
	case formatDebug:
		return writeDebug(w, m.summary())
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeYAML(w io.Writer, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeDebug(w io.Writer, s summary) error {
	if _, err := fmt.Fprintf(w, "mode     %s\n", s.Mode); err != nil {
		return err
	}
	line := func(name string, f *field) error {
		if f == nil {
			_, err := fmt.Fprintf(w, "%-8s -\n", name)
			return err
		}
		_, err := fmt.Fprintf(w, "%-8s %-8s %s\n", name, f.Span, strconv.Quote(f.Text))
		return err
	}
	for _, p := range []struct {
		name string
		f    *field
	}{{"method", s.Method}, {"target", s.Target}, {"version", s.Version}} {
		if err := line(p.name, p.f); err != nil {
			return err
		}
	}
	for i := range s.Headers {
		if err := line("header", &s.Headers[i]); err != nil {
			return err
		}
	}
	return line("body", s.Body)
}
