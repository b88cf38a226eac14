// Package junit parses JUnit-style XML test reports into model.Report trees.
package junit

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	m "github.com/rupert648/ratunit/internal/model"
)

const (
	elemSuites     = "testsuites"
	elemSuite      = "testsuite"
	elemCase       = "testcase"
	elemProperties = "properties"
	elemSystemOut  = "system-out"
	elemSystemErr  = "system-err"
)

// utf8BOM prefixes reports written by .NET and other Windows tooling.
var utf8BOM = []byte("\xEF\xBB\xBF")

type xmlFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Text    string `xml:",chardata"`
}

type xmlSkipped struct {
	Message string `xml:"message,attr"`
	Text    string `xml:",chardata"`
}

type xmlCase struct {
	Name      string       `xml:"name,attr"`
	ClassName string       `xml:"classname,attr"`
	Class     string       `xml:"class,attr"`
	File      string       `xml:"file,attr"`
	Time      string       `xml:"time,attr"`
	Errors    []xmlFailure `xml:"error"`
	Failures  []xmlFailure `xml:"failure"`
	Skipped   []xmlSkipped `xml:"skipped"`
	SystemOut string       `xml:"system-out"`
	SystemErr string       `xml:"system-err"`
}

type xmlProperties struct {
	Properties []struct {
		Name  string `xml:"name,attr"`
		Value string `xml:"value,attr"`
		Text  string `xml:",chardata"`
	} `xml:"property"`
}

type xmlText struct {
	Text string `xml:",chardata"`
}

// ParseReport converts the XML bytes of one report file into a Report.
//
// Both a <testsuites> root and a bare <testsuite> root are accepted. Suites
// nested inside suites become child suites. The returned error is always a
// *ParseError.
func ParseReport(name string, data []byte) (*m.Report, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader
	dec.Entity = xml.HTMLEntity

	p := &parser{dec: dec, source: name}

	suites, err := p.document()
	if err != nil {
		return nil, err
	}

	report := &m.Report{Name: name, Suites: suites}
	for i := range suites {
		report.Counts.Merge(suites[i].Counts)
	}

	return report, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}

	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}

	return transform.NewReader(input, enc.NewDecoder()), nil
}

type parser struct {
	dec    *xml.Decoder
	source string
}

func (p *parser) malformed(err error) *ParseError {
	line, column := p.dec.InputPos()

	return &ParseError{Kind: ErrMalformed, Source: p.source, Line: line, Column: column, Err: err}
}

// token returns the next token, treating end of input as malformed when
// allowEOF is false.
func (p *parser) token(allowEOF bool) (xml.Token, error) {
	tok, err := p.dec.Token()
	if err == nil {
		return tok, nil
	}

	if errors.Is(err, io.EOF) {
		if allowEOF {
			return nil, io.EOF
		}

		return nil, p.malformed(io.ErrUnexpectedEOF)
	}

	return nil, p.malformed(err)
}

func (p *parser) document() ([]m.Suite, error) {
	var (
		suites []m.Suite
		seen   bool
	)

	for {
		tok, err := p.token(true)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if seen {
				return nil, p.malformed(fmt.Errorf("unexpected element <%s> after the root element", t.Name.Local))
			}

			seen = true

			suites, err = p.root(t)
			if err != nil {
				return nil, err
			}
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return nil, p.malformed(errors.New("text outside the root element"))
			}
		}
	}

	if !seen {
		return nil, p.malformed(errors.New("no root element"))
	}

	if len(suites) == 0 {
		return nil, &ParseError{Kind: ErrEmpty, Source: p.source}
	}

	return suites, nil
}

func (p *parser) root(start xml.StartElement) ([]m.Suite, error) {
	switch start.Name.Local {
	case elemSuites:
		return p.suiteList()
	case elemSuite:
		suite, err := p.suite(start)
		if err != nil {
			return nil, err
		}

		return []m.Suite{suite}, nil
	default:
		return nil, p.malformed(fmt.Errorf("unexpected root element <%s>", start.Name.Local))
	}
}

// suiteList reads the children of a <testsuites> element up to its end tag.
func (p *parser) suiteList() ([]m.Suite, error) {
	var suites []m.Suite

	for {
		tok, err := p.token(false)
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case elemSuite:
				suite, err := p.suite(t)
				if err != nil {
					return nil, err
				}

				suites = append(suites, suite)
			case elemSuites:
				nested, err := p.suiteList()
				if err != nil {
					return nil, err
				}

				suites = append(suites, nested...)
			default:
				if err := p.skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			return suites, nil
		}
	}
}

//nolint:cyclop // One case per recognised child element.
func (p *parser) suite(start xml.StartElement) (m.Suite, error) {
	suite := m.Suite{
		Name:      attr(start, "name"),
		ClassName: attr(start, "classname"),
		File:      attr(start, "file"),
		Timestamp: attr(start, "timestamp"),
		Hostname:  attr(start, "hostname"),
		Time:      parseTime(attr(start, "time")),
	}

	for {
		tok, err := p.token(false)
		if err != nil {
			return m.Suite{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case elemSuite:
				child, err := p.suite(t)
				if err != nil {
					return m.Suite{}, err
				}

				suite.Suites = append(suite.Suites, child)
			case elemSuites:
				children, err := p.suiteList()
				if err != nil {
					return m.Suite{}, err
				}

				suite.Suites = append(suite.Suites, children...)
			case elemCase:
				var xc xmlCase
				if err := p.dec.DecodeElement(&xc, &t); err != nil {
					return m.Suite{}, p.malformed(err)
				}

				suite.Cases = append(suite.Cases, xc.toCase())
			case elemProperties:
				var xp xmlProperties
				if err := p.dec.DecodeElement(&xp, &t); err != nil {
					return m.Suite{}, p.malformed(err)
				}

				for _, prop := range xp.Properties {
					value := prop.Value
					if value == "" {
						value = strings.TrimSpace(prop.Text)
					}

					suite.Properties = append(suite.Properties, m.Property{Name: prop.Name, Value: value})
				}
			case elemSystemOut, elemSystemErr:
				var text xmlText
				if err := p.dec.DecodeElement(&text, &t); err != nil {
					return m.Suite{}, p.malformed(err)
				}

				if t.Name.Local == elemSystemOut {
					suite.SystemOut = strings.TrimSpace(text.Text)
				} else {
					suite.SystemErr = strings.TrimSpace(text.Text)
				}
			default:
				if err := p.skip(); err != nil {
					return m.Suite{}, err
				}
			}
		case xml.EndElement:
			suite.Counts = countSuite(&suite)
			return suite, nil
		}
	}
}

func (p *parser) skip() error {
	if err := p.dec.Skip(); err != nil {
		return p.malformed(err)
	}

	return nil
}

func (xc xmlCase) toCase() m.Case {
	className := xc.ClassName
	if className == "" {
		className = xc.Class
	}

	return m.Case{
		Name:      xc.Name,
		ClassName: className,
		File:      xc.File,
		Time:      parseTime(xc.Time),
		SystemOut: strings.TrimSpace(xc.SystemOut),
		SystemErr: strings.TrimSpace(xc.SystemErr),
		Outcome:   xc.outcome(),
	}
}

// outcome resolves the case result. Producers occasionally emit more than
// one result element; error wins over failure, failure over skipped.
func (xc xmlCase) outcome() m.Outcome {
	switch {
	case len(xc.Errors) > 0:
		return m.Errored(xc.Errors[0].toFailure())
	case len(xc.Failures) > 0:
		return m.Failed(xc.Failures[0].toFailure())
	case len(xc.Skipped) > 0:
		reason := xc.Skipped[0].Message
		if reason == "" {
			reason = trimStructural(xc.Skipped[0].Text)
		}

		return m.Skipped(reason)
	default:
		return m.Passed()
	}
}

func (xf xmlFailure) toFailure() m.Failure {
	return m.Failure{
		Message:    xf.Message,
		Type:       xf.Type,
		StackTrace: trimStructural(xf.Text),
	}
}

func countSuite(suite *m.Suite) m.Counts {
	var counts m.Counts

	for i := range suite.Cases {
		counts.Add(suite.Cases[i].Outcome.Status())
	}

	for i := range suite.Suites {
		counts.Merge(suite.Suites[i].Counts)
	}

	return counts
}

func attr(start xml.StartElement, name string) string {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}

	return ""
}

// parseTime returns nil for a missing, unparseable or negative duration.
func parseTime(value string) *float64 {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if value == "" {
		return nil
	}

	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil || seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return nil
	}

	return &seconds
}

// trimStructural removes the whitespace the XML layout adds around a text
// block. Trailing whitespace is dropped. Leading whitespace is dropped up to
// and including its last newline, so indentation of a first line that starts
// on its own line survives.
func trimStructural(text string) string {
	text = strings.TrimRightFunc(text, unicode.IsSpace)

	lead := len(text) - len(strings.TrimLeftFunc(text, unicode.IsSpace))
	if lead == 0 {
		return text
	}

	if i := strings.LastIndexByte(text[:lead], '\n'); i >= 0 {
		return text[i+1:]
	}

	return text[lead:]
}
