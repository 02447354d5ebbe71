// Package harness runs the line-oriented samples file format spec.md
// §6 describes for the sample CLI: COMMENT:/BASE:/URL:/SET:name
// blocks, each asserting either a successful parse's href or a named
// setter's resulting value. It is grounded on the teacher's own
// table-driven ginkgo fixtures, generalized into a standalone runner
// so cmd/urlparser's `-g`/`-t` modes can share one code path.
package harness

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	upaurl "github.com/upa-url/upa-sub001"
)

// Case is one sample: a URL (optionally resolved against a base), and
// the expected canonical href, either of the parsed URL (when Setter
// is empty) or of the parsed URL after the named setter is applied.
type Case struct {
	Line     int
	Comment  string
	Base     string
	URL      string
	Setter   string // "" for a plain parse assertion
	SetValue string // value to feed the named setter, when Setter != ""
	Want     string // expected href; "" means the parse must fail, or for a setter case that the href is not checked
}

// Result is the outcome of running one Case.
type Result struct {
	Case    Case
	Got     string
	Failed  bool
	GotErr  bool
	Message string
}

// Parse reads a samples file, per spec.md §6: blocks introduced by
// "BASE:", "URL:", "COMMENT:" and "SET:name" (the latter followed by
// "url:..." and "val:..." lines), newline-separated.
func Parse(r io.Reader) ([]Case, error) {
	scanner := bufio.NewScanner(r)
	var cases []Case
	var comment, base string
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "COMMENT:"):
			comment = strings.TrimSpace(strings.TrimPrefix(trimmed, "COMMENT:"))
		case strings.HasPrefix(trimmed, "BASE:"):
			base = strings.TrimSpace(strings.TrimPrefix(trimmed, "BASE:"))
		case strings.HasPrefix(trimmed, "URL:"):
			rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "URL:"))
			url, want, ok := strings.Cut(rest, "=>")
			c := Case{Line: lineNo, Comment: comment, Base: base, URL: strings.TrimSpace(url)}
			if ok {
				c.Want = strings.TrimSpace(want)
			} else {
				c.Want = strings.TrimSpace(url)
			}
			cases = append(cases, c)
		case strings.HasPrefix(trimmed, "SET:"):
			name := strings.TrimSpace(strings.TrimPrefix(trimmed, "SET:"))
			setCase := Case{Line: lineNo, Comment: comment, Base: base, Setter: name}
			for scanner.Scan() {
				lineNo++
				inner := strings.TrimSpace(scanner.Text())
				if inner == "" {
					break
				}
				switch {
				case strings.HasPrefix(inner, "url:"):
					setCase.URL = strings.TrimSpace(strings.TrimPrefix(inner, "url:"))
				case strings.HasPrefix(inner, "val:"):
					parts := strings.SplitN(strings.TrimSpace(strings.TrimPrefix(inner, "val:")), "=>", 2)
					setCase.SetValue = strings.TrimSpace(parts[0])
					if len(parts) == 2 {
						setCase.Want = strings.TrimSpace(parts[1])
					}
				default:
					goto blockDone
				}
			}
		blockDone:
			cases = append(cases, setCase)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}
	return cases, nil
}

// Run executes every case and logs each failure at Warn via logger,
// with the sample's source line number as a structured field.
func Run(cases []Case, logger zerolog.Logger) []Result {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		res := runOne(c)
		if res.Failed {
			logger.Warn().
				Int("line", c.Line).
				Str("url", c.URL).
				Str("comment", c.Comment).
				Str("message", res.Message).
				Msg("sample mismatch")
		}
		results = append(results, res)
	}
	return results
}

func runOne(c Case) Result {
	var base *upaurl.URL
	if c.Base != "" {
		b, err := upaurl.Parse(c.Base)
		if err != nil {
			return Result{Case: c, Failed: true, GotErr: true, Message: "invalid base: " + err.Error()}
		}
		base = b
	}

	u, err := upaurl.ParseRef(c.URL, base)
	if err != nil {
		failed := c.Want != ""
		return Result{Case: c, Failed: failed, GotErr: true, Message: err.Error()}
	}

	if c.Setter == "" {
		got := u.Href()
		return Result{Case: c, Got: got, Failed: got != c.Want}
	}

	applySetter(u, c.Setter, c.SetValue)
	got := u.Href()
	return Result{Case: c, Got: got, Failed: c.Want != "" && got != c.Want}
}

func applySetter(u *upaurl.URL, name, value string) {
	switch name {
	case "protocol":
		u.SetProtocol(value)
	case "username":
		u.SetUsername(value)
	case "password":
		u.SetPassword(value)
	case "host":
		u.SetHost(value)
	case "hostname":
		u.SetHostname(value)
	case "port":
		u.SetPort(value)
	case "pathname":
		u.SetPathname(value)
	case "search":
		u.SetSearch(value)
	case "hash":
		u.SetHash(value)
	case "href":
		u.SetHref(value)
	}
}
