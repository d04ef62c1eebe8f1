// Package content parses the block markup used in card text. Cards may
// embed [TABLE]...[/TABLE] and [CODE=lang]...[/CODE] blocks; everything
// else is plain text. The parser splits content into ordered segments so
// clients can render each kind appropriately.
package content

import (
	"regexp"
	"strings"
)

type Kind string

const (
	KindText  Kind = "text"
	KindTable Kind = "table"
	KindCode  Kind = "code"
)

// Segment is one rendered piece of card content. Text carries plain text,
// code segments carry Language and Code, table segments carry Headers and
// Rows.
type Segment struct {
	Kind     Kind       `json:"kind"`
	Text     string     `json:"text,omitempty"`
	Language string     `json:"language,omitempty"`
	Code     string     `json:"code,omitempty"`
	Headers  []string   `json:"headers,omitempty"`
	Rows     [][]string `json:"rows,omitempty"`
}

var openTagRe = regexp.MustCompile(`\[([A-Z]+)(?:=([a-zA-Z0-9_\-]+))?\]`)

// Render splits card content into segments. Unknown block tags and
// unclosed blocks are passed through as plain text.
func Render(text string) []Segment {
	var segments []Segment

	appendText := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			segments = append(segments, Segment{Kind: KindText, Text: s})
		}
	}

	rest := text
	for {
		loc := openTagRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}

		tag := rest[loc[2]:loc[3]]
		param := ""
		if loc[4] >= 0 {
			param = rest[loc[4]:loc[5]]
		}

		closing := "[/" + tag + "]"
		bodyStart := loc[1]
		end := strings.Index(rest[bodyStart:], closing)
		if end < 0 {
			// No matching close; the opening tag is ordinary text.
			appendText(rest[:bodyStart])
			rest = rest[bodyStart:]
			continue
		}

		appendText(rest[:loc[0]])
		body := strings.TrimSpace(rest[bodyStart : bodyStart+end])

		switch tag {
		case "TABLE":
			if headers, rows, ok := parseTable(body); ok {
				segments = append(segments, Segment{Kind: KindTable, Headers: headers, Rows: rows})
			} else {
				appendText(rest[loc[0] : bodyStart+end+len(closing)])
			}
		case "CODE":
			lang := param
			if lang == "" {
				lang = "text"
			}
			segments = append(segments, Segment{Kind: KindCode, Language: lang, Code: body})
		default:
			appendText(rest[loc[0] : bodyStart+end+len(closing)])
		}

		rest = rest[bodyStart+end+len(closing):]
	}
	appendText(rest)

	if segments == nil {
		segments = []Segment{}
	}
	return segments
}

// parseTable interprets a [TABLE] body: a pipe-separated header row, a
// separator row, then data rows padded to the header width.
func parseTable(body string) ([]string, [][]string, bool) {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, nil, false
	}

	headers := splitRow(lines[0])

	rows := make([][]string, 0, len(lines)-2)
	for _, line := range lines[2:] {
		row := splitRow(line)
		for len(row) < len(headers) {
			row = append(row, "")
		}
		rows = append(rows, row)
	}
	return headers, rows, true
}

func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}
