package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"algocat/internal/domain"
)

// TextCodec reads and writes the line-oriented text report:
//
//	# run <run-id> workers=<n>
//	PASS <group>/<name>
//	FAIL <group>/<name>
//		"<message>": expected "<expected>", actual "<actual>"
//	SKIP <group>/<name>
//
// Failure lines are tab-indented and belong to the FAIL line above them.
type TextCodec struct{}

// NewTextCodec creates a new TextCodec
func NewTextCodec() *TextCodec {
	return &TextCodec{}
}

const noRunID = "-"

// maxLineSize bounds a single report line; failure lines carry whole
// rendered values and can be far longer than bufio's default token size.
const maxLineSize = 64 << 20

// Format writes report to w
func (tc *TextCodec) Format(w io.Writer, report *domain.Report) error {
	bw := bufio.NewWriter(w)

	runID := report.RunID
	if runID == "" {
		runID = noRunID
	}
	fmt.Fprintf(bw, "# run %s workers=%d\n", runID, report.Workers)

	for _, res := range report.Results {
		fmt.Fprintf(bw, "%s %s\n", res.Status(), res.ID)
		for _, f := range res.Failures {
			bw.WriteString("\t" + strconv.Quote(f.Message))
			if f.Expected != "" || f.Actual != "" {
				fmt.Fprintf(bw, ": expected %s, actual %s", strconv.Quote(f.Expected), strconv.Quote(f.Actual))
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// Parse reads a report written by Format
func (tc *TextCodec) Parse(r io.Reader) (*domain.Report, error) {
	report := &domain.Report{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	sawHeader := false

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if !sawHeader {
			var runID string
			if _, err := fmt.Sscanf(line, "# run %s workers=%d", &runID, &report.Workers); err != nil {
				return nil, fmt.Errorf("line %d: bad header %q: %w", lineNo, line, err)
			}
			if runID != noRunID {
				report.RunID = runID
			}
			sawHeader = true
			continue
		}

		if strings.HasPrefix(line, "\t") {
			if len(report.Results) == 0 {
				return nil, fmt.Errorf("line %d: failure before any case", lineNo)
			}
			f, err := parseFailure(line[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			last := &report.Results[len(report.Results)-1]
			last.Failures = append(last.Failures, f)
			continue
		}

		res, err := parseCaseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		report.Results = append(report.Results, res)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	if !sawHeader {
		return nil, fmt.Errorf("empty report")
	}
	return report, nil
}

func parseCaseLine(line string) (domain.CaseResult, error) {
	status, id, ok := strings.Cut(line, " ")
	if !ok {
		return domain.CaseResult{}, fmt.Errorf("malformed case line %q", line)
	}
	group, name, ok := strings.Cut(id, "/")
	if !ok || group == "" || name == "" {
		return domain.CaseResult{}, fmt.Errorf("malformed case id %q", id)
	}

	res := domain.CaseResult{ID: domain.CaseID{Group: group, Name: name}}
	switch status {
	case "PASS":
		res.Passed = true
	case "FAIL":
	case "SKIP":
		res.Skipped = true
	default:
		return domain.CaseResult{}, fmt.Errorf("unknown status %q", status)
	}
	return res, nil
}

func parseFailure(s string) (domain.Failure, error) {
	var f domain.Failure
	var err error

	if f.Message, s, err = unquotePrefix(s); err != nil {
		return f, fmt.Errorf("failure message: %w", err)
	}
	if s == "" {
		return f, nil
	}

	rest, ok := strings.CutPrefix(s, ": expected ")
	if !ok {
		return f, fmt.Errorf("unexpected text after message: %q", s)
	}
	if f.Expected, rest, err = unquotePrefix(rest); err != nil {
		return f, fmt.Errorf("expected value: %w", err)
	}
	rest, ok = strings.CutPrefix(rest, ", actual ")
	if !ok {
		return f, fmt.Errorf("missing actual value: %q", rest)
	}
	if f.Actual, rest, err = unquotePrefix(rest); err != nil {
		return f, fmt.Errorf("actual value: %w", err)
	}
	if rest != "" {
		return f, fmt.Errorf("trailing text %q", rest)
	}
	return f, nil
}

func unquotePrefix(s string) (value, rest string, err error) {
	quoted, err := strconv.QuotedPrefix(s)
	if err != nil {
		return "", s, err
	}
	value, err = strconv.Unquote(quoted)
	return value, s[len(quoted):], err
}
