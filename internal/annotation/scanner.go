package annotation

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/nost-not/nost/internal/domain"
)

// Source is one unit of raw note text, identified by its origin (typically
// a file path). Sources arrive already ordered by the collaborator that
// discovered them.
type Source struct {
	ID      string
	Content string
}

// Failure records one annotation line that matched the line shape but could
// not be decoded. Failures never abort a scan.
type Failure struct {
	Source string
	Line   string
	Err    error
}

var (
	// annotationLine selects lines that carry an embedded annotation.
	annotationLine = regexp.MustCompile(`^\[//\]: # "not.*"\s*$`)
	// annotationPayload strips the comment marker and quoting, keeping the
	// inner payload.
	annotationPayload = regexp.MustCompile(`\[//\]: # "not:(\{.*\})"`)
)

// Scanner extracts annotation records from raw note text, reporting decode
// failures without stopping the batch.
type Scanner struct {
	logger *slog.Logger
}

// NewScanner returns a Scanner that logs decode failures to the given
// logger. A nil logger disables the diagnostics.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{logger: logger}
}

// Scan walks every source in order, selects annotation-shaped lines, and
// decodes them. Successfully decoded records are returned in input order;
// each decode failure is logged and collected, and scanning continues with
// the next line.
func (s *Scanner) Scan(sources []Source) ([]domain.Annotation, []Failure) {
	var records []domain.Annotation
	var failures []Failure

	for _, src := range sources {
		for _, line := range strings.Split(src.Content, "\n") {
			if !annotationLine.MatchString(line) {
				continue
			}
			m := annotationPayload.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			record, err := Decode(m[1])
			if err != nil {
				s.logger.Warn("failed to decode annotation",
					"source", src.ID,
					"annotation", m[1],
					"error", err)
				failures = append(failures, Failure{Source: src.ID, Line: line, Err: err})
				continue
			}
			records = append(records, record)
		}
	}

	return records, failures
}
