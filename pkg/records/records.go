package records

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"wolfscheduler/pkg/course"

	"github.com/rs/zerolog"
)

// ErrInvalidLine is returned for any line that cannot become a Course.
var ErrInvalidLine = errors.New("line is invalid")

const (
	arrangedFieldCount  = 6
	scheduledFieldCount = 8
)

// SkipReason explains why a catalog line was not kept.
type SkipReason string

const (
	SkipInvalid   SkipReason = "invalid"
	SkipDuplicate SkipReason = "duplicate"
)

// Skipped describes a catalog line that was dropped during a read.
type Skipped struct {
	Line   int // 1-based line number
	Text   string
	Reason SkipReason
	Err    error // nil for duplicates
}

// Report is the outcome of reading a catalog: the kept courses in file
// order and every line that was dropped.
type Report struct {
	Courses []*course.Course
	Skipped []Skipped
}

// ParseLine decodes a single record line.
func ParseLine(line string) (*course.Course, error) {
	line = strings.TrimSuffix(line, "\r")
	fields := strings.Split(line, ",")
	if len(fields) < arrangedFieldCount {
		return nil, fmt.Errorf("%w: expected at least %d fields, got %d", ErrInvalidLine, arrangedFieldCount, len(fields))
	}

	name, title, section := fields[0], fields[1], fields[2]
	credits, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: credits: %w", ErrInvalidLine, err)
	}
	instructorID, meetingDays := fields[4], fields[5]

	if meetingDays == course.Arranged {
		if len(fields) != arrangedFieldCount {
			return nil, fmt.Errorf("%w: arranged course has %d fields", ErrInvalidLine, len(fields))
		}
		c, err := course.NewArranged(name, title, section, credits, instructorID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidLine, err)
		}
		return c, nil
	}

	if len(fields) != scheduledFieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidLine, scheduledFieldCount, len(fields))
	}
	start, err := strconv.Atoi(fields[6])
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %w", ErrInvalidLine, err)
	}
	end, err := strconv.Atoi(fields[7])
	if err != nil {
		return nil, fmt.Errorf("%w: end time: %w", ErrInvalidLine, err)
	}

	c, err := course.New(name, title, section, credits, instructorID, meetingDays, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLine, err)
	}
	return c, nil
}

// Reader decodes catalogs and logs every skipped line at debug level.
type Reader struct {
	Log zerolog.Logger
}

// NewReader returns a Reader that logs skipped lines to log.
func NewReader(log zerolog.Logger) *Reader {
	return &Reader{Log: log}
}

// ReadCatalog opens path and returns its valid, de-duplicated courses.
func ReadCatalog(path string) ([]*course.Course, error) {
	report, err := NewReader(zerolog.Nop()).ReadFile(path)
	if err != nil {
		return nil, err
	}
	return report.Courses, nil
}

// ReadFile reads a catalog file. Only failing to open or read the file is an
// error; bad lines end up in Report.Skipped.
func (rd *Reader) ReadFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open catalog %s: %w", path, err)
	}
	defer f.Close()

	report, err := rd.Read(f)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog %s: %w", path, err)
	}

	rd.Log.Debug().
		Str("path", path).
		Int("courses", len(report.Courses)).
		Int("skipped", len(report.Skipped)).
		Msg("catalog read")

	return report, nil
}

// Read decodes a catalog from r. Duplicates share a name and section with an
// earlier kept course; the first one wins.
func (rd *Reader) Read(r io.Reader) (*Report, error) {
	report := &Report{Courses: []*course.Course{}}
	seen := make(map[string]bool)

	// Lines have no length limit; an overlong one is just another invalid line.
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if text == "" && err != nil {
			break
		}

		lineNo++
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
		rd.add(report, seen, lineNo, text)

		if err != nil {
			break
		}
	}

	return report, nil
}

func (rd *Reader) add(report *Report, seen map[string]bool, lineNo int, text string) {
	c, err := ParseLine(text)
	if err != nil {
		rd.skip(report, Skipped{Line: lineNo, Text: text, Reason: SkipInvalid, Err: err})
		return
	}
	if seen[c.Key()] {
		rd.skip(report, Skipped{Line: lineNo, Text: text, Reason: SkipDuplicate})
		return
	}

	seen[c.Key()] = true
	report.Courses = append(report.Courses, c)
}

func (rd *Reader) skip(report *Report, s Skipped) {
	report.Skipped = append(report.Skipped, s)

	ev := rd.Log.Debug().Int("line", s.Line).Str("reason", string(s.Reason))
	if s.Err != nil {
		ev = ev.Err(s.Err)
	}
	ev.Msg("skipping catalog line")
}

// WriteCourses writes one line per course to path, replacing any existing file.
func WriteCourses(path string, courses []*course.Course) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(f, courses); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Write writes courses to w in list order.
func Write(w io.Writer, courses []*course.Course) error {
	bw := bufio.NewWriter(w)
	for _, c := range courses {
		if _, err := fmt.Fprintln(bw, c.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
