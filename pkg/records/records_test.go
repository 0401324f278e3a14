package records

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wolfscheduler/pkg/course"

	"github.com/rs/zerolog"
)

const sampleCatalog = `CSC 116,Intro to Programming - Java,001,3,jdyoung2,MW,910,1100
CSC 116,Intro to Programming - Java,002,3,spbalik,MW,1120,1310
CSC 116,Intro to Programming - Java,003,3,tbdimitr,TH,1120,1310
CSC 216,Software Development Fundamentals,001,3,sesmith5,TH,1330,1445
CSC 216,Software Development Fundamentals,001,3,someoneelse,MW,1330,1445
CSC 226,Discrete Mathematics for Computer Scientists,001,3,tmbarnes,MWF,935,1025
CSC 230,C and Software Tools,001,3,dbsturgi,MW,1145,1300
CSC 316,Data Structures and Algorithms,001,3,jtking,MW,1500,1615
CSC 216,Software Development Fundamentals,601,3,jep,A
CSC 230,C and Software Tools,002,3,,MW,1145,1300
CSC 492,Senior Design,001,3,fhdodd,A,1000,1200
not a course at all

CSC 326,Software Engineering,001,3,sesmith5,TH,9.5,1045
`

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.txt")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write temp catalog: %v", err)
	}
	return path
}

func TestParseLine(t *testing.T) {
	c, err := ParseLine("CSC 216,Software Eng,001,3,jdyoung2,MW,1330,1445")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := course.New("CSC 216", "Software Eng", "001", 3, "jdyoung2", "MW", 1330, 1445)
	if !c.Equal(want) {
		t.Errorf("parsed %v, want %v", c, want)
	}

	a, err := ParseLine("CSC 499,Independent Study,001,3,jdyoung2,A\r")
	if err != nil {
		t.Fatalf("unexpected error for arranged line: %v", err)
	}
	if !a.IsArranged() || a.StartTime() != 0 || a.EndTime() != 0 {
		t.Errorf("expected arranged course, got %v", a)
	}
}

func TestParseLine_Invalid(t *testing.T) {
	lines := []string{
		"",
		"CSC 216,Software Eng,001,3,jdyoung2",
		"CSC 216,Software Eng,001,three,jdyoung2,MW,1330,1445",
		"CSC 216,Software Eng,001,3,jdyoung2,MW,1330",
		"CSC 216,Software Eng,001,3,jdyoung2,MW,1330,1445,extra",
		"CSC 216,Software Eng,001,3,jdyoung2,MW,1:30,1445",
		"CSC 216,Software Eng,001,3,jdyoung2,MW,1330,end",
		"CSC 216,Software Eng,001,3,jdyoung2,A,0,0",
		"CSC216,Software Eng,001,3,jdyoung2,MW,1330,1445",
		"CSC 216,Software Eng,001,7,jdyoung2,MW,1330,1445",
		"CSC 216, Software Eng,001,3,jdyoung2,MW, 1330,1445",
	}

	for _, line := range lines {
		c, err := ParseLine(line)
		if err == nil {
			t.Errorf("expected %q to be invalid, got %v", line, c)
			continue
		}
		if !errors.Is(err, ErrInvalidLine) {
			t.Errorf("expected ErrInvalidLine for %q, got %v", line, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	courses := []*course.Course{}
	for _, args := range []struct {
		name, section, days string
		start, end          int
	}{
		{"CSC 216", "001", "MW", 1330, 1445},
		{"E 115", "010", "F", 0, 0},
		{"MA 141", "601", "A", 0, 0},
		{"PY 205", "202", "MTWHF", 800, 850},
	} {
		c, err := course.New(args.name, "Some Title", args.section, 4, "prof", args.days, args.start, args.end)
		if err != nil {
			t.Fatalf("bad fixture %v: %v", args, err)
		}
		courses = append(courses, c)
	}

	for _, c := range courses {
		parsed, err := ParseLine(c.String())
		if err != nil {
			t.Fatalf("failed to parse %q: %v", c.String(), err)
		}
		if !parsed.Equal(c) {
			t.Errorf("round trip mismatch: %v != %v", parsed, c)
		}
	}
}

func TestReadCatalog(t *testing.T) {
	path := writeTemp(t, sampleCatalog)

	courses, err := ReadCatalog(path)
	if err != nil {
		t.Fatalf("ReadCatalog failed: %v", err)
	}

	want := []string{
		"CSC 116/001", "CSC 116/002", "CSC 116/003", "CSC 216/001",
		"CSC 226/001", "CSC 230/001", "CSC 316/001", "CSC 216/601",
	}
	if len(courses) != len(want) {
		t.Fatalf("expected %d courses, got %d", len(want), len(courses))
	}
	for i, c := range courses {
		if got := c.Name() + "/" + c.Section(); got != want[i] {
			t.Errorf("course %d = %s, want %s", i, got, want[i])
		}
	}

	// First occurrence of a duplicate wins.
	if courses[3].InstructorID() != "sesmith5" {
		t.Errorf("expected first CSC 216/001 entry to be kept, got instructor %s", courses[3].InstructorID())
	}
}

func TestReadCatalog_Idempotent(t *testing.T) {
	path := writeTemp(t, sampleCatalog)

	first, err := ReadCatalog(path)
	if err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	second, err := ReadCatalog(path)
	if err != nil {
		t.Fatalf("second read failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("reads differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] == second[i] {
			t.Errorf("expected distinct instances at %d", i)
		}
		if !first[i].Equal(second[i]) {
			t.Errorf("course %d differs between reads: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestReadCatalog_MissingFile(t *testing.T) {
	_, err := ReadCatalog(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestReader_ReportsSkippedLines(t *testing.T) {
	var logBuf bytes.Buffer
	rd := NewReader(zerolog.New(&logBuf).Level(zerolog.DebugLevel))

	report, err := rd.Read(strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(report.Courses) != 8 {
		t.Errorf("expected 8 kept courses, got %d", len(report.Courses))
	}

	wantSkipped := map[int]SkipReason{
		5:  SkipDuplicate,
		10: SkipInvalid,
		11: SkipInvalid,
		12: SkipInvalid,
		13: SkipInvalid,
		14: SkipInvalid,
	}
	if len(report.Skipped) != len(wantSkipped) {
		t.Fatalf("expected %d skipped lines, got %d: %+v", len(wantSkipped), len(report.Skipped), report.Skipped)
	}
	for _, s := range report.Skipped {
		reason, ok := wantSkipped[s.Line]
		if !ok {
			t.Errorf("unexpected skipped line %d: %q", s.Line, s.Text)
			continue
		}
		if s.Reason != reason {
			t.Errorf("line %d: reason %s, want %s", s.Line, s.Reason, reason)
		}
		if reason == SkipInvalid && !errors.Is(s.Err, ErrInvalidLine) {
			t.Errorf("line %d: expected ErrInvalidLine, got %v", s.Line, s.Err)
		}
	}

	if !strings.Contains(logBuf.String(), "skipping catalog line") {
		t.Errorf("expected skipped lines to be logged, got: %s", logBuf.String())
	}
}

func TestReadCatalog_DuplicateKeepsFirst(t *testing.T) {
	path := writeTemp(t, "CSC 216,Software Eng,001,3,jdyoung2,MW,1330,1445\n"+
		"CSC 216,Other Title,001,4,smheckma,TH,900,1015\n")

	courses, err := ReadCatalog(path)
	if err != nil {
		t.Fatalf("ReadCatalog failed: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}
	if courses[0].Title() != "Software Eng" || courses[0].Credits() != 3 {
		t.Errorf("expected the first entry to be kept, got %v", courses[0])
	}
}

func TestWriteCourses(t *testing.T) {
	a, _ := course.New("CSC 216", "Software Eng", "001", 3, "jdyoung2", "MW", 1330, 1445)
	b, _ := course.NewArranged("CSC 499", "Independent Study", "001", 3, "jdyoung2")

	path := filepath.Join(t.TempDir(), "schedule.txt")
	if err := os.WriteFile(path, []byte("old contents that must disappear\n"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	if err := WriteCourses(path, []*course.Course{a, b}); err != nil {
		t.Fatalf("WriteCourses failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	want := "CSC 216,Software Eng,001,3,jdyoung2,MW,1330,1445\nCSC 499,Independent Study,001,3,jdyoung2,A\n"
	if string(data) != want {
		t.Errorf("unexpected file contents:\n%s\nwant:\n%s", data, want)
	}

	back, err := ReadCatalog(path)
	if err != nil {
		t.Fatalf("failed to re-read written file: %v", err)
	}
	if len(back) != 2 || !back[0].Equal(a) || !back[1].Equal(b) {
		t.Errorf("written courses did not read back equal: %v", back)
	}
}

func TestWriteCourses_Unwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "schedule.txt")
	if err := WriteCourses(path, nil); err == nil {
		t.Errorf("expected error writing into a missing directory")
	}
}

func TestReader_OverlongLineIsSkipped(t *testing.T) {
	input := "CSC 116,Intro to Programming - Java,001,3,jdyoung2,MW,910,1100\n" +
		strings.Repeat("x", 70000) + "\n" +
		"CSC 216,Software Development Fundamentals,001,3,sesmith5,MW,1330,1445\n"

	report, err := NewReader(zerolog.Nop()).Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("an overlong line must not fail the read: %v", err)
	}

	if len(report.Courses) != 2 {
		t.Fatalf("expected both valid courses, got %d", len(report.Courses))
	}
	if report.Courses[1].Name() != "CSC 216" {
		t.Errorf("expected CSC 216 after the long line, got %s", report.Courses[1].Name())
	}
	if len(report.Skipped) != 1 || report.Skipped[0].Line != 2 || report.Skipped[0].Reason != SkipInvalid {
		t.Errorf("expected line 2 skipped as invalid, got %+v", report.Skipped)
	}
}

func TestReader_LastLineWithoutNewline(t *testing.T) {
	input := "CSC 116,Intro to Programming - Java,001,3,jdyoung2,MW,910,1100\r\n" +
		"CSC 499,Independent Study,001,3,jdyoung2,A"

	report, err := NewReader(zerolog.Nop()).Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Courses) != 2 || len(report.Skipped) != 0 {
		t.Errorf("expected 2 courses and no skipped lines, got %d / %+v", len(report.Courses), report.Skipped)
	}
}
