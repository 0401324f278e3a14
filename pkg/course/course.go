package course

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"wolfscheduler/pkg/apperrors"
)

// Arranged is the meeting-days value for courses without a fixed weekly time.
const Arranged = "A"

const (
	minNameLength    = 5
	maxNameLength    = 8
	minLetterCount   = 1
	maxLetterCount   = 4
	digitCount       = 3
	sectionLength    = 3
	minCredits       = 3
	maxCredits       = 5
	validMeetingDays = "MTWHF"
)

// weekdays maps meeting-day letters to calendar days. H is Thursday.
var weekdays = map[rune]time.Weekday{
	'M': time.Monday,
	'T': time.Tuesday,
	'W': time.Wednesday,
	'H': time.Thursday,
	'F': time.Friday,
}

// Course is a single catalog or schedule entry. The zero value is not a
// valid course; use New or NewArranged. Fields cannot change once built.
type Course struct {
	name         string
	title        string
	section      string
	credits      int
	instructorID string
	meetingDays  string
	startTime    int
	endTime      int
}

// New validates every field in order (name, title, section, credits,
// instructor id, meeting days and times) and fails on the first violation.
func New(name, title, section string, credits int, instructorID, meetingDays string, startTime, endTime int) (*Course, error) {
	if !validName(name) {
		return nil, apperrors.InvalidArgument("Invalid course name.")
	}
	if title == "" {
		return nil, apperrors.InvalidArgument("Invalid title.")
	}
	if !validSection(section) {
		return nil, apperrors.InvalidArgument("Invalid section.")
	}
	if credits < minCredits || credits > maxCredits {
		return nil, apperrors.InvalidArgument("Invalid credits.")
	}
	if instructorID == "" || strings.IndexFunc(instructorID, unicode.IsSpace) >= 0 {
		return nil, apperrors.InvalidArgument("Invalid instructor id.")
	}
	if !validMeeting(meetingDays, startTime, endTime) {
		return nil, apperrors.InvalidArgument("Invalid meeting days and times.")
	}

	return &Course{
		name:         name,
		title:        title,
		section:      section,
		credits:      credits,
		instructorID: instructorID,
		meetingDays:  meetingDays,
		startTime:    startTime,
		endTime:      endTime,
	}, nil
}

// NewArranged builds a course with arranged meeting days.
func NewArranged(name, title, section string, credits int, instructorID string) (*Course, error) {
	return New(name, title, section, credits, instructorID, Arranged, 0, 0)
}

// validName accepts 1-4 letters, one space, then exactly 3 digits.
func validName(name string) bool {
	if n := utf8.RuneCountInString(name); n < minNameLength || n > maxNameLength {
		return false
	}

	letters, digits := 0, 0
	seenSpace := false
	for _, r := range name {
		switch {
		case !seenSpace && unicode.IsLetter(r):
			letters++
		case !seenSpace && r == ' ':
			if letters < minLetterCount || letters > maxLetterCount {
				return false
			}
			seenSpace = true
		case seenSpace && isDigit(r):
			digits++
		default:
			return false
		}
	}

	return seenSpace && digits == digitCount
}

func validSection(section string) bool {
	if len(section) != sectionLength {
		return false
	}
	for _, r := range section {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

func validMeeting(days string, start, end int) bool {
	if days == "" {
		return false
	}
	if days == Arranged {
		return start == 0 && end == 0
	}

	seen := make(map[rune]bool, len(days))
	for _, r := range days {
		if !strings.ContainsRune(validMeetingDays, r) || seen[r] {
			return false
		}
		seen[r] = true
	}

	return validTime(start) && validTime(end) && end >= start
}

// validTime checks the HHMM encoding.
func validTime(t int) bool {
	if t < 0 {
		return false
	}
	hour, minute := t/100, t%100
	return hour <= 23 && minute <= 59
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (c *Course) Name() string         { return c.name }
func (c *Course) Title() string        { return c.title }
func (c *Course) Section() string      { return c.section }
func (c *Course) Credits() int         { return c.credits }
func (c *Course) InstructorID() string { return c.instructorID }
func (c *Course) MeetingDays() string  { return c.meetingDays }
func (c *Course) StartTime() int       { return c.startTime }
func (c *Course) EndTime() int         { return c.endTime }

// IsArranged reports whether the course has no fixed meeting time.
func (c *Course) IsArranged() bool {
	return c.meetingDays == Arranged
}

// Key identifies a course within a catalog.
func (c *Course) Key() string {
	return c.name + "|" + c.section
}

// Equal compares all eight fields.
func (c *Course) Equal(other *Course) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}

// Days returns the meeting days in calendar order. Arranged courses have none.
func (c *Course) Days() []time.Weekday {
	if c.IsArranged() {
		return nil
	}
	days := make([]time.Weekday, 0, len(c.meetingDays))
	for _, r := range c.meetingDays {
		days = append(days, weekdays[r])
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// String renders the course in the catalog line format.
func (c *Course) String() string {
	fields := []string{
		c.name,
		c.title,
		c.section,
		strconv.Itoa(c.credits),
		c.instructorID,
		c.meetingDays,
	}
	if !c.IsArranged() {
		fields = append(fields, strconv.Itoa(c.startTime), strconv.Itoa(c.endTime))
	}
	return strings.Join(fields, ",")
}

// MeetingString returns "Arranged" or e.g. "MW 1:30PM-2:45PM".
func (c *Course) MeetingString() string {
	if c.IsArranged() {
		return "Arranged"
	}
	return fmt.Sprintf("%s %s-%s", c.meetingDays, formatTime(c.startTime), formatTime(c.endTime))
}

// formatTime converts HHMM to a 12-hour clock string.
func formatTime(t int) string {
	hour, minute := t/100, t%100

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	hour %= 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%02d%s", hour, minute, period)
}
