package exporter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"wolfscheduler/pkg/course"

	ics "github.com/arran4/golang-ical"
)

// Term bounds the weekly recurrence of every exported course.
type Term struct {
	Start time.Time // first day of classes
	End   time.Time // last day of classes, inclusive
}

const (
	utcStamp   = "20060102T150405Z"
	localStamp = "20060102T150405"
)

var byDay = map[time.Weekday]string{
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
}

// GenerateICS writes one weekly recurring event per scheduled course.
// Arranged courses have no meeting time and are left out.
func GenerateICS(title string, courses []*course.Course, term Term, w io.Writer) error {
	if term.End.Before(term.Start) {
		return fmt.Errorf("term ends (%s) before it starts (%s)", term.End.Format("2006-01-02"), term.Start.Format("2006-01-02"))
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(title)

	loc := term.Start.Location()
	if tzid, ok := zoneID(loc); ok {
		cal.SetXWRTimezone(tzid)
	}
	lastDay := time.Date(term.End.Year(), term.End.Month(), term.End.Day(), 23, 59, 59, 0, loc)
	until := lastDay.UTC().Format(utcStamp)

	now := time.Now()
	for _, c := range courses {
		if c.IsArranged() {
			continue
		}

		first, ok := firstMeeting(c, term.Start, lastDay)
		if !ok {
			continue
		}

		startAt := atClock(first, c.StartTime())
		endAt := atClock(first, c.EndTime())

		event := cal.AddEvent(fmt.Sprintf("%s-%s@wolfscheduler", strings.ReplaceAll(c.Name(), " ", ""), c.Section()))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		setLocal(event, ics.ComponentPropertyDtStart, startAt)
		setLocal(event, ics.ComponentPropertyDtEnd, endAt)
		event.SetSummary(fmt.Sprintf("%s-%s %s", c.Name(), c.Section(), c.Title()))
		event.AddProperty(ics.ComponentPropertyRrule, fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s;UNTIL=%s", byDayList(c), until))

		description := fmt.Sprintf("Instructor: %s\nCredits: %d\nMeets: %s", c.InstructorID(), c.Credits(), c.MeetingString())
		event.SetDescription(description)
	}

	return cal.SerializeTo(w)
}

// setLocal writes wall-clock time with a TZID so the weekly rule keeps the
// class at the same local hour across daylight saving changes.
func setLocal(event *ics.VEvent, prop ics.ComponentProperty, t time.Time) {
	tzid, ok := zoneID(t.Location())
	if !ok {
		event.SetProperty(prop, t.UTC().Format(utcStamp))
		return
	}
	event.SetProperty(prop, t.Format(localStamp), ics.WithTZID(tzid))
}

// zoneID returns the IANA name of loc. UTC and unnamed zones have none.
func zoneID(loc *time.Location) (string, bool) {
	name := loc.String()
	if name == "UTC" || name == "Local" || !strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}

// WriteFile renders the calendar in memory and only then writes path, so a
// failed export never leaves a truncated file behind.
func WriteFile(path, title string, courses []*course.Course, term Term) error {
	var buf bytes.Buffer
	if err := GenerateICS(title, courses, term, &buf); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if _, err := buf.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// firstMeeting finds the first day on or after start the course meets.
func firstMeeting(c *course.Course, start, lastDay time.Time) (time.Time, bool) {
	meets := make(map[time.Weekday]bool)
	for _, d := range c.Days() {
		meets[d] = true
	}

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	for i := 0; i < 7; i++ {
		if day.After(lastDay) {
			return time.Time{}, false
		}
		if meets[day.Weekday()] {
			return day, true
		}
		day = day.AddDate(0, 0, 1)
	}
	return time.Time{}, false
}

// atClock places an HHMM time on the given day.
func atClock(day time.Time, hhmm int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hhmm/100, hhmm%100, 0, 0, day.Location())
}

func byDayList(c *course.Course) string {
	days := c.Days()
	codes := make([]string, 0, len(days))
	for _, d := range days {
		codes = append(codes, byDay[d])
	}
	return strings.Join(codes, ",")
}
