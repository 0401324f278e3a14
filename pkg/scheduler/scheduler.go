package scheduler

import (
	"fmt"

	"wolfscheduler/pkg/apperrors"
	"wolfscheduler/pkg/course"
	"wolfscheduler/pkg/records"

	"github.com/rs/zerolog"
)

// DefaultTitle is the schedule title before the user picks one.
const DefaultTitle = "My Schedule"

// CourseRow is the short projection shown in the catalog and schedule tables.
type CourseRow struct {
	Name    string
	Section string
	Title   string
}

// ScheduleRow is the detailed projection used for the final schedule view.
type ScheduleRow struct {
	Name         string
	Section      string
	Title        string
	Credits      int
	InstructorID string
	Meeting      string
}

// Scheduler owns the read-only catalog and the user's editable schedule.
// It is not safe for concurrent use.
type Scheduler struct {
	log      zerolog.Logger
	catalog  []*course.Course
	schedule []*course.Course
	title    string
	skipped  []records.Skipped
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger used for catalog diagnostics and mutations.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Scheduler) {
		s.log = log
	}
}

func newScheduler(opts []Option) *Scheduler {
	s := &Scheduler{
		log:      zerolog.Nop(),
		catalog:  []*course.Course{},
		schedule: []*course.Course{},
		title:    DefaultTitle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New loads the catalog at catalogPath. Construction fails as a whole if the
// file cannot be read; invalid lines are skipped and kept in Skipped.
func New(catalogPath string, opts ...Option) (*Scheduler, error) {
	s := newScheduler(opts)

	report, err := records.NewReader(s.log).ReadFile(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.InvalidArgument("Cannot find file."), err)
	}

	s.catalog = report.Courses
	s.skipped = report.Skipped

	s.log.Info().
		Str("catalog", catalogPath).
		Int("courses", len(s.catalog)).
		Int("skipped", len(s.skipped)).
		Msg("catalog loaded")

	return s, nil
}

// NewFromCourses builds a Scheduler around an already decoded catalog.
func NewFromCourses(catalog []*course.Course, opts ...Option) *Scheduler {
	s := newScheduler(opts)
	s.catalog = append(s.catalog, catalog...)
	return s
}

// Catalog returns the (name, section, title) view of every catalog course.
func (s *Scheduler) Catalog() []CourseRow {
	return shortRows(s.catalog)
}

// Schedule returns the (name, section, title) view of the current schedule.
func (s *Scheduler) Schedule() []CourseRow {
	return shortRows(s.schedule)
}

// FullSchedule returns the detailed view of the current schedule.
func (s *Scheduler) FullSchedule() []ScheduleRow {
	rows := make([]ScheduleRow, 0, len(s.schedule))
	for _, c := range s.schedule {
		rows = append(rows, ScheduleRow{
			Name:         c.Name(),
			Section:      c.Section(),
			Title:        c.Title(),
			Credits:      c.Credits(),
			InstructorID: c.InstructorID(),
			Meeting:      c.MeetingString(),
		})
	}
	return rows
}

func shortRows(courses []*course.Course) []CourseRow {
	rows := make([]CourseRow, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, CourseRow{Name: c.Name(), Section: c.Section(), Title: c.Title()})
	}
	return rows
}

// Courses returns a copy of the scheduled courses in order.
func (s *Scheduler) Courses() []*course.Course {
	return append([]*course.Course(nil), s.schedule...)
}

// Skipped returns the catalog lines dropped while loading.
func (s *Scheduler) Skipped() []records.Skipped {
	return append([]records.Skipped(nil), s.skipped...)
}

// FindInCatalog looks up a course by exact name and section.
func (s *Scheduler) FindInCatalog(name, section string) (*course.Course, bool) {
	for _, c := range s.catalog {
		if c.Name() == name && c.Section() == section {
			return c, true
		}
	}
	return nil, false
}

// AddToSchedule appends the matching catalog course. It reports false when
// the catalog has no such course. A schedule may hold only one section of a
// given course name; adding another returns apperrors.ErrAlreadyEnrolled.
func (s *Scheduler) AddToSchedule(name, section string) (bool, error) {
	c, ok := s.FindInCatalog(name, section)
	if !ok {
		return false, nil
	}

	for _, existing := range s.schedule {
		if existing.Name() == name {
			return false, apperrors.NewCustomError(apperrors.ErrAlreadyEnrolled, "You are already enrolled in "+name)
		}
	}

	s.schedule = append(s.schedule, c)
	s.log.Debug().Str("course", name).Str("section", section).Msg("added to schedule")
	return true, nil
}

// RemoveFromSchedule removes the first scheduled course with the given name
// and section.
func (s *Scheduler) RemoveFromSchedule(name, section string) bool {
	for i, c := range s.schedule {
		if c.Name() == name && c.Section() == section {
			s.schedule = append(s.schedule[:i:i], s.schedule[i+1:]...)
			s.log.Debug().Str("course", name).Str("section", section).Msg("removed from schedule")
			return true
		}
	}
	return false
}

// ResetSchedule empties the schedule. The title is kept.
func (s *Scheduler) ResetSchedule() {
	s.schedule = []*course.Course{}
}

// Title returns the schedule title.
func (s *Scheduler) Title() string {
	return s.title
}

// SetTitle replaces the schedule title. An empty title is rejected.
func (s *Scheduler) SetTitle(title string) error {
	if title == "" {
		return apperrors.InvalidArgument("Title cannot be null.")
	}
	s.title = title
	return nil
}

// TotalCredits sums the credits of the scheduled courses.
func (s *Scheduler) TotalCredits() int {
	total := 0
	for _, c := range s.schedule {
		total += c.Credits()
	}
	return total
}

// ExportSchedule writes the schedule to path in the catalog line format.
func (s *Scheduler) ExportSchedule(path string) error {
	if err := records.WriteCourses(path, s.schedule); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("schedule export failed")
		return fmt.Errorf("%w: %w", apperrors.InvalidArgument("The file cannot be saved."), err)
	}

	s.log.Info().Str("path", path).Int("courses", len(s.schedule)).Msg("schedule exported")
	return nil
}
