package reports

// CalendarEvent is one SPMS calendar milestone.
type CalendarEvent struct {
	Period   string `json:"period"`
	Activity string `json:"activity"`
	Deadline string `json:"deadline"`
	Actors   string `json:"actors"`
}

var spmsCalendar = []CalendarEvent{
	{Period: "Jan-Jun 2026", Activity: "Submission of IPCR for Jan-Jun", Deadline: "July 15, 2026", Actors: "Ratee, Supervisor"},
	{Period: "Jan-Jun 2026", Activity: "Review and Evaluation", Deadline: "July 30, 2026", Actors: "PMT, HRMU"},
	{Period: "Jul-Dec 2026", Activity: "Submission of IPCR for Jul-Dec", Deadline: "January 15, 2027", Actors: "Ratee, Supervisor"},
}

// Calendar returns the SPMS calendar for the current fiscal year.
func Calendar() []CalendarEvent {
	return append([]CalendarEvent(nil), spmsCalendar...)
}
