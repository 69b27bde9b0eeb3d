package renderer

import (
	"fmt"

	"github.com/etnz/yieldcurve"
	md "github.com/nao1215/markdown"
)

// Level is the severity of a status message.
type Level int

const (
	Success Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Status is a message for the user, in markdown.
type Status struct {
	Level   Level
	Message string
}

// StatusOf describes a resolved result to the user.
func StatusOf(r yieldcurve.Result) Status {
	switch r.Outcome {
	case yieldcurve.NoData:
		return Status{Error, "Error: Yield data could not be retrieved from FRED. Please check your internet connection or try again later."}
	case yieldcurve.NoDateOnOrBefore:
		return Status{Warning, fmt.Sprintf("No data available on or before %s. Please select an earlier date.", r.Requested)}
	case yieldcurve.EmptyCurve:
		return Status{Warning, fmt.Sprintf("No complete yield curve data available for %s.", r.Date)}
	}
	if r.Exact {
		return Status{Success, fmt.Sprintf("Showing yield curve for **%s**.", r.Date)}
	}
	return Status{Info, fmt.Sprintf("Showing yield curve for **%s** (closest available date to %s).", r.Date, r.Requested)}
}

// LoadErrors describes a failed download. The session goes on with an empty
// series, so two notices are raised.
func LoadErrors(err error) []Status {
	return []Status{
		{Error, fmt.Sprintf("Error fetching data from FRED: %v", err)},
		{Error, "Failed to load initial yield data. The app might not function correctly."},
	}
}

// alert writes s as a GitHub alert block, closed by a blank line so that
// consecutive alerts do not merge.
func (s Status) alert(doc *md.Markdown) {
	defer doc.LF()
	switch s.Level {
	case Success:
		doc.Tip(s.Message)
	case Info:
		doc.Note(s.Message)
	case Warning:
		doc.Warning(s.Message)
	default:
		doc.Caution(s.Message)
	}
}
