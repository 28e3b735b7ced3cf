package report

// Status is the terminal state of a report generation attempt.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Result is the reporting agent's answer for one conversion. Exactly one
// of Report and ErrorMessage is populated, matching Status.
type Result struct {
	Status       Status `json:"status"`
	Report       string `json:"report,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

func Completed(text string) Result {
	return Result{Status: StatusCompleted, Report: text}
}

func Failed(msg string) Result {
	return Result{Status: StatusError, ErrorMessage: msg}
}
