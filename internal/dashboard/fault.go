package dashboard

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Dallionking/esports-stream/internal/tui/styles"
)

// Render loop stages, reported in a RenderFault.
const (
	StageStart   = "start"
	StageCompose = "compose"
	StagePaint   = "paint"
)

// FaultLogMessage is the log message written once when the loop dies.
const FaultLogMessage = "dashboard thread exception"

// noticeRepeat is how many times the on-screen fault notice is printed.
const noticeRepeat = 3

// RenderFault is the terminal error of a failed render loop. Value is the
// recovered panic value or the returned error.
type RenderFault struct {
	Stage string
	Value any
	Stack []byte
}

func (f *RenderFault) Error() string {
	return fmt.Sprintf("dashboard %s failed: %v", f.Stage, f.Value)
}

// Unwrap exposes Value when it is an error.
func (f *RenderFault) Unwrap() error {
	err, _ := f.Value.(error)
	return err
}

// fail records the fault: one log entry with the trace, then three
// on-screen notices. It must not be called with RefreshLock held.
func (r *Renderer) fail(stage string, value any, stack []byte) *RenderFault {
	f := &RenderFault{Stage: stage, Value: value, Stack: stack}

	r.log.WithFields(logrus.Fields{
		"stage": stage,
		"error": fmt.Sprint(value),
		"trace": string(stack),
	}).Error(FaultLogMessage)

	notice := r.loc.Text("fault.dashboard", styles.Notice)
	for i := 0; i < noticeRepeat; i++ {
		r.term.Println(notice)
	}
	return f
}
