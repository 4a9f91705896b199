package render

import (
	"log"

	lsystem "github.com/viktordanov/lsys"
)

// Reporter logs every call it receives, indented by nesting depth.
type Reporter struct {
	logger *log.Logger
	depth  int
	calls  int
}

// NewReporter logs to logger, or to the standard logger when it is nil.
func NewReporter(logger *log.Logger) *Reporter {
	if logger == nil {
		logger = log.Default()
	}
	return &Reporter{logger: logger}
}

func (r *Reporter) Push() {
	r.emit("push")
	r.depth++
}

func (r *Reporter) Pop() {
	if r.depth > 0 {
		r.depth--
	}
	r.emit("pop")
}

func (r *Reporter) Render(i lsystem.Instruction) {
	r.emit(i.String())
}

func (r *Reporter) Flush() error {
	r.logger.Printf("flush after %d calls", r.calls)
	return nil
}

func (r *Reporter) emit(op string) {
	r.calls++
	r.logger.Printf("%*s%s", 2*r.depth, "", op)
}
