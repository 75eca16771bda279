package check

import (
	"fmt"

	checker "github.com/flarebyte/initials/internal/check"
)

const (
	exitCodeSuccess = 0
	exitCodeExecErr = 1
	exitCodeFailure = 2
)

type checkExitError struct {
	code int
	msg  string
}

func (e checkExitError) Error() string { return e.msg }
func (e checkExitError) ExitCode() int { return e.code }

// evaluateCheckExit maps a rendered report to the process exit status.
// Execution errors return before rendering and keep exitCodeExecErr.
func evaluateCheckExit(rep checker.Report) error {
	if rep.OK() {
		return nil
	}
	noun := "cases"
	if rep.Failed == 1 {
		noun = "case"
	}
	return checkExitError{code: exitCodeFailure, msg: fmt.Sprintf("check failed: %d %s", rep.Failed, noun)}
}
