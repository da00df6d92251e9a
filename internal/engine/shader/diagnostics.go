package shader

import (
	"strings"
)

// Kind classifies a build failure.
type Kind int

const (
	KindRead Kind = iota
	KindCompile
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindRead:
		return "UNABLE_TO_READ_FILE"
	case KindCompile:
		return "COMPILATION_FAILED"
	case KindLink:
		return "LINKING_FAILED"
	default:
		return "UNKNOWN"
	}
}

// Diagnostic is one failure reported while building a program.
type Diagnostic struct {
	Stage Stage
	Kind  Kind
	// Path is the source file of the stage; empty for link failures.
	Path string
	// Log is the driver info log, or the read error for KindRead.
	Log string
}

// Tag returns the fixed ERROR::SHADER::<STAGE>::<KIND> prefix.
func (d Diagnostic) Tag() string {
	return "ERROR::SHADER::" + d.Stage.String() + "::" + d.Kind.String()
}

func (d Diagnostic) Error() string {
	if d.Log == "" {
		return d.Tag()
	}
	return d.Tag() + "\n" + d.Log
}

// Diagnostics collects every failure from one build. A non-empty value is
// returned as the error of New and Reload.
type Diagnostics []Diagnostic

func (ds Diagnostics) Error() string {
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = d.Error()
	}
	return strings.Join(lines, "\n")
}

// Count returns how many diagnostics match stage and kind.
func (ds Diagnostics) Count(stage Stage, kind Kind) int {
	n := 0
	for _, d := range ds {
		if d.Stage == stage && d.Kind == kind {
			n++
		}
	}
	return n
}

// truncateLog bounds a driver log the way a fixed InfoLogSize buffer would.
func truncateLog(log string) string {
	log = strings.TrimRight(log, "\x00")
	if len(log) > InfoLogSize-1 {
		return log[:InfoLogSize-1]
	}
	return log
}
