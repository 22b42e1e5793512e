package analysis

// Stage names used for metrics, spans and logs.
const (
	StageLocate   = "locate"
	StageEvaluate = "evaluate"
	StageScore    = "score"
	StageSuggest  = "suggest"
	StageResolve  = "resolve"
	StageSecurity = "security"
)

// StageOutcome classifies how a bounded pipeline stage ended.
type StageOutcome int

const (
	// StageSucceeded means the stage produced its value.
	StageSucceeded StageOutcome = iota
	// StageDegraded means the stage produced a fallback value and the pipeline continues.
	StageDegraded
	// StageFailed means the pipeline stops with the stage error.
	StageFailed
)

func (o StageOutcome) String() string {
	switch o {
	case StageSucceeded:
		return "succeeded"
	case StageDegraded:
		return "degraded"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StageResult carries a stage's value together with how it was obtained.
// Err is set for degraded and failed stages.
type StageResult[T any] struct {
	Value   T
	Outcome StageOutcome
	Err     error
}

func succeeded[T any](v T) StageResult[T] {
	return StageResult[T]{Value: v, Outcome: StageSucceeded}
}

func degraded[T any](v T, err error) StageResult[T] {
	return StageResult[T]{Value: v, Outcome: StageDegraded, Err: err}
}

func failed[T any](err error) StageResult[T] {
	return StageResult[T]{Outcome: StageFailed, Err: err}
}
