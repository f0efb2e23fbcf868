package metrics

// ResultLabel enumerates outcomes of an intercepted descriptor read
type ResultLabel string

const (
	ResultChanged   ResultLabel = "changed"
	ResultUnchanged ResultLabel = "unchanged"
	ResultDisabled  ResultLabel = "disabled"
	ResultFailed    ResultLabel = "failed"     // versioning could not be applied
	ResultReadError ResultLabel = "read_error" // underlying reader failed
)

// Recorder defines observability hooks for descriptor reads
type Recorder interface {
	IncRead(result ResultLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured)
type NoopRecorder struct{}

func (NoopRecorder) IncRead(ResultLabel) {}
