package worldpvp

// Recorder receives the outcome of every processed kill. metrics.Recorder
// implements it with Prometheus counters.
type Recorder interface {
	RecordKill(res Result)
	RecordRejected()
}

type nopRecorder struct{}

func (nopRecorder) RecordKill(Result) {}
func (nopRecorder) RecordRejected()   {}
