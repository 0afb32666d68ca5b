package htn

// LogEntry is one record in a Context's decomposition log, mirroring the
// source's DecompositionLog: a human-readable trace of what the planner
// chose and why, independent of the slog debug stream.
type LogEntry struct {
	Depth       int
	TaskName    string
	Description string
}

// log appends to the decomposition log (if enabled) and emits a slog
// debug record (if a logger is set and LogDecomposition is on). The two
// sinks are independent, matching the source's RealTimeLog/DecompositionLog
// split: one is for programmatic inspection, the other for live tailing.
func (c *Context) log(taskName, description string) {
	if !c.LogDecomposition {
		return
	}
	c.DecompositionLog = append(c.DecompositionLog, LogEntry{
		Depth:       c.CurrentDecompositionDepth,
		TaskName:    taskName,
		Description: description,
	})
	if c.logger != nil {
		c.logger.Debug("decomposition",
			"context", c.id,
			"task", taskName,
			"depth", c.CurrentDecompositionDepth,
			"description", description,
		)
	}
}
