package broker

// Subject layout. Stage queues live under a JetStream work-queue stream;
// everything under evt.> is transient core pub/sub.
const (
	// StreamName is the JetStream stream holding all stage queues.
	StreamName = "MAESTRO_STAGES"

	// StageSubjectPrefix routes stage messages; one subject per stage.
	StageSubjectPrefix = "stage.task."

	// StageSubjectWildcard matches every stage queue subject.
	StageSubjectWildcard = StageSubjectPrefix + ">"
)

// Event wildcards for cross-task subscribers (monitors, bridges).
const (
	ProgressWildcard      = "evt.progress.*"
	StageCompleteWildcard = "evt.stage.complete.>"
	StageFailedWildcard   = "evt.stage.failed.>"
	ResponseReadyWildcard = "evt.response.ready.*"
	HeartbeatWildcard     = "evt.agent.heartbeat.*"
)

// StageSubject returns the queue subject for a stage.
func StageSubject(stage string) string {
	return StageSubjectPrefix + stage
}

// ProgressSubject is the transient progress topic for one task.
func ProgressSubject(taskID string) string {
	return "evt.progress." + taskID
}

// StageCompleteSubject correlates a completion event by (task, stage).
func StageCompleteSubject(taskID, stage string) string {
	return "evt.stage.complete." + taskID + "." + stage
}

// StageFailedSubject correlates a failure event by (task, stage).
func StageFailedSubject(taskID, stage string) string {
	return "evt.stage.failed." + taskID + "." + stage
}

// ResponseReadySubject announces the packaged final response of a task.
func ResponseReadySubject(taskID string) string {
	return "evt.response.ready." + taskID
}

// HeartbeatSubject carries periodic agent health heartbeats.
func HeartbeatSubject(agent string) string {
	return "evt.agent.heartbeat." + agent
}
