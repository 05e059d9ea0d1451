package metrics

// IncrementProjectCreated increments project creation counter
func (m *Metrics) IncrementProjectCreated() {
	m.safeExecute("IncrementProjectCreated", func() {
		m.ProjectCreatedTotal.Inc()
	})
}

// IncrementTaskCreated increments task creation counter
func (m *Metrics) IncrementTaskCreated() {
	m.safeExecute("IncrementTaskCreated", func() {
		m.TaskCreatedTotal.Inc()
	})
}

// IncrementMeetingCreated increments meeting creation counter
func (m *Metrics) IncrementMeetingCreated() {
	m.safeExecute("IncrementMeetingCreated", func() {
		m.MeetingCreatedTotal.Inc()
	})
}

// SetProjectsTotal sets total projects gauge
func (m *Metrics) SetProjectsTotal(count int64) {
	m.safeExecute("SetProjectsTotal", func() {
		m.ProjectsTotal.Set(float64(count))
	})
}

// SetTasksTotal sets total tasks gauge
func (m *Metrics) SetTasksTotal(count int64) {
	m.safeExecute("SetTasksTotal", func() {
		m.TasksTotal.Set(float64(count))
	})
}

// SetMeetingsTotal sets total meetings gauge
func (m *Metrics) SetMeetingsTotal(count int64) {
	m.safeExecute("SetMeetingsTotal", func() {
		m.MeetingsTotal.Set(float64(count))
	})
}
