package dto

// Envelope is the success half of the response contract:
// {"success": true, "count": N, "data": ...}.
type Envelope struct {
	Success bool `json:"success"`
	Count   *int `json:"count,omitempty"`
	Data    any  `json:"data"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKList(data any, count int) Envelope {
	return Envelope{Success: true, Count: &count, Data: data}
}

// UserTasksEnvelope is the admin view of one user's tasks: the user summary
// rides alongside the task list.
type UserTasksEnvelope struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	User    UserItem `json:"user"`
	Data    any      `json:"data"`
}
