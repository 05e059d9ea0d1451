package dto

// BoardRowResponse is one rendered row of the board view. Depth mirrors the
// task's level for indentation.
type BoardRowResponse struct {
	Depth int          `json:"depth"`
	Task  TaskResponse `json:"task"`
}

// BoardViewResponse is the rendered board for one group
type BoardViewResponse struct {
	Group string             `json:"group"`
	Flat  bool               `json:"flat"` // true when a filter or sort flattened the tree
	Rows  []BoardRowResponse `json:"rows"`
}

// MyWorkItemResponse is a task in the my-work view, annotated with the
// name of the project it belongs to
type MyWorkItemResponse struct {
	TaskResponse
	ProjectName string `json:"projectName"`
}

// MyWorkBucketResponse is one date-relative bucket of the my-work view
type MyWorkBucketResponse struct {
	Key   string               `json:"key"`
	Count int                  `json:"count"`
	Items []MyWorkItemResponse `json:"items"`
}

// MyWorkResponse is the full my-work view: buckets in fixed display order
// (overdue, today, thisWeek, nextWeek, later, noDate)
type MyWorkResponse struct {
	Buckets []MyWorkBucketResponse `json:"buckets"`
}
