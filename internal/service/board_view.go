package service

import (
	"sort"

	"github.com/google/uuid"

	"project-task-api/internal/domain"
)

// BoardRow is a task paired with its indentation depth in the rendered board.
// Depth 0 is a root row, depth 1 a direct child, depth 2 a grandchild.
type BoardRow struct {
	Depth int
	Task  *domain.Task
}

// BoardFilter holds the optional filter criteria for a board view.
// Empty string means the criterion is inactive.
type BoardFilter struct {
	Status   string
	Priority string
	Assignee string
}

// BoardSort names a sortable column. Empty means no sort is active.
type BoardSort string

const (
	BoardSortNone     BoardSort = ""
	BoardSortStatus   BoardSort = "status"
	BoardSortPriority BoardSort = "priority"
	BoardSortEndDate  BoardSort = "endDate"
)

// BoardSortDir names the sort direction. Empty means ascending.
type BoardSortDir string

const (
	BoardSortAsc  BoardSortDir = "asc"
	BoardSortDesc BoardSortDir = "desc"
)

// Active reports whether any filter criterion is set.
func (f BoardFilter) Active() bool {
	return f.Status != "" || f.Priority != "" || f.Assignee != ""
}

// Matches reports whether the task satisfies every active criterion.
func (f BoardFilter) Matches(t *domain.Task) bool {
	if f.Status != "" && string(t.Status) != f.Status {
		return false
	}
	if f.Priority != "" && string(t.Priority) != f.Priority {
		return false
	}
	if f.Assignee != "" && t.Assignee != f.Assignee {
		return false
	}
	return true
}

// boardIndex holds the lookup maps built once per render pass.
type boardIndex struct {
	byID     map[uuid.UUID]*domain.Task
	children map[uuid.UUID][]*domain.Task
}

// buildBoardIndex builds the id and parent-to-children indexes over the
// project's task list. Child slices preserve source order.
func buildBoardIndex(tasks []*domain.Task) *boardIndex {
	idx := &boardIndex{
		byID:     make(map[uuid.UUID]*domain.Task, len(tasks)),
		children: make(map[uuid.UUID][]*domain.Task),
	}
	for _, t := range tasks {
		idx.byID[t.ID] = t
	}
	for _, t := range tasks {
		if t.ParentID == nil {
			continue
		}
		// A dangling parent reference simply produces an unreachable
		// subtree. The renderer never fails on it.
		idx.children[*t.ParentID] = append(idx.children[*t.ParentID], t)
	}
	return idx
}

// childrenOf returns the direct children of a parent at the expected level.
// Group membership is intentionally not checked here: a child renders under
// its parent regardless of which group the child row claims.
func (idx *boardIndex) childrenOf(parentID uuid.UUID, childLevel int) []*domain.Task {
	kids := idx.children[parentID]
	if len(kids) == 0 {
		return nil
	}
	out := make([]*domain.Task, 0, len(kids))
	for _, k := range kids {
		if k.Level == childLevel {
			out = append(out, k)
		}
	}
	return out
}

// BuildBoardRows renders the row list for one group of one project.
//
// With no active filter and no sort, rows are a pre-order walk of the task
// tree: roots are level-1 tasks with no parent whose group name matches,
// each followed by its level-2 children and their level-3 children in source
// order. A collapsed task still renders itself but contributes none of its
// descendants. Level-3 tasks are always leaves.
//
// When a filter or sort is active, the hierarchy disappears: every matching
// task in the group renders as a flat depth-0 row, sorted stably when a sort
// column is set, ascending or descending per sortDir.
func BuildBoardRows(tasks []*domain.Task, groupName string, filter BoardFilter, sortBy BoardSort, sortDir BoardSortDir) []BoardRow {
	if filter.Active() || sortBy != BoardSortNone {
		return buildFlatRows(tasks, groupName, filter, sortBy, sortDir)
	}

	idx := buildBoardIndex(tasks)
	rows := make([]BoardRow, 0, len(tasks))
	for _, t := range tasks {
		if t.Level != 1 || t.ParentID != nil || t.GroupName != groupName {
			continue
		}
		rows = appendSubtree(rows, idx, t, 0)
	}
	return rows
}

// appendSubtree appends the task and, unless collapsed, its descendants.
func appendSubtree(rows []BoardRow, idx *boardIndex, t *domain.Task, depth int) []BoardRow {
	rows = append(rows, BoardRow{Depth: depth, Task: t})
	if t.Collapsed || t.Level >= domain.MaxTaskLevel {
		return rows
	}
	for _, child := range idx.childrenOf(t.ID, t.Level+1) {
		rows = appendSubtree(rows, idx, child, depth+1)
	}
	return rows
}

// buildFlatRows renders the filtered or sorted flat view: all tasks of the
// group at any level, filtered, in source order, then stably sorted.
func buildFlatRows(tasks []*domain.Task, groupName string, filter BoardFilter, sortBy BoardSort, sortDir BoardSortDir) []BoardRow {
	flat := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.GroupName != groupName {
			continue
		}
		if !filter.Matches(t) {
			continue
		}
		flat = append(flat, t)
	}

	if sortBy != BoardSortNone {
		key := func(t *domain.Task) string {
			switch sortBy {
			case BoardSortStatus:
				return string(t.Status)
			case BoardSortPriority:
				return string(t.Priority)
			case BoardSortEndDate:
				return t.EndDate
			}
			return ""
		}
		// Dates sort lexically; the stored format keeps that equal to
		// chronological order. Ties keep source order in both directions.
		sort.SliceStable(flat, func(i, j int) bool {
			if sortDir == BoardSortDesc {
				return key(flat[i]) > key(flat[j])
			}
			return key(flat[i]) < key(flat[j])
		})
	}

	rows := make([]BoardRow, 0, len(flat))
	for _, t := range flat {
		rows = append(rows, BoardRow{Depth: 0, Task: t})
	}
	return rows
}

// GroupTasks partitions a project's tasks by group name, keyed exactly by
// the stored string. Tasks whose group name matches no existing group still
// land in a bucket of their own and stay countable.
func GroupTasks(tasks []*domain.Task) map[string][]*domain.Task {
	buckets := make(map[string][]*domain.Task)
	for _, t := range tasks {
		buckets[t.GroupName] = append(buckets[t.GroupName], t)
	}
	return buckets
}

// GroupBudgetSum sums the budget over a group's tasks at every level.
func GroupBudgetSum(tasks []*domain.Task) float64 {
	var sum float64
	for _, t := range tasks {
		sum += t.Budget
	}
	return sum
}
