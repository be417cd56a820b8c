package backoffice

import (
	"sort"
	"strings"
)

// DefaultPageSize is the fixed console page size.
const DefaultPageSize = 6

// ListView tracks which collection is on screen, the free-text filter, the
// current page and the multi-select set used for bulk delete. Switching tab
// resets filter, page and selection; changing the filter resets page and
// selection, since a changed filter may hide a selected row that would still
// be counted by a bulk delete.
type ListView struct {
	tab      string
	query    string
	page     int
	pageSize int
	selected map[int64]bool
}

func NewListView() *ListView {
	return &ListView{
		tab:      TabOverview,
		page:     1,
		pageSize: DefaultPageSize,
		selected: map[int64]bool{},
	}
}

func (v *ListView) Tab() string   { return v.tab }
func (v *ListView) Query() string { return v.query }
func (v *ListView) Page() int     { return v.page }

func (v *ListView) SetTab(tab string) {
	if tab == v.tab {
		return
	}
	v.tab = tab
	v.query = ""
	v.page = 1
	v.selected = map[int64]bool{}
}

func (v *ListView) SetQuery(q string) {
	if q == v.query {
		return
	}
	v.query = q
	v.page = 1
	v.selected = map[int64]bool{}
}

func (v *ListView) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}

func (v *ListView) ToggleSelect(id int64) {
	if v.selected[id] {
		delete(v.selected, id)
	} else {
		v.selected[id] = true
	}
}

func (v *ListView) ClearSelection() {
	v.selected = map[int64]bool{}
}

// Selected returns the selected ids in ascending order.
func (v *ListView) Selected() []int64 {
	ids := make([]int64, 0, len(v.selected))
	for id := range v.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Filter applies the free-text query to a collection. An empty query matches
// everything.
func (v *ListView) Filter(rows []interface{}) []interface{} {
	q := strings.ToLower(strings.TrimSpace(v.query))
	if q == "" {
		return rows
	}
	out := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		if matches(row, q) {
			out = append(out, row)
		}
	}
	return out
}

// PageResult is one rendered page of the active collection.
type PageResult struct {
	Rows      []interface{} `json:"rows"`
	Page      int           `json:"page"`
	PageCount int           `json:"page_count"`
	Total     int           `json:"total"`
	Selected  []int64       `json:"selected"`
}

// Paginate slices the filtered collection into the current page. The page is
// clamped into [1, pageCount]; concatenating all pages in order reproduces
// the filtered collection exactly.
func (v *ListView) Paginate(filtered []interface{}) PageResult {
	pageCount := (len(filtered) + v.pageSize - 1) / v.pageSize
	page := v.page
	if pageCount > 0 && page > pageCount {
		page = pageCount
	}
	if page < 1 {
		page = 1
	}
	v.page = page

	start := (page - 1) * v.pageSize
	end := start + v.pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return PageResult{
		Rows:      filtered[start:end],
		Page:      page,
		PageCount: pageCount,
		Total:     len(filtered),
		Selected:  v.Selected(),
	}
}
