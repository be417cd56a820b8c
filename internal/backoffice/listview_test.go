package backoffice

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upgradeats/upgradeats/internal/domain"
)

func productRows(n int) []interface{} {
	rows := make([]interface{}, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, domain.Product{ID: int64(i), Name: fmt.Sprintf("Menu %02d", i)})
	}
	return rows
}

func TestFilterMatchesSearchableFields(t *testing.T) {
	v := NewListView()
	v.SetTab(TabMenu)
	v.SetQuery("salad")

	rows := []interface{}{
		domain.Product{ID: 1, Name: "Salad Wrap"},
		domain.Product{ID: 2, Name: "SALAD Buah"},
		domain.Product{ID: 3, Name: "Nasi Goreng"},
	}
	got := v.Filter(rows)

	require.Len(t, got, 2)
	for _, row := range got {
		assert.Contains(t, []int64{1, 2}, RowID(row))
	}
	assert.LessOrEqual(t, len(got), len(rows))
}

func TestFilterEmptyQueryMatchesAll(t *testing.T) {
	v := NewListView()
	v.SetTab(TabFeedbacks)
	rows := []interface{}{
		domain.Feedback{ID: 1, Message: "Mantap"},
		domain.Feedback{ID: 2, Message: "Kurang pedas"},
	}
	assert.Len(t, v.Filter(rows), 2)
}

func TestPaginationPartitionsExactly(t *testing.T) {
	v := NewListView()
	v.SetTab(TabMenu)

	rows := productRows(20)
	wantPages := 4 // ceil(20/6)

	seen := map[int64]int{}
	var pageCount int
	for page := 1; page <= wantPages; page++ {
		v.SetPage(page)
		res := v.Paginate(v.Filter(rows))
		pageCount = res.PageCount
		for _, row := range res.Rows {
			seen[RowID(row)]++
		}
	}

	assert.Equal(t, wantPages, pageCount)
	require.Len(t, seen, 20, "every row appears")
	for id, n := range seen {
		assert.Equalf(t, 1, n, "row %d must appear exactly once", id)
	}
}

func TestPaginateClampsPageIntoRange(t *testing.T) {
	v := NewListView()
	v.SetTab(TabMenu)
	rows := productRows(7)

	v.SetPage(99)
	res := v.Paginate(rows)
	assert.Equal(t, 2, res.Page)
	assert.Len(t, res.Rows, 1)

	res = v.Paginate(nil)
	assert.Equal(t, 0, res.PageCount)
	assert.Empty(t, res.Rows)
	assert.Equal(t, 1, res.Page)
}

func TestTabSwitchClearsSelectionAndQuery(t *testing.T) {
	v := NewListView()
	v.SetTab(TabMenu)
	v.SetQuery("wrap")
	v.SetPage(2)
	v.ToggleSelect(1)
	v.ToggleSelect(2)
	v.ToggleSelect(3)

	// Switch away and back; nothing is restored.
	v.SetTab(TabTeam)
	assert.Empty(t, v.Selected())
	assert.Equal(t, "", v.Query())
	assert.Equal(t, 1, v.Page())

	v.SetTab(TabMenu)
	assert.Empty(t, v.Selected())
}

func TestQueryChangeClearsSelection(t *testing.T) {
	v := NewListView()
	v.SetTab(TabMenu)
	v.ToggleSelect(5)
	require.Len(t, v.Selected(), 1)

	v.SetQuery("kopi")
	assert.Empty(t, v.Selected())
	assert.Equal(t, 1, v.Page())
}

func TestToggleSelect(t *testing.T) {
	v := NewListView()
	v.SetTab(TabMenu)

	v.ToggleSelect(9)
	v.ToggleSelect(4)
	assert.Equal(t, []int64{4, 9}, v.Selected())

	v.ToggleSelect(9)
	assert.Equal(t, []int64{4}, v.Selected())
}
