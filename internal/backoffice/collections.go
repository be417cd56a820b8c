// Package backoffice implements the admin console core: the snapshot cache
// over the data gateway, derived stats, the list view (search, pagination,
// selection), the mutation orchestrator and the order lifecycle controller.
package backoffice

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/upgradeats/upgradeats/internal/domain"
)

// Console tabs. Overview renders stats only; the rest map onto tables.
const (
	TabOverview  = "overview"
	TabMenu      = "menu"
	TabOrders    = "orders"
	TabTeam      = "team"
	TabFeatures  = "features"
	TabFeedbacks = "feedbacks"
)

var tabTables = map[string]string{
	TabMenu:      domain.Product{}.TableName(),
	TabOrders:    domain.Order{}.TableName(),
	TabTeam:      domain.TeamMember{}.TableName(),
	TabFeatures:  domain.Feature{}.TableName(),
	TabFeedbacks: domain.Feedback{}.TableName(),
}

// TableForTab resolves a console tab to its gateway table name; empty for
// tabs without a backing collection.
func TableForTab(tab string) string {
	return tabTables[tab]
}

// ValidTab reports whether tab names a collection-backed console tab.
func ValidTab(tab string) bool {
	_, ok := tabTables[tab]
	return ok
}

// ErrUnknownTab flags an operation against a tab with no backing table.
func ErrUnknownTab(tab string) error {
	return errors.Errorf("unknown console tab %q", tab)
}

func newModel(table string) interface{} {
	switch table {
	case domain.Product{}.TableName():
		return &domain.Product{}
	case domain.Order{}.TableName():
		return &domain.Order{}
	case domain.TeamMember{}.TableName():
		return &domain.TeamMember{}
	case domain.Feature{}.TableName():
		return &domain.Feature{}
	case domain.Feedback{}.TableName():
		return &domain.Feedback{}
	}
	return nil
}

// Collection returns the snapshot slice behind a tab as a uniform list.
func (s *Snapshot) Collection(tab string) []interface{} {
	switch tab {
	case TabMenu:
		return toRows(s.Products)
	case TabOrders:
		return toRows(s.Orders)
	case TabTeam:
		return toRows(s.Teams)
	case TabFeatures:
		return toRows(s.Features)
	case TabFeedbacks:
		return toRows(s.Feedbacks)
	}
	return nil
}

func toRows[T any](items []T) []interface{} {
	rows := make([]interface{}, len(items))
	for i := range items {
		rows[i] = items[i]
	}
	return rows
}

// RowID extracts the server-assigned id of any collection record.
func RowID(row interface{}) int64 {
	switch r := row.(type) {
	case domain.Product:
		return r.ID
	case domain.Order:
		return r.ID
	case domain.TeamMember:
		return r.ID
	case domain.Feature:
		return r.ID
	case domain.Feedback:
		return r.ID
	}
	return 0
}

// searchText concatenates the searchable fields of a record. A record matches
// a query when any of name, title, customer_name or message (whichever exist
// on its type) contains the query as a case-insensitive substring.
func searchText(row interface{}) string {
	switch r := row.(type) {
	case domain.Product:
		return r.Name
	case domain.Order:
		return r.CustomerName
	case domain.TeamMember:
		return r.Name
	case domain.Feature:
		return r.Title
	case domain.Feedback:
		return r.Message
	}
	return ""
}

func matches(row interface{}, loweredQuery string) bool {
	if loweredQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(searchText(row)), loweredQuery)
}
