package directory

import (
	"errors"
	"strings"
)

var ErrEmptyRoster = errors.New("roster has no manager/employee rows")

// RosterEntry is one employee listed under a manager in the roster spreadsheet.
type RosterEntry struct {
	Name   string
	UserID *string
}

// Roster groups employees by their manager's display name.
type Roster struct {
	byManager map[string][]RosterEntry
}

// For returns the employees listed under manager, in sheet order.
func (r *Roster) For(manager string) []RosterEntry {
	if r == nil {
		return nil
	}
	entries := r.byManager[manager]
	out := make([]RosterEntry, len(entries))
	copy(out, entries)
	return out
}

func (r *Roster) Managers() int {
	if r == nil {
		return 0
	}
	return len(r.byManager)
}

// ParseRosterRows reads "Manager | Employee | User ID" rows. A leading header
// row is skipped, as are rows missing a manager or employee name. The
// returned directory lists managers in first-appearance order with logins
// derived under loginDomain.
func ParseRosterRows(rows [][]string, loginDomain string) (*Directory, *Roster, error) {
	if loginDomain == "" {
		loginDomain = DefaultLoginDomain
	}

	roster := &Roster{byManager: make(map[string][]RosterEntry)}
	var entries []Entry

	for i, row := range rows {
		manager := cell(row, 0)
		employee := cell(row, 1)
		if i == 0 && isHeader(manager) {
			continue
		}
		if manager == "" || employee == "" {
			continue
		}

		if _, seen := roster.byManager[manager]; !seen {
			entries = append(entries, Entry{Name: manager, Login: DeriveLogin(manager, loginDomain)})
		}

		entry := RosterEntry{Name: employee}
		if userID := cell(row, 2); userID != "" {
			entry.UserID = &userID
		}
		roster.byManager[manager] = append(roster.byManager[manager], entry)
	}

	if len(entries) == 0 {
		return nil, nil, ErrEmptyRoster
	}

	dir, err := New(entries)
	if err != nil {
		return nil, nil, err
	}
	return dir, roster, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isHeader(s string) bool {
	switch strings.ToLower(s) {
	case "manager", "gestor", "lider", "líder":
		return true
	}
	return false
}
