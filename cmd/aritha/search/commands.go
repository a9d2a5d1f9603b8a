package search

import "strings"

// CommandResults matches a query against the built-in command table.
//
// Pure and deterministic. The query is matched lowercased and trimmed, by
// substring containment. Create actions come before navigation shortcuts, and
// entity keywords yield View-All shortcuts only when no add/create/new intent
// is present.
func CommandResults(raw string) []Result {
	query := strings.ToLower(strings.TrimSpace(raw))
	if query == "" {
		return nil
	}

	results := []Result{}

	creating := strings.Contains(query, "add") ||
		strings.Contains(query, "create") ||
		strings.Contains(query, "new")

	if creating {
		if strings.Contains(query, "employee") {
			results = append(results, Result{
				Id:       "action-add-employee",
				Kind:     KindAction,
				Title:    "Add New Employee",
				Subtitle: "Create a new employee record",
				Icon:     "person_add",
				Path:     "/employees/add",
			})
		}
		if strings.Contains(query, "team") {
			results = append(results, Result{
				Id:       "action-add-team",
				Kind:     KindAction,
				Title:    "Add New Team",
				Subtitle: "Create a new team",
				Icon:     "group_add",
				Path:     "/teams/add",
			})
		}
		if strings.Contains(query, "client") {
			results = append(results, Result{
				Id:       "action-add-client",
				Kind:     KindAction,
				Title:    "Add New Client",
				Subtitle: "Create a new client record",
				Icon:     "business",
				Path:     "/clients/add",
			})
		}
	}

	if strings.Contains(query, "dashboard") || query == "home" {
		results = append(results, Result{
			Id:       "nav-dashboard",
			Kind:     KindAction,
			Title:    "Go to Dashboard",
			Subtitle: "View overview and statistics",
			Icon:     "dashboard",
			Path:     "/dashboard",
		})
	}

	// the View-All shortcuts step back when the query already asks to add.
	hasAdd := strings.Contains(query, "add")
	if strings.Contains(query, "employee") && !hasAdd {
		results = append(results, Result{
			Id:       "nav-employees",
			Kind:     KindAction,
			Title:    "View All Employees",
			Subtitle: "Browse employee list",
			Icon:     "group",
			Path:     "/employees",
		})
	}
	if strings.Contains(query, "team") && !hasAdd {
		results = append(results, Result{
			Id:       "nav-teams",
			Kind:     KindAction,
			Title:    "View All Teams",
			Subtitle: "Browse teams list",
			Icon:     "groups",
			Path:     "/teams",
		})
	}
	if strings.Contains(query, "client") && !hasAdd {
		results = append(results, Result{
			Id:       "nav-clients",
			Kind:     KindAction,
			Title:    "View All Clients",
			Subtitle: "Browse clients list",
			Icon:     "business_center",
			Path:     "/clients",
		})
	}

	return results
}
