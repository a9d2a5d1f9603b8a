package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apiemployees "github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/api/types/envelope"
	kprof "github.com/arithahq/aritha/cmd/aritha/config/profiles"
	krst "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/pkg/utils/cmp"
	"github.com/arithahq/aritha/pkg/utils/try"
)

func TestFindEmployees(t *testing.T) {
	t.Run("it builds a query string out of non-zero filters only", func(t *testing.T) {
		var gotQuery map[string][]string
		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Error("unexpected http method:", r.Method)
			}
			if r.URL.Path != "/api/employees" {
				t.Error("unexpected path:", r.URL.Path)
			}
			gotQuery = r.URL.Query()

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    []apiemployees.Detail{},
				"pagination": envelope.Pagination{
					Total: 0, Page: 1, PageSize: 5, TotalPages: 0, HasMore: false,
				},
			})
		})
		ts := httptest.NewServer(h)
		defer ts.Close()

		prof := kprof.Profile{ApiRoot: ts.URL + "/api"}
		testee := try.To(krst.NewClient(&prof)).OrFatal(t)

		_, _, err := testee.FindEmployees(context.Background(), krst.EmployeeQuery{
			Search: "john", Status: "active", Page: 2, PageSize: 5,
		})
		if err != nil {
			t.Fatal(err)
		}

		for name, want := range map[string]string{
			"search": "john", "status": "active", "page": "2", "pageSize": "5",
		} {
			if got := gotQuery[name]; len(got) != 1 || got[0] != want {
				t.Errorf("query %s: got %v, want %s", name, got, want)
			}
		}
		for _, absent := range []string{"gender", "title", "teamId", "clientId", "minExp", "maxExp", "sortBy", "sortOrder"} {
			if _, ok := gotQuery[absent]; ok {
				t.Errorf("query %s should not be sent", absent)
			}
		}
	})

	t.Run("it unwraps the envelope and returns pagination", func(t *testing.T) {
		want := []apiemployees.Detail{
			{Id: 1, FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Active: true},
			{Id: 2, FirstName: "Ben", LastName: "Iyer", Email: "ben@example.com", Active: true},
		}
		wantPage := envelope.Pagination{
			Total: 12, Page: 1, PageSize: 2, TotalPages: 6, HasMore: true,
		}

		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"success": true, "data": want, "pagination": wantPage,
			})
		})
		ts := httptest.NewServer(h)
		defer ts.Close()

		prof := kprof.Profile{ApiRoot: ts.URL + "/api"}
		testee := try.To(krst.NewClient(&prof)).OrFatal(t)

		got, page, err := testee.FindEmployees(context.Background(), krst.EmployeeQuery{})
		if err != nil {
			t.Fatal(err)
		}
		if !cmp.SliceEqWith(got, want, apiemployees.Detail.Equal) {
			t.Errorf("unmatch employees:\n got: %+v\nwant: %+v", got, want)
		}
		if page == nil || !page.Equal(wantPage) {
			t.Errorf("unmatch pagination: got %+v, want %+v", page, wantPage)
		}
	})

	t.Run("it accepts a bare array response without envelope", func(t *testing.T) {
		want := []apiemployees.Detail{
			{Id: 3, FirstName: "Cara", LastName: "Doyle", Email: "cara@example.com", Active: true},
		}

		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(want)
		})
		ts := httptest.NewServer(h)
		defer ts.Close()

		prof := kprof.Profile{ApiRoot: ts.URL + "/api"}
		testee := try.To(krst.NewClient(&prof)).OrFatal(t)

		got, page, err := testee.FindEmployees(context.Background(), krst.EmployeeQuery{})
		if err != nil {
			t.Fatal(err)
		}
		if !cmp.SliceEqWith(got, want, apiemployees.Detail.Equal) {
			t.Errorf("unmatch employees:\n got: %+v\nwant: %+v", got, want)
		}
		if page != nil {
			t.Errorf("no pagination expected for a bare array, got %+v", page)
		}
	})

	t.Run("it sends the bearer token when the client carries one", func(t *testing.T) {
		gotAuth := ""
		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]apiemployees.Detail{})
		})
		ts := httptest.NewServer(h)
		defer ts.Close()

		prof := kprof.Profile{ApiRoot: ts.URL + "/api"}
		testee := try.To(krst.NewClient(&prof, krst.WithToken("tok-123"))).OrFatal(t)

		if _, _, err := testee.FindEmployees(context.Background(), krst.EmployeeQuery{}); err != nil {
			t.Fatal(err)
		}
		if gotAuth != "Bearer tok-123" {
			t.Errorf("unmatch Authorization header: got %q", gotAuth)
		}
	})
}

func TestEmployeeErrorTaxonomy(t *testing.T) {
	type When struct {
		status int
		body   map[string]any
	}
	type Then struct {
		err error
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(when.status)
				json.NewEncoder(w).Encode(when.body)
			})
			ts := httptest.NewServer(h)
			defer ts.Close()

			prof := kprof.Profile{ApiRoot: ts.URL + "/api"}
			testee := try.To(krst.NewClient(&prof)).OrFatal(t)

			_, err := testee.GetEmployee(context.Background(), 42)
			if !errors.Is(err, then.err) {
				t.Errorf("unmatch error: got %v, want %v", err, then.err)
			}
		}
	}

	t.Run("400 is a validation error", theory(
		When{
			status: http.StatusBadRequest,
			body:   map[string]any{"success": false, "errors": []string{"email is required"}},
		},
		Then{err: krst.ErrValidation},
	))
	t.Run("401 is unauthorized", theory(
		When{
			status: http.StatusUnauthorized,
			body:   map[string]any{"success": false, "message": "token expired"},
		},
		Then{err: krst.ErrUnauthorized},
	))
	t.Run("404 is not found", theory(
		When{
			status: http.StatusNotFound,
			body:   map[string]any{"success": false, "message": "employee not found"},
		},
		Then{err: krst.ErrNotFound},
	))
	t.Run("409 is a conflict", theory(
		When{
			status: http.StatusConflict,
			body:   map[string]any{"success": false, "message": "email already in use"},
		},
		Then{err: krst.ErrConflict},
	))
	t.Run("500 is a server error", theory(
		When{
			status: http.StatusInternalServerError,
			body:   map[string]any{"success": false, "message": "boom"},
		},
		Then{err: krst.ErrServer},
	))
}

func TestToggleEmployeeStatus(t *testing.T) {
	t.Run("it PATCHes the toggle endpoint once", func(t *testing.T) {
		calls := 0
		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls += 1
			if r.Method != http.MethodPatch {
				t.Error("unexpected http method:", r.Method)
			}
			if r.URL.Path != "/api/employees/7/toggle-status" {
				t.Error("unexpected path:", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    apiemployees.Detail{Id: 7, FirstName: "Dee", Active: false},
			})
		})
		ts := httptest.NewServer(h)
		defer ts.Close()

		prof := kprof.Profile{ApiRoot: ts.URL + "/api"}
		testee := try.To(krst.NewClient(&prof)).OrFatal(t)

		got := try.To(testee.ToggleEmployeeStatus(context.Background(), 7)).OrFatal(t)
		if got.Active {
			t.Error("employee should have been deactivated")
		}
		if calls != 1 {
			t.Errorf("toggle should be requested exactly once, got %d", calls)
		}
	})
}

func TestDeleteEmployee(t *testing.T) {
	type When struct {
		hard bool
	}
	type Then struct {
		query string
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			gotQuery := ""
			h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete {
					t.Error("unexpected http method:", r.Method)
				}
				gotQuery = r.URL.RawQuery
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]any{"success": true})
			})
			ts := httptest.NewServer(h)
			defer ts.Close()

			prof := kprof.Profile{ApiRoot: ts.URL + "/api"}
			testee := try.To(krst.NewClient(&prof)).OrFatal(t)

			if err := testee.DeleteEmployee(context.Background(), 9, when.hard); err != nil {
				t.Fatal(err)
			}
			if gotQuery != then.query {
				t.Errorf("unmatch query: got %q, want %q", gotQuery, then.query)
			}
		}
	}

	t.Run("soft delete sends no query", theory(When{hard: false}, Then{query: ""}))
	t.Run("hard delete asks for permanent removal", theory(When{hard: true}, Then{query: "hard=true"}))
}
