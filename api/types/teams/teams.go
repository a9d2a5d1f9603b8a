package teams

import (
	"github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/api/types/internal/utils/cmp"
)

// Manager is the team manager contact. Free text, not necessarily a console user.
type Manager struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// ClientRef is the denormalized client reference embedded in a Team.
type ClientRef struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

// Count carries denormalized association counts under the backend's "_count" key.
type Count struct {
	Employees int `json:"employees,omitempty"`
	Teams     int `json:"teams,omitempty"`
}

// Summary is the reduced form of a Team nested in Client details.
type Summary struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
}

func (a Summary) Equal(b Summary) bool {
	return a == b
}

// Detail is a Team record as the backend returns it.
type Detail struct {
	Id        int                 `json:"id"`
	Name      string              `json:"name"`
	Title     string              `json:"title,omitempty"`
	Manager   Manager             `json:"manager,omitempty"`
	ClientId  int                 `json:"clientId,omitempty"`
	Client    *ClientRef          `json:"client,omitempty"`
	Employees []employees.Summary `json:"employees,omitempty"`
	Count     *Count              `json:"_count,omitempty"`
	CreatedAt string              `json:"createdAt,omitempty"`
	UpdatedAt string              `json:"updatedAt,omitempty"`
}

// Members is the roster headcount, preferring the denormalized count.
func (d Detail) Members() int {
	if d.Count != nil {
		return d.Count.Employees
	}
	return len(d.Employees)
}

func (a Detail) Equal(b Detail) bool {
	return a.Id == b.Id &&
		a.Name == b.Name &&
		a.Title == b.Title &&
		a.Manager == b.Manager &&
		a.ClientId == b.ClientId &&
		cmp.PEqEq(a.Client, b.Client) &&
		cmp.SliceEqWith(a.Employees, b.Employees) &&
		cmp.PEqEq(a.Count, b.Count)
}

// Spec is the payload for creating or updating a Team.
type Spec struct {
	Name      string  `json:"name"`
	Title     string  `json:"title,omitempty"`
	Manager   Manager `json:"manager,omitempty"`
	ClientId  int     `json:"clientId,omitempty"`
	Employees []int   `json:"employees,omitempty"`
}
