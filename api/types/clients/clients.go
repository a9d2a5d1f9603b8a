package clients

import (
	"github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/api/types/internal/utils/cmp"
	"github.com/arithahq/aritha/api/types/teams"
)

// Detail is a Client record as the backend returns it.
//
// The two point-of-contact pairs are tracked separately: the internal POC is
// on the company side, the external POC on the client side of the relationship.
type Detail struct {
	Id               int                 `json:"id"`
	Name             string              `json:"name"`
	Address          string              `json:"address,omitempty"`
	Industry         string              `json:"industry,omitempty"`
	PocInternalName  string              `json:"pocInternalName,omitempty"`
	PocInternalEmail string              `json:"pocInternalEmail,omitempty"`
	PocExternalName  string              `json:"pocExternalName,omitempty"`
	PocExternalEmail string              `json:"pocExternalEmail,omitempty"`
	Teams            []teams.Summary     `json:"teams,omitempty"`
	Employees        []employees.Summary `json:"employees,omitempty"`
	Count            *teams.Count        `json:"_count,omitempty"`
	CreatedAt        string              `json:"createdAt,omitempty"`
	UpdatedAt        string              `json:"updatedAt,omitempty"`
}

func (a Detail) Equal(b Detail) bool {
	return a.Id == b.Id &&
		a.Name == b.Name &&
		a.Address == b.Address &&
		a.Industry == b.Industry &&
		a.PocInternalName == b.PocInternalName &&
		a.PocInternalEmail == b.PocInternalEmail &&
		a.PocExternalName == b.PocExternalName &&
		a.PocExternalEmail == b.PocExternalEmail &&
		cmp.SliceEqWith(a.Teams, b.Teams) &&
		cmp.SliceEqWith(a.Employees, b.Employees) &&
		cmp.PEqEq(a.Count, b.Count)
}

// Spec is the payload for creating or updating a Client.
type Spec struct {
	Name             string `json:"name"`
	Address          string `json:"address,omitempty"`
	Industry         string `json:"industry,omitempty"`
	PocInternalName  string `json:"pocInternalName,omitempty"`
	PocInternalEmail string `json:"pocInternalEmail,omitempty"`
	PocExternalName  string `json:"pocExternalName,omitempty"`
	PocExternalEmail string `json:"pocExternalEmail,omitempty"`
}
