package alm

import (
	"encoding/json"
	"fmt"

	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/models"
	srvErrors "github.com/rlc-community-providers/rlc-hpalm-provider/pkg/errors"
)

// The defects endpoints answer with a field-array shape: every entity
// carries a Fields array of {Name, values:[{value},...]} tuples plus a
// sibling Type key. The projects endpoint nests a Project array under a
// Projects wrapper.

type fieldValue struct {
	Value any `json:"value"`
}

type entityField struct {
	Name   string       `json:"Name"`
	Values []fieldValue `json:"values"`
}

// first returns the first value rendered as a string. A missing values
// array or a missing value key yields the empty string, never an absent
// attribute.
func (f entityField) first() string {
	if len(f.Values) == 0 || f.Values[0].Value == nil {
		return ""
	}
	if s, ok := f.Values[0].Value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", f.Values[0].Value)
}

type entity struct {
	Fields []entityField `json:"Fields"`
	Type   string        `json:"Type"`
}

func (e entity) toDefect() models.Defect {
	var d models.Defect
	for _, f := range e.Fields {
		switch f.Name {
		case "id":
			d.ID = f.first()
		case "name":
			d.Name = f.first()
		case "status":
			d.Status = f.first()
		case "priority":
			d.Priority = f.first()
		case "severity":
			d.Severity = f.first()
		case "description":
			d.Description = f.first()
		case "project":
			d.Project = f.first()
		case "detected-by":
			d.Creator = f.first()
		case "creation-time":
			d.DateCreated = f.first()
		case "owner":
			d.Owner = f.first()
		case "last-modified":
			d.LastUpdated = f.first()
		case "target-rcyc":
			d.TargetRelease = f.first()
		default:
			// unknown field names are ignored
		}
	}
	return d
}

type entitiesEnvelope struct {
	Entities []entity `json:"entities"`
}

type projectsEnvelope struct {
	Projects struct {
		Project []struct {
			Name string `json:"Name"`
		} `json:"Project"`
	} `json:"Projects"`
}

// ParseProjects decodes the Projects->Project[] envelope returned by the
// projects listing.
func ParseProjects(data []byte) ([]models.Project, error) {
	var envelope projectsEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, srvErrors.NewParseError(err)
	}
	projects := make([]models.Project, 0, len(envelope.Projects.Project))
	for _, p := range envelope.Projects.Project {
		var project models.Project
		project.Name = p.Name
		projects = append(projects, project)
	}
	return projects, nil
}

// ParseDefects decodes the entities[] envelope returned by the defect
// listing. The record-level Type key overwrites the defect type after field
// mapping.
func ParseDefects(data []byte) ([]models.Defect, error) {
	var envelope entitiesEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, srvErrors.NewParseError(err)
	}
	defects := make([]models.Defect, 0, len(envelope.Entities))
	for _, e := range envelope.Entities {
		d := e.toDefect()
		d.Type = e.Type
		defects = append(defects, d)
	}
	return defects, nil
}

// ParseDefect decodes a single defect record: the same field-array shape
// without the entities wrapper and without the Type override.
func ParseDefect(data []byte) (*models.Defect, error) {
	var e entity
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, srvErrors.NewParseError(err)
	}
	d := e.toDefect()
	return &d, nil
}
