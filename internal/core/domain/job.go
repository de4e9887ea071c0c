// Package domain contains the core job and cache descriptor types.
package domain

import "maps"

// Job is a unit of work in the build graph.
// Only the label, the cache attributes and the cache descriptor are interpreted;
// everything else is carried through untouched in Extra.
type Job struct {
	Label      string           `yaml:"label"`
	Attributes Attributes       `yaml:"attributes"`
	Cache      *CacheDescriptor `yaml:"cache,omitempty"`
	Extra      map[string]any   `yaml:",inline"`
}

// Attributes holds the job attributes.
type Attributes struct {
	Cache *CacheAttributes `yaml:"cache,omitempty"`
	Extra map[string]any   `yaml:",inline"`
}

// CacheAttributes describes what a job's cache key is built from.
type CacheAttributes struct {
	Type       string   `yaml:"type"`
	Resources  []string `yaml:"resources,omitempty"`
	Parameters []string `yaml:"parameters,omitempty"`
}

// CacheDescriptor is the normalized cache record attached to a job.
type CacheDescriptor struct {
	Type       string   `yaml:"type"        json:"type"`
	Name       string   `yaml:"name"        json:"name"`
	DigestData []string `yaml:"digest-data" json:"digest-data"`
}

// Clone returns a deep copy of the job.
// Extra values are copied shallowly; they are treated as opaque and never written to.
func (j Job) Clone() Job {
	out := Job{
		Label:      j.Label,
		Attributes: j.Attributes.clone(),
		Extra:      maps.Clone(j.Extra),
	}
	if j.Cache != nil {
		c := j.Cache.Clone()
		out.Cache = &c
	}
	return out
}

func (a Attributes) clone() Attributes {
	out := Attributes{Extra: maps.Clone(a.Extra)}
	if a.Cache != nil {
		out.Cache = &CacheAttributes{
			Type:       a.Cache.Type,
			Resources:  cloneStrings(a.Cache.Resources),
			Parameters: cloneStrings(a.Cache.Parameters),
		}
	}
	return out
}

// Clone returns a deep copy of the descriptor.
// The digest data of the copy is never nil.
func (d CacheDescriptor) Clone() CacheDescriptor {
	data := make([]string, len(d.DigestData))
	copy(data, d.DigestData)
	return CacheDescriptor{
		Type:       d.Type,
		Name:       d.Name,
		DigestData: data,
	}
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
