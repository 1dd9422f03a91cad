package pbx

import (
	"sort"

	"github.com/pkg/errors"
	"howett.net/plist"
)

// rawObject is a single entry from a .pbxproj document's flat "objects"
// dictionary, keyed by its 24-character object ID in a real Xcode project.
// Fields are left as the decoder's native types (map[string]interface{},
// []interface{}, string) since the set of fields varies by isa.
type rawObject map[string]interface{}

func (o rawObject) isa() string {
	isa, _ := o["isa"].(string)
	return isa
}

func (o rawObject) stringField(key string) string {
	value, _ := o[key].(string)
	return value
}

func (o rawObject) stringSliceField(key string) []string {
	raw, ok := o[key].([]interface{})
	if !ok {
		return nil
	}
	result := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// document mirrors the top level of a .pbxproj plist: a dictionary of
// objects keyed by ID plus a pointer to the project's root object.
type document struct {
	Objects      map[string]rawObject `plist:"objects"`
	RootObjectID string               `plist:"rootObject"`
}

// Project is a decoded .pbxproj document with typed accessors layered over
// its raw object graph.
type Project struct {
	objects      map[string]rawObject
	rootObjectID string
}

// Decode parses a serialized .pbxproj property list (in either XML or binary
// plist format; howett.net/plist detects the format automatically) into a
// Project.
func Decode(data []byte) (*Project, error) {
	var doc document
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "unable to decode property list")
	}
	return &Project{
		objects:      doc.Objects,
		rootObjectID: doc.RootObjectID,
	}, nil
}

// object looks up a raw object by ID, failing if it is absent or does not
// carry the expected isa value.
func (p *Project) object(id, isa string) (rawObject, error) {
	object, ok := p.objects[id]
	if !ok {
		return nil, errors.Wrapf(ErrObjectNotFound, "object %q", id)
	}
	if isa != "" && object.isa() != isa {
		return nil, errors.Wrapf(ErrWrongObjectType, "object %q has isa %q, expected %q", id, object.isa(), isa)
	}
	return object, nil
}

// Target returns the native target with the specified name.
func (p *Project) Target(name string) (*Target, error) {
	for id, object := range p.objects {
		if object.isa() != "PBXNativeTarget" {
			continue
		}
		if object.stringField("name") != name {
			continue
		}
		return &Target{
			project: p,
			id:      id,
			name:    name,
			phaseIDs: object.stringSliceField("buildPhases"),
		}, nil
	}
	return nil, errors.Wrapf(ErrTargetNotFound, "target %q", name)
}

// TargetNames returns the names of every native target in the project,
// sorted lexically for deterministic output.
func (p *Project) TargetNames() []string {
	names := make([]string, 0)
	for _, object := range p.objects {
		if object.isa() != "PBXNativeTarget" {
			continue
		}
		names = append(names, object.stringField("name"))
	}
	sort.Strings(names)
	return names
}

// Target is a PBXNativeTarget: a named, ordered list of build phases.
type Target struct {
	project  *Project
	id       string
	name     string
	phaseIDs []string
}

// ID returns the target's object ID.
func (t *Target) ID() string { return t.id }

// Name returns the target's name.
func (t *Target) Name() string { return t.name }

// BuildPhases resolves and returns the target's build phases in the order
// they are declared in the project.
func (t *Target) BuildPhases() ([]BuildPhase, error) {
	phases := make([]BuildPhase, 0, len(t.phaseIDs))
	for _, id := range t.phaseIDs {
		object, ok := t.project.objects[id]
		if !ok {
			return nil, errors.Wrapf(ErrObjectNotFound, "build phase %q", id)
		}
		phase, err := newBuildPhase(id, object)
		if err != nil {
			return nil, errors.Wrapf(err, "build phase %q", id)
		}
		phases = append(phases, phase)
	}
	return phases, nil
}
