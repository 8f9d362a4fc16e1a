package routefile

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pathkit/slurp/pattern"
	"github.com/pathkit/slurp/validate"
)

// Definition is one loaded route declaration.
type Definition struct {
	// Name identifies the route; optional.
	Name string

	// Path is the declared route path, "/"-separated segment specifiers.
	Path string

	route *pattern.Route
}

// Route returns the ready-to-match route built from the declaration.
func (d *Definition) Route() *pattern.Route {
	return d.route
}

// file mirrors the YAML document layout.
type file struct {
	Routes []entry `yaml:"routes"`
}

type entry struct {
	Name        string            `yaml:"name"`
	Path        string            `yaml:"path"`
	Defaults    map[string]value  `yaml:"defaults"`
	Validations map[string]string `yaml:"validations"`
}

// value decodes a default as either a YAML scalar or a sequence,
// mirroring the scalar-or-list shape of pattern.Value.
type value struct {
	v pattern.Value
}

// UnmarshalYAML decodes the default from either a YAML scalar or sequence.
func (d *value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		d.v = pattern.StringValue(node.Value)
		return nil
	case yaml.SequenceNode:
		var parts []string
		if err := node.Decode(&parts); err != nil {
			return err
		}
		d.v = pattern.ListValue(parts...)
		return nil
	default:
		return fmt.Errorf("default must be a scalar or a sequence, got YAML node kind %d", node.Kind)
	}
}

// Load reads a YAML route declaration document and returns the route
// definitions in document order. See Parse for the document format.
func Load(r io.Reader) ([]*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("routefile: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML route declaration document:
//
//	routes:
//	  - name: archive
//	    path: blog/:year/*:rest
//	    defaults:
//	      year: "2024"
//	      tags: [go, http]
//	    validations:
//	      year: int
//
// Validator names resolve through the validate package. Any malformed
// entry fails the whole document: unknown validator names, invalid
// patterns and non scalar-or-sequence defaults are all errors.
func Parse(data []byte) ([]*Definition, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("routefile: %w", err)
	}

	defs := make([]*Definition, 0, len(f.Routes))
	for i, e := range f.Routes {
		if e.Path == "" {
			return nil, fmt.Errorf("routefile: route %d has no path", i)
		}

		route := pattern.NewRoute(splitPath(e.Path)...)

		if len(e.Defaults) > 0 {
			defaults := make(map[string]pattern.Value, len(e.Defaults))
			for name, v := range e.Defaults {
				defaults[name] = v.v
			}
			route.Defaults(defaults)
		}

		for name, ref := range e.Validations {
			v, ok := validate.Lookup(ref)
			if !ok {
				return nil, fmt.Errorf("routefile: route %q: unknown validator %q for variable %q", e.Path, ref, name)
			}
			route.Validate(name, v)
		}

		if err := route.GetError(); err != nil {
			return nil, fmt.Errorf("routefile: route %q: %w", e.Path, err)
		}

		defs = append(defs, &Definition{Name: e.Name, Path: e.Path, route: route})
	}

	return defs, nil
}

// splitPath splits a declared path on "/" into segment specifiers,
// ignoring leading and trailing slashes.
func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
