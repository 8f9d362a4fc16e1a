// Package routefile loads declarative route metadata from YAML.
//
// A route file declares the metadata the pattern package consumes: the
// segment specifiers, default variable values and validator references.
// It does not register or dispatch anything; the loaded routes are handed
// to whatever routing layer the caller runs.
//
//	routes:
//	  - name: archive
//	    path: blog/:year/?:month
//	    defaults:
//	      month: "01"
//	    validations:
//	      year: int
//	      month: int
//
//	  - name: attachments
//	    path: files/*:path
//	    defaults:
//	      tags: [files, public]
//
// Defaults may be scalars or sequences, matching the scalar-or-list shape
// of captured values. Validator names resolve through the validate
// package. Loading is fail-fast: a single malformed entry fails the whole
// document.
//
//	defs, err := routefile.Load(f)
//	if err != nil {
//	    return err
//	}
//	for _, def := range defs {
//	    m, ok := def.Route().Match(parts)
//	    ...
//	}
package routefile
