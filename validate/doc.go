// Package validate provides ready-made validators for route variables.
//
// A validator accepts or rejects the value captured for one route
// variable; a rejection turns the whole match attempt into a no-match.
// Scalar validators lift pointwise over slurpy captures: every part of
// the list must pass, and the empty list passes vacuously.
//
// Attach a validator to a route variable:
//
//	r := pattern.NewRoute("users", ":id").Validate("id", validate.UUID())
//	r = pattern.NewRoute("articles", ":page").Validate("page", validate.Int())
//
// Available validators:
//
//	uuid     - RFC 4122 UUID (e.g. 550e8400-e29b-41d4-a716-446655440000)
//	int      - unsigned integer (e.g. 42)
//	float    - decimal number (e.g. 3.14, 42, .5)
//	slug     - URL-safe slug (e.g. my-post-title)
//	alpha    - alphabetic characters (e.g. hello)
//	alphanum - alphanumeric characters (e.g. abc123)
//	date     - ISO 8601 date (e.g. 2024-01-15)
//	hex      - hexadecimal string (e.g. deadBEEF)
//	domain   - domain name per RFC 1123 (e.g. example.com, sub.example.co.uk)
//
// Lookup resolves these by name for declarative route files:
//
//	v, ok := validate.Lookup("int")
//
// Enum and Regexp build ad-hoc validators:
//
//	validate.Enum("asc", "desc")
//	v, err := validate.Regexp(`v[0-9]+`)
//
// Regexp expressions are anchored and their compiled form is cached.
package validate
