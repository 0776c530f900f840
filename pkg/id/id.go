package id

import "github.com/oklog/ulid/v2"

// New returns a ULID string for tagging analysis runs.
//
// ULIDs sort lexicographically by generation time, so run rows in the
// journal line up chronologically under their primary key.
func New() string {
	return ulid.Make().String()
}
