package model

import (
	"database/sql/driver"
	"fmt"
	"hash/fnv"
)

// Ref is a denormalized back-reference to another entity, resolved at read
// time into the owning record's number and display name.
type Ref struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Page is one page of a listing plus a lookahead flag telling whether at
// least one further item exists beyond it.
type Page[T any] struct {
	List    []T  `json:"list"`
	HasMore bool `json:"hasMore"`
}

// DigestPassword reduces a password to an equality-comparable digest.
// This is not a cryptographic hash; credentials are only ever compared for
// equality against the stored digest.
func DigestPassword(password string) string {
	h := fnv.New32a()
	h.Write([]byte(password))
	return fmt.Sprintf("%08x", h.Sum32())
}

// stringValuer is implemented by the custom column types in this package.
var _ = []driver.Valuer{Date{}, Duration(0)}
