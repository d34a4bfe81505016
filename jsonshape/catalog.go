// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jsonshape

import (
	"errors"
	"fmt"

	"bitbucket.org/creachadair/stringset"

	"code.hybscloud.com/shape"
)

var (
	// ErrUnknownType is returned by Lookup for a name no type carries.
	ErrUnknownType = errors.New("jsonshape: unknown type")
	// ErrDuplicateType is returned by Register when a name is taken.
	ErrDuplicateType = errors.New("jsonshape: duplicate type name")
)

// A Catalog indexes types by every one of their names.
// A Catalog is not safe for concurrent registration.
type Catalog struct {
	byName map[string]*shape.Type[any]
	names  stringset.Set
	types  []*shape.Type[any]
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byName: make(map[string]*shape.Type[any]),
		names:  stringset.New(),
	}
}

// Standard returns a catalog holding the types of this package and a few
// common containers.
func Standard() *Catalog {
	c := NewCatalog()
	err := c.Register(
		Value, Null, Bool, Number, Integer, String, Scalar, Array, Object,
		ArrayOf(Number), ArrayOf(Integer), ArrayOf(String), ArrayOf(Scalar),
		ObjectOf(String), ObjectOf(Scalar),
	)
	if err != nil {
		panic("jsonshape: " + err.Error())
	}
	return c
}

// Register adds types to c under all of their names. Either every type is
// added or, when some name is already taken, none is.
func (c *Catalog) Register(types ...*shape.Type[any]) error {
	pending := stringset.New()
	for _, t := range types {
		for _, name := range t.Names() {
			if c.names.Contains(name) || pending.Contains(name) {
				return fmt.Errorf("%w: %q", ErrDuplicateType, name)
			}
			pending.Add(name)
		}
	}
	for _, t := range types {
		for _, name := range t.Names() {
			c.byName[name] = t
		}
		c.types = append(c.types, t)
	}
	c.names.Add(pending.Elements()...)
	return nil
}

// Lookup returns the type registered under name.
func (c *Catalog) Lookup(name string) (*shape.Type[any], error) {
	t, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return t, nil
}

// Names returns every registered name in lexicographic order.
func (c *Catalog) Names() []string { return c.names.Elements() }

// Types returns the registered types in registration order.
func (c *Catalog) Types() []*shape.Type[any] {
	return append([]*shape.Type[any](nil), c.types...)
}
