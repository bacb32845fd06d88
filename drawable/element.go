package drawable

import (
	"github.com/benoitkugler/vecdraw/pathdata"
)

// Element is one node of the drawable tree. The variant set is
// closed: Group, Circle and PathShape. A tree is built once from
// static description data and is immutable afterwards; rendering it
// any number of times allocates no shared mutable state.
type Element interface {
	// ownParams returns the parameters declared on the element
	// itself, before inheritance.
	ownParams() Params
}

// Group is an inner node: it owns an ordered list of children and
// issues no drawing calls itself, only contributing its parameters
// to the inheritance chain.
type Group struct {
	Children []Element
	Params   Params
}

// Circle is a leaf drawn as a closed oval path.
type Circle struct {
	Center pathdata.Point
	Radius float64
	Params Params
}

// PathShape is a leaf replaying a compiled path command sequence.
type PathShape struct {
	commands []pathdata.Command
	Params   Params
}

// NewPathShape compiles the path data string and binds it to the
// given drawing parameters. The string is parsed here, once; a
// failed parse aborts construction and no shape is returned.
func NewPathShape(data string, params Params) (*PathShape, error) {
	cmds, err := pathdata.Parse(data)
	if err != nil {
		return nil, err
	}
	return &PathShape{commands: cmds, Params: params}, nil
}

// Commands exposes the compiled command sequence.
func (s *PathShape) Commands() []pathdata.Command { return s.commands }

func (g *Group) ownParams() Params     { return g.Params }
func (c *Circle) ownParams() Params    { return c.Params }
func (s *PathShape) ownParams() Params { return s.Params }
