// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data of a frame analysis: nodes, elements, materials,
// cross sections, loads and analysis settings
package inp

import (
	"encoding/json"
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// Number of degrees of freedom per node: ux, uy, uz, rx, ry, rz
const NdofNode = 6

// DofKeys holds the keys of the degrees of freedom of a node (in equation order)
var DofKeys = []string{"ux", "uy", "uz", "rx", "ry", "rz"}

// ErrMissingRef is returned when an element or a load refers to a nonexistent entity
var ErrMissingRef = chk.Err("missing reference")

// Fixity holds the fixity flags of the six degrees of freedom of a node
type Fixity struct {
	Dx bool `json:"dx"` // translation along x is fixed
	Dy bool `json:"dy"` // translation along y is fixed
	Dz bool `json:"dz"` // translation along z is fixed
	Rx bool `json:"rx"` // rotation about x is fixed
	Ry bool `json:"ry"` // rotation about y is fixed
	Rz bool `json:"rz"` // rotation about z is fixed
}

// FixAll returns a fully clamped fixity
func FixAll() Fixity { return Fixity{true, true, true, true, true, true} }

// Flags returns the flags in equation order
func (o Fixity) Flags() [NdofNode]bool {
	return [NdofNode]bool{o.Dx, o.Dy, o.Dz, o.Rx, o.Ry, o.Rz}
}

// Any returns true if any degree of freedom is fixed
func (o Fixity) Any() bool {
	return o.Dx || o.Dy || o.Dz || o.Rx || o.Ry || o.Rz
}

// Node holds a point of the frame
type Node struct {
	Id       int    `json:"id"`       // unique identifier
	Position Vec3   `json:"position"` // coordinates
	FixedDOF Fixity `json:"fixedDOF"` // fixity flags
}

// IsFixed returns true iff any degree of freedom is fixed
func (o *Node) IsFixed() bool { return o.FixedDOF.Any() }

// MarshalJSON writes the derived isFixed flag together with the node data
func (o Node) MarshalJSON() ([]byte, error) {
	type plain Node
	return json.Marshal(struct {
		plain
		IsFixed bool `json:"isFixed"`
	}{plain(o), o.FixedDOF.Any()})
}

// Axes holds the unit vectors of the local system of an element
type Axes struct {
	X Vec3 `json:"x"` // along the element (node 1 → node 2)
	Y Vec3 `json:"y"`
	Z Vec3 `json:"z"`
}

// Element holds the connectivity and properties references of a beam element
type Element struct {

	// input
	Id         int    `json:"id"`             // unique identifier
	Type       string `json:"type,omitempty"` // element type; empty means "beam"
	NodeIds    [2]int `json:"nodeIds"`        // start and end nodes
	MaterialId int    `json:"materialId"`     // material identifier
	SectionId  int    `json:"sectionId"`      // cross section identifier

	// derived (computed once per solution)
	Length    float64 `json:"length,omitempty"`    // length of element
	LocalAxis *Axes   `json:"localAxis,omitempty"` // local system
}

// Kind returns the element type name used by the allocators
func (o *Element) Kind() string {
	if o.Type == "" {
		return "beam"
	}
	return o.Type
}

// Load holds concentrated forces and moments applied to a node
type Load struct {
	Id     int  `json:"id"`     // unique identifier
	NodeId int  `json:"nodeId"` // loaded node
	Force  Vec3 `json:"force"`  // force [N]
	Moment Vec3 `json:"moment"` // moment [N·m]
}

// Model holds all entities of a frame. Entities refer to each other by id
type Model struct {
	Nodes     []*Node     `json:"nodes"`
	Elements  []*Element  `json:"elements"`
	Materials []*Material `json:"materials"`
	Sections  []*Section  `json:"sections"`
	Loads     []*Load     `json:"loads"`
}

// Clone returns a deep copy of the model
func (o *Model) Clone() *Model {
	m := new(Model)
	for _, n := range o.Nodes {
		c := *n
		m.Nodes = append(m.Nodes, &c)
	}
	for _, e := range o.Elements {
		c := *e
		if e.LocalAxis != nil {
			a := *e.LocalAxis
			c.LocalAxis = &a
		}
		m.Elements = append(m.Elements, &c)
	}
	for _, mat := range o.Materials {
		c := *mat
		m.Materials = append(m.Materials, &c)
	}
	for _, sec := range o.Sections {
		c := *sec
		m.Sections = append(m.Sections, &c)
	}
	for _, l := range o.Loads {
		c := *l
		m.Loads = append(m.Loads, &c)
	}
	return m
}

// ScaleLoads multiplies all forces and moments by k
func (o *Model) ScaleLoads(k float64) {
	for _, l := range o.Loads {
		l.Force = l.Force.Scale(k)
		l.Moment = l.Moment.Scale(k)
	}
}

// Index holds maps from ids to entities; it is built once per analysis
type Index struct {
	Vid2idx map[int]int       // node id => position in Model.Nodes
	Mats    map[int]*Material // material id => material
	Secs    map[int]*Section  // section id => section
	model   *Model
}

// NewIndex builds the id maps of a model. Repeated ids are reported as errors
func NewIndex(m *Model) (o *Index, err error) {
	o = &Index{
		Vid2idx: make(map[int]int, len(m.Nodes)),
		Mats:    make(map[int]*Material, len(m.Materials)),
		Secs:    make(map[int]*Section, len(m.Sections)),
		model:   m,
	}
	for i, n := range m.Nodes {
		if _, ok := o.Vid2idx[n.Id]; ok {
			return nil, chk.Err("node id %d is repeated", n.Id)
		}
		o.Vid2idx[n.Id] = i
	}
	for _, mat := range m.Materials {
		if _, ok := o.Mats[mat.Id]; ok {
			return nil, chk.Err("material id %d is repeated", mat.Id)
		}
		o.Mats[mat.Id] = mat
	}
	for _, sec := range m.Sections {
		if _, ok := o.Secs[sec.Id]; ok {
			return nil, chk.Err("section id %d is repeated", sec.Id)
		}
		o.Secs[sec.Id] = sec
	}
	return
}

// NodeIdx returns the position of a node in Model.Nodes
func (o *Index) NodeIdx(id int) (int, error) {
	idx, ok := o.Vid2idx[id]
	if !ok {
		return -1, fmt.Errorf("%w: node %d", ErrMissingRef, id)
	}
	return idx, nil
}

// Node returns a node by id
func (o *Index) Node(id int) (*Node, error) {
	idx, err := o.NodeIdx(id)
	if err != nil {
		return nil, err
	}
	return o.model.Nodes[idx], nil
}

// Material returns a material by id
func (o *Index) Material(id int) (*Material, error) {
	if mat, ok := o.Mats[id]; ok {
		return mat, nil
	}
	return nil, fmt.Errorf("%w: material %d", ErrMissingRef, id)
}

// Section returns a cross section by id
func (o *Index) Section(id int) (*Section, error) {
	if sec, ok := o.Secs[id]; ok {
		return sec, nil
	}
	return nil, fmt.Errorf("%w: section %d", ErrMissingRef, id)
}

// ElementData returns the nodes, material and section of an element
func (o *Index) ElementData(e *Element) (n1, n2 *Node, mat *Material, sec *Section, err error) {
	if n1, err = o.Node(e.NodeIds[0]); err != nil {
		err = fmt.Errorf("element %d: %w", e.Id, err)
		return
	}
	if n2, err = o.Node(e.NodeIds[1]); err != nil {
		err = fmt.Errorf("element %d: %w", e.Id, err)
		return
	}
	if mat, err = o.Material(e.MaterialId); err != nil {
		err = fmt.Errorf("element %d: %w", e.Id, err)
		return
	}
	if sec, err = o.Section(e.SectionId); err != nil {
		err = fmt.Errorf("element %d: %w", e.Id, err)
	}
	return
}
