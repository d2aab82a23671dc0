// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// Builder assembles a model assigning sequential ids starting at 1
type Builder struct {
	model *Model
	nextN int // next node id
	nextE int // next element id
	nextM int // next material id
	nextS int // next section id
	nextL int // next load id
}

// NewBuilder returns a new Builder with an empty model
func NewBuilder() (o *Builder) {
	o = new(Builder)
	o.Clear()
	return
}

// Clear discards the model and resets the id counters
func (o *Builder) Clear() {
	o.model = new(Model)
	o.nextN, o.nextE, o.nextM, o.nextS, o.nextL = 1, 1, 1, 1, 1
}

// Model returns the model being built
func (o *Builder) Model() *Model { return o.model }

// AddNode adds a node; fixed clamps all six degrees of freedom
func (o *Builder) AddNode(x, y, z float64, fixed bool) *Node {
	n := &Node{Id: o.nextN, Position: Vec3{x, y, z}}
	if fixed {
		n.FixedDOF = FixAll()
	}
	o.nextN++
	o.model.Nodes = append(o.model.Nodes, n)
	return n
}

// AddMaterial adds a material
func (o *Builder) AddMaterial(name string, E, nu, rho, fy float64) *Material {
	m := &Material{Id: o.nextM, Name: name, E: E, Nu: nu, Rho: rho, Fy: fy}
	o.nextM++
	o.model.Materials = append(o.model.Materials, m)
	return m
}

// AddSection adds a cross section
func (o *Builder) AddSection(name string, A, Iy, Iz, J float64) *Section {
	s := &Section{Id: o.nextS, Name: name, A: A, Iy: Iy, Iz: Iz, J: J}
	o.nextS++
	o.model.Sections = append(o.model.Sections, s)
	return s
}

// AddSectionData adds a copy of a fully specified section, replacing its id
func (o *Builder) AddSectionData(sec Section) *Section {
	s := sec
	s.Id = o.nextS
	o.nextS++
	o.model.Sections = append(o.model.Sections, &s)
	return &s
}

// AddElement adds a beam element
func (o *Builder) AddElement(nodeId1, nodeId2, materialId, sectionId int) *Element {
	e := &Element{Id: o.nextE, NodeIds: [2]int{nodeId1, nodeId2}, MaterialId: materialId, SectionId: sectionId}
	o.nextE++
	o.model.Elements = append(o.model.Elements, e)
	return e
}

// AddLoad adds a nodal load
func (o *Builder) AddLoad(nodeId int, force, moment Vec3) *Load {
	l := &Load{Id: o.nextL, NodeId: nodeId, Force: force, Moment: moment}
	o.nextL++
	o.model.Loads = append(o.model.Loads, l)
	return l
}

// SetNodeFixity sets the fixity of a node. Returns false if the node does not exist
func (o *Builder) SetNodeFixity(nodeId int, fix Fixity) bool {
	for _, n := range o.model.Nodes {
		if n.Id == nodeId {
			n.FixedDOF = fix
			return true
		}
	}
	return false
}

// SimpleBeam builds a 5 m cantilever split into 10 elements with 1 kN at the tip
func (o *Builder) SimpleBeam() *Model {
	o.Clear()
	steel := o.AddMaterial("Steel", 210e9, 0.3, 7850, 250e6)
	sec := o.AddSection("Rect100x200", 0.02, 6.67e-6, 1.67e-6, 1.0e-6)
	nodes := make([]*Node, 11)
	for i := range nodes {
		nodes[i] = o.AddNode(float64(i)*0.5, 0, 0, i == 0)
	}
	for i := 0; i < 10; i++ {
		o.AddElement(nodes[i].Id, nodes[i+1].Id, steel.Id, sec.Id)
	}
	o.AddLoad(nodes[10].Id, Vec3{0, -1000, 0}, Vec3{})
	return o.model
}

// Truss builds a triangle with two clamped supports and 5 kN at the apex
func (o *Builder) Truss() *Model {
	o.Clear()
	steel := o.AddMaterial("Steel", 210e9, 0.3, 7850, 250e6)
	sec := o.AddSection("Pipe50x5", 7.54e-4, 2.9e-7, 2.9e-7, 5.8e-7)
	n1 := o.AddNode(0, 0, 0, true)
	n2 := o.AddNode(2, 0, 0, true)
	n3 := o.AddNode(1, 2, 0, false)
	o.AddElement(n1.Id, n3.Id, steel.Id, sec.Id)
	o.AddElement(n2.Id, n3.Id, steel.Id, sec.Id)
	o.AddElement(n1.Id, n2.Id, steel.Id, sec.Id)
	o.AddLoad(n3.Id, Vec3{0, -5000, 0}, Vec3{})
	return o.model
}

// PortalFrame builds a 4 m × 3 m portal frame with clamped columns and 2 kN at each top corner
func (o *Builder) PortalFrame() *Model {
	o.Clear()
	steel := o.AddMaterial("Steel", 210e9, 0.3, 7850, 250e6)
	sec := o.AddSection("H200x100", 2.55e-3, 1.69e-5, 2.09e-6, 7.4e-8)
	n1 := o.AddNode(0, 0, 0, true)
	n2 := o.AddNode(4, 0, 0, true)
	n3 := o.AddNode(0, 3, 0, false)
	n4 := o.AddNode(4, 3, 0, false)
	o.AddElement(n1.Id, n3.Id, steel.Id, sec.Id)
	o.AddElement(n2.Id, n4.Id, steel.Id, sec.Id)
	o.AddElement(n3.Id, n4.Id, steel.Id, sec.Id)
	o.AddLoad(n3.Id, Vec3{0, -2000, 0}, Vec3{})
	o.AddLoad(n4.Id, Vec3{0, -2000, 0}, Vec3{})
	return o.model
}

// Preset returns a predefined model: "simple", "truss" or "frame"
func Preset(name string) (m *Model, ok bool) {
	b := NewBuilder()
	switch name {
	case "simple":
		return b.SimpleBeam(), true
	case "truss":
		return b.Truss(), true
	case "frame":
		return b.PortalFrame(), true
	}
	return nil, false
}

// ModelStats holds counts of model entities
type ModelStats struct {
	Nodes      int
	Elements   int
	Materials  int
	Sections   int
	Loads      int
	FixedNodes int
	TotalDofs  int // 6 × nodes
	FixedDofs  int // constrained degrees of freedom
	FreeDofs   int // TotalDofs - FixedDofs
}

// Stats returns counts of model entities
func (o *Model) Stats() (s ModelStats) {
	s.Nodes = len(o.Nodes)
	s.Elements = len(o.Elements)
	s.Materials = len(o.Materials)
	s.Sections = len(o.Sections)
	s.Loads = len(o.Loads)
	s.TotalDofs = NdofNode * s.Nodes
	for _, n := range o.Nodes {
		if n.IsFixed() {
			s.FixedNodes++
		}
		for _, f := range n.FixedDOF.Flags() {
			if f {
				s.FixedDofs++
			}
		}
	}
	s.FreeDofs = s.TotalDofs - s.FixedDofs
	return
}
