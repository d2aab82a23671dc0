// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/nakanishi-coder/gofea/inp"

	"github.com/cpmech/gosl/chk"
)

// InfoFuncType defines a function that returns information about a certain element type
type InfoFuncType func(e *inp.Element) *Info

// AllocatorType defines a function that allocates an element
type AllocatorType func(e *inp.Element, n1, n2 *inp.Node, mat *inp.Material, sec *inp.Section) (Element, error)

// GetInfo returns information about elements from factory
func GetInfo(e *inp.Element) (info *Info, err error) {
	fcn, ok := infofactory[e.Kind()]
	if !ok {
		err = chk.Err("cannot get info for element {type=%q, id=%d}", e.Kind(), e.Id)
		return
	}
	info = fcn(e)
	if info == nil {
		err = chk.Err("info for element {type=%q, id=%d} is not available", e.Kind(), e.Id)
	}
	return
}

// New returns a new element from factory
func New(e *inp.Element, idx *inp.Index) (ele Element, err error) {
	fcn, ok := allocators[e.Kind()]
	if !ok {
		err = chk.Err("cannot get allocator for element {type=%q, id=%d}", e.Kind(), e.Id)
		return
	}
	n1, n2, mat, sec, err := idx.ElementData(e)
	if err != nil {
		return
	}
	return fcn(e, n1, n2, mat, sec)
}

// SetInfoFunc sets a new callback function to return information about an element
func SetInfoFunc(elementName string, fcn InfoFuncType) {
	if _, ok := infofactory[elementName]; ok {
		chk.Panic("cannot set information function for %q because element name exists already", elementName)
	}
	infofactory[elementName] = fcn
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(elementName string, fcn AllocatorType) {
	if _, ok := allocators[elementName]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", elementName)
	}
	allocators[elementName] = fcn
}

// infofactory holds all functions that return information about an element
var infofactory = make(map[string]InfoFuncType)

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
