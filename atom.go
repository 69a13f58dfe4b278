/*
 * atom.go, part of kinfp
 *
 * Copyright 2021 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package kinfp

import (
	"strings"
	"sync"

	v3 "github.com/rmera/kinfp/v3"
)

//Atom contains one resolved atom of a residue. Coordinates are a 1x3
//v3.Matrix. Symbol and Mass are only needed when the atom takes part in
//centroid calculations; a zero Mass is tolerated since centroids here are
//geometric (unweighted).
type Atom struct {
	Name   string
	Symbol string
	Mass   float64
	Coord  *v3.Matrix
}

//Copy returns a copy of the Atom, with its own copy of the coordinates.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("kinfp: attempted to copy a nil atom")
	}
	newat := new(Atom)
	newat.Name = A.Name
	newat.Symbol = A.Symbol
	newat.Mass = A.Mass
	if A.Coord != nil {
		newat.Coord = A.Coord.Copy()
	}
	return newat
}

//Class is the kind of a residue with respect to the feature calculators.
//It is resolved once, when the residue is built, so the calculators branch
//on a closed set of cases instead of re-inspecting name strings.
type Class int

const (
	//Standard is one of the 20 standard amino acids with a side chain.
	Standard Class = iota
	//NoSideChain is GLY or ALA: no side-chain geometry, fixed angle.
	NoSideChain
	//Modified is a non-standard residue with a tabulated standard parent
	//(e.g. MSE for MET).
	Modified
	//Unknown is absent from both the standard and the substitution tables.
	//Its lookup features degrade to missing.
	Unknown
)

func classify(name string) Class {
	switch {
	case name == "GLY" || name == "ALA":
		return NoSideChain
	case IsStandardAA(name):
		return Standard
	case IsStandardAA(Substitute(name)):
		return Modified
	default:
		return Unknown
	}
}

//Residue is one observed pocket residue: its three-letter chemical
//identity, the PDB-native residue id for cross-referencing the structural
//record, its position slot (assigned by NewPocket, 0 before alignment) and
//its atoms. A Residue is immutable after construction except for the
//geometric points (CA, CB, side-chain centroid) which are computed on
//first use, attached once, and never change afterwards.
type Residue struct {
	Name  string
	PDBID int
	Slot  int
	Atoms []*Atom

	class Class

	caOnce       sync.Once
	ca           *v3.Matrix
	cbOnce       sync.Once
	cb           *v3.Matrix
	centroidOnce sync.Once
	centroid     *v3.Matrix
}

//NewResidue builds a residue from its three-letter name, PDB-native id and
//atoms, classifying it once for the feature calculators.
func NewResidue(name string, pdbid int, atoms []*Atom) *Residue {
	return &Residue{Name: name, PDBID: pdbid, Atoms: atoms, class: classify(name)}
}

//Class returns the residue's class, resolved at construction.
func (R *Residue) Class() Class {
	return R.class
}

//Atom returns the first atom with the given name, or nil if the residue
//has no such atom.
func (R *Residue) Atom(name string) *Atom {
	for _, at := range R.Atoms {
		if at.Name == name {
			return at
		}
	}
	return nil
}

//CA returns the position of the residue's alpha carbon, or nil if it is
//not resolved. The point is computed once and cached.
func (R *Residue) CA() *v3.Matrix {
	R.caOnce.Do(func() {
		if at := R.Atom("CA"); at != nil {
			R.ca = at.Coord
		}
	})
	return R.ca
}

//CB returns the position of the residue's beta carbon, or nil if it is
//not resolved. The point is computed once and cached.
func (R *Residue) CB() *v3.Matrix {
	R.cbOnce.Do(func() {
		if at := R.Atom("CB"); at != nil {
			R.cb = at.Coord
		}
	})
	return R.cb
}

//backbone atom names, plus the terminal carboxyl oxygen
var backboneNames = map[string]bool{"N": true, "CA": true, "C": true, "O": true, "OXT": true}

func isHydrogen(at *Atom) bool {
	if at.Symbol == "H" {
		return true
	}
	return at.Symbol == "" && strings.HasPrefix(at.Name, "H")
}

//SideChain returns the residue's heavy side-chain atoms: everything that
//is not backbone (N, CA, C, O), not the terminal OXT, and not a hydrogen.
func (R *Residue) SideChain() []*Atom {
	var sel []*Atom
	for _, at := range R.Atoms {
		if backboneNames[at.Name] || isHydrogen(at) {
			continue
		}
		sel = append(sel, at)
	}
	return sel
}

//SideChainCentroid returns the unweighted mean position of the residue's
//heavy side-chain atoms, or nil if it cannot be computed. For standard
//residues the centroid requires the tabulated minimum number of resolved
//heavy atoms (>=75% expected coverage); non-standard residues use whatever
//atoms are present. Fewer than 2 side-chain atoms never give a centroid.
//The point is computed once and cached.
func (R *Residue) SideChainCentroid() *v3.Matrix {
	R.centroidOnce.Do(func() {
		sel := R.SideChain()
		if len(sel) <= 1 {
			return
		}
		if cutoff, ok := HeavyAtomCutoff(R.Name); ok && len(sel) < cutoff {
			return
		}
		points := make([]*v3.Matrix, len(sel))
		for i, at := range sel {
			points[i] = at.Coord
		}
		R.centroid = v3.Mean(points)
	})
	return R.centroid
}
