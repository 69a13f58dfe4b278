/*
 * pocket.go, part of kinfp
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
	"sync"

	v3 "github.com/rmera/kinfp/v3"
)

//Pocket is a kinase binding pocket aligned to the 85-slot KLIFS numbering.
//Each slot holds zero or one residue; unassigned slots are gaps, and every
//feature at a gap is missing. A Pocket is immutable after construction,
//except for the memoized CA centroid, which is computed at most once.
type Pocket struct {
	//Code identifies the structure the pocket came from (e.g. a KLIFS
	//molecule code). Only used for logging and error reporting.
	Code string

	slots [Positions + 1]*Residue //indexed by slot, entry 0 unused

	centroidOnce sync.Once
	centroid     *v3.Matrix
}

//NewPocket builds a pocket from the ordered list of observed residues and
//their position-slot assignments (one slot per residue, gaps excluded).
//It returns an AlignmentMismatch if the two lists differ in length, if a
//slot is outside [1,85], or if two residues claim the same slot. The slot
//is recorded on each residue.
func NewPocket(code string, residues []*Residue, slots []int) (*Pocket, error) {
	if len(residues) != len(slots) {
		return nil, NewAlignmentMismatch(code, "%d residues but %d position assignments", len(residues), len(slots))
	}
	P := &Pocket{Code: code}
	for i, res := range residues {
		slot := slots[i]
		if slot < 1 || slot > Positions {
			return nil, NewAlignmentMismatch(code, "position slot %d out of range [1,%d]", slot, Positions)
		}
		if P.slots[slot] != nil {
			return nil, NewAlignmentMismatch(code, "position slot %d assigned twice", slot)
		}
		res.Slot = slot
		P.slots[slot] = res
	}
	return P, nil
}

//Residue returns the residue at the given slot, or nil if the slot is a
//gap. Panics if the slot is out of range.
func (P *Pocket) Residue(slot int) *Residue {
	if slot < 1 || slot > Positions {
		panic("kinfp: pocket slot out of range")
	}
	return P.slots[slot]
}

//Residues returns the pocket's residues in slot order, gaps excluded.
func (P *Pocket) Residues() []*Residue {
	var ret []*Residue
	for i := 1; i <= Positions; i++ {
		if P.slots[i] != nil {
			ret = append(ret, P.slots[i])
		}
	}
	return ret
}

//Len returns the number of residues in the pocket (gaps excluded).
func (P *Pocket) Len() int {
	n := 0
	for i := 1; i <= Positions; i++ {
		if P.slots[i] != nil {
			n++
		}
	}
	return n
}

//Centroid returns the mean position of all resolved CA atoms of the
//pocket, or nil if no CA is resolved. The centroid is computed at most
//once per pocket and shared by all calculators, so concurrent calls are
//safe.
func (P *Pocket) Centroid() *v3.Matrix {
	P.centroidOnce.Do(func() {
		var cas []*v3.Matrix
		for i := 1; i <= Positions; i++ {
			if P.slots[i] == nil {
				continue
			}
			if ca := P.slots[i].CA(); ca != nil {
				cas = append(cas, ca)
			}
		}
		P.centroid = v3.Mean(cas)
	})
	return P.centroid
}

//Chain is the full protein chain a pocket was cut from, in sequence
//order; consecutive entries are sequence neighbours. The half-sphere
//exposure feature counts neighbours over the whole chain, not just the
//pocket. Building a Chain is the caller's concern (the same external
//loader that produces the pocket); a nil Chain makes exposure fall back
//to the pocket residues alone. Chain entries that are the pocket's own
//Residue objects are matched back to slots by identity; otherwise the
//match is by PDBID, which then must be unique within the chain.
type Chain struct {
	Residues []*Residue
}
