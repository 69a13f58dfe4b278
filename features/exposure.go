/*
 * exposure.go, part of kinfp
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

package features

import (
	"math"

	kinfp "github.com/rmera/kinfp"
	v3 "github.com/rmera/kinfp/v3"
)

//ExposureName is the column name of the half-sphere exposure feature.
const ExposureName = "exposure"

//Exposure computes, for each pocket residue, the half-sphere exposure
//ratio up/(up+down): the fraction of CA neighbours within the radius
//(Options.Radius, default 13 A) that lie in the upper half-sphere of the
//residue's side-chain axis. Two axis definitions are computed: the CB
//method (CA->CB, with a pseudo-CB built from the backbone for GLY) and
//the CA method (sum of the unit CA->CA vectors to both sequence
//neighbours). The CB value is preferred; the CA value fills in where the
//CB axis is unavailable. Residues with no neighbour within the radius are
//missing.
//
//Neighbours are counted over the full chain when one is given; with a nil
//chain only the pocket residues themselves are considered. Either way,
//only pocket positions appear in the output, matched by residue identity
//or, failing that, by PDB residue id (see Chain).
func Exposure(P *kinfp.Pocket, chain *kinfp.Chain, options ...*Options) *Column {
	o := optionsOrDefault(options)
	seq := P.Residues()
	if chain != nil && len(chain.Residues) > 0 {
		seq = chain.Residues
	}
	cb := exposureByAxis(seq, o.radius, axisCB)
	ca := exposureByAxis(seq, o.radius, axisCA)
	//pocket residues that are the chain's own objects match by identity,
	//which keeps residues with colliding PDB ids (say, merged chains) apart;
	//the id map only serves pockets built from separate residue objects.
	byRes := make(map[*kinfp.Residue]kinfp.Value, len(seq))
	byID := make(map[int]kinfp.Value, len(seq))
	for i, res := range seq {
		v := cb[i]
		if v.IsMissing() {
			v = ca[i]
		}
		byRes[res] = v
		if _, taken := byID[res.PDBID]; !taken {
			byID[res.PDBID] = v
		}
	}
	col := NewColumn(ExposureName)
	for slot := 1; slot <= kinfp.Positions; slot++ {
		res := P.Residue(slot)
		if res == nil {
			continue
		}
		if v, ok := byRes[res]; ok {
			col.Set(slot, v)
		} else if v, ok := byID[res.PDBID]; ok {
			col.Set(slot, v)
		}
	}
	return col
}

//an axisFunc returns the half-sphere reference axis for residue i of the
//sequence, or nil if it cannot be built.
type axisFunc func(seq []*kinfp.Residue, i int) *v3.Matrix

func exposureByAxis(seq []*kinfp.Residue, radius float64, axis axisFunc) []kinfp.Value {
	vals := make([]kinfp.Value, len(seq))
	for i, res := range seq {
		ca := res.CA()
		if ca == nil {
			continue
		}
		ax := axis(seq, i)
		if ax == nil {
			continue
		}
		up, down := 0, 0
		d := v3.Zeros(1)
		for j, other := range seq {
			if i == j {
				continue
			}
			oca := other.CA()
			if oca == nil {
				continue
			}
			d.Sub(oca, ca)
			n := d.Norm()
			if n == 0 || n >= radius {
				continue
			}
			if v3.Angle(ax, d) < math.Pi/2 {
				up++
			} else {
				down++
			}
		}
		if up+down > 0 {
			vals[i] = kinfp.Val(float64(up) / float64(up+down))
		}
	}
	return vals
}

//axisCB returns the CA->CB vector. For GLY, which has no CB, the pseudo-CB
//direction is built from the backbone: the CA->N vector rotated -120
//degrees about the CA->C axis lands where the beta carbon would sit.
func axisCB(seq []*kinfp.Residue, i int) *v3.Matrix {
	res := seq[i]
	ca := res.CA()
	if ca == nil {
		return nil
	}
	if cb := res.CB(); cb != nil {
		ax := v3.Zeros(1)
		ax.Sub(cb, ca)
		if ax.Norm() == 0 {
			return nil
		}
		return ax
	}
	if res.Name != "GLY" {
		return nil
	}
	n := res.Atom("N")
	c := res.Atom("C")
	if n == nil || c == nil {
		return nil
	}
	vn := v3.Zeros(1)
	vc := v3.Zeros(1)
	vn.Sub(n.Coord, ca)
	vc.Sub(c.Coord, ca)
	if vc.Norm() == 0 || vn.Norm() == 0 {
		return nil
	}
	return v3.RotatedAbout(vn, vc, -2*math.Pi/3)
}

//axisCA returns the pseudo axis built from the two sequence neighbours:
//the sum of the unit CA(i)->CA(i-1) and CA(i)->CA(i+1) vectors, which
//points roughly where the side chain does. Chain termini have no such
//axis.
func axisCA(seq []*kinfp.Residue, i int) *v3.Matrix {
	if i == 0 || i == len(seq)-1 {
		return nil
	}
	ca := seq[i].CA()
	prev := seq[i-1].CA()
	next := seq[i+1].CA()
	if ca == nil || prev == nil || next == nil {
		return nil
	}
	d1 := v3.Zeros(1)
	d3 := v3.Zeros(1)
	d1.Sub(ca, prev)
	d3.Sub(ca, next)
	if d1.Norm() == 0 || d3.Norm() == 0 {
		return nil
	}
	d1.Unit(d1)
	d3.Unit(d3)
	ax := v3.Zeros(1)
	ax.Add(d1, d3)
	if ax.Norm() == 0 {
		return nil
	}
	return ax
}
