/*
 * sidechain.go, part of kinfp
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
	kinfp "github.com/rmera/kinfp"
	v3 "github.com/rmera/kinfp/v3"
)

//SCAName is the column name of the side-chain angle feature.
const SCAName = "sca"

//SideChainAngle computes, for each pocket residue, the angle at the CA
//vertex between the CA->CB vector and the CA->side-chain-centroid vector,
//in degrees in [0,180], rounded to 2 decimals. GLY and ALA have no side
//chain to bend and get the fixed value 180.00. If CA, CB or the centroid
//is unresolved the angle is missing, unless the FillMissing option is set,
//in which case the residue type's empirical median is used verbatim.
func SideChainAngle(P *kinfp.Pocket, options ...*Options) *Column {
	o := optionsOrDefault(options)
	col := NewColumn(SCAName)
	for slot := 1; slot <= kinfp.Positions; slot++ {
		res := P.Residue(slot)
		if res == nil {
			continue
		}
		if res.Class() == kinfp.NoSideChain {
			col.Set(slot, kinfp.Val(180.00))
			continue
		}
		ca := res.CA()
		cb := res.CB()
		centroid := res.SideChainCentroid()
		if ca != nil && cb != nil && centroid != nil {
			if ang, ok := vertexAngle(ca, cb, centroid); ok {
				col.Set(slot, kinfp.Val(round2(rad2deg(ang))))
				continue
			}
		}
		if o.fillMissing {
			if median, ok := kinfp.MedianSideChainAngle(res.Name); ok {
				col.Set(slot, kinfp.Val(median))
			}
		}
	}
	return col
}

//vertexAngle returns the angle, in radians, at vertex between the
//vertex->a and vertex->b vectors. The second return is false when either
//endpoint coincides with the vertex, in which case no angle is defined.
func vertexAngle(vertex, a, b *v3.Matrix) (float64, bool) {
	va := v3.Zeros(1)
	vb := v3.Zeros(1)
	va.Sub(a, vertex)
	vb.Sub(b, vertex)
	if va.Norm() == 0 || vb.Norm() == 0 {
		return 0, false
	}
	return v3.Angle(va, vb), true
}
