/*
 * orientation.go, part of kinfp
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
)

//SCOName is the column name of the side-chain orientation feature.
const SCOName = "sco"

//SideChainOrientation computes, for each pocket residue, the angle at the
//CA vertex between the CA->side-chain-centroid vector and the CA->pocket-
//centroid vector, in degrees, rounded to 2 decimals. The pocket centroid
//(mean of all resolved CA positions) is memoized on the pocket and
//computed at most once. If either endpoint is unavailable the angle is
//missing.
func SideChainOrientation(P *kinfp.Pocket) *Column {
	col := NewColumn(SCOName)
	pocketCentroid := P.Centroid()
	if pocketCentroid == nil {
		return col //no resolved CA at all: everything missing
	}
	for slot := 1; slot <= kinfp.Positions; slot++ {
		res := P.Residue(slot)
		if res == nil {
			continue
		}
		ca := res.CA()
		centroid := res.SideChainCentroid()
		if ca == nil || centroid == nil {
			continue
		}
		//the CA can coincide with the pocket centroid (it always does in a
		//single-residue pocket); the angle is then undefined and stays missing
		if ang, ok := vertexAngle(ca, centroid, pocketCentroid); ok {
			col.Set(slot, kinfp.Val(round2(rad2deg(ang))))
		}
	}
	return col
}
