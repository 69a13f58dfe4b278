/*
 * spatial.go, part of kinfp
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

//Column names of the four spatial distance features, in fingerprint
//column order.
const (
	DistCentroidName    = "distance_to_centroid"
	DistHingeName       = "distance_to_hinge_region"
	DistDFGName         = "distance_to_dfg_region"
	DistFrontPocketName = "distance_to_front_pocket"
)

//DistanceNames lists the four spatial columns in fingerprint order.
var DistanceNames = []string{
	DistCentroidName,
	DistHingeName,
	DistDFGName,
	DistFrontPocketName,
}

//ReferencePoints holds the four per-pocket reference points. A nil point
//is unresolvable; every distance to it is missing.
type ReferencePoints struct {
	Centroid    *v3.Matrix
	Hinge       *v3.Matrix
	DFG         *v3.Matrix
	FrontPocket *v3.Matrix
}

//Spatial computes, for each pocket residue with a resolved CA, the
//Euclidean distance (rounded to 2 decimals) from that CA to each of the
//four reference points: the pocket CA centroid and the hinge, DFG and
//front-pocket region points. It returns the four columns in DistanceNames
//order, plus the reference points themselves for inspection. A region
//with any unresolved anchor has a nil reference point and an all-missing
//column.
func Spatial(P *kinfp.Pocket) ([]*Column, *ReferencePoints) {
	refs := referencePoints(P)
	points := []*v3.Matrix{refs.Centroid, refs.Hinge, refs.DFG, refs.FrontPocket}
	cols := make([]*Column, len(DistanceNames))
	for i, name := range DistanceNames {
		cols[i] = NewColumn(name)
	}
	for slot := 1; slot <= kinfp.Positions; slot++ {
		res := P.Residue(slot)
		if res == nil {
			continue
		}
		ca := res.CA()
		if ca == nil {
			continue
		}
		for i, point := range points {
			if point == nil {
				continue
			}
			cols[i].Set(slot, kinfp.Val(round2(v3.Dist(ca, point))))
		}
	}
	return cols, refs
}

func referencePoints(P *kinfp.Pocket) *ReferencePoints {
	return &ReferencePoints{
		Centroid:    P.Centroid(),
		Hinge:       regionPoint(P, kinfp.HingeAnchors),
		DFG:         regionPoint(P, kinfp.DFGAnchors),
		FrontPocket: regionPoint(P, kinfp.FrontPocketAnchors),
	}
}

//regionPoint returns the mean position of the three anchor CAs of a
//region, or nil if any anchor is unresolvable.
func regionPoint(P *kinfp.Pocket, anchors [3]int) *v3.Matrix {
	points := make([]*v3.Matrix, 0, 3)
	for _, slot := range anchors {
		a := anchorCA(P, slot)
		if a == nil {
			return nil
		}
		points = append(points, a)
	}
	return v3.Mean(points)
}

//anchorCA resolves the CA position standing for the anchor slot:
//the slot's own CA if resolved; else the midpoint of both immediate
//neighbouring slots' CAs; else the single resolved neighbour's CA; else
//nil.
func anchorCA(P *kinfp.Pocket, slot int) *v3.Matrix {
	if ca := slotCA(P, slot); ca != nil {
		return ca
	}
	before := slotCA(P, slot-1)
	after := slotCA(P, slot+1)
	switch {
	case before != nil && after != nil:
		return v3.Mean([]*v3.Matrix{before, after})
	case before != nil:
		return before
	case after != nil:
		return after
	}
	return nil
}

func slotCA(P *kinfp.Pocket, slot int) *v3.Matrix {
	if slot < 1 || slot > kinfp.Positions {
		return nil
	}
	res := P.Residue(slot)
	if res == nil {
		return nil
	}
	return res.CA()
}
