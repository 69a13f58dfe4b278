/*
 * features_test.go, part of kinfp
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
	"encoding/json"
	"fmt"
	"testing"

	kinfp "github.com/rmera/kinfp"
	v3 "github.com/rmera/kinfp/v3"
)

func at(name string, x, y, z float64) *kinfp.Atom {
	return &kinfp.Atom{Name: name, Symbol: name[:1], Coord: v3.Vec(x, y, z)}
}

func caOnly(name string, pdbid int, x, y, z float64) *kinfp.Residue {
	return kinfp.NewResidue(name, pdbid, []*kinfp.Atom{at("CA", x, y, z)})
}

func mustPocket(Te *testing.T, code string, res []*kinfp.Residue, slots []int) *kinfp.Pocket {
	P, err := kinfp.NewPocket(code, res, slots)
	if err != nil {
		Te.Fatal(err)
	}
	return P
}

func wantVal(Te *testing.T, col *Column, slot int, want float64) {
	got, ok := col.At(slot).Float()
	if !ok {
		Te.Errorf("%s at %d: missing, want %v", col.Name, slot, want)
		return
	}
	if got != want {
		Te.Errorf("%s at %d: got %v want %v", col.Name, slot, got, want)
	}
}

func wantMissing(Te *testing.T, col *Column, slot int) {
	if !col.At(slot).IsMissing() {
		Te.Errorf("%s at %d: got %v, want missing", col.Name, slot, col.At(slot))
	}
}

func TestSizePharmacophore(Te *testing.T) {
	fmt.Println("Size/pharmacophore test!")
	P := mustPocket(Te, "sp", []*kinfp.Residue{
		caOnly("LEU", 1, 0, 0, 0),
		caOnly("PTR", 2, 1, 0, 0), //phosphotyrosine, classifies as TYR
		caOnly("ZZZ", 3, 2, 0, 0),
	}, []int{1, 2, 3})
	cols := SizePharmacophore(P)
	if len(cols) != len(SizePharmNames) {
		Te.Fatalf("got %d columns", len(cols))
	}
	byName := make(map[string]*Column)
	for _, c := range cols {
		byName[c.Name] = c
	}
	//LEU
	wantVal(Te, byName[kinfp.FeatSize], 1, 2)
	wantVal(Te, byName[kinfp.FeatHBD], 1, 0)
	wantVal(Te, byName[kinfp.FeatHBA], 1, 0)
	wantVal(Te, byName[kinfp.FeatCharge], 1, 0)
	wantVal(Te, byName[kinfp.FeatAromatic], 1, 0)
	wantVal(Te, byName[kinfp.FeatAliphatic], 1, 1)
	//PTR gets TYR's classes
	wantVal(Te, byName[kinfp.FeatSize], 2, 3)
	wantVal(Te, byName[kinfp.FeatHBD], 2, 1)
	wantVal(Te, byName[kinfp.FeatHBA], 2, 1)
	wantVal(Te, byName[kinfp.FeatCharge], 2, 0)
	wantVal(Te, byName[kinfp.FeatAromatic], 2, 1)
	wantVal(Te, byName[kinfp.FeatAliphatic], 2, 0)
	//unknown residue and gap stay missing everywhere
	for _, name := range SizePharmNames {
		wantMissing(Te, byName[name], 3)
		wantMissing(Te, byName[name], 4)
	}
}

func TestSideChainAngleFixed(Te *testing.T) {
	P := mustPocket(Te, "fixed", []*kinfp.Residue{
		caOnly("GLY", 1, 0, 0, 0),
		caOnly("ALA", 2, 1, 0, 0),
	}, []int{1, 2})
	col := SideChainAngle(P)
	wantVal(Te, col, 1, 180.00)
	wantVal(Te, col, 2, 180.00)
}

func TestSideChainAngleGeometry(Te *testing.T) {
	fmt.Println("Side-chain angle test!")
	//CB at (1,0,0), SG at (1,1,0): centroid (1,0.5,0), so the angle at CA
	//between CA->CB and CA->centroid is atan(0.5) = 26.57 degrees
	res := kinfp.NewResidue("CYS", 1, []*kinfp.Atom{
		at("CA", 0, 0, 0),
		at("CB", 1, 0, 0),
		at("SG", 1, 1, 0),
	})
	P := mustPocket(Te, "geom", []*kinfp.Residue{res}, []int{5})
	col := SideChainAngle(P)
	wantVal(Te, col, 5, 26.57)
}

func TestSideChainAngleFillMissing(Te *testing.T) {
	//CYS with the side chain unresolved: missing by default, the empirical
	//median when filling is on
	build := func() *kinfp.Pocket {
		res := kinfp.NewResidue("CYS", 1, []*kinfp.Atom{
			at("CA", 0, 0, 0),
			at("CB", 1, 0, 0),
		})
		return mustPocket(Te, "fill", []*kinfp.Residue{res}, []int{1})
	}
	wantMissing(Te, SideChainAngle(build()), 1)
	o := DefaultOptions()
	o.FillMissing(true)
	median, _ := kinfp.MedianSideChainAngle("CYS")
	wantVal(Te, SideChainAngle(build(), o), 1, median)
}

func TestSideChainOrientation(Te *testing.T) {
	//residue A at the origin with its side-chain centroid straight up; a
	//far residue B drags the pocket centroid along +x, giving a 90 degree
	//angle at A's CA
	a := kinfp.NewResidue("CYS", 1, []*kinfp.Atom{
		at("CA", 0, 0, 0),
		at("CB", 0, 1, 0),
		at("SG", 0, 3, 0),
	})
	//B's centroid counterweights A's CA so the pocket centroid lands on +x
	b := caOnly("GLY", 2, 8, 0, 0)
	P := mustPocket(Te, "sco", []*kinfp.Residue{a, b}, []int{1, 2})
	col := SideChainOrientation(P)
	//pocket centroid (4,0,0); A's side-chain centroid (0,2,0)
	wantVal(Te, col, 1, 90.00)
	wantMissing(Te, col, 2) //no side chain on GLY
}

func TestSideChainOrientationDegenerate(Te *testing.T) {
	//in a single-residue pocket the CA is the pocket centroid, so the
	//orientation angle is undefined: it must come out missing, never as a
	//present NaN, and the column must stay serializable
	res := kinfp.NewResidue("CYS", 1, []*kinfp.Atom{
		at("CA", 0, 0, 0),
		at("CB", 0, 1, 0),
		at("SG", 0, 3, 0),
	})
	P := mustPocket(Te, "lone", []*kinfp.Residue{res}, []int{1})
	col := SideChainOrientation(P)
	wantMissing(Te, col, 1)
	if _, err := json.Marshal(col); err != nil {
		Te.Errorf("orientation column should marshal: %v", err)
	}
}

func TestSideChainAngleDegenerate(Te *testing.T) {
	//side-chain atoms placed symmetrically about the CA put the centroid
	//on the CA itself; the angle is undefined and stays missing, or takes
	//the empirical median when filling is on
	build := func() *kinfp.Pocket {
		res := kinfp.NewResidue("CYS", 1, []*kinfp.Atom{
			at("CA", 0, 0, 0),
			at("CB", 1, 0, 0),
			at("SG", -1, 0, 0),
		})
		return mustPocket(Te, "sym", []*kinfp.Residue{res}, []int{1})
	}
	col := SideChainAngle(build())
	wantMissing(Te, col, 1)
	if _, err := json.Marshal(col); err != nil {
		Te.Errorf("angle column should marshal: %v", err)
	}
	o := DefaultOptions()
	o.FillMissing(true)
	median, _ := kinfp.MedianSideChainAngle("CYS")
	wantVal(Te, SideChainAngle(build(), o), 1, median)
}

func TestSpatial(Te *testing.T) {
	fmt.Println("Spatial distances test!")
	//hinge anchors are slots 16, 47 and 80; slot 16 is a gap here and must
	//fall back to the midpoint of slots 15 and 17
	P := mustPocket(Te, "spat", []*kinfp.Residue{
		caOnly("GLY", 1, 1, 4, 0), //the probe residue, slot 1
		caOnly("GLY", 15, 0, 0, 0),
		caOnly("GLY", 17, 2, 0, 0),
		caOnly("GLY", 47, 1, 3, 0),
		caOnly("GLY", 80, 1, -3, 0),
	}, []int{1, 15, 17, 47, 80})
	cols, refs := Spatial(P)
	byName := make(map[string]*Column)
	for _, c := range cols {
		byName[c.Name] = c
	}
	//hinge point: mean of (1,0,0) [fallback], (1,3,0), (1,-3,0) = (1,0,0)
	if refs.Hinge == nil {
		Te.Fatal("hinge point should resolve through the neighbour fallback")
	}
	wantVal(Te, byName[DistHingeName], 1, 4.00)
	//centroid of the five CAs is (1,0.8,0); probe is 3.2 above it
	wantVal(Te, byName[DistCentroidName], 1, 3.20)
	//DFG (19,24,81) and front pocket (6,48,75) have no anchors at all
	if refs.DFG != nil || refs.FrontPocket != nil {
		Te.Error("regions without anchors should be unresolved")
	}
	for slot := 1; slot <= kinfp.Positions; slot++ {
		wantMissing(Te, byName[DistDFGName], slot)
		wantMissing(Te, byName[DistFrontPocketName], slot)
	}
}

func TestExposure(Te *testing.T) {
	fmt.Println("Exposure test!")
	//three residues on the y axis, side chains pointing outward along y.
	//The middle one sees one neighbour up and one down; the end ones see
	//both neighbours behind their CB axis.
	mk := func(pdbid int, y, cby float64) *kinfp.Residue {
		return kinfp.NewResidue("CYS", pdbid, []*kinfp.Atom{
			at("CA", 0, y, 0),
			at("CB", 0, cby, 0),
		})
	}
	res := []*kinfp.Residue{
		mk(1, 5, 6),   //axis +y: both neighbours below
		mk(2, 0, 1),   //axis +y: one above, one below
		mk(3, -5, -6), //axis -y: both neighbours above, i.e. behind
	}
	P := mustPocket(Te, "expo", res, []int{1, 2, 3})
	chain := &kinfp.Chain{Residues: res}
	col := Exposure(P, chain)
	wantVal(Te, col, 1, 0)
	wantVal(Te, col, 2, 0.5)
	wantVal(Te, col, 3, 0)
}

func TestExposureRadius(Te *testing.T) {
	//with a radius smaller than the spacing nobody has neighbours, and the
	//ratio is undefined
	res := []*kinfp.Residue{
		kinfp.NewResidue("CYS", 1, []*kinfp.Atom{at("CA", 0, 0, 0), at("CB", 0, 1, 0)}),
		kinfp.NewResidue("CYS", 2, []*kinfp.Atom{at("CA", 0, 10, 0), at("CB", 0, 11, 0)}),
	}
	P := mustPocket(Te, "rad", res, []int{1, 2})
	o := DefaultOptions()
	o.Radius(5)
	col := Exposure(P, nil, o)
	wantMissing(Te, col, 1)
	wantMissing(Te, col, 2)
}

func TestExposureDegenerateCBAxis(Te *testing.T) {
	//a CB recorded on top of the CA gives no usable axis; with the CA
	//fallback also unavailable (terminus) the value must be missing, not NaN
	bad := kinfp.NewResidue("CYS", 1, []*kinfp.Atom{at("CA", 0, 0, 0), at("CB", 0, 0, 0)})
	good := kinfp.NewResidue("CYS", 2, []*kinfp.Atom{at("CA", 0, 5, 0), at("CB", 0, 6, 0)})
	P := mustPocket(Te, "degen", []*kinfp.Residue{bad, good}, []int{1, 2})
	col := Exposure(P, nil)
	wantMissing(Te, col, 1)
	wantVal(Te, col, 2, 0) //its one neighbour sits behind the axis
}

func TestExposureDuplicatePDBIDs(Te *testing.T) {
	//two chains merged into one Chain can collide on PDB ids; residues
	//present in the pocket as the same objects must keep their own values
	a := kinfp.NewResidue("CYS", 7, []*kinfp.Atom{at("CA", 0, 0, 0), at("CB", 0, 1, 0)})
	b := kinfp.NewResidue("CYS", 7, []*kinfp.Atom{at("CA", 0, 5, 0), at("CB", 0, 6, 0)})
	P := mustPocket(Te, "dup", []*kinfp.Residue{a, b}, []int{1, 2})
	chain := &kinfp.Chain{Residues: []*kinfp.Residue{a, b}}
	col := Exposure(P, chain)
	wantVal(Te, col, 1, 1) //a's axis points at b
	wantVal(Te, col, 2, 0) //b's axis points away from a
}

func TestExposureGlyPseudoCB(Te *testing.T) {
	//GLY has no CB; its pseudo-CB axis comes from the backbone, so the
	//value should still be there when neighbours exist
	gly := kinfp.NewResidue("GLY", 1, []*kinfp.Atom{
		at("N", 1.5, 0, 0),
		at("CA", 0, 0, 0),
		at("C", -0.5, 1.4, 0),
	})
	other := kinfp.NewResidue("CYS", 2, []*kinfp.Atom{at("CA", 5, 0, 0), at("CB", 6, 0, 0)})
	P := mustPocket(Te, "gly", []*kinfp.Residue{gly, other}, []int{1, 2})
	col := Exposure(P, nil)
	if col.At(1).IsMissing() {
		Te.Error("GLY exposure should resolve through the pseudo-CB axis")
	}
}

func TestAll(Te *testing.T) {
	P := mustPocket(Te, "all", []*kinfp.Residue{
		caOnly("GLY", 1, 0, 0, 0),
		caOnly("LEU", 2, 3, 0, 0),
	}, []int{1, 2})
	T := All(P, nil)
	//6 size/pharmacophore + sca + sco + exposure + 4 distances
	if len(T.Columns) != 13 {
		Te.Errorf("got %d columns, want 13", len(T.Columns))
	}
	if T.Column(SCAName) == nil || T.Column(SCOName) == nil || T.Column(ExposureName) == nil {
		Te.Error("missing a computed column")
	}
	if T.Column("nope") != nil {
		Te.Error("unknown column name should give nil")
	}
	wantVal(Te, T.Column(SCAName), 1, 180.00)
}
