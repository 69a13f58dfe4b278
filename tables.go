/*
 * tables.go, part of kinfp
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

//Static chemical classification data. All tables here are read-only
//configuration loaded once with the process; nothing in the library
//mutates them.

//Names of the size/pharmacophore sub-features, in fingerprint column order.
const (
	FeatSize      = "size"
	FeatHBD       = "hbd"
	FeatHBA       = "hba"
	FeatCharge    = "charge"
	FeatAromatic  = "aromatic"
	FeatAliphatic = "aliphatic"
)

//Size and pharmacophore classes per standard residue, as encoded by
//SiteAlign (Schalon et al., Proteins, 2008). One map per sub-feature.
//Note that for hbd the value 2 is indeed never assigned.
var siteAlignSize = map[string]int{
	"ALA": 1, "CYS": 1, "GLY": 1, "PRO": 1, "SER": 1, "THR": 1, "VAL": 1,
	"ASN": 2, "ASP": 2, "GLN": 2, "GLU": 2, "HIS": 2, "ILE": 2, "LEU": 2, "LYS": 2, "MET": 2,
	"ARG": 3, "PHE": 3, "TRP": 3, "TYR": 3,
}

var siteAlignHBD = map[string]int{
	"ALA": 0, "ASP": 0, "GLU": 0, "GLY": 0, "ILE": 0, "LEU": 0, "MET": 0, "PHE": 0, "PRO": 0, "VAL": 0,
	"ASN": 1, "CYS": 1, "GLN": 1, "HIS": 1, "LYS": 1, "SER": 1, "THR": 1, "TRP": 1, "TYR": 1,
	"ARG": 3,
}

var siteAlignHBA = map[string]int{
	"ALA": 0, "ARG": 0, "CYS": 0, "GLY": 0, "ILE": 0, "LEU": 0, "LYS": 0, "MET": 0, "PHE": 0, "PRO": 0, "TRP": 0, "VAL": 0,
	"ASN": 1, "GLN": 1, "HIS": 1, "SER": 1, "THR": 1, "TYR": 1,
	"ASP": 2, "GLU": 2,
}

var siteAlignCharge = map[string]int{
	"ASP": -1, "GLU": -1,
	"ALA": 0, "ASN": 0, "CYS": 0, "GLN": 0, "GLY": 0, "HIS": 0, "ILE": 0, "LEU": 0, "MET": 0, "PHE": 0, "PRO": 0, "SER": 0, "TRP": 0, "TYR": 0, "VAL": 0,
	"ARG": 1, "LYS": 1, "THR": 1, //THR carries +1 in the SiteAlign reference table
}

var siteAlignAromatic = map[string]int{
	"ALA": 0, "ARG": 0, "ASN": 0, "ASP": 0, "CYS": 0, "GLN": 0, "GLU": 0, "GLY": 0, "ILE": 0, "LEU": 0, "LYS": 0, "MET": 0, "PRO": 0, "SER": 0, "THR": 0, "VAL": 0,
	"HIS": 1, "PHE": 1, "TRP": 1, "TYR": 1,
}

var siteAlignAliphatic = map[string]int{
	"ARG": 0, "ASN": 0, "ASP": 0, "GLN": 0, "GLU": 0, "GLY": 0, "HIS": 0, "LYS": 0, "PHE": 0, "SER": 0, "TRP": 0, "TYR": 0,
	"ALA": 1, "CYS": 1, "ILE": 1, "LEU": 1, "MET": 1, "PRO": 1, "THR": 1, "VAL": 1,
}

var siteAlignTables = map[string]map[string]int{
	FeatSize:      siteAlignSize,
	FeatHBD:       siteAlignHBD,
	FeatHBA:       siteAlignHBA,
	FeatCharge:    siteAlignCharge,
	FeatAromatic:  siteAlignAromatic,
	FeatAliphatic: siteAlignAliphatic,
}

//SiteAlign returns the SiteAlign class for the sub-feature feature of the
//residue with the given three-letter name, after substituting modified
//residues by their standard parent. The second return is false if the
//sub-feature or the (substituted) residue is not tabulated.
func SiteAlign(feature, residue string) (int, bool) {
	t, ok := siteAlignTables[feature]
	if !ok {
		return 0, false
	}
	v, ok := t[Substitute(residue)]
	return v, ok
}

//Modified or non-standard residues mapped to their closest standard parent.
var modifiedAA = map[string]string{
	"CAF": "CYS",
	"CME": "CYS",
	"CSS": "CYS",
	"OCY": "CYS",
	"KCX": "LYS",
	"MSE": "MET",
	"PHD": "ASP",
	"PTR": "TYR",
}

//Substitute maps a modified residue name to its standard parent (e.g.
//selenomethionine MSE to MET). Names without a substitution are returned
//unchanged.
func Substitute(residue string) string {
	if parent, ok := modifiedAA[residue]; ok {
		return parent
	}
	return residue
}

//IsStandardAA returns whether the three-letter name is one of the 20
//standard amino acids.
func IsStandardAA(residue string) bool {
	_, ok := heavyAtoms[residue]
	return ok
}

//Expected number of heavy side-chain atoms per standard residue.
var heavyAtoms = map[string]int{
	"GLY": 0,
	"ALA": 1,
	"CYS": 2, "SER": 2,
	"PRO": 3, "THR": 3, "VAL": 3,
	"ASN": 4, "ASP": 4, "ILE": 4, "LEU": 4, "MET": 4,
	"GLN": 5, "GLU": 5, "LYS": 5,
	"HIS": 6,
	"ARG": 7, "PHE": 7,
	"TYR": 8,
	"TRP": 10,
}

//Number of resolved heavy side-chain atoms needed before a side-chain
//centroid is computed, calibrated so that at least 75% of the expected
//heavy atoms are present.
var heavyAtomsCutoff = map[string]int{
	"GLY": 0,
	"ALA": 1,
	"CYS": 2, "SER": 2,
	"PRO": 3, "THR": 3, "VAL": 3,
	"ASN": 3, "ASP": 3, "ILE": 3, "LEU": 3, "MET": 3,
	"GLN": 4, "GLU": 4, "LYS": 4,
	"HIS": 5,
	"ARG": 6, "PHE": 6, "TYR": 6,
	"TRP": 8,
}

//HeavyAtomCutoff returns the minimum number of resolved heavy side-chain
//atoms required for the centroid of the given standard residue, and false
//if the residue is not a standard amino acid (in which case no threshold
//applies).
func HeavyAtomCutoff(residue string) (int, bool) {
	v, ok := heavyAtomsCutoff[residue]
	return v, ok
}

//Empirical median of the side-chain angle distribution per residue type,
//in degrees, precomputed over the KLIFS dataset. Used only by the optional
//fill-missing mode of the side-chain angle feature. GLY and ALA never reach
//the fill path (their angle is fixed), their entries are the fixed value.
var medianSideChainAngle = map[string]float64{
	"GLY": 180.00,
	"ALA": 180.00,
	"CYS": 25.41,
	"SER": 27.93,
	"THR": 30.22,
	"VAL": 28.48,
	"PRO": 39.77,
	"ILE": 32.15,
	"LEU": 33.08,
	"ASN": 34.12,
	"ASP": 33.91,
	"MET": 38.55,
	"GLN": 38.24,
	"GLU": 38.07,
	"LYS": 40.11,
	"HIS": 35.73,
	"ARG": 44.23,
	"PHE": 36.32,
	"TYR": 37.90,
	"TRP": 38.01,
}

//MedianSideChainAngle returns the empirical median side-chain angle for
//the residue type, in degrees, and whether the type is tabulated.
func MedianSideChainAngle(residue string) (float64, bool) {
	v, ok := medianSideChainAngle[Substitute(residue)]
	return v, ok
}

//Positions is the number of slots of the KLIFS pocket numbering.
const Positions = 85

//Anchor position slots defining the three anchor-based reference regions.
//Each region's reference point is the mean CA position of its three
//anchor slots.
var (
	HingeAnchors       = [3]int{16, 47, 80}
	DFGAnchors         = [3]int{19, 24, 81}
	FrontPocketAnchors = [3]int{6, 48, 75}
)
