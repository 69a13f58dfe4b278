/*
 * sizepharm.go, part of kinfp
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
	"log"
	"sort"
	"strings"

	kinfp "github.com/rmera/kinfp"
)

//SizePharmNames are the six size/pharmacophore sub-features, in
//fingerprint column order.
var SizePharmNames = []string{
	kinfp.FeatSize,
	kinfp.FeatHBD,
	kinfp.FeatHBA,
	kinfp.FeatCharge,
	kinfp.FeatAromatic,
	kinfp.FeatAliphatic,
}

//SizePharmacophore classifies each pocket residue by the SiteAlign
//size/pharmacophore tables and returns the six columns in SizePharmNames
//order. Modified residues are substituted by their standard parent before
//lookup; residues absent from both tables get missing for every
//sub-feature. Non-standard residue names are logged once per pocket.
func SizePharmacophore(P *kinfp.Pocket) []*Column {
	cols := make([]*Column, len(SizePharmNames))
	for i, name := range SizePharmNames {
		cols[i] = NewColumn(name)
	}
	nonstandard := make(map[string]bool)
	for slot := 1; slot <= kinfp.Positions; slot++ {
		res := P.Residue(slot)
		if res == nil {
			continue
		}
		if res.Class() != kinfp.Standard && res.Class() != kinfp.NoSideChain {
			nonstandard[res.Name] = true
		}
		if res.Class() == kinfp.Unknown {
			continue //all six stay missing for this slot
		}
		for i, feature := range SizePharmNames {
			if v, ok := kinfp.SiteAlign(feature, res.Name); ok {
				cols[i].Set(slot, kinfp.Val(float64(v)))
			}
		}
	}
	if len(nonstandard) > 0 {
		names := make([]string, 0, len(nonstandard))
		for name := range nonstandard {
			names = append(names, name)
		}
		sort.Strings(names)
		log.Printf("kinfp/features: non-standard amino acid(s) in %s: %s", P.Code, strings.Join(names, " "))
	}
	return cols
}
