/*
 * fingerprint.go, part of kinfp
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

/*
Package fingerprint assembles the structural fingerprint of a kinase
pocket from the per-residue feature columns.

Two representations are produced, raw and normalized each:

  - The dense fingerprint: 85 position rows x 12 feature columns (8
    physicochemical + 4 reference-point distances), with explicit missing
    values at gaps. All 85 rows are always present.
  - The compact fingerprint: the 8 physicochemical columns verbatim, plus
    the first three statistical moments of each of the 4 distance
    distributions (12 scalars).

A fingerprint is a pure function of its pocket: computing it twice from
the same input yields bit-identical results.
*/
package fingerprint

import (
	"sync"

	kinfp "github.com/rmera/kinfp"
	"github.com/rmera/kinfp/features"
)

//Fingerprint dimensions.
const (
	NCols      = 12 //total feature columns in the dense representation
	NPhysChem  = 8  //physicochemical columns (lookup + angle + exposure)
	NDistances = 4  //reference-point distance columns
)

//ColumnNames are the dense fingerprint columns, in order.
var ColumnNames = [NCols]string{
	kinfp.FeatSize,
	kinfp.FeatHBD,
	kinfp.FeatHBA,
	kinfp.FeatCharge,
	kinfp.FeatAromatic,
	kinfp.FeatAliphatic,
	features.SCAName,
	features.ExposureName,
	features.DistCentroidName,
	features.DistHingeName,
	features.DistDFGName,
	features.DistFrontPocketName,
}

//Dense is the positional fingerprint matrix: one row per KLIFS slot, one
//column per feature, gaps as missing values.
type Dense struct {
	Code string                              `json:"code"`
	Data [kinfp.Positions][NCols]kinfp.Value `json:"data"`
}

//At returns the value at the given slot (1-85) and column (0-11). Panics
//if out of range.
func (D *Dense) At(slot, col int) kinfp.Value {
	if slot < 1 || slot > kinfp.Positions || col < 0 || col >= NCols {
		panic("kinfp/fingerprint: dense index out of range")
	}
	return D.Data[slot-1][col]
}

//Equal returns whether the two dense fingerprints are bit-identical.
func (D *Dense) Equal(E *Dense) bool {
	return D.Code == E.Code && D.Data == E.Data
}

//RegionMoments holds the first three statistical moments of one distance
//distribution: the mean, the population standard deviation (divisor N)
//and the cube root of the third central moment. They are missing when the
//distribution has fewer than 2 non-missing values.
type RegionMoments struct {
	Name string      `json:"name"`
	M1   kinfp.Value `json:"m1"`
	M2   kinfp.Value `json:"m2"`
	M3   kinfp.Value `json:"m3"`
}

//Compact is the compact fingerprint: the physicochemical block verbatim
//plus the moment summary of the distance block.
type Compact struct {
	Code     string                                  `json:"code"`
	PhysChem [kinfp.Positions][NPhysChem]kinfp.Value `json:"physchem"`
	Moments  [NDistances]RegionMoments               `json:"moments"`
}

//Equal returns whether the two compact fingerprints are bit-identical.
func (C *Compact) Equal(E *Compact) bool {
	return C.Code == E.Code && C.PhysChem == E.PhysChem && C.Moments == E.Moments
}

//Fingerprint is the full output for one pocket: the dense and compact
//representations, raw and normalized, plus the auxiliary data kept for
//inspection (side-chain orientation column and reference points, which
//the fingerprint representations themselves do not retain).
type Fingerprint struct {
	Code              string                    `json:"code"`
	Dense             *Dense                    `json:"dense"`
	Compact           *Compact                  `json:"compact"`
	DenseNormalized   *Dense                    `json:"dense_normalized"`
	CompactNormalized *Compact                  `json:"compact_normalized"`
	Orientation       *features.Column          `json:"orientation,omitempty"`
	References        *features.ReferencePoints `json:"-"`
}

//FromPocket computes the fingerprint of the pocket. The chain may be nil
//(see features.Exposure). The five feature calculators are independent
//and run concurrently; each writes only its own columns, keyed by slot,
//so the result does not depend on scheduling. Per-residue failures have
//already degraded to missing values inside the calculators; FromPocket
//only fails on a violated normalization invariant, which indicates a bug,
//not bad data.
func FromPocket(P *kinfp.Pocket, chain *kinfp.Chain, options ...*features.Options) (*Fingerprint, error) {
	var o *features.Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = features.DefaultOptions()
	}
	var (
		sizepharm []*features.Column
		sca       *features.Column
		sco       *features.Column
		exposure  *features.Column
		distances []*features.Column
		refs      *features.ReferencePoints
	)
	var wg sync.WaitGroup
	wg.Add(5)
	go func() { defer wg.Done(); sizepharm = features.SizePharmacophore(P) }()
	go func() { defer wg.Done(); sca = features.SideChainAngle(P, o) }()
	go func() { defer wg.Done(); sco = features.SideChainOrientation(P) }()
	go func() { defer wg.Done(); exposure = features.Exposure(P, chain, o) }()
	go func() { defer wg.Done(); distances, refs = features.Spatial(P) }()
	wg.Wait()

	cols := make([]*features.Column, 0, NCols)
	cols = append(cols, sizepharm...)
	cols = append(cols, sca, exposure)
	cols = append(cols, distances...)

	dense := &Dense{Code: P.Code}
	for c, col := range cols {
		for slot := 1; slot <= kinfp.Positions; slot++ {
			dense.Data[slot-1][c] = col.At(slot)
		}
	}
	compact := compactFrom(dense)
	normDense, err := normalizeDense(dense)
	if err != nil {
		return nil, err
	}
	normCompact := &Compact{Code: compact.Code, Moments: compact.Moments}
	for i := range normDense.Data {
		copy(normCompact.PhysChem[i][:], normDense.Data[i][:NPhysChem])
	}
	return &Fingerprint{
		Code:              P.Code,
		Dense:             dense,
		Compact:           compact,
		DenseNormalized:   normDense,
		CompactNormalized: normCompact,
		Orientation:       sco,
		References:        refs,
	}, nil
}

//compactFrom derives the compact representation: the physicochemical
//block is copied verbatim, the distance block collapses to its moments.
func compactFrom(D *Dense) *Compact {
	C := &Compact{Code: D.Code}
	for i := range D.Data {
		copy(C.PhysChem[i][:], D.Data[i][:NPhysChem])
	}
	for d := 0; d < NDistances; d++ {
		col := NPhysChem + d
		vals := make([]kinfp.Value, kinfp.Positions)
		for i := range D.Data {
			vals[i] = D.Data[i][col]
		}
		C.Moments[d] = regionMoments(ColumnNames[col], vals)
	}
	return C
}
