/*
 * features.go, part of kinfp
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
Package features implements the per-residue feature calculators for KLIFS
pockets: size/pharmacophore lookup, side-chain angle, side-chain
orientation, half-sphere exposure and spatial reference-point distances.

The five calculators are mutually independent: each consumes only the
aligned pocket (plus, for exposure, the full chain) and produces values
keyed by position slot. Per-residue failures degrade to missing values and
never abort a pocket.
*/
package features

import (
	"math"

	kinfp "github.com/rmera/kinfp"
)

//A Column is one feature over the 85 position slots. Unset slots are
//missing, so the zero Column is a column of gaps.
type Column struct {
	Name   string
	Values [kinfp.Positions]kinfp.Value
}

//NewColumn returns an empty (all-missing) column with the given name.
func NewColumn(name string) *Column {
	return &Column{Name: name}
}

//At returns the value at the given slot. Panics if the slot is out of
//range.
func (C *Column) At(slot int) kinfp.Value {
	if slot < 1 || slot > kinfp.Positions {
		panic("kinfp/features: column slot out of range")
	}
	return C.Values[slot-1]
}

//Set sets the value at the given slot. Panics if the slot is out of range.
func (C *Column) Set(slot int, v kinfp.Value) {
	if slot < 1 || slot > kinfp.Positions {
		panic("kinfp/features: column slot out of range")
	}
	C.Values[slot-1] = v
}

//Options contains the adjustable settings of the feature calculators.
type Options struct {
	fillMissing bool
	radius      float64
}

//DefaultOptions returns an Options with the default settings: no median
//fill for missing side-chain angles, 13 A exposure radius.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.fillMissing = false
	ret.radius = 13.0
	return ret
}

//FillMissing returns whether missing side-chain angles are filled with the
//residue type's empirical median, and sets the value to the one given, if
//any.
func (o *Options) FillMissing(fill ...bool) bool {
	ret := o.fillMissing
	if len(fill) > 0 {
		o.fillMissing = fill[0]
	}
	return ret
}

//Radius returns the neighbour radius for the half-sphere exposure
//calculation and sets it, if a valid (positive) value is given.
func (o *Options) Radius(radius ...float64) float64 {
	ret := o.radius
	if len(radius) > 0 && radius[0] > 0 {
		o.radius = radius[0]
	}
	return ret
}

func optionsOrDefault(options []*Options) *Options {
	if len(options) > 0 && options[0] != nil {
		return options[0]
	}
	return DefaultOptions()
}

//round2 rounds to 2 decimal places, the precision at which angles and
//distances enter the fingerprint.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

//rad2deg converts radians to degrees.
func rad2deg(v float64) float64 {
	return v * 180 / math.Pi
}

//Table is the aggregated per-position feature table: the output of all
//calculators concatenated, one column per feature, keyed by slot. It
//contains every computed column, including side-chain orientation, which
//the fingerprint representations do not retain.
type Table struct {
	Columns []*Column
}

//Column returns the column with the given name, or nil.
func (T *Table) Column(name string) *Column {
	for _, c := range T.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

//All runs the five calculators on the pocket (sequentially; see
//fingerprint.FromPocket for the concurrent path) and aggregates their
//columns. The chain may be nil, in which case exposure neighbours are
//counted over the pocket alone.
func All(P *kinfp.Pocket, chain *kinfp.Chain, options ...*Options) *Table {
	o := optionsOrDefault(options)
	T := new(Table)
	T.Columns = append(T.Columns, SizePharmacophore(P)...)
	T.Columns = append(T.Columns, SideChainAngle(P, o))
	T.Columns = append(T.Columns, SideChainOrientation(P))
	T.Columns = append(T.Columns, Exposure(P, chain, o))
	dist, _ := Spatial(P)
	T.Columns = append(T.Columns, dist...)
	return T
}
