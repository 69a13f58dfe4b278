/*
 * fpplot.go, part of kinfp
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

//Package fpplot draws quick-look histograms of fingerprint columns, in
//png format. Missing values are simply left out of the histogram.
package fpplot

import (
	"fmt"

	"github.com/rmera/kinfp/features"
	"github.com/rmera/kinfp/fingerprint"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//ColumnHist plots the distribution of one dense fingerprint column as a
//histogram with the given number of bins. The extension (png) is
//appended to plotname. Returns an error if the column has no values at
//all.
func ColumnHist(D *fingerprint.Dense, col, bins int, title, plotname string) error {
	if D == nil {
		panic("Given nil data")
	}
	vals := make(plotter.Values, 0, len(D.Data))
	for i := range D.Data {
		if x, ok := D.At(i+1, col).Float(); ok {
			vals = append(vals, x)
		}
	}
	return hist(vals, bins, title, fingerprint.ColumnNames[col], plotname)
}

//FeatureHist plots the distribution of one feature column, same deal as
//ColumnHist but straight from the calculator output.
func FeatureHist(col *features.Column, bins int, title, plotname string) error {
	if col == nil {
		panic("Given nil data")
	}
	vals := make(plotter.Values, 0, len(col.Values))
	for _, v := range col.Values {
		if x, ok := v.Float(); ok {
			vals = append(vals, x)
		}
	}
	return hist(vals, bins, title, col.Name, plotname)
}

func hist(vals plotter.Values, bins int, title, xlabel, plotname string) error {
	if len(vals) == 0 {
		return fmt.Errorf("fpplot: no values to plot for %s", plotname)
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Count"
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return err
	}
	p.Add(h)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(4*vg.Inch, 4*vg.Inch, filename)
}
