/*
 * fpio_test.go, part of kinfp
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

package fpio

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	kinfp "github.com/rmera/kinfp"
	"github.com/rmera/kinfp/fingerprint"
	v3 "github.com/rmera/kinfp/v3"
)

func testFingerprint(Te *testing.T, code string, offset float64) *fingerprint.Fingerprint {
	res := []*kinfp.Residue{
		kinfp.NewResidue("GLY", 1, []*kinfp.Atom{{Name: "CA", Symbol: "C", Coord: v3.Vec(offset, 0, 0)}}),
		kinfp.NewResidue("LEU", 2, []*kinfp.Atom{{Name: "CA", Symbol: "C", Coord: v3.Vec(offset+3, 0, 0)}}),
		kinfp.NewResidue("SER", 3, []*kinfp.Atom{{Name: "CA", Symbol: "C", Coord: v3.Vec(offset, 3, 0)}}),
	}
	P, err := kinfp.NewPocket(code, res, []int{1, 2, 3})
	if err != nil {
		Te.Fatal(err)
	}
	fp, err := fingerprint.FromPocket(P, nil)
	if err != nil {
		Te.Fatal(err)
	}
	return fp
}

func TestRoundTrip(Te *testing.T) {
	fmt.Println("fpio round-trip test!")
	a := testFingerprint(Te, "AAA_1", 0)
	b := testFingerprint(Te, "BBB_2", 5)
	var buf bytes.Buffer
	W, err := NewWriter(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	for _, fp := range []*fingerprint.Fingerprint{a, b} {
		if err := W.WNext(fp); err != nil {
			Te.Fatal(err)
		}
	}
	if err := W.Close(); err != nil {
		Te.Fatal(err)
	}
	if err := W.WNext(a); err == nil {
		Te.Error("writing to a closed stream should fail")
	}
	R, err := NewReader(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	defer R.Close()
	for _, want := range []*fingerprint.Fingerprint{a, b} {
		got, err := R.Next()
		if err != nil {
			Te.Fatal(err)
		}
		if got.Code != want.Code {
			Te.Errorf("code: got %s want %s", got.Code, want.Code)
		}
		if !got.Dense.Equal(want.Dense) {
			Te.Error("dense fingerprint changed across the round trip")
		}
		if !got.Compact.Equal(want.Compact) {
			Te.Error("compact fingerprint changed across the round trip")
		}
		if !got.DenseNormalized.Equal(want.DenseNormalized) {
			Te.Error("normalized dense fingerprint changed across the round trip")
		}
	}
	if _, err := R.Next(); err != io.EOF {
		Te.Errorf("got %v at the end of the stream, want io.EOF", err)
	}
}

func TestFileRoundTrip(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "test.fpz")
	a := testFingerprint(Te, "CCC_3", 1)
	W, err := Create(name)
	if err != nil {
		Te.Fatal(err)
	}
	if err := W.WNext(a); err != nil {
		Te.Fatal(err)
	}
	if err := W.Close(); err != nil {
		Te.Fatal(err)
	}
	R, err := Open(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer R.Close()
	got, err := R.Next()
	if err != nil {
		Te.Fatal(err)
	}
	if !got.Dense.Equal(a.Dense) {
		Te.Error("dense fingerprint changed across the file round trip")
	}
}
