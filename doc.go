/*
 * doc.go, part of kinfp
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
Package kinfp provides the structural model for kinase ATP-binding pockets
in the 85-position KLIFS numbering, on top of which the subpackages compute
per-residue features (package features) and assemble structural fingerprints
(package fingerprint).

The package holds the residue/atom model, the alignment of observed residues
to the 85 positional slots, the static chemical lookup tables (SiteAlign
size/pharmacophore classes, modified-residue substitutions, side-chain
heavy-atom counts) and the optional Value type through which every feature
propagates missing data.

kinfp itself performs no file parsing: pockets are built from already-loaded
atom tables (three-letter residue name, PDB residue id, atom names and
cartesian coordinates), typically produced by an external mol2/pdb/cif
reader plus the KLIFS positional assignment.
*/
package kinfp
