/*
 * fpio.go, part of kinfp
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

//Package fpio persists batches of fingerprints as a zstd-compressed
//stream of JSON documents, one fingerprint per document. Missing values
//survive the round trip as JSON nulls.
package fpio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/kinfp/fingerprint"
)

//Write!
type Writer struct {
	f         *os.File //nil when writing to a caller-supplied stream
	h         io.WriteCloser
	enc       *json.Encoder
	writeable bool
}

//NewWriter returns a Writer that appends fingerprints to w as a
//zstd-compressed JSON stream. Close flushes the compressor; forgetting
//it truncates the stream.
func NewWriter(w io.Writer) (*Writer, error) {
	h, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, err
	}
	return &Writer{h: h, enc: json.NewEncoder(h), writeable: true}, nil
}

//Create opens (or truncates) the named file and returns a Writer on it.
func Create(name string) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	W, err := NewWriter(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	W.f = f
	return W, nil
}

//WNext appends one fingerprint to the stream.
func (W *Writer) WNext(fp *fingerprint.Fingerprint) error {
	if !W.writeable {
		return Error{message: "stream already closed", deco: []string{"WNext"}}
	}
	if fp == nil {
		return Error{message: "nil fingerprint", deco: []string{"WNext"}}
	}
	return W.enc.Encode(fp)
}

//Close flushes and closes the stream. Safe on nil.
func (W *Writer) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	err := W.h.Close()
	if W.f != nil {
		if cerr := W.f.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

//Read!
type Reader struct {
	f   *os.File
	h   *zstd.Decoder
	dec *json.Decoder
}

//NewReader returns a Reader over a stream previously produced by a
//Writer.
func NewReader(r io.Reader) (*Reader, error) {
	h, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &Reader{h: h, dec: json.NewDecoder(h)}, nil
}

//Open opens the named file and returns a Reader on it.
func Open(name string) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	R, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	R.f = f
	return R, nil
}

//Next returns the next fingerprint in the stream, or io.EOF when the
//stream is exhausted.
func (R *Reader) Next() (*fingerprint.Fingerprint, error) {
	fp := new(fingerprint.Fingerprint)
	if err := R.dec.Decode(fp); err != nil {
		return nil, err //io.EOF passes through untouched
	}
	return fp, nil
}

//Close releases the decompressor. Safe on nil.
func (R *Reader) Close() error {
	if R == nil {
		return nil
	}
	R.h.Close()
	if R.f != nil {
		return R.f.Close()
	}
	return nil
}

//Error is the fpio error type.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string {
	return "fpio error: " + err.message
}

//Decorate adds one layer to the error's context trace and returns the
//trace.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
