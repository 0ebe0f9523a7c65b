/*
 * stf.go, part of gochem.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package stf

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	v3 "github.com/atomCAD/atomCAD-sub000/v3"
	"github.com/klauspost/compress/zstd"
)

//DefaultPrecision is the number of decimal places kept for each coordinate,
//if the header doesn't give another one.
const DefaultPrecision = 3

//FrameInfo is the information stored with each frame, besides the coordinates.
type FrameInfo struct {
	Iteration int
	Energy    float64
}

//Writer writes relaxation frames to an stf stream.
type Writer struct {
	f         io.Closer //the file, if we opened it
	h         *zstd.Encoder
	natoms    int
	filename  string
	writeable bool
	prec      int
	temp      [3]int
}

//Create creates the stf file name and returns a Writer for frames of natoms atoms.
//See NewWriter.
func Create(name string, natoms int, header map[string]string) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Create"}, true}
	}
	S, err := NewWriter(f, natoms, header)
	if err != nil {
		f.Close()
		return nil, errDecorate(err, "Create")
	}
	S.f = f
	S.filename = name
	return S, nil
}

//NewWriter returns a Writer that compresses the frames of natoms atoms to w.
//The header is written first, one key=value line per element, sorted by key.
//The "prec" key sets the precision, DefaultPrecision is used if it is not given.
//Keys can't contain '=', and neither keys nor values can contain newlines.
func NewWriter(w io.Writer, natoms int, header map[string]string) (*Writer, error) {
	S := &Writer{natoms: natoms, prec: DefaultPrecision}
	if natoms < 0 {
		return nil, Error{fmt.Sprintf("Invalid number of atoms %d", natoms), "", []string{"NewWriter"}, true}
	}
	h := make(map[string]string, len(header)+1)
	for k, v := range header {
		if k == "" || strings.ContainsAny(k, "=\n") || strings.Contains(v, "\n") {
			return nil, Error{fmt.Sprintf("Invalid header entry %q=%q", k, v), "", []string{"NewWriter"}, true}
		}
		h[k] = v
	}
	if p, ok := h["prec"]; ok {
		prec, err := strconv.Atoi(p)
		if err != nil || prec < 0 {
			return nil, Error{fmt.Sprintf("Invalid precision %q", p), "", []string{"NewWriter"}, true}
		}
		S.prec = prec
	}
	h["prec"] = strconv.Itoa(S.prec)
	var err error
	S.h, err = zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, Error{"Can't start compression: " + err.Error(), "", []string{"NewWriter"}, true}
	}
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, h[k])
	}
	fmt.Fprintf(&b, "** %d\n", natoms)
	if _, err := io.WriteString(S.h, b.String()); err != nil {
		return nil, Error{"Can't write header: " + err.Error(), "", []string{"NewWriter"}, true}
	}
	S.writeable = true
	return S, nil
}

//Len returns the number of atoms per frame.
func (S *Writer) Len() int {
	return S.natoms
}

//WNext writes a frame with the coordinates coord.
func (S *Writer) WNext(coord *v3.Matrix, info FrameInfo) error {
	if coord == nil {
		return Error{NilCoordinates, S.filename, []string{"WNext"}, true}
	}
	if coord.NVecs() != S.natoms {
		return Error{fmt.Sprintf("%d coordinates given, but %d expected", coord.NVecs(), S.natoms), S.filename, []string{"WNext"}, true}
	}
	return errDecorate(S.WriteFrame(coord.Flat(), info), "WNext")
}

//WriteFrame writes a frame from a flat position buffer (x0,y0,z0,x1,...).
func (S *Writer) WriteFrame(pos []float64, info FrameInfo) error {
	if !S.writeable {
		return Error{TrajUnIniWrite, S.filename, []string{"WriteFrame"}, true}
	}
	if len(pos) != 3*S.natoms {
		return Error{fmt.Sprintf("%d values given, but %d expected", len(pos), 3*S.natoms), S.filename, []string{"WriteFrame"}, true}
	}
	var b strings.Builder
	var f [3]float64
	for i := 0; i < S.natoms; i++ {
		copy(f[:], pos[3*i:3*i+3])
		b.WriteString(coordsEncode(f, S.temp, S.prec))
	}
	fmt.Fprintf(&b, "* %d %s\n", info.Iteration, strconv.FormatFloat(info.Energy, 'g', -1, 64))
	if _, err := io.WriteString(S.h, b.String()); err != nil {
		return Error{"Can't write frame: " + err.Error(), S.filename, []string{"WriteFrame"}, true}
	}
	return nil
}

//Close flushes the compressed stream and closes the file, if the Writer opened it.
//The Writer can't be used after this call.
func (S *Writer) Close() error {
	if S == nil || !S.writeable {
		return nil
	}
	S.writeable = false
	err := S.h.Close()
	if S.f != nil {
		if err2 := S.f.Close(); err == nil {
			err = err2
		}
	}
	if err != nil {
		return Error{"Can't close: " + err.Error(), S.filename, []string{"Close"}, true}
	}
	return nil
}

func coordsEncode(f [3]float64, temp [3]int, prec int) string {
	p := math.Pow(10.0, float64(prec))
	for i, v := range f {
		temp[i] = int(math.RoundToEven(v * p))
	}
	return fmt.Sprintf("%d %d %d\n", temp[0], temp[1], temp[2])
}

func coordsDecode(str string, temp *[3]float64, prec int) error {
	p := math.Pow(10.0, float64(prec))
	s := strings.Fields(str)
	if len(s) != 3 {
		return fmt.Errorf("Ill formated coordinates line in stf: %d fields: %s", len(s), str)
	}
	for i, v := range s {
		f, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("Can't parse coordinate %d (%s). Error: %s", i, v, err.Error())
		}
		temp[i] = float64(f) / p
	}
	return nil
}

//Reader reads relaxation frames from an stf stream.
type Reader struct {
	f        io.Closer //the file, if we opened it
	dec      *zstd.Decoder
	h        *bufio.Reader
	header   map[string]string
	natoms   int
	filename string
	prec     int
	readable bool
}

//Open opens the stf file name for reading.
func Open(name string) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Open"}, true}
	}
	S, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, errDecorate(err, "Open")
	}
	S.f = f
	S.filename = name
	return S, nil
}

//NewReader returns a Reader for the stf stream in r, with its header already read.
func NewReader(r io.Reader) (*Reader, error) {
	S := &Reader{natoms: -1, prec: DefaultPrecision, header: make(map[string]string)}
	var err error
	S.dec, err = zstd.NewReader(bufio.NewReader(r))
	if err != nil {
		return nil, Error{"Can't start decompression: " + err.Error(), "", []string{"NewReader"}, true}
	}
	S.h = bufio.NewReader(S.dec)
	for {
		str, err := S.h.ReadString('\n')
		if err != nil {
			S.dec.Close()
			return nil, Error{"Can't read header: " + err.Error(), "", []string{"NewReader"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			nat := strings.Fields(str)
			if len(nat) < 2 {
				S.dec.Close()
				return nil, Error{fmt.Sprintf("Can't read atom number from '%s'", str), "", []string{"NewReader"}, true}
			}
			S.natoms, err = strconv.Atoi(nat[1])
			if err != nil || S.natoms < 0 {
				S.dec.Close()
				return nil, Error{fmt.Sprintf("Can't read atom number from '%s'", nat[1]), "", []string{"NewReader"}, true}
			}
			break
		}
		k, v, ok := strings.Cut(str, "=")
		if !ok {
			S.dec.Close()
			return nil, Error{"Malformed header line: " + str, "", []string{"NewReader"}, true}
		}
		S.header[k] = v
	}
	if p, ok := S.header["prec"]; ok {
		S.prec, err = strconv.Atoi(p)
		if err != nil || S.prec < 0 {
			S.dec.Close()
			return nil, Error{fmt.Sprintf("Invalid precision %q", p), "", []string{"NewReader"}, true}
		}
	}
	S.readable = true
	return S, nil
}

//Header returns a copy of the header of the trajectory.
func (S *Reader) Header() map[string]string {
	ret := make(map[string]string, len(S.header))
	for k, v := range S.header {
		ret[k] = v
	}
	return ret
}

//Readable returns true if the handle is readable (if it is possible to call Next on it)
func (S *Reader) Readable() bool {
	return S.readable
}

//Len returns the number of atoms in each frame of the trajectory.
func (S *Reader) Len() int {
	return S.natoms
}

//Next puts in c the coordinates of the next frame of the trajectory and, if info is given,
//puts there the iteration and energy of the frame. If c is nil the frame is read and checked, but discarded.
//At the end of the trajectory the returned error is a *LastFrameError, which wraps io.EOF.
func (S *Reader) Next(c *v3.Matrix, info ...*FrameInfo) error {
	if !S.readable {
		return Error{TrajUnIniRead, S.filename, []string{"Next"}, true}
	}
	if c != nil && c.NVecs() != S.natoms {
		return Error{fmt.Sprintf("Matrix with %d vectors given for %d atoms", c.NVecs(), S.natoms), S.filename, []string{"Next"}, true}
	}
	var temp [3]float64
	for i := 0; i < S.natoms; i++ {
		str, err := S.h.ReadString('\n')
		if err != nil {
			if err == io.EOF && i == 0 && str == "" {
				S.Close()
				return newLastFrameError(S.filename, "Next")
			}
			return Error{ReadError + ": " + err.Error(), S.filename, []string{"Next"}, true}
		}
		if err := coordsDecode(strings.TrimSuffix(str, "\n"), &temp, S.prec); err != nil {
			return Error{err.Error(), S.filename, []string{"Next"}, true}
		}
		if c == nil {
			continue
		}
		for j, v := range temp {
			c.Set(i, j, v)
		}
	}
	s, err := S.h.ReadString('\n')
	if err != nil {
		if err == io.EOF && s == "" && S.natoms == 0 {
			S.Close()
			return newLastFrameError(S.filename, "Next")
		}
		return Error{"Can't read the frame termination mark: " + err.Error(), S.filename, []string{"Next"}, true}
	}
	fields := strings.Fields(s)
	if len(fields) == 0 || fields[0] != "*" {
		return Error{WrongFormat + ": expected frame termination, got " + s, S.filename, []string{"Next"}, true}
	}
	if len(info) > 0 && info[0] != nil {
		if len(fields) != 3 {
			return Error{WrongFormat + ": no frame information in " + s, S.filename, []string{"Next"}, true}
		}
		it, err1 := strconv.Atoi(fields[1])
		e, err2 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil {
			return Error{WrongFormat + ": bad frame information in " + s, S.filename, []string{"Next"}, true}
		}
		info[0].Iteration = it
		info[0].Energy = e
	}
	return nil
}

//Close closes the object, and marks it as unreadable.
func (S *Reader) Close() {
	if !S.readable {
		return
	}
	S.dec.Close()
	if S.f != nil {
		S.f.Close()
	}
	S.readable = false
}

//errDecorate decorates err with the caller's name if it is an Error, and returns it.
func errDecorate(err error, caller string) error {
	switch e := err.(type) {
	case Error:
		e.deco = append(e.deco, caller)
		return e
	case *LastFrameError:
		e.Decorate(caller)
		return e
	}
	return err
}

//Error is the general structure for stf errors.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return "stf error: " + err.message
	}
	return fmt.Sprintf("stf file %s error: %s", err.filename, err.message)
}

//Decorate returns the decorations of the error with deco added, if it is not empty.
//As Error is not a pointer, the error itself is not modified.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		return append(append([]string(nil), err.deco...), deco)
	}
	return err.deco
}

//FileName returns the file to which the failing trajectory was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "stf") associated to the error
func (err Error) Format() string { return "stf" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead  = "Traj object uninitialized to read"
	TrajUnIniWrite = "Traj object uninitialized to write"
	ReadError      = "Error reading frame"
	UnableToOpen   = "Unable to open file"
	NilCoordinates = "Given nil coordinates"
	WrongFormat    = "Wrong format in the STF file or frame"
)

//LastFrameError is returned by Next when the trajectory has no more frames.
type LastFrameError struct {
	deco     []string
	fileName string
}

//NormalLastFrameTermination does nothing. It marks the error as a normal end of trajectory.
func (E *LastFrameError) NormalLastFrameTermination() {}

func (E *LastFrameError) FileName() string { return E.fileName }

func (E *LastFrameError) Error() string { return "EOF" }

func (E *LastFrameError) Critical() bool { return false }

func (E *LastFrameError) Format() string { return "stf" }

//Unwrap returns io.EOF.
func (E *LastFrameError) Unwrap() error { return io.EOF }

func (E *LastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newLastFrameError(filename string, caller string) *LastFrameError {
	return &LastFrameError{fileName: filename, deco: []string{caller}}
}
