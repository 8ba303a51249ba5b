package stlprobe

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Format identifies the on-disk STL encoding.
type Format int

const (
	FormatBinary Format = iota
	FormatASCII
)

func (f Format) String() string {
	if f == FormatASCII {
		return "ASCII"
	}
	return "Binary"
}

// ErrEmptyMesh is reported when a parse produces no triangles.
var ErrEmptyMesh = errors.New("no triangles found in file")

const (
	binaryHeaderSize = 80
	binaryRecordSize = 50
)

// DetectFormat classifies an STL header block (the first 80 bytes of the
// file, or fewer for short files). A file is ASCII when the header starts
// with "solid" after leading whitespace and contains no null byte. Binary
// files that happen to begin with ASCII-looking bytes still contain nulls
// in the header, so the null check runs even when the marker matches.
func DetectFormat(header []byte) Format {
	h := bytes.TrimLeft(header, " \t\r\n\v\f")
	if bytes.HasPrefix(h, []byte("solid")) && !bytes.ContainsRune(h, 0) {
		return FormatASCII
	}
	return FormatBinary
}

// Load reads an STL file in either encoding, autodetected from the header.
func Load(path string) ([]Triangle, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrap(err, "load STL")
	}
	defer f.Close()

	header := make([]byte, binaryHeaderSize)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, 0, errors.Wrap(err, "load STL")
	}
	format := DetectFormat(header[:n])
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, 0, errors.Wrap(err, "load STL")
	}

	var tris []Triangle
	if format == FormatASCII {
		tris, err = ReadASCII(f)
	} else {
		tris, err = ReadBinary(f)
	}
	return tris, format, err
}

// ReadBinary parses binary STL: an ignored 80-byte header, a little-endian
// uint32 triangle count, then 50-byte records holding 12 little-endian
// float32s (normal, v1, v2, v3) plus 2 ignored attribute bytes. A truncated
// final record is not an error; the triangles read so far are returned.
func ReadBinary(r io.Reader) ([]Triangle, error) {
	br := bufio.NewReader(r)
	var header [binaryHeaderSize]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		return nil, errors.Wrap(err, "read binary STL header")
	}
	var countBuf [4]byte
	if _, err := io.ReadFull(br, countBuf[:]); err != nil {
		return nil, errors.Wrap(err, "read binary STL count")
	}
	count := binary.LittleEndian.Uint32(countBuf[:])

	var tris []Triangle
	var record [binaryRecordSize]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(br, record[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				// Tolerate truncated files: keep what we have.
				break
			}
			return nil, errors.Wrap(err, "read binary STL record")
		}
		var vals [12]float64
		for j := range vals {
			bits := binary.LittleEndian.Uint32(record[j*4:])
			vals[j] = float64(math.Float32frombits(bits))
		}
		tris = append(tris, Triangle{
			Normal: Point3{vals[0], vals[1], vals[2]},
			V1:     Point3{vals[3], vals[4], vals[5]},
			V2:     Point3{vals[6], vals[7], vals[8]},
			V3:     Point3{vals[9], vals[10], vals[11]},
		})
	}
	return tris, nil
}

// ReadASCII parses text STL. Only "facet normal", "vertex", and "endfacet"
// are structural; "solid", "outer loop", and "endloop" carry no information
// and nesting is not validated. A facet is kept only when endfacet arrives
// with a normal and exactly three accumulated vertices; malformed facets
// are dropped without error.
func ReadASCII(r io.Reader) ([]Triangle, error) {
	var tris []Triangle
	var verts []Point3
	var normal Point3
	haveNormal := false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "facet normal"):
			n, err := parseTriple(line, 2)
			if err != nil {
				return nil, err
			}
			normal = n
			haveNormal = true
			verts = verts[:0]
		case strings.HasPrefix(line, "vertex"):
			v, err := parseTriple(line, 1)
			if err != nil {
				return nil, err
			}
			verts = append(verts, v)
		case strings.HasPrefix(line, "endfacet"):
			if haveNormal && len(verts) == 3 {
				tris = append(tris, Triangle{
					Normal: normal,
					V1:     verts[0],
					V2:     verts[1],
					V3:     verts[2],
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read ASCII STL")
	}
	return tris, nil
}

func parseTriple(line string, skip int) (Point3, error) {
	parts := strings.Fields(line)
	if len(parts) < skip+3 {
		return Point3{}, errors.Errorf("read ASCII STL: short directive %q", line)
	}
	var vals [3]float64
	for i := range vals {
		v, err := strconv.ParseFloat(parts[skip+i], 64)
		if err != nil {
			return Point3{}, errors.Wrapf(err, "read ASCII STL: directive %q", line)
		}
		vals[i] = v
	}
	return Point3{vals[0], vals[1], vals[2]}, nil
}

// WriteBinary writes triangles as binary STL with a zeroed header and
// attribute words. Coordinates are narrowed to float32, as the format
// requires.
func WriteBinary(w io.Writer, tris []Triangle) error {
	bw := bufio.NewWriter(w)
	var header [binaryHeaderSize]byte
	if _, err := bw.Write(header[:]); err != nil {
		return errors.Wrap(err, "write binary STL")
	}
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(tris)))
	if _, err := bw.Write(countBuf[:]); err != nil {
		return errors.Wrap(err, "write binary STL")
	}
	var record [binaryRecordSize]byte
	for i := range tris {
		t := &tris[i]
		vals := [12]float64{
			t.Normal.X, t.Normal.Y, t.Normal.Z,
			t.V1.X, t.V1.Y, t.V1.Z,
			t.V2.X, t.V2.Y, t.V2.Z,
			t.V3.X, t.V3.Y, t.V3.Z,
		}
		for j, v := range vals {
			binary.LittleEndian.PutUint32(record[j*4:], math.Float32bits(float32(v)))
		}
		record[48] = 0
		record[49] = 0
		if _, err := bw.Write(record[:]); err != nil {
			return errors.Wrap(err, "write binary STL")
		}
	}
	return errors.Wrap(bw.Flush(), "write binary STL")
}
