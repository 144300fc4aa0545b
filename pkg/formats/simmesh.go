// Package formats provides the binary cache format for simulation proxy
// meshes: the (vertex positions, triangle indices) pair persisted
// alongside an object so the proxy does not have to be rebuilt on load.
package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/Faultbox/hydrosim/pkg/math"
)

// SimMesh format errors.
var (
	ErrInvalidSimMeshMagic       = errors.New("invalid sim-mesh magic: expected 'HSMC'")
	ErrUnsupportedSimMeshVersion = errors.New("unsupported sim-mesh version")
	ErrTruncatedSimMeshData      = errors.New("truncated sim-mesh data")
	ErrCorruptSimMeshData        = errors.New("corrupt sim-mesh data")
)

// simMeshMagic identifies a sim-mesh cache file.
const simMeshMagic = "HSMC"

// Current format version.
const (
	simMeshMajor = 1
	simMeshMinor = 0
)

// Header flags.
const flagCompressed uint8 = 1 << 0

// SimMeshVersion represents the cache file version.
type SimMeshVersion struct {
	Major uint8
	Minor uint8
}

// String returns the version as "Major.Minor".
func (v SimMeshVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// SimMesh is the decoded cache payload. Parsing always produces freshly
// allocated slices, never views into the input or another mesh.
type SimMesh struct {
	Version  SimMeshVersion
	Vertices []math.Vec3
	Indices  []uint32
}

// EncodeSimMesh serializes a vertex/index pair into the cache format.
// With compress set the payload is zstd-compressed.
func EncodeSimMesh(vertices []math.Vec3, indices []uint32, compress bool) ([]byte, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices is not a multiple of 3", ErrCorruptSimMeshData, len(indices))
	}
	for _, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("%w: index %d out of range", ErrCorruptSimMeshData, idx)
		}
	}

	payload := new(bytes.Buffer)
	for _, v := range vertices {
		binary.Write(payload, binary.LittleEndian, v.X)
		binary.Write(payload, binary.LittleEndian, v.Y)
		binary.Write(payload, binary.LittleEndian, v.Z)
	}
	binary.Write(payload, binary.LittleEndian, indices)

	body := payload.Bytes()
	var flags uint8
	if compress {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("sim-mesh compressor: %w", err)
		}
		body = enc.EncodeAll(body, nil)
		enc.Close()
		flags |= flagCompressed
	}

	out := new(bytes.Buffer)
	out.WriteString(simMeshMagic)
	out.WriteByte(simMeshMajor)
	out.WriteByte(simMeshMinor)
	out.WriteByte(flags)
	binary.Write(out, binary.LittleEndian, uint32(len(vertices)))
	binary.Write(out, binary.LittleEndian, uint32(len(indices)))
	out.Write(body)

	return out.Bytes(), nil
}

// ParseSimMesh decodes a cache file.
func ParseSimMesh(data []byte) (*SimMesh, error) {
	const headerLen = 4 + 1 + 1 + 1 + 4 + 4
	if len(data) < headerLen {
		return nil, ErrTruncatedSimMeshData
	}
	if string(data[:4]) != simMeshMagic {
		return nil, ErrInvalidSimMeshMagic
	}

	version := SimMeshVersion{Major: data[4], Minor: data[5]}
	if version.Major != simMeshMajor {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSimMeshVersion, version)
	}

	flags := data[6]
	vertexCount := binary.LittleEndian.Uint32(data[7:11])
	indexCount := binary.LittleEndian.Uint32(data[11:15])
	if indexCount%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices is not a multiple of 3", ErrCorruptSimMeshData, indexCount)
	}

	body := data[headerLen:]
	if flags&flagCompressed != 0 {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("sim-mesh decompressor: %w", err)
		}
		body, err = dec.DecodeAll(body, nil)
		dec.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptSimMeshData, err)
		}
	}

	want := int(vertexCount)*3*8 + int(indexCount)*4
	if len(body) < want {
		return nil, ErrTruncatedSimMeshData
	}

	mesh := &SimMesh{
		Version:  version,
		Vertices: make([]math.Vec3, vertexCount),
		Indices:  make([]uint32, indexCount),
	}

	r := bytes.NewReader(body)
	for i := range mesh.Vertices {
		var v [3]float64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, ErrTruncatedSimMeshData
		}
		mesh.Vertices[i] = math.Vec3{X: v[0], Y: v[1], Z: v[2]}
	}
	if err := binary.Read(r, binary.LittleEndian, mesh.Indices); err != nil {
		return nil, ErrTruncatedSimMeshData
	}
	for _, idx := range mesh.Indices {
		if idx >= vertexCount {
			return nil, fmt.Errorf("%w: index %d, %d vertices", ErrCorruptSimMeshData, idx, vertexCount)
		}
	}

	return mesh, nil
}

// LoadSimMesh reads and decodes a cache file from disk.
func LoadSimMesh(path string) (*SimMesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sim-mesh %s: %w", path, err)
	}
	mesh, err := ParseSimMesh(data)
	if err != nil {
		return nil, fmt.Errorf("parsing sim-mesh %s: %w", path, err)
	}
	return mesh, nil
}

// SaveSimMesh encodes and writes a cache file to disk.
func SaveSimMesh(path string, vertices []math.Vec3, indices []uint32, compress bool) error {
	data, err := EncodeSimMesh(vertices, indices, compress)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing sim-mesh %s: %w", path, err)
	}
	return nil
}
