package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-yart/pkg/core"
)

// maxPreallocatedElements bounds slice capacity taken from header counts
const maxPreallocatedElements = 1 << 16

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format      string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version     string // Usually "1.0"
	VertexCount int
	FaceCount   int
	VertexProps []PLYProperty
	FaceProps   []PLYProperty
	HasNormals  bool

	// Element order as declared, so unknown elements can be skipped in place
	elements []plyElement
}

type plyElement struct {
	name  string
	count int
	props []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// PLYData contains the mesh data loaded from a PLY file
type PLYData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Normals  []core.Vec3 // Per-vertex normals (nx, ny, nz) - empty if not present
	Faces    []int       // Triangle indices (3 per triangle), polygons are fan-triangulated
}

// LoadPLY loads a PLY file and returns its vertex and face data
func LoadPLY(filename string) (*PLYData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	data, err := ParsePLY(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// ParsePLY reads a PLY stream in ascii, binary_little_endian or
// binary_big_endian format
func ParsePLY(r io.Reader) (*PLYData, error) {
	reader := bufio.NewReader(r)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var source plyValueReader
	switch header.Format {
	case "ascii":
		source = &asciiValueReader{scanner: newWordScanner(reader)}
	case "binary_little_endian":
		source = &binaryValueReader{reader: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		source = &binaryValueReader{reader: reader, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %s", header.Format)
	}

	// Header counts are untrusted, so preallocation is capped
	vertexCapacity := min(header.VertexCount, maxPreallocatedElements)
	data := &PLYData{
		Vertices: make([]core.Vec3, 0, vertexCapacity),
		Faces:    make([]int, 0, min(header.FaceCount, maxPreallocatedElements)*3),
	}
	if header.HasNormals {
		data.Normals = make([]core.Vec3, 0, vertexCapacity)
	}

	for _, element := range header.elements {
		for i := 0; i < element.count; i++ {
			var err error
			switch element.name {
			case "vertex":
				err = readVertex(source, element.props, data, header.HasNormals)
			case "face":
				err = readFace(source, element.props, data)
			default:
				err = skipElement(source, element.props)
			}
			if err != nil {
				return nil, fmt.Errorf("failed to read %s %d: %w", element.name, i, err)
			}
		}
	}

	for _, index := range data.Faces {
		if index < 0 || index >= len(data.Vertices) {
			return nil, fmt.Errorf("face index %d out of range for %d vertices", index, len(data.Vertices))
		}
	}

	return data, nil
}

// parsePLYHeader parses the header up to and including the end_header line
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}

	first, err := reader.ReadString('\n')
	if err != nil || strings.TrimSpace(first) != "ply" {
		return nil, fmt.Errorf("missing ply magic number")
	}

	var current *plyElement
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("unexpected end of header: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid format line: %q", line)
			}
			header.Format = parts[1]
			header.Version = parts[2]
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			header.elements = append(header.elements, plyElement{name: parts[1], count: count})
			current = &header.elements[len(header.elements)-1]

			switch current.name {
			case "vertex":
				header.VertexCount = count
			case "face":
				header.FaceCount = count
			}
		case "property":
			if current == nil {
				return nil, fmt.Errorf("property before element: %q", line)
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("failed to parse property: %w", err)
			}
			current.props = append(current.props, prop)

			switch current.name {
			case "vertex":
				header.VertexProps = append(header.VertexProps, prop)
				if prop.Name == "nx" || prop.Name == "ny" || prop.Name == "nz" {
					header.HasNormals = true
				}
			case "face":
				header.FaceProps = append(header.FaceProps, prop)
			}
		}
	}

	return header, nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		return PLYProperty{IsList: true, ListType: parts[1], DataType: parts[2], Name: parts[3]}, nil
	}
	return PLYProperty{Type: parts[0], Name: parts[1]}, nil
}

func readVertex(source plyValueReader, props []PLYProperty, data *PLYData, hasNormals bool) error {
	var position, normal core.Vec3
	for _, prop := range props {
		if prop.IsList {
			if err := skipList(source, prop); err != nil {
				return err
			}
			continue
		}

		value, err := source.read(prop.Type)
		if err != nil {
			return err
		}
		switch prop.Name {
		case "x":
			position.X = value
		case "y":
			position.Y = value
		case "z":
			position.Z = value
		case "nx":
			normal.X = value
		case "ny":
			normal.Y = value
		case "nz":
			normal.Z = value
		}
	}

	data.Vertices = append(data.Vertices, position)
	if hasNormals {
		data.Normals = append(data.Normals, normal)
	}
	return nil
}

func readFace(source plyValueReader, props []PLYProperty, data *PLYData) error {
	for _, prop := range props {
		if !prop.IsList || (prop.Name != "vertex_indices" && prop.Name != "vertex_index") {
			if err := skipProperty(source, prop); err != nil {
				return err
			}
			continue
		}

		count, err := readListCount(source, prop)
		if err != nil {
			return err
		}
		indices := make([]int, 0, min(count, maxPreallocatedElements))
		for i := 0; i < count; i++ {
			value, err := source.read(prop.DataType)
			if err != nil {
				return err
			}
			indices = append(indices, int(value))
		}
		if len(indices) < 3 {
			return fmt.Errorf("face with %d vertices", len(indices))
		}

		// Fan triangulation around the first vertex
		for i := 1; i+1 < len(indices); i++ {
			data.Faces = append(data.Faces, indices[0], indices[i], indices[i+1])
		}
	}
	return nil
}

func skipElement(source plyValueReader, props []PLYProperty) error {
	for _, prop := range props {
		if err := skipProperty(source, prop); err != nil {
			return err
		}
	}
	return nil
}

func skipProperty(source plyValueReader, prop PLYProperty) error {
	if prop.IsList {
		return skipList(source, prop)
	}
	_, err := source.read(prop.Type)
	return err
}

func skipList(source plyValueReader, prop PLYProperty) error {
	count, err := readListCount(source, prop)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if _, err := source.read(prop.DataType); err != nil {
			return err
		}
	}
	return nil
}

// readListCount reads the length prefix of a list property
func readListCount(source plyValueReader, prop PLYProperty) (int, error) {
	value, err := source.read(prop.ListType)
	if err != nil {
		return 0, err
	}
	count := int(value)
	if value < 0 || float64(count) != value {
		return 0, fmt.Errorf("invalid %s list length: %v", prop.Name, value)
	}
	return count, nil
}

// plyValueReader reads one scalar of a PLY data type as float64
type plyValueReader interface {
	read(dataType string) (float64, error)
}

type binaryValueReader struct {
	reader io.Reader
	order  binary.ByteOrder
	buf    [8]byte
}

func (b *binaryValueReader) read(dataType string) (float64, error) {
	size := getTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}
	buf := b.buf[:size]
	if _, err := io.ReadFull(b.reader, buf); err != nil {
		return 0, err
	}

	switch dataType {
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(buf))), nil
	case "double", "float64":
		return math.Float64frombits(b.order.Uint64(buf)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(buf))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(buf)), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(buf))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(buf)), nil
	case "char", "int8":
		return float64(int8(buf[0])), nil
	default: // uchar, uint8
		return float64(buf[0]), nil
	}
}

type asciiValueReader struct {
	scanner *bufio.Scanner
}

func newWordScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return scanner
}

func (a *asciiValueReader) read(dataType string) (float64, error) {
	if getTypeSize(dataType) == 0 {
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(a.scanner.Text(), 64)
}

// getTypeSize returns the size in bytes of a PLY data type, or 0 if unknown
func getTypeSize(dataType string) int {
	switch dataType {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 0
	}
}
