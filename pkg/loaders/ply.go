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

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format   string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version  string // Usually "1.0"
	Elements []PLYElement
}

// PLYElement is one element block of a PLY file, such as the vertex or face list
type PLYElement struct {
	Name  string
	Count int
	Props []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// PLYData contains the triangle mesh loaded from a PLY file
type PLYData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Faces    []int       // Triangle indices (3 per triangle)
}

// Element returns the element with the given name, or nil
func (h *PLYHeader) Element(name string) *PLYElement {
	for i := range h.Elements {
		if h.Elements[i].Name == name {
			return &h.Elements[i]
		}
	}
	return nil
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

// ParsePLY reads an ASCII or binary PLY stream. Polygonal faces are split into triangle fans.
func ParsePLY(r io.Reader) (*PLYData, error) {
	reader := bufio.NewReader(r)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values plyValueReader
	switch header.Format {
	case "binary_little_endian":
		values = &binaryValueReader{r: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryValueReader{r: reader, order: binary.BigEndian}
	case "ascii":
		scanner := bufio.NewScanner(reader)
		scanner.Split(bufio.ScanWords)
		values = &asciiValueReader{scanner: scanner}
	default:
		return nil, fmt.Errorf("%w: unsupported PLY format %q", core.ErrMalformedInput, header.Format)
	}

	data := &PLYData{}
	for _, element := range header.Elements {
		if err := readPLYElement(values, element, data); err != nil {
			return nil, fmt.Errorf("failed to read PLY %s data: %w", element.Name, err)
		}
	}

	for i, index := range data.Faces {
		if index < 0 || index >= len(data.Vertices) {
			return nil, fmt.Errorf("%w: face index %d at position %d is outside [0, %d)", core.ErrMalformedInput, index, i, len(data.Vertices))
		}
	}

	return data, nil
}

// ReadPLY parses a PLY mesh, scales and translates its vertices and adds one shaded triangle
// per face to acc. It returns the number of triangles added.
func ReadPLY(r io.Reader, acc core.Accelerator, shader core.Shader, scale float64, translate core.Vec3) (int, error) {
	if r == nil {
		return 0, fmt.Errorf("%w: PLY reader needs an input", core.ErrInvalidArgument)
	}
	if err := checkPLYTransform(scale, translate); err != nil {
		return 0, err
	}

	data, err := ParsePLY(r)
	if err != nil {
		return 0, err
	}
	return addPLYMesh(data, acc, shader, scale, translate)
}

// ReadPLYFile reads a PLY mesh from filename. See ReadPLY.
func ReadPLYFile(filename string, acc core.Accelerator, shader core.Shader, scale float64, translate core.Vec3) (int, error) {
	if filename == "" {
		return 0, fmt.Errorf("%w: empty PLY filename", core.ErrInvalidArgument)
	}
	if err := checkPLYTransform(scale, translate); err != nil {
		return 0, err
	}

	data, err := LoadPLY(filename)
	if err != nil {
		return 0, err
	}
	n, err := addPLYMesh(data, acc, shader, scale, translate)
	if err != nil {
		return n, fmt.Errorf("%s: %w", filename, err)
	}
	return n, nil
}

func checkPLYTransform(scale float64, translate core.Vec3) error {
	if !core.IsFinite(scale) || !translate.IsFinite() {
		return fmt.Errorf("%w: PLY transform must be finite (scale %g, translate %v)", core.ErrInvalidArgument, scale, translate)
	}
	return nil
}

func addPLYMesh(data *PLYData, acc core.Accelerator, shader core.Shader, scale float64, translate core.Vec3) (int, error) {
	vertices := make([]core.Vec3, len(data.Vertices))
	for i, v := range data.Vertices {
		vertices[i] = v.Multiply(scale).Add(translate)
	}
	return geometry.AddTriangleMesh(acc, vertices, data.Faces, shader)
}

// parsePLYHeader consumes the header up to and including end_header, leaving the reader at
// the start of the element data
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}
	var current *PLYElement

	for lineNum := 1; ; lineNum++ {
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return nil, fmt.Errorf("%w: missing end_header", core.ErrMalformedInput)
			}
			return nil, fmt.Errorf("error reading header: %w", err)
		}
		line = strings.TrimSpace(line)

		if lineNum == 1 {
			if line != "ply" {
				return nil, fmt.Errorf("%w: missing ply magic number", core.ErrMalformedInput)
			}
			continue
		}
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) >= 3 {
				header.Format = parts[1]
				header.Version = parts[2]
			}
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("%w: invalid element definition %q", core.ErrMalformedInput, line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("%w: invalid element count: %s", core.ErrMalformedInput, parts[2])
			}
			header.Elements = append(header.Elements, PLYElement{Name: parts[1], Count: count})
			current = &header.Elements[len(header.Elements)-1]
		case "property":
			if current == nil {
				return nil, fmt.Errorf("%w: property before any element", core.ErrMalformedInput)
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("failed to parse property: %w", err)
			}
			current.Props = append(current.Props, prop)
		default:
			return nil, fmt.Errorf("%w: unknown header line %q", core.ErrMalformedInput, line)
		}
	}

	return header, nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("%w: invalid property definition", core.ErrMalformedInput)
	}

	prop := PLYProperty{}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("%w: invalid list property definition", core.ErrMalformedInput)
		}
		prop.IsList = true
		prop.ListType = parts[1]
		prop.DataType = parts[2]
		prop.Name = parts[3]
	} else {
		prop.Type = parts[0]
		prop.Name = parts[1]
	}

	for _, typ := range []string{prop.Type, prop.ListType, prop.DataType} {
		if typ != "" && getTypeSize(typ) == 0 {
			return PLYProperty{}, fmt.Errorf("%w: unsupported data type: %s", core.ErrMalformedInput, typ)
		}
	}

	return prop, nil
}

// readPLYElement reads every instance of element. Vertex positions and face index lists
// are collected into data; everything else is read and discarded.
func readPLYElement(values plyValueReader, element PLYElement, data *PLYData) error {
	for i := 0; i < element.Count; i++ {
		var position [3]float64
		for _, prop := range element.Props {
			if prop.IsList {
				list, err := readPLYList(values, prop)
				if err != nil {
					return fmt.Errorf("%s %d, property %s: %w", element.Name, i, prop.Name, err)
				}
				if element.Name == "face" && (prop.Name == "vertex_indices" || prop.Name == "vertex_index") {
					if err := appendFan(data, list); err != nil {
						return fmt.Errorf("face %d: %w", i, err)
					}
				}
				continue
			}

			value, err := values.scalar(prop.Type)
			if err != nil {
				return fmt.Errorf("%s %d, property %s: %w", element.Name, i, prop.Name, err)
			}
			if element.Name == "vertex" {
				switch prop.Name {
				case "x":
					position[0] = value
				case "y":
					position[1] = value
				case "z":
					position[2] = value
				}
			}
		}

		if element.Name == "vertex" {
			vertex := core.NewVec3(position[0], position[1], position[2])
			if !vertex.IsFinite() {
				return fmt.Errorf("%w: vertex %d is not finite: %v", core.ErrMalformedInput, i, vertex)
			}
			data.Vertices = append(data.Vertices, vertex)
		}
	}
	return nil
}

// maxPLYListLength bounds the length a list property may declare
const maxPLYListLength = 1 << 16

// readPLYList reads one list property. The list grows as values arrive, so a declared
// length the data cannot back ends in a read error rather than a huge allocation.
func readPLYList(values plyValueReader, prop PLYProperty) ([]float64, error) {
	count, err := values.scalar(prop.ListType)
	if err != nil {
		return nil, err
	}
	if count < 0 || count != math.Trunc(count) || count > maxPLYListLength {
		return nil, fmt.Errorf("%w: invalid list length %g", core.ErrMalformedInput, count)
	}

	n := int(count)
	list := make([]float64, 0, min(n, 16))
	for i := 0; i < n; i++ {
		value, err := values.scalar(prop.DataType)
		if err != nil {
			return nil, err
		}
		list = append(list, value)
	}
	return list, nil
}

// appendFan triangulates a polygon around its first vertex
func appendFan(data *PLYData, polygon []float64) error {
	if len(polygon) < 3 {
		return fmt.Errorf("%w: face needs at least 3 vertices, got %d", core.ErrMalformedInput, len(polygon))
	}
	for _, index := range polygon {
		if index < 0 || index != math.Trunc(index) || index > math.MaxInt32 {
			return fmt.Errorf("%w: invalid vertex index %g", core.ErrMalformedInput, index)
		}
	}
	for i := 1; i+1 < len(polygon); i++ {
		data.Faces = append(data.Faces, int(polygon[0]), int(polygon[i]), int(polygon[i+1]))
	}
	return nil
}

// plyValueReader reads one scalar of a PLY data type from the element data
type plyValueReader interface {
	scalar(dataType string) (float64, error)
}

type binaryValueReader struct {
	r     io.Reader
	order binary.ByteOrder
}

func (b *binaryValueReader) scalar(dataType string) (float64, error) {
	var buf [8]byte
	size := getTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("%w: unsupported data type: %s", core.ErrMalformedInput, dataType)
	}
	if _, err := io.ReadFull(b.r, buf[:size]); err != nil {
		return 0, fmt.Errorf("%w: truncated element data: %v", core.ErrMalformedInput, err)
	}

	switch dataType {
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(buf[:4]))), nil
	case "double", "float64":
		return math.Float64frombits(b.order.Uint64(buf[:8])), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(buf[:4]))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(buf[:4])), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(buf[:2]))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(buf[:2])), nil
	case "char", "int8":
		return float64(int8(buf[0])), nil
	default: // uchar, uint8
		return float64(buf[0]), nil
	}
}

type asciiValueReader struct {
	scanner *bufio.Scanner
}

func (a *asciiValueReader) scalar(dataType string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: unexpected end of element data", core.ErrMalformedInput)
	}
	token := a.scanner.Text()
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s value %q", core.ErrMalformedInput, dataType, token)
	}
	return value, nil
}

// getTypeSize returns the size in bytes of a PLY data type, 0 for unknown types
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
