package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/geometry"
)

// defaultGroupName collects faces declared before any g statement
const defaultGroupName = "default"

// ObjData holds the result of parsing a Wavefront OBJ stream: the raw
// vertex data plus the triangles grouped by their g statement. Faces with
// more than three vertices are fan-triangulated; faces referencing vertex
// normals become smooth triangles. Lines that are not recognized are
// counted and skipped, never fatal.
type ObjData struct {
	Vertices     []core.Tuple
	Normals      []core.Tuple
	Groups       map[string]*geometry.Group
	GroupOrder   []string
	IgnoredLines int
}

// LoadObjFile parses an OBJ file from disk
func LoadObjFile(filename string) (*ObjData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	return LoadObj(file)
}

// LoadObj parses OBJ records from a reader
func LoadObj(r io.Reader) (*ObjData, error) {
	data := &ObjData{
		Groups: map[string]*geometry.Group{},
	}
	data.addGroup(defaultGroupName)
	currentGroup := defaultGroupName

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			point, ok := parseTriple(fields[1:], core.NewPoint)
			if !ok {
				data.IgnoredLines++
				continue
			}
			data.Vertices = append(data.Vertices, point)
		case "vn":
			normal, ok := parseTriple(fields[1:], core.NewVector)
			if !ok {
				data.IgnoredLines++
				continue
			}
			data.Normals = append(data.Normals, normal)
		case "f":
			if !data.parseFace(fields[1:], currentGroup) {
				data.IgnoredLines++
			}
		case "g":
			if len(fields) != 2 {
				data.IgnoredLines++
				continue
			}
			currentGroup = fields[1]
			data.addGroup(currentGroup)
		default:
			data.IgnoredLines++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %w", err)
	}

	return data, nil
}

// DefaultGroup returns the group collecting ungrouped faces
func (d *ObjData) DefaultGroup() *geometry.Group {
	return d.Groups[defaultGroupName]
}

// ToGroup wraps every parsed group under a single root group, in
// declaration order, ready to be added to a world
func (d *ObjData) ToGroup() *geometry.Group {
	root := geometry.NewGroup()
	for _, name := range d.GroupOrder {
		group := d.Groups[name]
		if len(group.Children()) > 0 {
			root.AddChild(group)
		}
	}
	return root
}

func (d *ObjData) addGroup(name string) {
	if _, exists := d.Groups[name]; exists {
		return
	}
	d.Groups[name] = geometry.NewGroup()
	d.GroupOrder = append(d.GroupOrder, name)
}

// parseTriple parses three floats into a point or vector
func parseTriple(fields []string, build func(x, y, z float64) core.Tuple) (core.Tuple, bool) {
	if len(fields) != 3 {
		return core.Tuple{}, false
	}

	var values [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return core.Tuple{}, false
		}
		values[i] = value
	}
	return build(values[0], values[1], values[2]), true
}

// faceRef is one v or v/vt/vn reference within a face statement. Indices
// are 1-based as in the file; normal is 0 when absent.
type faceRef struct {
	vertex int
	normal int
}

// parseFace triangulates one f statement into the current group
func (d *ObjData) parseFace(fields []string, groupName string) bool {
	if len(fields) < 3 {
		return false
	}

	refs := make([]faceRef, 0, len(fields))
	for _, field := range fields {
		ref, ok := d.parseFaceRef(field)
		if !ok {
			return false
		}
		refs = append(refs, ref)
	}

	group := d.Groups[groupName]

	// Fan triangulation: every consecutive vertex pair forms a triangle
	// with the first vertex
	for i := 1; i < len(refs)-1; i++ {
		r1, r2, r3 := refs[0], refs[i], refs[i+1]

		p1 := d.Vertices[r1.vertex-1]
		p2 := d.Vertices[r2.vertex-1]
		p3 := d.Vertices[r3.vertex-1]

		if r1.normal > 0 && r2.normal > 0 && r3.normal > 0 {
			n1 := d.Normals[r1.normal-1]
			n2 := d.Normals[r2.normal-1]
			n3 := d.Normals[r3.normal-1]
			group.AddChild(geometry.NewSmoothTriangle(p1, p2, p3, n1, n2, n3))
		} else {
			group.AddChild(geometry.NewTriangle(p1, p2, p3))
		}
	}

	return true
}

// parseFaceRef decodes a face vertex reference: "v", "v/vt", "v//vn" or
// "v/vt/vn". Texture indices are parsed but discarded.
func (d *ObjData) parseFaceRef(field string) (faceRef, bool) {
	parts := strings.Split(field, "/")
	if len(parts) > 3 {
		return faceRef{}, false
	}

	vertex, err := strconv.Atoi(parts[0])
	if err != nil || vertex < 1 || vertex > len(d.Vertices) {
		return faceRef{}, false
	}

	ref := faceRef{vertex: vertex}

	if len(parts) == 3 && parts[2] != "" {
		normal, err := strconv.Atoi(parts[2])
		if err != nil || normal < 1 || normal > len(d.Normals) {
			return faceRef{}, false
		}
		ref.normal = normal
	}

	return ref, true
}
