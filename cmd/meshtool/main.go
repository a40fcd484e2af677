// meshtool is a CLI utility for working with model files without opening
// the editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Faultbox/facetcraft/internal/engine/model"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info", "i":
		err = cmdInfo(args)
	case "normals":
		err = cmdNormals(args)
	case "subdivide", "sub":
		err = cmdSubdivide(args)
	case "translate", "mv":
		err = cmdTranslate(args)
	case "mirror":
		err = cmdMirror(args)
	case "merge":
		err = cmdMerge(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - model file utility

Usage:
  meshtool <command> [options]

Commands:
  info <model>                          Show counts and bounds
  normals [-o out] <model>              Recompute every face normal
  subdivide [-o out] <model> <n>        Split the open face into a fan of triangles
  translate [-o out] <model> <axis> <d> Move along x, y or z
  mirror [-o out] <model> <axis>        Reflect across the plane normal to an axis
  merge [-o out] <model> <other>...     Append other models' faces

Without -o the input file is replaced.

Examples:
  meshtool info model_0
  meshtool translate model_0 y 2.5
  meshtool merge -o body body_top body_bottom`)
}

// editFlags parses the shared -o flag and returns the remaining arguments.
func editFlags(name string, args []string, min int, usage string) (out string, rest []string, err error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	output := fs.String("o", "", "Write the result here instead of replacing the input")
	if err := fs.Parse(args); err != nil {
		return "", nil, err
	}
	if fs.NArg() < min {
		return "", nil, fmt.Errorf("usage: meshtool %s", usage)
	}
	out = *output
	if out == "" {
		out = fs.Arg(0)
	}
	return out, fs.Args(), nil
}

func load(path string) (*model.Mesh, error) {
	m := model.New()
	if err := m.Load(path); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return m, nil
}

func save(m *model.Mesh, path string) error {
	saved, err := m.Save(path)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d faces, %d vertices)\n", saved, m.FaceCount(), m.VertexCount())
	return nil
}

func cmdInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: meshtool info <model>")
	}

	m, err := load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Model:       %s\n", args[0])
	fmt.Printf("Coordinates: %d\n", m.CoordinateCount())
	fmt.Printf("Faces:       %d\n", m.FaceCount())
	fmt.Printf("Vertices:    %d\n", m.VertexCount())
	fmt.Printf("Open face:   %d vertices\n", len(m.OpenFace()))

	if b, ok := m.Bounds(); ok {
		fmt.Printf("Bounds:      %v .. %v\n", b.Min, b.Max)
		fmt.Printf("Size:        %v\n", b.Size())
	}

	// Faces by size
	sizes := make(map[int]int)
	for _, face := range m.Faces() {
		sizes[len(face)]++
	}
	fmt.Println()
	fmt.Println("Faces by size:")
	for n := 0; n <= maxKey(sizes); n++ {
		if c := sizes[n]; c > 0 {
			fmt.Printf("  %-4d %d\n", n, c)
		}
	}
	return nil
}

func maxKey(m map[int]int) int {
	max := 0
	for k := range m {
		if k > max {
			max = k
		}
	}
	return max
}

func cmdNormals(args []string) error {
	out, rest, err := editFlags("normals", args, 1, "normals [-o out] <model>")
	if err != nil {
		return err
	}
	m, err := load(rest[0])
	if err != nil {
		return err
	}
	m.RecalculateNormals()
	return save(m, out)
}

func cmdSubdivide(args []string) error {
	out, rest, err := editFlags("subdivide", args, 2, "subdivide [-o out] <model> <n>")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(rest[1])
	if err != nil || n < 2 {
		return fmt.Errorf("polygon count must be a whole number of at least 2, got %q", rest[1])
	}
	m, err := load(rest[0])
	if err != nil {
		return err
	}
	if len(m.OpenFace()) < 3 {
		return fmt.Errorf("open face has %d vertices, need at least 3", len(m.OpenFace()))
	}
	m.FaceResolution(n)
	return save(m, out)
}

func cmdTranslate(args []string) error {
	out, rest, err := editFlags("translate", args, 3, "translate [-o out] <model> <axis> <distance>")
	if err != nil {
		return err
	}
	axis, err := model.AxisIndex(rest[1])
	if err != nil {
		return err
	}
	d, err := strconv.ParseFloat(rest[2], 32)
	if err != nil {
		return fmt.Errorf("distance must be a number, got %q", rest[2])
	}
	m, err := load(rest[0])
	if err != nil {
		return err
	}
	if err := m.Translate(axis, float32(d)); err != nil {
		return err
	}
	return save(m, out)
}

func cmdMirror(args []string) error {
	out, rest, err := editFlags("mirror", args, 2, "mirror [-o out] <model> <axis>")
	if err != nil {
		return err
	}
	axis, err := model.AxisIndex(rest[1])
	if err != nil {
		return err
	}
	m, err := load(rest[0])
	if err != nil {
		return err
	}
	if err := m.Mirror(axis); err != nil {
		return err
	}
	return save(m, out)
}

func cmdMerge(args []string) error {
	out, rest, err := editFlags("merge", args, 2, "merge [-o out] <model> <other>...")
	if err != nil {
		return err
	}
	m, err := load(rest[0])
	if err != nil {
		return err
	}
	for _, path := range rest[1:] {
		other, err := load(path)
		if err != nil {
			return err
		}
		m.Merge(other)
	}
	return save(m, out)
}
