package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/touchcone/internal/engine/mesh"
	"github.com/Faultbox/touchcone/internal/engine/scene"
	"github.com/Faultbox/touchcone/internal/engine/touch"
	"github.com/Faultbox/touchcone/pkg/math"
)

func cmdStats(out io.Writer, args []string) error {
	fs := newFlagSet("stats", out)
	params := meshFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	strip, err := mesh.GenerateStrip(*params)
	if err != nil {
		return err
	}
	s := strip.Stats()

	fmt.Fprintf(out, "Slices:  %d\n", params.Slices)
	fmt.Fprintf(out, "Radius:  %g\n", params.Radius)
	fmt.Fprintf(out, "Height:  %g\n", params.Height)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "strip:")
	fmt.Fprintf(out, "  body vertices  %d\n", s.BodyVertices)
	fmt.Fprintf(out, "  disk vertices  %d\n", s.DiskVertices)
	fmt.Fprintf(out, "  vertex bytes   %d\n", s.Vertices*mesh.VertexStride*4)

	fmt.Fprintln(out, "indexed:")
	indexed, err := mesh.GenerateIndexed(*params)
	if err != nil {
		// Strip stats are still useful when 8-bit indices can't address the mesh.
		fmt.Fprintf(out, "  unavailable: %v\n", err)
		return nil
	}
	s = indexed.Stats()
	fmt.Fprintf(out, "  vertices       %d\n", s.Vertices)
	fmt.Fprintf(out, "  body indices   %d\n", s.BodyIndices)
	fmt.Fprintf(out, "  disk indices   %d\n", s.DiskIndices)
	fmt.Fprintf(out, "  vertex bytes   %d\n", s.Vertices*mesh.VertexStride*4)
	fmt.Fprintf(out, "  index bytes    %d\n", s.BodyIndices+s.DiskIndices)
	return nil
}

type dumpVertex struct {
	Position [3]float32 `yaml:"position,flow"`
	Color    [4]float32 `yaml:"color,flow"`
}

type dumpDoc struct {
	Backend       scene.Backend `yaml:"backend"`
	Params        mesh.Params   `yaml:"params"`
	Stats         mesh.Stats    `yaml:"stats"`
	Body          []dumpVertex  `yaml:"body,omitempty"`
	Disk          []dumpVertex  `yaml:"disk,omitempty"`
	Vertices      []dumpVertex  `yaml:"vertices,omitempty"`
	BodyTriangles [][3]uint8    `yaml:"body_triangles,omitempty,flow"`
	DiskTriangles [][3]uint8    `yaml:"disk_triangles,omitempty,flow"`
}

func toDump(vs []mesh.Vertex) []dumpVertex {
	out := make([]dumpVertex, len(vs))
	for i, v := range vs {
		out[i] = dumpVertex{
			Position: [3]float32{v.Position.X, v.Position.Y, v.Position.Z},
			Color:    [4]float32{v.Color.X, v.Color.Y, v.Color.Z, v.Color.W},
		}
	}
	return out
}

func triangles(indices []uint8) [][3]uint8 {
	out := make([][3]uint8, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		out = append(out, [3]uint8{indices[i], indices[i+1], indices[i+2]})
	}
	return out
}

func buildDump(backend scene.Backend, params mesh.Params) (*dumpDoc, error) {
	doc := &dumpDoc{Backend: backend, Params: params}
	switch backend {
	case scene.BackendStrip:
		m, err := mesh.GenerateStrip(params)
		if err != nil {
			return nil, err
		}
		doc.Stats = m.Stats()
		doc.Body = toDump(m.Body)
		doc.Disk = toDump(m.Disk)
	case scene.BackendIndexed:
		m, err := mesh.GenerateIndexed(params)
		if err != nil {
			return nil, err
		}
		doc.Stats = m.Stats()
		doc.Vertices = toDump(m.Vertices)
		doc.BodyTriangles = triangles(m.BodyIndices())
		doc.DiskTriangles = triangles(m.DiskIndices())
	default:
		return nil, fmt.Errorf("%w: %d", scene.ErrUnknownBackend, int(backend))
	}
	return doc, nil
}

func cmdDump(out io.Writer, args []string) error {
	fs := newFlagSet("dump", out)
	params := meshFlags(fs)
	backend := backendFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, err := buildDump(*backend, *params)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding mesh: %w", err)
	}
	return enc.Close()
}

func cmdTouch(out io.Writer, stdin io.Reader, args []string) error {
	fs := newFlagSet("touch", out)
	width := fs.Int("width", 320, "View width in pixels")
	height := fs.Int("height", 480, "View height in pixels")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return replay(out, in, *width, *height)
}

// replay feeds "down|move|up X Y [finger]" lines through a pointer tracker
// and the rotation mapper, printing the state after each event. Events from
// fingers other than the one that pressed first are skipped.
func replay(out io.Writer, in io.Reader, width, height int) error {
	mapper := touch.NewMapper()
	mapper.SetPivot(width, height)
	var tracker touch.Tracker

	fmt.Fprintf(out, "pivot %d %d\n", mapper.Pivot().X, mapper.Pivot().Y)

	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		kind, loc, id, err := parseEvent(text)
		if err != nil {
			return fmt.Errorf("line %d: %q: %w", line, text, err)
		}

		switch kind {
		case "down":
			if !tracker.Press(id, loc) {
				continue
			}
			err = mapper.FingerDown(loc)
		case "move":
			prev, ok := tracker.Drag(id, loc)
			if !ok {
				continue
			}
			err = mapper.FingerMove(prev, loc)
		case "up":
			if !tracker.Release(id, loc) {
				continue
			}
			mapper.FingerUp(loc)
		default:
			return fmt.Errorf("line %d: unknown event %q", line, kind)
		}

		s := mapper.State()
		fmt.Fprintf(out, "%-4s %4d %4d  angle %8.3f  scale %.2f", kind, loc.X, loc.Y, s.Angle, s.Scale)
		if err != nil {
			fmt.Fprintf(out, "  (%v)", err)
		}
		fmt.Fprintln(out)
	}
	return scanner.Err()
}

// parseEvent splits "kind X Y [finger]". The finger defaults to 0.
func parseEvent(text string) (string, math.IVec2, touch.PointerID, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 && len(fields) != 4 {
		return "", math.IVec2{}, 0, fmt.Errorf("want \"kind X Y [finger]\", got %d fields", len(fields))
	}

	var loc math.IVec2
	var err error
	if loc.X, err = strconv.Atoi(fields[1]); err != nil {
		return "", loc, 0, err
	}
	if loc.Y, err = strconv.Atoi(fields[2]); err != nil {
		return "", loc, 0, err
	}

	var id int64
	if len(fields) == 4 {
		if id, err = strconv.ParseInt(fields[3], 10, 64); err != nil {
			return "", loc, 0, err
		}
	}
	return strings.ToLower(fields[0]), loc, touch.PointerID(id), nil
}
