// Command export writes the test scenes to JSON, for use by external
// viewers and reference renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Polygons []jsonPolygon `json:"polygons"`
	Clip     []int         `json:"clip,omitempty"` // minX, minY, maxX, maxY
	Clipped  []jsonPolygon `json:"clipped,omitempty"`
}

type jsonPolygon struct {
	Color [3]float32    `json:"color"`
	Path  []jsonSegment `json:"path"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Polygons: polygonsToJSON(tc.Build()),
	}
	if b := tc.Clip; b != nil {
		jtc.Clip = []int{b.MinX, b.MinY, b.MaxX, b.MaxY}
		jtc.Clipped = polygonsToJSON(tc.Visible())
	}
	return jtc
}

func polygonsToJSON(polys []*polyfill.Polygon) []jsonPolygon {
	res := make([]jsonPolygon, len(polys))
	for i, p := range polys {
		c := p.Color()
		res[i] = jsonPolygon{
			Color: [3]float32{c.R, c.G, c.B},
			Path:  pathToJSON(p.Path().Iter()),
		}
	}
	return res
}

func pathToJSON(p path.Path) []jsonSegment {
	segs := []jsonSegment{}
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
