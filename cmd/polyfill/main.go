// seehuhn.de/go/polyfill - polygon clipping and scan conversion
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command polyfill replays a polygon scene and writes the result as a PNG
// image.
//
// The scene is either one of the built-in test scenes, selected with
// -case (for example "clip_triangle_right"), or a JSON file of the form
//
//	{
//	  "width": 400, "height": 400,
//	  "polygons": [[[10, 10], [50, 10], [30, 50]]],
//	  "clip": [[0, 0], [40, 60]]
//	}
//
// Each polygon is entered vertex by vertex, as if clicked, and finished on
// its last vertex.  If "clip" gives two corners, the rectangle between them
// is dragged out and all polygons are clipped against it.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/testcases"
)

type sceneFile struct {
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Polygons [][][2]int `json:"polygons"`
	Clip     [][2]int   `json:"clip"`
}

func main() {
	in := flag.String("in", "", "read the scene from this JSON file")
	caseName := flag.String("case", "", "use the named built-in test scene")
	out := flag.String("o", "out.png", "name of the output PNG file")
	scale := flag.Int("scale", 1, "enlarge every pixel by this factor")
	flip := flag.Bool("flip", false, "put the origin in the bottom-left corner")
	verbose := flag.Bool("v", false, "log scene events to stderr")
	flag.Parse()

	if *verbose {
		polyfill.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	err := run(*in, *caseName, *out, *scale, *flip)
	if err != nil {
		fmt.Fprintln(os.Stderr, "polyfill:", err)
		os.Exit(1)
	}
}

func run(in, caseName, out string, scale int, flip bool) error {
	if scale < 1 {
		return fmt.Errorf("invalid scale %d", scale)
	}

	var tc testcases.TestCase
	var err error
	switch {
	case in != "" && caseName != "":
		return errors.New("-in and -case are mutually exclusive")
	case in != "":
		tc, err = loadScene(in)
	case caseName != "":
		tc, err = findCase(caseName)
	default:
		return errors.New("one of -in or -case is required")
	}
	if err != nil {
		return err
	}

	s := polyfill.NewScene(nil)
	if err := tc.Replay(s); err != nil {
		return fmt.Errorf("%s: %w", tc.Name, err)
	}

	fb := polyfill.NewFramebuffer(tc.Width, tc.Height)
	fb.FlipY = flip
	s.Render(fb)

	var img image.Image = fb
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, tc.Width*scale, tc.Height*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), fb, fb.Bounds(), draw.Src, nil)
		img = dst
	}

	return writePNG(out, img)
}

func loadScene(fname string) (testcases.TestCase, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return testcases.TestCase{}, err
	}
	var sf sceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return testcases.TestCase{}, fmt.Errorf("%s: %w", fname, err)
	}
	if sf.Width <= 0 || sf.Height <= 0 {
		return testcases.TestCase{}, fmt.Errorf("%s: invalid size %dx%d", fname, sf.Width, sf.Height)
	}

	tc := testcases.TestCase{
		Name:   fname,
		Width:  sf.Width,
		Height: sf.Height,
	}
	for _, poly := range sf.Polygons {
		pts := make([]polyfill.Point, len(poly))
		for i, xy := range poly {
			pts[i] = polyfill.Pt(xy[0], xy[1])
		}
		tc.Polygons = append(tc.Polygons, pts)
	}
	switch len(sf.Clip) {
	case 0:
		// no clipping
	case 2:
		b := polyfill.NewBounds(polyfill.Pt(sf.Clip[0][0], sf.Clip[0][1]), polyfill.Pt(sf.Clip[1][0], sf.Clip[1][1]))
		tc.Clip = &b
	default:
		return testcases.TestCase{}, fmt.Errorf("%s: clip needs two corners, got %d", fname, len(sf.Clip))
	}
	return tc, nil
}

func findCase(name string) (testcases.TestCase, error) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if category+"_"+tc.Name == name {
				return tc, nil
			}
		}
	}
	return testcases.TestCase{}, fmt.Errorf("unknown test case %q", name)
}

func writePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
