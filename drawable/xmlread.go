package drawable

import (
	"encoding/xml"
	"errors"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/benoitkugler/vecdraw/pathdata"
)

// This file builds element trees from a small XML description
// vocabulary: <group>, <circle> and <shape>, with drawing attributes
// shared by all three. Path data is compiled at read time, so a
// returned tree is ready to render and immutable.

// ErrorMode dictates how the reader reacts to elements it does not
// handle.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota
	WarnErrorMode
	StrictErrorMode
)

var (
	errParamMismatch = errors.New("param mismatch")
	errNoRoot        = errors.New("no root group in drawable description")
)

// ReadTreeStream decodes a drawable description from the reader.
// The outermost element must be a <group>; its attributes act as the
// base of the inheritance chain, so a description meant for direct
// rendering should declare at least stroke and stroke-width there.
func ReadTreeStream(stream io.Reader, errMode ErrorMode) (*Group, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		root  *Group
		stack []*Group
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			switch se.Name.Local {
			case "group":
				params, err := readParams(se.Attr)
				if err != nil {
					return nil, err
				}
				g := &Group{Params: params}
				if len(stack) == 0 {
					if root != nil {
						return nil, errors.New("multiple root groups in drawable description")
					}
					root = g
				} else {
					parent := stack[len(stack)-1]
					parent.Children = append(parent.Children, g)
				}
				stack = append(stack, g)
			case "circle":
				if len(stack) == 0 {
					return nil, errNoRoot
				}
				el, err := readCircle(se.Attr)
				if err != nil {
					return nil, err
				}
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			case "shape":
				if len(stack) == 0 {
					return nil, errNoRoot
				}
				el, err := readShape(se.Attr)
				if err != nil {
					return nil, err
				}
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			default:
				errStr := "cannot process element " + se.Name.Local
				if errMode == StrictErrorMode {
					return nil, errors.New(errStr)
				} else if errMode == WarnErrorMode {
					log.Println(errStr)
				}
			}
		case xml.EndElement:
			if se.Name.Local == "group" && len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if root == nil {
		return nil, errNoRoot
	}
	return root, nil
}

// ReadTree reads a drawable description from the named file.
func ReadTree(file string, errMode ErrorMode) (*Group, error) {
	fin, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadTreeStream(fin, errMode)
}

func readCircle(attrs []xml.Attr) (*Circle, error) {
	params, err := readParams(attrs)
	if err != nil {
		return nil, err
	}
	el := &Circle{Params: params}
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			el.Center.X, err = parseBasicFloat(attr.Value)
		case "cy":
			el.Center.Y, err = parseBasicFloat(attr.Value)
		case "r":
			el.Radius, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	return el, nil
}

func readShape(attrs []xml.Attr) (*PathShape, error) {
	params, err := readParams(attrs)
	if err != nil {
		return nil, err
	}
	data := ""
	for _, attr := range attrs {
		if attr.Name.Local == "d" {
			data = attr.Value
		}
	}
	return NewPathShape(data, params)
}

// readParams collects the recognized drawing attributes; attributes
// that belong to a specific element kind (cx, d, ...) are skipped
// here and read by the element readers.
func readParams(attrs []xml.Attr) (p Params, err error) {
	for _, attr := range attrs {
		k := strings.ToLower(attr.Name.Local)
		v := strings.TrimSpace(attr.Value)
		switch k {
		case "fill":
			p.FillColor, err = parseColor(v)
		case "stroke":
			p.StrokeColor, err = parseColor(v)
		case "stroke-width":
			var w float64
			if w, err = parseBasicFloat(v); err == nil {
				p.StrokeWidth = &w
			}
		case "stroke-linecap":
			switch v {
			case "butt":
				p.LineCap = ButtCap
			case "round":
				p.LineCap = RoundCap
			case "square":
				p.LineCap = SquareCap
			}
		case "stroke-linejoin":
			switch v {
			case "miter":
				p.LineJoin = MiterJoin
			case "round":
				p.LineJoin = RoundJoin
			case "bevel":
				p.LineJoin = BevelJoin
			}
		case "stroke-miterlimit":
			var l float64
			if l, err = parseBasicFloat(v); err == nil {
				p.MiterLimit = &l
			}
		case "translate":
			var pts []float64
			if pts, err = parseFloatList(v); err == nil {
				if len(pts) != 2 {
					return p, errParamMismatch
				}
				p.Translate = &pathdata.Point{X: pts[0], Y: pts[1]}
			}
		case "matrix":
			var pts []float64
			if pts, err = parseFloatList(v); err == nil {
				if len(pts) != 6 {
					return p, errParamMismatch
				}
				p.Transform = &Matrix2D{
					A: pts[0], B: pts[1], C: pts[2],
					D: pts[3], E: pts[4], F: pts[5],
				}
			}
		}
		if err != nil {
			return p, err
		}
	}
	return p, nil
}

func parseBasicFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// splitOnCommaOrSpace returns a list of strings after splitting the
// input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}

func parseFloatList(s string) ([]float64, error) {
	fields := splitOnCommaOrSpace(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := parseBasicFloat(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
