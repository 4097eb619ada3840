package canvas

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// SVGOption configures SVG serialization.
type SVGOption func(*svgWriter)

type svgWriter struct {
	background *Color
	precision  int
}

// WithBackground fills the whole viewport with a color before drawing.
func WithBackground(c Color) SVGOption {
	return func(w *svgWriter) { w.background = &c }
}

// WithPrecision sets the number of decimals for coordinates (default 2).
func WithPrecision(p int) SVGOption {
	return func(w *svgWriter) { w.precision = p }
}

// SVG serializes the canvas's recorded operations into an SVG document.
// Operation tags become element id attributes.
func (c *Canvas) SVG(opts ...SVGOption) []byte {
	w := svgWriter{precision: 2}
	for _, opt := range opts {
		opt(&w)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%.0f" height="%.0f">`+"\n",
		w.num(c.Width), w.num(c.Height), c.Width, c.Height)

	if w.background != nil {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"%s/>`+"\n",
			w.background.Hex(), opacityAttr("fill-opacity", w.background.A))
	}

	for _, o := range c.ops {
		switch o.kind {
		case opFillPath:
			w.writePath(&buf, o, fmt.Sprintf(` fill="%s"%s stroke="none"`,
				o.fill.Hex(), opacityAttr("fill-opacity", o.fill.A)))
		case opStrokePath:
			w.writePath(&buf, o, ` fill="none"`+w.strokeAttrs(o.stroke))
		case opFillText:
			w.writeText(&buf, o, fmt.Sprintf(` fill="%s"%s`,
				o.fill.Hex(), opacityAttr("fill-opacity", o.fill.A)))
		case opStrokeText:
			w.writeText(&buf, o, ` fill="none"`+w.strokeAttrs(o.stroke))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (w *svgWriter) writePath(buf *bytes.Buffer, o op, paint string) {
	fmt.Fprintf(buf, `  <path%s d="%s"%s/>`+"\n", idAttr(o.tag), w.pathData(o.path), paint)
}

func (w *svgWriter) writeText(buf *bytes.Buffer, o op, paint string) {
	var xform string
	if !o.xform.IsIdentity() {
		m := o.xform
		xform = fmt.Sprintf(` transform="matrix(%s %s %s %s %s %s)"`,
			w.num(m.A), w.num(m.B), w.num(m.C), w.num(m.D), w.num(m.E), w.num(m.F))
	}
	fmt.Fprintf(buf, `  <text%s x="%s" y="%s" font-family="%s" font-size="%s" text-anchor="%s"%s%s>%s</text>`+"\n",
		idAttr(o.tag), w.num(o.at.X), w.num(o.at.Y),
		escapeXML(o.font.Family), w.num(o.font.Size), o.anchor, xform, paint, escapeXML(o.text))
}

func (w *svgWriter) pathData(p *Path) string {
	var sb strings.Builder
	for i, s := range p.Segments {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch s.Op {
		case OpMoveTo:
			fmt.Fprintf(&sb, "M %s %s", w.num(s.P3.X), w.num(s.P3.Y))
		case OpLineTo:
			fmt.Fprintf(&sb, "L %s %s", w.num(s.P3.X), w.num(s.P3.Y))
		case OpCubicTo:
			fmt.Fprintf(&sb, "C %s %s %s %s %s %s",
				w.num(s.P1.X), w.num(s.P1.Y), w.num(s.P2.X), w.num(s.P2.Y), w.num(s.P3.X), w.num(s.P3.Y))
		case OpClose:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func (w *svgWriter) strokeAttrs(s Stroke) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, ` stroke="%s" stroke-width="%s"`, s.Color.Hex(), w.num(s.Width))
	sb.WriteString(opacityAttr("stroke-opacity", s.Color.A))
	if len(s.Dash) > 0 {
		parts := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			parts[i] = w.num(d)
		}
		fmt.Fprintf(&sb, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	if s.Cap != "" && s.Cap != CapButt {
		fmt.Fprintf(&sb, ` stroke-linecap="%s"`, s.Cap)
	}
	if s.Join != "" && s.Join != JoinMiter {
		fmt.Fprintf(&sb, ` stroke-linejoin="%s"`, s.Join)
	}
	return sb.String()
}

// num formats a coordinate at the writer's precision with trailing zeros
// trimmed, keeping documents compact.
func (w *svgWriter) num(v float64) string {
	s := fmt.Sprintf("%.*f", w.precision, v)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func opacityAttr(name string, a float64) string {
	if a >= 1 || a < 0 {
		return ""
	}
	return fmt.Sprintf(` %s="%.3g"`, name, a)
}

func idAttr(tag string) string {
	if tag == "" {
		return ""
	}
	return fmt.Sprintf(` id="%s"`, escapeXML(tag))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
