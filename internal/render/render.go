package render

import "github.com/salonpro/salonpro-api/internal/domain/entity"

// Render lays out a finalized invoice for the given profile and returns the
// ordered directive list. Rendering is pure: the same invoice, profile and
// branding always produce the same list.
func Render(inv *entity.Invoice, profile Profile, b Branding) []Directive {
	if profile == ProfileFull {
		return renderFull(inv, b)
	}
	return renderCompact(inv, b)
}

// sheet accumulates directives with a running vertical cursor.
type sheet struct {
	out []Directive
	y   float64
}

func (s *sheet) add(d Directive) {
	s.out = append(s.out, d)
}

func (s *sheet) text(x float64, t string, font string, size float64, opts ...func(*Directive)) {
	d := Directive{Kind: KindText, Text: t, X: x, Y: s.y, Font: font, Size: size, Align: AlignLeft}
	for _, o := range opts {
		o(&d)
	}
	s.add(d)
}

func (s *sheet) rule(x1, x2 float64) {
	s.add(Directive{Kind: KindLine, X: x1, Y: s.y, X2: x2, Y2: s.y})
}

func (s *sheet) down(dy float64) { s.y += dy }

func bold(d *Directive)         { d.Bold = true }
func underline(d *Directive)    { d.Underline = true }
func centered(d *Directive)     { d.Align = AlignCenter }
func rightAligned(d *Directive) { d.Align = AlignRight }

func colored(c Color) func(*Directive) {
	return func(d *Directive) { d.Color = c }
}
