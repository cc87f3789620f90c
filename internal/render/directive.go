// Package render lays out a finalized invoice as an ordered list of draw
// directives. The list is pure data: absolute positions in millimetres plus
// styling, with no binding to any document backend. A painter (PDF or
// otherwise) executes the list; layout logic stays testable without one.
package render

// Profile selects the receipt layout.
type Profile string

const (
	// ProfileCompact is the narrow thermal receipt used for appointment bills.
	ProfileCompact Profile = "compact"
	// ProfileFull is the branded A4 document with the payment-summary table
	// and the diagonal watermark.
	ProfileFull Profile = "full"
)

// ParseProfile maps a request string to a profile; unknown values fall back
// to the compact receipt.
func ParseProfile(s string) Profile {
	if Profile(s) == ProfileFull {
		return ProfileFull
	}
	return ProfileCompact
}

// Page dimensions in mm.
const (
	compactPageW = 80.0
	compactPageH = 200.0
	a4PageW      = 210.0
	a4PageH      = 297.0
)

// PageSize returns the page dimensions for a profile, in mm.
func PageSize(p Profile) (w, h float64) {
	if p == ProfileFull {
		return a4PageW, a4PageH
	}
	return compactPageW, compactPageH
}

// Kind discriminates directive types.
type Kind string

const (
	KindText Kind = "text"
	KindLine Kind = "line"
	// KindRotate and KindRotateReset bracket rotated drawing. Every Rotate is
	// paired with exactly one RotateReset; directives outside the pair are
	// never affected by the rotation.
	KindRotate      Kind = "rotate"
	KindRotateReset Kind = "rotate-reset"
)

// Align is horizontal text alignment relative to X.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Color is an RGB fill color.
type Color struct {
	R, G, B int
}

// Directive is one draw instruction. Field use depends on Kind:
//   - KindText: Text at (X, Y) with Font/Size/Bold/Underline/Align/Color/Alpha.
//   - KindLine: a rule from (X, Y) to (X2, Y2).
//   - KindRotate: rotate the canvas by Angle degrees around (X, Y).
//   - KindRotateReset: restore rotation to 0.
type Directive struct {
	Kind Kind

	Text string
	X, Y float64

	X2, Y2 float64

	Font      string
	Size      float64
	Bold      bool
	Underline bool
	Align     Align
	Color     Color
	Alpha     float64 // 0 means opaque; painters treat 0 as 1.0

	Angle float64
}

// Branding is the salon identity and presentation settings stamped on every
// receipt.
type Branding struct {
	SalonName      string
	Tagline        string
	Address        string
	Phone          string
	Email          string
	CurrencySymbol string // e.g. "Rs."; core PDF fonts have no rupee glyph
	WatermarkText  string
}
