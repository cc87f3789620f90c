package render_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonpro/salonpro-api/internal/domain/entity"
	"github.com/salonpro/salonpro-api/internal/render"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test fixtures
// ──────────────────────────────────────────────────────────────────────────────

func testBranding() render.Branding {
	return render.Branding{
		SalonName:      "SalonPro",
		Tagline:        "Beauty & Wellness Studio",
		Address:        "12 MG Road, Bengaluru",
		Phone:          "080-12345678",
		Email:          "hello@salonpro.example",
		CurrencySymbol: "Rs.",
		WatermarkText:  "SalonPro",
	}
}

func testInvoice() *entity.Invoice {
	return &entity.Invoice{
		InvoiceNumber: "INV-1234567",
		Customer: entity.CustomerInfo{
			Name:  "Priya Sharma",
			Phone: "9876543210",
			Email: "priya@example.com",
		},
		Services: []entity.ServiceLine{{
			Name:     "Haircut",
			Duration: "45 mins",
			Staff:    "Meera",
			Price:    decimal.RequireFromString("1000"),
			Total:    decimal.RequireFromString("1050"),
		}},
		Products: []entity.ProductLine{{
			Name:      "Argan Oil Shampoo",
			Quantity:  3,
			UnitPrice: decimal.RequireFromString("150"),
			Total:     decimal.RequireFromString("472.50"),
		}},
		PaymentMethod: entity.PaymentCash,
		PaymentStatus: "paid",
		SubTotal:      decimal.RequireFromString("1522.50"),
		TotalPrice:    decimal.RequireFromString("1522.50"),
		BillingDate:   "15/03/2026",
		BillingTime:   "14:30",
	}
}

// texts extracts the Text of every KindText directive, in order.
func texts(ds []render.Directive) []string {
	var out []string
	for _, d := range ds {
		if d.Kind == render.KindText {
			out = append(out, d.Text)
		}
	}
	return out
}

// indexOf returns the position of the first text directive equal to want, or -1.
func indexOf(ts []string, want string) int {
	for i, t := range ts {
		if t == want {
			return i
		}
	}
	return -1
}

// ──────────────────────────────────────────────────────────────────────────────
// Profile selection
// ──────────────────────────────────────────────────────────────────────────────

func TestParseProfile(t *testing.T) {
	assert.Equal(t, render.ProfileFull, render.ParseProfile("full"))
	assert.Equal(t, render.ProfileCompact, render.ParseProfile("compact"))
	assert.Equal(t, render.ProfileCompact, render.ParseProfile(""))
	assert.Equal(t, render.ProfileCompact, render.ParseProfile("A4"),
		"unknown profiles fall back to compact")
}

func TestPageSize(t *testing.T) {
	w, h := render.PageSize(render.ProfileCompact)
	assert.Equal(t, 80.0, w)
	assert.Equal(t, 200.0, h)

	w, h = render.PageSize(render.ProfileFull)
	assert.Equal(t, 210.0, w)
	assert.Equal(t, 297.0, h)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compact layout
// ──────────────────────────────────────────────────────────────────────────────

func TestRenderCompact_SectionOrder(t *testing.T) {
	ds := render.Render(testInvoice(), render.ProfileCompact, testBranding())
	ts := texts(ds)

	header := indexOf(ts, "SalonPro")
	subtitle := indexOf(ts, "Appointment Receipt")
	serviceHdr := indexOf(ts, "SERVICE")
	subtotal := indexOf(ts, "Subtotal")
	total := indexOf(ts, "TOTAL")
	paidVia := indexOf(ts, "Paid via: Cash")
	thanks := indexOf(ts, "Thank you for visiting!")

	for name, idx := range map[string]int{
		"header": header, "subtitle": subtitle, "service header": serviceHdr,
		"subtotal": subtotal, "total": total, "paid via": paidVia, "thanks": thanks,
	} {
		require.GreaterOrEqual(t, idx, 0, "missing %s line", name)
	}

	assert.Less(t, header, subtitle)
	assert.Less(t, subtitle, serviceHdr)
	assert.Less(t, serviceHdr, subtotal)
	assert.Less(t, subtotal, total)
	assert.Less(t, total, paidVia)
	assert.Less(t, paidVia, thanks)
}

func TestRenderCompact_MetadataAndLines(t *testing.T) {
	ds := render.Render(testInvoice(), render.ProfileCompact, testBranding())
	ts := texts(ds)

	assert.Contains(t, ts, "INV-1234567")
	assert.Contains(t, ts, "Priya Sharma")
	assert.Contains(t, ts, "15/03/2026")
	assert.Contains(t, ts, "14:30")
	assert.Contains(t, ts, "1. Haircut")
	assert.Contains(t, ts, "Duration: 45 mins")
	assert.Contains(t, ts, "Staff: Meera")
	assert.Contains(t, ts, "Argan Oil Shampoo x3")
}

func TestRenderCompact_OmitsEmptyOptionalMetadata(t *testing.T) {
	inv := testInvoice()
	inv.AppointmentID = ""
	inv.Room = ""

	ds := render.Render(inv, render.ProfileCompact, testBranding())
	ts := texts(ds)

	assert.Equal(t, -1, indexOf(ts, "Appointment:"))
	assert.Equal(t, -1, indexOf(ts, "Room:"))
}

func TestRenderCompact_NoRotation(t *testing.T) {
	ds := render.Render(testInvoice(), render.ProfileCompact, testBranding())
	for _, d := range ds {
		assert.NotEqual(t, render.KindRotate, d.Kind, "the thermal receipt never rotates")
	}
}

func TestRenderCompact_TotalIsBoldAndUnderlined(t *testing.T) {
	ds := render.Render(testInvoice(), render.ProfileCompact, testBranding())

	var found bool
	for _, d := range ds {
		if d.Kind == render.KindText && d.Text == "Rs.1,522.50" && d.Align == render.AlignRight && d.Bold && d.Underline {
			found = true
		}
	}
	assert.True(t, found, "the grand total must be bold, underlined and right aligned")
}

// ──────────────────────────────────────────────────────────────────────────────
// Full layout
// ──────────────────────────────────────────────────────────────────────────────

func TestRenderFull_SectionOrder(t *testing.T) {
	ds := render.Render(testInvoice(), render.ProfileFull, testBranding())
	ts := texts(ds)

	title := indexOf(ts, "INVOICE")
	customer := indexOf(ts, "CUSTOMER DETAILS")
	service := indexOf(ts, "SERVICE DETAILS")
	summary := indexOf(ts, "PAYMENT SUMMARY")
	total := indexOf(ts, "Total")

	for name, idx := range map[string]int{
		"title": title, "customer": customer, "service": service,
		"summary": summary, "total": total,
	} {
		require.GreaterOrEqual(t, idx, 0, "missing %s section", name)
	}

	assert.Less(t, title, customer)
	assert.Less(t, customer, service)
	assert.Less(t, service, summary)
	assert.Less(t, summary, total)
}

func TestRenderFull_LongFormDate(t *testing.T) {
	ds := render.Render(testInvoice(), render.ProfileFull, testBranding())
	assert.Contains(t, texts(ds), "Sunday, 15 March 2026")
}

func TestRenderFull_UnparseableDatePassesThrough(t *testing.T) {
	inv := testInvoice()
	inv.BillingDate = "yesterday"

	ds := render.Render(inv, render.ProfileFull, testBranding())
	assert.Contains(t, texts(ds), "yesterday")
}

func TestRenderFull_WatermarkScopedByOneRotatePair(t *testing.T) {
	ds := render.Render(testInvoice(), render.ProfileFull, testBranding())

	rotates, resets := 0, 0
	rotateAt, resetAt := -1, -1
	for i, d := range ds {
		switch d.Kind {
		case render.KindRotate:
			rotates++
			rotateAt = i
		case render.KindRotateReset:
			resets++
			resetAt = i
		}
	}
	require.Equal(t, 1, rotates, "exactly one rotate")
	require.Equal(t, 1, resets, "exactly one rotate reset")
	require.Less(t, rotateAt, resetAt)

	// Exactly the watermark text sits inside the pair.
	require.Equal(t, rotateAt+2, resetAt, "only the watermark draw is rotated")
	wm := ds[rotateAt+1]
	assert.Equal(t, render.KindText, wm.Kind)
	assert.Equal(t, "SalonPro", wm.Text)
	assert.Equal(t, 52.0, wm.Size)
	assert.InDelta(t, 0.08, wm.Alpha, 1e-9)
	assert.Equal(t, -45.0, ds[rotateAt].Angle)

	// Nothing follows the reset; no later directive can inherit the rotation.
	assert.Equal(t, len(ds)-1, resetAt, "the watermark pair closes the list")
}

func TestRenderFull_WatermarkFallsBackToSalonName(t *testing.T) {
	b := testBranding()
	b.WatermarkText = ""

	ds := render.Render(testInvoice(), render.ProfileFull, b)
	var wm *render.Directive
	for i, d := range ds {
		if d.Kind == render.KindRotate {
			wm = &ds[i+1]
		}
	}
	require.NotNil(t, wm)
	assert.Equal(t, "SalonPro", wm.Text)
}

func TestRenderFull_DiscountAndAdvanceRows(t *testing.T) {
	inv := testInvoice()
	inv.GlobalDiscountPercent = decimal.RequireFromString("10")
	inv.AdvanceAmount = decimal.RequireFromString("50")
	// 1522.50 * 0.9 + 50
	inv.TotalPrice = decimal.RequireFromString("1420.25")

	ds := render.Render(inv, render.ProfileFull, testBranding())
	ts := texts(ds)

	assert.Contains(t, ts, "Discount (10%)")
	assert.Contains(t, ts, "Advance")
	assert.Contains(t, ts, "-Rs.152.25", "the discount row shows the discounted amount")
	assert.Contains(t, ts, "Rs.1,420.25")
}

func TestRenderFull_ZeroDiscountAndAdvanceRowsOmitted(t *testing.T) {
	ds := render.Render(testInvoice(), render.ProfileFull, testBranding())
	ts := texts(ds)

	assert.Equal(t, -1, indexOf(ts, "Advance"))
	for _, s := range ts {
		assert.NotContains(t, s, "Discount (")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Determinism and amount formatting
// ──────────────────────────────────────────────────────────────────────────────

func TestRender_Deterministic(t *testing.T) {
	inv := testInvoice()
	b := testBranding()

	first := render.Render(inv, render.ProfileFull, b)
	second := render.Render(inv, render.ProfileFull, b)
	assert.Equal(t, first, second, "rendering is pure")
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1522.50", "Rs.1,522.50"},
		{"152250", "Rs.1,52,250.00"}, // Indian digit grouping
		{"0", "Rs.0.00"},
		{"99.9", "Rs.99.90"},
		{"33.335", "Rs.33.34"}, // half-up at the paisa
	}
	for _, tc := range cases {
		got := render.FormatAmount("Rs.", decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "FormatAmount(%s)", tc.in)
	}
}
