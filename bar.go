package chartkit

// reservedSpacing is the share of the width left for the space between
// bars when the spacing is computed.
const reservedSpacing = 0.2

type Bar struct {
	Value
	Rect Rect
}

func (b Bar) IsValid() bool {
	return b.Value.Valid && b.Rect.IsValid()
}

type BarLayout struct {
	LinearLayout
	Style   BarStyle
	Spacing float64
	Bars    []Bar
}

// NewBarLayout places one bar per category. With the horizontal orientation,
// bars stand on the y origin and are laid out from the leading edge. With
// the vertical orientation, bars grow from the leading edge and are laid out
// from the top edge.
func NewBarLayout(src Source, frame Rect, insets Insets, style BarStyle) BarLayout {
	bl := BarLayout{
		LinearLayout: NewLinearLayout(src, frame, insets, nil),
		Style:        style,
		Spacing:      nan,
	}
	if src.Len() == 0 {
		return bl
	}
	var (
		values    = src.Values()
		available = bl.Size()
		spacers   = float64(len(values) - 1)
		autoCount int
		lengths   = make([]float64, len(values))
		widths    = make([]float64, len(values))
	)
	width, height := available.W, available.H
	if style.Orientation == OrientVertical {
		width, height = available.H, available.W
	}
	for i, v := range values {
		lengths[i] = safeDiv(v.Y, bl.Absolute.Height()) * height
		w := style.Width(v)
		if w.IsAuto() {
			autoCount++
			widths[i] = nan
			continue
		}
		widths[i] = w.Value()
		width -= widths[i]
	}
	if !style.Spacing.IsAuto() {
		bl.Spacing = style.Spacing.Value()
		width -= bl.Spacing * spacers
	}
	var reserved float64
	if style.Spacing.IsAuto() {
		reserved = width * reservedSpacing
	}
	autoWidth := safeDiv(width-reserved, float64(autoCount))
	for i := range widths {
		if !isFinite(widths[i]) {
			widths[i] = autoWidth
			width -= autoWidth
		}
	}
	if style.Spacing.IsAuto() {
		bl.Spacing = 0
		if spacers > 0 {
			bl.Spacing = width / spacers
		}
	}
	bl.Bars = make([]Bar, len(values))
	var (
		inset = bl.InsetFrame()
		pos   = inset.MinX()
	)
	if style.Orientation == OrientVertical {
		pos = inset.MinY()
	}
	for i, v := range values {
		var rect Rect
		if style.Orientation == OrientVertical {
			rect = NewRect(inset.MinX(), pos, lengths[i], widths[i])
		} else {
			rect = NewRect(pos, bl.YInLayout(0), widths[i], -lengths[i])
		}
		bl.Bars[i] = Bar{
			Value: v,
			Rect:  rect.Standardize(),
		}
		pos += bl.Spacing + widths[i]
	}
	return bl
}

func (bl BarLayout) Bar(i int) (Bar, bool) {
	if i < 0 || i >= len(bl.Bars) {
		return Bar{}, false
	}
	return bl.Bars[i], true
}
