package render

import (
	"bytes"
	"strconv"

	"github.com/fogleman/gg"
)

const badgeSize = 240

// scoreBadge draws the overall score as a filled disc in the score color.
// gg's built-in face keeps the output independent of installed fonts.
func scoreBadge(score int) ([]byte, error) {
	dc := gg.NewContext(badgeSize, badgeSize)
	c := scoreColor(score)
	half := float64(badgeSize) / 2

	dc.DrawCircle(half, half, half-4)
	dc.SetRGB255(c.r, c.g, c.b)
	dc.Fill()

	dc.SetRGB255(255, 255, 255)
	dc.Push()
	dc.ScaleAbout(6, 6, half, half-20)
	dc.DrawStringAnchored(strconv.Itoa(score), half, half-20, 0.5, 0.5)
	dc.Pop()

	dc.Push()
	dc.ScaleAbout(3, 3, half, half+50)
	dc.DrawStringAnchored("/ 100", half, half+50, 0.5, 0.5)
	dc.Pop()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
