package chartkit

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	DefaultFill      = colornames.Blue
	DefaultStroke    = colornames.White
	DefaultHighlight = colornames.Blue
)

// ColorSet gives the fill of a category by its index. Implementations must
// return the same color for the same index.
type ColorSet interface {
	ColorAt(int) color.RGBA
}

const basicSeed = "4a4df675f6932bcd5790d0956ce51a52b70ccf4e5ebdc84ac29f9aa1b5ff383f"

type BasicColorSet struct{}

func (BasicColorSet) ColorAt(i int) color.RGBA {
	size := len(basicSeed) - 4
	i = ((i % size) + size) % size
	return shortHex(basicSeed[i : i+3])
}

type RepeatingColorSet []color.RGBA

func (r RepeatingColorSet) ColorAt(i int) color.RGBA {
	if len(r) == 0 {
		return DefaultFill
	}
	z := len(r)
	return r[((i%z)+z)%z]
}

var (
	Category10 RepeatingColorSet
	Tableau10  RepeatingColorSet
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

// ColorSetByName returns one of the predefined color sets.
func ColorSetByName(name string) (ColorSet, error) {
	switch name {
	case "", "basic":
		return BasicColorSet{}, nil
	case "category10":
		return Category10, nil
	case "tableau10":
		return Tableau10, nil
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrColor)
	}
}

// ParseColor accepts css color names and hexadecimal notations.
func ParseColor(str string) (color.RGBA, error) {
	if c, ok := colornames.Map[str]; ok {
		return c, nil
	}
	c, err := colorful.Hex(str)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%s: %w", str, ErrColor)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

func splitColorString(str string) []color.RGBA {
	var arr []color.RGBA
	for i := 0; i+6 <= len(str); i += 6 {
		c, err := ParseColor("#" + str[i:i+6])
		if err != nil {
			continue
		}
		arr = append(arr, c)
	}
	return arr
}

func shortHex(str string) color.RGBA {
	n, err := strconv.ParseUint(str, 16, 16)
	if err != nil {
		return DefaultFill
	}
	return color.RGBA{
		R: uint8((n >> 8 & 0xF) * 17),
		G: uint8((n >> 4 & 0xF) * 17),
		B: uint8((n & 0xF) * 17),
		A: 0xff,
	}
}
