// Copyright 2026 go-pixmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pix

// Named colors, the W3C extended set plus Amethyst and Plaid. Grey spellings
// alias their Gray counterparts.
var (
	AliceBlue            = PixelFromCode(0xF0F8FF)
	Amethyst             = PixelFromCode(0x9966CC)
	AntiqueWhite         = PixelFromCode(0xFAEBD7)
	Aqua                 = PixelFromCode(0x00FFFF)
	Aquamarine           = PixelFromCode(0x7FFFD4)
	Azure                = PixelFromCode(0xF0FFFF)
	Beige                = PixelFromCode(0xF5F5DC)
	Bisque               = PixelFromCode(0xFFE4C4)
	Black                = PixelFromCode(0x000000)
	BlanchedAlmond       = PixelFromCode(0xFFEBCD)
	Blue                 = PixelFromCode(0x0000FF)
	BlueViolet           = PixelFromCode(0x8A2BE2)
	Brown                = PixelFromCode(0xA52A2A)
	BurlyWood            = PixelFromCode(0xDEB887)
	CadetBlue            = PixelFromCode(0x5F9EA0)
	Chartreuse           = PixelFromCode(0x7FFF00)
	Chocolate            = PixelFromCode(0xD2691E)
	Coral                = PixelFromCode(0xFF7F50)
	CornflowerBlue       = PixelFromCode(0x6495ED)
	Cornsilk             = PixelFromCode(0xFFF8DC)
	Crimson              = PixelFromCode(0xDC143C)
	Cyan                 = PixelFromCode(0x00FFFF)
	DarkBlue             = PixelFromCode(0x00008B)
	DarkCyan             = PixelFromCode(0x008B8B)
	DarkGoldenrod        = PixelFromCode(0xB8860B)
	DarkGray             = PixelFromCode(0xA9A9A9)
	DarkGrey             = PixelFromCode(0xA9A9A9)
	DarkGreen            = PixelFromCode(0x006400)
	DarkKhaki            = PixelFromCode(0xBDB76B)
	DarkMagenta          = PixelFromCode(0x8B008B)
	DarkOliveGreen       = PixelFromCode(0x556B2F)
	DarkOrange           = PixelFromCode(0xFF8C00)
	DarkOrchid           = PixelFromCode(0x9932CC)
	DarkRed              = PixelFromCode(0x8B0000)
	DarkSalmon           = PixelFromCode(0xE9967A)
	DarkSeaGreen         = PixelFromCode(0x8FBC8F)
	DarkSlateBlue        = PixelFromCode(0x483D8B)
	DarkSlateGray        = PixelFromCode(0x2F4F4F)
	DarkSlateGrey        = PixelFromCode(0x2F4F4F)
	DarkTurquoise        = PixelFromCode(0x00CED1)
	DarkViolet           = PixelFromCode(0x9400D3)
	DeepPink             = PixelFromCode(0xFF1493)
	DeepSkyBlue          = PixelFromCode(0x00BFFF)
	DimGray              = PixelFromCode(0x696969)
	DimGrey              = PixelFromCode(0x696969)
	DodgerBlue           = PixelFromCode(0x1E90FF)
	FireBrick            = PixelFromCode(0xB22222)
	FloralWhite          = PixelFromCode(0xFFFAF0)
	ForestGreen          = PixelFromCode(0x228B22)
	Fuchsia              = PixelFromCode(0xFF00FF)
	Gainsboro            = PixelFromCode(0xDCDCDC)
	GhostWhite           = PixelFromCode(0xF8F8FF)
	Gold                 = PixelFromCode(0xFFD700)
	Goldenrod            = PixelFromCode(0xDAA520)
	Gray                 = PixelFromCode(0x808080)
	Grey                 = PixelFromCode(0x808080)
	Green                = PixelFromCode(0x008000)
	GreenYellow          = PixelFromCode(0xADFF2F)
	Honeydew             = PixelFromCode(0xF0FFF0)
	HotPink              = PixelFromCode(0xFF69B4)
	IndianRed            = PixelFromCode(0xCD5C5C)
	Indigo               = PixelFromCode(0x4B0082)
	Ivory                = PixelFromCode(0xFFFFF0)
	Khaki                = PixelFromCode(0xF0E68C)
	Lavender             = PixelFromCode(0xE6E6FA)
	LavenderBlush        = PixelFromCode(0xFFF0F5)
	LawnGreen            = PixelFromCode(0x7CFC00)
	LemonChiffon         = PixelFromCode(0xFFFACD)
	LightBlue            = PixelFromCode(0xADD8E6)
	LightCoral           = PixelFromCode(0xF08080)
	LightCyan            = PixelFromCode(0xE0FFFF)
	LightGoldenrodYellow = PixelFromCode(0xFAFAD2)
	LightGreen           = PixelFromCode(0x90EE90)
	LightGrey            = PixelFromCode(0xD3D3D3)
	LightPink            = PixelFromCode(0xFFB6C1)
	LightSalmon          = PixelFromCode(0xFFA07A)
	LightSeaGreen        = PixelFromCode(0x20B2AA)
	LightSkyBlue         = PixelFromCode(0x87CEFA)
	LightSlateGray       = PixelFromCode(0x778899)
	LightSlateGrey       = PixelFromCode(0x778899)
	LightSteelBlue       = PixelFromCode(0xB0C4DE)
	LightYellow          = PixelFromCode(0xFFFFE0)
	Lime                 = PixelFromCode(0x00FF00)
	LimeGreen            = PixelFromCode(0x32CD32)
	Linen                = PixelFromCode(0xFAF0E6)
	Magenta              = PixelFromCode(0xFF00FF)
	Maroon               = PixelFromCode(0x800000)
	MediumAquamarine     = PixelFromCode(0x66CDAA)
	MediumBlue           = PixelFromCode(0x0000CD)
	MediumOrchid         = PixelFromCode(0xBA55D3)
	MediumPurple         = PixelFromCode(0x9370DB)
	MediumSeaGreen       = PixelFromCode(0x3CB371)
	MediumSlateBlue      = PixelFromCode(0x7B68EE)
	MediumSpringGreen    = PixelFromCode(0x00FA9A)
	MediumTurquoise      = PixelFromCode(0x48D1CC)
	MediumVioletRed      = PixelFromCode(0xC71585)
	MidnightBlue         = PixelFromCode(0x191970)
	MintCream            = PixelFromCode(0xF5FFFA)
	MistyRose            = PixelFromCode(0xFFE4E1)
	Moccasin             = PixelFromCode(0xFFE4B5)
	NavajoWhite          = PixelFromCode(0xFFDEAD)
	Navy                 = PixelFromCode(0x000080)
	OldLace              = PixelFromCode(0xFDF5E6)
	Olive                = PixelFromCode(0x808000)
	OliveDrab            = PixelFromCode(0x6B8E23)
	Orange               = PixelFromCode(0xFFA500)
	OrangeRed            = PixelFromCode(0xFF4500)
	Orchid               = PixelFromCode(0xDA70D6)
	PaleGoldenrod        = PixelFromCode(0xEEE8AA)
	PaleGreen            = PixelFromCode(0x98FB98)
	PaleTurquoise        = PixelFromCode(0xAFEEEE)
	PaleVioletRed        = PixelFromCode(0xDB7093)
	PapayaWhip           = PixelFromCode(0xFFEFD5)
	PeachPuff            = PixelFromCode(0xFFDAB9)
	Peru                 = PixelFromCode(0xCD853F)
	Pink                 = PixelFromCode(0xFFC0CB)
	Plaid                = PixelFromCode(0xCC5533)
	Plum                 = PixelFromCode(0xDDA0DD)
	PowderBlue           = PixelFromCode(0xB0E0E6)
	Purple               = PixelFromCode(0x800080)
	Red                  = PixelFromCode(0xFF0000)
	RosyBrown            = PixelFromCode(0xBC8F8F)
	RoyalBlue            = PixelFromCode(0x4169E1)
	SaddleBrown          = PixelFromCode(0x8B4513)
	Salmon               = PixelFromCode(0xFA8072)
	SandyBrown           = PixelFromCode(0xF4A460)
	SeaGreen             = PixelFromCode(0x2E8B57)
	Seashell             = PixelFromCode(0xFFF5EE)
	Sienna               = PixelFromCode(0xA0522D)
	Silver               = PixelFromCode(0xC0C0C0)
	SkyBlue              = PixelFromCode(0x87CEEB)
	SlateBlue            = PixelFromCode(0x6A5ACD)
	SlateGray            = PixelFromCode(0x708090)
	SlateGrey            = PixelFromCode(0x708090)
	Snow                 = PixelFromCode(0xFFFAFA)
	SpringGreen          = PixelFromCode(0x00FF7F)
	SteelBlue            = PixelFromCode(0x4682B4)
	Tan                  = PixelFromCode(0xD2B48C)
	Teal                 = PixelFromCode(0x008080)
	Thistle              = PixelFromCode(0xD8BFD8)
	Tomato               = PixelFromCode(0xFF6347)
	Turquoise            = PixelFromCode(0x40E0D0)
	Violet               = PixelFromCode(0xEE82EE)
	Wheat                = PixelFromCode(0xF5DEB3)
	White                = PixelFromCode(0xFFFFFF)
	WhiteSmoke           = PixelFromCode(0xF5F5F5)
	Yellow               = PixelFromCode(0xFFFF00)
	YellowGreen          = PixelFromCode(0x9ACD32)
)
