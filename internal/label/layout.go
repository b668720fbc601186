package label

// Box is an axis-aligned rectangle on the canvas.
type Box struct {
	X, Y, W, H float64
}

// Layout carries every coordinate the compositor draws with, so tests and
// alternative label stocks can substitute values without touching drawing
// code. Values are pixels on the label canvas unless noted.
type Layout struct {
	CanvasW, CanvasH int

	BorderInset  float64
	BorderStroke float64

	TitleX, TitleY     float64
	HeadingX, HeadingY float64

	ItemsX, ItemsY float64
	LineStep       float64
	MaxItems       int

	InfoBox        Box
	InfoStroke     float64
	InfoTextX      float64
	InfoLineHeight float64

	BarcodeBox         Box
	BarcodeStroke      float64
	BarcodeX, BarcodeY int
	BarcodeW, BarcodeH int

	SKUTextX, SKUTextY float64

	// PDF page size in points.
	PDFW, PDFH float64
}

// DefaultLayout is the 1200x891 kit-label sheet.
var DefaultLayout = Layout{
	CanvasW: 1200,
	CanvasH: 891,

	BorderInset:  10,
	BorderStroke: 4,

	TitleX:   30,
	TitleY:   25,
	HeadingX: 30,
	HeadingY: 85,

	ItemsX:   50,
	ItemsY:   125,
	LineStep: 42,
	MaxItems: 12,

	InfoBox:        Box{X: 20, Y: 680, W: 540, H: 190},
	InfoStroke:     3,
	InfoTextX:      40,
	InfoLineHeight: 38,

	BarcodeBox:    Box{X: 580, Y: 680, W: 600, H: 190},
	BarcodeStroke: 3,
	BarcodeX:      670,
	BarcodeY:      690,
	BarcodeW:      420,
	BarcodeH:      140,

	SKUTextX: 800,
	SKUTextY: 830,

	PDFW: 288,
	PDFH: 214,
}
