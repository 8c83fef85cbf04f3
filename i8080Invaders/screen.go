package i8080Invaders

import (
	"github.com/veandco/go-sdl2/sdl"
)

var (
	WIDTH         = 224
	HEIGHT        = 256
	VRAM          = 0x2400
	RED    uint32 = 0x0000FF
	CYAN   uint32 = 0xFFFF00
	GREEN  uint32 = 0x00FF00
	WHITE  uint32 = 0xFFFFFF
	BLACK  uint32 = 0x000000
)

type Screen struct {
	win *sdl.Window
	sur *sdl.Surface
	ren *sdl.Renderer
	tex *sdl.Texture
}

func NewScreen() *Screen {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		panic(err)
	}
	win := newWindow()
	ren := newRenderer(win)
	tex := newTexture(ren)
	sur := newSurface()
	screen := Screen{win: win, ren: ren, tex: tex, sur: sur}
	return &screen
}

func newWindow() *sdl.Window {
	win, err := sdl.CreateWindow("Space Invaders", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(2*WIDTH), int32(2*HEIGHT), sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		panic(err)
	}
	return win
}

func newRenderer(win *sdl.Window) *sdl.Renderer {
	ren, err := sdl.CreateRenderer(win, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		panic(err)
	}
	ren.SetLogicalSize(int32(WIDTH), int32(HEIGHT))
	return ren
}

func newTexture(ren *sdl.Renderer) *sdl.Texture {
	tex, err := ren.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32),
		sdl.TEXTUREACCESS_STREAMING, int32(WIDTH), int32(HEIGHT))
	if err != nil {
		panic(err)
	}
	return tex
}

func newSurface() *sdl.Surface {
	sur, err := sdl.CreateRGBSurface(0, int32(WIDTH), int32(HEIGHT), 32, 0, 0, 0, 0)
	if err != nil {
		panic(err)
	}
	sur.SetRLE(true)
	return sur
}

func (s *Screen) Destroy() {
	s.tex.Destroy()
	s.ren.Destroy()
	s.win.Destroy()
	sdl.Quit()
}

func (s *Screen) Update() {
	s.ren.Copy(s.tex, nil, nil)
	s.ren.Present()
}

// Draw blits the 1-bpp video RAM. The byte at VRAM + col*32 + group
// holds 8 vertical pixels of screen column col; the display is rotated
// 90 degrees counter-clockwise from the memory layout, so bit b of
// group g lands at screen row 255 - (8*g + b).
func (s *Screen) Draw(mem []uint8) {
	for col := 0; col < WIDTH; col++ {
		for group := 0; group < HEIGHT/8; group++ {
			curByte := mem[VRAM+col*(HEIGHT/8)+group]
			for bit := 0; bit < 8; bit++ {
				row := int32(HEIGHT - 1 - (group*8 + bit))
				on := (curByte>>bit)&1 == 1
				s.drawPixel(int32(col), row, pixelColor(on, int32(col), row))
			}
		}
	}
	s.updateTexture()
}

func (s *Screen) drawPixel(x int32, y int32, color uint32) {
	s.sur.FillRect(&sdl.Rect{X: x, Y: y, W: 1, H: 1}, color)
}

func (s *Screen) updateTexture() {
	pixels, _, err := s.tex.Lock(nil)
	if err != nil {
		panic(err)
	}
	copy(pixels, s.sur.Pixels())
	s.tex.Unlock()
}

// The cabinet had colored gel strips over the monochrome tube: red over
// the UFO band, green over the player and shield band.
func pixelColor(on bool, col int32, row int32) uint32 {
	if !on {
		return BLACK
	}
	switch {
	case row >= 240:
		if col < 16 || col > 134 {
			return WHITE
		}
		return GREEN
	case row >= 183:
		return GREEN
	case row >= 32 && row < 64:
		return RED
	default:
		return CYAN
	}
}
