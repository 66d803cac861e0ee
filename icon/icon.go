package icon

import "image/color"

// Size is the pixel edge of both generated icons.
const Size = 1024

// Palette of the icon: the tile, door and windows are Dark, the mosque is Gold.
var (
	Dark = color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}
	Gold = color.RGBA{R: 0xD4, G: 0xAF, B: 0x37, A: 0xFF}
)

// SVG is the mosque silhouette on a rounded dark tile. Rounded rects spell
// out ry because oksvg does not default it to rx.
const SVG = `<svg xmlns="http://www.w3.org/2000/svg" width="1024" height="1024" viewBox="0 0 1024 1024">
  <!-- Background -->
  <rect width="1024" height="1024" fill="#1A1A1A" rx="180" ry="180"/>

  <!-- Main mosque body -->
  <rect x="200" y="520" width="624" height="330" fill="#D4AF37"/>

  <!-- Main dome -->
  <ellipse cx="512" cy="440" rx="260" ry="160" fill="#D4AF37"/>

  <!-- Left minaret -->
  <rect x="110" y="360" width="65" height="490" fill="#D4AF37"/>
  <polygon points="142,240 175,360 110,360" fill="#D4AF37"/>
  <circle cx="142" cy="220" r="22" fill="#D4AF37"/>

  <!-- Right minaret -->
  <rect x="849" y="360" width="65" height="490" fill="#D4AF37"/>
  <polygon points="882,240 914,360 849,360" fill="#D4AF37"/>
  <circle cx="882" cy="220" r="22" fill="#D4AF37"/>

  <!-- Small domes -->
  <ellipse cx="310" cy="490" rx="75" ry="55" fill="#D4AF37"/>
  <ellipse cx="714" cy="490" rx="75" ry="55" fill="#D4AF37"/>

  <!-- Door -->
  <rect x="432" y="640" width="160" height="210" rx="80" ry="80" fill="#1A1A1A"/>

  <!-- Windows -->
  <circle cx="310" cy="610" r="38" fill="#1A1A1A"/>
  <circle cx="714" cy="610" r="38" fill="#1A1A1A"/>

  <!-- Crescent moon on main dome -->
  <circle cx="512" cy="300" r="42" fill="#D4AF37"/>
  <circle cx="530" cy="290" r="36" fill="#1A1A1A"/>
</svg>`
