// Package pixel implements the monochrome framebuffer used by SSD1306 style OLED controllers.
//
// The image types are compatible with Go's native [color.Color] and [image.Image] / [draw.Image]
// interfaces, so anything that draws into an image can draw into display memory.
package pixel
