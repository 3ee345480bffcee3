// Command qrencode renders text as a QR Code, writing a PNG
// image or a terminal-friendly Unicode rendering.
package main

func main() {
	Execute()
}
