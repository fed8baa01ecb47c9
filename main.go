package main

import (
	"os"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"qoiscreen/pkg/proto"
	"qoiscreen/pkg/screen"
)

// Quick hands-on tool: draw one image file on the 3.5" panel.
func main() {
	if len(os.Args) < 2 {
		panic("usage: qoiscreen <image>")
	}

	serial := proto.NewSerial("usbmodemUSB35INCHIPSV21")
	if err := serial.Open(&proto.Options{
		DTR:         true,
		RTS:         true,
		BaudRate:    115200,
		ReadTimeout: 10 * time.Millisecond,
	}); err != nil {
		panic(err)
	}

	logger, _ := zap.NewDevelopment()
	dev := screen.New(serial, logger, 320, 480)

	if err := dev.Wake(); err != nil {
		panic(err)
	}

	if err := dev.SetBacklight(100); err != nil {
		panic(err)
	}

	img, err := imaging.Open(os.Args[1])
	if err != nil {
		panic(err)
	}

	filled := imaging.Fill(img, 320, 480, imaging.Center, imaging.Lanczos)
	if err := dev.Draw(filled); err != nil {
		panic(err)
	}
}
