// Command bjpegdec decodes a baseline JPEG file and writes it out as a PPM
// raster. Grounded on lukechampine-jsteg/cmd/jsteg/main.go's use of flagg
// for the usage banner and log.Fatalln for terminal CLI errors.
package main

import (
	"log"
	"os"

	"github.com/golang/glog"
	"lukechampine.com/flagg"

	"github.com/mpetri/bjpeg"
	"github.com/mpetri/bjpeg/ppm"
)

func main() {
	defer glog.Flush()

	log.SetFlags(0)

	flagg.Root.Usage = flagg.SimpleUsage(flagg.Root, `Usage: bjpegdec in.jpg out.ppm

Decodes a baseline (non-progressive) JFIF/JPEG file and writes the result
as a binary (P6) PPM image.
`)
	cmd := flagg.Parse(flagg.Tree{Cmd: flagg.Root})

	if cmd.NArg() != 2 {
		flagg.Root.Usage()
		os.Exit(2)
	}

	inPath, outPath := cmd.Arg(0), cmd.Arg(1)

	in, err := os.Open(inPath)
	if err != nil {
		log.Fatalln("bjpegdec: could not open input:", err)
	}
	defer in.Close()

	img, err := bjpeg.Decode(in)
	if err != nil {
		if de, ok := bjpeg.AsDecodeError(err); ok {
			log.Fatalf("bjpegdec: decode failed (%s): %s", de.Kind, de.Message)
		}

		log.Fatalln("bjpegdec: decode failed:", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		log.Fatalln("bjpegdec: could not create output:", err)
	}
	defer out.Close()

	if err := ppm.Write(out, img.Width, img.Height, img.Pix); err != nil {
		log.Fatalln("bjpegdec: could not write ppm:", err)
	}
}
