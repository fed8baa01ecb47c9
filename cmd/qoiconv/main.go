package main

import (
	"log"
	"strings"

	"github.com/inhies/go-bytesize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"qoiscreen/pkg/convert"
)

var width = flag.Int("width", 0, "resize width")
var height = flag.Int("height", 0, "resize height")
var crop = flag.Bool("crop", false, "crop to fill the resize box")
var linear = flag.Bool("linear", false, "tag output as all-channels-linear")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: qoiconv [flags] <file|url>...")
	}

	logger, _ := zap.NewProduction()
	if *debug {
		logger, _ = zap.NewDevelopment()
	}

	var opts []convert.Option
	if *width > 0 && *height > 0 {
		opts = append(opts, convert.WithSize(*width, *height, *crop))
	}
	if *linear {
		opts = append(opts, convert.WithLinear())
	}

	conv := convert.New(logger, opts...)
	dl := convert.NewDownloader(logger)
	fs := afero.NewOsFs()

	bar := progressbar.Default(int64(flag.NArg()), "Converting")

	for _, src := range flag.Args() {
		res, err := convertOne(conv, dl, fs, src)
		if err != nil {
			log.Fatalf("%s: %s", src, err)
		}

		_ = bar.Add(1)
		log.Println(res)
	}
}

func convertOne(conv *convert.Converter, dl *convert.Downloader, fs afero.Fs, src string) (*convert.Result, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return conv.File(src)
	}

	bs, err := dl.Get(src)
	if err != nil {
		return nil, err
	}

	out, err := conv.Bytes(bs)
	if err != nil {
		return nil, err
	}

	dst := localName(src)
	if err := afero.WriteFile(fs, dst, out, 0644); err != nil {
		return nil, err
	}

	return &convert.Result{
		Source:  src,
		Target:  dst,
		RawSize: bytesize.New(float64(len(bs))),
		Size:    bytesize.New(float64(len(out))),
	}, nil
}

func localName(url string) string {
	name := url[strings.LastIndex(url, "/")+1:]
	if name == "" {
		name = "download"
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name + ".qoi"
}
