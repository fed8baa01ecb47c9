package main

import (
	"log"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"qoiscreen/pkg/convert"
)

var token = flag.String("token", "", "telegram bot token")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	if *token == "" {
		log.Fatal("bot token required")
	}

	logger, _ := zap.NewProduction()
	if *debug {
		logger, _ = zap.NewDevelopment()
	}

	bot, err := convert.NewBot(*token, convert.New(logger), logger)
	if err != nil {
		log.Fatal(err)
	}

	bot.Start()
}
