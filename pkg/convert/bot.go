package convert

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/inhies/go-bytesize"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func NewBot(token string, conv *Converter, logger *zap.Logger) (*Bot, error) {
	pref := tele.Settings{
		Token: token,
		Poller: &tele.LongPoller{
			Timeout: 30 * time.Second,
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		b:    b,
		conv: conv,
		log:  logger,
	}
	bot.handle()

	return bot, nil
}

// Bot converts photos sent to it and replies with the .qoi file.
type Bot struct {
	b    *tele.Bot
	conv *Converter
	log  *zap.Logger
}

func (b *Bot) Start() {
	b.log.Info("bot started")
	b.b.Start()
}

func (b *Bot) Stop() {
	b.b.Stop()
}

func (b *Bot) handle() {
	b.b.Handle("/start", func(context tele.Context) error {
		return context.Reply("Send me a photo and I answer with its QOI encoding.")
	})

	b.b.Handle(tele.OnPhoto, func(context tele.Context) error {
		photo := context.Message().Photo
		return b.convert(context, &photo.File, "photo.qoi")
	})

	b.b.Handle(tele.OnDocument, func(context tele.Context) error {
		doc := context.Message().Document
		return b.convert(context, &doc.File, targetName(doc.FileName))
	})
}

func (b *Bot) convert(context tele.Context, file *tele.File, name string) error {
	rc, err := b.b.File(file)
	if err != nil {
		return context.Reply(fmt.Sprintf("download failed: %s", err))
	}

	defer func() {
		_ = rc.Close()
	}()

	src, err := io.ReadAll(rc)
	if err != nil {
		return context.Reply(fmt.Sprintf("download failed: %s", err))
	}

	out, err := b.conv.Bytes(src)
	if err != nil {
		return context.Reply(fmt.Sprintf("convert failed: %s", err))
	}

	b.log.With(
		zap.String("file", name),
		zap.Int("in", len(src)),
		zap.Int("out", len(out)),
	).Debug("bot converted")

	return context.Reply(&tele.Document{
		File:     tele.FromReader(bytes.NewReader(out)),
		FileName: name,
		Caption: fmt.Sprintf("%s -> %s",
			bytesize.New(float64(len(src))),
			bytesize.New(float64(len(out)))),
	})
}
