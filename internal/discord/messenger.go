package discord

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/xtding233/arona/internal/bot"
	"go.uber.org/zap"
)

// typingEvery renews the indicator before Discord's ten second expiry.
const typingEvery = 8 * time.Second

// channelMessenger answers in the channel of one incoming message.
type channelMessenger struct {
	s       *discordgo.Session
	channel string
	ref     *discordgo.MessageReference
	log     *zap.Logger
}

var _ bot.Messenger = (*channelMessenger)(nil)

func (m *channelMessenger) Reply(ctx context.Context, content string) error {
	_, err := m.s.ChannelMessageSendReply(m.channel, content, m.ref, discordgo.WithContext(ctx))
	return err
}

func (m *channelMessenger) SendEmbed(ctx context.Context, e bot.Embed) error {
	_, err := m.s.ChannelMessageSendEmbed(m.channel, toEmbed(e), discordgo.WithContext(ctx))
	return err
}

func (m *channelMessenger) SendFiles(ctx context.Context, e bot.Embed, files ...bot.File) error {
	_, err := m.s.ChannelMessageSendComplex(m.channel, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{toEmbed(e)},
		Files:  toFiles(files),
	}, discordgo.WithContext(ctx))
	return err
}

func (m *channelMessenger) StartTyping(ctx context.Context) func() {
	return typingLoop(ctx, typingEvery, func() error {
		return m.s.ChannelTyping(m.channel, discordgo.WithContext(ctx))
	}, m.log)
}

// typingLoop calls typing now and every interval until stop is called or
// ctx is done. stop is safe to call more than once.
func typingLoop(ctx context.Context, every time.Duration, typing func() error, log *zap.Logger) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			if err := typing(); err != nil && ctx.Err() == nil {
				log.Debug("typing indicator failed", zap.Error(err))
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return func() {
		cancel()
		wg.Wait()
	}
}

func toEmbed(e bot.Embed) *discordgo.MessageEmbed {
	out := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		URL:         e.URL,
		Color:       e.Color,
	}
	if e.ImageURL != "" {
		out.Image = &discordgo.MessageEmbedImage{URL: e.ImageURL}
	}
	if e.Footer != nil {
		out.Footer = &discordgo.MessageEmbedFooter{Text: e.Footer.Text, IconURL: e.Footer.IconURL}
	}
	for _, f := range e.Fields {
		out.Fields = append(out.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	return out
}

func toFiles(files []bot.File) []*discordgo.File {
	out := make([]*discordgo.File, 0, len(files))
	for _, f := range files {
		out = append(out, &discordgo.File{
			Name:        f.Name,
			ContentType: f.ContentType,
			Reader:      bytes.NewReader(f.Data),
		})
	}
	return out
}
