package bot_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xtding233/arona/internal/bot"
	"github.com/xtding233/arona/internal/bot/bottest"
)

func TestRouter_Dispatch(t *testing.T) {
	r := bot.NewRouter("!", nil)
	var got []string
	r.Register(bot.Command{
		Name:    "roll10",
		Aliases: []string{"tenroll"},
		Handler: func(_ context.Context, req *bot.Request) error {
			got = append(got, strings.Join(req.Args, ","))
			return nil
		},
	})

	tests := []struct {
		content string
		handled bool
	}{
		{"!roll10", true},
		{"!TenRoll a b", true},
		{"!  roll10", true},
		{"roll10", false},
		{"?roll10", false},
		{"!roll", false},
		{"!", false},
		{"", false},
	}
	for _, tt := range tests {
		rec := &bottest.Recorder{}
		if h := r.Dispatch(context.Background(), tt.content, rec.Request("u")); h != tt.handled {
			t.Errorf("Dispatch(%q)=%v want %v", tt.content, h, tt.handled)
		}
	}
	if len(got) != 3 || got[1] != "a,b" {
		t.Fatalf("args=%q", got)
	}
}

func TestRouter_HandlerErrorIsContained(t *testing.T) {
	r := bot.NewRouter("", nil)
	r.Register(bot.Command{Name: "x", Handler: func(context.Context, *bot.Request) error {
		return errors.New("send failed")
	}})
	if !r.Dispatch(context.Background(), "!x", (&bottest.Recorder{}).Request("u")) {
		t.Fatalf("not handled")
	}
}

func TestPing(t *testing.T) {
	now := time.Date(2021, 2, 25, 12, 0, 0, 0, time.UTC)
	h := bot.Ping(func() time.Time { return now })

	tests := []struct {
		sent time.Time
		want string
	}{
		{now.Add(-42 * time.Millisecond), "Pong! (Response: 42ms)"},
		{time.Time{}, "Pong! (Response: ??ms)"},
		{now.Add(time.Second), "Pong! (Response: ??ms)"},
	}
	for _, tt := range tests {
		rec := &bottest.Recorder{}
		req := rec.Request("u")
		req.SentAt = tt.sent
		if err := h(context.Background(), req); err != nil {
			t.Fatal(err)
		}
		if r := rec.Replies(); len(r) != 1 || r[0] != tt.want {
			t.Fatalf("replies=%q want %q", r, tt.want)
		}
	}
}

func TestSource(t *testing.T) {
	rec := &bottest.Recorder{}
	if err := bot.Source(context.Background(), rec.Request("u")); err != nil {
		t.Fatal(err)
	}
	sent := rec.Sent()
	if len(sent) != 1 {
		t.Fatalf("sent %d messages", len(sent))
	}
	e := sent[0].Embed
	if e.Color != 0x00D7FB {
		t.Fatalf("color=%#x", e.Color)
	}
	want := []bot.Field{
		{Name: "Bot Source", Value: "https://github.com/Paoda/arona"},
		{Name: "Gacha Source", Value: "https://github.com/Paoda/bluearch-recruitment"},
		{Name: "Image Source", Value: "https://thearchive.gg"},
	}
	if len(e.Fields) != len(want) {
		t.Fatalf("fields=%v", e.Fields)
	}
	for i := range want {
		if e.Fields[i] != want[i] {
			t.Fatalf("field %d=%v want %v", i, e.Fields[i], want[i])
		}
	}
}

func TestHelp_ListsCommands(t *testing.T) {
	r := bot.NewRouter("!", nil)
	bot.RegisterGeneral(r)

	rec := &bottest.Recorder{}
	if !r.Dispatch(context.Background(), "!help", rec.Request("u")) {
		t.Fatalf("help not handled")
	}
	sent := rec.Sent()
	if len(sent) != 1 {
		t.Fatalf("sent %d messages", len(sent))
	}
	var names []string
	for _, f := range sent[0].Embed.Fields {
		names = append(names, f.Name)
	}
	if strings.Join(names, " ") != "!help !ping !source" {
		t.Fatalf("names=%v", names)
	}
	if !strings.Contains(sent[0].Embed.Fields[2].Value, "github, code, dev") {
		t.Fatalf("aliases missing: %q", sent[0].Embed.Fields[2].Value)
	}
}
