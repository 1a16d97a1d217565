package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xtding233/arona/internal/bot"
	"github.com/xtding233/arona/internal/config"
	"github.com/xtding233/arona/internal/gacha"
	"github.com/xtding233/arona/internal/telemetry"
)

func rollCmd() *cobra.Command {
	var (
		ten      bool
		out      string
		bannerID string
		seed     uint64
	)
	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll offline and print the result; --ten writes the collage to --out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := telemetry.NewLogger(cfg.LogLevel, "console")
			if err != nil {
				return err
			}
			defer log.Sync()

			var rng gacha.RandomSource
			if seed != 0 {
				rng = gacha.NewSeededRNG(seed)
			}
			a, err := newApp(cfg, bannerID, rng, log)
			if err != nil {
				return err
			}

			req := &bot.Request{AuthorID: "cli", AuthorName: "cli", Out: &fileMessenger{w: cmd.OutOrStdout(), out: out}}
			if ten {
				return a.flow.Roll10(cmd.Context(), req)
			}
			return a.flow.Roll(cmd.Context(), req)
		},
	}
	cmd.Flags().BoolVar(&ten, "ten", false, "do a ten-roll")
	cmd.Flags().StringVarP(&out, "out", "o", "result.jpeg", "where to write the ten-roll collage")
	cmd.Flags().StringVar(&bannerID, "banner", "", "banner id (default ARONA_BANNER)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible roll (0 = random)")
	return cmd
}

// fileMessenger prints messages and writes attachments to disk.
type fileMessenger struct {
	w   io.Writer
	out string
}

func (m *fileMessenger) Reply(_ context.Context, content string) error {
	_, err := fmt.Fprintln(m.w, content)
	return err
}

func (m *fileMessenger) SendEmbed(_ context.Context, e bot.Embed) error {
	fmt.Fprintf(m.w, "%s\n%s\n", e.Title, e.Description)
	if e.ImageURL != "" {
		fmt.Fprintln(m.w, e.ImageURL)
	}
	for _, f := range e.Fields {
		fmt.Fprintf(m.w, "%s: %s\n", f.Name, f.Value)
	}
	return nil
}

func (m *fileMessenger) SendFiles(ctx context.Context, e bot.Embed, files ...bot.File) error {
	e.ImageURL = ""
	if err := m.SendEmbed(ctx, e); err != nil {
		return err
	}
	for _, f := range files {
		if err := os.WriteFile(m.out, f.Data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(m.w, "wrote %s (%d bytes)\n", m.out, len(f.Data))
	}
	return nil
}

func (m *fileMessenger) StartTyping(context.Context) func() { return func() {} }
