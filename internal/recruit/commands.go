package recruit

import (
	"context"
	"fmt"
	"strings"

	"github.com/xtding233/arona/internal/bot"
	"github.com/xtding233/arona/internal/gacha"
	"github.com/xtding233/arona/internal/token"
	"go.uber.org/zap"
)

// Register adds the recruitment commands to r.
func (f *Flow) Register(r *bot.Router) {
	r.Register(bot.Command{
		Name:    "roll",
		Aliases: []string{"pull"},
		Help:    "Recruit one student.",
		Handler: f.Roll,
	})
	r.Register(bot.Command{
		Name:    "roll10",
		Aliases: []string{"tenroll"},
		Help:    "Recruit ten students at once.",
		Handler: f.Roll10,
	})
	r.Register(bot.Command{
		Name:    "banner",
		Help:    "Show the current banner.",
		Handler: f.Banner,
	})
	if f.Sparks != nil {
		r.Register(bot.Command{
			Name:    "spark",
			Usage:   "[student]",
			Help:    "Show your recruitment points, or exchange them for a sparkable student.",
			Handler: f.Spark,
		})
	}
}

func (f *Flow) Banner(ctx context.Context, req *bot.Request) error {
	return req.Out.SendEmbed(ctx, bannerEmbed(f.Banners.Current()))
}

// Spark reports the caller's points on the current banner. With a student
// name it spends one threshold worth of points on that student.
func (f *Flow) Spark(ctx context.Context, req *bot.Request) error {
	b := f.Banners.Current()
	if len(req.Args) == 0 {
		st := f.Sparks.Status(req.AuthorID, b.ID)
		return req.Out.Reply(ctx, fmt.Sprintf("%d/%d recruitment points on %s (%d %s spent).",
			st.Points, st.Threshold, b.Name, token.Pyroxene.TokensForDraws(st.Points), token.Pyroxene.Name))
	}

	name := strings.Join(req.Args, " ")
	s, ok := findSparkable(b, name)
	if !ok {
		if len(b.Sparkable) == 0 {
			return req.Out.Reply(ctx, fmt.Sprintf("No students can be sparked on %s.", b.Name))
		}
		return req.Out.Reply(ctx, fmt.Sprintf("%s cannot be sparked on %s. Sparkable: %s", name, b.Name, studentList(b.Sparkable)))
	}
	st, err := f.Sparks.Redeem(req.AuthorID, b.ID)
	if err != nil {
		return req.Out.Reply(ctx, fmt.Sprintf("You need %d more recruitment points to spark %s.", st.Remaining(), s))
	}
	f.log().Info("spark redeemed",
		zap.String("author", req.AuthorName),
		zap.String("banner", b.ID),
		zap.String("student", s.String()),
	)
	return req.Out.SendEmbed(ctx, f.studentEmbed(s))
}

// findSparkable matches name against every display name, ignoring case.
func findSparkable(b *gacha.Banner, name string) (gacha.Student, bool) {
	for _, s := range b.Sparkable {
		for _, n := range s.Names {
			if strings.EqualFold(n, name) {
				return s, true
			}
		}
	}
	return gacha.Student{}, false
}
