package recruit

import (
	"bytes"
	"context"
	"image"
	"time"

	"github.com/xtding233/arona/internal/bot"
	"github.com/xtding233/arona/internal/gacha"
	"github.com/xtding233/arona/internal/imagecache"
	"github.com/xtding233/arona/internal/render"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/xtding233/arona/internal/recruit"

// BannerSource yields the banner rolls are made on.
type BannerSource interface {
	Current() *gacha.Banner
}

// Flow turns draws into chat messages.
type Flow struct {
	Banners BannerSource
	Images  imagecache.Source
	Encoder render.Encoder     // nil means render.JPEGEncoder
	Sparks  *gacha.SparkLedger // nil disables the spark command and point tracking

	CDNRoot     string
	Concurrency int // thumbnail downloads in flight per ten-roll; <= 0 means 4
	Logger      *zap.Logger
	Tracer      trace.Tracer
}

func (f *Flow) log() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}

func (f *Flow) tracer() trace.Tracer {
	if f.Tracer == nil {
		return otel.Tracer(tracerName)
	}
	return f.Tracer
}

// Roll draws one student and shows its portrait.
func (f *Flow) Roll(ctx context.Context, req *bot.Request) error {
	b := f.Banners.Current()
	s := b.Roll()
	f.credit(req, b, 1)
	f.log().Info("single roll",
		zap.String("author", req.AuthorName),
		zap.String("banner", b.ID),
		zap.String("student", s.String()),
		zap.Stringer("rarity", s.Rarity),
	)
	return req.Out.SendEmbed(ctx, f.studentEmbed(s))
}

// Roll10 draws ten students and sends them as one JPEG collage. If the
// collage cannot be rendered the user gets an apology; the draw stands.
func (f *Flow) Roll10(ctx context.Context, req *bot.Request) error {
	ctx, span := f.tracer().Start(ctx, "recruit.roll10")
	defer span.End()

	stop := req.Out.StartTyping(ctx)
	defer stop()

	b := f.Banners.Current()
	drawn := b.Roll10()
	students := drawn[:]
	f.credit(req, b, len(students))

	log := f.log().With(zap.String("author", req.AuthorName), zap.String("banner", b.ID))
	span.SetAttributes(
		attribute.String("banner", b.ID),
		attribute.Int("max_rarity", int(gacha.MaxRarity(students))),
	)

	start := time.Now()
	images := f.fetchAll(ctx, students)
	log.Info("10-roll download and resize", zap.Duration("took", time.Since(start)))

	jpeg, err := f.render(ctx, images)
	if err != nil {
		log.Error("failed to render 10-roll", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		stop()
		return req.Out.Reply(ctx, FailureReply)
	}

	stop()
	return req.Out.SendFiles(ctx, f.tenRollEmbed(b, students), bot.File{
		Name:        ResultFile,
		ContentType: "image/jpeg",
		Data:        jpeg,
	})
}

// fetchAll loads one thumbnail per student, keeping draw order.
func (f *Flow) fetchAll(ctx context.Context, students []gacha.Student) []*image.NRGBA {
	ctx, span := f.tracer().Start(ctx, "recruit.fetch")
	defer span.End()

	limit := f.Concurrency
	if limit <= 0 {
		limit = 4
	}
	images := make([]*image.NRGBA, len(students))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, s := range students {
		g.Go(func() error {
			images[i] = f.Images.GetOrFetch(gctx, f.CharacterImageURL(s), render.ThumbWidth, render.ThumbHeight)
			return nil
		})
	}
	_ = g.Wait() // Source does not fail
	return images
}

func (f *Flow) render(ctx context.Context, images []*image.NRGBA) ([]byte, error) {
	_, span := f.tracer().Start(ctx, "recruit.compose")
	start := time.Now()
	collage, err := render.Collage(images, render.ThumbWidth, render.ThumbHeight)
	span.End()
	if err != nil {
		return nil, err
	}
	f.log().Info("collage build", zap.Duration("took", time.Since(start)))

	_, span = f.tracer().Start(ctx, "recruit.encode")
	defer span.End()
	var buf bytes.Buffer
	var enc render.Encoder = render.JPEGEncoder{}
	if f.Encoder != nil {
		enc = f.Encoder
	}
	if err := enc.Encode(&buf, collage); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (f *Flow) credit(req *bot.Request, b *gacha.Banner, n int) {
	if f.Sparks == nil {
		return
	}
	f.Sparks.Add(req.AuthorID, b.ID, n)
}
