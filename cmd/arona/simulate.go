package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xtding233/arona/internal/banner"
	"github.com/xtding233/arona/internal/config"
	"github.com/xtding233/arona/internal/gacha"
	"github.com/xtding233/arona/internal/token"
)

type simulateResp struct {
	Banner   string      `json:"banner"`
	Goal     string      `json:"goal"`
	Trials   int         `json:"trials"`
	Stats    gacha.Stats `json:"stats"`
	Pyroxene float64     `json:"mean_pyroxene,omitempty"`
}

func simulateCmd() *cobra.Command {
	var (
		bannerID string
		goal     string
		trials   int
		budget   int
		seed     uint64
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Monte Carlo statistics for a banner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if bannerID == "" {
				bannerID = cfg.Banner
			}
			var rng gacha.RandomSource
			if seed != 0 {
				rng = gacha.NewSeededRNG(seed)
			}
			b, err := banner.NewLoader(bannerFS(cfg), rng).Build(bannerID)
			if err != nil {
				return err
			}

			var sb *gacha.SimBudget
			if gacha.TrialGoal(goal) == gacha.GoalFixedBudget {
				sb = &gacha.SimBudget{NumRolls: budget}
			}
			st, err := gacha.RunMonteCarlo(b.Gacha, gacha.TrialGoal(goal), trials, sb)
			if err != nil {
				return fmt.Errorf("simulate %s: %w", bannerID, err)
			}

			resp := simulateResp{Banner: bannerID, Goal: goal, Trials: trials, Stats: st}
			if sb == nil {
				resp.Pyroxene = st.Mean * float64(token.Pyroxene.PerDraw)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}
	cmd.Flags().StringVar(&bannerID, "banner", "", "banner id (default ARONA_BANNER)")
	cmd.Flags().StringVar(&goal, "goal", string(gacha.GoalFirstThreeStar), "first_three_star | first_priority | fixed_budget")
	cmd.Flags().IntVar(&trials, "trials", 10000, "number of simulated players")
	cmd.Flags().IntVar(&budget, "budget", 200, "rolls per player for fixed_budget")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible runs (0 = random)")
	return cmd
}
