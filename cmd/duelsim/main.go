package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"duel_ai/internal/battle"
	"duel_ai/internal/config"
	"duel_ai/internal/util"
)

func main() {
	var cfgDir, out, p1, p2, style1, style2 string
	var seed int64
	var n int
	var restricted, saveLog, verbose bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.StringVar(&p1, "p1", "rogue", "archetype for side one")
	flag.StringVar(&p2, "p2", "mage", "archetype for side two")
	flag.StringVar(&style1, "style1", "iterative", "playstyle for side one (random|recursive|iterative)")
	flag.StringVar(&style2, "style2", "random", "playstyle for side two")
	flag.BoolVar(&restricted, "restricted", false, "use the restricted battle queue")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 1, "number of matches")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	logger, _ := zap.NewProduction()
	if verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()

	charsCfg, treeCfg, err := config.LoadAll(cfgDir)
	if err != nil {
		logger.Warn("config not loaded, using built-in roster", zap.Error(err))
	}
	roster := battle.RosterFromConfig(charsCfg)
	for _, id := range []string{p1, p2} {
		if _, ok := roster[id]; !ok {
			logger.Fatal("unknown archetype", zap.String("id", id))
		}
	}

	name1, name2 := p1, p2
	if name1 == name2 {
		name2 = name2 + "2"
	}

	runOne := func(seed int64, record bool, lg *zap.Logger) battle.MatchResult {
		var q battle.Queue
		if restricted {
			q = battle.NewRestrictedQueue()
		} else {
			q = battle.NewBattleQueue()
		}
		rng := util.New(seed)

		newStyle := func(style string) battle.Playstyle {
			switch style {
			case "random":
				return battle.NewRandomPlaystyle(q, rng)
			case "recursive":
				return battle.NewRecursiveMinimax(q)
			case "iterative":
				return battle.NewIterativeMinimax(q)
			}
			logger.Fatal("unknown playstyle", zap.String("style", style))
			return nil
		}

		c1 := battle.NewCharacter(name1, roster[p1], q, newStyle(style1))
		c2 := battle.NewCharacter(name2, roster[p2], q, newStyle(style2))
		for _, c := range []*battle.Character{c1, c2} {
			if c.Archetype() != roster["sorcerer"].Name {
				continue
			}
			tree, err := sorcererTree(treeCfg, roster)
			if err != nil {
				logger.Fatal("skill tree", zap.Error(err))
			}
			c.SetTree(tree)
		}
		battle.Setup(q, c1, c2)
		return battle.NewMatch(q, lg, record).Run()
	}

	if n <= 1 {
		res := runOne(seed, saveLog, logger)
		if err := os.WriteFile(out, battle.MarshalPretty(res), 0644); err != nil {
			logger.Fatal("write output", zap.Error(err))
		}
		fmt.Printf("Match finished. Winner=%q tie=%v turns=%d -> %s\n", res.Winner, res.Tie, res.Turns, out)
		return
	}

	type stat struct {
		Wins     map[string]int
		Ties     int
		SumTurns int
	}
	st := stat{Wins: map[string]int{}}
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	workers := 8
	jobs := make(chan int, n)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := range jobs {
				res := runOne(seed+int64(workerID)*7919+int64(i), false, zap.NewNop())

				mu.Lock()
				if res.Tie || res.Winner == "" {
					st.Ties++
				} else {
					st.Wins[res.Winner]++
				}
				st.SumTurns += res.Turns
				mu.Unlock()
			}
		}(w)
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	summary := map[string]any{
		"runs":      n,
		"wins":      st.Wins,
		"ties":      st.Ties,
		"avg_turns": float64(st.SumTurns) / float64(n),
	}
	for name, wins := range st.Wins {
		summary["win_rate_"+name] = float64(wins) / float64(n)
	}
	if err := os.WriteFile(out, battle.MarshalPretty(summary), 0644); err != nil {
		logger.Fatal("write summary", zap.Error(err))
	}
	fmt.Printf("Batch %d done -> %s\n", n, out)
}

// sorcererTree prefers the configured tree and falls back to the stock one.
func sorcererTree(cfg *config.SkillTreeConfig, roster map[string]battle.ArchetypeSpec) (*battle.SkillTree, error) {
	if cfg != nil && cfg.Tree.Skill != "" {
		return battle.TreeFromConfig(&cfg.Tree, roster)
	}
	return battle.DefaultTree(roster)
}
