package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/samber/lo"

	"github.com/liyu-tw/coursepick/internal/catalog"
	"github.com/liyu-tw/coursepick/internal/engine"
	"github.com/liyu-tw/coursepick/pkg/config"
	"github.com/liyu-tw/coursepick/pkg/logger"
	"github.com/liyu-tw/coursepick/pkg/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	input := flag.String("input", "", "path to a catalog JSON file (required)")
	policyName := flag.String("policy", cfg.Engine.Policy, "ranking policy: conflict or priority")
	maxCandidates := flag.Int("max", cfg.Engine.MaxCandidates, "hard cap on generated candidates")
	workers := flag.Int("workers", cfg.Engine.Workers, "parallel scoring workers (0 = GOMAXPROCS)")
	flag.Parse()

	if *input == "" {
		log.Fatal("missing required flag: -input")
	}

	policy, err := engine.ParsePolicy(*policyName)
	if err != nil {
		log.Fatalf("cannot parse policy: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("cannot init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	offerings, err := catalog.OfferingsFromJSON(*input)
	if err != nil {
		log.Fatalf("cannot load catalog: %v", err)
	}

	eng := engine.New(engine.WithLogger(logr), engine.WithWorkers(*workers))
	result, err := eng.Evaluate(context.Background(), offerings, engine.Params{
		Policy:        policy,
		MaxCandidates: *maxCandidates,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d combination(s) evaluated out of %d possible\n", result.Generated, result.TotalCombinations)
	if result.Truncated {
		fmt.Printf("warning: candidate cap (%d) reached, result set is partial\n", *maxCandidates)
	}

	fmt.Printf("\n=== Conflict-free plans (%d) ===\n", len(result.Clean))
	for i, candidate := range result.Clean {
		printCandidate(i+1, candidate)
	}

	fmt.Printf("\n=== Plans with conflicts (%d) ===\n", len(result.Conflicting))
	for i, candidate := range result.Conflicting {
		printCandidate(i+1, candidate)
	}
}

func printCandidate(rank int, candidate model.ScheduleCandidate) {
	fmt.Printf("\nPlan %d: priority %d, credits %d (required %d, elective %d)",
		rank, candidate.TotalPriority, candidate.TotalCredits, candidate.RequiredCredits, candidate.ElectiveCredits)
	if candidate.ConflictCount > 0 {
		fmt.Printf(", conflicts %d", candidate.ConflictCount)
	}
	fmt.Println()

	for _, offering := range candidate.Offerings {
		slots := lo.Map(offering.TimeSlots, func(slot model.TimeSlot, _ int) string {
			return fmt.Sprintf("%s %d", slot.Day, slot.Period)
		})
		line := fmt.Sprintf("  - %s (%s) section %s, %d credits, priority %d",
			offering.Name, offering.Category, offering.SectionID, offering.Credits, offering.Priority)
		if offering.Teacher != "" {
			line += ", teacher " + offering.Teacher
		}
		if len(slots) > 0 {
			line += ": " + strings.Join(slots, "; ")
		}
		fmt.Println(line)
	}

	for _, conflict := range candidate.Conflicts {
		names := lo.Map(conflict.Offerings, func(offering model.Offering, _ int) string {
			return offering.Name
		})
		fmt.Printf("  ! %s period %d: %s\n", conflict.Day, conflict.Period, strings.Join(names, ", "))
	}
}
