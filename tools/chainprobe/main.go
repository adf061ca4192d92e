package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/leaguecentral/stats-api/internal/cache"
	"github.com/leaguecentral/stats-api/internal/logic"
	"github.com/leaguecentral/stats-api/internal/sleeper"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: chainprobe <league_id>")
	}
	leagueID := os.Args[1]

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	port := sleeper.NewClient(sleeper.Config{Logger: logger})
	chain := logic.NewChainService(port, cache.NewMemoryChainCache(0), logger, 0)

	ctx := context.Background()
	ids, err := chain.ResolveChain(ctx, leagueID)
	if err != nil {
		log.Fatalf("Resolve failed: %v", err)
	}

	fmt.Printf("Chain for %s (%d seasons):\n", leagueID, len(ids))
	for _, id := range ids {
		info, err := port.GetLeagueInfo(ctx, id)
		if err != nil {
			fmt.Printf("  %s (info unavailable: %v)\n", id, err)
			continue
		}
		fmt.Printf("  %s  season=%s  name=%q  prev=%s\n", id, info.Season, info.Name, info.PreviousLeagueID)
	}
}
