package cmd

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/vimwizard/internal/config"
	"github.com/zjrosen/vimwizard/internal/journal"
	"github.com/zjrosen/vimwizard/internal/level"
	"github.com/zjrosen/vimwizard/internal/log"
	"github.com/zjrosen/vimwizard/internal/oracle"
)

// newOracle builds the level and dialogue oracle. Levels after the tutorial come from the
// configured pack, or the bundled one when none is set.
func newOracle(c config.Config, tracer trace.Tracer) (*oracle.Oracle, *oracle.PackLevels, error) {
	var pack *oracle.PackLevels
	if c.LevelPack != "" {
		var err error
		pack, err = oracle.LoadPackLevels(c.LevelPack)
		if err != nil {
			return nil, nil, fmt.Errorf("loading level pack: %w", err)
		}
		log.Info(log.CatLevel, "level pack loaded", "path", c.LevelPack, "levels", pack.Len())
	} else {
		pack = oracle.NewPackLevels(level.Builtin())
	}

	script, err := c.Oracle.Emotions()
	if err != nil {
		return nil, nil, err
	}

	orc := oracle.New(pack, oracle.NewScriptedDialogue(script),
		oracle.WithTopic(c.Topic),
		oracle.WithTimeout(c.Oracle.Timeout),
		oracle.WithCache(nil, c.Oracle.CacheTTL),
		oracle.WithTracer(tracer),
	)
	return orc, pack, nil
}

func openJournal(ctx context.Context, c config.Config, tracer trace.Tracer) (*journal.Journal, error) {
	path := c.Journal.Path
	if path == "" {
		path = config.DefaultJournalPath()
	}
	j, err := journal.Open(ctx, path, journal.WithTracer(tracer))
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	return j, nil
}

// allLevels lists the tutorial followed by the pack levels, numbered as the game numbers them.
func allLevels(ctx context.Context, orc *oracle.Oracle, pack *oracle.PackLevels) []level.Level {
	n := orc.TutorialLen() + pack.Len()
	out := make([]level.Level, 0, n)
	for i := range n {
		out = append(out, orc.Level(ctx, i))
	}
	return out
}
