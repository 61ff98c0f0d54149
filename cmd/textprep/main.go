package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"textprep"
)

func main() {
	var (
		text       = flag.String("text", "", "text to filter")
		crawlStart = flag.String("crawl", "", "start URL to crawl and index")
		maxPages   = flag.Int("max", 10, "max pages to crawl")
		dbPath     = flag.String("db", "", "sqlite index path (empty: in-memory)")
		addr       = flag.String("addr", "", "serve /filter and /search on this address")
		returnType = flag.String("return", "tokens", "output shape: tokens or text")
		dropNeg    = flag.Bool("drop-negations", false, "remove negation words too")
		keepPron   = flag.Bool("keep-pronouns", false, "retain personal pronouns")
	)
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg := textprep.DefaultConfig()
	cfg.KeepNegations = !*dropNeg
	cfg.KeepPronouns = *keepPron

	if err := run(*text, *crawlStart, *maxPages, *dbPath, *addr, *returnType, cfg, log); err != nil {
		log.Fatal("textprep failed", zap.Error(err))
	}
}

func run(text, crawlStart string, maxPages int, dbPath, addr, returnType string, cfg textprep.Config, log *zap.Logger) error {
	if text != "" {
		rt, err := textprep.ParseReturnType(returnType)
		if err != nil {
			return err
		}
		tokens := textprep.FilterText(text, cfg)
		if rt == textprep.ReturnText {
			fmt.Println(textprep.JoinTokens(tokens))
			return nil
		}
		for _, tok := range tokens {
			fmt.Println(tok)
		}
		return nil
	}

	if crawlStart == "" && addr == "" {
		return errors.New("nothing to do: pass -text, or -crawl/-addr")
	}

	var idx textprep.Indexer
	if dbPath != "" {
		sq, err := textprep.NewSQLiteIndexer(dbPath, cfg)
		if err != nil {
			return err
		}
		idx = sq
	} else {
		idx = textprep.NewInMemIndexer(cfg)
	}
	defer idx.Close()

	if crawlStart != "" {
		urls, err := textprep.Crawl(crawlStart, maxPages, log)
		if err != nil {
			return err
		}
		log.Info("crawl finished", zap.Int("pages", len(urls)))
		if err := textprep.BuildIndexFromURLs(urls, idx, log); err != nil {
			return err
		}
	}

	if addr != "" {
		log.Info("serving", zap.String("addr", addr))
		return http.ListenAndServe(addr, textprep.NewMux(idx, cfg))
	}
	return nil
}
