package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"twitnet/internal/analytics"
	"twitnet/internal/cmdlog"
	"twitnet/internal/config"
	"twitnet/internal/dataset"
	"twitnet/internal/extract"
	"twitnet/internal/filter"
	"twitnet/internal/logging"
	"twitnet/internal/metrics"
	"twitnet/internal/model"
	"twitnet/internal/social"
	"twitnet/internal/theme"
	"twitnet/internal/util"
)

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	var err error
	switch cmd {
	case "init":
		err = cmdInit(os.Args[2:])
	case "written-by":
		err = cmdWrittenBy(os.Args[2:])
	case "timespan":
		err = cmdTimespan(os.Args[2:])
	case "containing":
		err = cmdContaining(os.Args[2:])
	case "graph":
		err = cmdGraph(os.Args[2:])
	case "influencers":
		err = cmdInfluencers(os.Args[2:])
	case "mentions":
		err = cmdMentions(os.Args[2:])
	case "summary":
		err = cmdSummary(os.Args[2:])
	default:
		printHelp()
	}
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func printHelp() {
	theme.PrintBanner()
	fmt.Println("Usage: twitnet <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  init         Create a config file at ./twitnet.yaml")
	fmt.Println("  written-by   Tweets by one author (-user)")
	fmt.Println("  timespan     Tweets strictly between -start and -end (RFC 3339)")
	fmt.Println("  containing   Tweets containing any of -words (comma-separated)")
	fmt.Println("  graph        Guessed follows graph from @-mentions")
	fmt.Println("  influencers  Users ranked by guessed follower count")
	fmt.Println("  mentions     Distinct mentioned usernames")
	fmt.Println("  summary      Tweet volume by hour and author")
}

// session is what every analysis command starts from.
type session struct {
	cfg    config.Config
	tweets []model.Tweet
}

// analysisFlags registers -config and -input on fs and returns a loader for them.
func analysisFlags(fs *flag.FlagSet) func() (session, error) {
	cfgPath := fs.String("config", "./twitnet.yaml", "config path")
	input := fs.String("input", "", "tweet fixture file (overrides config)")
	return func() (session, error) {
		cfg, err := config.Load(*cfgPath)
		if errors.Is(err, os.ErrNotExist) {
			cfg = config.Default()
			cfg.ResolveEnv()
		} else if err != nil {
			return session{}, err
		}
		logging.SetLevel(cfg.Logging.Level)
		metrics.StartServer(cfg.Metrics.Addr)
		if *input != "" {
			cfg.Input.Path = *input
		}
		if cfg.Input.Path == "" {
			return session{}, errors.New("no input: set -input, input.path or TWITNET_INPUT")
		}
		tweets, err := dataset.Load(cfg.Input.Path)
		if err != nil {
			return session{}, err
		}
		metrics.AddTweetsLoaded(len(tweets))
		logging.Debug("tweets_loaded", map[string]any{"path": cfg.Input.Path, "count": len(tweets)})
		return session{cfg: cfg, tweets: tweets}, nil
	}
}

func cmdInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("path", "./twitnet.yaml", "path to write config")
	_ = fs.Parse(args)
	return cmdlog.Run("init", func() error {
		if err := config.Save(*path, config.Default()); err != nil {
			return err
		}
		abs, _ := filepath.Abs(*path)
		theme.PrintBanner()
		fmt.Println("Config written to:", abs)
		return nil
	})
}

func cmdWrittenBy(args []string) error {
	fs := flag.NewFlagSet("written-by", flag.ExitOnError)
	load := analysisFlags(fs)
	user := fs.String("user", "", "author username (default from config)")
	_ = fs.Parse(args)
	return cmdlog.Run("written-by", func() error {
		s, err := load()
		if err != nil {
			return err
		}
		u := *user
		if u == "" {
			u = s.cfg.Filter.Author
		}
		if u == "" {
			return errors.New("no author: set -user or filter.author")
		}
		printTweets(filter.WrittenBy(s.tweets, u))
		return nil
	})
}

func cmdTimespan(args []string) error {
	fs := flag.NewFlagSet("timespan", flag.ExitOnError)
	load := analysisFlags(fs)
	start := fs.String("start", "", "exclusive start, RFC 3339")
	end := fs.String("end", "", "exclusive end, RFC 3339")
	_ = fs.Parse(args)
	return cmdlog.Run("timespan", func() error {
		span, err := parseTimespan(*start, *end)
		if err != nil {
			return err
		}
		s, err := load()
		if err != nil {
			return err
		}
		printTweets(filter.InTimespan(s.tweets, span))
		return nil
	})
}

func cmdContaining(args []string) error {
	fs := flag.NewFlagSet("containing", flag.ExitOnError)
	load := analysisFlags(fs)
	words := fs.String("words", "", "comma-separated words (default from config)")
	_ = fs.Parse(args)
	return cmdlog.Run("containing", func() error {
		s, err := load()
		if err != nil {
			return err
		}
		w := util.SplitAndTrim(*words)
		if len(w) == 0 {
			w = s.cfg.Filter.Keywords
		}
		printTweets(filter.Containing(s.tweets, w))
		return nil
	})
}

func cmdGraph(args []string) error {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	load := analysisFlags(fs)
	_ = fs.Parse(args)
	return cmdlog.Run("graph", func() error {
		s, err := load()
		if err != nil {
			return err
		}
		fmt.Print(formatGraph(social.GuessFollowsGraph(s.tweets)))
		return nil
	})
}

func cmdInfluencers(args []string) error {
	fs := flag.NewFlagSet("influencers", flag.ExitOnError)
	load := analysisFlags(fs)
	top := fs.Int("top", -1, "how many to print, 0 for all (default from config)")
	_ = fs.Parse(args)
	return cmdlog.Run("influencers", func() error {
		s, err := load()
		if err != nil {
			return err
		}
		n := *top
		if n < 0 {
			n = s.cfg.Ranking.Top
		}
		ranked := social.RankInfluencers(social.GuessFollowsGraph(s.tweets))
		fmt.Print(formatInfluencers(ranked, n))
		return nil
	})
}

func cmdMentions(args []string) error {
	fs := flag.NewFlagSet("mentions", flag.ExitOnError)
	load := analysisFlags(fs)
	_ = fs.Parse(args)
	return cmdlog.Run("mentions", func() error {
		s, err := load()
		if err != nil {
			return err
		}
		for _, u := range extract.GetMentionedUsers(s.tweets).Sorted() {
			fmt.Println("@" + u)
		}
		return nil
	})
}

func cmdSummary(args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	load := analysisFlags(fs)
	_ = fs.Parse(args)
	return cmdlog.Run("summary", func() error {
		s, err := load()
		if err != nil {
			return err
		}
		span, err := extract.GetTimespan(s.tweets)
		if err != nil {
			return err
		}
		fmt.Printf("Tweets: %d\nSpan: %s\n", len(s.tweets), span)
		b := analytics.HourlyVolume(s.tweets)
		for _, k := range analytics.SortedBucketKeys(b) {
			fmt.Printf("%s -> %d\n", k.Format(time.RFC3339), b[k])
		}
		fmt.Print(formatCounts(analytics.AuthorCounts(s.tweets)))
		return nil
	})
}
