/*
Command wordle-solve suggests guesses for a Wordle board from the terminal.

Feedback is given as guess:marks pairs, one -g flag per row. Marks use
g (correct), y (present) and . (absent):

	wordle-solve -g crane:..y.g -g lisle:.y..g

Other modes:

	wordle-solve -explain -g crane:..y.g  # constraints, survivors and scores
	wordle-solve -simulate lemon          # replay the solver against an answer
	wordle-solve -simulate-all            # replay every word, print a summary
	wordle-solve -daily                   # replay today's daily answer
	wordle-solve -ipc                     # msgpack worker on stdin/stdout

Configuration comes from the same TOML file and environment variables as the
server (-config or SOLVER_CONFIG).
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ipc"
	"github.com/robalobadob/wordle/apps/go-solver/internal/logger"
	"github.com/robalobadob/wordle/apps/go-solver/internal/simulate"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// boardsFlag collects repeated -g guess:marks values.
type boardsFlag []solver.Board

func (b *boardsFlag) String() string {
	parts := make([]string, len(*b))
	for i, row := range *b {
		parts[i] = row.Word()
	}
	return strings.Join(parts, ",")
}

func (b *boardsFlag) Set(v string) error {
	guess, marks, ok := strings.Cut(v, ":")
	if !ok {
		return fmt.Errorf("want guess:marks, got %q", v)
	}
	row, err := solver.ParseBoard(guess, marks)
	if err != nil {
		return err
	}
	*b = append(*b, row)
	return nil
}

type options struct {
	configPath  string
	wordsFile   string
	length      int
	k           int
	rows        int
	boards      boardsFlag
	explain     bool
	simulate    string
	simulateAll bool
	daily       bool
	ipc         bool
	debug       bool
}

func main() {
	config.LoadDotenv()
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logger.New("wordle-solve").Error(err)
		os.Exit(1)
	}
}

// run parses args and executes one mode, writing results to stdout.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opt options
	fs := flag.NewFlagSet("wordle-solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opt.configPath, "config", "", "TOML config file (default $SOLVER_CONFIG)")
	fs.StringVar(&opt.wordsFile, "words", "", "word list file (default: config, then embedded list)")
	fs.IntVar(&opt.length, "length", 0, "word length (default from config)")
	fs.IntVar(&opt.k, "k", 0, "number of suggestions (default from config)")
	fs.IntVar(&opt.rows, "rows", 0, "max guesses when simulating (default from config)")
	fs.Var(&opt.boards, "g", "feedback row as guess:marks, repeatable (g=correct y=present .=absent)")
	fs.BoolVar(&opt.explain, "explain", false, "print constraints and scores")
	fs.StringVar(&opt.simulate, "simulate", "", "replay the solver against this answer")
	fs.BoolVar(&opt.simulateAll, "simulate-all", false, "replay the solver against every word")
	fs.BoolVar(&opt.daily, "daily", false, "replay the solver against today's daily answer")
	fs.BoolVar(&opt.ipc, "ipc", false, "run the msgpack worker on stdin/stdout")
	fs.BoolVar(&opt.debug, "d", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(opt.configPath)
	if err != nil {
		return err
	}
	level := logger.ParseLevel(cfg.Server.LogLevel)
	if opt.debug {
		level = log.DebugLevel
	}
	lg := logger.NewWithConfig(stderr, "wordle-solve", level, opt.debug)
	for _, k := range cfg.Unknown {
		lg.Warn("unknown config key", "key", k)
	}

	if opt.wordsFile == "" {
		opt.wordsFile = cfg.Solver.WordsFile
	}
	if opt.length <= 0 {
		opt.length = cfg.Solver.WordLength
	}
	if opt.k <= 0 {
		opt.k = cfg.Solver.TopK
	}
	if opt.rows <= 0 {
		opt.rows = cfg.Solver.MaxRows
	}

	if err := words.Init(opt.wordsFile); err != nil {
		return err
	}
	dict := words.Default()
	engine := solver.NewEngine(solver.English, opt.length, dict.Words(opt.length))
	if engine.Size() == 0 {
		return fmt.Errorf("no %d-letter words in dictionary", opt.length)
	}
	slv := solver.New(engine, opt.k)
	lg.Debug("dictionary loaded", "words", dict.Len(), "pool", engine.Size())

	switch {
	case opt.ipc:
		return ipc.NewWorker(slv, stdin, stdout, lg).Run()
	case opt.simulateAll:
		return simulateAll(slv, opt.rows, stdout, stderr)
	case opt.daily:
		answer := simulate.DailyAnswer(time.Now(), cfg.Solver.DailySalt, engine.Pool())
		lg.Debug("daily answer", "date", simulate.DateKey(time.Now()))
		return playOne(slv, answer, opt.rows, stdout)
	case opt.simulate != "":
		return playOne(slv, opt.simulate, opt.rows, stdout)
	case opt.explain:
		return explain(slv, opt.boards, opt.k, stdout)
	default:
		out, err := slv.SolveK(opt.boards, opt.k)
		if err != nil {
			return err
		}
		if len(out) == 0 {
			lg.Warn("no word matches the feedback")
			return nil
		}
		for i, w := range out {
			fmt.Fprintf(stdout, "%2d. %s\n", i+1, w)
		}
		return nil
	}
}

func explain(slv *solver.Solver, boards []solver.Board, k int, w io.Writer) error {
	rep, err := slv.Explain(boards, k)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "constraints (%d):\n", len(rep.Constraints))
	for _, c := range rep.Constraints {
		fmt.Fprintf(w, "  %s\n", c)
	}
	fmt.Fprintf(w, "survivors: %d\n", rep.Survivors)
	for i, sc := range rep.Top {
		fmt.Fprintf(w, "%2d. %s  total=%d partial=%d key=%d\n",
			i+1, sc.Word, sc.Overlap.Total, sc.Overlap.Partial, solver.Key(sc.Overlap))
	}
	return nil
}

func playOne(slv *solver.Solver, answer string, rows int, w io.Writer) error {
	res, err := simulate.Play(slv, answer, rows)
	if err != nil {
		return err
	}
	for i, b := range res.Boards {
		fmt.Fprintf(w, "%d. %s %s\n", i+1, b.Word(), marks(b))
	}
	if res.Won {
		fmt.Fprintf(w, "solved in %d\n", len(res.Guesses))
	} else {
		fmt.Fprintf(w, "not solved in %d\n", len(res.Guesses))
	}
	return nil
}

// marks renders a row in the same g/y/. notation -g accepts.
func marks(b solver.Board) string {
	var sb strings.Builder
	for _, t := range b.Tiles {
		switch t.Status {
		case solver.StatusCorrect:
			sb.WriteByte('g')
		case solver.StatusPresent:
			sb.WriteByte('y')
		default:
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func simulateAll(slv *solver.Solver, rows int, stdout, stderr io.Writer) error {
	answers := slv.Engine().Pool()
	bar := progressbar.NewOptions(len(answers),
		progressbar.OptionSetWriter(stderr),
		progressbar.OptionSetDescription("simulating"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	sum, err := simulate.All(slv, answers, rows, func() { _ = bar.Add(1) })
	_ = bar.Finish()
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "games: %d  wins: %d  average: %.3f\n", sum.Games, sum.Wins, sum.Average())
	guesses := make([]int, 0, len(sum.Distribution))
	for n := range sum.Distribution {
		guesses = append(guesses, n)
	}
	sort.Ints(guesses)
	for _, n := range guesses {
		fmt.Fprintf(stdout, "  %d: %d\n", n, sum.Distribution[n])
	}
	if len(sum.Failed) > 0 {
		fmt.Fprintf(stdout, "failed: %s\n", strings.Join(sum.Failed, " "))
	}
	return nil
}
