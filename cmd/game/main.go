package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/report"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	opts := loop.Options{
		LeftName:     config.GetEnv("PONG_LEFT_NAME", "player"),
		RightName:    config.GetEnv("PONG_RIGHT_NAME", "opponent"),
		RightAI:      true,
		WinningScore: config.GetEnvInt("PONG_WIN_SCORE", 0),
		OnResult:     resultReporter(),
	}

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// resultReporter wires match results to the backend when PONG_RESULTS_URL
// is set. Posting runs in the background so the game never stalls on it.
func resultReporter() func(loop.Result) {
	baseURL := config.GetEnv("PONG_RESULTS_URL", "")
	if baseURL == "" {
		return nil
	}
	client := report.NewClient(baseURL)

	return func(r loop.Result) {
		go func() {
			err := client.PostMatch(context.Background(), report.Match{
				Player1:         r.LeftName,
				Player2:         r.RightName,
				Player1Score:    r.LeftScore,
				Player2Score:    r.RightScore,
				Winner:          r.Winner,
				DurationSeconds: r.Duration.Seconds(),
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to report match: %v\n", err)
			}
		}()
	}
}
