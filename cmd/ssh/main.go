package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/report"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	winScore := config.GetEnvInt("PONG_WIN_SCORE", 0)
	resultsURL := config.GetEnv("PONG_RESULTS_URL", "")

	var reporter *report.Client
	if resultsURL != "" {
		reporter = report.NewClient(resultsURL)
		log.Info("Match reporting enabled", "url", resultsURL)
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(winScore, reporter),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatal("Failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("Starting SSH server", "host", host, "port", port)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("Server error", "err", err)
		}
	}()

	<-done
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Fatal("Shutdown error", "err", err)
	}
}

// gameMiddleware runs one game per SSH session. The session user plays
// the left paddle against the computer; scores go to the reporter when
// one is configured.
func gameMiddleware(winScore int, reporter *report.Client) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			log.Info("New game session",
				"user", sess.User(), "terminal", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height)

			// Track terminal size across window change events
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			opts := loop.Options{
				TermSize:     sizeTracker.getSize,
				LeftName:     sess.User(),
				RightName:    "computer",
				RightAI:      true,
				WinningScore: winScore,
				OnResult:     sessionReporter(reporter, sess.User()),
			}

			reader := bufio.NewReader(sess)
			if err := loop.Run(reader, sess, opts); err != nil {
				log.Error("Game error", "user", sess.User(), "err", err)
			}

			log.Info("Session ended", "user", sess.User())
			next(sess)
		}
	}
}

// sessionReporter posts each finished match in the background.
func sessionReporter(reporter *report.Client, user string) func(loop.Result) {
	if reporter == nil {
		return nil
	}
	return func(r loop.Result) {
		go func() {
			err := reporter.PostMatch(context.Background(), report.Match{
				Player1:         r.LeftName,
				Player2:         r.RightName,
				Player1Score:    r.LeftScore,
				Player2Score:    r.RightScore,
				Winner:          r.Winner,
				DurationSeconds: r.Duration.Seconds(),
			})
			if err != nil {
				log.Error("Failed to report match", "user", user, "err", err)
			}
		}()
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
