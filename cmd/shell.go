package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/kunalnano/yt-search/pkg/config"
	"github.com/kunalnano/yt-search/pkg/core"
	"github.com/kunalnano/yt-search/pkg/log"
	"github.com/kunalnano/yt-search/pkg/render"
	"github.com/kunalnano/yt-search/pkg/search"
	"github.com/kunalnano/yt-search/pkg/session"
	"github.com/urfave/cli/v3"
)

// ShellCommand creates the interactive shell command
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:    "shell",
		Aliases: []string{"sh"},
		Usage:   "Start an interactive search shell",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Bool("debug") {
				log.SetGlobalDebug(true)
			}
			return runShell(ctx, c.String("config"))
		},
	}
}

func runShell(ctx context.Context, configPath string) error {
	logger := log.ForComponent("shell")

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	sess := session.New(newService(cfg))
	sess.SetDescriptionsVisible(cfg.ShowDescriptions)

	// Config edits take effect on the next command without restarting the
	// shell. The watcher only rebuilds the pipeline; session state stays.
	reloaded := make(chan *search.Service, 1)
	watcher, err := watchConfig(configPath, reloaded, logger)
	if err != nil {
		logger.Warnf("config watching disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	printBanner()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		select {
		case svc := <-reloaded:
			sess.SetSearcher(svc)
			logger.Infof("configuration reloaded")
		default:
		}

		fmt.Print(promptStyle.Render("yt> "))
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" || line == "q" {
			return nil
		}

		if err := dispatch(ctx, sess, line); err != nil {
			printError(err)
		}
	}
}

var promptStyle = headerStyle

// dispatch executes one shell line against the session. Unrecognized input
// is treated as a fresh search, which keeps the common case typing-free.
func dispatch(ctx context.Context, sess *session.Session, line string) error {
	cmd, rest := splitCommand(line)

	switch cmd {
	case "help", "h", "?":
		printHelp()
		return nil

	case "search", "s":
		if rest == "" {
			return fmt.Errorf("usage: search <terms>")
		}
		if err := sess.Search(ctx, rest, core.FilterSet{}); err != nil {
			return err
		}

	case "exact", "e":
		if rest == "" {
			return fmt.Errorf("usage: exact \"<phrase>\"")
		}
		if err := sess.SearchExact(ctx, rest, core.FilterSet{}); err != nil {
			return err
		}

	case "refine", "r":
		if rest == "" {
			return fmt.Errorf("usage: refine <extra terms>")
		}
		if err := sess.Refine(ctx, rest); err != nil {
			return err
		}

	case "filter", "f":
		facet, value := splitCommand(rest)
		if facet == "" {
			return fmt.Errorf("usage: filter <duration|date|sort> <value>, or filter hd")
		}
		if err := sess.ApplyFilter(ctx, facet, value); err != nil {
			return err
		}

	case "clear":
		if err := sess.ClearFilters(ctx); err != nil {
			return err
		}

	case "desc", "d":
		if sess.ToggleDescriptions() {
			fmt.Println("Descriptions on")
		} else {
			fmt.Println("Descriptions off")
		}
		if !sess.Active() {
			return nil
		}

	case "open", "o", "play", "p":
		v, err := videoArg(sess, rest)
		if err != nil {
			return err
		}
		return openURL(v.WatchURL())

	case "url", "u":
		v, err := videoArg(sess, rest)
		if err != nil {
			return err
		}
		fmt.Println(v.WatchURL())
		if copyToClipboard(v.WatchURL()) {
			fmt.Println(summaryStyle.Render("(copied to clipboard)"))
		}
		return nil

	case "info", "i":
		v, err := videoArg(sess, rest)
		if err != nil {
			return err
		}
		printInfo(v)
		return nil

	default:
		// Bare input is a search.
		if err := sess.Search(ctx, line, core.FilterSet{}); err != nil {
			return err
		}
	}

	printResults(render.Rows(sess.Results(), sess.DescriptionsVisible()))
	if !sess.Filters().IsZero() {
		fmt.Println(summaryStyle.Render("Active filters: " + sess.Filters().String()))
	}
	return nil
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

// videoArg resolves a display rank argument like "3" against the session.
func videoArg(sess *session.Session, arg string) (core.Video, error) {
	if !sess.Active() {
		return core.Video{}, session.ErrNoSession
	}
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return core.Video{}, fmt.Errorf("expected a result number, got %q", arg)
	}
	return sess.Video(n)
}

// openURL hands the URL to the platform opener.
func openURL(url string) error {
	var opener string
	switch runtime.GOOS {
	case "darwin":
		opener = "open"
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		opener = "xdg-open"
	}
	return exec.Command(opener, url).Start()
}

// copyToClipboard is best effort: the printed URL is the real deliverable.
func copyToClipboard(text string) bool {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	default:
		if _, err := exec.LookPath("xclip"); err != nil {
			return false
		}
		cmd = exec.Command("xclip", "-selection", "clipboard")
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run() == nil
}

// watchConfig rebuilds the pipeline when the config file changes and sends
// the replacement over reloaded. The shell loop owns the session, so the
// watcher never touches it directly.
func watchConfig(configPath string, reloaded chan *search.Service, logger *log.Logger) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors often replace the file, which drops a
	// watch set on the file itself.
	if err := watcher.Add(filepath.Dir(configPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != configPath {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				cfg, err := config.LoadConfig(configPath)
				if err != nil {
					logger.Warnf("config reload failed, keeping previous settings: %v", err)
					continue
				}

				// Replace any unconsumed pending reload; the newest
				// config wins.
				select {
				case <-reloaded:
				default:
				}
				reloaded <- newService(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warnf("config watcher error: %v", err)
			}
		}
	}()

	return watcher, nil
}

func printBanner() {
	fmt.Println(headerStyle.Render("yt-search interactive shell"))
	fmt.Println(summaryStyle.Render("Type a query to search, 'help' for commands, 'quit' to leave."))
}

func printHelp() {
	fmt.Println(`Commands:
  search <terms>        Fresh search (filters reset, intent inferred)
  exact "<phrase>"      Fresh search matching the exact phrase
  refine <terms>        Add terms to the current search
  filter duration <short|medium|long>
  filter date <today|week|month|year>
  filter sort <views|date|relevance>
  filter hd [on|off]    Request HD results (default on)
  clear                 Drop all filters and re-run
  desc                  Toggle description snippets
  open <n>              Open result n in the browser (also: play)
  url <n>               Print result n's URL (copies when possible)
  info <n>              Show full details for result n
  help                  This text
  quit                  Leave the shell

Bare input searches. Prefix a term with channel: to pin a channel,
e.g. 'concurrency channel:GopherCon'.`)
}
