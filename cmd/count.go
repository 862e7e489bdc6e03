package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"fcount/cmd/ui"
	"fcount/cmd/ui/spinner"
	"fcount/pkg/backend"
	"fcount/pkg/config"
	"fcount/pkg/counter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func runRootCommand(cmd *cobra.Command, args []string) {
	cfg := loadConfigOrExit()

	if collectPaths {
		cfg.CollectPaths = true
	}

	if cfg.IsRemote() {
		resolveAuthOrExit(cfg)
	}

	exts := counter.NormalizeExtensions(cfg.Extensions)
	b := selectBackend(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interactive := !jsonOutput && !noProgress && isTerminal()

	if !jsonOutput {
		printScanHeader(cfg)
	}

	opts := counter.Options{CollectPaths: cfg.CollectPaths}

	if interactive {
		// Bounded progress needs a directory total, which only backends
		// with a cheap pre-pass provide (local). Remote stays open-ended.
		if dc, ok := b.(backend.DirCounter); ok {
			opts.KnownTotal = preCountDirs(ctx, dc, cfg.Directory, stop)
			if ctx.Err() != nil {
				fmt.Fprintf(os.Stderr, "%s\n", errorStyle.Render("Scan interrupted"))
				os.Exit(130)
			}
		}
	} else {
		opts.OnSkip = func(path string, err error) {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", path, err)
		}
	}

	var result *counter.Result
	var scanErr error

	if interactive {
		events := make(chan counter.Progress, 64)
		opts.Progress = events

		uiDone := make(chan struct{})
		go func() {
			defer close(uiDone)
			ui.RunScanProgress(events, stop)
		}()

		result, scanErr = counter.Scan(ctx, b, cfg.Directory, exts, opts)
		close(events)
		<-uiDone
	} else {
		result, scanErr = counter.Scan(ctx, b, cfg.Directory, exts, opts)
	}

	interrupted := false
	if scanErr != nil {
		if errors.Is(scanErr, context.Canceled) && result != nil {
			interrupted = true
		} else {
			fmt.Fprintf(os.Stderr, "%s\n", errorStyle.Render(fmt.Sprintf("Error: %v", scanErr)))
			os.Exit(1)
		}
	}

	if jsonOutput {
		if err := renderJSON(os.Stdout, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
			os.Exit(1)
		}
		if interrupted {
			os.Exit(130)
		}
		return
	}

	printResult(result, interrupted)
}

// loadConfigOrExit loads the configuration and exits with an error message if it fails
func loadConfigOrExit() *config.ScanConfig {
	cfg, err := config.Load(configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "\nRun 'fcount init' to generate a sample config file\n")
		}
		os.Exit(1)
	}
	return cfg
}

// resolveAuthOrExit fills in missing SSH credentials, first from the
// credentials profile, then by prompting on the terminal. A non-terminal
// session with no credentials is an invalid configuration.
func resolveAuthOrExit(cfg *config.ScanConfig) {
	if err := cfg.ApplyProfile(); err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving credentials: %v\n", err)
		os.Exit(1)
	}

	if cfg.HasAuth() {
		return
	}

	if !isTerminal() {
		fmt.Fprintf(os.Stderr, "Error: %v\n",
			fmt.Errorf("%w: ssh connection requires a password, ssh_key, or profile", config.ErrInvalidConfig))
		os.Exit(1)
	}

	fmt.Printf("Password for %s@%s: ", cfg.Username, cfg.Host)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
		os.Exit(1)
	}
	cfg.Password = string(password)

	if cfg.Password == "" {
		fmt.Fprintf(os.Stderr, "Error: empty password\n")
		os.Exit(1)
	}
}

// selectBackend chooses the backend once, up front. The traversal loop
// never branches on connection type.
func selectBackend(cfg *config.ScanConfig) backend.Backend {
	if cfg.IsRemote() {
		return backend.NewSFTP(cfg.Host, strconv.Itoa(cfg.Port), cfg.Username, cfg.Password, cfg.SSHKey)
	}
	return backend.NewLocal(cfg.Directory)
}

// preCountDirs runs the local pre-pass behind a spinner so large trees
// don't look stalled before the bar appears. Ctrl-C during the pre-pass
// cancels the whole run through the spinner's interrupt callback.
func preCountDirs(ctx context.Context, dc backend.DirCounter, root string, cancel func()) int {
	spinnerProgram := tea.NewProgram(spinner.InitialModel("Counting directories...", cancel))

	go func() {
		if _, err := spinnerProgram.Run(); err != nil {
			// Suppress the "program was killed" error since it's expected
			if err.Error() != "program was killed" {
				fmt.Fprintf(os.Stderr, "Error running spinner: %v\n", err)
			}
		}
	}()

	total := dc.CountDirs(ctx, root)
	spinnerProgram.Quit()
	spinnerProgram.Wait()
	return total
}

// renderJSON writes the result as indented JSON.
func renderJSON(w io.Writer, result *counter.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func printScanHeader(cfg *config.ScanConfig) {
	fmt.Println(headerStyle.Render("fcount"))
	fmt.Printf("  %s %s\n", labelStyle.Render("Connection:"), valueStyle.Render(cfg.ConnectionType))
	if cfg.IsRemote() {
		fmt.Printf("  %s %s\n", labelStyle.Render("Host:"),
			valueStyle.Render(fmt.Sprintf("%s@%s:%d", cfg.Username, cfg.Host, cfg.Port)))
	}
	fmt.Printf("  %s %s\n", labelStyle.Render("Directory:"), valueStyle.Render(cfg.Directory))
	if len(cfg.Extensions) == 0 {
		fmt.Printf("  %s %s\n", labelStyle.Render("Extensions:"), mutedStyle.Render("(all files)"))
	} else {
		fmt.Printf("  %s %s\n", labelStyle.Render("Extensions:"), valueStyle.Render(strings.Join(cfg.Extensions, ", ")))
	}
	fmt.Println()
}

func printResult(result *counter.Result, interrupted bool) {
	if interrupted {
		fmt.Printf("%s\n\n", errorStyle.Render("Scan interrupted, partial results:"))
	} else {
		fmt.Printf("%s\n\n", successStyle.Render("Scan complete"))
	}

	exts := make([]string, 0, len(result.PerExtension))
	for ext := range result.PerExtension {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	for _, ext := range exts {
		label := ext
		if label == "" {
			label = "(no extension)"
		}
		fmt.Printf("  %15s : %8d\n", label, result.PerExtension[ext])
	}

	fmt.Printf("  %s\n", mutedStyle.Render(strings.Repeat("-", 28)))
	fmt.Printf("  %15s : %8d\n", "total", result.Total)

	if len(result.SkippedDirs) > 0 {
		fmt.Printf("\n%s\n", mutedStyle.Render(fmt.Sprintf("Skipped %d inaccessible directories:", len(result.SkippedDirs))))
		for _, dir := range result.SkippedDirs {
			fmt.Printf("  %s\n", mutedStyle.Render(dir))
		}
	}

	if len(result.MatchedPaths) > 0 {
		fmt.Printf("\n%s\n", labelStyle.Render("Matched files:"))
		for _, path := range result.MatchedPaths {
			fmt.Printf("  %s\n", valueStyle.Render(path))
		}
	}
}

func isTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}
