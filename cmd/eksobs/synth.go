package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	eksobservability "github.com/canopylabs/eks-observability"
	"github.com/canopylabs/eks-observability/infra"
)

func newSynthCmd() *cobra.Command {
	var (
		flags        stackFlags
		outputFormat string
		outputFile   string
		watch        bool
		debounce     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Generate the CloudFormation template",
		Long: `Synth assembles the stack and generates its CloudFormation template.

Examples:
    eksobs synth
    eksobs synth -o template.json
    eksobs synth --format yaml
    eksobs synth --watch --scrape-config scrape-config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return runWatch(&flags, outputFormat, outputFile, debounce)
			}
			return runSynth(&flags, outputFormat, outputFile)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-synthesize when the scrape config changes")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Debounce duration for rapid changes")

	return cmd
}

func runSynth(flags *stackFlags, format, outputFile string) error {
	cfg, err := flags.config()
	if err != nil {
		return err
	}

	result := synthesize(cfg)
	if err := outputSynthResult(result, format, outputFile); err != nil {
		return err
	}

	if outputFile != "" {
		fmt.Fprintf(os.Stderr, "Wrote %s\nDeploy with:\n  aws cloudformation deploy --template-file %s --stack-name %s --region %s --capabilities CAPABILITY_NAMED_IAM\n",
			outputFile, outputFile, cfg.StackName, cfg.Region)
	}
	return nil
}

func synthesize(cfg infra.Config) eksobservability.SynthResult {
	s, err := infra.Build(cfg)
	if err != nil {
		return eksobservability.SynthResult{Success: false, Errors: []string{err.Error()}}
	}

	tmpl, err := s.Template()
	if err != nil {
		return eksobservability.SynthResult{Success: false, Errors: []string{err.Error()}}
	}

	names := make([]string, 0, len(tmpl.Resources))
	for _, res := range s.Resources() {
		names = append(names, res.Name)
	}

	return eksobservability.SynthResult{
		Success:   true,
		Template:  *tmpl,
		Resources: names,
	}
}

func outputSynthResult(result eksobservability.SynthResult, format, outputFile string) error {
	if !result.Success {
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("synthesis failed")
	}

	var data []byte
	var err error

	switch format {
	case "json":
		data, err = json.MarshalIndent(&result.Template, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(&result.Template)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if err != nil {
		return err
	}

	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}

	return os.WriteFile(outputFile, data, 0644)
}

// runWatch re-synthesizes whenever the scrape configuration file changes.
func runWatch(flags *stackFlags, format, outputFile string, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Watch the directory, not the file: editors replace files on save,
	// which drops a watch on the file itself.
	target, err := filepath.Abs(flags.scrapeConfig)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	fmt.Fprintf(os.Stderr, "Watching: %s\n", target)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	fmt.Fprintln(os.Stderr, "Running initial synth...")
	resynth := func() {
		if err := runSynth(flags, format, outputFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	resynth()

	fmt.Fprintln(os.Stderr, "\nWatching for changes... (Ctrl+C to stop)")
	return watchLoop(watcher, target, debounce, sigChan, resynth)
}

// watchLoop dispatches watcher events for the target file until a stop
// signal arrives. Events for other files in the watched directory are
// ignored; rapid write bursts collapse into one resynthesis per debounce
// window.
func watchLoop(watcher *fsnotify.Watcher, target string, debounce time.Duration, stop <-chan os.Signal, resynth func()) error {
	var debounceTimer *time.Timer
	resynthChan := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if abs, err := filepath.Abs(event.Name); err != nil || abs != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, func() {
				select {
				case resynthChan <- struct{}{}:
				default:
				}
			})

		case <-resynthChan:
			fmt.Fprintf(os.Stderr, "\n[%s] Change detected, re-synthesizing...\n", time.Now().Format("15:04:05"))
			resynth()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

		case <-stop:
			fmt.Fprintln(os.Stderr, "\nStopping watch...")
			return nil
		}
	}
}
