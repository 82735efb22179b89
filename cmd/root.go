package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/akuhn/pt/internal/bot"
	"github.com/akuhn/pt/internal/console"
	"github.com/akuhn/pt/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultReportSize = 10

type rootOptions struct {
	configPath  string
	interactive bool
	top10       bool
	telegram    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pt",
		Short: "Adaptive vocabulary quiz",
		Long: `pt asks a session of translation questions, favouring the words you
get wrong and the ones you have not seen in a while.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuiz(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default configs/$CONFIG_NAME.yaml)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "open the console before the session")
	cmd.Flags().BoolVar(&opts.top10, "top10", false, "print the ten hardest items and exit")
	cmd.Flags().BoolVar(&opts.telegram, "telegram", false, "run the session in the configured Telegram chat")

	cmd.AddCommand(newReportCmd(opts))

	return cmd
}

func runQuiz(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()

	a := newApp(opts.configPath)
	defer a.close()

	if err := a.services.Prepare(ctx); err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	out := cmd.OutOrStdout()

	if opts.top10 {
		report, err := a.services.Report(ctx, defaultReportSize)
		if err != nil {
			return err
		}
		fmt.Fprint(out, report)
		return nil
	}

	in := bufio.NewReader(os.Stdin)

	if opts.interactive {
		start, err := console.New(in, out, a.cache).Run(ctx)
		if err != nil || !start {
			return err
		}
	}

	var dialog service.DialogI = bot.NewTerminal(in, out)
	if opts.telegram {
		tg, err := bot.NewTelegram(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.cfg.Env, a.log)
		if err != nil {
			a.log.Error("failed to connect to telegram", zap.Error(err))
			return err
		}
		dialog = tg
	}

	stats, err := a.services.Run(ctx, dialog)
	if err != nil {
		return err
	}

	a.log.Info("session finished",
		zap.Int("correct", stats.Correct),
		zap.Int("wrong", stats.Wrong),
	)
	return nil
}
