package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joestump/horoscope/internal/config"
	"github.com/joestump/horoscope/internal/horoscope"
	"github.com/joestump/horoscope/internal/llm"
	"github.com/joestump/horoscope/internal/logging"
	"github.com/joestump/horoscope/internal/zodiac"
)

func newOnceCmd() *cobra.Command {
	var signName string

	cmd := &cobra.Command{
		Use:   "once",
		Short: "Generate one page and print it without CGI headers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger := logging.New(cfg.Log.Level, cfg.Log.Format)
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			gen, err := llm.New(ctx, cfg)
			if err != nil {
				return err
			}
			svc := horoscope.NewService(gen, horoscope.Options{
				TemplatePath: cfg.Template.Path,
				PromptPath:   cfg.Prompt.Path,
				Escape:       cfg.Render.Escape,
				Logger:       logger,
			})

			var res *horoscope.Result
			if signName != "" {
				sign, err := zodiac.Parse(signName)
				if err != nil {
					return err
				}
				res, err = svc.GenerateFor(ctx, sign)
				if err != nil {
					return err
				}
			} else {
				res, err = svc.Generate(ctx)
				if err != nil {
					return err
				}
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), res.Document)
			return err
		},
	}

	cmd.Flags().StringVar(&signName, "sign", "", "generate for this sign instead of a random one")
	return cmd
}
