package main

import (
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/admpub/log"
	"github.com/spf13/cobra"

	"github.com/admpub/barchart/internal/server"
	"github.com/admpub/barchart/pkg/barchart"
	"github.com/admpub/barchart/pkg/dataset"
	"github.com/admpub/barchart/pkg/surface"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "barchart",
		Short:        "Draw time series as animated svg bar charts",
		SilenceUsage: true,
	}
	cmd.AddCommand(newRenderCmd(), newServeCmd(), newGenCmd())
	return cmd
}

func newRenderCmd() *cobra.Command {
	var (
		configPath string
		dataPath   string
		lastLines  int
		points     int
		outPath    string
		animate    bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart to svg",
		Long:  `Render a chart to svg from a data file, or from random hourly data when no file is given.`,
		Example: heredoc.Doc(`
			# Render 24 random points with the default settings
			$ barchart render --out chart.svg

			# Render the last 48 lines of a csv file with a json5 config
			$ barchart render --config chart.json5 --data points.csv --last 48
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := barchart.DefaultConfig()
			if len(configPath) > 0 {
				var err error
				cfg, err = barchart.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}
			var data []barchart.Point
			if len(dataPath) > 0 {
				var err error
				data, err = dataset.Load(dataPath, lastLines)
				if err != nil {
					return err
				}
			} else {
				now := time.Now().Truncate(time.Second)
				data = dataset.Generate(points, now, rand.New(rand.NewSource(now.UnixNano())))
			}
			doc := surface.NewDocument(surface.WithID(strings.TrimPrefix(cfg.Target, `#`)))
			chart, err := barchart.New(doc, barchart.WithConfig(cfg))
			if err != nil {
				return err
			}
			if err = chart.Render(data, barchart.RenderOptions{Animate: animate}); err != nil {
				return err
			}
			var w io.Writer = cmd.OutOrStdout()
			if len(outPath) > 0 {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			log.Debugf(`rendered %d points`, len(data))
			return doc.WriteSVG(w)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "json5 chart config file")
	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "data file (.csv, .tsv, .txt, .json, .json5 or .parquet)")
	cmd.Flags().IntVar(&lastLines, "last", 0, "only read the last n points of the data file")
	cmd.Flags().IntVarP(&points, "points", "n", 24, "number of random points when no data file is given")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file, stdout when empty")
	cmd.Flags().BoolVar(&animate, "animate", false, "embed the update animation in the svg")
	return cmd
}

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo page",
		Example: heredoc.Doc(`
			$ barchart serve --addr 127.0.0.1:8080
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := server.New(server.Demos)
			if err != nil {
				return err
			}
			return s.Start(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	return cmd
}

func newGenCmd() *cobra.Command {
	var (
		points  int
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate random hourly points",
		Example: heredoc.Doc(`
			# 24 points ending now, saved as parquet
			$ barchart gen -n 24 --out points.parquet
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().Truncate(time.Second)
			data := dataset.Generate(points, now, rand.New(rand.NewSource(now.UnixNano())))
			if err := dataset.Save(outPath, data); err != nil {
				return err
			}
			log.Infof(`saved %d points to %s`, len(data), outPath)
			return nil
		},
	}
	cmd.Flags().IntVarP(&points, "points", "n", 24, "number of points")
	cmd.Flags().StringVarP(&outPath, "out", "o", "points.csv", "output file")
	return cmd
}
