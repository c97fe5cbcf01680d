package main

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestVectorizeCommandFlags(t *testing.T) {
	app := &cli.App{
		Name: "francis",
		Commands: []*cli.Command{
			{
				Name:   "vectorize",
				Action: vectorizeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "root",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "corpus",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Required: true,
					},
				},
			},
		},
	}

	t.Run("embedding-model is required", func(t *testing.T) {
		args := []string{"francis", "vectorize", "--root", "/tmp/corpora", "--corpus", "CGI"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "embedding-model")
	})

	t.Run("embedding-host has default value", func(t *testing.T) {
		cmd := app.Commands[0]
		var hostFlag *cli.StringFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "embedding-host" {
				hostFlag = f
				break
			}
		}
		require.NotNil(t, hostFlag)
		assert.Equal(t, "http://localhost:11434/v1", hostFlag.Value)
	})
}

func TestSetupLogger(t *testing.T) {
	defer slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"INFO", false},
		{"verbose", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			app := &cli.App{
				Name: "francis",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "log-level", Value: "info"},
				},
				Before: setupLogger,
				Action: func(*cli.Context) error { return nil },
			}

			err := app.Run([]string{"francis", "--log-level", tt.level})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "   ligne une\n   ligne deux", indent("ligne une\nligne deux\n"))
}
