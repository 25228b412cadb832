// Command uniauth-demo runs the provider-selection flow against mock
// authenticators, exercising the full login lifecycle from the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/akells/uniauth"
	"github.com/akells/uniauth/auth"
	"github.com/akells/uniauth/authmock"
	"github.com/akells/uniauth/config"
	"github.com/akells/uniauth/session"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "uniauth-demo",
		Short:        "Interactive demo of the uniauth login flow",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context())
		},
	}
	cmd.AddCommand(clearCmd())
	return cmd
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget any stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			kv, closer, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closer()
			return kv.Clear()
		},
	}
}

func runDemo(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	kv, closer, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closer()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := uniauth.New(uniauth.Config{
		AppName:        cfg.App.Name,
		Authenticators: demoAuthenticators(),
		OnLogin: func(users []auth.User) {
			for _, u := range users {
				if name, err := u.AccountName(ctx); err == nil {
					fmt.Fprintln(os.Stderr, "logged in:", name)
				}
			}
		},
		OnError: func(err error) {
			fmt.Fprintln(os.Stderr, "session resume failed:", err)
		},
		Store: kv,
		Render: &uniauth.RenderConfig{
			ButtonLabel: cfg.UI.ButtonLabel,
			AltScreen:   cfg.UI.AltScreen,
		},
	})
	if err != nil {
		return err
	}
	defer engine.Close()

	if err := engine.Init(ctx); err != nil {
		return err
	}
	return engine.Run()
}

// openStore builds the configured session backend and returns a teardown
// func alongside it.
func openStore(cfg config.Config) (session.KV, func(), error) {
	switch cfg.Session.Backend {
	case "", "file":
		if cfg.Session.Path != "" {
			return session.NewFileKV(cfg.Session.Path), func() {}, nil
		}
		kv, err := session.DefaultFileKV("uniauth")
		if err != nil {
			return nil, nil, err
		}
		return kv, func() {}, nil

	case "sqlite":
		path := cfg.Session.Path
		if path == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				return nil, nil, err
			}
			path = filepath.Join(dir, "uniauth", "session.db")
			if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
				return nil, nil, err
			}
		}
		kv, err := session.OpenSQLiteKV(path)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { _ = kv.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: cfg.Session.RedisAddr,
			DB:   cfg.Session.RedisDB,
		})
		return session.NewRedisKV(client, "demo"), func() { _ = client.Close() }, nil
	}
	return nil, nil, errors.New("unknown session backend: " + cfg.Session.Backend)
}

// demoAuthenticators builds a provider lineup that exercises every screen:
// a plain provider, one that asks for an account name, one that never
// finishes loading, and one that is broken from the start.
func demoAuthenticators() []auth.Authenticator {
	return []auth.Authenticator{
		authmock.New("anchor",
			authmock.WithStyle(auth.ButtonStyle{Text: "Anchor", Icon: "⚓"}),
			authmock.WithGetKeyConfirmation(),
			authmock.WithOnboardingLink("https://example.com/anchor"),
		),
		authmock.New("ledger",
			authmock.WithStyle(auth.ButtonStyle{Text: "Ledger", Icon: "🔑"}),
			authmock.WithAccountNameRequired(),
			authmock.WithOnboardingLink("https://example.com/ledger"),
		),
		authmock.New("slowpoke",
			authmock.WithStyle(auth.ButtonStyle{Text: "Slowpoke"}),
			authmock.WithLoading(),
		),
		authmock.New("broken",
			authmock.WithStyle(auth.ButtonStyle{Text: "Broken"}),
			authmock.WithInitError(errors.New("extension not detected")),
			authmock.WithOnboardingLink("https://example.com/broken"),
		),
	}
}
