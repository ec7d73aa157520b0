// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"conch/internal/shellserver"
	"conch/pkg/prompt"

	"github.com/charmbracelet/ssh"
	"github.com/spf13/cobra"
)

var (
	serveAddress string
	serveHostKey string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive shell over SSH",
		Long: `Starts an SSH server where every session gets its own instance of
the sample shell, bound to the session's terminal. Connect with:

  ssh -p <port> <host>`,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, portStr, err := net.SplitHostPort(serveAddress)
			if err != nil {
				return fmt.Errorf("invalid --address %q: %w", serveAddress, err)
			}
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return fmt.Errorf("invalid port in --address %q: %w", serveAddress, err)
			}

			sCfg := shellserver.DefaultConfig()
			sCfg.Host = host
			sCfg.Port = port
			sCfg.HostKeyPath = serveHostKey

			srv := shellserver.New(sCfg, runShellSession)
			srv.SetLogger(logger)

			ctx := cmd.Context()
			if err := srv.Start(ctx); err != nil {
				return err
			}
			logger.Info("ready for connections", "address", srv.Addr())

			// Block until the signal-aware command context is cancelled.
			<-ctx.Done()
			return srv.Stop(context.Background())
		},
	}
)

// runShellSession binds one shell instance to an SSH session.
func runShellSession(sess ssh.Session) error {
	pty, _, hasPty := sess.Pty()

	opts := []prompt.Option{
		prompt.WithInput(sess),
		prompt.WithOutput(sess),
		prompt.WithColor(promptColor()),
		prompt.WithWrapWidth(promptWrapWidth()),
	}
	if hasPty && pty.Window.Width > 0 {
		opts = append(opts, prompt.WithTerminalSize(pty.Window.Width, pty.Window.Height))
	}

	sh, err := buildSampleShell(prompt.New(opts...))
	if err != nil {
		return err
	}
	return sh.Start(true, false)
}

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "address", "127.0.0.1:2222", "host:port to listen on")
	serveCmd.Flags().StringVar(&serveHostKey, "host-key", "", "host key path (generated on first use; empty for an ephemeral key)")
}
