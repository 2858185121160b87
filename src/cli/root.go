// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"

	"github.com/H0llyW00dzZ/jsonrpcbase/src/config"
	"github.com/H0llyW00dzZ/jsonrpcbase/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/jsonrpcbase/src/logger"
	"github.com/H0llyW00dzZ/jsonrpcbase/src/service"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Output goes to the command's out and
// err writers, so callers (and tests) can redirect it with SetOut/SetErr.
func NewRootCmd(version string, log logger.Logger) *cobra.Command {
	exe := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:   exe,
		Short: "Evaluate JSON-RPC 2.0 and 1.1 payloads",
		Long: `Feeds a JSON-RPC payload through a transport-less service with demo methods
(echo, subtract, sum and fail) and prints the reply. rpc.discover is added
when service.discover is enabled in the configuration file.`,
		Example: fmt.Sprintf(`  echo '{"jsonrpc":"2.0","method":"subtract","params":[42,23],"id":1}' | %s call
  %s call -f batch.json --config jsonrpcbase.yaml
  %s methods`, exe, exe, exe),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newCallCmd(log), newMethodsCmd())
	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCmd(version, log).ExecuteContext(ctx)
}

// newService builds the demo service described by the configuration file
// at configPath (or JSONRPCBASE_CONFIG_FILE, or defaults).
func newService(cmd *cobra.Command, configPath string) (*service.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	docs, err := cfg.LoadDocuments()
	if err != nil {
		return nil, err
	}

	svc := service.New(cfg.ServiceOptions(cfg.Logger(cmd.ErrOrStderr()), docs)...)
	registerDemo(svc, docs.Methods)
	return svc, nil
}
