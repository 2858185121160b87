// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/jsonrpcbase/src/logger"
	"github.com/spf13/cobra"
)

type callOptions struct {
	inputFile  string
	configFile string
	meta       string
}

func newCallCmd(log logger.Logger) *cobra.Command {
	opts := &callOptions{}

	cmd := &cobra.Command{
		Use:   "call",
		Short: "Process one payload from a file or stdin and print the reply",
		Long: `Reads a single JSON-RPC payload (a request or a batch) and prints the reply.
Nothing is printed when the payload only holds notifications.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, opts, log)
		},
	}

	cmd.Flags().StringVarP(&opts.inputFile, "file", "f", "", "read the payload from FILE (default: stdin)")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "configuration file (.json, .yaml, .yml)")
	cmd.Flags().StringVar(&opts.meta, "meta", "", "JSON value passed to handlers as call metadata")
	return cmd
}

func runCall(cmd *cobra.Command, opts *callOptions, log logger.Logger) error {
	var meta any
	if opts.meta != "" {
		if err := json.Unmarshal([]byte(opts.meta), &meta); err != nil {
			return fmt.Errorf("invalid --meta value: %w", err)
		}
	}

	payload, err := readPayload(cmd, opts.inputFile)
	if err != nil {
		return err
	}

	svc, err := newService(cmd, opts.configFile)
	if err != nil {
		return err
	}

	reply := svc.Call(cmd.Context(), payload, meta)
	if reply == nil {
		log.Println("No reply (notification only).")
		return nil
	}

	out := cmd.OutOrStdout()
	if _, err := out.Write(reply); err != nil {
		return fmt.Errorf("failed to write reply: %w", err)
	}
	_, err = io.WriteString(out, "\n")
	return err
}

func readPayload(cmd *cobra.Command, inputFile string) ([]byte, error) {
	if inputFile == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read payload from stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload file: %w", err)
	}
	return data, nil
}
