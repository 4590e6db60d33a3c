package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"staffregistry/internal/model"
	"staffregistry/internal/nic"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nicconv",
		Short:         "Convert and decode national identity card numbers",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newNormalizeCmd(), newInfoCmd(), newFormatCmd())
	return root
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <nic>...",
		Short: "Print the 12 digit form of each NIC",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				canonical, err := nic.Normalize(raw)
				if err != nil {
					return fmt.Errorf("%q: %w", raw, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), canonical)
			}
			return nil
		},
	}
}

type infoOutput struct {
	nic.Info
	BirthDate string `json:"birth_date,omitempty"`
}

func newInfoCmd() *cobra.Command {
	var compact bool
	cmd := &cobra.Command{
		Use:   "info <nic>",
		Short: "Print birth year, day of year, sex and canonical form as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := nic.Derive(args[0])
			if err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}
			out := infoOutput{Info: info}
			if d, ok := info.BirthDate(); ok {
				out.BirthDate = d.Format(model.DateLayout)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if !compact {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(out)
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "single-line JSON")
	return cmd
}

func newFormatCmd() *cobra.Command {
	var canonical bool
	cmd := &cobra.Command{
		Use:   "format <nic>",
		Short: "Print a NIC grouped for display",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			normalized, err := nic.Normalize(args[0])
			if err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}
			value := args[0]
			if canonical {
				value = normalized
			}
			fmt.Fprintln(cmd.OutOrStdout(), nic.Format(value))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&canonical, "canonical", "c", false, "format the 12 digit form")
	return cmd
}
