package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"meenakshitravels/client"
)

type rootFlags struct {
	baseURL  string
	email    string
	password string
	delay    time.Duration
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Seed the site with starter content over the admin API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.baseURL, "base-url", "http://localhost:8080", "Server base URL")
	cmd.PersistentFlags().StringVar(&flags.email, "email", "", "Admin email")
	cmd.PersistentFlags().StringVar(&flags.password, "password", "", "Admin password")
	cmd.PersistentFlags().DurationVar(&flags.delay, "delay", 300*time.Millisecond, "Pause between requests")

	cmd.AddCommand(newServicesCmd(flags))
	cmd.AddCommand(newTestimonialsCmd(flags))
	cmd.AddCommand(newTariffsCmd(flags))
	cmd.AddCommand(newAllCmd(flags))

	return cmd
}

func newAllCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Seed services, tariffs, and testimonials in one run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := login(cmd.Context(), flags)
			if err != nil {
				return err
			}
			if err := seedServices(cmd, c, flags.delay); err != nil {
				return err
			}
			if err := seedTariffs(cmd, c, flags.delay); err != nil {
				return err
			}
			return seedTestimonials(cmd, c, flags.delay)
		},
	}
}

func login(ctx context.Context, flags *rootFlags) (*client.Client, error) {
	c := client.New(flags.baseURL)
	if err := c.Login(ctx, flags.email, flags.password); err != nil {
		return nil, err
	}
	return c, nil
}
