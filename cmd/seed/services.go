package main

import (
	"time"

	"github.com/spf13/cobra"

	"meenakshitravels/client"
	"meenakshitravels/models"
)

var seedServiceData = []models.Service{
	{
		Title:       "Airport Taxi",
		Description: "Pickup and drop for Chennai and Trichy airports with flight tracking and night service.",
		Features:    []string{"24x7 availability", "Flight delay tracking", "Fixed fares"},
		Applications: []string{
			"Airport pickup",
			"Airport drop",
		},
		Status:   "active",
		Featured: true,
	},
	{
		Title:       "Outstation Round Trips",
		Description: "Round trips across Tamil Nadu, Kerala, and Karnataka with experienced drivers.",
		Features:    []string{"Per-km billing", "Hill station permits", "Multi-day itineraries"},
		Applications: []string{
			"Weekend getaways",
			"Family functions",
			"Corporate outings",
		},
		Status:   "active",
		Featured: true,
	},
	{
		Title:       "Temple Tour Packages",
		Description: "Curated darshan circuits covering Madurai, Rameswaram, Thanjavur, and Palani.",
		Features:    []string{"Itinerary planning", "Local guide tie-ups", "Flexible halts"},
		Applications: []string{
			"Pilgrimage circuits",
			"Senior citizen tours",
		},
		Status: "active",
	},
	{
		Title:       "Corporate Employee Transport",
		Description: "Monthly contract cabs for IT corridors with trip sheets and billing reports.",
		Features:    []string{"Monthly invoicing", "Verified drivers", "Route optimisation"},
		Applications: []string{
			"Daily office commute",
			"Client visits",
		},
		Status: "active",
	},
}

func newServicesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "Create the starter service catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := login(cmd.Context(), flags)
			if err != nil {
				return err
			}
			return seedServices(cmd, c, flags.delay)
		},
	}
}

func seedServices(cmd *cobra.Command, c *client.Client, delay time.Duration) error {
	created := 0
	for i := range seedServiceData {
		s := seedServiceData[i]
		if err := c.CreateService(cmd.Context(), &s); err != nil {
			cmd.Printf("service %q failed: %v\n", s.Title, err)
			continue
		}
		created++
		cmd.Printf("service %q created\n", s.Title)
		time.Sleep(delay)
	}
	cmd.Printf("services: %d/%d created\n", created, len(seedServiceData))
	return nil
}
