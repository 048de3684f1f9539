package main

import (
	"time"

	"github.com/spf13/cobra"

	"meenakshitravels/client"
	"meenakshitravels/models"
)

var seedTariffData = []models.TariffItem{
	{
		VehicleType: "Sedan (Dzire / Etios)",
		RatePerKm:   14,
		MinimumKm:   250,
		MinimumFare: 3500,
		DriverBata:  500,
		AdditionalCharges: []models.AdditionalCharge{
			{Name: "Hill station charge", Amount: 400},
		},
		Status: "active",
	},
	{
		VehicleType: "SUV (Innova)",
		RatePerKm:   19,
		MinimumKm:   250,
		MinimumFare: 4750,
		DriverBata:  600,
		AdditionalCharges: []models.AdditionalCharge{
			{Name: "Hill station charge", Amount: 500},
		},
		Status: "active",
	},
	{
		VehicleType: "SUV (Innova Crysta)",
		RatePerKm:   23,
		MinimumKm:   250,
		MinimumFare: 5750,
		DriverBata:  600,
		Status:      "active",
	},
	{
		VehicleType: "Tempo Traveller (12 seats)",
		RatePerKm:   28,
		MinimumKm:   300,
		MinimumFare: 8400,
		DriverBata:  800,
		AdditionalCharges: []models.AdditionalCharge{
			{Name: "Hill station charge", Amount: 800},
			{Name: "Permit per state", Amount: 1000},
		},
		Status: "active",
	},
}

func newTariffsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tariffs",
		Short: "Create the starter tariff card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := login(cmd.Context(), flags)
			if err != nil {
				return err
			}
			return seedTariffs(cmd, c, flags.delay)
		},
	}
}

func seedTariffs(cmd *cobra.Command, c *client.Client, delay time.Duration) error {
	created := 0
	for i := range seedTariffData {
		t := seedTariffData[i]
		if err := c.CreateTariff(cmd.Context(), &t); err != nil {
			cmd.Printf("tariff %q failed: %v\n", t.VehicleType, err)
			continue
		}
		created++
		cmd.Printf("tariff %q created\n", t.VehicleType)
		time.Sleep(delay)
	}
	cmd.Printf("tariffs: %d/%d created\n", created, len(seedTariffData))
	return nil
}
